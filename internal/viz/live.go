package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/tiresim/internal/sim"
)

const (
	frameRate       = 60
	historyCapacity = 300
	gaugeWidth      = 30
	tempScaleMax    = 150.0
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	wearStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	surfStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	coreStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps a scenario in real time and renders the tire state.
type Model struct {
	scenario sim.Scenario
	cfg      sim.Config
	initial  sim.TireState

	state   sim.TireState
	last    sim.TickRecord
	t       float64
	step    int
	running bool

	surfaceHist []float64
	coreHist    []float64
}

func NewModel(scenario sim.Scenario, initial sim.TireState, cfg sim.Config) Model {
	return Model{
		scenario:    scenario,
		cfg:         cfg,
		initial:     initial,
		state:       initial,
		running:     true,
		surfaceHist: make([]float64, 0, historyCapacity),
		coreHist:    make([]float64, 0, historyCapacity),
	}
}

// Run launches the dashboard and blocks until the user quits.
func Run(scenario sim.Scenario, initial sim.TireState, cfg sim.Config) error {
	p := tea.NewProgram(NewModel(scenario, initial, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.state = m.initial
			m.t = 0
			m.step = 0
			m.last = sim.TickRecord{}
			m.surfaceHist = m.surfaceHist[:0]
			m.coreHist = m.coreHist[:0]
		}
	case TickMsg:
		if m.running {
			m.advanceFrame()
		}
		return m, tick()
	}
	return m, nil
}

// advanceFrame steps the simulation by one frame of wall time so the
// dashboard tracks real time regardless of dt.
func (m *Model) advanceFrame() {
	steps := int(1.0 / frameRate / m.cfg.Dt)
	if steps < 1 {
		steps = 1
	}
	for i := 0; i < steps; i++ {
		input := m.scenario.At(m.t, m.cfg.Dt)
		rec := sim.StepTick(m.step, m.t, input, m.state, m.cfg)
		m.state = rec.State
		m.t = rec.Time
		m.step++
		m.last = rec
	}

	m.surfaceHist = append(m.surfaceHist, float64(m.state.SurfaceTemp))
	m.coreHist = append(m.coreHist, float64(m.state.CoreTemp))
	if len(m.surfaceHist) > historyCapacity {
		m.surfaceHist = m.surfaceHist[1:]
		m.coreHist = m.coreHist[1:]
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("tiresim · %s · t=%.1fs", m.scenario.Name(), m.t)))
	b.WriteString("\n")

	stats := strings.Join([]string{
		row("wear", fmt.Sprintf("%5.2f %%  %s", m.state.Wear*100, gauge(float64(m.state.Wear), 1, wearStyle))),
		row("surface", fmt.Sprintf("%5.1f °C %s", m.state.SurfaceTemp, gauge(float64(m.state.SurfaceTemp), tempScaleMax, surfStyle))),
		row("core", fmt.Sprintf("%5.1f °C %s", m.state.CoreTemp, gauge(float64(m.state.CoreTemp), tempScaleMax, coreStyle))),
		row("slip ratio", fmt.Sprintf("%6.3f", m.last.Input.SlipRatio)),
		row("slip angle", fmt.Sprintf("%6.3f rad", m.last.Input.SlipAngle)),
		row("load", fmt.Sprintf("%6.0f N", m.last.Input.VerticalLoad)),
		row("confidence", fmt.Sprintf("%6.2f", m.last.Patch.ContactConfidence)),
		row("eff. radius", fmt.Sprintf("%6.4f m", m.last.EffectiveRadius)),
		row("grip", fmt.Sprintf("%6.3f", m.last.Contacts.WeightedGrip)),
	}, "\n")
	b.WriteString(panelStyle.Render(stats))
	b.WriteString("\n")

	if len(m.surfaceHist) > 2 {
		graph := asciigraph.Plot(m.surfaceHist,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("surface temperature"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	status := "running"
	if !m.running {
		status = "paused"
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("[%s]  space pause · r reset · q quit", status)))
	return b.String()
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

func gauge(value, max float64, style lipgloss.Style) string {
	if max <= 0 {
		max = 1
	}
	frac := value / max
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * gaugeWidth)
	return style.Render(strings.Repeat("█", filled) + strings.Repeat("░", gaugeWidth-filled))
}
