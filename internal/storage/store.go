package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/san-kum/tiresim/internal/sim"
)

var traceHeader = []string{
	"time", "wear", "surface_temp", "core_temp",
	"slip_ratio", "slip_angle", "vertical_load",
	"contact_confidence", "penetration_avg", "penetration_max",
	"effective_radius", "max_pressure", "weighted_grip",
	"force_x", "force_y", "force_z",
	"torque_x", "torque_y", "torque_z",
}

type Store struct {
	baseDir string
	log     zerolog.Logger
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, log: zerolog.Nop()}
}

func (s *Store) SetLogger(l zerolog.Logger) { s.log = l }

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Scenario  string             `json:"scenario"`
	Timestamp time.Time          `json:"timestamp"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Ticks     int                `json:"ticks"`
	FinalWear float32            `json:"final_wear"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes metadata.json and traces.csv for a completed run and
// returns the run ID.
func (s *Store) Save(scenario string, cfg sim.Config, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("%s_%s", scenario, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Scenario:  scenario,
		Timestamp: time.Now(),
		Dt:        cfg.Dt,
		Duration:  cfg.Duration,
		Ticks:     result.StepsTaken,
		FinalWear: result.Final().Wear,
		Metrics:   result.Metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "traces.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(traceHeader); err != nil {
		return "", err
	}

	for _, rec := range result.Records {
		row := []string{
			strconv.FormatFloat(rec.Time, 'f', 6, 64),
			format32(rec.State.Wear),
			format32(rec.State.SurfaceTemp),
			format32(rec.State.CoreTemp),
			format32(rec.Input.SlipRatio),
			format32(rec.Input.SlipAngle),
			format32(rec.Input.VerticalLoad),
			format32(rec.Patch.ContactConfidence),
			format32(rec.Patch.PenetrationAvg),
			format32(rec.Patch.PenetrationMax),
			format32(rec.EffectiveRadius),
			format32(rec.Contacts.MaxPressure),
			format32(rec.Contacts.WeightedGrip),
			format32(rec.Contacts.TotalForce.X),
			format32(rec.Contacts.TotalForce.Y),
			format32(rec.Contacts.TotalForce.Z),
			format32(rec.Contacts.TotalTorque.X),
			format32(rec.Contacts.TotalTorque.Y),
			format32(rec.Contacts.TotalTorque.Z),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	s.log.Info().Str("run", runID).Int("ticks", result.StepsTaken).Msg("run saved")
	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			s.log.Warn().Str("run", entry.Name()).Err(err).Msg("skipping unreadable metadata")
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// Trace is one traces.csv column as a named series.
type Trace struct {
	Times  []float64
	Values []float64
}

// LoadTrace reads a single column from a run's traces.csv.
func (s *Store) LoadTrace(runID, column string) (*Trace, error) {
	rows, err := s.loadRows(runID)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return &Trace{}, nil
	}

	col := -1
	for i, name := range rows[0] {
		if name == column {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("storage: no column %q in run %s", column, runID)
	}

	trace := &Trace{
		Times:  make([]float64, 0, len(rows)-1),
		Values: make([]float64, 0, len(rows)-1),
	}
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		t, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			continue
		}
		v, err := strconv.ParseFloat(row[col], 64)
		if err != nil {
			continue
		}
		trace.Times = append(trace.Times, t)
		trace.Values = append(trace.Values, v)
	}
	return trace, nil
}

// Columns returns the trace column names available for plotting.
func Columns() []string {
	out := make([]string, len(traceHeader)-1)
	copy(out, traceHeader[1:])
	return out
}

func (s *Store) loadRows(runID string) ([][]string, error) {
	csvPath := filepath.Join(s.baseDir, runID, "traces.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func format32(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', 6, 32)
}
