package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/tiresim/internal/config"
	"github.com/san-kum/tiresim/internal/export"
	"github.com/san-kum/tiresim/internal/metrics"
	"github.com/san-kum/tiresim/internal/scenario"
	"github.com/san-kum/tiresim/internal/sim"
	"github.com/san-kum/tiresim/internal/storage"
	"github.com/san-kum/tiresim/internal/viz"
)

var (
	dataDir    string
	verbose    bool
	dt         float64
	duration   float64
	load       float64
	configFile string
	preset     string
	column     string
	toFile     string
	exportPath string
	svgPath    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tiresim",
		Short: "tire contact patch and thermal simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".tiresim", "data directory")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "verbose logging")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scenario and store the result",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	runCmd.Flags().Float64Var(&load, "load", scenario.DefaultLoad, "vertical load (N)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&exportPath, "export", "", "also export full traces as JSON (path, or - for stdout)")

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "run a scenario with a live dashboard",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored trace",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&column, "column", "surface_temp", "trace column to plot")
	plotCmd.Flags().StringVar(&svgPath, "svg", "", "also write the trace as SVG")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&toFile, "out", "", "write to file instead of stdout")

	benchCmd := &cobra.Command{
		Use:   "bench [scenario]",
		Short: "benchmark scenario throughput",
		Args:  cobra.ExactArgs(1),
		RunE:  benchScenario,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [scenario]",
		Short: "list available presets for a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for scenario: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func logger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// resolveConfig merges preset, config file and flags, in that order of
// increasing precedence.
func resolveConfig(cmd *cobra.Command, name string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Scenario = name

	if preset != "" {
		p := config.GetPreset(name, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		loaded.Scenario = name
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	return cfg, nil
}

func buildScenario(name string, cmd *cobra.Command) (sim.Scenario, error) {
	sc, err := scenario.ByName(name)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("load") {
		switch s := sc.(type) {
		case *scenario.Cruise:
			s.Load = float32(load)
		case *scenario.Launch:
			s.Load = float32(load)
		case *scenario.Corner:
			s.Load = float32(load)
		case *scenario.Sweep:
			s.Load = float32(load)
		}
	}
	return sc, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	name := args[0]
	log := logger()

	cfg, err := resolveConfig(cmd, name)
	if err != nil {
		return err
	}
	sc, err := buildScenario(name, cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	st.SetLogger(log)
	if err := st.Init(); err != nil {
		return err
	}

	simCfg := cfg.SimConfig()
	runner := sim.New(sc)
	runner.SetLogger(log)
	runner.AddMetric(metrics.NewPeakSurfaceTemp())
	runner.AddMetric(metrics.NewCoreLag())
	runner.AddMetric(metrics.NewWearRate())
	runner.AddMetric(metrics.NewMeanConfidence())
	runner.AddMetric(metrics.NewGripReserve())

	fmt.Printf("running %s scenario...\n", name)
	start := time.Now()

	result, err := runner.Run(context.Background(), sim.ColdTire(simCfg), simCfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(name, simCfg, result)
	if err != nil {
		return err
	}

	if exportPath == "-" {
		if err := storage.ExportJSONStdout(name, simCfg, result); err != nil {
			return err
		}
	} else if exportPath != "" {
		if err := storage.ExportJSON(exportPath, name, simCfg, result); err != nil {
			return err
		}
	}

	final := result.Final()
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("ticks: %d\n", result.StepsTaken)
	fmt.Printf("final wear: %.4f  surface: %.1f°C  core: %.1f°C\n", final.Wear, final.SurfaceTemp, final.CoreTemp)
	for _, e := range result.Errors {
		fmt.Printf("warning: %v\n", e)
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg, err := resolveConfig(cmd, name)
	if err != nil {
		return err
	}
	sc, err := buildScenario(name, cmd)
	if err != nil {
		return err
	}

	simCfg := cfg.SimConfig()
	return viz.Run(sc, sim.ColdTire(simCfg), simCfg)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tDURATION\tDT\tTICKS\tWEAR")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%d\t%.4f\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Ticks,
			run.FinalWear,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	trace, err := st.LoadTrace(runID, column)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, storage.Columns())
	}
	if len(trace.Values) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("samples: %d\n\n", len(trace.Values))

	graph := asciigraph.Plot(trace.Values,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s vs time", column)),
	)
	fmt.Println(graph)

	if svgPath != "" {
		svg := export.TraceToSVG(trace, 800, 300, "#00ff88")
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", svgPath)
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	out := os.Stdout
	if toFile != "" {
		f, err := os.Create(toFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func benchScenario(cmd *cobra.Command, args []string) error {
	name := args[0]

	sc, err := scenario.ByName(name)
	if err != nil {
		return err
	}

	durations := []float64{1.0, 10.0, 60.0}
	dts := []float64{0.001, 0.01, 0.1}

	fmt.Printf("benchmarking %s\n\n", name)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DURATION\tDT\tTICKS\tTIME\tTICKS/SEC")

	for _, dur := range durations {
		for _, step := range dts {
			cfg := sim.DefaultConfig()
			cfg.Dt = step
			cfg.Duration = dur

			runner := sim.New(sc)
			start := time.Now()
			result, err := runner.Run(context.Background(), sim.ColdTire(cfg), cfg)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			ticksPerSec := float64(result.StepsTaken) / elapsed.Seconds()
			fmt.Fprintf(w, "%.1fs\t%.4fs\t%d\t%v\t%.0f\n",
				dur, step, result.StepsTaken, elapsed, ticksPerSec)
		}
	}

	return w.Flush()
}
