package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/tiresim/internal/sim"
)

type ExportData struct {
	Scenario     string             `json:"scenario"`
	Dt           float64            `json:"dt"`
	Duration     float64            `json:"duration"`
	Ticks        int                `json:"ticks"`
	Times        []float64          `json:"times"`
	Wear         []float32          `json:"wear"`
	SurfaceTemps []float32          `json:"surface_temps"`
	CoreTemps    []float32          `json:"core_temps"`
	Confidence   []float32          `json:"contact_confidence"`
	Metrics      map[string]float64 `json:"metrics"`
}

func buildExport(scenario string, cfg sim.Config, result *sim.Result) ExportData {
	n := len(result.Records)
	data := ExportData{
		Scenario:     scenario,
		Dt:           cfg.Dt,
		Duration:     cfg.Duration,
		Ticks:        result.StepsTaken,
		Times:        make([]float64, n),
		Wear:         make([]float32, n),
		SurfaceTemps: make([]float32, n),
		CoreTemps:    make([]float32, n),
		Confidence:   make([]float32, n),
		Metrics:      result.Metrics,
	}
	for i, rec := range result.Records {
		data.Times[i] = rec.Time
		data.Wear[i] = rec.State.Wear
		data.SurfaceTemps[i] = rec.State.SurfaceTemp
		data.CoreTemps[i] = rec.State.CoreTemp
		data.Confidence[i] = rec.Patch.ContactConfidence
	}
	return data
}

func ExportJSON(path, scenario string, cfg sim.Config, result *sim.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return encodeExport(file, scenario, cfg, result)
}

func ExportJSONStdout(scenario string, cfg sim.Config, result *sim.Result) error {
	return encodeExport(os.Stdout, scenario, cfg, result)
}

func encodeExport(w io.Writer, scenario string, cfg sim.Config, result *sim.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildExport(scenario, cfg, result))
}
