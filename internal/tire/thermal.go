package tire

import "math"

const (
	// Share of generated heat routed to the surface node; the rest
	// reaches the core. The core also cools at half the surface rate
	// through the same ambient sink, approximating a thin-surface /
	// thick-core thermal lag without a diffusion solve.
	surfaceHeatShare = 0.7
	coreHeatShare    = 0.3
	coreCoolingShare = 0.5

	pressureScale = 10000.0
	forceScale    = 10000.0
)

// WearThermalInput carries one tick of slip, pressure and thermal
// state. The stepper reads it and never retains it.
type WearThermalInput struct {
	SlipRatio           float32
	SlipAngle           float32
	PeakPressure        float32
	TotalForceMagnitude float32
	CurrentWear         float32
	BaseWearRate        float32
	BaseHeatGeneration  float32
	CoolingRate         float32
	AmbientTemp         float32
	SurfaceTemp         float32
	CoreTemp            float32
	Delta               float32
}

// WearThermalOutput is the advanced wear fraction and the two
// temperature nodes. The caller feeds these back into the next tick's
// input to get continuous evolution.
type WearThermalOutput struct {
	Wear        float32
	SurfaceTemp float32
	CoreTemp    float32
}

// StepWearAndTemperature advances wear and the surface/core temperature
// nodes by one explicit time step. Wear is clamped to [0, 1] and forced
// to 0 if it is not finite, so upstream NaN or Inf never poisons
// downstream state.
func StepWearAndTemperature(in WearThermalInput) WearThermalOutput {
	wearRate := in.BaseWearRate * (1 + 5*in.SlipRatio + 3*abs32(in.SlipAngle))
	wearRate *= in.PeakPressure / pressureScale

	wear := in.CurrentWear + wearRate*in.Delta
	if wear < 0 {
		wear = 0
	}
	if wear > 1 {
		wear = 1
	}
	if math.IsNaN(float64(wear)) || math.IsInf(float64(wear), 0) {
		wear = 0
	}

	heat := in.BaseHeatGeneration * (1 + 3*in.SlipRatio + 2*abs32(in.SlipAngle))
	heat *= in.TotalForceMagnitude / forceScale

	cooling := in.CoolingRate * (in.AmbientTemp - in.SurfaceTemp)

	return WearThermalOutput{
		Wear:        wear,
		SurfaceTemp: in.SurfaceTemp + (heat*surfaceHeatShare+cooling)*in.Delta,
		CoreTemp:    in.CoreTemp + (heat*coreHeatShare+cooling*coreCoolingShare)*in.Delta,
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
