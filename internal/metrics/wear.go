package metrics

import "github.com/san-kum/tiresim/internal/sim"

// WearRate reports the average wear accumulated per second of
// simulated time.
type WearRate struct {
	name      string
	firstWear float64
	lastWear  float64
	firstTime float64
	lastTime  float64
	samples   int
}

func NewWearRate() *WearRate {
	return &WearRate{name: "wear_rate"}
}

func (w *WearRate) Name() string { return w.name }

func (w *WearRate) Observe(rec sim.TickRecord) {
	if w.samples == 0 {
		w.firstWear = float64(rec.State.Wear)
		w.firstTime = rec.Time
	}
	w.lastWear = float64(rec.State.Wear)
	w.lastTime = rec.Time
	w.samples++
}

func (w *WearRate) Value() float64 {
	span := w.lastTime - w.firstTime
	if w.samples < 2 || span <= 0 {
		return 0
	}
	return (w.lastWear - w.firstWear) / span
}

func (w *WearRate) Reset() {
	w.firstWear = 0
	w.lastWear = 0
	w.firstTime = 0
	w.lastTime = 0
	w.samples = 0
}
