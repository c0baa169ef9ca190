package fans

// FanCurve gives the fan pressure rise, Pa, at volumetric flow q, m3/s, and speed n, rpm.
//
// Curves that can fail (a speed-scaled curve at zero speed) report it through the error.
type FanCurve interface {
	PressureRise(q, n float64) (float64, error)
}

// FanCurveFunc adapts a plain function to FanCurve.
type FanCurveFunc func(q, n float64) float64

// PressureRise calls f(q, n).
func (f FanCurveFunc) PressureRise(q, n float64) (float64, error) {
	return f(q, n), nil
}

// SystemCurve gives the duct system pressure loss, Pa, at volumetric flow q, m3/s.
// It is expected to be non-decreasing in q.
type SystemCurve func(q float64) float64

// LossFunc maps a power, W, to the loss it incurs, W.
type LossFunc func(p float64) float64

// NoLoss is the LossFunc of a component that is not modeled (direct drive, no VFD).
func NoLoss(float64) float64 { return 0 }

// StaticReset gives the duct static pressure setpoint, Pa, at volumetric flow q, m3/s.
type StaticReset func(q float64) float64

// NoStaticReset holds the duct static pressure setpoint at 0 Pa.
func NoStaticReset(float64) float64 { return 0 }
