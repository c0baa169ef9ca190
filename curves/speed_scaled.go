package curves

import "fmt"

/*
SpeedScaled rescales a fan pressure curve fitted at a reference speed to any
other speed with the fan affinity laws:

	ΔP(Q, Pduct, N) = (N/Nref)^2 * base(Q/(N/Nref), Pduct)

	Notes:
	    Flow scales with the speed ratio and pressure rise with its square.
*/
type SpeedScaled struct {
	base     Func2
	refSpeed float64
}

/*
NewSpeedScaled wraps base, a pressure rise curve of (Q, Pduct) at refSpeed.

	Args:
	    base: ΔP(Q, Pduct) at the reference speed, Pa
	    refSpeed: reference speed, rpm

	Returns:
	    ErrNilFunction when base is nil, ErrDivisionByZero when refSpeed is zero
*/
func NewSpeedScaled(base Func2, refSpeed float64) (*SpeedScaled, error) {
	if base == nil {
		return nil, ErrNilFunction
	}
	if refSpeed == 0 {
		return nil, fmt.Errorf("%w: reference speed is zero", ErrDivisionByZero)
	}
	return &SpeedScaled{base: base, refSpeed: refSpeed}, nil
}

// ReferenceSpeed returns Nref, rpm.
func (s *SpeedScaled) ReferenceSpeed() float64 {
	return s.refSpeed
}

// Evaluate returns the pressure rise, Pa, at flow q, duct pressure pDuct and speed n.
func (s *SpeedScaled) Evaluate(q, pDuct, n float64) (float64, error) {
	if n == 0 {
		return 0, fmt.Errorf("%w: speed is zero", ErrDivisionByZero)
	}
	r := n / s.refSpeed
	return r * r * s.base(q/r, pDuct), nil
}

// AtDuctPressure fixes the duct pressure and returns a fan curve of flow and speed.
func (s *SpeedScaled) AtDuctPressure(pDuct float64) DuctFanCurve {
	return DuctFanCurve{scaled: s, pDuct: pDuct}
}

// DuctFanCurve is a speed-scaled fan curve at a fixed duct pressure.
type DuctFanCurve struct {
	scaled *SpeedScaled
	pDuct  float64
}

// PressureRise returns the fan pressure rise, Pa, at flow q, m3/s, and speed n, rpm.
func (d DuctFanCurve) PressureRise(q, n float64) (float64, error) {
	return d.scaled.Evaluate(q, d.pDuct, n)
}
