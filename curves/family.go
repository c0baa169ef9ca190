package curves

import (
	"fmt"
	"math"
	"strings"
)

// Family names a performance curve form. The form is resolved once, when a Curve is built.
type Family string

const (
	Linear                 Family = "linear"
	Quadratic              Family = "quadratic"
	Cubic                  Family = "cubic"
	Quartic                Family = "quartic"
	Exponent               Family = "exponent"
	QuadraticLinear        Family = "quadratic_linear"
	CubicLinear            Family = "cubic_linear"
	Biquadratic            Family = "biquadratic"
	Bicubic                Family = "bicubic"
	Triquadratic           Family = "triquadratic"
	FunctionalPressureDrop Family = "functional_pressure_drop"
	FanPressureRise        Family = "fan_pressure_rise"
	RectangularHyperbola2  Family = "rectangular_hyperbola2"
)

// Families lists every supported family in a stable order.
var Families = []Family{
	Linear,
	Quadratic,
	Cubic,
	Quartic,
	Exponent,
	QuadraticLinear,
	CubicLinear,
	Biquadratic,
	Bicubic,
	Triquadratic,
	FunctionalPressureDrop,
	FanPressureRise,
	RectangularHyperbola2,
}

// maxTerms is the largest coefficient count of any family (bicubic).
const maxTerms = 13

/*
form describes one curve family.

	coeffs: number of coefficients
	vars: number of independent variables
	basis: writes the term multiplied by each coefficient into dst, nil when the
	    family is not linear in its coefficients
	eval: direct evaluation, used when basis is nil
*/
type form struct {
	coeffs int
	vars   int
	basis  func(dst []float64, x, y, z float64)
	eval   func(c []float64, x, y, z float64) float64
}

var forms = map[Family]form{
	Linear: {coeffs: 2, vars: 1, basis: func(d []float64, x, _, _ float64) {
		d[0], d[1] = 1, x
	}},
	Quadratic: {coeffs: 3, vars: 1, basis: func(d []float64, x, _, _ float64) {
		d[0], d[1], d[2] = 1, x, x*x
	}},
	Cubic: {coeffs: 4, vars: 1, basis: func(d []float64, x, _, _ float64) {
		d[0], d[1], d[2], d[3] = 1, x, x*x, x*x*x
	}},
	Quartic: {coeffs: 5, vars: 1, basis: func(d []float64, x, _, _ float64) {
		d[0], d[1], d[2], d[3], d[4] = 1, x, x*x, x*x*x, x*x*x*x
	}},
	Exponent: {coeffs: 3, vars: 1, eval: func(c []float64, x, _, _ float64) float64 {
		return c[0] + c[1]*math.Pow(x, c[2])
	}},
	QuadraticLinear: {coeffs: 6, vars: 2, basis: func(d []float64, x, y, _ float64) {
		d[0], d[1], d[2] = 1, x, x*x
		d[3], d[4], d[5] = y, x*y, x*x*y
	}},
	CubicLinear: {coeffs: 8, vars: 2, basis: func(d []float64, x, y, _ float64) {
		d[0], d[1], d[2], d[3] = 1, x, x*x, x*x*x
		d[4], d[5], d[6], d[7] = y, x*y, x*x*y, x*x*x*y
	}},
	Biquadratic:     {coeffs: 6, vars: 2, basis: biquadraticBasis},
	FanPressureRise: {coeffs: 6, vars: 2, basis: biquadraticBasis},
	Bicubic: {coeffs: 13, vars: 2, basis: func(d []float64, x, y, _ float64) {
		d[0], d[1], d[2], d[3] = 1, x, x*x, x*x*x
		d[4], d[5], d[6] = y, y*y, y*y*y
		d[7], d[8], d[9], d[10] = x*y, x*x*y, x*y*y, x*x*y*y
		d[11], d[12] = x*y*y*y, x*x*x*y
	}},
	Triquadratic: {coeffs: 11, vars: 3, basis: func(d []float64, x, y, z float64) {
		d[0], d[1], d[2] = 1, x, x*x
		d[3], d[4] = y, y*y
		d[5], d[6] = z, z*z
		d[7], d[8], d[9], d[10] = x*y, x*z, y*z, x*y*z
	}},
	FunctionalPressureDrop: {coeffs: 2, vars: 1, basis: func(d []float64, v, _, _ float64) {
		d[0], d[1] = 1, v*v
	}},
	RectangularHyperbola2: {coeffs: 3, vars: 1, eval: func(c []float64, x, _, _ float64) float64 {
		return c[0]*x/(c[1]+x) + c[2]*x
	}},
}

// y = C1 + C2*x + C3*x^2 + C4*y + C5*y^2 + C6*x*y, shared with the fan pressure rise form (x = Q, y = Pduct).
func biquadraticBasis(d []float64, x, y, _ float64) {
	d[0], d[1], d[2] = 1, x, x*x
	d[3], d[4] = y, y*y
	d[5] = x * y
}

// ParseFamily accepts the family names above; hyphens and upper case are tolerated.
func ParseFamily(s string) (Family, error) {
	f := Family(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if f == "rectangular_hyperbola_2" {
		f = RectangularHyperbola2
	}
	if _, ok := forms[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFamily, s)
	}
	return f, nil
}

// CoefficientCount returns the coefficient vector length required by the family.
func (f Family) CoefficientCount() int {
	return forms[f].coeffs
}

// Variables returns the number of independent variables of the family.
func (f Family) Variables() int {
	return forms[f].vars
}

// LinearInCoefficients reports whether the family can be fitted by ordinary least squares.
func (f Family) LinearInCoefficients() bool {
	return forms[f].basis != nil
}

func (f Family) String() string {
	return string(f)
}
