package curves

import (
	"fmt"
)

type (
	// Func1 is a curve of one variable.
	Func1 func(x float64) float64
	// Func2 is a curve of two variables.
	Func2 func(x, y float64) float64
	// Func3 is a curve of three variables.
	Func3 func(x, y, z float64) float64
)

// Curve is an immutable performance curve bound to its coefficients.
type Curve struct {
	family Family
	coeffs []float64
	eval   func(x, y, z float64) float64
}

/*
New builds a curve of the given family.

	Args:
	    family: curve family
	    coeffs: coefficients C1..Cn in the order of the family's defining expression

	Returns:
	    the curve, or ErrInvalidCoefficientCount when len(coeffs) does not match the family
*/
func New(family Family, coeffs ...float64) (*Curve, error) {
	f, ok := forms[family]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, string(family))
	}
	if len(coeffs) != f.coeffs {
		return nil, fmt.Errorf("%w: %s needs %d coefficients, got %d",
			ErrInvalidCoefficientCount, family, f.coeffs, len(coeffs))
	}

	c := make([]float64, len(coeffs))
	copy(c, coeffs)

	cv := &Curve{family: family, coeffs: c}
	if f.basis != nil {
		basis := f.basis
		cv.eval = func(x, y, z float64) float64 {
			var terms [maxTerms]float64
			basis(terms[:], x, y, z)
			s := 0.0
			for i, ci := range c {
				s += ci * terms[i]
			}
			return s
		}
	} else {
		eval := f.eval
		cv.eval = func(x, y, z float64) float64 {
			return eval(c, x, y, z)
		}
	}
	return cv, nil
}

// Evaluate is the one-shot form of New followed by (*Curve).Evaluate.
func Evaluate(family Family, coeffs []float64, inputs ...float64) (float64, error) {
	c, err := New(family, coeffs...)
	if err != nil {
		return 0, err
	}
	return c.Evaluate(inputs...)
}

// Family returns the family the curve was built with.
func (c *Curve) Family() Family {
	return c.family
}

// Coefficients returns a copy of the coefficient vector.
func (c *Curve) Coefficients() []float64 {
	out := make([]float64, len(c.coeffs))
	copy(out, c.coeffs)
	return out
}

// Evaluate returns the curve output for exactly Family().Variables() inputs.
func (c *Curve) Evaluate(inputs ...float64) (float64, error) {
	if len(inputs) != c.family.Variables() {
		return 0, fmt.Errorf("%w: %s takes %d variables, got %d",
			ErrInvalidInputCount, c.family, c.family.Variables(), len(inputs))
	}
	var x [3]float64
	copy(x[:], inputs)
	return c.eval(x[0], x[1], x[2]), nil
}

// Func1 binds a one-variable curve as a plain function.
func (c *Curve) Func1() (Func1, error) {
	if err := c.checkVariables(1); err != nil {
		return nil, err
	}
	return func(x float64) float64 { return c.eval(x, 0, 0) }, nil
}

// Func2 binds a two-variable curve as a plain function.
func (c *Curve) Func2() (Func2, error) {
	if err := c.checkVariables(2); err != nil {
		return nil, err
	}
	return func(x, y float64) float64 { return c.eval(x, y, 0) }, nil
}

// Func3 binds a three-variable curve as a plain function.
func (c *Curve) Func3() (Func3, error) {
	if err := c.checkVariables(3); err != nil {
		return nil, err
	}
	return c.eval, nil
}

func (c *Curve) checkVariables(n int) error {
	if c.family.Variables() != n {
		return fmt.Errorf("%w: %s takes %d variables, not %d",
			ErrInvalidInputCount, c.family, c.family.Variables(), n)
	}
	return nil
}
