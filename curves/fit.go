package curves

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Sample is one rated performance point. Unused variables are left at zero.
type Sample struct {
	X      float64 `csv:"x"`
	Y      float64 `csv:"y"`
	Z      float64 `csv:"z"`
	Output float64 `csv:"output"`
}

// FitResult is a fitted curve with its goodness of fit over the samples.
type FitResult struct {
	Curve    *Curve
	RSquared float64
	RMSE     float64
}

/*
Fit derives curve coefficients from rated data by ordinary least squares.

	Args:
	    family: a family linear in its coefficients
	    samples: rated points, at least family.CoefficientCount() of them

	Returns:
	    ErrNotLinearInCoefficients for exponent and rectangular_hyperbola2,
	    ErrTooFewSamples when the system is underdetermined

	Notes:
	    The design matrix holds the family's terms evaluated at each sample and is
	    solved through QR. A rank deficient design (e.g. a second variable held
	    constant) is reported as an error by gonum.
*/
func Fit(family Family, samples []Sample) (*FitResult, error) {
	f, ok := forms[family]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, string(family))
	}
	if f.basis == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotLinearInCoefficients, family)
	}
	n, k := len(samples), f.coeffs
	if n < k {
		return nil, fmt.Errorf("%w: %s needs %d samples, got %d", ErrTooFewSamples, family, k, n)
	}

	a := mat.NewDense(n, k, nil)
	b := mat.NewVecDense(n, nil)
	var terms [maxTerms]float64
	for i, s := range samples {
		f.basis(terms[:], s.X, s.Y, s.Z)
		a.SetRow(i, terms[:k])
		b.SetVec(i, s.Output)
	}

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("fit %s: %w", family, err)
	}

	c, err := New(family, x.RawVector().Data...)
	if err != nil {
		return nil, err
	}

	estimates := make([]float64, n)
	values := make([]float64, n)
	for i, s := range samples {
		estimates[i], _ = c.Evaluate(s.inputs(f.vars)...)
		values[i] = s.Output
	}
	resid := make([]float64, n)
	floats.SubTo(resid, values, estimates)

	return &FitResult{
		Curve:    c,
		RSquared: stat.RSquaredFrom(estimates, values, nil),
		RMSE:     floats.Norm(resid, 2) / math.Sqrt(float64(n)),
	}, nil
}

func (s Sample) inputs(vars int) []float64 {
	return []float64{s.X, s.Y, s.Z}[:vars]
}
