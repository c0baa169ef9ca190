package curves

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsWrongCoefficientCount(t *testing.T) {
	for _, f := range Families {
		t.Run(string(f), func(t *testing.T) {
			n := f.CoefficientCount()

			_, err := New(f, make([]float64, n-1)...)
			assert.ErrorIs(t, err, ErrInvalidCoefficientCount)

			_, err = New(f, make([]float64, n+1)...)
			assert.ErrorIs(t, err, ErrInvalidCoefficientCount)

			_, err = New(f)
			assert.ErrorIs(t, err, ErrInvalidCoefficientCount)

			_, err = New(f, make([]float64, n)...)
			assert.NoError(t, err)
		})
	}
}

func TestFamilyArity(t *testing.T) {
	want := map[Family][2]int{
		Linear:                 {2, 1},
		Quadratic:              {3, 1},
		Cubic:                  {4, 1},
		Quartic:                {5, 1},
		Exponent:               {3, 1},
		QuadraticLinear:        {6, 2},
		CubicLinear:            {8, 2},
		Biquadratic:            {6, 2},
		Bicubic:                {13, 2},
		Triquadratic:           {11, 3},
		FunctionalPressureDrop: {2, 1},
		FanPressureRise:        {6, 2},
		RectangularHyperbola2:  {3, 1},
	}
	require.Len(t, Families, len(want))
	for f, w := range want {
		assert.Equal(t, w[0], f.CoefficientCount(), f)
		assert.Equal(t, w[1], f.Variables(), f)
	}
}

func TestEvaluateForms(t *testing.T) {
	seq := func(n int) []float64 {
		c := make([]float64, n)
		for i := range c {
			c[i] = float64(i + 1)
		}
		return c
	}
	x, y, z := 2.0, 3.0, 0.5

	tests := []struct {
		family Family
		coeffs []float64
		inputs []float64
		want   float64
	}{
		{Linear, []float64{1, 2}, []float64{x}, 1 + 2*x},
		{Quadratic, seq(3), []float64{x}, 1 + 2*x + 3*x*x},
		{Cubic, seq(4), []float64{x}, 1 + 2*x + 3*x*x + 4*x*x*x},
		{Quartic, seq(5), []float64{x}, 1 + 2*x + 3*x*x + 4*x*x*x + 5*x*x*x*x},
		{Exponent, []float64{1, 2, 0.5}, []float64{4}, 1 + 2*2},
		{QuadraticLinear, seq(6), []float64{x, y}, 1 + 2*x + 3*x*x + 4*y + 5*x*y + 6*x*x*y},
		{CubicLinear, seq(8), []float64{x, y}, 1 + 2*x + 3*x*x + 4*x*x*x + 5*y + 6*x*y + 7*x*x*y + 8*x*x*x*y},
		{Biquadratic, seq(6), []float64{x, y}, 1 + 2*x + 3*x*x + 4*y + 5*y*y + 6*x*y},
		{FanPressureRise, seq(6), []float64{x, y}, 1 + 2*x + 3*x*x + 4*y + 5*y*y + 6*x*y},
		{
			Bicubic, seq(13), []float64{x, y},
			1 + 2*x + 3*x*x + 4*x*x*x + 5*y + 6*y*y + 7*y*y*y + 8*x*y +
				9*x*x*y + 10*x*y*y + 11*x*x*y*y + 12*x*y*y*y + 13*x*x*x*y,
		},
		{
			Triquadratic, seq(11), []float64{x, y, z},
			1 + 2*x + 3*x*x + 4*y + 5*y*y + 6*z + 7*z*z + 8*x*y + 9*x*z + 10*y*z + 11*x*y*z,
		},
		{FunctionalPressureDrop, []float64{10, 2}, []float64{3}, 10 + 2*9},
		{RectangularHyperbola2, []float64{4, 1, 0.5}, []float64{x}, 4*x/(1+x) + 0.5*x},
	}

	for _, tt := range tests {
		t.Run(string(tt.family), func(t *testing.T) {
			got, err := Evaluate(tt.family, tt.coeffs, tt.inputs...)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	c, err := New(Bicubic, 0.1, -0.2, 0.3, -0.4, 0.5, -0.6, 0.7, -0.8, 0.9, -1.0, 1.1, -1.2, 1.3)
	require.NoError(t, err)

	first, err := c.Evaluate(1.234, 5.678)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		got, err := c.Evaluate(1.234, 5.678)
		require.NoError(t, err)
		assert.Equal(t, math.Float64bits(first), math.Float64bits(got))
	}
}

func TestEvaluateRejectsWrongInputCount(t *testing.T) {
	c, err := New(Biquadratic, 1, 2, 3, 4, 5, 6)
	require.NoError(t, err)

	_, err = c.Evaluate(1)
	assert.ErrorIs(t, err, ErrInvalidInputCount)
	_, err = c.Evaluate(1, 2, 3)
	assert.ErrorIs(t, err, ErrInvalidInputCount)

	_, err = c.Func1()
	assert.ErrorIs(t, err, ErrInvalidInputCount)
	_, err = c.Func3()
	assert.ErrorIs(t, err, ErrInvalidInputCount)

	f, err := c.Func2()
	require.NoError(t, err)
	want, _ := c.Evaluate(1, 2)
	assert.Equal(t, want, f(1, 2))
}

func TestCurveCopiesCoefficients(t *testing.T) {
	coeffs := []float64{1, 2, 3}
	c, err := New(Quadratic, coeffs...)
	require.NoError(t, err)

	coeffs[0] = 100
	got, err := c.Evaluate(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	out := c.Coefficients()
	out[1] = 100
	assert.Equal(t, []float64{1, 2, 3}, c.Coefficients())
}

func TestParseFamily(t *testing.T) {
	tests := []struct {
		in   string
		want Family
	}{
		{"linear", Linear},
		{"fan-pressure-rise", FanPressureRise},
		{"Quadratic_Linear", QuadraticLinear},
		{"rectangular-hyperbola-2", RectangularHyperbola2},
		{" bicubic ", Bicubic},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFamily(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFamily("sextic")
	assert.ErrorIs(t, err, ErrUnknownFamily)

	_, err = New(Family("sextic"), 1)
	assert.ErrorIs(t, err, ErrUnknownFamily)
}
