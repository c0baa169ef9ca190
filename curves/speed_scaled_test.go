package curves

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fanBase(t *testing.T) Func2 {
	t.Helper()
	c, err := New(FanPressureRise, 600, -15, -40, 0.2, -0.001, 0.05)
	require.NoError(t, err)
	f, err := c.Func2()
	require.NoError(t, err)
	return f
}

func TestSpeedScaledAtReferenceSpeedIsBase(t *testing.T) {
	base := fanBase(t)
	s, err := NewSpeedScaled(base, 1450)
	require.NoError(t, err)

	for _, q := range []float64{0, 0.01, 0.7, 2.5, 9.9} {
		for _, p := range []float64{-50, 0, 125, 400} {
			got, err := s.Evaluate(q, p, 1450)
			require.NoError(t, err)
			assert.Equal(t, base(q, p), got, "q=%v p=%v", q, p)
		}
	}
}

func TestSpeedScaledAffinityLaws(t *testing.T) {
	base := func(q, _ float64) float64 { return 500 - 10*q*q }
	s, err := NewSpeedScaled(base, 1000)
	require.NoError(t, err)

	// Shut-off pressure scales with the square of the speed ratio.
	got, err := s.Evaluate(0, 0, 2000)
	require.NoError(t, err)
	assert.InDelta(t, 2000.0, got, 1e-12)

	// A point (Q, ΔP) at Nref maps to (rQ, r^2 ΔP) at r*Nref.
	got, err = s.Evaluate(3, 0, 500)
	require.NoError(t, err)
	assert.InDelta(t, 0.25*(500-10*36), got, 1e-9)
}

func TestSpeedScaledDivisionByZero(t *testing.T) {
	base := fanBase(t)

	_, err := NewSpeedScaled(base, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	s, err := NewSpeedScaled(base, 1450)
	require.NoError(t, err)
	_, err = s.Evaluate(1, 0, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = s.AtDuctPressure(0).PressureRise(1, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestDuctFanCurve(t *testing.T) {
	base := fanBase(t)
	s, err := NewSpeedScaled(base, 1450)
	require.NoError(t, err)

	d := s.AtDuctPressure(150)
	got, err := d.PressureRise(1.2, 1200)
	require.NoError(t, err)
	want, err := s.Evaluate(1.2, 150, 1200)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1450.0, s.ReferenceSpeed())
}

func TestSpeedScaledNilBase(t *testing.T) {
	s, err := NewSpeedScaled(nil, 1450)
	assert.ErrorIs(t, err, ErrNilFunction)
	assert.Nil(t, s)
}
