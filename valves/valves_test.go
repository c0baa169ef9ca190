package valves

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCharacteristic(t *testing.T) {
	for _, s := range []string{"equal_percentage", "linear", "quick_opening"} {
		c, err := ParseCharacteristic(s)
		require.NoError(t, err)
		assert.Equal(t, s, string(c))
	}
	_, err := ParseCharacteristic("butterfly")
	assert.ErrorIs(t, err, ErrUnknownCharacteristic)
}

func TestTwoWayValveKv(t *testing.T) {
	tests := []struct {
		name string
		c    Characteristic
		x    float64
		want float64
	}{
		{"closed below minimum stroke", Linear, 0.1, 0},
		{"closed at minimum stroke", EqualPercentage, 0.2, 0},
		{"linear", Linear, 0.6, 10 * 0.5},
		{"equal percentage", EqualPercentage, 0.6, 10 * math.Pow(0.5, 3)},
		{"quick opening", QuickOpening, 0.6, 10 * math.Sqrt(0.5)},
		{"full stroke", EqualPercentage, 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewTwoWayValve(TwoWayConfig{
				Port:          Port{Kvs: 10, Characteristic: tt.c, Exponent: 3},
				MinimumStroke: 0.2,
				Density:       998,
			})
			require.NoError(t, err)
			assert.InDelta(t, tt.want, v.Kv(tt.x), 1e-12)
		})
	}
}

func TestTwoWayValveCompute(t *testing.T) {
	v, err := NewTwoWayValve(TwoWayConfig{
		Port:    Port{Kvs: 16, Characteristic: Linear},
		Density: 1000,
	})
	require.NoError(t, err)

	f := v.Compute(0.5, 25)
	assert.InDelta(t, 8, f.Kv, 1e-12)
	assert.InDelta(t, 40, f.VolumeFlow, 1e-12)
	assert.InDelta(t, 1000*40/3600.0, f.MassFlow, 1e-12)
}

func TestValveValidation(t *testing.T) {
	_, err := NewTwoWayValve(TwoWayConfig{Port: Port{Kvs: 1, Characteristic: "butterfly"}})
	assert.ErrorIs(t, err, ErrUnknownCharacteristic)

	_, err = NewTwoWayValve(TwoWayConfig{Port: Port{Kvs: 1, Characteristic: Linear}, MinimumStroke: 1})
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = NewThreeWayValve(ThreeWayConfig{
		A: Port{Kvs: 1, Characteristic: Linear},
		B: Port{Kvs: 1},
	})
	assert.ErrorIs(t, err, ErrUnknownCharacteristic)
}

func TestThreeWayValve(t *testing.T) {
	v, err := NewThreeWayValve(ThreeWayConfig{
		A:             Port{Kvs: 10, Characteristic: EqualPercentage, Exponent: 3.5},
		B:             Port{Kvs: 10, Characteristic: Linear},
		MinimumStroke: 0.15,
		Density:       1000,
		BypassRatio:   DefaultBypassRatio,
	})
	require.NoError(t, err)

	// Fully open A-AB closes B-AB.
	f := v.Compute(1, 16, 16)
	assert.InDelta(t, 10, f.A.Kv, 1e-12)
	assert.InDelta(t, 40, f.A.VolumeFlow, 1e-12)
	assert.Equal(t, Flow{}, f.B)

	// Closed A-AB leaves B-AB at the bypass ratio.
	f = v.Compute(0, 16, 9)
	assert.Equal(t, Flow{}, f.A)
	assert.InDelta(t, 7, f.B.Kv, 1e-12)
	assert.InDelta(t, 21, f.B.VolumeFlow, 1e-12)
	assert.InDelta(t, 1000*21/3600.0, f.B.MassFlow, 1e-12)

	s := (0.6 - 0.15) / 0.85
	assert.InDelta(t, 10*math.Pow(s, 3.5), v.KvA(0.6), 1e-12)
	assert.InDelta(t, 0.7*10*(0.4-0.15)/0.85, v.KvB(0.6), 1e-12)
}
