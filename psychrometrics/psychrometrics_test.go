package psychrometrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaturationVaporPressure(t *testing.T) {
	tests := []struct {
		theta float64
		want  float64
		delta float64
	}{
		{0, 611.2, 1},
		{20, 2339, 3},
		{-10, 259.9, 1},
		{100, 101325, 200},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, SaturationVaporPressure(tt.theta), tt.delta, "theta=%v", tt.theta)
	}
}

func TestHumidityRatioRoundTrip(t *testing.T) {
	for _, pV := range []float64{500, 1200, 2300} {
		x := HumidityRatio(pV)
		assert.InDelta(t, pV, VaporPressure(x), 0.5)
	}
}

func TestRelativeHumidity(t *testing.T) {
	pVs := SaturationVaporPressure(26)
	assert.InDelta(t, 50, RelativeHumidity(pVs/2, pVs), 1e-12)
	assert.InDelta(t, 100, RelativeHumidity(pVs, pVs), 1e-12)
}

func TestEnthalpy(t *testing.T) {
	assert.Equal(t, 0.0, Enthalpy(0, 0))
	assert.InDelta(t, 1005*26+0.0105*(2501000+1846*26), Enthalpy(26, 0.0105), 1e-9)
	assert.InDelta(t, 26, Temperature(Enthalpy(26, 0.0105), 0.0105), 1e-12)
}

func TestRelativeHumidityAt(t *testing.T) {
	x := HumidityRatioAt(26, 60)
	assert.InDelta(t, 0.0126, x, 2e-4)
	assert.InDelta(t, 60, RelativeHumidityAt(26, x), 0.05)
	assert.Equal(t, 0.0, HumidityRatioAt(26, 0))

	// Heating at constant humidity ratio lowers the relative humidity.
	assert.Less(t, RelativeHumidityAt(30, x), 60.0)
}
