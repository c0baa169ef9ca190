package fans

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy_models/curves"
)

func quadraticFan(q, _ float64) float64 { return 500 - 10*q*q }

func quadraticSystem(q float64) float64 { return 50 + 5*q*q }

// countingFan counts pressure rise evaluations.
type countingFan struct {
	f     FanCurveFunc
	calls int
}

func (c *countingFan) PressureRise(q, n float64) (float64, error) {
	c.calls++
	return c.f(q, n), nil
}

func TestSolveQuadraticScenario(t *testing.T) {
	q, err := SolveEquilibrium(FanCurveFunc(quadraticFan), quadraticSystem, 1450, Bracket{Min: 0.01, Max: 10})
	require.NoError(t, err)

	// 500 - 10 Q^2 = 50 + 5 Q^2  =>  Q = sqrt(30)
	assert.InDelta(t, math.Sqrt(30), q, 1e-9)
	assert.InDelta(t, quadraticSystem(q), quadraticFan(q, 1450), 1e-6)
}

func TestSolveIsIdempotent(t *testing.T) {
	b := Bracket{Min: 0.01, Max: 10}
	first, err := SolveEquilibrium(FanCurveFunc(quadraticFan), quadraticSystem, 900, b)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		q, err := SolveEquilibrium(FanCurveFunc(quadraticFan), quadraticSystem, 900, b)
		require.NoError(t, err)
		assert.Equal(t, first, q)
	}
}

func TestSolveFindsUniqueRootOfMonotoneCurves(t *testing.T) {
	tests := []struct {
		name   string
		fan    FanCurveFunc
		system SystemCurve
		want   float64
	}{
		{
			name:   "linear fan, linear system",
			fan:    func(q, _ float64) float64 { return 300 - 40*q },
			system: func(q float64) float64 { return 20 * q },
			want:   5,
		},
		{
			name:   "quadratic system without static offset",
			fan:    func(q, _ float64) float64 { return 800 - 50*q },
			system: func(q float64) float64 { return 30 * q * q },
			// 30 q^2 + 50 q - 800 = 0
			want: (-50 + math.Sqrt(50*50+4*30*800)) / 60,
		},
		{
			name:   "root near the lower bound",
			fan:    func(q, _ float64) float64 { return 100 - 1000*q },
			system: func(q float64) float64 { return 1000 * q },
			want:   0.05,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := SolveEquilibrium(tt.fan, tt.system, 1000, DefaultBracket)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, q, 1e-9)
			assert.GreaterOrEqual(t, q, DefaultBracket.Min)
			assert.LessOrEqual(t, q, DefaultBracket.Max)
		})
	}
}

func TestSolveNoEquilibriumInRange(t *testing.T) {
	fan := &countingFan{f: quadraticFan}
	systemCalls := 0
	system := func(q float64) float64 {
		systemCalls++
		return quadraticSystem(q)
	}

	// residual(5) = 500 - 250 - 50 - 125 = 75 > 0, residual(0.01) > 0
	_, err := SolveEquilibrium(fan, system, 1000, Bracket{Min: 0.01, Max: 5})
	assert.ErrorIs(t, err, ErrNoEquilibriumInRange)
	assert.Equal(t, 2, fan.calls)
	assert.Equal(t, 2, systemCalls)
}

func TestSolveDidNotConverge(t *testing.T) {
	s := DefaultSolver()
	s.MaxIterations = 1

	_, err := s.Solve(FanCurveFunc(quadraticFan), quadraticSystem, 1000, Bracket{Min: 0.01, Max: 10})
	assert.ErrorIs(t, err, ErrSolverDidNotConverge)

	s.MaxIterations = 0
	_, err = s.Solve(FanCurveFunc(quadraticFan), quadraticSystem, 1000, Bracket{Min: 0.01, Max: 10})
	assert.ErrorIs(t, err, ErrSolverDidNotConverge)
}

func TestSolveRootAtBracketEnd(t *testing.T) {
	fan := FanCurveFunc(func(q, _ float64) float64 { return 100 - 10*q })
	system := func(q float64) float64 { return 10 * q }

	q, err := SolveEquilibrium(fan, system, 1, Bracket{Min: 5, Max: 8})
	require.NoError(t, err)
	assert.Equal(t, 5.0, q)

	q, err = SolveEquilibrium(fan, system, 1, Bracket{Min: 1, Max: 5})
	require.NoError(t, err)
	assert.Equal(t, 5.0, q)
}

func TestSolveInvalidBracket(t *testing.T) {
	for _, b := range []Bracket{
		{Min: 10, Max: 0.01},
		{Min: 1, Max: 1},
		{Min: math.NaN(), Max: 1},
		{Min: 0.01, Max: math.Inf(1)},
	} {
		_, err := SolveEquilibrium(FanCurveFunc(quadraticFan), quadraticSystem, 1000, b)
		assert.ErrorIs(t, err, ErrInvalidBracket, "%+v", b)
	}
}

func TestSolveSpeedScaledCurve(t *testing.T) {
	base, err := curves.New(curves.FanPressureRise, 500, 0, -10, 0, 0, 0)
	require.NoError(t, err)
	f2, err := base.Func2()
	require.NoError(t, err)
	scaled, err := curves.NewSpeedScaled(f2, 1000)
	require.NoError(t, err)
	fan := scaled.AtDuctPressure(0)

	q, err := SolveEquilibrium(fan, quadraticSystem, 1000, DefaultBracket)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(30), q, 1e-9)

	// Lower speed, lower flow.
	qHalf, err := SolveEquilibrium(fan, quadraticSystem, 500, DefaultBracket)
	require.NoError(t, err)
	assert.Less(t, qHalf, q)

	// At zero speed the affinity scaling divides by zero.
	_, err = SolveEquilibrium(fan, quadraticSystem, 0, DefaultBracket)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestSolveNilCurves(t *testing.T) {
	_, err := SolveEquilibrium(nil, quadraticSystem, 1, DefaultBracket)
	assert.ErrorIs(t, err, ErrNilCollaborator)
	_, err = SolveEquilibrium(FanCurveFunc(quadraticFan), nil, 1, DefaultBracket)
	assert.ErrorIs(t, err, ErrNilCollaborator)
}

func TestSolveNaNInsideBracket(t *testing.T) {
	fan := FanCurveFunc(func(q, _ float64) float64 {
		if q > 0.02 && q < 9.9 {
			return math.NaN()
		}
		return 500 - 10*q*q
	})

	q, err := SolveEquilibrium(fan, quadraticSystem, 1000, Bracket{Min: 0.01, Max: 10})
	assert.ErrorIs(t, err, ErrSolverDidNotConverge)
	assert.Equal(t, 0.0, q)
}

func TestSolveSmallResidualStopsOnFlow(t *testing.T) {
	fan := FanCurveFunc(func(q, _ float64) float64 { return 1e-10 * (5 - q) })
	system := func(float64) float64 { return 0 }

	q, err := SolveEquilibrium(fan, system, 1000, Bracket{Min: 0.01, Max: 10})
	require.NoError(t, err)
	assert.InDelta(t, 5, q, 1e-9)

	// An absolute residual tolerance in Pa accepts any flow whose residual is below it.
	s := DefaultSolver()
	s.ResidualTolerance = 1e-6
	q, err = s.Solve(fan, system, 1000, Bracket{Min: 0.01, Max: 10})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, q, 0.01)
	assert.LessOrEqual(t, q, 10.0)
}
