package fans

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
)

// Bracket is a volumetric flow search interval, m3/s.
type Bracket struct {
	Min float64
	Max float64
}

// DefaultBracket starts just above zero flow and ends well above the flow of any single air handler fan.
var DefaultBracket = Bracket{Min: 0.01, Max: 20.0}

func (b Bracket) validate() error {
	if math.IsNaN(b.Min) || math.IsNaN(b.Max) || math.IsInf(b.Min, 0) || math.IsInf(b.Max, 0) {
		return fmt.Errorf("%w: [%v, %v] is not finite", ErrInvalidBracket, b.Min, b.Max)
	}
	if b.Min >= b.Max {
		return fmt.Errorf("%w: min %v is not below max %v", ErrInvalidBracket, b.Min, b.Max)
	}
	return nil
}

/*
Solver finds the flow at which a fan curve meets a system curve.

	FlowTolerance: absolute flow tolerance, m3/s
	RelativeTolerance: flow tolerance relative to the current estimate, -
	ResidualTolerance: absolute |fan - system| accepted as converged, Pa; 0 stops on flow only
	MaxIterations: iteration budget
*/
type Solver struct {
	FlowTolerance     float64
	RelativeTolerance float64
	ResidualTolerance float64
	MaxIterations     int
}

// DefaultSolver returns the tolerances of a standard Brent root finder.
func DefaultSolver() Solver {
	return Solver{
		FlowTolerance:     2e-12,
		RelativeTolerance: 4 * 2.220446049250313e-16,
		ResidualTolerance: 0,
		MaxIterations:     100,
	}
}

/*
Solve returns the equilibrium flow Q* in bracket for the given speed.

	Args:
	    fan: fan pressure rise curve, Pa
	    system: system pressure loss curve, Pa
	    speed: fan speed, rpm, held fixed
	    bracket: flow interval, m3/s

	Returns:
	    Q*, m3/s, inside bracket, with one of
	        ErrInvalidBracket when bracket is empty or not finite
	        ErrNoEquilibriumInRange when residual(Min) and residual(Max) share a sign
	        ErrSolverDidNotConverge when MaxIterations is exhausted or the residual
	            turns NaN inside the bracket
	    Errors from the fan curve are returned unchanged.

	Notes:
	    residual(Q) = fan(Q, speed) - system(Q) is solved with Brent's method
	    (inverse quadratic interpolation with bisection fallback). The bracket
	    always contains a sign change, so every iterate stays in [Min, Max].
*/
func (s Solver) Solve(fan FanCurve, system SystemCurve, speed float64, bracket Bracket) (float64, error) {
	if fan == nil || system == nil {
		return 0, ErrNilCollaborator
	}
	if err := bracket.validate(); err != nil {
		return 0, err
	}

	residual := func(q float64) (float64, error) {
		dp, err := fan.PressureRise(q, speed)
		if err != nil {
			return 0, err
		}
		return dp - system(q), nil
	}

	xpre, xcur := bracket.Min, bracket.Max
	fpre, err := residual(xpre)
	if err != nil {
		return 0, err
	}
	fcur, err := residual(xcur)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(fpre) || math.IsNaN(fcur) {
		return 0, fmt.Errorf("%w: residual is NaN at the bracket ends", ErrNoEquilibriumInRange)
	}
	if fpre*fcur > 0 {
		return 0, fmt.Errorf("%w: residual %g Pa at %g m3/s and %g Pa at %g m3/s",
			ErrNoEquilibriumInRange, fpre, xpre, fcur, xcur)
	}
	if fpre == 0 {
		return xpre, nil
	}
	if fcur == 0 {
		return xcur, nil
	}

	// xblk is the contrapoint: the root always lies between xcur and xblk.
	var xblk, fblk, spre, scur float64
	for i := 1; i <= s.MaxIterations; i++ {
		if fpre != 0 && fcur != 0 && math.Signbit(fpre) != math.Signbit(fcur) {
			xblk, fblk = xpre, fpre
			spre = xcur - xpre
			scur = spre
		}
		if math.Abs(fblk) < math.Abs(fcur) {
			xpre, xcur, xblk = xcur, xblk, xcur
			fpre, fcur, fblk = fcur, fblk, fcur
		}

		delta := (s.FlowTolerance + s.RelativeTolerance*math.Abs(xcur)) / 2
		sbis := (xblk - xcur) / 2
		if fcur == 0 || math.Abs(fcur) < s.ResidualTolerance || math.Abs(sbis) < delta {
			log.WithFields(log.Fields{
				"speed":      speed,
				"flow":       xcur,
				"residual":   fcur,
				"iterations": i,
			}).Debug("fan-system equilibrium converged")
			return xcur, nil
		}

		if math.Abs(spre) > delta && math.Abs(fcur) < math.Abs(fpre) {
			var stry float64
			if xpre == xblk {
				// secant
				stry = -fcur * (xcur - xpre) / (fcur - fpre)
			} else {
				// inverse quadratic interpolation
				dpre := (fpre - fcur) / (xpre - xcur)
				dblk := (fblk - fcur) / (xblk - xcur)
				stry = -fcur * (fblk*dblk - fpre*dpre) / (dblk * dpre * (fblk - fpre))
			}
			if 2*math.Abs(stry) < math.Min(math.Abs(spre), 3*math.Abs(sbis)-delta) {
				spre, scur = scur, stry
			} else {
				spre, scur = sbis, sbis
			}
		} else {
			spre, scur = sbis, sbis
		}

		xpre, fpre = xcur, fcur
		if math.Abs(scur) > delta {
			xcur += scur
		} else if sbis > 0 {
			xcur += delta
		} else {
			xcur -= delta
		}

		if fcur, err = residual(xcur); err != nil {
			return 0, err
		}
		if math.IsNaN(fcur) {
			return 0, fmt.Errorf("%w: residual is NaN at %g m3/s", ErrSolverDidNotConverge, xcur)
		}
	}

	return 0, fmt.Errorf("%w: %d iterations at %g rpm in [%g, %g] m3/s",
		ErrSolverDidNotConverge, s.MaxIterations, speed, bracket.Min, bracket.Max)
}

// SolveEquilibrium solves with DefaultSolver.
func SolveEquilibrium(fan FanCurve, system SystemCurve, speed float64, bracket Bracket) (float64, error) {
	return DefaultSolver().Solve(fan, system, speed, bracket)
}
