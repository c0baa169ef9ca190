package fans

import (
	"fmt"
)

/*
CurveSpeedControlledConfig holds the design of a variable speed fan whose flow
is set by the intersection of its pressure curve with the duct system curve.

	Density: air density, kg/m3
	OutletArea: fan outlet area, m2
	FanEfficiency: fan total efficiency, -
	MotorEfficiency: motor efficiency, -
	MotorToAirFraction: fraction of motor and drive losses added to the air stream, -
	FanCurve: pressure rise, Pa, of flow, m3/s, and speed, rpm
	SystemCurve: system pressure loss, Pa, of flow, m3/s
	BeltLoss: belt loss from shaft power; NoLoss for direct drive
	VFDLoss: VFD loss from motor input power; NoLoss without a VFD
	Solver: equilibrium solver settings; DefaultSolver() when zero
	Bracket: flow search interval; DefaultBracket when zero
*/
type CurveSpeedControlledConfig struct {
	Density            float64
	OutletArea         float64
	FanEfficiency      float64
	MotorEfficiency    float64
	MotorToAirFraction float64
	FanCurve           FanCurve
	SystemCurve        SystemCurve
	BeltLoss           LossFunc
	VFDLoss            LossFunc
	Solver             Solver
	Bracket            Bracket
}

// CurveSpeedControlledFan is a variable speed fan with system pressure feedback.
type CurveSpeedControlledFan struct {
	drive
	fanCurve    FanCurve
	systemCurve SystemCurve
	solver      Solver
	bracket     Bracket
}

// OperatingState is the fan's state at one speed.
type OperatingState struct {
	Flow  float64 `csv:"q"`   // m3/s
	Speed float64 `csv:"rpm"` // rpm
	DrivePowers
}

// NewCurveSpeedControlledFan validates cfg and builds the fan.
func NewCurveSpeedControlledFan(cfg CurveSpeedControlledConfig) (*CurveSpeedControlledFan, error) {
	d := drive{
		density:         cfg.Density,
		outletArea:      cfg.OutletArea,
		fanEfficiency:   cfg.FanEfficiency,
		motorEfficiency: cfg.MotorEfficiency,
		motorToAir:      cfg.MotorToAirFraction,
		beltLoss:        cfg.BeltLoss,
		vfdLoss:         cfg.VFDLoss,
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	if cfg.FanCurve == nil {
		return nil, fmt.Errorf("%w: fan curve", ErrNilCollaborator)
	}
	if cfg.SystemCurve == nil {
		return nil, fmt.Errorf("%w: system curve", ErrNilCollaborator)
	}

	solver := cfg.Solver
	if solver == (Solver{}) {
		solver = DefaultSolver()
	}
	bracket := cfg.Bracket
	if bracket == (Bracket{}) {
		bracket = DefaultBracket
	}
	if err := bracket.validate(); err != nil {
		return nil, err
	}

	return &CurveSpeedControlledFan{
		drive:       d,
		fanCurve:    cfg.FanCurve,
		systemCurve: cfg.SystemCurve,
		solver:      solver,
		bracket:     bracket,
	}, nil
}

/*
Compute solves the fan-system equilibrium at the given speed and returns the
resulting operating state.

	Args:
	    speed: fan speed, rpm
	    hIn: inlet air enthalpy, J/kg

	Returns:
	    solver errors are returned as is, with a zero OperatingState
*/
func (f *CurveSpeedControlledFan) Compute(speed, hIn float64) (OperatingState, error) {
	q, err := f.solver.Solve(f.fanCurve, f.systemCurve, speed, f.bracket)
	if err != nil {
		return OperatingState{}, fmt.Errorf("fan at %g rpm: %w", speed, err)
	}
	return f.OperatingPoint(q, speed, hIn)
}

// OperatingPoint returns the state at a known flow q, m3/s, and speed, rpm.
func (f *CurveSpeedControlledFan) OperatingPoint(q, speed, hIn float64) (OperatingState, error) {
	dp, err := f.fanCurve.PressureRise(q, speed)
	if err != nil {
		return OperatingState{}, err
	}
	return OperatingState{
		Flow:        q,
		Speed:       speed,
		DrivePowers: f.powers(q, dp, hIn),
	}, nil
}

// Bracket returns the flow search interval in use.
func (f *CurveSpeedControlledFan) Bracket() Bracket {
	return f.bracket
}

// FanCurve returns the fan pressure rise curve.
func (f *CurveSpeedControlledFan) FanCurve() FanCurve {
	return f.fanCurve
}

// SystemCurve returns the system pressure loss curve.
func (f *CurveSpeedControlledFan) SystemCurve() SystemCurve {
	return f.systemCurve
}
