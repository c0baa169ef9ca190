package fans

import (
	"fmt"

	"energy_models/curves"
)

/*
ComponentConfig holds the design of a component model fan: a fan whose total
pressure rise follows the fan_pressure_rise curve of flow and duct static
pressure difference.

	Coefficients: C1..C6 of ΔP = C1 + C2*Q + C3*Q^2 + C4*dP + C5*dP^2 + C6*Q*dP,
	    where dP = static setpoint - zone pressure
	StaticReset: duct static pressure setpoint, Pa, of flow; NoStaticReset for a fixed 0 Pa
	Other fields as in CurveSpeedControlledConfig.
*/
type ComponentConfig struct {
	Density            float64
	OutletArea         float64
	FanEfficiency      float64
	MotorEfficiency    float64
	MotorToAirFraction float64
	Coefficients       []float64
	BeltLoss           LossFunc
	VFDLoss            LossFunc
	StaticReset        StaticReset
}

// ComponentFan evaluates a fan at an imposed flow.
type ComponentFan struct {
	drive
	pressure    curves.Func2
	staticReset StaticReset
}

// ComponentState is the component fan result at one flow.
type ComponentState struct {
	StaticSetpoint float64 `csv:"p_static_setpoint"` // Pa
	DrivePowers
}

// NewComponentFan validates cfg and builds the fan.
func NewComponentFan(cfg ComponentConfig) (*ComponentFan, error) {
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
	if cfg.StaticReset == nil {
		return nil, fmt.Errorf("%w: static reset (use NoStaticReset)", ErrNilCollaborator)
	}

	c, err := curves.New(curves.FanPressureRise, cfg.Coefficients...)
	if err != nil {
		return nil, fmt.Errorf("component fan pressure curve: %w", err)
	}
	pressure, err := c.Func2()
	if err != nil {
		return nil, err
	}

	return &ComponentFan{drive: d, pressure: pressure, staticReset: cfg.StaticReset}, nil
}

/*
Compute returns the fan state at flow q.

	Args:
	    q: volumetric flow, m3/s
	    pZone: ambient or zone static pressure, Pa
	    hIn: inlet air enthalpy, J/kg
*/
func (f *ComponentFan) Compute(q, pZone, hIn float64) ComponentState {
	psm := f.staticReset(q)
	dp := f.pressure(q, psm-pZone)
	return ComponentState{
		StaticSetpoint: psm,
		DrivePowers:    f.powers(q, dp, hIn),
	}
}
