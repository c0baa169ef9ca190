package fans

import (
	"fmt"

	"energy_models/schedules"
)

/*
OnOffConfig is the design of a cycling fan.

	DesignMassFlow: mass flow while running, kg/s
	Other fields as in ConstantVolumeConfig.
*/
type OnOffConfig struct {
	ConstantVolumeConfig
	DesignMassFlow float64
}

// OnOffFan cycles at design flow; its outputs are averages over the time step.
type OnOffFan struct {
	cfg                 OnOffConfig
	designShaftPower    float64
	designElectricPower float64
}

// CyclingPower is the on/off fan result, averaged over the time step.
type CyclingPower struct {
	RuntimeFraction float64 // -
	MassFlow        float64 // kg/s
	FanPower
}

// NewOnOffFan validates cfg and precomputes design powers.
func NewOnOffFan(cfg OnOffConfig) (*OnOffFan, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.DesignMassFlow <= 0 {
		return nil, fmt.Errorf("%w: design mass flow %v", ErrDivisionByZero, cfg.DesignMassFlow)
	}
	wShaft := cfg.shaftPower(cfg.DesignMassFlow)
	return &OnOffFan{
		cfg:                 cfg,
		designShaftPower:    wShaft,
		designElectricPower: wShaft / cfg.MotorEfficiency,
	}, nil
}

/*
Compute returns the time step average at the requested mass flow.

	Args:
	    mDotRequested: requested mass flow, kg/s
	    hIn: inlet air enthalpy, J/kg
*/
func (f *OnOffFan) Compute(mDotRequested, hIn float64) CyclingPower {
	r := schedules.Clamp(mDotRequested / f.cfg.DesignMassFlow)
	mDot := r * f.cfg.DesignMassFlow

	wElectric := r * f.designElectricPower
	wShaft := r * f.designShaftPower
	qToAir := f.cfg.MotorToAirFraction * (wElectric - wShaft)

	return CyclingPower{
		RuntimeFraction: r,
		MassFlow:        mDot,
		FanPower: FanPower{
			ShaftPower:     wShaft,
			ElectricPower:  wElectric,
			HeatToAir:      qToAir,
			OutletEnthalpy: outletEnthalpy(hIn, qToAir, mDot),
		},
	}
}
