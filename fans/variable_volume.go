package fans

import (
	"fmt"

	"energy_models/curves"
	"energy_models/schedules"
)

/*
VariableVolumeConfig is the design of a variable volume fan.

	DesignMassFlow: design mass flow, kg/s
	PowerCurve: part-load ratio, -, to fraction of design electric power, -
	Other fields as in ConstantVolumeConfig.
*/
type VariableVolumeConfig struct {
	ConstantVolumeConfig
	DesignMassFlow float64
	PowerCurve     curves.Func1
}

// VariableVolumeFan scales design electric power with a part-load power curve.
type VariableVolumeFan struct {
	cfg                 VariableVolumeConfig
	designElectricPower float64
}

// PartLoadPower is the variable volume fan result.
type PartLoadPower struct {
	PartLoadRatio float64 // -
	PowerFraction float64 // -
	FanPower
}

// NewVariableVolumeFan validates cfg and precomputes the design electric power.
func NewVariableVolumeFan(cfg VariableVolumeConfig) (*VariableVolumeFan, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.PowerCurve == nil {
		return nil, fmt.Errorf("%w: power curve", ErrNilCollaborator)
	}
	return &VariableVolumeFan{
		cfg:                 cfg,
		designElectricPower: cfg.shaftPower(cfg.DesignMassFlow) / cfg.MotorEfficiency,
	}, nil
}

// DesignElectricPower returns the electric power at design flow, W.
func (f *VariableVolumeFan) DesignElectricPower() float64 {
	return f.designElectricPower
}

/*
Compute returns the fan power at mass flow mDot.

	Args:
	    mDot: mass flow, kg/s
	    hIn: inlet air enthalpy, J/kg

	Notes:
	    PLR = mDot / DesignMassFlow is clamped to [0, 1]; a zero design flow gives PLR 0.
*/
func (f *VariableVolumeFan) Compute(mDot, hIn float64) PartLoadPower {
	plr := 0.0
	if f.cfg.DesignMassFlow > 0 {
		plr = schedules.Clamp(mDot / f.cfg.DesignMassFlow)
	}
	pFrac := f.cfg.PowerCurve(plr)

	wShaft := f.cfg.shaftPower(mDot)
	wElectric := pFrac * f.designElectricPower
	qToAir := f.cfg.MotorToAirFraction * (wElectric - wShaft)

	return PartLoadPower{
		PartLoadRatio: plr,
		PowerFraction: pFrac,
		FanPower: FanPower{
			ShaftPower:     wShaft,
			ElectricPower:  wElectric,
			HeatToAir:      qToAir,
			OutletEnthalpy: outletEnthalpy(hIn, qToAir, mDot),
		},
	}
}
