package coils

import (
	"fmt"

	"energy_models/schedules"
)

/*
ElectricHeatingConfig is the rating of an electric heating coil.

	NominalCapacity: nominal heating capacity, W
	Efficiency: electric efficiency, -; usually 1
	Availability: availability schedule
	LoadFraction: load fraction schedule, clamped to [0, 1]
*/
type ElectricHeatingConfig struct {
	NominalCapacity float64
	Efficiency      float64
	Availability    schedules.Availability
	LoadFraction    schedules.Fraction
}

// ElectricHeatingCoil is a scheduled electric resistance coil.
type ElectricHeatingCoil struct {
	cfg ElectricHeatingConfig
}

// NewElectricHeatingCoil validates cfg and builds the coil.
func NewElectricHeatingCoil(cfg ElectricHeatingConfig) (*ElectricHeatingCoil, error) {
	if cfg.Availability == nil || cfg.LoadFraction == nil {
		return nil, fmt.Errorf("%w: electric coil schedules", ErrNilCollaborator)
	}
	return &ElectricHeatingCoil{cfg: cfg}, nil
}

/*
Compute returns the heating duty at t.

	Args:
	    t: hours from the simulation origin
	    mDot: air mass flow, kg/s
	    hIn: inlet air enthalpy, J/kg

	Notes:
	    A non-positive efficiency reports zero electric power.
*/
func (c *ElectricHeatingCoil) Compute(t, mDot, hIn float64) HeatingDuty {
	if !c.cfg.Availability(t) {
		return HeatingDuty{OutletEnthalpy: hIn}
	}

	q := c.cfg.NominalCapacity * schedules.Clamp(c.cfg.LoadFraction(t))
	w := 0.0
	if c.cfg.Efficiency > 0 {
		w = q / c.cfg.Efficiency
	}
	return HeatingDuty{
		Total:          q,
		ElectricPower:  w,
		OutletEnthalpy: outletEnthalpy(hIn, q, mDot),
	}
}
