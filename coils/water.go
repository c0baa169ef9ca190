package coils

import (
	"fmt"

	"energy_models/curves"
	"energy_models/schedules"
)

/*
WaterCoilConfig is the rating of a water coil.

	RatedCapacity: rated total capacity, W
	SensibleHeatRatio: sensible share of the total capacity, -; cooling coils only
	AirDensity: air density, kg/m3
	Availability: availability schedule; schedules.AlwaysAvailable when unscheduled
	CapacityTemperature: capacity modifier of (inlet air temperature, ℃; inlet water temperature, ℃)
	CapacityFlow: capacity modifier of (air volume flow, m3/s; water volume flow, m3/s)
*/
type WaterCoilConfig struct {
	RatedCapacity       float64
	SensibleHeatRatio   float64
	AirDensity          float64
	Availability        schedules.Availability
	CapacityTemperature curves.Func2
	CapacityFlow        curves.Func2
}

func (c WaterCoilConfig) validate() error {
	if c.Availability == nil {
		return fmt.Errorf("%w: availability (use schedules.AlwaysAvailable)", ErrNilCollaborator)
	}
	if c.CapacityTemperature == nil || c.CapacityFlow == nil {
		return fmt.Errorf("%w: capacity curve", ErrNilCollaborator)
	}
	return nil
}

// capacity returns the modified total capacity, W.
func (c WaterCoilConfig) capacity(in WaterInlet) float64 {
	return c.RatedCapacity *
		c.CapacityTemperature(in.AirTemperature, in.WaterTemperature) *
		c.CapacityFlow(in.AirVolumeFlow, in.WaterVolumeFlow)
}

// WaterInlet is the air and water side state entering a water coil.
type WaterInlet struct {
	AirTemperature   float64 // ℃
	WaterTemperature float64 // ℃
	AirVolumeFlow    float64 // m3/s
	WaterVolumeFlow  float64 // m3/s
	Enthalpy         float64 // inlet air enthalpy, J/kg
}

// CoolingDuty is the chilled water coil result.
type CoolingDuty struct {
	Total          float64 `csv:"q_total"`    // W
	Sensible       float64 `csv:"q_sensible"` // W
	Latent         float64 `csv:"q_latent"`   // W
	OutletEnthalpy float64 `csv:"h_out"`      // J/kg
}

// CoolingWaterCoil is a chilled water coil rated by capacity modifiers.
type CoolingWaterCoil struct {
	cfg WaterCoilConfig
}

// NewCoolingWaterCoil validates cfg and builds the coil.
func NewCoolingWaterCoil(cfg WaterCoilConfig) (*CoolingWaterCoil, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &CoolingWaterCoil{cfg: cfg}, nil
}

/*
Compute returns the cooling duty at t.

	Args:
	    t: hours from the simulation origin
	    in: inlet state

	Notes:
	    An unavailable coil removes no heat. At zero air mass flow the outlet
	    enthalpy equals the inlet enthalpy.
*/
func (c *CoolingWaterCoil) Compute(t float64, in WaterInlet) CoolingDuty {
	if !c.cfg.Availability(t) {
		return CoolingDuty{OutletEnthalpy: in.Enthalpy}
	}

	q := c.cfg.capacity(in)
	qs := c.cfg.SensibleHeatRatio * q
	mDot := c.cfg.AirDensity * in.AirVolumeFlow

	return CoolingDuty{
		Total:          q,
		Sensible:       qs,
		Latent:         q - qs,
		OutletEnthalpy: outletEnthalpy(in.Enthalpy, -q, mDot),
	}
}

// HeatingDuty is the result of the air heating coils.
type HeatingDuty struct {
	Total          float64 `csv:"q_total"`    // W
	ElectricPower  float64 `csv:"w_electric"` // W; electric coils only
	OutletEnthalpy float64 `csv:"h_out"`      // J/kg
}

// HeatingWaterCoil is a hot water coil rated by capacity modifiers.
type HeatingWaterCoil struct {
	cfg WaterCoilConfig
}

// NewHeatingWaterCoil validates cfg and builds the coil. SensibleHeatRatio is ignored.
func NewHeatingWaterCoil(cfg WaterCoilConfig) (*HeatingWaterCoil, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &HeatingWaterCoil{cfg: cfg}, nil
}

// Compute returns the heating duty at t, hours, for the inlet state in.
func (c *HeatingWaterCoil) Compute(t float64, in WaterInlet) HeatingDuty {
	if !c.cfg.Availability(t) {
		return HeatingDuty{OutletEnthalpy: in.Enthalpy}
	}

	q := c.cfg.capacity(in)
	mDot := c.cfg.AirDensity * in.AirVolumeFlow
	return HeatingDuty{
		Total:          q,
		OutletEnthalpy: outletEnthalpy(in.Enthalpy, q, mDot),
	}
}

// outletEnthalpy returns hIn + q/mDot, or hIn when mDot is not positive.
func outletEnthalpy(hIn, q, mDot float64) float64 {
	if mDot > 0 {
		return hIn + q/mDot
	}
	return hIn
}
