package fans

import (
	"fmt"

	"energy_models/schedules"
)

// ExhaustPower is the result of the scheduled exhaust and ventilation fans.
type ExhaustPower struct {
	VolumeFlow float64 // m3/s
	MassFlow   float64 // kg/s
	FanPower
}

// exhaust holds the constants of a scheduled fan rated by fan and total efficiency.
type exhaust struct {
	density         float64
	fanEfficiency   float64
	totalEfficiency float64
}

func (e exhaust) validate() error {
	if e.density == 0 {
		return fmt.Errorf("%w: density is zero", ErrDivisionByZero)
	}
	if e.fanEfficiency == 0 || e.totalEfficiency == 0 {
		return fmt.Errorf("%w: efficiency is zero", ErrDivisionByZero)
	}
	return nil
}

// run returns the state at volume flow vDot, m3/s, and pressure rise dp, Pa. All motor loss reaches the air.
func (e exhaust) run(vDot, dp, hIn float64) ExhaustPower {
	mDot := e.density * vDot
	wShaft := mDot * dp / (e.density * e.fanEfficiency)
	wElectric := mDot * dp / (e.density * e.totalEfficiency)
	qToAir := wElectric - wShaft
	return ExhaustPower{
		VolumeFlow: vDot,
		MassFlow:   mDot,
		FanPower: FanPower{
			ShaftPower:     wShaft,
			ElectricPower:  wElectric,
			HeatToAir:      qToAir,
			OutletEnthalpy: outletEnthalpy(hIn, qToAir, mDot),
		},
	}
}

func off(hIn float64) ExhaustPower {
	return ExhaustPower{FanPower: FanPower{OutletEnthalpy: hIn}}
}

/*
ZoneExhaustConfig is the design of a zone exhaust fan.

	MaxVolumeFlow: maximum volume flow, m3/s
	PressureRise: pressure rise, Pa
	Density: air density, kg/m3
	FanEfficiency: fan-only efficiency, -
	TotalEfficiency: fan and motor efficiency, -
	FlowFraction: flow fraction schedule; schedules.FullFraction when unscheduled
	Availability: availability schedule; schedules.AlwaysAvailable when unscheduled
*/
type ZoneExhaustConfig struct {
	MaxVolumeFlow   float64
	PressureRise    float64
	Density         float64
	FanEfficiency   float64
	TotalEfficiency float64
	FlowFraction    schedules.Fraction
	Availability    schedules.Availability
}

// ZoneExhaustFan is a scheduled exhaust fan.
type ZoneExhaustFan struct {
	exhaust
	cfg ZoneExhaustConfig
}

// NewZoneExhaustFan validates cfg and builds the fan.
func NewZoneExhaustFan(cfg ZoneExhaustConfig) (*ZoneExhaustFan, error) {
	e := exhaust{density: cfg.Density, fanEfficiency: cfg.FanEfficiency, totalEfficiency: cfg.TotalEfficiency}
	if err := e.validate(); err != nil {
		return nil, err
	}
	if cfg.FlowFraction == nil || cfg.Availability == nil {
		return nil, fmt.Errorf("%w: zone exhaust schedules", ErrNilCollaborator)
	}
	return &ZoneExhaustFan{exhaust: e, cfg: cfg}, nil
}

// Compute returns the fan state at t, hours, with inlet air enthalpy hIn, J/kg.
func (f *ZoneExhaustFan) Compute(t, hIn float64) ExhaustPower {
	if !f.cfg.Availability(t) {
		return off(hIn)
	}
	vDot := schedules.Clamp(f.cfg.FlowFraction(t)) * f.cfg.MaxVolumeFlow
	return f.run(vDot, f.cfg.PressureRise, hIn)
}

/*
NightVentilationConfig is the design of a fan with day and night operation.

	DesignVolumeFlow: design volume flow, m3/s
	DayPressureRise, NightPressureRise: pressure rise per mode, Pa
	DayFlowFraction, NightFlowFraction: flow fraction per mode
	Availability: availability schedule
	NightVentilation: true while night ventilation is active; schedules.NeverAvailable for day-only operation
	Other fields as in ZoneExhaustConfig.
*/
type NightVentilationConfig struct {
	DesignVolumeFlow  float64
	DayPressureRise   float64
	NightPressureRise float64
	Density           float64
	FanEfficiency     float64
	TotalEfficiency   float64
	DayFlowFraction   schedules.Fraction
	NightFlowFraction schedules.Fraction
	Availability      schedules.Availability
	NightVentilation  schedules.Availability
}

// NightVentilationFan switches pressure rise and flow fraction with the night ventilation mode.
type NightVentilationFan struct {
	exhaust
	cfg NightVentilationConfig
}

// NewNightVentilationFan validates cfg and builds the fan.
func NewNightVentilationFan(cfg NightVentilationConfig) (*NightVentilationFan, error) {
	e := exhaust{density: cfg.Density, fanEfficiency: cfg.FanEfficiency, totalEfficiency: cfg.TotalEfficiency}
	if err := e.validate(); err != nil {
		return nil, err
	}
	if cfg.DayFlowFraction == nil || cfg.NightFlowFraction == nil ||
		cfg.Availability == nil || cfg.NightVentilation == nil {
		return nil, fmt.Errorf("%w: night ventilation schedules", ErrNilCollaborator)
	}
	return &NightVentilationFan{exhaust: e, cfg: cfg}, nil
}

// Compute returns the fan state at t, hours, with inlet air enthalpy hIn, J/kg.
func (f *NightVentilationFan) Compute(t, hIn float64) ExhaustPower {
	if !f.cfg.Availability(t) {
		return off(hIn)
	}

	frac, dp := f.cfg.DayFlowFraction(t), f.cfg.DayPressureRise
	if f.cfg.NightVentilation(t) {
		frac, dp = f.cfg.NightFlowFraction(t), f.cfg.NightPressureRise
	}
	return f.run(schedules.Clamp(frac)*f.cfg.DesignVolumeFlow, dp, hIn)
}
