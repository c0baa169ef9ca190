package fans

import "fmt"

/*
ConstantVolumeConfig is the design of a fan that runs at a fixed pressure rise.

	PressureRise: pressure rise across the fan, Pa
	Density: air density, kg/m3
	FanEfficiency: fan total efficiency, -
	MotorEfficiency: motor efficiency, -
	MotorToAirFraction: fraction of motor heat added to the air stream, -
*/
type ConstantVolumeConfig struct {
	PressureRise       float64
	Density            float64
	FanEfficiency      float64
	MotorEfficiency    float64
	MotorToAirFraction float64
}

func (c ConstantVolumeConfig) validate() error {
	if c.Density == 0 {
		return fmt.Errorf("%w: density is zero", ErrDivisionByZero)
	}
	if c.FanEfficiency == 0 {
		return fmt.Errorf("%w: fan efficiency is zero", ErrDivisionByZero)
	}
	if c.MotorEfficiency == 0 {
		return fmt.Errorf("%w: motor efficiency is zero", ErrDivisionByZero)
	}
	return nil
}

// shaftPower returns the shaft power, W, for mass flow mDot, kg/s.
func (c ConstantVolumeConfig) shaftPower(mDot float64) float64 {
	return mDot * c.PressureRise / (c.Density * c.FanEfficiency)
}

// ConstantVolumeFan is a constant pressure fan evaluated at an imposed mass flow.
type ConstantVolumeFan struct {
	cfg ConstantVolumeConfig
}

// FanPower is the result of the simple fan models.
type FanPower struct {
	ShaftPower     float64 // W
	ElectricPower  float64 // W
	HeatToAir      float64 // W
	OutletEnthalpy float64 // J/kg
}

// NewConstantVolumeFan validates cfg and builds the fan.
func NewConstantVolumeFan(cfg ConstantVolumeConfig) (*ConstantVolumeFan, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &ConstantVolumeFan{cfg: cfg}, nil
}

/*
Compute returns the fan power at mass flow mDot.

	Args:
	    mDot: mass flow, kg/s
	    hIn: inlet air enthalpy, J/kg
*/
func (f *ConstantVolumeFan) Compute(mDot, hIn float64) FanPower {
	wShaft := f.cfg.shaftPower(mDot)
	wElectric := wShaft / f.cfg.MotorEfficiency
	qToAir := f.cfg.MotorToAirFraction * (wElectric - wShaft)
	return FanPower{
		ShaftPower:     wShaft,
		ElectricPower:  wElectric,
		HeatToAir:      qToAir,
		OutletEnthalpy: outletEnthalpy(hIn, qToAir, mDot),
	}
}
