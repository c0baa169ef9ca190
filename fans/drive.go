package fans

import "fmt"

/*
drive holds the design constants shared by fans that compute power from a
pressure rise and a flow: air side geometry, efficiencies and drive losses.

	density: air density, kg/m3
	outletArea: fan outlet area, m2
	fanEfficiency: fan total efficiency, -
	motorEfficiency: motor efficiency, -
	motorToAir: fraction of motor and drive losses added to the air stream, -
	beltLoss: belt loss, W, from shaft power, W
	vfdLoss: VFD loss, W, from motor input power, W
*/
type drive struct {
	density         float64
	outletArea      float64
	fanEfficiency   float64
	motorEfficiency float64
	motorToAir      float64
	beltLoss        LossFunc
	vfdLoss         LossFunc
}

func (d drive) validate() error {
	if d.outletArea == 0 {
		return fmt.Errorf("%w: outlet area is zero", ErrDivisionByZero)
	}
	if d.fanEfficiency == 0 {
		return fmt.Errorf("%w: fan efficiency is zero", ErrDivisionByZero)
	}
	if d.motorEfficiency == 0 {
		return fmt.Errorf("%w: motor efficiency is zero", ErrDivisionByZero)
	}
	if d.beltLoss == nil {
		return fmt.Errorf("%w: belt loss (use NoLoss)", ErrNilCollaborator)
	}
	if d.vfdLoss == nil {
		return fmt.Errorf("%w: VFD loss (use NoLoss)", ErrNilCollaborator)
	}
	return nil
}

// DrivePowers is the air side and electrical result of running a fan at one flow and pressure rise.
type DrivePowers struct {
	PressureRise       float64 `csv:"delta_p_fan"`    // total, Pa
	OutletVelocity     float64 `csv:"v_out"`          // m/s
	StaticPressureRise float64 `csv:"delta_p_static"` // Pa
	ShaftPower         float64 `csv:"w_shaft"`        // W
	BeltLoss           float64 `csv:"w_belt"`         // W
	MotorInputPower    float64 `csv:"w_motor_in"`     // W
	VFDLoss            float64 `csv:"w_vfd"`          // W
	ElectricPower      float64 `csv:"w_electric"`     // W
	HeatToAir          float64 `csv:"q_to_air"`       // W
	MassFlow           float64 `csv:"m_dot"`          // kg/s
	OutletEnthalpy     float64 `csv:"h_out"`          // J/kg
}

/*
powers follows the flow q, m3/s, through the drive train.

	Args:
	    q: volumetric flow, m3/s
	    dp: total pressure rise, Pa
	    hIn: inlet air enthalpy, J/kg

	Notes:
	    Only motorToAir of the motor and drive losses reaches the air stream. At
	    zero mass flow the outlet enthalpy equals the inlet enthalpy.
*/
func (d drive) powers(q, dp, hIn float64) DrivePowers {
	v := q / d.outletArea
	wShaft := q * dp / d.fanEfficiency
	wBelt := d.beltLoss(wShaft)
	wMotorIn := (wShaft + wBelt) / d.motorEfficiency
	wVFD := d.vfdLoss(wMotorIn)
	wElectric := wMotorIn + wVFD

	mDot := d.density * q
	qToAir := d.motorToAir * (wElectric - wShaft - wBelt)

	return DrivePowers{
		PressureRise:       dp,
		OutletVelocity:     v,
		StaticPressureRise: dp - 0.5*d.density*v*v,
		ShaftPower:         wShaft,
		BeltLoss:           wBelt,
		MotorInputPower:    wMotorIn,
		VFDLoss:            wVFD,
		ElectricPower:      wElectric,
		HeatToAir:          qToAir,
		MassFlow:           mDot,
		OutletEnthalpy:     outletEnthalpy(hIn, qToAir, mDot),
	}
}

// outletEnthalpy returns hIn + q/mDot, or hIn when mDot is not positive.
func outletEnthalpy(hIn, q, mDot float64) float64 {
	if mDot > 0 {
		return hIn + q/mDot
	}
	return hIn
}
