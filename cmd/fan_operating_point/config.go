package main

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"energy_models/curves"
	"energy_models/fans"
	"energy_models/psychrometrics"
	"energy_models/schedules"
)

const dateLayout = "2006-01-02"

// runConfig is a design file resolved into library types.
type runConfig struct {
	Fan              fans.CurveSpeedControlledConfig
	Schedule         *schedules.Scheduler
	Date             time.Time
	InletTemperature float64 // ℃
	HumidityRatio    float64 // kg/kgDA
	WeatherPath      string  // hourly inlet air CSV; the constant inlet state is used when empty
}

// InletEnthalpy returns the enthalpy of the constant inlet air state, J/kg.
func (c *runConfig) InletEnthalpy() float64 {
	return psychrometrics.Enthalpy(c.InletTemperature, c.HumidityRatio)
}

func loadConfig(source interface{}) (*runConfig, error) {
	file, err := ini.Load(source)
	if err != nil {
		return nil, fmt.Errorf("read design file: %w", err)
	}
	return parseConfig(file)
}

func parseConfig(file *ini.File) (*runConfig, error) {
	fan, err := loadFan(file)
	if err != nil {
		return nil, err
	}
	if fan.FanCurve, err = loadFanCurve(file.Section("fan_curve")); err != nil {
		return nil, err
	}
	if fan.SystemCurve, err = loadSystemCurve(file.Section("system_curve")); err != nil {
		return nil, err
	}
	fan.Solver, fan.Bracket = loadSolver(file.Section("solver"))

	sec := file.Section("schedule")
	scd, err := loadScheduler(sec)
	if err != nil {
		return nil, err
	}
	date, err := time.Parse(dateLayout, sec.Key("date").MustString("2025-01-01"))
	if err != nil {
		return nil, fmt.Errorf("[schedule] date: %w", err)
	}

	theta := sec.Key("inlet_temperature").MustFloat64(20)
	x := sec.Key("humidity_ratio").MustFloat64(0.008)
	if !sec.HasKey("humidity_ratio") && sec.HasKey("relative_humidity") {
		rh, err := sec.Key("relative_humidity").Float64()
		if err != nil || rh < 0 || rh > 100 {
			return nil, fmt.Errorf("[schedule] relative_humidity: must be 0 to 100, got %q", sec.Key("relative_humidity").String())
		}
		x = psychrometrics.HumidityRatioAt(theta, rh)
	}

	return &runConfig{
		Fan:              fan,
		Schedule:         scd,
		Date:             date,
		InletTemperature: theta,
		HumidityRatio:    x,
		WeatherPath:      sec.Key("weather").String(),
	}, nil
}

func loadFan(file *ini.File) (fans.CurveSpeedControlledConfig, error) {
	sec := file.Section("fan")
	area, err := sec.Key("outlet_area").Float64()
	if err != nil {
		return fans.CurveSpeedControlledConfig{}, fmt.Errorf("[fan] outlet_area: %w", err)
	}
	return fans.CurveSpeedControlledConfig{
		Density:            sec.Key("density").MustFloat64(psychrometrics.DensityAir),
		OutletArea:         area,
		FanEfficiency:      sec.Key("fan_efficiency").MustFloat64(0.7),
		MotorEfficiency:    sec.Key("motor_efficiency").MustFloat64(0.9),
		MotorToAirFraction: sec.Key("motor_to_air_fraction").MustFloat64(1),
		BeltLoss:           proportionalLoss(sec.Key("belt_loss_fraction").MustFloat64(0)),
		VFDLoss:            proportionalLoss(sec.Key("vfd_loss_fraction").MustFloat64(0)),
	}, nil
}

// proportionalLoss returns a loss of fraction f of the input power.
func proportionalLoss(f float64) fans.LossFunc {
	if f == 0 {
		return fans.NoLoss
	}
	return func(p float64) float64 { return f * p }
}

// loadCurve builds a curve from either its coefficients or a CSV of rated samples.
func loadCurve(sec *ini.Section, defaultFamily curves.Family) (*curves.Curve, error) {
	family, err := curves.ParseFamily(sec.Key("family").MustString(string(defaultFamily)))
	if err != nil {
		return nil, fmt.Errorf("[%s] family: %w", sec.Name(), err)
	}

	if sec.HasKey("samples") {
		path := sec.Key("samples").String()
		samples, err := curves.ReadSamplesFile(path)
		if err != nil {
			return nil, fmt.Errorf("[%s] samples: %w", sec.Name(), err)
		}
		fit, err := curves.Fit(family, samples)
		if err != nil {
			return nil, fmt.Errorf("[%s] fit: %w", sec.Name(), err)
		}
		log.WithFields(log.Fields{
			"section":      sec.Name(),
			"family":       family,
			"samples":      len(samples),
			"r_squared":    fit.RSquared,
			"rmse":         fit.RMSE,
			"coefficients": fit.Curve.Coefficients(),
		}).Info("curve fitted")
		return fit.Curve, nil
	}

	coeffs, err := sec.Key("coefficients").StrictFloat64s(",")
	if err != nil {
		return nil, fmt.Errorf("[%s] coefficients: %w", sec.Name(), err)
	}
	c, err := curves.New(family, coeffs...)
	if err != nil {
		return nil, fmt.Errorf("[%s]: %w", sec.Name(), err)
	}
	return c, nil
}

/*
loadFanCurve reads the fan pressure curve at its reference speed.

	Notes:
	    A one variable family is a curve of flow only; its duct pressure input is ignored.
*/
func loadFanCurve(sec *ini.Section) (fans.FanCurve, error) {
	c, err := loadCurve(sec, curves.FanPressureRise)
	if err != nil {
		return nil, err
	}

	var base curves.Func2
	if c.Family().Variables() == 1 {
		f1, err := c.Func1()
		if err != nil {
			return nil, fmt.Errorf("[fan_curve]: %w", err)
		}
		base = func(q, _ float64) float64 { return f1(q) }
	} else if base, err = c.Func2(); err != nil {
		return nil, fmt.Errorf("[fan_curve]: %w", err)
	}

	scaled, err := curves.NewSpeedScaled(base, sec.Key("reference_speed").MustFloat64(0))
	if err != nil {
		return nil, fmt.Errorf("[fan_curve] reference_speed: %w", err)
	}
	return scaled.AtDuctPressure(sec.Key("duct_pressure").MustFloat64(0)), nil
}

func loadSystemCurve(sec *ini.Section) (fans.SystemCurve, error) {
	c, err := loadCurve(sec, curves.Quadratic)
	if err != nil {
		return nil, err
	}
	f1, err := c.Func1()
	if err != nil {
		return nil, fmt.Errorf("[system_curve]: %w", err)
	}
	return fans.SystemCurve(f1), nil
}

func loadSolver(sec *ini.Section) (fans.Solver, fans.Bracket) {
	d := fans.DefaultSolver()
	s := fans.Solver{
		FlowTolerance:     sec.Key("flow_tolerance").MustFloat64(d.FlowTolerance),
		RelativeTolerance: sec.Key("relative_tolerance").MustFloat64(d.RelativeTolerance),
		ResidualTolerance: sec.Key("residual_tolerance").MustFloat64(d.ResidualTolerance),
		MaxIterations:     sec.Key("max_iterations").MustInt(d.MaxIterations),
	}
	b := fans.Bracket{
		Min: sec.Key("flow_min").MustFloat64(fans.DefaultBracket.Min),
		Max: sec.Key("flow_max").MustFloat64(fans.DefaultBracket.Max),
	}
	return s, b
}

func loadScheduler(sec *ini.Section) (*schedules.Scheduler, error) {
	profile := func(name string) ([]float64, error) {
		if !sec.HasKey(name) {
			return nil, nil
		}
		v, err := sec.Key(name).StrictFloat64s(",")
		if err != nil {
			return nil, fmt.Errorf("[schedule] %s: %w", name, err)
		}
		return v, nil
	}

	weekday, err := profile("speed")
	if err != nil {
		return nil, err
	}
	weekend, err := profile("speed_weekend")
	if err != nil {
		return nil, err
	}
	holiday, err := profile("speed_holiday")
	if err != nil {
		return nil, err
	}

	var holidays []time.Time
	for _, s := range sec.Key("holidays").Strings(",") {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, fmt.Errorf("[schedule] holidays: %w", err)
		}
		holidays = append(holidays, d)
	}

	scd, err := schedules.NewScheduler(schedules.SchedulerConfig{
		Weekday:     weekday,
		Weekend:     weekend,
		Holiday:     holiday,
		Interpolate: sec.Key("interpolate").MustBool(false),
		Holidays:    holidays,
	})
	if err != nil {
		return nil, fmt.Errorf("[schedule]: %w", err)
	}
	return scd, nil
}
