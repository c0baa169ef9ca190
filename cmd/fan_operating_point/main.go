package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"energy_models/fans"
	"energy_models/report"
	"energy_models/schedules"
	"energy_models/weather"
)

const (
	resultFileName = "fan_operating_points.csv"
	plotFileName   = "operating_point.png"
)

type options struct {
	OutputDir string
	Interval  schedules.Interval
	Plot      bool
}

/*
run sweeps one simulated day of the speed schedule.

	Args:
	    cfg: resolved design file
	    opts: output options

	Returns:
	    the recorder holding one row per step; the first solver failure aborts the run

	Notes:
	    A step with zero speed records the fan as off without solving.
*/
func run(cfg *runConfig, opts options) (*report.Recorder, error) {
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	fan, err := fans.NewCurveSpeedControlledFan(cfg.Fan)
	if err != nil {
		return nil, fmt.Errorf("build fan: %w", err)
	}

	inlet, err := inletAir(cfg, opts.Interval)
	if err != nil {
		return nil, err
	}
	rec := report.NewRecorder(cfg.Date, opts.Interval)
	var peak fans.OperatingState

	for n := 0; n < opts.Interval.DailySteps(); n++ {
		at := rec.StepTime(n)
		speed := cfg.Schedule.Value(at)
		hIn, x := inlet(n)
		entry := log.WithFields(log.Fields{"step": n, "time": at.Format(time.DateTime), "rpm": speed})

		if speed <= 0 {
			rec.RecordOff(n, hIn, x)
			entry.Debug("fan off")
			continue
		}

		st, err := fan.Compute(speed, hIn)
		if err != nil {
			entry.WithError(err).Error("operating point")
			return nil, fmt.Errorf("step %d: %w", n, err)
		}
		rec.Record(n, st, x)
		entry.WithFields(log.Fields{"q": st.Flow, "w_electric": st.ElectricPower}).Debug("operating point")

		if st.Speed > peak.Speed {
			peak = st
		}
	}

	resultPath := filepath.Join(opts.OutputDir, resultFileName)
	log.Printf("Save operating points to `%s`", resultPath)
	if err := rec.WriteFile(resultPath); err != nil {
		return nil, err
	}

	if opts.Plot && peak.Speed > 0 {
		plotPath := filepath.Join(opts.OutputDir, plotFileName)
		log.Printf("Save operating point plot to `%s`", plotPath)
		err := report.PlotOperatingPoint(fan.FanCurve(), fan.SystemCurve(), peak.Speed, peak.Flow, fan.Bracket(), plotPath)
		if err != nil {
			return nil, err
		}
	}

	return rec, nil
}

// inletAir returns the inlet air enthalpy, J/kg, and humidity ratio, kg/kgDA, of each step.
func inletAir(cfg *runConfig, itv schedules.Interval) (func(n int) (float64, float64), error) {
	if cfg.WeatherPath == "" {
		h, x := cfg.InletEnthalpy(), cfg.HumidityRatio
		return func(int) (float64, float64) { return h, x }, nil
	}

	w, err := weather.ReadFile(cfg.WeatherPath, itv)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"path": cfg.WeatherPath, "steps": w.Steps()}).Info("weather loaded")
	return func(n int) (float64, float64) {
		_, x := w.At(n)
		return w.Enthalpy(n), x
	}, nil
}

func main() {
	configPath := flag.StringP("config", "c", "", "fan design file (ini)")
	outputDir := flag.StringP("out", "o", ".", "output directory")
	interval := flag.String("interval", string(schedules.IntervalH1), "time step: 1h, 30m or 15m")
	logLevel := flag.String("log-level", "info", "log level")
	plot := flag.Bool("plot", false, "save a plot of the operating point at peak speed")
	flag.Parse()

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(level)

	if *configPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	itv, err := schedules.ParseInterval(*interval)
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	rec, err := run(cfg, options{OutputDir: *outputDir, Interval: itv, Plot: *plot})
	if err != nil {
		log.Fatal(err)
	}

	log.WithFields(log.Fields{
		"steps":          len(rec.Rows()),
		"electric_kwh":   rec.ElectricEnergy() / 1000,
		"elapsed_time_s": time.Since(start).Seconds(),
	}).Info("done")
}
