package weather

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"energy_models/psychrometrics"
	"energy_models/schedules"
)

// ErrInvalidRowCount is returned for hourly data that does not cover whole days.
var ErrInvalidRowCount = errors.New("hourly data must cover whole days")

// Row is one hour of outdoor air data. RelativeHumidity is used when HumidityRatio is zero.
type Row struct {
	Temperature      float64 `csv:"temperature"`       // ℃
	HumidityRatio    float64 `csv:"humidity_ratio"`    // kg/kgDA
	RelativeHumidity float64 `csv:"relative_humidity"` // %
}

// humidityRatio returns the humidity ratio of the row, kg/kgDA.
func (r *Row) humidityRatio() float64 {
	if r.HumidityRatio == 0 && r.RelativeHumidity > 0 {
		return psychrometrics.HumidityRatioAt(r.Temperature, r.RelativeHumidity)
	}
	return r.HumidityRatio
}

// Weather is outdoor air temperature and humidity ratio at each simulation step.
type Weather struct {
	itv   schedules.Interval
	theta []float64 // ℃, [n]
	x     []float64 // kg/kgDA, [n]
}

/*
New builds the step series from hourly values.

	Args:
	    theta: outdoor air temperature for hours 0, 1, ..., ℃
	    x: outdoor air humidity ratio for the same hours, kg/kgDA
	    itv: simulation time step

	Returns:
	    ErrInvalidRowCount unless both series hold the same whole number of days
*/
func New(theta, x []float64, itv schedules.Interval) (*Weather, error) {
	if len(theta) == 0 || len(theta)%24 != 0 || len(theta) != len(x) {
		return nil, fmt.Errorf("%w: %d temperatures, %d humidity ratios", ErrInvalidRowCount, len(theta), len(x))
	}
	return &Weather{
		itv:   itv,
		theta: interpolate(theta, itv),
		x:     interpolate(x, itv),
	}, nil
}

// Read reads hourly rows with the header temperature,humidity_ratio or temperature,relative_humidity.
func Read(r io.Reader, itv schedules.Interval) (*Weather, error) {
	var rows []*Row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("read weather: %w", err)
	}

	theta := make([]float64, len(rows))
	x := make([]float64, len(rows))
	for i, row := range rows {
		theta[i], x[i] = row.Temperature, row.humidityRatio()
	}
	return New(theta, x, itv)
}

// ReadFile reads the weather CSV at path.
func ReadFile(path string, itv schedules.Interval) (*Weather, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	w, err := Read(file, itv)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// Steps returns the number of steps in the series.
func (w *Weather) Steps() int {
	return len(w.theta)
}

// At returns temperature, ℃, and humidity ratio, kg/kgDA, at step n. The series repeats past its end.
func (w *Weather) At(n int) (float64, float64) {
	i := n % len(w.theta)
	if i < 0 {
		i += len(w.theta)
	}
	return w.theta[i], w.x[i]
}

// Enthalpy returns the outdoor air enthalpy at step n, J/kgDA.
func (w *Weather) Enthalpy(n int) float64 {
	theta, x := w.At(n)
	return psychrometrics.Enthalpy(theta, x)
}

/*
interpolate spreads hourly data over the steps of itv.

	Notes:
	    Step j of hour i is alpha*data[i] + (1 - alpha)*data[i+1], with alpha
	    falling from 1 by 1/StepsPerHour. The hour after the last one is the first.
*/
func interpolate(data []float64, itv schedules.Interval) []float64 {
	k := itv.StepsPerHour()
	if k == 1 {
		return append([]float64(nil), data...)
	}

	n := len(data)
	out := make([]float64, 0, n*k)
	for i := 0; i < n; i++ {
		next := data[(i+1)%n]
		for j := 0; j < k; j++ {
			alpha := 1.0 - float64(j)/float64(k)
			out = append(out, alpha*data[i]+(1.0-alpha)*next)
		}
	}
	return out
}
