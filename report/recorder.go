package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"

	"energy_models/fans"
	"energy_models/psychrometrics"
	"energy_models/schedules"
)

const timeLayout = "2006-01-02 15:04:05"

// Row is one recorded step. A fan that is off records zero flow and power.
type Row struct {
	Time string `csv:"time"`
	Step int    `csv:"step"`
	On   bool   `csv:"on"`
	fans.OperatingState
	OutletTemperature      float64 `csv:"theta_out"` // ℃
	OutletRelativeHumidity float64 `csv:"rh_out"`    // %
}

// Recorder accumulates the operating states of one fan over a run.
type Recorder struct {
	origin time.Time
	itv    schedules.Interval
	rows   []*Row
}

// NewRecorder returns a recorder for a run starting at origin with time step itv.
func NewRecorder(origin time.Time, itv schedules.Interval) *Recorder {
	return &Recorder{
		origin: origin,
		itv:    itv,
		rows:   make([]*Row, 0, itv.DailySteps()),
	}
}

// StepTime returns the timestamp of step n.
func (r *Recorder) StepTime(n int) time.Time {
	return r.origin.Add(time.Duration(float64(n) * r.itv.Seconds() * float64(time.Second)))
}

/*
Record stores the state of step n.

	Args:
	    n: step number
	    st: operating state of the fan
	    x: humidity ratio of the air through the fan, kg/kgDA

	Notes:
	    The fan adds heat only, so the outlet air keeps the inlet humidity ratio.
*/
func (r *Recorder) Record(n int, st fans.OperatingState, x float64) {
	r.append(n, true, st, x)
}

// RecordOff stores step n with the fan stopped; the air leaves at inlet enthalpy hIn and humidity ratio x.
func (r *Recorder) RecordOff(n int, hIn, x float64) {
	st := fans.OperatingState{}
	st.OutletEnthalpy = hIn
	r.append(n, false, st, x)
}

func (r *Recorder) append(n int, on bool, st fans.OperatingState, x float64) {
	theta := psychrometrics.Temperature(st.OutletEnthalpy, x)
	r.rows = append(r.rows, &Row{
		Time:                   r.StepTime(n).Format(timeLayout),
		Step:                   n,
		On:                     on,
		OperatingState:         st,
		OutletTemperature:      theta,
		OutletRelativeHumidity: psychrometrics.RelativeHumidityAt(theta, x),
	})
}

// Rows returns the recorded rows in recording order.
func (r *Recorder) Rows() []*Row {
	return r.rows
}

// ElectricEnergy returns the electric energy over the recorded steps, Wh.
func (r *Recorder) ElectricEnergy() float64 {
	w := make([]float64, len(r.rows))
	for i, row := range r.rows {
		w[i] = row.ElectricPower
	}
	return floats.Sum(w) * r.itv.Hours()
}

// WriteCSV writes the rows with a header line.
func (r *Recorder) WriteCSV(w io.Writer) error {
	if err := gocsv.Marshal(r.rows, w); err != nil {
		return fmt.Errorf("write operating states: %w", err)
	}
	return nil
}

// WriteFile writes the rows to the CSV file at path.
func (r *Recorder) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := gocsv.MarshalFile(r.rows, file); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
