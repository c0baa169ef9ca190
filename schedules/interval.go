package schedules

import "fmt"

// Interval is the simulation time step.
type Interval string

const (
	IntervalH1  Interval = "1h"
	IntervalM30 Interval = "30m"
	IntervalM15 Interval = "15m"
)

// ParseInterval accepts "1h", "30m" and "15m".
func ParseInterval(s string) (Interval, error) {
	switch i := Interval(s); i {
	case IntervalH1, IntervalM30, IntervalM15:
		return i, nil
	default:
		return "", fmt.Errorf("invalid interval %q", s)
	}
}

/*
StepsPerHour returns the number of steps in one hour.

	Notes:
	    1h: 1
	    30m: 2
	    15m: 4
*/
func (i Interval) StepsPerHour() int {
	switch i {
	case IntervalH1:
		return 1
	case IntervalM30:
		return 2
	case IntervalM15:
		return 4
	default:
		panic("invalid interval")
	}
}

// Hours returns the step length, h.
func (i Interval) Hours() float64 {
	return 1.0 / float64(i.StepsPerHour())
}

// Seconds returns the step length, s.
func (i Interval) Seconds() float64 {
	return 3600.0 / float64(i.StepsPerHour())
}

// DailySteps returns the number of steps in one day.
func (i Interval) DailySteps() int {
	return 24 * i.StepsPerHour()
}
