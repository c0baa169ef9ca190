package schedules

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidProfile is returned for an hourly profile that does not hold 24 values.
var ErrInvalidProfile = errors.New("hourly profile must have 24 values")

/*
SchedulerConfig describes an hourly schedule.

	Weekday: values for hours 0..23 of Monday to Friday
	Weekend: values for Saturday and Sunday; Weekday when empty
	Holiday: values for the dates in Holidays; Weekday when empty
	Interpolate: interpolate linearly between the value of the hour and of the next hour
	Holidays: holiday dates; only the calendar date is used
*/
type SchedulerConfig struct {
	Weekday     []float64
	Weekend     []float64
	Holiday     []float64
	Interpolate bool
	Holidays    []time.Time
}

type date struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time) date {
	y, m, d := t.Date()
	return date{y, m, d}
}

// Scheduler is an hourly schedule with weekday, weekend and holiday profiles.
type Scheduler struct {
	weekday     [24]float64
	weekend     [24]float64
	holiday     [24]float64
	interpolate bool
	holidays    map[date]struct{}
}

// NewScheduler validates the profiles of cfg.
func NewScheduler(cfg SchedulerConfig) (*Scheduler, error) {
	s := &Scheduler{
		interpolate: cfg.Interpolate,
		holidays:    make(map[date]struct{}, len(cfg.Holidays)),
	}

	if err := fillProfile(&s.weekday, cfg.Weekday, "weekday"); err != nil {
		return nil, err
	}
	s.weekend, s.holiday = s.weekday, s.weekday
	if len(cfg.Weekend) > 0 {
		if err := fillProfile(&s.weekend, cfg.Weekend, "weekend"); err != nil {
			return nil, err
		}
	}
	if len(cfg.Holiday) > 0 {
		if err := fillProfile(&s.holiday, cfg.Holiday, "holiday"); err != nil {
			return nil, err
		}
	}
	for _, h := range cfg.Holidays {
		s.holidays[dateOf(h)] = struct{}{}
	}
	return s, nil
}

func fillProfile(dst *[24]float64, values []float64, name string) error {
	if len(values) != 24 {
		return fmt.Errorf("%w: %s has %d", ErrInvalidProfile, name, len(values))
	}
	copy(dst[:], values)
	return nil
}

func (s *Scheduler) profile(at time.Time) *[24]float64 {
	if _, ok := s.holidays[dateOf(at)]; ok {
		return &s.holiday
	}
	switch at.Weekday() {
	case time.Saturday, time.Sunday:
		return &s.weekend
	default:
		return &s.weekday
	}
}

/*
Value returns the schedule value at the simulated time at.

	Notes:
	    The profile is chosen from the date of at. With interpolation the value
	    moves linearly from the hour's value to the next hour's value of the same
	    profile, wrapping from 23 to 0.
*/
func (s *Scheduler) Value(at time.Time) float64 {
	p := s.profile(at)
	h := at.Hour()
	if !s.interpolate {
		return p[h]
	}

	frac := (float64(at.Minute()) + float64(at.Second())/60) / 60
	return (1-frac)*p[h] + frac*p[(h+1)%24]
}

// At converts t, hours from origin, to a timestamp.
func At(origin time.Time, t float64) time.Time {
	return origin.Add(time.Duration(math.Round(t * float64(time.Hour))))
}

// Fraction adapts the scheduler into a Fraction with t counted in hours from origin.
// Values are not clamped; consumers clamp fractions themselves.
func (s *Scheduler) Fraction(origin time.Time) Fraction {
	return func(t float64) float64 {
		return s.Value(At(origin, t))
	}
}

// Availability adapts the scheduler into an Availability that is true while the value exceeds threshold.
func (s *Scheduler) Availability(origin time.Time, threshold float64) Availability {
	return func(t float64) bool {
		return s.Value(At(origin, t)) > threshold
	}
}
