package valves

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrUnknownCharacteristic = errors.New("unknown valve characteristic")
	ErrDivisionByZero        = errors.New("division by zero")
)

// Characteristic is the inherent flow characteristic of a valve port.
type Characteristic string

const (
	EqualPercentage Characteristic = "equal_percentage"
	Linear          Characteristic = "linear"
	QuickOpening    Characteristic = "quick_opening"
)

// ParseCharacteristic accepts "equal_percentage", "linear" and "quick_opening".
func ParseCharacteristic(s string) (Characteristic, error) {
	switch c := Characteristic(s); c {
	case EqualPercentage, Linear, QuickOpening:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCharacteristic, s)
	}
}

/*
Port is one flow path of a control valve.

	Kvs: flow coefficient at full stroke, m3/h/√kPa
	Characteristic: inherent characteristic
	Exponent: exponent of the equal percentage curve, -
*/
type Port struct {
	Kvs            float64
	Characteristic Characteristic
	Exponent       float64
}

func (p Port) validate() error {
	if _, err := ParseCharacteristic(string(p.Characteristic)); err != nil {
		return err
	}
	return nil
}

/*
kv returns the flow coefficient at stroke x.

	Args:
	    x: valve stroke, -
	    x0: minimum effective stroke, -

	Notes:
	    Kv is 0 up to x0; above it the stroke is rescaled to s = (x - x0)/(1 - x0)
	    and Kv = Kvs s^n, Kvs s or Kvs √s.
*/
func (p Port) kv(x, x0 float64) float64 {
	if x <= x0 {
		return 0
	}
	s := (x - x0) / (1 - x0)

	switch p.Characteristic {
	case EqualPercentage:
		return p.Kvs * math.Pow(s, p.Exponent)
	case Linear:
		return p.Kvs * s
	case QuickOpening:
		return p.Kvs * math.Sqrt(s)
	default:
		panic("invalid valve characteristic")
	}
}

// Flow is the flow through one valve port.
type Flow struct {
	Kv         float64 `csv:"kv"`    // m3/h/√kPa
	VolumeFlow float64 `csv:"v_dot"` // m3/h
	MassFlow   float64 `csv:"m_dot"` // kg/s
}

// flow returns the flow at coefficient kv and pressure drop dp, kPa, for fluid density rho, kg/m3.
func flow(kv, dp, rho float64) Flow {
	v := kv * math.Sqrt(dp)
	return Flow{Kv: kv, VolumeFlow: v, MassFlow: rho * v / 3600}
}

func checkMinimumStroke(x0 float64) error {
	if x0 >= 1 {
		return fmt.Errorf("%w: minimum stroke %v", ErrDivisionByZero, x0)
	}
	return nil
}
