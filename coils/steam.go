package coils

import (
	"fmt"

	"energy_models/schedules"
)

/*
SteamHeatingConfig is the rating of a steam coil.

	LatentHeat: latent heat of vaporization of steam, J/kg
	CondensateSpecificHeat: specific heat of condensate, J/(kg K)
	Subcooling: total condensate subcooling, K
	MaxSteamFlow: maximum steam mass flow, kg/s
	Availability: availability schedule
	Control: load fraction schedule, clamped to [0, 1]
*/
type SteamHeatingConfig struct {
	LatentHeat             float64
	CondensateSpecificHeat float64
	Subcooling             float64
	MaxSteamFlow           float64
	Availability           schedules.Availability
	Control                schedules.Fraction
}

// SteamDuty is the steam coil result.
type SteamDuty struct {
	Total     float64 `csv:"q_total"`     // W
	Latent    float64 `csv:"q_latent"`    // W
	Sensible  float64 `csv:"q_sensible"`  // W
	SteamFlow float64 `csv:"m_dot_steam"` // kg/s
}

// SteamHeatingCoil condenses and subcools steam.
type SteamHeatingCoil struct {
	cfg SteamHeatingConfig
}

// NewSteamHeatingCoil validates cfg and builds the coil.
func NewSteamHeatingCoil(cfg SteamHeatingConfig) (*SteamHeatingCoil, error) {
	if cfg.Availability == nil || cfg.Control == nil {
		return nil, fmt.Errorf("%w: steam coil schedules", ErrNilCollaborator)
	}
	return &SteamHeatingCoil{cfg: cfg}, nil
}

// Compute returns the steam coil duty at t, hours.
func (c *SteamHeatingCoil) Compute(t float64) SteamDuty {
	if !c.cfg.Availability(t) {
		return SteamDuty{}
	}

	mDot := c.cfg.MaxSteamFlow * schedules.Clamp(c.cfg.Control(t))
	ql := mDot * c.cfg.LatentHeat
	qs := mDot * c.cfg.CondensateSpecificHeat * c.cfg.Subcooling
	return SteamDuty{
		Total:     ql + qs,
		Latent:    ql,
		Sensible:  qs,
		SteamFlow: mDot,
	}
}
