package valves

/*
TwoWayConfig is the design of a 2-way control valve.

	MinimumStroke: stroke below which the valve is closed, -
	Density: fluid density, kg/m3
*/
type TwoWayConfig struct {
	Port
	MinimumStroke float64
	Density       float64
}

// TwoWayValve is a 2-way control valve.
type TwoWayValve struct {
	cfg TwoWayConfig
}

// NewTwoWayValve validates cfg and builds the valve.
func NewTwoWayValve(cfg TwoWayConfig) (*TwoWayValve, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := checkMinimumStroke(cfg.MinimumStroke); err != nil {
		return nil, err
	}
	return &TwoWayValve{cfg: cfg}, nil
}

// Kv returns the flow coefficient at stroke x, m3/h/√kPa.
func (v *TwoWayValve) Kv(x float64) float64 {
	return v.cfg.kv(x, v.cfg.MinimumStroke)
}

/*
Compute returns the flow through the valve.

	Args:
	    x: valve stroke, -
	    dp: pressure drop across the valve, kPa
*/
func (v *TwoWayValve) Compute(x, dp float64) Flow {
	return flow(v.Kv(x), dp, v.cfg.Density)
}
