package valves

// DefaultBypassRatio is the usual maximum Kv of the B-AB port relative to A-AB.
const DefaultBypassRatio = 0.7

/*
ThreeWayConfig is the design of a 3-way characterized control valve.

	A: control port A-AB, opened by the signal
	B: bypass port B-AB, opened by the complement of the signal
	MinimumStroke: stroke below which a port is closed, -
	Density: fluid density, kg/m3
	BypassRatio: scale on the B-AB flow coefficient, -
*/
type ThreeWayConfig struct {
	A             Port
	B             Port
	MinimumStroke float64
	Density       float64
	BypassRatio   float64
}

// ThreeWayValve is a mixing or diverting valve.
type ThreeWayValve struct {
	cfg ThreeWayConfig
}

// ThreeWayFlow is the flow through both ports of a 3-way valve.
type ThreeWayFlow struct {
	A Flow
	B Flow
}

// NewThreeWayValve validates cfg and builds the valve.
func NewThreeWayValve(cfg ThreeWayConfig) (*ThreeWayValve, error) {
	if err := cfg.A.validate(); err != nil {
		return nil, err
	}
	if err := cfg.B.validate(); err != nil {
		return nil, err
	}
	if err := checkMinimumStroke(cfg.MinimumStroke); err != nil {
		return nil, err
	}
	return &ThreeWayValve{cfg: cfg}, nil
}

// KvA returns the A-AB flow coefficient at signal x.
func (v *ThreeWayValve) KvA(x float64) float64 {
	return v.cfg.A.kv(x, v.cfg.MinimumStroke)
}

// KvB returns the B-AB flow coefficient at signal x.
func (v *ThreeWayValve) KvB(x float64) float64 {
	return v.cfg.B.kv(1-x, v.cfg.MinimumStroke) * v.cfg.BypassRatio
}

/*
Compute returns the flow through both ports.

	Args:
	    x: valve signal, -
	    dpA: pressure drop across A-AB, kPa
	    dpB: pressure drop across B-AB, kPa
*/
func (v *ThreeWayValve) Compute(x, dpA, dpB float64) ThreeWayFlow {
	return ThreeWayFlow{
		A: flow(v.KvA(x), dpA, v.cfg.Density),
		B: flow(v.KvB(x), dpB, v.cfg.Density),
	}
}
