package schedules

// Availability reports whether equipment may run at t, hours from the simulation origin.
type Availability func(t float64) bool

// Fraction gives a load or flow fraction in [0, 1] at t, hours from the simulation origin.
type Fraction func(t float64) float64

// AlwaysAvailable is the Availability of equipment without an availability schedule.
func AlwaysAvailable(float64) bool { return true }

// NeverAvailable keeps equipment off.
func NeverAvailable(float64) bool { return false }

// FullFraction is the Fraction of equipment without a fraction schedule.
func FullFraction(float64) float64 { return 1 }

// ConstantFraction returns a Fraction fixed at v.
func ConstantFraction(v float64) Fraction {
	return func(float64) float64 { return v }
}

// Clamp limits v to [0, 1].
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
