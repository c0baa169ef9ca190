package psychrometrics

const (
	// SpecificHeatAir is the specific heat of dry air, J/(kg K).
	SpecificHeatAir = 1005.0
	// DensityAir is the density of air, kg/m3.
	DensityAir = 1.2
	// LatentHeatWater is the latent heat of vaporization of water at 0 ℃, J/kg.
	LatentHeatWater = 2501000.0
	// SpecificHeatVapor is the specific heat of water vapor, J/(kg K).
	SpecificHeatVapor = 1846.0
	// AtmosphericPressure is the standard atmospheric pressure, Pa.
	AtmosphericPressure = 101325.0
)
