package psychrometrics

import "math"

/*
RelativeHumidity returns the relative humidity.

	Args:
	    pV: vapor pressure, Pa
	    pVs: saturation vapor pressure, Pa

	Returns:
	    relative humidity, %
*/
func RelativeHumidity(pV, pVs float64) float64 {
	return pV / pVs * 100.0
}

/*
HumidityRatio returns the humidity ratio at vapor pressure pV.

	Args:
	    pV: vapor pressure, Pa

	Returns:
	    humidity ratio, kg/kgDA
*/
func HumidityRatio(pV float64) float64 {
	return 0.622 * pV / (AtmosphericPressure - pV)
}

/*
VaporPressure returns the vapor pressure at humidity ratio x.

	Args:
	    x: humidity ratio, kg/kgDA

	Returns:
	    vapor pressure, Pa
*/
func VaporPressure(x float64) float64 {
	return AtmosphericPressure * x / (x + 0.62198)
}

/*
SaturationVaporPressure returns the saturation vapor pressure over water
(theta >= 0) or ice (theta < 0).

	Args:
	    theta: air temperature, ℃

	Returns:
	    saturation vapor pressure, Pa
*/
func SaturationVaporPressure(theta float64) float64 {
	t := theta + 273.15

	const a1 = -6096.9385
	const a2 = 21.2409642
	const a3 = -0.02711193
	const a4 = 0.00001673952
	const a5 = 2.433502
	const b1 = -6024.5282
	const b2 = 29.32707
	const b3 = 0.010613863
	const b4 = -0.000013198825
	const b5 = -0.49382577

	if theta >= 0.0 {
		return math.Exp(a1/t + a2 + a3*t + a4*t*t + a5*math.Log(t))
	}
	return math.Exp(b1/t + b2 + b3*t + b4*t*t + b5*math.Log(t))
}

/*
Enthalpy returns the specific enthalpy of moist air.

	Args:
	    theta: air temperature, ℃
	    x: humidity ratio, kg/kgDA

	Returns:
	    enthalpy, J/kgDA
*/
func Enthalpy(theta, x float64) float64 {
	return SpecificHeatAir*theta + x*(LatentHeatWater+SpecificHeatVapor*theta)
}

// Temperature returns the air temperature, ℃, of moist air with enthalpy h, J/kgDA, and humidity ratio x, kg/kgDA.
func Temperature(h, x float64) float64 {
	return (h - x*LatentHeatWater) / (SpecificHeatAir + x*SpecificHeatVapor)
}

/*
HumidityRatioAt returns the humidity ratio of air at a given temperature and relative humidity.

	Args:
	    theta: air temperature, ℃
	    rh: relative humidity, %

	Returns:
	    humidity ratio, kg/kgDA
*/
func HumidityRatioAt(theta, rh float64) float64 {
	return HumidityRatio(rh / 100.0 * SaturationVaporPressure(theta))
}

// RelativeHumidityAt returns the relative humidity, %, of air at temperature theta, ℃, and humidity ratio x, kg/kgDA.
func RelativeHumidityAt(theta, x float64) float64 {
	return RelativeHumidity(VaporPressure(x), SaturationVaporPressure(theta))
}
