package domain

import "math"

const (
	tetensA = 17.27
	tetensB = 237.3 // saturation vapour pressure
	magnusB = 237.7 // dew point
)

// TmaxToFahrenheit clamps a raw temperature cell to ±s.RawTempClamp and
// converts it from Celsius to Fahrenheit.
func TmaxToFahrenheit(raw float64, s Scales) float64 {
	return clamp(raw, -s.RawTempClamp, s.RawTempClamp)*9/5 + 32
}

// SaturationVaporPressure returns the Tetens saturation vapour pressure in
// kPa for a Fahrenheit temperature.
func SaturationVaporPressure(tempF float64) float64 {
	t := fahrenheitToCelsius(tempF)
	return 0.6108 * math.Exp(tetensA*t/(t+tetensB))
}

// RelativeHumidity returns RH in percent. The result is not clamped; values
// above 100 or below 0 come straight from degenerate inputs.
func RelativeHumidity(tempF, vaporPressureKPa float64) float64 {
	return 100 * vaporPressureKPa / SaturationVaporPressure(tempF)
}

// DewPoint returns the dew point in Fahrenheit. RH must be positive.
func DewPoint(tempF, relativeHumidityPct float64) (float64, error) {
	if !(relativeHumidityPct > 0) {
		return 0, &DegenerateHumidityError{TempF: tempF, RelativeHumidityPct: relativeHumidityPct}
	}

	t := fahrenheitToCelsius(tempF)
	alpha := tetensA*t/(magnusB+t) + math.Log(relativeHumidityPct/100)
	dewC := magnusB * alpha / (tetensA - alpha)
	if math.IsNaN(dewC) || math.IsInf(dewC, 0) {
		return 0, &DegenerateHumidityError{TempF: tempF, RelativeHumidityPct: relativeHumidityPct}
	}
	return celsiusToFahrenheit(dewC), nil
}

// Derive computes relative humidity and dew point for a reading.
func Derive(r SampledReading) (DerivedClimate, error) {
	rh := RelativeHumidity(r.TmaxF, r.VaporPressureKPa)
	dew, err := DewPoint(r.TmaxF, rh)
	if err != nil {
		return DerivedClimate{}, err
	}
	return DerivedClimate{RelativeHumidityPct: rh, DewPointF: dew}, nil
}

func fahrenheitToCelsius(f float64) float64 { return (f - 32) * 5 / 9 }

func celsiusToFahrenheit(c float64) float64 { return c*9/5 + 32 }

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
