package domain

// TempToHue maps a Fahrenheit temperature onto hue: MinTmax is blue (2/3),
// MaxTmax is red (0).
func TempToHue(tempF float64, s Scales) float64 {
	n := normalize(tempF, s.MinTmax, s.MaxTmax)
	return 2.0 / 3.0 * (1 - n)
}

// DewPointToAlpha maps a Fahrenheit dew point onto opacity: humid air is
// drawn more transparent.
func DewPointToAlpha(dewPointF float64, s Scales) float64 {
	n := normalize(dewPointF, s.MinDewPoint, s.MaxDewPoint)
	return 1 - n*(1-s.MinAlpha)
}

// PrecipToWidthFraction maps monthly precipitation onto the ring width
// fraction: a dry month is a solid wedge, a wet one a thin band.
func PrecipToWidthFraction(precipMM float64, s Scales) float64 {
	n := normalize(precipMM, s.MinPrecip, s.MaxPrecip)
	return 1 - n*(1-s.MinWidthFraction)
}

// Encode applies all three encoders.
func Encode(r SampledReading, d DerivedClimate, s Scales) VisualEncoding {
	return VisualEncoding{
		Hue:           TempToHue(r.TmaxF, s),
		Alpha:         DewPointToAlpha(d.DewPointF, s),
		WidthFraction: PrecipToWidthFraction(r.PrecipMM, s),
	}
}

// normalize clamps v to [lo, hi] and scales it to [0, 1].
func normalize(v, lo, hi float64) float64 {
	return (clamp(v, lo, hi) - lo) / (hi - lo)
}
