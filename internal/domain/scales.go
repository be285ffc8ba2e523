package domain

// Scales bounds every conversion and encoding. It is passed explicitly so
// tests can run the encoders against alternate ranges.
type Scales struct {
	MinPrecip float64
	MaxPrecip float64

	MinTmax float64
	MaxTmax float64

	MinDewPoint float64
	MaxDewPoint float64

	// MinAlpha and MinWidthFraction are the channel values reached at the
	// upper end of the dew point and precipitation ranges.
	MinAlpha         float64
	MinWidthFraction float64

	// RawTempClamp bounds raw temperature cells before conversion.
	RawTempClamp float64

	WedgeRadius  float64 // map degrees
	MonthDegrees float64
	StartAngle   float64 // degrees counter-clockwise from east where month 0 ends
}

// DefaultScales returns the ranges used for the published map.
func DefaultScales() Scales {
	return Scales{
		MinPrecip:        0,
		MaxPrecip:        300,
		MinTmax:          50,
		MaxTmax:          95,
		MinDewPoint:      50,
		MaxDewPoint:      75,
		MinAlpha:         0.1,
		MinWidthFraction: 0.1,
		RawTempClamp:     1000,
		WedgeRadius:      2.5,
		MonthDegrees:     30,
		StartAngle:       90,
	}
}
