package domain

import (
	"errors"
	"fmt"
	"math"
)

// Geo represents a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Location is a named place that gets one climate wheel on the map.
// Geo is nil when the source list named the place without coordinates;
// such locations must be resolved by geocoding before sampling.
type Location struct {
	Name      string
	Region    string // optional qualifier used for geocoding, e.g. "TX" or "Kenya"
	Geo       *Geo
	GeoSource string // "file" or "forward"
}

// Validate checks the name and coordinate ranges.
func (l Location) Validate() error {
	if l.Name == "" {
		return errors.New("location name is required")
	}
	if l.Geo == nil {
		return fmt.Errorf("location %q has no coordinates", l.Name)
	}
	if math.IsNaN(l.Geo.Lat) || l.Geo.Lat < -90 || l.Geo.Lat > 90 {
		return fmt.Errorf("location %q: latitude %v outside [-90, 90]", l.Name, l.Geo.Lat)
	}
	if math.IsNaN(l.Geo.Lon) || l.Geo.Lon < -180 || l.Geo.Lon > 180 {
		return fmt.Errorf("location %q: longitude %v outside [-180, 180]", l.Name, l.Geo.Lon)
	}
	return nil
}

// SampledReading holds the raster values found at a location for one month,
// with temperature already converted to Fahrenheit.
type SampledReading struct {
	TmaxF            float64 `json:"tmax_f"`
	PrecipMM         float64 `json:"precip_mm"`
	VaporPressureKPa float64 `json:"vapor_pressure_kpa"`
}

// DerivedClimate is the humidity information computed from a SampledReading.
type DerivedClimate struct {
	RelativeHumidityPct float64 `json:"relative_humidity_pct"`
	DewPointF           float64 `json:"dew_point_f"`
}

// VisualEncoding is the set of bounded visual channels for one wedge.
type VisualEncoding struct {
	Hue           float64 `json:"hue"`            // [0, 2/3]
	Alpha         float64 `json:"alpha"`          // [0.1, 1]
	WidthFraction float64 `json:"width_fraction"` // [0.1, 1]
}

// Reading is the full per-(location, month) record handed to sinks.
type Reading struct {
	Location string `json:"location"`
	Geo      Geo    `json:"geo"`
	Month    int    `json:"month"` // 1..12

	SampledReading
	DerivedClimate
	Encoding VisualEncoding `json:"encoding"`
}
