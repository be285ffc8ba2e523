package domain

import (
	"context"
	"fmt"
	"log/slog"
)

// ResolveLocations fills in coordinates for locations that only carry a name
// and validates every location. Locations that already have coordinates are
// never sent to the geocoder. A nil geocoder disables lookups, in which case
// any location without coordinates is an error.
func ResolveLocations(ctx context.Context, locations []Location, geocoder Geocoder, logger *slog.Logger) ([]Location, error) {
	out := make([]Location, 0, len(locations))
	for _, loc := range locations {
		if loc.Geo != nil {
			if loc.GeoSource == "" {
				loc.GeoSource = "file"
			}
		} else {
			if geocoder == nil {
				return nil, fmt.Errorf("location %q has no coordinates and geocoding is disabled", loc.Name)
			}
			resolved, err := forwardGeocode(ctx, loc, geocoder)
			if err != nil {
				return nil, err
			}
			logger.Info("location geocoded",
				"location", resolved.Name,
				"lat", resolved.Geo.Lat,
				"lon", resolved.Geo.Lon,
			)
			loc = resolved
		}

		if err := loc.Validate(); err != nil {
			return nil, err
		}
		out = append(out, loc)
	}
	return out, nil
}

func forwardGeocode(ctx context.Context, loc Location, geocoder Geocoder) (Location, error) {
	result, err := geocoder.ForwardGeocode(ctx, loc.Name, loc.Region)
	if err != nil {
		return loc, fmt.Errorf("geocode location %q: %w", loc.Name, err)
	}
	// Mapbox answers "no match" with an empty feature list, which the
	// client reports as a zero result.
	if result.FormattedAddress == "" && result.Lat == 0 && result.Lon == 0 {
		return loc, fmt.Errorf("geocode location %q: no match", loc.Name)
	}
	loc.Geo = &Geo{Lat: result.Lat, Lon: result.Lon}
	loc.GeoSource = "forward"
	return loc, nil
}
