// Package locations reads the list of places to draw climate wheels for.
package locations

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/couchcryptid/climate-wheel-map/internal/domain"
)

// record is one entry of locations.json. Latitude and longitude may both be
// omitted when the place should be geocoded by name.
type record struct {
	Name      string   `json:"name"`
	Region    string   `json:"region,omitempty"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// File loads locations from a JSON array on disk.
type File struct {
	path string
}

// NewFile returns a loader for the JSON file at path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Load reads and parses the file. Coordinates are not range-checked here;
// that happens once geocoding has filled in the gaps.
func (f *File) Load(_ context.Context) ([]domain.Location, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read locations: %w", err)
	}
	return Parse(data)
}

// Parse decodes a JSON array of location records.
func Parse(data []byte) ([]domain.Location, error) {
	var recs []record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("parse locations: %w", err)
	}

	out := make([]domain.Location, 0, len(recs))
	seen := make(map[string]bool, len(recs))
	for i, r := range recs {
		if r.Name == "" {
			return nil, fmt.Errorf("parse locations: entry %d has no name", i)
		}
		if seen[r.Name] {
			return nil, fmt.Errorf("parse locations: duplicate name %q", r.Name)
		}
		seen[r.Name] = true

		loc := domain.Location{Name: r.Name, Region: r.Region}
		switch {
		case r.Latitude != nil && r.Longitude != nil:
			loc.Geo = &domain.Geo{Lat: *r.Latitude, Lon: *r.Longitude}
		case r.Latitude != nil || r.Longitude != nil:
			return nil, fmt.Errorf("parse locations: %q has only one of latitude/longitude", r.Name)
		}
		out = append(out, loc)
	}
	return out, nil
}
