package raster

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/couchcryptid/climate-wheel-map/internal/domain"
)

// Band names a monthly climate variable.
type Band string

const (
	BandTmax   Band = "tmax"
	BandPrecip Band = "prec"
	BandVapor  Band = "vapr"
)

// Loader reads one raster file into memory.
type Loader interface {
	Load(ctx context.Context, path string) (*Grid, error)
}

// Paths locates the monthly rasters. Patterns take the 1-based month as a
// single integer verb, e.g. "wc2.1_10m_tmax_%02d.tif".
type Paths struct {
	Dir           string
	TmaxPattern   string
	PrecipPattern string
	VaporPattern  string
	OutlineFile   string
}

// Month returns the file path of a band for a 1-based month.
func (p Paths) Month(band Band, month int) string {
	var pattern string
	switch band {
	case BandTmax:
		pattern = p.TmaxPattern
	case BandPrecip:
		pattern = p.PrecipPattern
	case BandVapor:
		pattern = p.VaporPattern
	}
	return filepath.Join(p.Dir, fmt.Sprintf(pattern, month))
}

// Outline returns the path of the raster whose no-data cells outline the sea.
func (p Paths) Outline() string {
	return filepath.Join(p.Dir, p.OutlineFile)
}

// LoadGrid loads a single raster, wrapping failures in RasterLoadError.
func LoadGrid(ctx context.Context, loader Loader, path string) (*Grid, error) {
	g, err := loader.Load(ctx, path)
	if err != nil {
		return nil, &RasterLoadError{Path: path, Err: err}
	}
	return g, nil
}

// MonthlySet holds the three grids for one month. All three share the
// temperature grid's shape and transform.
type MonthlySet struct {
	Month  int // 1..12
	Tmax   *Grid
	Precip *Grid
	Vapor  *Grid
}

// LoadMonth loads and validates the grids for a 1-based month.
func LoadMonth(ctx context.Context, loader Loader, paths Paths, month int) (*MonthlySet, error) {
	set := &MonthlySet{Month: month}
	for _, b := range []struct {
		band Band
		dst  **Grid
	}{
		{BandTmax, &set.Tmax},
		{BandPrecip, &set.Precip},
		{BandVapor, &set.Vapor},
	} {
		g, err := LoadGrid(ctx, loader, paths.Month(b.band, month))
		if err != nil {
			return nil, err
		}
		*b.dst = g
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// Validate checks that precipitation and vapour pressure grids match the
// temperature grid.
func (m *MonthlySet) Validate() error {
	if !m.Tmax.SameShape(m.Precip) {
		return &ShapeMismatchError{Month: m.Month, Band: BandPrecip, Want: m.Tmax.shape(), Got: m.Precip.shape()}
	}
	if !m.Tmax.SameShape(m.Vapor) {
		return &ShapeMismatchError{Month: m.Month, Band: BandVapor, Want: m.Tmax.shape(), Got: m.Vapor.shape()}
	}
	return nil
}

// Sample reads all three bands at a coordinate. Temperature is returned in
// Fahrenheit.
func (m *MonthlySet) Sample(g domain.Geo, s domain.Scales) (domain.SampledReading, error) {
	col, row, err := m.Tmax.Cell(g.Lon, g.Lat)
	if err != nil {
		return domain.SampledReading{}, err
	}
	return domain.SampledReading{
		TmaxF:            domain.TmaxToFahrenheit(m.Tmax.At(col, row), s),
		PrecipMM:         m.Precip.At(col, row),
		VaporPressureKPa: m.Vapor.At(col, row),
	}, nil
}
