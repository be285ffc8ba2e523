// Package gdal loads GeoTIFF climate rasters through the GDAL C library.
package gdal

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/airbusgeo/godal"
	"github.com/couchcryptid/climate-wheel-map/internal/raster"
)

var registerOnce sync.Once

// Reader implements raster.Loader for any single-band format GDAL can open.
type Reader struct {
	logger *slog.Logger
}

// NewReader registers the GDAL drivers and returns a Reader.
func NewReader(logger *slog.Logger) *Reader {
	registerOnce.Do(godal.RegisterAll)
	return &Reader{logger: logger}
}

// Load reads band 1 of the raster at path into memory.
func (r *Reader) Load(ctx context.Context, path string) (*raster.Grid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ds, err := godal.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer ds.Close()

	bands := ds.Bands()
	if len(bands) == 0 {
		return nil, fmt.Errorf("%s has no bands", path)
	}
	band := bands[0]

	gt, err := ds.GeoTransform()
	if err != nil {
		return nil, fmt.Errorf("geotransform: %w", err)
	}

	st := ds.Structure()
	values := make([]float64, st.SizeX*st.SizeY)
	if err := band.Read(0, 0, values, st.SizeX, st.SizeY); err != nil {
		return nil, fmt.Errorf("read band: %w", err)
	}

	g, err := raster.NewGrid(st.SizeX, st.SizeY, values, raster.GeoTransform(gt))
	if err != nil {
		return nil, err
	}
	if nd, ok := band.NoData(); ok {
		g.NoData, g.HasNoData = nd, true
	}

	r.logger.Debug("raster loaded",
		"path", path,
		"cols", g.Cols,
		"rows", g.Rows,
		"nodata", g.NoData,
	)
	return g, nil
}
