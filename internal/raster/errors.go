package raster

import "fmt"

// RasterLoadError wraps a failure to open or decode a raster file.
type RasterLoadError struct {
	Path string
	Err  error
}

func (e *RasterLoadError) Error() string {
	return fmt.Sprintf("load raster %s: %v", e.Path, e.Err)
}

func (e *RasterLoadError) Unwrap() error { return e.Err }

// ShapeMismatchError reports a month whose grids do not share dimensions
// or transform with the temperature grid.
type ShapeMismatchError struct {
	Month int
	Band  Band
	Want  string
	Got   string
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("month %02d: %s grid %s does not match tmax grid %s", e.Month, e.Band, e.Got, e.Want)
}

// CoordinateOutOfRangeError reports a sample point that falls outside the grid.
type CoordinateOutOfRangeError struct {
	Lon, Lat   float64
	Col, Row   int
	Cols, Rows int
}

func (e *CoordinateOutOfRangeError) Error() string {
	return fmt.Sprintf("coordinate (lon=%g, lat=%g) maps to cell (col=%d, row=%d) outside %dx%d grid",
		e.Lon, e.Lat, e.Col, e.Row, e.Cols, e.Rows)
}
