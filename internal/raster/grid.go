package raster

import (
	"errors"
	"fmt"
	"math"
)

// GeoTransform is an affine pixel-to-world transform in GDAL order.
type GeoTransform [6]float64

// Apply maps (col, row) to world (x, y).
func (gt GeoTransform) Apply(col, row float64) (x, y float64) {
	return gt[0] + col*gt[1] + row*gt[2], gt[3] + col*gt[4] + row*gt[5]
}

// Inverse returns the world-to-pixel transform.
func (gt GeoTransform) Inverse() (GeoTransform, error) {
	det := gt[1]*gt[5] - gt[2]*gt[4]
	if det == 0 || math.IsNaN(det) {
		return GeoTransform{}, errors.New("geotransform is not invertible")
	}
	var inv GeoTransform
	inv[1] = gt[5] / det
	inv[2] = -gt[2] / det
	inv[4] = -gt[4] / det
	inv[5] = gt[1] / det
	inv[0] = -(inv[1]*gt[0] + inv[2]*gt[3])
	inv[3] = -(inv[4]*gt[0] + inv[5]*gt[3])
	return inv, nil
}

// Grid is a single raster band held in memory.
type Grid struct {
	Cols      int
	Rows      int
	Values    []float64 // row-major, len == Cols*Rows
	Transform GeoTransform
	NoData    float64
	HasNoData bool

	inverse GeoTransform
}

// NewGrid validates the dimensions and precomputes the inverse transform.
func NewGrid(cols, rows int, values []float64, transform GeoTransform) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("invalid grid size %dx%d", cols, rows)
	}
	if len(values) != cols*rows {
		return nil, fmt.Errorf("grid %dx%d needs %d values, got %d", cols, rows, cols*rows, len(values))
	}
	inv, err := transform.Inverse()
	if err != nil {
		return nil, err
	}
	return &Grid{
		Cols:      cols,
		Rows:      rows,
		Values:    values,
		Transform: transform,
		inverse:   inv,
	}, nil
}

// At returns the value at (col, row). The caller guarantees the indices.
func (g *Grid) At(col, row int) float64 {
	return g.Values[row*g.Cols+col]
}

// Cell returns the indices of the cell containing (lon, lat).
func (g *Grid) Cell(lon, lat float64) (col, row int, err error) {
	fc, fr := g.inverse.Apply(lon, lat)
	if math.IsNaN(fc) || math.IsNaN(fr) {
		return 0, 0, &CoordinateOutOfRangeError{Lon: lon, Lat: lat, Col: -1, Row: -1, Cols: g.Cols, Rows: g.Rows}
	}
	col, row = int(math.Floor(fc)), int(math.Floor(fr))
	if col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
		return col, row, &CoordinateOutOfRangeError{Lon: lon, Lat: lat, Col: col, Row: row, Cols: g.Cols, Rows: g.Rows}
	}
	return col, row, nil
}

// Sample returns the value of the cell nearest (lon, lat), i.e. the cell
// that contains it.
func (g *Grid) Sample(lon, lat float64) (float64, error) {
	col, row, err := g.Cell(lon, lat)
	if err != nil {
		return 0, err
	}
	return g.At(col, row), nil
}

// SameShape reports whether both grids have equal dimensions and transform.
func (g *Grid) SameShape(other *Grid) bool {
	return g.Cols == other.Cols && g.Rows == other.Rows && g.Transform == other.Transform
}

// Extent returns the world bounds covered by the grid.
func (g *Grid) Extent() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, c := range [][2]float64{{0, 0}, {float64(g.Cols), 0}, {0, float64(g.Rows)}, {float64(g.Cols), float64(g.Rows)}} {
		x, y := g.Transform.Apply(c[0], c[1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	return minX, minY, maxX, maxY
}

func (g *Grid) shape() string {
	return fmt.Sprintf("%dx%d %v", g.Cols, g.Rows, [6]float64(g.Transform))
}
