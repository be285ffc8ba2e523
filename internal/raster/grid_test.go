package raster

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// globalTransform covers the world with cells of the given size in degrees,
// origin at the top-left corner (-180, 90).
func globalTransform(size float64) GeoTransform {
	return GeoTransform{-180, size, 0, 90, 0, -size}
}

// halfTransform splits the world into 2x2 cells of 180°x90°.
var halfTransform = GeoTransform{-180, 180, 0, 90, 0, -90}

func mustGrid(t *testing.T, cols, rows int, values []float64, gt GeoTransform) *Grid {
	t.Helper()
	g, err := NewGrid(cols, rows, values, gt)
	require.NoError(t, err)
	return g
}

func TestGeoTransform_InverseRoundTrip(t *testing.T) {
	transforms := []GeoTransform{
		globalTransform(1.0 / 6.0),
		{10, 0.5, 0.1, 50, -0.05, -0.5},
	}
	for _, gt := range transforms {
		inv, err := gt.Inverse()
		require.NoError(t, err)

		for _, p := range [][2]float64{{0, 0}, {3.5, 7.25}, {100, 40}} {
			x, y := gt.Apply(p[0], p[1])
			col, row := inv.Apply(x, y)
			assert.InDelta(t, p[0], col, 1e-9)
			assert.InDelta(t, p[1], row, 1e-9)
		}
	}
}

func TestGeoTransform_Singular(t *testing.T) {
	_, err := GeoTransform{0, 1, 1, 0, 1, 1}.Inverse()
	require.Error(t, err)
}

func TestNewGrid_Validation(t *testing.T) {
	_, err := NewGrid(2, 2, []float64{1, 2, 3}, globalTransform(90))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs 4 values")

	_, err = NewGrid(0, 2, nil, globalTransform(90))
	require.Error(t, err)

	_, err = NewGrid(1, 1, []float64{1}, GeoTransform{})
	require.Error(t, err)
}

func TestGrid_Sample(t *testing.T) {
	// 4x2 grid of 90° cells; values encode col + 10*row.
	g := mustGrid(t, 4, 2, []float64{0, 1, 2, 3, 10, 11, 12, 13}, globalTransform(90))

	tests := []struct {
		name     string
		lon, lat float64
		expected float64
	}{
		{"top-left corner", -180, 90, 0},
		{"inside first cell", -100, 10, 0},
		{"second column", -45, 45, 1},
		{"southern hemisphere", 45, -30, 12},
		{"last cell", 179.9, -89.9, 13},
		{"on the equator belongs to the lower row", 0, 0, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := g.Sample(tt.lon, tt.lat)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestGrid_SampleOutOfRange(t *testing.T) {
	g := mustGrid(t, 4, 2, make([]float64, 8), globalTransform(90))

	for _, p := range [][2]float64{{180, 0}, {-180.5, 0}, {0, 90.1}, {0, -90}, {math.NaN(), 0}} {
		_, err := g.Sample(p[0], p[1])
		require.Error(t, err, "lon=%v lat=%v", p[0], p[1])

		var oor *CoordinateOutOfRangeError
		require.True(t, errors.As(err, &oor))
		assert.Equal(t, 4, oor.Cols)
		assert.Equal(t, 2, oor.Rows)
	}
}

func TestGrid_SameShape(t *testing.T) {
	a := mustGrid(t, 2, 2, make([]float64, 4), globalTransform(90))
	b := mustGrid(t, 2, 2, make([]float64, 4), globalTransform(90))
	c := mustGrid(t, 2, 1, make([]float64, 2), globalTransform(90))
	d := mustGrid(t, 2, 2, make([]float64, 4), globalTransform(45))

	assert.True(t, a.SameShape(b))
	assert.False(t, a.SameShape(c))
	assert.False(t, a.SameShape(d))
}

func TestGrid_Extent(t *testing.T) {
	g := mustGrid(t, 4, 2, make([]float64, 8), globalTransform(90))
	minX, minY, maxX, maxY := g.Extent()
	assert.Equal(t, []float64{-180, -90, 180, 90}, []float64{minX, minY, maxX, maxY})
}

func TestNewMask(t *testing.T) {
	const nodata = -32768
	g := mustGrid(t, 2, 2, []float64{nodata, 12, 40, nodata}, halfTransform)
	g.NoData, g.HasNoData = nodata, true

	m := NewMask(g, nodata)

	assert.True(t, m.IsSea(0, 0))
	assert.False(t, m.IsSea(1, 0))
	assert.False(t, m.IsSea(0, 1))
	assert.True(t, m.IsSea(1, 1))
	assert.Equal(t, 2, m.SeaCount())
	assert.Equal(t, -180.0, m.MinLon)
	assert.Equal(t, 90.0, m.MaxLat)
}
