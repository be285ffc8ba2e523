package raster

// Mask marks the sea cells of a grid, identified by the no-data sentinel.
type Mask struct {
	Cols, Rows int
	Sea        []bool // row-major

	MinLon, MinLat float64
	MaxLon, MaxLat float64
}

// NewMask builds a land/sea mask from a grid and its no-data sentinel.
func NewMask(g *Grid, nodata float64) *Mask {
	sea := make([]bool, len(g.Values))
	for i, v := range g.Values {
		sea[i] = v == nodata
	}
	minX, minY, maxX, maxY := g.Extent()
	return &Mask{
		Cols:   g.Cols,
		Rows:   g.Rows,
		Sea:    sea,
		MinLon: minX,
		MinLat: minY,
		MaxLon: maxX,
		MaxLat: maxY,
	}
}

// IsSea reports whether the cell at (col, row) is sea.
func (m *Mask) IsSea(col, row int) bool {
	return m.Sea[row*m.Cols+col]
}

// SeaCount returns the number of sea cells.
func (m *Mask) SeaCount() int {
	n := 0
	for _, s := range m.Sea {
		if s {
			n++
		}
	}
	return n
}
