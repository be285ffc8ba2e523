package render

import "math"

// Plot extent in map degrees. The x range runs past the antimeridian to
// leave room for the precipitation legend.
const (
	extentMinX = -180.0
	extentMaxX = 300.0
	extentMinY = -90.0
	extentMaxY = 100.0
)

// Projection maps plate carrée degrees onto figure pixels with equal aspect.
type Projection struct {
	Left, Top float64 // pixel position of (extentMinX, extentMaxY)
	Scale     float64 // pixels per degree
}

// fitProjection centres the extent inside the given pixel box.
func fitProjection(x, y, w, h float64) Projection {
	dx, dy := extentMaxX-extentMinX, extentMaxY-extentMinY
	scale := math.Min(w/dx, h/dy)
	return Projection{
		Left:  x + (w-dx*scale)/2,
		Top:   y + (h-dy*scale)/2,
		Scale: scale,
	}
}

// ToPixel converts (lon, lat) to pixel coordinates, y pointing down.
func (p Projection) ToPixel(lon, lat float64) (px, py float64) {
	return p.Left + (lon-extentMinX)*p.Scale, p.Top + (extentMaxY-lat)*p.Scale
}

// Right returns the pixel x of the extent's right edge.
func (p Projection) Right() float64 {
	return p.Left + (extentMaxX-extentMinX)*p.Scale
}

// Bottom returns the pixel y of the extent's bottom edge.
func (p Projection) Bottom() float64 {
	return p.Top + (extentMaxY-extentMinY)*p.Scale
}
