// Package render draws the climate wheel map.
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/couchcryptid/climate-wheel-map/internal/domain"
	"github.com/couchcryptid/climate-wheel-map/internal/raster"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Options sizes the figure. Width and height are in inches.
type Options struct {
	WidthIn  float64
	HeightIn float64
	DPI      float64
	FontPt   float64
	Scales   domain.Scales
}

// DefaultOptions returns a 20x7 inch figure at 300 DPI.
func DefaultOptions() Options {
	return Options{
		WidthIn:  20,
		HeightIn: 7,
		DPI:      300,
		FontPt:   10,
		Scales:   domain.DefaultScales(),
	}
}

// Composer owns the single drawing surface of a run.
type Composer struct {
	dc     *gg.Context
	proj   Projection
	opts   Options
	face   font.Face
	panelX float64 // left edge of the colorbar panel
}

// New allocates the figure and paints it white.
func New(opts Options) (*Composer, error) {
	w := int(math.Round(opts.WidthIn * opts.DPI))
	h := int(math.Round(opts.HeightIn * opts.DPI))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid figure size %dx%d px", w, h)
	}

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{Size: opts.FontPt, DPI: opts.DPI})

	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetFontFace(face)

	// Map on the left, colorbars in the right-hand panel.
	fw, fh := float64(w), float64(h)
	margin := 0.02 * fw
	panel := 0.12 * fw
	proj := fitProjection(margin, 0.04*fh, fw-2*margin-panel, 0.92*fh)

	return &Composer{
		dc:     dc,
		proj:   proj,
		opts:   opts,
		face:   face,
		panelX: fw - margin - panel,
	}, nil
}

// Projection exposes the data-to-pixel mapping.
func (c *Composer) Projection() Projection { return c.proj }

// Image returns the figure drawn so far.
func (c *Composer) Image() image.Image { return c.dc.Image() }

// DrawOutline paints the backdrop: land black, sea white.
func (c *Composer) DrawOutline(m *raster.Mask) {
	src := image.NewGray(image.Rect(0, 0, m.Cols, m.Rows))
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			if m.IsSea(col, row) {
				src.SetGray(col, row, color.Gray{Y: 255})
			}
		}
	}

	x0, y0 := c.proj.ToPixel(m.MinLon, m.MaxLat)
	x1, y1 := c.proj.ToPixel(m.MaxLon, m.MinLat)
	dst := image.Rect(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)))
	draw.NearestNeighbor.Scale(c.dc.Image().(draw.Image), dst, src, src.Bounds(), draw.Src, nil)
}

// DrawWedge fills one ring sector with HSV(hue, 1, 1) at the glyph's alpha.
func (c *Composer) DrawWedge(w domain.WedgeGlyph) {
	rgb := colorful.Hsv(w.Hue*360, 1, 1)
	c.dc.SetRGBA(rgb.R, rgb.G, rgb.B, w.Alpha)
	c.ringSector(w.Center, w.Radius, w.InnerRadius(), w.Theta1, w.Theta2)
	c.dc.Fill()
}

// ringSector adds an annular sector path. Angles are degrees counter-clockwise
// from east in map space; pixel space has y flipped, hence the negation.
func (c *Composer) ringSector(center domain.Geo, outer, inner, theta1, theta2 float64) {
	cx, cy := c.proj.ToPixel(center.Lon, center.Lat)
	a1, a2 := -gg.Radians(theta1), -gg.Radians(theta2)

	c.dc.NewSubPath()
	c.dc.DrawArc(cx, cy, outer*c.proj.Scale, a1, a2)
	c.dc.DrawArc(cx, cy, inner*c.proj.Scale, a2, a1)
	c.dc.ClosePath()
}

// EncodePNG writes the figure as PNG.
func (c *Composer) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// SavePNG writes the figure to path.
func (c *Composer) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}
