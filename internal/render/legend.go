package render

import (
	"fmt"
	"math"

	"github.com/couchcryptid/climate-wheel-map/internal/domain"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Legend placement in map degrees.
const (
	legendX       = 250.0
	legendYStart  = 80.0
	legendSpacing = 10.0
	legendSteps   = 7
)

// DrawLegend draws the precipitation ring key and the two colorbars.
func (c *Composer) DrawLegend() {
	c.drawPrecipKey()

	top, bottom := c.proj.Top, c.proj.Bottom()
	barW := 0.012 * float64(c.dc.Width())
	gap := 0.06 * float64(c.dc.Width())
	s := c.opts.Scales

	c.drawColorbar(c.panelX, top, barW, bottom-top, s.MinTmax, s.MaxTmax, "Temperature (F)",
		func(v float64) (r, g, b, a float64) {
			rgb := colorful.Hsv(domain.TempToHue(v, s)*360, 1, 1)
			return rgb.R, rgb.G, rgb.B, 1
		})
	c.drawColorbar(c.panelX+gap, top, barW, bottom-top, s.MinDewPoint, s.MaxDewPoint, "Dew Point (F)",
		func(v float64) (r, g, b, a float64) {
			return 0, 0, 1, domain.DewPointToAlpha(v, s)
		})
}

// PrecipLegendValues returns the precipitation amounts shown in the key.
func PrecipLegendValues(s domain.Scales) []float64 {
	out := make([]float64, legendSteps)
	step := (s.MaxPrecip - s.MinPrecip) / float64(legendSteps-1)
	for i := range out {
		out[i] = s.MinPrecip + float64(i)*step
	}
	return out
}

func (c *Composer) drawPrecipKey() {
	s := c.opts.Scales
	for i, precip := range PrecipLegendValues(s) {
		center := domain.Geo{Lon: legendX, Lat: legendYStart - float64(i)*legendSpacing}
		width := s.WedgeRadius * domain.PrecipToWidthFraction(precip, s)

		c.dc.SetRGB(0, 0, 1)
		c.ringSector(center, s.WedgeRadius, s.WedgeRadius-width, 0, 360)
		c.dc.Fill()

		x, y := c.proj.ToPixel(center.Lon+s.WedgeRadius+0.5, center.Lat)
		c.dc.SetRGB(0, 0, 0)
		c.dc.DrawStringAnchored(fmt.Sprintf("%.1f mm", precip), x, y, 0, 0.5)
	}
}

// drawColorbar draws a vertical gradient bar, min at the bottom, with ticks
// every 5 units and a rotated title on its right.
func (c *Composer) drawColorbar(x, y, w, h, lo, hi float64, title string, rgba func(v float64) (r, g, b, a float64)) {
	rows := int(math.Ceil(h))
	for i := 0; i < rows; i++ {
		v := hi - (hi-lo)*float64(i)/float64(rows-1)
		c.dc.SetRGBA(rgba(v))
		c.dc.DrawRectangle(x, y+float64(i), w, 1)
		c.dc.Fill()
	}

	c.dc.SetRGB(0, 0, 0)
	c.dc.SetLineWidth(math.Max(1, c.opts.DPI/150))
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Stroke()

	tick := w / 3
	var labelRight float64
	for v := math.Ceil(lo/5) * 5; v <= hi; v += 5 {
		ty := y + h*(hi-v)/(hi-lo)
		c.dc.DrawLine(x+w, ty, x+w+tick, ty)
		c.dc.Stroke()
		label := fmt.Sprintf("%g", v)
		c.dc.DrawStringAnchored(label, x+w+1.5*tick, ty, 0, 0.5)
		lw, _ := c.dc.MeasureString(label)
		labelRight = math.Max(labelRight, lw)
	}

	tx := x + w + 2*tick + labelRight + 0.5*float64(c.face.Metrics().Height.Round())
	ty := y + h/2
	c.dc.Push()
	c.dc.RotateAbout(-math.Pi/2, tx, ty)
	c.dc.DrawStringAnchored(title, tx, ty, 0.5, 0.5)
	c.dc.Pop()
}
