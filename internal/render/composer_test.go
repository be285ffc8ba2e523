package render

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/climate-wheel-map/internal/domain"
	"github.com/couchcryptid/climate-wheel-map/internal/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testOptions gives a 600x300 figure with wheels large enough to probe.
func testOptions() Options {
	s := domain.DefaultScales()
	s.WedgeRadius = 40
	return Options{WidthIn: 6, HeightIn: 3, DPI: 100, FontPt: 8, Scales: s}
}

func newTestComposer(t *testing.T) *Composer {
	t.Helper()
	c, err := New(testOptions())
	require.NoError(t, err)
	return c
}

// pixelAt samples the figure at a map coordinate.
func pixelAt(c *Composer, lon, lat float64) color.RGBA {
	x, y := c.Projection().ToPixel(lon, lat)
	r, g, b, a := c.Image().At(int(x), int(y)).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// polar returns the map coordinate at radius r and angle deg around center.
func polar(center domain.Geo, r, deg float64) (lon, lat float64) {
	rad := deg * math.Pi / 180
	return center.Lon + r*math.Cos(rad), center.Lat + r*math.Sin(rad)
}

func TestNew_FigureSize(t *testing.T) {
	c, err := New(DefaultOptions())
	require.NoError(t, err)
	b := c.Image().Bounds()
	assert.Equal(t, 6000, b.Dx())
	assert.Equal(t, 2100, b.Dy())
}

func TestNew_RejectsEmptyFigure(t *testing.T) {
	opts := testOptions()
	opts.DPI = 0
	_, err := New(opts)
	require.Error(t, err)
}

func TestProjection_EqualAspect(t *testing.T) {
	c := newTestComposer(t)
	p := c.Projection()

	x0, y0 := p.ToPixel(0, 0)
	x1, _ := p.ToPixel(10, 0)
	_, y1 := p.ToPixel(0, 10)
	assert.InDelta(t, x1-x0, y0-y1, 1e-9)

	assert.InDelta(t, p.Scale*480, p.Right()-p.Left, 1e-9)
	assert.InDelta(t, p.Scale*190, p.Bottom()-p.Top, 1e-9)
}

func TestDrawWedge_FillsSectorOnly(t *testing.T) {
	c := newTestComposer(t)
	s := c.opts.Scales
	center := domain.Geo{Lat: 0, Lon: 0}
	enc := domain.VisualEncoding{Hue: 0, Alpha: 1, WidthFraction: 0.5}
	c.DrawWedge(domain.NewWedgeGlyph("Null Island", center, 0, enc, s))

	// January spans 60..90 degrees; the ring covers radii 20..40.
	inside := pixelAt(c, 0, 0)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, inside, "hole stays empty")

	lon, lat := polar(center, 30, 75)
	red := pixelAt(c, lon, lat)
	assert.Greater(t, red.R, uint8(200))
	assert.Less(t, red.G, uint8(50))
	assert.Less(t, red.B, uint8(50))

	lon, lat = polar(center, 30, 45)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, pixelAt(c, lon, lat), "February slot untouched")
}

func TestDrawWedge_AlphaBlendsOverBackground(t *testing.T) {
	c := newTestComposer(t)
	s := c.opts.Scales
	center := domain.Geo{Lat: 0, Lon: 0}
	// Hue 2/3 is blue.
	enc := domain.VisualEncoding{Hue: 2.0 / 3.0, Alpha: 0.5, WidthFraction: 1}
	c.DrawWedge(domain.NewWedgeGlyph("Null Island", center, 6, enc, s))

	// July spans 240..270 degrees.
	lon, lat := polar(center, 20, 255)
	px := pixelAt(c, lon, lat)
	assert.InDelta(t, 127, int(px.R), 3)
	assert.InDelta(t, 127, int(px.G), 3)
	assert.Equal(t, uint8(255), px.B)
}

func TestDrawOutline_LandBlackSeaWhite(t *testing.T) {
	c := newTestComposer(t)
	g, err := raster.NewGrid(2, 2, []float64{-32768, 1, 1, -32768}, raster.GeoTransform{-180, 180, 0, 90, 0, -90})
	require.NoError(t, err)
	c.DrawOutline(raster.NewMask(g, -32768))

	assert.Equal(t, color.RGBA{255, 255, 255, 255}, pixelAt(c, -90, 45))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, pixelAt(c, 90, 45))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, pixelAt(c, -90, -45))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, pixelAt(c, 90, -45))
}

func TestPrecipLegendValues(t *testing.T) {
	got := PrecipLegendValues(domain.DefaultScales())
	assert.Equal(t, []float64{0, 50, 100, 150, 200, 250, 300}, got)
}

func TestDrawLegend_DrawsRings(t *testing.T) {
	opts := testOptions()
	opts.Scales.WedgeRadius = 4
	c, err := New(opts)
	require.NoError(t, err)
	c.DrawLegend()

	// 0 mm is a solid disc; 300 mm keeps only a thin rim around a hole.
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, pixelAt(c, legendX, legendYStart))
	last := legendYStart - 6*legendSpacing
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, pixelAt(c, legendX, last))
}

func TestSavePNG(t *testing.T) {
	c := newTestComposer(t)
	path := filepath.Join(t.TempDir(), "map.png")
	require.NoError(t, c.SavePNG(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 600, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())

	var buf bytes.Buffer
	require.NoError(t, c.EncodePNG(&buf))
	assert.Equal(t, data, buf.Bytes())
}
