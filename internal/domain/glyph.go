package domain

import "math"

// WedgeGlyph is one ring sector of a climate wheel, in map-degree units.
// Angles are degrees counter-clockwise from east; the sector is drawn from
// Theta1 to Theta2 between radius Radius-Width and Radius.
type WedgeGlyph struct {
	Location string
	Month    int // 0-indexed
	Center   Geo
	Radius   float64
	Width    float64
	Theta1   float64
	Theta2   float64
	Hue      float64
	Alpha    float64
}

// InnerRadius is the radius of the hole in the ring.
func (w WedgeGlyph) InnerRadius() float64 {
	return w.Radius - w.Width
}

// MonthSpan returns the angular span of a 0-indexed month. January ends at
// StartAngle and later months step clockwise.
func MonthSpan(month int, s Scales) (theta1, theta2 float64) {
	angle := math.Mod(s.StartAngle-s.MonthDegrees*float64(month), 360)
	if angle < 0 {
		angle += 360
	}
	return angle - s.MonthDegrees, angle
}

// NewWedgeGlyph positions one month's wedge at a location.
func NewWedgeGlyph(name string, center Geo, month int, enc VisualEncoding, s Scales) WedgeGlyph {
	theta1, theta2 := MonthSpan(month, s)
	return WedgeGlyph{
		Location: name,
		Month:    month,
		Center:   center,
		Radius:   s.WedgeRadius,
		Width:    s.WedgeRadius * enc.WidthFraction,
		Theta1:   theta1,
		Theta2:   theta2,
		Hue:      enc.Hue,
		Alpha:    enc.Alpha,
	}
}
