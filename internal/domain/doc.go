// Package domain holds the climate-wheel model and the pure functions that
// turn sampled raster values into drawable glyphs.
//
// # Pipeline stages
//
// Each location is sampled once per calendar month. The raw cell values
// pass through two stages before they reach the renderer:
//
//	SampledReading  ->  DerivedClimate  ->  VisualEncoding  ->  WedgeGlyph
//	 (Fahrenheit,        (relative          (hue, alpha,        (ring sector
//	  mm, kPa)            humidity,          width fraction)     in map degrees)
//	                      dew point)
//
// # Units
//
// Temperature rasters carry Celsius values. [TmaxToFahrenheit] clamps the
// raw value to ±1000 before converting, which keeps the float32 no-data
// sentinel of the source grids from producing absurd Fahrenheit values.
// Precipitation is monthly total millimetres and vapour pressure is kPa.
//
// Relative humidity uses the Tetens saturation vapour pressure
//
//	es(T) = 0.6108 * exp(17.27*T / (T + 237.3))   [kPa, T in °C]
//
// and dew point uses the Magnus form with b = 237.7:
//
//	a  = 17.27*T / (237.7 + T) + ln(RH/100)
//	Td = 237.7*a / (17.27 - a)
//
// The two constants differ slightly (237.3 vs 237.7). Both are kept as they
// are so that existing maps reproduce exactly.
//
// # Visual channels
//
// All three encoders clamp their input to the range configured in [Scales]
// and map it linearly:
//
//	temperature  50–95 °F   ->  hue 2/3 (blue) .. 0 (red)
//	dew point    50–75 °F   ->  alpha 1.0 .. 0.1
//	precip       0–300 mm   ->  ring width fraction 1.0 .. 0.1
//
// # Clock face
//
// Month 0 (January) spans 60°–90°, measured counter-clockwise from east,
// so the year runs clockwise starting at twelve o'clock. See [MonthSpan].
package domain
