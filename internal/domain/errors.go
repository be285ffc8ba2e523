package domain

import "fmt"

// DegenerateHumidityError reports a relative humidity for which the dew
// point formula is undefined (RH <= 0), or a dew point that came out
// non-finite. Ocean no-data cells sampled at coastal locations are the
// usual cause.
type DegenerateHumidityError struct {
	TempF               float64
	RelativeHumidityPct float64
}

func (e *DegenerateHumidityError) Error() string {
	return fmt.Sprintf("degenerate humidity: rh=%g%% at %g°F", e.RelativeHumidityPct, e.TempF)
}
