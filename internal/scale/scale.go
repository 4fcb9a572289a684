// Package scale provides linear range mapping between arbitrary intervals.
package scale

// Translate maps value from the [fromMin, fromMax] range onto the
// [toMin, toMax] range. The source range must not be degenerate
// (fromMax == fromMin); callers are responsible for guaranteeing that,
// since a zero-width source range divides by zero.
func Translate(value, fromMin, fromMax, toMin, toMax float64) float64 {
	ratio := (value - fromMin) / (fromMax - fromMin)
	return toMin + ratio*(toMax-toMin)
}

// Unit maps value from [0,1] onto [toMin, toMax].
func Unit(value, toMin, toMax float64) float64 {
	return Translate(value, 0, 1, toMin, toMax)
}
