package render

import "image/color"

// ColorMap converts one scalar sample to one color. Implementations must be
// pure: large fields are mapped from several goroutines at once and in no
// particular order.
type ColorMap interface {
	Map(v float64) color.RGBA
}

// ColorMapFunc adapts an ordinary function to the ColorMap interface.
type ColorMapFunc func(v float64) color.RGBA

// Map calls f(v).
func (f ColorMapFunc) Map(v float64) color.RGBA { return f(v) }
