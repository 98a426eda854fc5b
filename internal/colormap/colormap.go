// Package colormap provides scalar-to-color maps for rendering fields.
package colormap

import (
	"fmt"
	"image/color"
	"math"

	"fieldplot/internal/render"
)

// NaNColor is returned for samples that are not a number.
var NaNColor = color.RGBA{G: 200, A: 255}

// RedBlueExt is a diverging map centered on white. Positive values fade
// through red to dark red at +Scale, negative values through blue to dark
// blue at -Scale. Values beyond the scale saturate.
type RedBlueExt struct {
	Scale float64
}

// Map implements render.ColorMap.
func (m RedBlueExt) Map(v float64) color.RGBA {
	if math.IsNaN(v) {
		return NaNColor
	}
	scale := m.Scale
	if scale <= 0 {
		scale = 1
	}
	t := math.Min(math.Abs(v)/scale, 1)

	// hot is the channel that stays lit, cold the two that fade.
	hot, cold := 1.0, 1-2*t
	if t > 0.5 {
		hot, cold = 1-(t-0.5), 0
	}
	h, c := channel(hot), channel(cold)
	if v < 0 {
		return color.RGBA{R: c, G: c, B: h, A: 255}
	}
	return color.RGBA{R: h, G: c, B: c, A: 255}
}

// Grayscale maps [Min, Max] linearly onto black..white and clamps outside.
type Grayscale struct {
	Min, Max float64
}

// Map implements render.ColorMap.
func (m Grayscale) Map(v float64) color.RGBA {
	if math.IsNaN(v) {
		return NaNColor
	}
	span := m.Max - m.Min
	t := 0.0
	if span != 0 {
		t = (v - m.Min) / span
	}
	g := channel(math.Max(0, math.Min(1, t)))
	return color.RGBA{R: g, G: g, B: g, A: 255}
}

// Names lists the maps ByName understands.
var Names = []string{"redblue", "gray"}

// ByName returns the named map configured for values in [-scale, scale].
func ByName(name string, scale float64) (render.ColorMap, error) {
	switch name {
	case "redblue", "":
		return RedBlueExt{Scale: scale}, nil
	case "gray":
		return Grayscale{Min: -scale, Max: scale}, nil
	default:
		return nil, fmt.Errorf("unknown color map %q", name)
	}
}

func channel(f float64) uint8 {
	return uint8(math.Round(f * 255))
}
