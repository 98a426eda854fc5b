//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	lineHeight = 16
	padding    = 6
)

// Overlay draws the status text over the top-left corner of the grid.
type Overlay struct {
	pixel *ebiten.Image
	bg    color.RGBA
	fg    color.Color
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{bg: color.RGBA{A: 160}, fg: color.White}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Draw renders s onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, s Status) {
	lines := s.Lines()
	width := 0
	for _, line := range lines {
		if w := text.BoundString(basicfont.Face7x13, line).Dx(); w > width {
			width = w
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*padding), float64(len(lines)*lineHeight+padding))
	op.ColorScale.ScaleWithColor(o.bg)
	screen.DrawImage(o.pixel, op)

	for i, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, padding, padding+basicfont.Face7x13.Ascent+i*lineHeight, o.fg)
	}
}
