package life

import (
	"strconv"

	"fieldplot/internal/core"
)

// Config holds the board dimensions.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns a 96x96 board.
func DefaultConfig() Config { return Config{Width: 96, Height: 96} }

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	return c
}

// Life implements Conway's Game of Life with toroidal wrapping. Live cells
// read as 1 and dead cells as 0 in the exported field.
type Life struct {
	w, h  int
	cur   []uint8
	nxt   []uint8
	field []float64
}

// New returns a Life simulation with the provided dimensions.
func New(w, h int) *Life {
	cells := make([]uint8, w*h)
	return &Life{w: w, h: h, cur: cells, nxt: make([]uint8, len(cells)), field: make([]float64, len(cells))}
}

// Name returns the source identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur }

// Field returns the board as 0/1 samples.
func (l *Life) Field() []float64 {
	for i, c := range l.cur {
		l.field[i] = float64(c)
	}
	return l.field
}

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	core.FillBinary(rng, l.cur)
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h := l.w, l.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					neighbors += int(l.cur[ny*w+nx])
				}
			}
			idx := y*w + x
			alive := l.cur[idx] == 1
			l.nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				l.nxt[idx] = 1
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Source {
		c := FromMap(cfg)
		return New(c.Width, c.Height)
	})
}
