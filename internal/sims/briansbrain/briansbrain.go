package briansbrain

import (
	"strconv"

	"fieldplot/internal/core"
)

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

// Field values for each cell state. Refractory cells read negative so a
// diverging color map separates them from firing cells.
const (
	valueOn    = 1.0
	valueDying = -0.5
)

// FromMap reads the board dimensions from a string map, defaulting to 128x128.
func FromMap(cfg map[string]string) core.Size {
	size := core.Size{W: 128, H: 128}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			size.W = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			size.H = parsed
		}
	}
	return size
}

// Brain implements Brian's Brain cellular automaton.
type Brain struct {
	w, h  int
	cur   []uint8
	nxt   []uint8
	field []float64
}

// New creates a Brain simulation with the provided dimensions.
func New(w, h int) *Brain {
	cells := make([]uint8, w*h)
	return &Brain{w: w, h: h, cur: cells, nxt: make([]uint8, len(cells)), field: make([]float64, len(cells))}
}

// Name identifies the source.
func (b *Brain) Name() string { return "briansbrain" }

// Size returns the grid dimensions.
func (b *Brain) Size() core.Size { return core.Size{W: b.w, H: b.h} }

// Cells exposes the current state buffer.
func (b *Brain) Cells() []uint8 { return b.cur }

// Field maps firing cells to 1, dying cells to -0.5 and dead cells to 0.
func (b *Brain) Field() []float64 {
	for i, c := range b.cur {
		switch c {
		case stateOn:
			b.field[i] = valueOn
		case stateDying:
			b.field[i] = valueDying
		default:
			b.field[i] = 0
		}
	}
	return b.field
}

// Reset randomizes cells into dead or firing states.
func (b *Brain) Reset(seed int64) {
	rng := core.NewRNG(seed)
	for i := range b.cur {
		if rng.IntN(8) == 0 {
			b.cur[i] = stateOn
			continue
		}
		b.cur[i] = stateDead
	}
}

// Step advances the automaton by one tick.
func (b *Brain) Step() {
	w, h := b.w, b.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			switch b.cur[idx] {
			case stateOn:
				b.nxt[idx] = stateDying
			case stateDying:
				b.nxt[idx] = stateDead
			default:
				neighbors := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx := (x + dx + w) % w
						ny := (y + dy + h) % h
						if b.cur[ny*w+nx] == stateOn {
							neighbors++
						}
					}
				}
				if neighbors == 2 {
					b.nxt[idx] = stateOn
				} else {
					b.nxt[idx] = stateDead
				}
			}
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) core.Source {
		size := FromMap(cfg)
		return New(size.W, size.H)
	})
}
