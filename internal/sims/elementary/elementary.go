package elementary

import (
	"strconv"

	"fieldplot/internal/core"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 128, Rule: 110}
}

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
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Elementary runs a one-dimensional Wolfram code and keeps its history as a
// 2D field. The newest generation is the top row; older rows move down.
type Elementary struct {
	w, h  int
	rule  uint8
	cur   []uint8
	tmp   []uint8
	field []float64
}

// New creates an automaton with the given dimensions and rule.
func New(w, h int, rule uint8) *Elementary {
	total := w * h
	return &Elementary{
		w: w, h: h, rule: rule,
		cur:   make([]uint8, total),
		tmp:   make([]uint8, w),
		field: make([]float64, total),
	}
}

// Name returns the source identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the grid dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// Field returns the history as 0/1 samples.
func (e *Elementary) Field() []float64 {
	for i, c := range e.cur {
		e.field[i] = float64(c)
	}
	return e.field
}

// Reset clears the history and seeds the newest row with a single active
// cell in the middle.
func (e *Elementary) Reset(int64) {
	clear(e.cur)
	e.cur[e.top()+e.w/2] = 1
}

// Step computes the next generation into the top row and shifts the
// history down by one row.
func (e *Elementary) Step() {
	top := e.top()
	copy(e.tmp, e.cur[top:])
	copy(e.cur[:top], e.cur[e.w:])
	for x := 0; x < e.w; x++ {
		left := e.tmp[(x-1+e.w)%e.w]
		center := e.tmp[x]
		right := e.tmp[(x+1)%e.w]
		idx := (left << 2) | (center << 1) | right
		e.cur[top+x] = (e.rule >> idx) & 1
	}
}

// top returns the index of the first sample of the newest row.
func (e *Elementary) top() int { return (e.h - 1) * e.w }

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Source {
		c := FromMap(cfg)
		return New(c.Width, c.Height, c.Rule)
	})
}
