package gaussian

import (
	"math"
	"strconv"

	"fieldplot/internal/core"
)

// Config describes a gaussian bump sampled on a regular grid covering
// [0, LX] x [0, LY].
type Config struct {
	Width  int
	Height int
	LX, LY float64

	X0, Y0         float64
	SigmaX, SigmaY float64
	Amplitude      float64
}

// DefaultConfig returns a 70x40 grid over [0,2]x[0,1] with a negative bump
// centered at (1.2, 0.3).
func DefaultConfig() Config {
	return Config{
		Width: 70, Height: 40,
		LX: 2, LY: 1,
		X0: 1.2, Y0: 0.3,
		SigmaX: 0.1, SigmaY: 0.1,
		Amplitude: -1,
	}
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
	floats := map[string]*float64{
		"x0": &c.X0, "y0": &c.Y0,
		"sigma_x": &c.SigmaX, "sigma_y": &c.SigmaY,
		"amp": &c.Amplitude,
	}
	for key, dst := range floats {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}
	return c
}

// Eval returns A*exp(-((x-x0)^2/(2 sx^2) + (y-y0)^2/(2 sy^2))).
func (c Config) Eval(x, y float64) float64 {
	dx, dy := x-c.X0, y-c.Y0
	return c.Amplitude * math.Exp(-(dx*dx/(2*c.SigmaX*c.SigmaX) + dy*dy/(2*c.SigmaY*c.SigmaY)))
}

// Fill samples the gaussian into dst, row 0 being y = 0.
func (c Config) Fill(dst []float64, amplitude float64) {
	hx := c.LX / float64(c.Width)
	hy := c.LY / float64(c.Height)
	scaled := c
	scaled.Amplitude = amplitude
	for i := 0; i < c.Height; i++ {
		for j := 0; j < c.Width; j++ {
			dst[i*c.Width+j] = scaled.Eval(float64(j)*hx, float64(i)*hy)
		}
	}
}

// Gaussian is a static field; Step does nothing.
type Gaussian struct {
	cfg   Config
	field []float64
}

// New samples the configured gaussian once.
func New(cfg Config) *Gaussian {
	g := &Gaussian{cfg: cfg, field: make([]float64, cfg.Width*cfg.Height)}
	cfg.Fill(g.field, cfg.Amplitude)
	return g
}

// Name identifies the source.
func (g *Gaussian) Name() string { return "gaussian" }

// Size returns the field dimensions.
func (g *Gaussian) Size() core.Size { return core.Size{W: g.cfg.Width, H: g.cfg.Height} }

// Field exposes the sampled values.
func (g *Gaussian) Field() []float64 { return g.field }

// Reset resamples the field.
func (g *Gaussian) Reset(int64) { g.cfg.Fill(g.field, g.cfg.Amplitude) }

// Step is a no-op.
func (g *Gaussian) Step() {}

func init() {
	core.Register("gaussian", func(cfg map[string]string) core.Source {
		return New(FromMap(cfg))
	})
}
