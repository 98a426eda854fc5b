package pulse

import (
	"strconv"

	"fieldplot/internal/core"
	"fieldplot/internal/sims/gaussian"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Config controls the pulsing gaussian.
type Config struct {
	Shape gaussian.Config

	// Period is the number of steps for one swing from -Amplitude to
	// +Amplitude.
	Period int
}

// DefaultConfig returns the default gaussian swinging over 120 steps.
func DefaultConfig() Config {
	shape := gaussian.DefaultConfig()
	shape.Amplitude = 1
	return Config{Shape: shape, Period: 120}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Shape = gaussian.FromMap(cfg)
	if _, ok := cfg["amp"]; !ok {
		c.Shape.Amplitude = 1
	}
	if v, ok := cfg["period"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Period = parsed
		}
	}
	return c
}

// Pulse is a gaussian whose amplitude eases back and forth between
// -Amplitude and +Amplitude.
type Pulse struct {
	cfg   Config
	tween *gween.Tween
	up    bool
	amp   float64
	field []float64
}

// New returns a pulse starting at -Amplitude.
func New(cfg Config) *Pulse {
	if cfg.Period <= 0 {
		cfg.Period = 1
	}
	p := &Pulse{cfg: cfg, field: make([]float64, cfg.Shape.Width*cfg.Shape.Height)}
	p.Reset(0)
	return p
}

// Name identifies the source.
func (p *Pulse) Name() string { return "pulse" }

// Size returns the field dimensions.
func (p *Pulse) Size() core.Size { return core.Size{W: p.cfg.Shape.Width, H: p.cfg.Shape.Height} }

// Field exposes the sampled values.
func (p *Pulse) Field() []float64 { return p.field }

// Amplitude returns the current signed amplitude.
func (p *Pulse) Amplitude() float64 { return p.amp }

// Reset restarts the swing from -Amplitude.
func (p *Pulse) Reset(int64) {
	p.up = true
	p.amp = -p.cfg.Shape.Amplitude
	p.tween = p.newSwing()
	p.cfg.Shape.Fill(p.field, p.amp)
}

// Step advances the tween by one step and resamples the field.
func (p *Pulse) Step() {
	v, done := p.tween.Update(1)
	p.amp = float64(v)
	if done {
		p.up = !p.up
		p.tween = p.newSwing()
	}
	p.cfg.Shape.Fill(p.field, p.amp)
}

func (p *Pulse) newSwing() *gween.Tween {
	a := float32(p.cfg.Shape.Amplitude)
	from, to := -a, a
	if !p.up {
		from, to = a, -a
	}
	return gween.New(from, to, float32(p.cfg.Period), ease.InOutSine)
}

func init() {
	core.Register("pulse", func(cfg map[string]string) core.Source {
		return New(FromMap(cfg))
	})
}
