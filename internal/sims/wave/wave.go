package wave

import (
	"runtime"
	"strconv"

	"fieldplot/internal/core"

	"golang.org/x/sync/errgroup"
)

// Config controls the damped wave solver.
type Config struct {
	Width, Height int

	// Speed is c^2 dt^2 / dx^2; values above 0.5 are unstable.
	Speed   float64
	Damp    float64
	Reflect float64

	// ImpulseEvery drops a new impulse every n steps; 0 disables impulses.
	ImpulseEvery int
	Strength     float64
	Workers      int
}

// DefaultConfig returns a 128x128 field with an impulse every 40 steps.
func DefaultConfig() Config {
	return Config{
		Width: 128, Height: 128,
		Speed: 0.5, Damp: 0.995, Reflect: 0.9,
		ImpulseEvery: 40, Strength: 1,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	ints := map[string]*int{"w": &c.Width, "h": &c.Height, "impulse_every": &c.ImpulseEvery, "workers": &c.Workers}
	for key, dst := range ints {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				*dst = parsed
			}
		}
	}
	floats := map[string]*float64{"speed": &c.Speed, "damp": &c.Damp, "reflect": &c.Reflect, "strength": &c.Strength}
	for key, dst := range floats {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}
	return c
}

// Wave integrates the 2D wave equation with a five point Laplacian, keeping
// three time levels.
type Wave struct {
	cfg  Config
	prev []float64
	curr []float64
	next []float64

	steps int
	rng   *core.RNG
}

// New allocates a quiet field of at least 3x3 samples.
func New(cfg Config) *Wave {
	if cfg.Workers < 1 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	cfg.Width, cfg.Height = max(cfg.Width, 3), max(cfg.Height, 3)
	n := cfg.Width * cfg.Height
	w := &Wave{cfg: cfg, prev: make([]float64, n), curr: make([]float64, n), next: make([]float64, n)}
	w.Reset(1)
	return w
}

// Name identifies the source.
func (w *Wave) Name() string { return "wave" }

// Size returns the field dimensions.
func (w *Wave) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Field exposes the current displacement.
func (w *Wave) Field() []float64 { return w.curr }

// Reset clears the field and reseeds impulse placement.
func (w *Wave) Reset(seed int64) {
	clear(w.prev)
	clear(w.curr)
	clear(w.next)
	w.steps = 0
	w.rng = core.NewRNG(seed)
}

// Impulse displaces the cell at (x, y), row 0 being the bottom.
func (w *Wave) Impulse(x, y int, strength float64) {
	if x <= 0 || y <= 0 || x >= w.cfg.Width-1 || y >= w.cfg.Height-1 {
		return
	}
	w.curr[y*w.cfg.Width+x] += strength
}

// Step advances the field by one time step.
func (w *Wave) Step() {
	if w.cfg.ImpulseEvery > 0 && w.steps%w.cfg.ImpulseEvery == 0 {
		x := 1 + w.rng.IntN(w.cfg.Width-2)
		y := 1 + w.rng.IntN(w.cfg.Height-2)
		w.Impulse(x, y, w.cfg.Strength)
	}
	w.steps++

	h := w.cfg.Height
	bands := min(w.cfg.Workers, h-2)
	per := (h - 2 + bands - 1) / bands
	var g errgroup.Group
	for y0 := 1; y0 < h-1; y0 += per {
		y1 := min(y0+per, h-1)
		g.Go(func() error {
			w.stepRows(y0, y1)
			return nil
		})
	}
	_ = g.Wait()

	w.reflectEdges()
	w.prev, w.curr, w.next = w.curr, w.next, w.prev
}

// stepRows computes next for interior rows [y0, y1).
func (w *Wave) stepRows(y0, y1 int) {
	width := w.cfg.Width
	speed, damp := w.cfg.Speed, w.cfg.Damp
	for y := y0; y < y1; y++ {
		row := y * width
		center := w.curr[row : row+width]
		below := w.curr[row-width : row]
		above := w.curr[row+width : row+2*width]
		prev := w.prev[row : row+width]
		next := w.next[row : row+width]
		for x := 1; x < width-1; x++ {
			c := center[x]
			lap := center[x-1] + center[x+1] + below[x] + above[x] - 4*c
			next[x] = ((2*c - prev[x]) + speed*lap) * damp
		}
	}
}

// reflectEdges mirrors the first interior ring onto the border with an
// inverted, attenuated sign.
func (w *Wave) reflectEdges() {
	width, h := w.cfg.Width, w.cfg.Height
	last := h - 1
	r := w.cfg.Reflect
	for x := 0; x < width; x++ {
		w.next[x] = -w.next[width+x] * r
		w.next[last*width+x] = -w.next[(last-1)*width+x] * r
	}
	for y := 1; y < last; y++ {
		w.next[y*width] = -w.next[y*width+1] * r
		w.next[y*width+width-1] = -w.next[y*width+width-2] * r
	}
}

func init() {
	core.Register("wave", func(cfg map[string]string) core.Source {
		return New(FromMap(cfg))
	})
}
