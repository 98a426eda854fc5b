package app

import (
	"fmt"

	"fieldplot/internal/core"
	"fieldplot/internal/render"

	"go.uber.org/zap"
)

// Plotter draws a fixed list of sources into consecutive cells of a
// compositor, one frame at a time.
type Plotter struct {
	comp    *render.Compositor
	sources []core.Source
	cmap    render.ColorMap
	log     *zap.Logger
}

// NewPlotter builds the named sources and resets them with seed.
func NewPlotter(comp *render.Compositor, names []string, cmap render.ColorMap, seed int64, log *zap.Logger) (*Plotter, error) {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Plotter{comp: comp, cmap: cmap, log: log}
	for _, name := range names {
		factory, ok := core.Sources()[name]
		if !ok {
			return nil, fmt.Errorf("unknown source %q", name)
		}
		src := factory(nil)
		src.Reset(seed)
		size := src.Size()
		if n := len(src.Field()); n < size.Len() {
			return nil, fmt.Errorf("source %q: field has %d samples, size %dx%d needs %d", name, n, size.W, size.H, size.Len())
		}
		log.Info("source ready", zap.String("name", src.Name()), zap.Int("width", size.W), zap.Int("height", size.H))
		p.sources = append(p.sources, src)
	}
	return p, nil
}

// Sources returns the sources in draw order.
func (p *Plotter) Sources() []core.Source { return p.sources }

// Reset reseeds every source.
func (p *Plotter) Reset(seed int64) {
	for _, src := range p.sources {
		src.Reset(seed)
	}
}

// Step advances every source n times.
func (p *Plotter) Step(n int) {
	for i := 0; i < n; i++ {
		for _, src := range p.sources {
			src.Step()
		}
	}
}

// DrawFrame draws each source into the next cell and fills whatever is left
// of the grid with empty cells, so every frame starts at cell 0.
func (p *Plotter) DrawFrame() error {
	for _, src := range p.sources {
		size := src.Size()
		if err := p.comp.DrawField(src.Field(), size.W, size.H, p.cmap); err != nil {
			return fmt.Errorf("draw %s: %w", src.Name(), err)
		}
	}
	for p.comp.Cursor() != 0 {
		if err := p.comp.DrawEmptyCell(); err != nil {
			return err
		}
	}
	return nil
}
