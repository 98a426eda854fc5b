//go:build ebiten

package app

import (
	"fmt"

	"fieldplot/internal/colormap"
	"fieldplot/internal/core"
	"fieldplot/internal/render"
	"fieldplot/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// maxCatchUp bounds the source steps taken in one tick after a stall.
const maxCatchUp = 8

// Game adapts a Plotter to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	backend *render.EbitenBackend
	comp    *render.Compositor
	plotter *Plotter
	overlay *ui.Overlay
	clock   *core.FixedStep
	log     *zap.Logger

	paused bool
	seed   int64
	err    error
}

// New constructs a Game from a validated Config.
func New(cfg *Config, log *zap.Logger) (*Game, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cmap, err := colormap.ByName(cfg.ColorMap, cfg.Scale)
	if err != nil {
		return nil, err
	}
	filter := ebiten.FilterNearest
	if cfg.Filter == "linear" {
		filter = ebiten.FilterLinear
	}

	names := cfg.SourceList()
	rows, cols := cfg.Grid(len(names))
	backend := render.NewEbitenBackend(filter, log.Named("backend"))
	comp, err := render.NewCompositor(backend, rows, cols,
		render.WithLogger(log.Named("compositor")),
		render.WithWorkers(cfg.Workers))
	if err != nil {
		return nil, err
	}
	plotter, err := NewPlotter(comp, names, cmap, cfg.Seed, log)
	if err != nil {
		return nil, err
	}
	log.Info("grid ready", zap.Int("rows", rows), zap.Int("cols", cols), zap.String("cmap", cfg.ColorMap))

	var overlay *ui.Overlay
	if cfg.Debug {
		overlay = ui.NewOverlay()
	}
	return &Game{
		cfg:     cfg,
		backend: backend,
		comp:    comp,
		plotter: plotter,
		overlay: overlay,
		clock:   core.NewFixedStep(cfg.Steps),
		log:     log,
		seed:    cfg.Seed,
	}, nil
}

// Reset reinitializes every source with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.plotter.Reset(seed)
}

// Update handles input and advances the sources. A draw error from the
// previous frame ends the game.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.paused {
		g.plotter.Step(1)
	}

	n := g.clock.Due(maxCatchUp)
	if !g.paused {
		g.plotter.Step(n)
	}
	return nil
}

// Draw renders one full pass over the grid.
func (g *Game) Draw(screen *ebiten.Image) {
	g.backend.SetTarget(screen)
	defer g.backend.SetTarget(nil)

	if err := g.plotter.DrawFrame(); err != nil {
		g.log.Error("draw frame", zap.Error(err))
		g.err = fmt.Errorf("draw frame: %w", err)
		return
	}
	if g.overlay != nil {
		layout := g.comp.Layout()
		g.overlay.Draw(screen, ui.Status{
			Title:  g.cfg.Sources,
			Rows:   layout.Rows(),
			Cols:   layout.Cols(),
			Paused: g.paused,
			TPS:    ebiten.ActualTPS(),
			FPS:    ebiten.ActualFPS(),
			CMap:   g.cfg.ColorMap,
			Scale:  g.cfg.Scale,
		})
	}
}

// Layout maps the screen to the whole window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Close releases GPU resources.
func (g *Game) Close() error {
	return g.backend.Close()
}
