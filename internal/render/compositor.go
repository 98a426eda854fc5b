package render

import (
	"fmt"
	"image/color"

	"fieldplot/internal/core"

	"go.uber.org/zap"
)

// DefaultBackground is the flat color used for empty cells.
var DefaultBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}

type options struct {
	log        *zap.Logger
	background color.RGBA
	workers    int
}

// Option configures a Compositor.
type Option func(*options)

// WithLogger sets the logger used for resource lifecycle events.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithBackground sets the color DrawEmptyCell fills with.
func WithBackground(c color.RGBA) Option {
	return func(o *options) { o.background = c }
}

// WithWorkers bounds the goroutines used to color map large fields.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// Compositor draws scalar fields into the cells of a tiled grid, one cell
// per call, moving left to right and top to bottom and wrapping around after
// the last cell. A Compositor is not safe for concurrent use.
type Compositor struct {
	backend    Backend
	layout     *core.Layout
	buf        *ColorBuffer
	background color.RGBA
	log        *zap.Logger
}

// NewCompositor returns a compositor drawing into a rows x cols grid.
func NewCompositor(b Backend, rows, cols int, opts ...Option) (*Compositor, error) {
	if b == nil {
		return nil, ErrBackendUnavailable
	}
	o := options{log: zap.NewNop(), background: DefaultBackground}
	for _, opt := range opts {
		opt(&o)
	}
	layout, err := core.NewLayout(rows, cols)
	if err != nil {
		return nil, err
	}
	return &Compositor{
		backend:    b,
		layout:     layout,
		buf:        NewColorBuffer(o.workers, o.log),
		background: o.background,
		log:        o.log,
	}, nil
}

// SetMultiplot changes the grid to rows x cols and moves the cursor back to
// the top-left cell.
func (c *Compositor) SetMultiplot(rows, cols int) error {
	if err := c.layout.SetMultiplot(rows, cols); err != nil {
		return err
	}
	c.log.Debug("multiplot", zap.Int("rows", rows), zap.Int("cols", cols))
	return nil
}

// DrawField color maps width*height samples, draws them into the active cell
// and advances the cursor. samples[0] is the bottom-left of the field. The
// cursor only moves when the backend accepted both the texture and the quad.
// After a backend error the buffer already holds the new field while the
// cursor still points at the cell that failed; retrying redraws that cell.
func (c *Compositor) DrawField(samples []float64, width, height int, m ColorMap) error {
	if err := c.buf.Populate(samples, width, height, m); err != nil {
		return err
	}
	rect := c.layout.ActiveCellRect()
	if err := c.backend.UploadTexture(c.buf.Pixels(), width, height); err != nil {
		return fmt.Errorf("upload %dx%d texture: %w", width, height, err)
	}
	if err := c.backend.DrawTexturedQuad(rect); err != nil {
		return fmt.Errorf("draw cell %d: %w", c.layout.Cursor(), err)
	}
	c.layout.Advance()
	return nil
}

// DrawEmptyCell fills the active cell with the background color and advances
// the cursor. The color buffer is not touched.
func (c *Compositor) DrawEmptyCell() error {
	rect := c.layout.ActiveCellRect()
	if err := c.backend.DrawFlatQuad(rect, c.background); err != nil {
		return fmt.Errorf("fill cell %d: %w", c.layout.Cursor(), err)
	}
	c.layout.Advance()
	return nil
}

// Cursor returns the index of the cell the next draw targets.
func (c *Compositor) Cursor() int { return c.layout.Cursor() }

// Layout returns a copy of the current grid state.
func (c *Compositor) Layout() core.Layout { return *c.layout }

// Buffer exposes the color buffer backing the last texture upload.
func (c *Compositor) Buffer() *ColorBuffer { return c.buf }
