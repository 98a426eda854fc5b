package render

import (
	"fmt"
	"image/color"
	"math"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ParallelThreshold is the field size, in samples, from which Populate maps
// horizontal bands of the field concurrently.
const ParallelThreshold = 64 * 1024

// MaxPixels is the largest field Populate accepts. Backends pack four bytes
// per pixel, so anything larger cannot be addressed once packed.
const MaxPixels = math.MaxInt / 4

// ColorBuffer owns the CPU-side pixels handed to the backend as a texture.
// Its storage is reallocated only when the field dimensions change.
type ColorBuffer struct {
	width, height int
	pixels        []color.RGBA

	workers int
	log     *zap.Logger
}

// NewColorBuffer returns an empty 0x0 buffer. workers bounds the number of
// goroutines used for large fields; values below 1 use GOMAXPROCS.
func NewColorBuffer(workers int, log *zap.Logger) *ColorBuffer {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ColorBuffer{workers: workers, log: log}
}

// Size returns the dimensions of the last populated field.
func (b *ColorBuffer) Size() (width, height int) { return b.width, b.height }

// Pixels returns the buffer contents in row-major order, element 0 being
// the bottom-left of the field. The slice is owned by the buffer.
func (b *ColorBuffer) Pixels() []color.RGBA { return b.pixels }

// Populate maps the first width*height samples through m into the buffer.
// On error the buffer is left untouched.
func (b *ColorBuffer) Populate(samples []float64, width, height int, m ColorMap) error {
	if m == nil {
		return fmt.Errorf("populate: nil color map: %w", ErrInvalidArgument)
	}
	if width < 0 || height < 0 {
		return fmt.Errorf("populate: negative size %dx%d: %w", width, height, ErrInvalidArgument)
	}
	if width > 0 && height > MaxPixels/width {
		return fmt.Errorf("populate: size %dx%d too large: %w", width, height, ErrInvalidArgument)
	}
	n := width * height
	if len(samples) < n {
		return fmt.Errorf("populate %dx%d: got %d samples, need %d: %w",
			width, height, len(samples), n, ErrInvalidArgument)
	}

	if width != b.width || height != b.height {
		b.log.Debug("allocating color buffer",
			zap.Int("width", width),
			zap.Int("height", height),
			zap.Int("prevWidth", b.width),
			zap.Int("prevHeight", b.height))
		b.width, b.height = width, height
		b.pixels = make([]color.RGBA, n)
	}

	b.mapSamples(samples[:n], m)
	return nil
}

func (b *ColorBuffer) mapSamples(samples []float64, m ColorMap) {
	if len(samples) < ParallelThreshold || b.workers < 2 || b.height < 2 {
		mapRange(b.pixels, samples, m)
		return
	}

	bands := b.workers
	if bands > b.height {
		bands = b.height
	}
	rowsPerBand := (b.height + bands - 1) / bands

	var g errgroup.Group
	g.SetLimit(b.workers)
	for row := 0; row < b.height; row += rowsPerBand {
		start := row * b.width
		end := min(row+rowsPerBand, b.height) * b.width
		g.Go(func() error {
			mapRange(b.pixels[start:end], samples[start:end], m)
			return nil
		})
	}
	_ = g.Wait()
}

func mapRange(dst []color.RGBA, src []float64, m ColorMap) {
	for i, v := range src {
		dst[i] = m.Map(v)
	}
}
