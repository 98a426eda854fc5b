//go:build ebiten

package render

import (
	"fmt"
	"image/color"

	"fieldplot/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

// EbitenBackend submits compositor work to an ebiten image, normally the
// screen passed to Game.Draw. It keeps a single texture and reallocates it
// only when the field size changes.
type EbitenBackend struct {
	target *ebiten.Image

	tex        *ebiten.Image
	texW, texH int
	pixBuf     []byte
	white      *ebiten.Image
	filter     ebiten.Filter
	verts      [4]ebiten.Vertex
	log        *zap.Logger
}

// NewEbitenBackend returns a backend with no target. Call SetTarget before
// each frame's draw calls.
func NewEbitenBackend(filter ebiten.Filter, log *zap.Logger) *EbitenBackend {
	if log == nil {
		log = zap.NewNop()
	}
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &EbitenBackend{white: white, filter: filter, log: log}
}

// SetTarget sets the image draw calls render into. nil detaches the backend.
func (b *EbitenBackend) SetTarget(dst *ebiten.Image) { b.target = dst }

// UploadTexture replaces the texture contents with pix.
func (b *EbitenBackend) UploadTexture(pix []color.RGBA, width, height int) error {
	if b.target == nil {
		return ErrBackendUnavailable
	}
	if len(pix) < width*height {
		return fmt.Errorf("texture %dx%d from %d pixels: %w", width, height, len(pix), ErrInvalidArgument)
	}
	if width != b.texW || height != b.texH {
		if b.tex != nil {
			b.tex.Dispose()
			b.tex = nil
		}
		b.texW, b.texH = width, height
		if width > 0 && height > 0 {
			b.tex = ebiten.NewImage(width, height)
		}
		b.log.Debug("allocating texture", zap.Int("width", width), zap.Int("height", height))
	}
	if b.tex == nil {
		return nil
	}
	b.pixBuf = growBytes(b.pixBuf, 4*width*height)
	packRGBA(b.pixBuf, pix[:width*height])
	b.tex.WritePixels(b.pixBuf)
	return nil
}

// DrawTexturedQuad draws the texture over r. The first texture row lands on
// the bottom edge of r.
func (b *EbitenBackend) DrawTexturedQuad(r core.Rect) error {
	if b.target == nil {
		return ErrBackendUnavailable
	}
	if b.tex == nil {
		return nil
	}
	b.setQuad(r, float64(b.texW), float64(b.texH), color.RGBA{R: 255, G: 255, B: 255, A: 255})
	op := &ebiten.DrawTrianglesOptions{Filter: b.filter}
	b.target.DrawTriangles(b.verts[:], quadIndices, b.tex, op)
	return nil
}

// DrawFlatQuad fills r with c.
func (b *EbitenBackend) DrawFlatQuad(r core.Rect, c color.RGBA) error {
	if b.target == nil {
		return ErrBackendUnavailable
	}
	b.setQuad(r, 1, 1, c)
	b.target.DrawTriangles(b.verts[:], quadIndices, b.white, &ebiten.DrawTrianglesOptions{})
	return nil
}

// Close releases the texture. The backend must not be used afterwards.
func (b *EbitenBackend) Close() error {
	if b.tex != nil {
		b.tex.Dispose()
		b.tex = nil
	}
	b.white.Dispose()
	b.target = nil
	return nil
}

// setQuad fills the vertex array from quadCorners, tinted with c.
func (b *EbitenBackend) setQuad(r core.Rect, srcW, srcH float64, c color.RGBA) {
	bounds := b.target.Bounds()
	corners := quadCorners(r, float64(bounds.Dx()), float64(bounds.Dy()), srcW, srcH)
	cr, cg, cb, ca := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	for i, q := range corners {
		b.verts[i] = ebiten.Vertex{
			DstX:   float32(q.dstX) + float32(bounds.Min.X),
			DstY:   float32(q.dstY) + float32(bounds.Min.Y),
			SrcX:   float32(q.srcX),
			SrcY:   float32(q.srcY),
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}
}
