package render

import (
	"errors"
	"image/color"
	"math"
	"math/bits"
	"testing"

	"fieldplot/internal/core"
)

type uploadCall struct {
	pix           []color.RGBA
	width, height int
}

type flatCall struct {
	rect core.Rect
	c    color.RGBA
}

// recordingBackend captures every call the compositor makes.
type recordingBackend struct {
	uploads   []uploadCall
	textured  []core.Rect
	flat      []flatCall
	uploadErr error
	drawErr   error
}

func (r *recordingBackend) UploadTexture(pix []color.RGBA, width, height int) error {
	if r.uploadErr != nil {
		return r.uploadErr
	}
	r.uploads = append(r.uploads, uploadCall{pix: append([]color.RGBA(nil), pix...), width: width, height: height})
	return nil
}

func (r *recordingBackend) DrawTexturedQuad(rect core.Rect) error {
	if r.drawErr != nil {
		return r.drawErr
	}
	r.textured = append(r.textured, rect)
	return nil
}

func (r *recordingBackend) DrawFlatQuad(rect core.Rect, c color.RGBA) error {
	if r.drawErr != nil {
		return r.drawErr
	}
	r.flat = append(r.flat, flatCall{rect: rect, c: c})
	return nil
}

var black = color.RGBA{A: 255}

var zeroMap = ColorMapFunc(func(v float64) color.RGBA {
	if v == 0 {
		return black
	}
	return color.RGBA{R: 255, A: 255}
})

func sameRect(a, b core.Rect) bool {
	const eps = 1e-12
	return math.Abs(a.X0-b.X0) < eps && math.Abs(a.X1-b.X1) < eps &&
		math.Abs(a.Y0-b.Y0) < eps && math.Abs(a.Y1-b.Y1) < eps
}

func newTestCompositor(t *testing.T, rows, cols int) (*Compositor, *recordingBackend) {
	t.Helper()
	be := &recordingBackend{}
	c, err := NewCompositor(be, rows, cols, WithWorkers(1))
	if err != nil {
		t.Fatalf("NewCompositor: %v", err)
	}
	return c, be
}

func TestNewCompositorRejectsNilBackend(t *testing.T) {
	if _, err := NewCompositor(nil, 1, 1); !errors.Is(err, ErrBackendUnavailable) {
		t.Fatalf("err = %v, want ErrBackendUnavailable", err)
	}
	if _, err := NewCompositor(&recordingBackend{}, 0, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestTwoByTwoScenario(t *testing.T) {
	c, be := newTestCompositor(t, 1, 1)
	if err := c.SetMultiplot(2, 2); err != nil {
		t.Fatal(err)
	}
	field := make([]float64, 9)
	grid, _ := core.NewLayout(2, 2)

	for i := 0; i < 4; i++ {
		if c.Cursor() != i {
			t.Fatalf("before draw %d cursor = %d", i, c.Cursor())
		}
		if err := c.DrawField(field, 3, 3, zeroMap); err != nil {
			t.Fatalf("DrawField %d: %v", i, err)
		}
		if want := grid.CellRect(i); !sameRect(be.textured[i], want) {
			t.Fatalf("draw %d rect = %+v, want %+v", i, be.textured[i], want)
		}
	}
	if c.Cursor() != 0 {
		t.Fatalf("cursor after four draws = %d, want 0", c.Cursor())
	}
	if err := c.DrawField(field, 3, 3, zeroMap); err != nil {
		t.Fatal(err)
	}
	if !sameRect(be.textured[4], grid.CellRect(0)) || c.Cursor() != 1 {
		t.Fatalf("fifth draw did not wrap to cell 0")
	}

	for i, up := range be.uploads {
		if up.width != 3 || up.height != 3 || len(up.pix) != 9 {
			t.Fatalf("upload %d = %dx%d/%d", i, up.width, up.height, len(up.pix))
		}
		for _, p := range up.pix {
			if p != black {
				t.Fatalf("upload %d pixel = %v, want black", i, p)
			}
		}
	}
}

func TestQuadrantLayoutWithSlit(t *testing.T) {
	c, be := newTestCompositor(t, 2, 2)
	field := make([]float64, 4)
	for i := 0; i < 4; i++ {
		_ = c.DrawField(field, 2, 2, zeroMap)
	}
	s := core.Slit
	want := []core.Rect{
		{X0: -1 + s, X1: -s, Y0: s, Y1: 1 - s},
		{X0: s, X1: 1 - s, Y0: s, Y1: 1 - s},
		{X0: -1 + s, X1: -s, Y0: -1 + s, Y1: -s},
		{X0: s, X1: 1 - s, Y0: -1 + s, Y1: -s},
	}
	for i := range want {
		if !sameRect(be.textured[i], want[i]) {
			t.Errorf("quadrant %d = %+v, want %+v", i, be.textured[i], want[i])
		}
	}
}

func TestShortSamplesLeaveStateUntouched(t *testing.T) {
	c, be := newTestCompositor(t, 2, 2)
	if err := c.DrawField(ramp(4), 2, 2, byteMap); err != nil {
		t.Fatal(err)
	}
	before := append([]color.RGBA(nil), c.Buffer().Pixels()...)

	err := c.DrawField(ramp(5), 3, 2, byteMap)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
	if c.Cursor() != 1 {
		t.Fatalf("cursor = %d, want 1", c.Cursor())
	}
	if len(be.uploads) != 1 || len(be.textured) != 1 {
		t.Fatalf("backend called after rejected draw: %d uploads, %d quads", len(be.uploads), len(be.textured))
	}
	if w, h := c.Buffer().Size(); w != 2 || h != 2 {
		t.Fatalf("buffer size = %dx%d, want 2x2", w, h)
	}
	for i, p := range c.Buffer().Pixels() {
		if p != before[i] {
			t.Fatalf("pixel %d changed after rejected draw", i)
		}
	}
}

func TestOversizedFieldIsRejected(t *testing.T) {
	c, be := newTestCompositor(t, 2, 2)
	const side = 1 << (bits.UintSize / 2)
	err := c.DrawField(nil, side, side, byteMap)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
	if c.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", c.Cursor())
	}
	if len(be.uploads) != 0 {
		t.Fatalf("%d uploads for a rejected field", len(be.uploads))
	}
	if w, h := c.Buffer().Size(); w != 0 || h != 0 {
		t.Fatalf("buffer size = %dx%d, want 0x0", w, h)
	}
}

func TestBackendFailureDoesNotAdvance(t *testing.T) {
	c, be := newTestCompositor(t, 1, 3)
	be.uploadErr = ErrBackendUnavailable
	if err := c.DrawField(ramp(4), 2, 2, byteMap); !errors.Is(err, ErrBackendUnavailable) {
		t.Fatalf("err = %v, want ErrBackendUnavailable", err)
	}
	if c.Cursor() != 0 {
		t.Fatalf("cursor = %d after failed upload", c.Cursor())
	}
	if w, h := c.Buffer().Size(); w != 2 || h != 2 || c.Buffer().Pixels()[3] != byteMap(3) {
		t.Fatalf("buffer %dx%d does not hold the attempted field", w, h)
	}

	be.uploadErr = nil
	be.drawErr = errors.New("lost context")
	if err := c.DrawField(ramp(4), 2, 2, byteMap); err == nil {
		t.Fatal("expected draw error")
	}
	if err := c.DrawEmptyCell(); err == nil {
		t.Fatal("expected fill error")
	}
	if c.Cursor() != 0 {
		t.Fatalf("cursor = %d after failed draws", c.Cursor())
	}
}

func TestEmptyCellSingleCell(t *testing.T) {
	bg := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	be := &recordingBackend{}
	c, err := NewCompositor(be, 1, 1, WithBackground(bg))
	if err != nil {
		t.Fatal(err)
	}
	if err := c.DrawEmptyCell(); err != nil {
		t.Fatalf("DrawEmptyCell: %v", err)
	}
	if c.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", c.Cursor())
	}
	if len(be.flat) != 1 || len(be.uploads) != 0 || len(be.textured) != 0 {
		t.Fatalf("calls: %d flat, %d uploads, %d textured", len(be.flat), len(be.uploads), len(be.textured))
	}
	s := core.Slit
	if want := (core.Rect{X0: -1 + s, X1: 1 - s, Y0: -1 + s, Y1: 1 - s}); !sameRect(be.flat[0].rect, want) {
		t.Fatalf("rect = %+v, want %+v", be.flat[0].rect, want)
	}
	if be.flat[0].c != bg {
		t.Fatalf("color = %v, want %v", be.flat[0].c, bg)
	}
	if w, h := c.Buffer().Size(); w != 0 || h != 0 || c.Buffer().Pixels() != nil {
		t.Fatal("empty cell touched the color buffer")
	}
}

func TestMixedDrawsWrap(t *testing.T) {
	c, _ := newTestCompositor(t, 1, 3)
	_ = c.DrawField(ramp(4), 2, 2, byteMap)
	_ = c.DrawEmptyCell()
	_ = c.DrawField(ramp(4), 2, 2, byteMap)
	if c.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", c.Cursor())
	}
	l := c.Layout()
	if l.Rows() != 1 || l.Cols() != 3 {
		t.Fatalf("layout = %dx%d", l.Rows(), l.Cols())
	}
}
