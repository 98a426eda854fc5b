package render

import (
	"errors"
	"image/color"

	"fieldplot/internal/core"
)

var (
	// ErrInvalidArgument reports a caller contract violation.
	ErrInvalidArgument = core.ErrInvalidArgument
	// ErrBackendUnavailable reports that no graphics context is ready to
	// receive draw calls.
	ErrBackendUnavailable = errors.New("render backend unavailable")
)

// Backend is the graphics context the compositor submits work to.
type Backend interface {
	// UploadTexture replaces the current texture with width x height
	// row-major pixels. Row 0 is the bottom of the image.
	UploadTexture(pix []color.RGBA, width, height int) error
	// DrawTexturedQuad draws the current texture over r, mapping texture
	// coordinates (0,0)-(1,1) onto (X0,Y0)-(X1,Y1).
	DrawTexturedQuad(r core.Rect) error
	// DrawFlatQuad fills r with a single color.
	DrawFlatQuad(r core.Rect, c color.RGBA) error
}
