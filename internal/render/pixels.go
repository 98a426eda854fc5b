package render

import (
	"image/color"

	"fieldplot/internal/core"
)

// packRGBA writes src into buf as tightly packed RGBA8 bytes. buf must hold
// at least 4*len(src) bytes.
func packRGBA(buf []byte, src []color.RGBA) {
	for i, c := range src {
		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}

// growBytes returns buf resliced to n bytes, reallocating only when its
// capacity is too small.
func growBytes(buf []byte, n int) []byte {
	if cap(buf) < n {
		return make([]byte, n)
	}
	return buf[:n]
}

// ndcToPixel converts normalized device coordinates ([-1, 1], +Y up) into
// pixel coordinates of a w x h target (origin top-left, +Y down).
func ndcToPixel(x, y, w, h float64) (px, py float64) {
	return (x + 1) / 2 * w, (1 - y) / 2 * h
}

// quadVertex pairs a target pixel position with a source texel position.
type quadVertex struct {
	dstX, dstY float64
	srcX, srcY float64
}

// quadCorners returns the corners of r counter-clockwise from the bottom-left,
// placed on a targetW x targetH image. Source (0,0) goes to the bottom-left
// corner and (srcW,srcH) to the top-right, so the first texture row lies on
// the bottom edge of r.
func quadCorners(r core.Rect, targetW, targetH, srcW, srcH float64) [4]quadVertex {
	ndc := [4][2]float64{{r.X0, r.Y0}, {r.X1, r.Y0}, {r.X1, r.Y1}, {r.X0, r.Y1}}
	src := [4][2]float64{{0, 0}, {srcW, 0}, {srcW, srcH}, {0, srcH}}
	var q [4]quadVertex
	for i := range q {
		px, py := ndcToPixel(ndc[i][0], ndc[i][1], targetW, targetH)
		q[i] = quadVertex{dstX: px, dstY: py, srcX: src[i][0], srcY: src[i][1]}
	}
	return q
}
