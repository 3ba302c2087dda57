package mask

import (
	"image"

	"gonum.org/v1/gonum/spatial/r2"
)

// Mask gives threshold queries over an image's alpha channel. Coordinates
// normalized to [0,1]² map to pixel centers, matching the contour extractor's
// (x+0.5)/w convention.
type Mask struct {
	img *image.NRGBA
	w   int
	h   int
}

// New wraps an NRGBA image. The image must have a zero-origin bounds
// rectangle (all decoders in internal/store guarantee this).
func New(img *image.NRGBA) *Mask {
	b := img.Bounds()
	return &Mask{img: img, w: b.Dx(), h: b.Dy()}
}

// Size returns the pixel dimensions.
func (m *Mask) Size() (w, h int) {
	return m.w, m.h
}

// Alpha returns the alpha value at the pixel, or 0 out of bounds.
func (m *Mask) Alpha(x, y int) uint8 {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return 0
	}
	return m.img.Pix[y*m.img.Stride+x*4+3]
}

// Inside reports whether the pixel's alpha meets the threshold. Out-of-bounds
// pixels are outside.
func (m *Mask) Inside(x, y int, threshold uint8) bool {
	return m.Alpha(x, y) >= threshold
}

// InsideNorm tests a normalized-coordinate point against the threshold.
func (m *Mask) InsideNorm(p r2.Vec, threshold uint8) bool {
	x := int(p.X * float64(m.w))
	y := int(p.Y * float64(m.h))
	if x >= m.w {
		x = m.w - 1
	}
	if y >= m.h {
		y = m.h - 1
	}
	return m.Inside(x, y, threshold)
}
