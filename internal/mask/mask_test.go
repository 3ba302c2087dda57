package mask

import (
	"image"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func solidRect(w, h int, rect image.Rectangle, alpha uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			img.Pix[img.PixOffset(x, y)+3] = alpha
		}
	}
	return img
}

func TestInsideOutOfBounds(t *testing.T) {
	m := New(solidRect(4, 4, image.Rect(0, 0, 4, 4), 255))
	if m.Inside(-1, 0, 1) || m.Inside(0, -1, 1) || m.Inside(4, 0, 1) || m.Inside(0, 4, 1) {
		t.Fatal("out-of-bounds pixels must be outside")
	}
	if !m.Inside(0, 0, 255) {
		t.Fatal("opaque pixel not inside")
	}
}

func TestInsideNormMapsToPixels(t *testing.T) {
	// Opaque left half only.
	m := New(solidRect(10, 10, image.Rect(0, 0, 5, 10), 255))
	if !m.InsideNorm(r2.Vec{X: 0.25, Y: 0.5}, 128) {
		t.Fatal("left-half point not inside")
	}
	if m.InsideNorm(r2.Vec{X: 0.75, Y: 0.5}, 128) {
		t.Fatal("right-half point inside")
	}
	// Coordinates at exactly 1.0 clamp to the last pixel instead of
	// falling off the edge.
	if m.InsideNorm(r2.Vec{X: 1.0, Y: 1.0}, 128) {
		t.Fatal("bottom-right corner of transparent half inside")
	}
}

func TestRemoveSmallIslandsKeepsLargest(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	// Large blob
	for y := 4; y < 24; y++ {
		for x := 4; x < 24; x++ {
			img.Pix[img.PixOffset(x, y)+3] = 255
		}
	}
	// Stray 2×2 island far away
	for y := 28; y < 30; y++ {
		for x := 28; x < 30; x++ {
			img.Pix[img.PixOffset(x, y)+3] = 255
		}
	}

	out := RemoveSmallIslands(img, 0.05)
	if out.Pix[out.PixOffset(29, 29)+3] != 0 {
		t.Error("small island survived")
	}
	if out.Pix[out.PixOffset(10, 10)+3] != 255 {
		t.Error("large component was removed")
	}
}

func TestRemoveSmallIslandsSingleComponent(t *testing.T) {
	img := solidRect(16, 16, image.Rect(2, 2, 14, 14), 255)
	out := RemoveSmallIslands(img, 0.5)
	if out.Pix[out.PixOffset(8, 8)+3] != 255 {
		t.Fatal("sole component must always survive")
	}
}

func TestRemoveSmallIslandsEmpty(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	if out := RemoveSmallIslands(img, 0.1); out == nil {
		t.Fatal("nil result for empty image")
	}
}
