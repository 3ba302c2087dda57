package render

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r2"

	"contour-rig/internal/mesh"
	"contour-rig/internal/skeleton"
)

// Options controls a composite pass.
type Options struct {
	// CanvasWidth/Height default to the source image size.
	CanvasWidth  int
	CanvasHeight int
	// Supersample renders at an integer multiple and downsamples, hiding
	// stair-stepping on triangle edges. Default 1.
	Supersample int
	// SeamInflate grows each destination triangle outward from its centroid
	// by this many pixels so adjacent triangles overlap instead of leaving
	// hairline gaps. Default 1.
	SeamInflate float64
}

func (o Options) withDefaults(src *image.NRGBA) Options {
	if o.CanvasWidth <= 0 {
		o.CanvasWidth = src.Rect.Dx()
	}
	if o.CanvasHeight <= 0 {
		o.CanvasHeight = src.Rect.Dy()
	}
	if o.Supersample <= 0 {
		o.Supersample = 1
	}
	if o.SeamInflate <= 0 {
		o.SeamInflate = 1
	}
	return o
}

// Composite deforms the mesh from bind to current pose and redraws the
// source image triangle by triangle: each bind-space triangle in image pixel
// space maps through its affine transform onto the deformed canvas-space
// triangle. Triangles with colinear bind or destination points are skipped;
// they cannot produce a valid transform and must not corrupt the frame.
func Composite(m *mesh.ContourMesh, bind, current skeleton.Pose, src *image.NRGBA, opts Options) *image.NRGBA {
	opts = opts.withDefaults(src)
	ss := opts.Supersample
	rw := opts.CanvasWidth * ss
	rh := opts.CanvasHeight * ss

	deformed := DeformVertices(m, bind, current)
	idx := m.VertexIndex()
	dst := image.NewNRGBA(image.Rect(0, 0, rw, rh))

	srcW := float64(src.Rect.Dx())
	srcH := float64(src.Rect.Dy())
	fw := float64(rw)
	fh := float64(rh)

	for _, tri := range m.Triangles {
		var srcTri, dstTri [3]r2.Vec
		ok := true
		for i, id := range tri {
			vi, found := idx[id]
			if !found {
				ok = false
				break
			}
			p := m.Vertices[vi].Position
			srcTri[i] = r2.Vec{X: p.X * srcW, Y: p.Y * srcH}
			d := deformed[vi]
			dstTri[i] = r2.Vec{X: d.X * fw, Y: d.Y * fh}
		}
		if !ok {
			continue
		}

		// Bind-space colinearity makes the forward transform singular.
		if _, err := affineFromTriangle(srcTri, dstTri); err != nil {
			continue
		}
		// Sampling runs through the inverse, destination to source.
		inv, err := affineFromTriangle(dstTri, srcTri)
		if err != nil {
			continue
		}

		drawTriangle(dst, src, inflate(dstTri, opts.SeamInflate*float64(ss)), inv)
	}

	if ss > 1 {
		return Downsample(dst, opts.CanvasWidth, opts.CanvasHeight)
	}
	return dst
}

// inflate pushes each triangle corner away from the centroid by dist pixels.
func inflate(tri [3]r2.Vec, dist float64) [3]r2.Vec {
	c := r2.Scale(1.0/3.0, r2.Add(r2.Add(tri[0], tri[1]), tri[2]))
	var out [3]r2.Vec
	for i, p := range tri {
		d := r2.Sub(p, c)
		n := r2.Norm(d)
		if n < 1e-9 {
			out[i] = p
			continue
		}
		out[i] = r2.Add(p, r2.Scale(dist/n, d))
	}
	return out
}

// drawTriangle rasterizes the destination triangle, sampling the source
// through the inverse affine transform and alpha-compositing over dst.
// Barycentric scanline loop: bounding box, edge deltas, small negative slack
// on the inside test.
func drawTriangle(dst *image.NRGBA, src *image.NRGBA, tri [3]r2.Vec, inv mgl64.Mat3) {
	w := dst.Rect.Dx()
	h := dst.Rect.Dy()

	x0, y0 := tri[0].X, tri[0].Y
	x1, y1 := tri[1].X, tri[1].Y
	x2, y2 := tri[2].X, tri[2].Y

	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX > w-1 {
		maxX = w - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY > h-1 {
		maxY = h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-9 && det < 1e-9 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	stride := dst.Stride
	for sy := minY; sy <= maxY; sy++ {
		py := float64(sy) + 0.5
		dsy := py - y2
		rowOff := sy * stride
		for sx := minX; sx <= maxX; sx++ {
			px := float64(sx) + 0.5
			dsx := px - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			sp := applyAffine(inv, r2.Vec{X: px, Y: py})
			cr, cg, cb, ca := sampleBilinear(src, sp.X-0.5, sp.Y-0.5)

			// Skip transparent texels
			if ca < 8 {
				continue
			}

			blendOver(dst.Pix[rowOff+sx*4:rowOff+sx*4+4], cr, cg, cb, ca)
		}
	}
}

// blendOver composites a non-premultiplied source pixel over the
// destination slice in place.
func blendOver(dp []uint8, sr, sg, sb, sa uint8) {
	if sa == 255 || dp[3] == 0 {
		dp[0] = sr
		dp[1] = sg
		dp[2] = sb
		dp[3] = sa
		return
	}
	fsa := float64(sa) / 255
	fda := float64(dp[3]) / 255 * (1 - fsa)
	outA := fsa + fda
	dp[0] = uint8((float64(sr)*fsa+float64(dp[0])*fda)/outA + 0.5)
	dp[1] = uint8((float64(sg)*fsa+float64(dp[1])*fda)/outA + 0.5)
	dp[2] = uint8((float64(sb)*fsa+float64(dp[2])*fda)/outA + 0.5)
	dp[3] = uint8(outA*255 + 0.5)
}
