package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r2"

	"contour-rig/internal/apperr"
)

// singularEps rejects source triangles that are colinear within floating
// point noise; inverting those would spray NaN/Inf across the frame.
const singularEps = 1e-12

// affineFromTriangle solves the unique 2D affine transform mapping the three
// src points onto the three dst points. With S and D the 3×3 matrices whose
// columns are the homogeneous points, the transform is D·S⁻¹.
func affineFromTriangle(src, dst [3]r2.Vec) (mgl64.Mat3, error) {
	s := mgl64.Mat3FromCols(
		mgl64.Vec3{src[0].X, src[0].Y, 1},
		mgl64.Vec3{src[1].X, src[1].Y, 1},
		mgl64.Vec3{src[2].X, src[2].Y, 1},
	)
	if math.Abs(s.Det()) < singularEps {
		return mgl64.Ident3(), apperr.ErrSingularAffine
	}
	d := mgl64.Mat3FromCols(
		mgl64.Vec3{dst[0].X, dst[0].Y, 1},
		mgl64.Vec3{dst[1].X, dst[1].Y, 1},
		mgl64.Vec3{dst[2].X, dst[2].Y, 1},
	)
	return d.Mul3(s.Inv()), nil
}

// applyAffine transforms a point through a 3×3 affine matrix.
func applyAffine(m mgl64.Mat3, p r2.Vec) r2.Vec {
	v := m.Mul3x1(mgl64.Vec3{p.X, p.Y, 1})
	return r2.Vec{X: v.X(), Y: v.Y()}
}
