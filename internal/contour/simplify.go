package contour

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Simplify removes redundant near-colinear points with Douglas-Peucker.
// The first and last points are always kept, so the result never grows.
// A tolerance of 0 removes only exactly colinear points.
func Simplify(points []r2.Vec, tolerance float64) []r2.Vec {
	if len(points) < 3 {
		return points
	}
	if tolerance < 0 {
		tolerance = 0
	}

	keep := make([]bool, len(points))
	keep[0] = true
	keep[len(points)-1] = true
	simplifyRange(points, 0, len(points)-1, tolerance, keep)

	out := points[:0]
	for i, p := range points {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}

// simplifyRange marks the farthest point from the chord [first,last] if it
// exceeds the tolerance, then recurses into both halves. Recursion depth is
// bounded by log2 of the range in the typical case and by the range itself in
// the worst case, both fine for contour-sized inputs.
func simplifyRange(points []r2.Vec, first, last int, tolerance float64, keep []bool) {
	if last <= first+1 {
		return
	}

	maxDist := 0.0
	maxIdx := -1
	for i := first + 1; i < last; i++ {
		d := perpendicularDistance(points[i], points[first], points[last])
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}

	if maxIdx < 0 || maxDist <= tolerance {
		return
	}

	keep[maxIdx] = true
	simplifyRange(points, first, maxIdx, tolerance, keep)
	simplifyRange(points, maxIdx, last, tolerance, keep)
}

// perpendicularDistance is the distance from p to the line through a and b.
// Degenerates to point distance when a == b.
func perpendicularDistance(p, a, b r2.Vec) float64 {
	ab := r2.Sub(b, a)
	length := r2.Norm(ab)
	if length < 1e-12 {
		return r2.Norm(r2.Sub(p, a))
	}
	ap := r2.Sub(p, a)
	return math.Abs(r2.Cross(ab, ap)) / length
}
