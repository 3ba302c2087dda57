package contour

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"contour-rig/internal/mask"
)

const (
	// DefaultThreshold is the alpha level at which a pixel counts as inside
	// the silhouette during extraction.
	DefaultThreshold uint8 = 128

	// DefaultMaxPoints bounds the contour size before simplification.
	DefaultMaxPoints = 180

	// DefaultSimplifyTolerance is the Douglas-Peucker tolerance in
	// normalized units.
	DefaultSimplifyTolerance = 0.0015
)

// Options tunes contour extraction. Zero values fall back to the defaults.
type Options struct {
	Threshold         uint8
	MaxPoints         int
	SimplifyTolerance float64
}

func (o Options) withDefaults() Options {
	if o.Threshold == 0 {
		o.Threshold = DefaultThreshold
	}
	if o.MaxPoints <= 0 {
		o.MaxPoints = DefaultMaxPoints
	}
	if o.SimplifyTolerance <= 0 {
		o.SimplifyTolerance = DefaultSimplifyTolerance
	}
	return o
}

// Extract derives an ordered boundary polygon from the image's alpha mask.
// Boundary pixels (inside pixels with an outside 4-neighbor) are normalized
// to [0,1]², ordered by angle around the silhouette centroid, subsampled to
// at most MaxPoints, and simplified.
//
// Extraction never fails: it returns whatever it found, possibly empty.
// Callers must treat fewer than 3 points as "no usable contour".
func Extract(m *mask.Mask, opts Options) []r2.Vec {
	opts = opts.withDefaults()
	w, h := m.Size()
	if w == 0 || h == 0 {
		return nil
	}

	fw, fh := float64(w), float64(h)
	var boundary []r2.Vec
	var sumX, sumY float64
	insideCount := 0

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !m.Inside(x, y, opts.Threshold) {
				continue
			}
			px := (float64(x) + 0.5) / fw
			py := (float64(y) + 0.5) / fh
			sumX += px
			sumY += py
			insideCount++

			if !m.Inside(x-1, y, opts.Threshold) ||
				!m.Inside(x+1, y, opts.Threshold) ||
				!m.Inside(x, y-1, opts.Threshold) ||
				!m.Inside(x, y+1, opts.Threshold) {
				boundary = append(boundary, r2.Vec{X: px, Y: py})
			}
		}
	}

	if insideCount == 0 || len(boundary) == 0 {
		return nil
	}

	centroid := r2.Vec{X: sumX / float64(insideCount), Y: sumY / float64(insideCount)}

	// Order boundary pixels into a ring by angle around the centroid.
	sort.Slice(boundary, func(i, j int) bool {
		ai := math.Atan2(boundary[i].Y-centroid.Y, boundary[i].X-centroid.X)
		aj := math.Atan2(boundary[j].Y-centroid.Y, boundary[j].X-centroid.X)
		return ai < aj
	})

	// Fixed-stride subsample down to the point budget.
	if len(boundary) > opts.MaxPoints {
		stride := (len(boundary) + opts.MaxPoints - 1) / opts.MaxPoints
		kept := boundary[:0]
		for i := 0; i < len(boundary); i += stride {
			kept = append(kept, boundary[i])
		}
		boundary = kept
	}

	return Simplify(boundary, opts.SimplifyTolerance)
}

// Centroid returns the mean of the given points. Zero vector for no points.
func Centroid(points []r2.Vec) r2.Vec {
	if len(points) == 0 {
		return r2.Vec{}
	}
	var sum r2.Vec
	for _, p := range points {
		sum = r2.Add(sum, p)
	}
	return r2.Scale(1/float64(len(points)), sum)
}
