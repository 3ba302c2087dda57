package suggest

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat"

	"contour-rig/internal/contour"
	"contour-rig/internal/mesh"
	"contour-rig/internal/skeleton"
)

// Options tunes bone-placement suggestion. Zero values fall back to the
// defaults.
type Options struct {
	// ClampBlend is the fraction moved toward the centroid per clamp step
	// when a computed point falls outside the silhouette polygon.
	ClampBlend float64
	// ClampMaxIters bounds the clamp loop.
	ClampMaxIters int
}

func (o Options) withDefaults() Options {
	if o.ClampBlend <= 0 {
		o.ClampBlend = 0.30
	}
	if o.ClampMaxIters <= 0 {
		o.ClampMaxIters = 20
	}
	return o
}

// Vertical percentile bands for the human landmark chain, top to bottom.
var humanBands = map[string]float64{
	"head":       0.05,
	"jaw":        0.15,
	"collarbone": 0.25,
	"navel":      0.38,
	"hip":        0.48,
	"knee":       0.65,
	"ankle":      0.85,
	"toe":        0.95,
}

// Fraction of the torso-edge-to-extremal span at which each arm joint sits.
var armChain = []struct {
	suffix string
	frac   float64
}{
	{"shoulder", 0.10},
	{"elbow", 0.42},
	{"wrist", 0.72},
	{"fingertip", 0.95},
}

// BonePositions derives bone placements from a generated mesh's contour
// polygon. The human preset uses percentile bands and silhouette extremes;
// other presets linearly remap their default layout into the silhouette's
// bounding box. Every computed point is clamped into the polygon. Degenerate
// input (fewer than 3 contour vertices) returns the rest pose unchanged:
// the hint when given, otherwise the preset defaults.
func BonePositions(m *mesh.ContourMesh, preset skeleton.Preset, hint skeleton.Pose, opts Options) []skeleton.PlacedBone {
	opts = opts.withDefaults()

	ring := m.ContourRing()
	if len(ring) < 3 {
		return restPose(preset, hint)
	}

	if preset.Kind == skeleton.KindHuman {
		return suggestHuman(ring, preset, opts)
	}
	return suggestByBounds(ring, preset, hint, opts)
}

func restPose(preset skeleton.Preset, hint skeleton.Pose) []skeleton.PlacedBone {
	out := make([]skeleton.PlacedBone, len(preset.Nodes))
	for i, n := range preset.Nodes {
		pos := n.DefaultPosition
		if hint != nil {
			if p, ok := hint[n.ID]; ok {
				pos = p
			}
		}
		out[i] = skeleton.PlacedBone{ID: n.ID, Position: pos}
	}
	return out
}

func suggestHuman(ring []r2.Vec, preset skeleton.Preset, opts Options) []skeleton.PlacedBone {
	centroid := contour.Centroid(ring)
	minP, maxP := bounds(ring)

	ys := make([]float64, len(ring))
	for i, p := range ring {
		ys[i] = p.Y
	}
	sort.Float64s(ys)
	bandY := func(q float64) float64 {
		return stat.Quantile(q, stat.Empirical, ys, nil)
	}

	cx := centroid.X
	placed := make(map[string]r2.Vec)

	// Axial chain on the vertical centerline.
	for _, id := range []string{"head", "jaw", "collarbone", "navel", "hip"} {
		placed[id] = r2.Vec{X: cx, Y: bandY(humanBands[id])}
	}

	// Legs: halfway between the centerline and the silhouette edge at each
	// band, mirrored left/right.
	for _, part := range []string{"knee", "ankle", "toe"} {
		y := bandY(humanBands[part])
		lo, hi := widthAt(ring, y, maxP.Y-minP.Y)
		placed[part+"_l"] = r2.Vec{X: cx + 0.5*(lo-cx), Y: y}
		placed[part+"_r"] = r2.Vec{X: cx + 0.5*(hi-cx), Y: y}
	}

	// Arms: walk from a torso edge point toward the extremal silhouette
	// point within the arm band, placing joints proportionally.
	armTop := bandY(humanBands["collarbone"])
	armBottom := bandY(humanBands["hip"])
	extL, extR := armExtremes(ring, armTop, armBottom, cx)

	torsoL := r2.Vec{X: cx + 0.2*(extL.X-cx), Y: armTop}
	torsoR := r2.Vec{X: cx + 0.2*(extR.X-cx), Y: armTop}
	for _, joint := range armChain {
		placed[joint.suffix+"_l"] = lerp(torsoL, extL, joint.frac)
		placed[joint.suffix+"_r"] = lerp(torsoR, extR, joint.frac)
	}

	out := make([]skeleton.PlacedBone, 0, len(preset.Nodes))
	for _, n := range preset.Nodes {
		pos, ok := placed[n.ID]
		if !ok {
			pos = n.DefaultPosition
		}
		out = append(out, skeleton.PlacedBone{
			ID:       n.ID,
			Position: clampIntoPolygon(pos, ring, centroid, opts),
		})
	}
	return out
}

// suggestByBounds remaps each bone's rest position into the silhouette's
// bounding box. The rest layout comes from the hint when given.
func suggestByBounds(ring []r2.Vec, preset skeleton.Preset, hint skeleton.Pose, opts Options) []skeleton.PlacedBone {
	centroid := contour.Centroid(ring)
	minP, maxP := bounds(ring)
	w := maxP.X - minP.X
	h := maxP.Y - minP.Y

	rest := restPose(preset, hint)
	out := make([]skeleton.PlacedBone, len(rest))
	for i, b := range rest {
		p := r2.Vec{
			X: minP.X + b.Position.X*w,
			Y: minP.Y + b.Position.Y*h,
		}
		out[i] = skeleton.PlacedBone{
			ID:       b.ID,
			Position: clampIntoPolygon(p, ring, centroid, opts),
		}
	}
	return out
}

// clampIntoPolygon blends a point toward the centroid until it lands inside
// the polygon, giving up after the iteration budget and returning the best
// point reached.
func clampIntoPolygon(p r2.Vec, ring []r2.Vec, centroid r2.Vec, opts Options) r2.Vec {
	cur := p
	for i := 0; i < opts.ClampMaxIters; i++ {
		if pointInPolygon(cur, ring) {
			return cur
		}
		cur = lerp(cur, centroid, opts.ClampBlend)
	}
	return cur
}

// pointInPolygon is a standard even-odd ray cast against the ring.
func pointInPolygon(p r2.Vec, ring []r2.Vec) bool {
	inside := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[i], ring[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// widthAt finds the leftmost and rightmost contour X within a horizontal
// band around y, widening the band until it catches points.
func widthAt(ring []r2.Vec, y, height float64) (lo, hi float64) {
	tol := 0.04 * height
	for {
		lo, hi = 0, 0
		found := false
		for _, p := range ring {
			if p.Y < y-tol || p.Y > y+tol {
				continue
			}
			if !found {
				lo, hi = p.X, p.X
				found = true
				continue
			}
			if p.X < lo {
				lo = p.X
			}
			if p.X > hi {
				hi = p.X
			}
		}
		if found {
			return lo, hi
		}
		tol *= 2
		if tol > height {
			// Fall back to the full ring.
			min, max := bounds(ring)
			return min.X, max.X
		}
	}
}

// armExtremes finds the extremal-X contour points within the arm band on
// each side of the centerline.
func armExtremes(ring []r2.Vec, top, bottom, cx float64) (left, right r2.Vec) {
	left = r2.Vec{X: cx, Y: (top + bottom) / 2}
	right = left
	for _, p := range ring {
		if p.Y < top || p.Y > bottom {
			continue
		}
		if p.X < left.X {
			left = p
		}
		if p.X > right.X {
			right = p
		}
	}
	return left, right
}

func bounds(points []r2.Vec) (min, max r2.Vec) {
	min, max = points[0], points[0]
	for _, p := range points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

func lerp(a, b r2.Vec, t float64) r2.Vec {
	return r2.Vec{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}
