package skeleton

import "gonum.org/v1/gonum/spatial/r2"

// Pose maps bone ids to normalized positions. It is a transient value: the
// renderer receives one per frame and must not observe later mutations, so
// callers hand over a Clone when the source keeps changing.
type Pose map[string]r2.Vec

// PoseFromBones builds a pose from placed bones.
func PoseFromBones(bones []PlacedBone) Pose {
	p := make(Pose, len(bones))
	for _, b := range bones {
		p[b.ID] = b.Position
	}
	return p
}

// Clone returns an independent copy.
func (p Pose) Clone() Pose {
	out := make(Pose, len(p))
	for id, pos := range p {
		out[id] = pos
	}
	return out
}

// Lerp interpolates between two poses at t in [0,1]. Bones present in only
// one pose keep that pose's position.
func Lerp(a, b Pose, t float64) Pose {
	out := make(Pose, len(a))
	for id, pa := range a {
		pb, ok := b[id]
		if !ok {
			out[id] = pa
			continue
		}
		out[id] = r2.Vec{
			X: pa.X + (pb.X-pa.X)*t,
			Y: pa.Y + (pb.Y-pa.Y)*t,
		}
	}
	for id, pb := range b {
		if _, ok := a[id]; !ok {
			out[id] = pb
		}
	}
	return out
}
