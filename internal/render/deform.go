package render

import (
	"gonum.org/v1/gonum/spatial/r2"

	"contour-rig/internal/mesh"
	"contour-rig/internal/skeleton"
)

// DeformVertices applies 2D linear blend skinning: each vertex moves by the
// weighted sum of its bones' displacements from the bind pose. The result is
// parallel to m.Vertices. Vertices with no weights, and bones missing from
// either pose, contribute zero displacement, so an identical current pose
// reproduces the bind positions exactly.
func DeformVertices(m *mesh.ContourMesh, bind, current skeleton.Pose) []r2.Vec {
	out := make([]r2.Vec, len(m.Vertices))
	for i, v := range m.Vertices {
		pos := v.Position
		for _, bw := range v.Weights {
			bp, okB := bind[bw.BoneID]
			cp, okC := current[bw.BoneID]
			if !okB || !okC {
				continue
			}
			pos.X += bw.Weight * (cp.X - bp.X)
			pos.Y += bw.Weight * (cp.Y - bp.Y)
		}
		out[i] = pos
	}
	return out
}
