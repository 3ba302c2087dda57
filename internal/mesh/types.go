package mesh

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"contour-rig/internal/weights"
)

// Vertex is one deformable mesh point. IDs live in two namespaces: contour
// vertices are "c<i>" in ring order, bone-sample vertices are "s_<boneId>".
type Vertex struct {
	ID       string               `json:"id"`
	Position r2.Vec               `json:"position"`
	Weights  []weights.BoneWeight `json:"weights,omitempty"`
}

// Triangle references three distinct vertex ids. Winding follows the
// triangulation order and carries no other meaning.
type Triangle [3]string

// ContourMesh is a triangulated silhouette with per-vertex bone weights.
type ContourMesh struct {
	Vertices  []Vertex   `json:"vertices"`
	Triangles []Triangle `json:"triangles"`
}

// ContourVertexID names the i-th contour vertex.
func ContourVertexID(i int) string { return fmt.Sprintf("c%d", i) }

// BoneVertexID names the sample vertex for a bone.
func BoneVertexID(boneID string) string { return "s_" + boneID }

// VertexIndex builds an id → slice-index lookup.
func (m *ContourMesh) VertexIndex() map[string]int {
	idx := make(map[string]int, len(m.Vertices))
	for i, v := range m.Vertices {
		idx[v.ID] = i
	}
	return idx
}

// ContourRing returns the positions of the contour vertices. Generate stores
// them first and in ring order, so slice order is ring order.
func (m *ContourMesh) ContourRing() []r2.Vec {
	var ring []r2.Vec
	for _, v := range m.Vertices {
		if strings.HasPrefix(v.ID, "c") {
			ring = append(ring, v.Position)
		}
	}
	return ring
}

// Clone copies the mesh deeply enough that weight mutation on the copy never
// touches the original.
func (m *ContourMesh) Clone() *ContourMesh {
	out := &ContourMesh{
		Vertices:  make([]Vertex, len(m.Vertices)),
		Triangles: make([]Triangle, len(m.Triangles)),
	}
	copy(out.Triangles, m.Triangles)
	for i, v := range m.Vertices {
		nv := v
		nv.Weights = make([]weights.BoneWeight, len(v.Weights))
		copy(nv.Weights, v.Weights)
		out.Vertices[i] = nv
	}
	return out
}
