package mesh

import (
	"fmt"
	"image"

	"github.com/fogleman/delaunay"
	"gonum.org/v1/gonum/spatial/r2"

	"contour-rig/internal/apperr"
	"contour-rig/internal/contour"
	"contour-rig/internal/mask"
	"contour-rig/internal/skeleton"
	"contour-rig/internal/weights"
)

// DefaultMeshThreshold is the alpha level used to keep triangles. It is
// deliberately looser than the contour extraction threshold: the strict
// threshold keeps boundary points off the background, while this one keeps
// thin anti-aliased regions (limbs, hair) from losing their triangles.
const DefaultMeshThreshold uint8 = 48

// Params tunes mesh generation.
type Params struct {
	Contour       contour.Options
	MeshThreshold uint8
	// ExcludeNames are group names or bone ids dropped from triangulation.
	// Extremity bones (fingertips, toes) often sit outside the mask and
	// would corrupt the triangulation. Nil means the preset default.
	ExcludeNames []string
	Weights      weights.Params
}

// DefaultExclusions returns the triangulation exclusion list for a preset
// kind. Only the human preset excludes its extremities by default; other
// presets opt in through Params.ExcludeNames.
func DefaultExclusions(kind skeleton.Kind) []string {
	if kind == skeleton.KindHuman {
		return []string{"extremities"}
	}
	return nil
}

func (p Params) withDefaults(kind skeleton.Kind) Params {
	if p.MeshThreshold == 0 {
		p.MeshThreshold = DefaultMeshThreshold
	}
	if p.ExcludeNames == nil {
		p.ExcludeNames = DefaultExclusions(kind)
	}
	return p
}

// Generate builds a contour mesh for the image: extract the silhouette
// contour, triangulate contour points plus eligible bone points with
// Delaunay, discard triangles that leave the alpha mask, and assign bone
// weights to every surviving vertex.
func Generate(img *image.NRGBA, bones []skeleton.PlacedBone, kind skeleton.Kind, params Params) (*ContourMesh, error) {
	if len(bones) == 0 {
		return nil, apperr.ErrNoBonesBound
	}
	params = params.withDefaults(kind)
	preset := skeleton.ByKind(kind)

	m := mask.New(img)
	ring := contour.Extract(m, params.Contour)
	if len(ring) < 3 {
		return nil, fmt.Errorf("mesh: %d boundary points: %w", len(ring), apperr.ErrInsufficientContour)
	}

	excluded := make(map[string]bool)
	for _, id := range preset.CollectNames(params.ExcludeNames) {
		excluded[id] = true
	}

	// One indexed point set: contour ring first, then eligible bone samples.
	points := make([]delaunay.Point, 0, len(ring)+len(bones))
	ids := make([]string, 0, len(ring)+len(bones))
	positions := make([]r2.Vec, 0, len(ring)+len(bones))
	seen := make(map[delaunay.Point]bool)

	for i, p := range ring {
		dp := delaunay.Point{X: p.X, Y: p.Y}
		if seen[dp] {
			continue
		}
		seen[dp] = true
		points = append(points, dp)
		ids = append(ids, ContourVertexID(i))
		positions = append(positions, p)
	}
	for _, b := range bones {
		if excluded[b.ID] {
			continue
		}
		dp := delaunay.Point{X: b.Position.X, Y: b.Position.Y}
		if seen[dp] {
			continue
		}
		seen[dp] = true
		points = append(points, dp)
		ids = append(ids, BoneVertexID(b.ID))
		positions = append(positions, b.Position)
	}

	tri, err := delaunay.Triangulate(points)
	if err != nil {
		return nil, fmt.Errorf("mesh: triangulate %d points: %w", len(points), apperr.ErrDegenerateTriangulation)
	}

	// Keep triangles whose corners and centroid all sit inside the mask at
	// the loose threshold.
	used := make(map[int]bool)
	var triangles [][3]int
	for t := 0; t+2 < len(tri.Triangles); t += 3 {
		a, b, c := tri.Triangles[t], tri.Triangles[t+1], tri.Triangles[t+2]
		pa, pb, pc := positions[a], positions[b], positions[c]
		centroid := r2.Scale(1.0/3.0, r2.Add(r2.Add(pa, pb), pc))
		if !m.InsideNorm(pa, params.MeshThreshold) ||
			!m.InsideNorm(pb, params.MeshThreshold) ||
			!m.InsideNorm(pc, params.MeshThreshold) ||
			!m.InsideNorm(centroid, params.MeshThreshold) {
			continue
		}
		triangles = append(triangles, [3]int{a, b, c})
		used[a] = true
		used[b] = true
		used[c] = true
	}

	if len(triangles) == 0 {
		return nil, fmt.Errorf("mesh: no triangle survives the mask filter, bones may not match the silhouette: %w", apperr.ErrDegenerateTriangulation)
	}

	pose := skeleton.PoseFromBones(bones)
	out := &ContourMesh{}
	for i, id := range ids {
		if !used[i] {
			continue
		}
		out.Vertices = append(out.Vertices, Vertex{
			ID:       id,
			Position: positions[i],
			Weights:  weights.Assign(positions[i], pose, kind, params.Weights),
		})
	}
	for _, t := range triangles {
		out.Triangles = append(out.Triangles, Triangle{ids[t[0]], ids[t[1]], ids[t[2]]})
	}
	return out, nil
}

// RecomputeWeights returns a copy of the mesh with every vertex's weights
// reassigned against the given bone positions. Vertex positions and
// triangles are never touched; callers re-run this after bones move without
// invalidating the mesh geometry.
func RecomputeWeights(m *ContourMesh, bones []skeleton.PlacedBone, kind skeleton.Kind, params weights.Params) *ContourMesh {
	pose := skeleton.PoseFromBones(bones)
	out := m.Clone()
	for i := range out.Vertices {
		out.Vertices[i].Weights = weights.Assign(out.Vertices[i].Position, pose, kind, params)
	}
	return out
}
