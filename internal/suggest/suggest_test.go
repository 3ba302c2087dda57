package suggest

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"contour-rig/internal/mesh"
	"contour-rig/internal/skeleton"
)

// figureRing is a stick figure polygon symmetric about x=0.5: a torso
// column, a horizontal arm bar and two legs with a crotch notch, in ring
// order.
func figureRing() []r2.Vec {
	return []r2.Vec{
		{X: 0.40, Y: 0.05},
		{X: 0.60, Y: 0.05},
		{X: 0.60, Y: 0.22},
		{X: 0.90, Y: 0.22},
		{X: 0.90, Y: 0.32},
		{X: 0.60, Y: 0.32},
		{X: 0.60, Y: 0.93},
		{X: 0.52, Y: 0.93},
		{X: 0.52, Y: 0.55},
		{X: 0.48, Y: 0.55},
		{X: 0.48, Y: 0.93},
		{X: 0.40, Y: 0.93},
		{X: 0.40, Y: 0.32},
		{X: 0.10, Y: 0.32},
		{X: 0.10, Y: 0.22},
		{X: 0.40, Y: 0.22},
	}
}

func meshFromRing(ring []r2.Vec) *mesh.ContourMesh {
	m := &mesh.ContourMesh{}
	for i, p := range ring {
		m.Vertices = append(m.Vertices, mesh.Vertex{ID: mesh.ContourVertexID(i), Position: p})
	}
	return m
}

func posByID(bones []skeleton.PlacedBone) map[string]r2.Vec {
	out := make(map[string]r2.Vec, len(bones))
	for _, b := range bones {
		out[b.ID] = b.Position
	}
	return out
}

func TestBonePositionsHumanSymmetry(t *testing.T) {
	bones := BonePositions(meshFromRing(figureRing()), skeleton.Human, nil, Options{})
	if len(bones) != len(skeleton.Human.Nodes) {
		t.Fatalf("got %d bones, want %d", len(bones), len(skeleton.Human.Nodes))
	}
	pos := posByID(bones)

	for _, part := range []string{"shoulder", "elbow", "wrist", "fingertip", "knee", "ankle", "toe"} {
		l, r := pos[part+"_l"], pos[part+"_r"]
		if got := l.X + r.X; math.Abs(got-1.0) > 0.02 {
			t.Errorf("%s pair is asymmetric: left x=%v right x=%v", part, l.X, r.X)
		}
		if l.X >= r.X {
			t.Errorf("%s sides are swapped: left x=%v right x=%v", part, l.X, r.X)
		}
	}
	for _, id := range []string{"head", "jaw", "collarbone", "navel", "hip"} {
		if math.Abs(pos[id].X-0.5) > 0.02 {
			t.Errorf("axial bone %s drifted off center: x=%v", id, pos[id].X)
		}
	}

	chain := []string{"head", "jaw", "collarbone", "navel", "hip"}
	for i := 1; i < len(chain); i++ {
		if pos[chain[i]].Y < pos[chain[i-1]].Y {
			t.Errorf("%s (y=%v) placed above %s (y=%v)",
				chain[i], pos[chain[i]].Y, chain[i-1], pos[chain[i-1]].Y)
		}
	}
}

func TestBonePositionsLandInsideSilhouette(t *testing.T) {
	ring := figureRing()
	bones := BonePositions(meshFromRing(ring), skeleton.Human, nil, Options{})
	for _, b := range bones {
		if !pointInPolygon(b.Position, ring) {
			t.Errorf("bone %s at %v is outside the silhouette", b.ID, b.Position)
		}
	}
}

func TestBonePositionsDegenerateFallsBackToRestPose(t *testing.T) {
	m := &mesh.ContourMesh{Vertices: []mesh.Vertex{
		{ID: mesh.ContourVertexID(0), Position: r2.Vec{X: 0.4, Y: 0.4}},
		{ID: mesh.ContourVertexID(1), Position: r2.Vec{X: 0.6, Y: 0.4}},
	}}
	hint := skeleton.Pose{"head": r2.Vec{X: 0.1, Y: 0.1}}

	pos := posByID(BonePositions(m, skeleton.Human, hint, Options{}))
	if pos["head"] != (r2.Vec{X: 0.1, Y: 0.1}) {
		t.Errorf("hinted head at %v, want the hint position", pos["head"])
	}
	hip, _ := skeleton.Human.Node("hip")
	if pos["hip"] != hip.DefaultPosition {
		t.Errorf("hip at %v, want the preset default %v", pos["hip"], hip.DefaultPosition)
	}
}

func TestBonePositionsAnimalRemapsIntoBounds(t *testing.T) {
	ring := []r2.Vec{
		{X: 0.2, Y: 0.3},
		{X: 0.8, Y: 0.3},
		{X: 0.8, Y: 0.9},
		{X: 0.2, Y: 0.9},
	}
	pos := posByID(BonePositions(meshFromRing(ring), skeleton.Animal, nil, Options{}))
	for id, p := range pos {
		if p.X < 0.2 || p.X > 0.8 || p.Y < 0.3 || p.Y > 0.9 {
			t.Errorf("bone %s at %v left the silhouette bounds", id, p)
		}
	}
	// spine rests at (0.55, 0.30); the box remap is linear.
	want := r2.Vec{X: 0.2 + 0.55*0.6, Y: 0.3 + 0.30*0.6}
	if got := pos["spine"]; math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("spine at %v, want %v", got, want)
	}
}

func TestClampIntoPolygon(t *testing.T) {
	ring := []r2.Vec{
		{X: 0.2, Y: 0.2},
		{X: 0.8, Y: 0.2},
		{X: 0.8, Y: 0.8},
		{X: 0.2, Y: 0.8},
	}
	centroid := r2.Vec{X: 0.5, Y: 0.5}
	opts := Options{}.withDefaults()

	inside := r2.Vec{X: 0.3, Y: 0.7}
	if got := clampIntoPolygon(inside, ring, centroid, opts); got != inside {
		t.Errorf("interior point moved from %v to %v", inside, got)
	}
	out := clampIntoPolygon(r2.Vec{X: 1.5, Y: 0.5}, ring, centroid, opts)
	if !pointInPolygon(out, ring) {
		t.Errorf("clamped point %v is still outside", out)
	}
}
