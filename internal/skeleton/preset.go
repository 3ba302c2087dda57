package skeleton

import "gonum.org/v1/gonum/spatial/r2"

// Kind identifies a skeleton preset topology.
type Kind string

const (
	KindHuman  Kind = "human"
	KindAnimal Kind = "animal"
	KindBird   Kind = "bird"
)

// BoneNode is a single landmark in a preset. Positions are normalized to
// [0,1]² relative to the character image.
type BoneNode struct {
	ID              string `json:"id"`
	Label           string `json:"label"`
	DefaultPosition r2.Vec `json:"default_position"`
}

// Edge connects two bones for display and chain traversal.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Group names a set of bones. Members may be bone ids or other group names
// (via Includes), so groups can nest and even reference each other.
type Group struct {
	Bones    []string
	Includes []string
}

// Preset is an immutable catalog entry. Callers must not mutate the slices.
type Preset struct {
	Kind   Kind
	Label  string
	Nodes  []BoneNode
	Edges  []Edge
	Groups map[string]Group
}

// PlacedBone pairs a bone id with its current normalized position.
type PlacedBone struct {
	ID       string `json:"id"`
	Position r2.Vec `json:"position"`
}

// Node returns the preset node with the given id.
func (p Preset) Node(id string) (BoneNode, bool) {
	for _, n := range p.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return BoneNode{}, false
}

// DefaultPlacement returns the preset's bones at their default positions.
func (p Preset) DefaultPlacement() []PlacedBone {
	out := make([]PlacedBone, len(p.Nodes))
	for i, n := range p.Nodes {
		out[i] = PlacedBone{ID: n.ID, Position: n.DefaultPosition}
	}
	return out
}

// ByKind returns the preset for the given kind, falling back to the human
// preset when the kind is unknown.
func ByKind(kind Kind) Preset {
	switch kind {
	case KindHuman:
		return Human
	case KindAnimal:
		return Animal
	case KindBird:
		return Bird
	default:
		return Human
	}
}
