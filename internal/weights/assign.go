package weights

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"contour-rig/internal/skeleton"
)

const (
	// DefaultMaxInfluences is the largest number of bones kept per vertex.
	DefaultMaxInfluences = 4

	// DefaultFloor drops influences below this fraction of a vertex's total
	// raw weight before renormalizing.
	DefaultFloor = 0.01

	// distEpsilon keeps the inverse-square falloff finite when a vertex sits
	// on a bone.
	distEpsilon = 1e-4
)

// BoneWeight is one bone's influence on a vertex. Weights on a vertex sum to
// 1.0 after assignment.
type BoneWeight struct {
	BoneID string  `json:"bone_id"`
	Weight float64 `json:"weight"`
}

// Params tunes weight assignment. Zero values fall back to the defaults.
type Params struct {
	MaxInfluences int
	Floor         float64
}

func (p Params) withDefaults() Params {
	if p.MaxInfluences <= 0 {
		p.MaxInfluences = DefaultMaxInfluences
	}
	if p.Floor <= 0 {
		p.Floor = DefaultFloor
	}
	return p
}

// Assign computes the bone-influence distribution for one vertex position.
// For the human preset, the candidate set is first narrowed by the region
// classifier; other presets consider every bone. Raw weights follow inverse
// squared distance, truncated to the top MaxInfluences, floored, and
// renormalized to sum to 1.
//
// An empty result means no eligible bone exists; the renderer then treats
// the vertex as rigidly attached to the bind pose.
func Assign(v r2.Vec, pose skeleton.Pose, kind skeleton.Kind, params Params) []BoneWeight {
	params = params.withDefaults()

	candidates := EligibleBones(v, pose, kind)
	if len(candidates) == 0 {
		return nil
	}

	raw := make([]BoneWeight, 0, len(candidates))
	total := 0.0
	for _, id := range candidates {
		pos, ok := pose[id]
		if !ok {
			continue
		}
		d2 := r2.Norm2(r2.Sub(v, pos))
		w := 1.0 / (d2 + distEpsilon*distEpsilon)
		raw = append(raw, BoneWeight{BoneID: id, Weight: w})
		total += w
	}
	if len(raw) == 0 || total <= 0 {
		return nil
	}

	sort.Slice(raw, func(i, j int) bool { return raw[i].Weight > raw[j].Weight })
	if len(raw) > params.MaxInfluences {
		raw = raw[:params.MaxInfluences]
	}

	// Relative floor against the kept influences, then renormalize.
	kept := 0.0
	for _, bw := range raw {
		kept += bw.Weight
	}
	out := raw[:0]
	for _, bw := range raw {
		if bw.Weight/kept < params.Floor {
			continue
		}
		out = append(out, bw)
	}
	if len(out) == 0 {
		return nil
	}

	sum := 0.0
	for _, bw := range out {
		sum += bw.Weight
	}
	for i := range out {
		out[i].Weight /= sum
	}
	return out
}
