package weights

import (
	"gonum.org/v1/gonum/spatial/r2"

	"contour-rig/internal/skeleton"
)

// Region is an enumerated body area used to restrict which bones may
// influence a vertex. Keeping the rules as an explicit table rather than
// inlined conditionals makes them auditable per region.
type Region int

const (
	RegionHead Region = iota
	RegionNeck
	RegionTorso
	RegionArmLeft
	RegionArmRight
	RegionLegLeft
	RegionLegRight
)

var regionNames = map[Region]string{
	RegionHead:     "head",
	RegionNeck:     "neck",
	RegionTorso:    "torso",
	RegionArmLeft:  "arm_left",
	RegionArmRight: "arm_right",
	RegionLegLeft:  "leg_left",
	RegionLegRight: "leg_right",
}

func (r Region) String() string { return regionNames[r] }

// humanRegionTable maps each region to the preset groups and bone ids that
// may influence its vertices. Entries are resolved through the preset's
// group catalog, so a name can be a group or a bare bone id.
var humanRegionTable = map[Region][]string{
	RegionHead:     {"skull"},
	RegionNeck:     {"skull", "upper_torso", "shoulders"},
	RegionTorso:    {"torso", "shoulders"},
	RegionArmLeft:  {"arm_l", "upper_torso"},
	RegionArmRight: {"arm_r", "upper_torso"},
	RegionLegLeft:  {"leg_l", "hip"},
	RegionLegRight: {"leg_r", "hip"},
}

// classifierLandmarks are the bones whose current positions define the
// region boundaries. All must be present in the pose for classification;
// otherwise every bone stays eligible.
var classifierLandmarks = []string{
	"jaw", "collarbone", "hip", "shoulder_l", "shoulder_r",
}

// EligibleBones returns the candidate bone ids for a vertex. Only the human
// preset restricts candidates; other kinds return every bone in the pose.
func EligibleBones(v r2.Vec, pose skeleton.Pose, kind skeleton.Kind) []string {
	if kind != skeleton.KindHuman {
		out := make([]string, 0, len(pose))
		for _, n := range skeleton.ByKind(kind).Nodes {
			if _, ok := pose[n.ID]; ok {
				out = append(out, n.ID)
			}
		}
		// Bones absent from the catalog (custom ids) remain eligible too.
		for id := range pose {
			if _, ok := skeleton.ByKind(kind).Node(id); !ok {
				out = append(out, id)
			}
		}
		return out
	}

	for _, id := range classifierLandmarks {
		if _, ok := pose[id]; !ok {
			out := make([]string, 0, len(pose))
			for id := range pose {
				out = append(out, id)
			}
			return out
		}
	}

	region := ClassifyHuman(v, pose)
	preset := skeleton.Human

	names := preset.CollectNames(humanRegionTable[region])
	out := names[:0]
	for _, id := range names {
		if _, ok := pose[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// ClassifyHuman assigns a vertex to a body region using the current bone
// positions: vertical bands from jaw/collarbone/hip, horizontal splits from
// the shoulders and the hip centerline. Deterministic for a given pose.
func ClassifyHuman(v r2.Vec, pose skeleton.Pose) Region {
	jawY := pose["jaw"].Y
	collarY := pose["collarbone"].Y
	hip := pose["hip"]
	shoulderLX := pose["shoulder_l"].X
	shoulderRX := pose["shoulder_r"].X

	switch {
	case v.Y < jawY:
		return RegionHead
	case v.Y < collarY:
		return RegionNeck
	case v.Y < hip.Y:
		if v.X < shoulderLX {
			return RegionArmLeft
		}
		if v.X > shoulderRX {
			return RegionArmRight
		}
		return RegionTorso
	default:
		// Below the hip line, anything outside the shoulder span belongs to
		// a hanging arm; the rest splits into legs at the hip centerline.
		if v.X < shoulderLX {
			return RegionArmLeft
		}
		if v.X > shoulderRX {
			return RegionArmRight
		}
		if v.X < hip.X {
			return RegionLegLeft
		}
		return RegionLegRight
	}
}
