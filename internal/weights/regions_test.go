package weights

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"contour-rig/internal/skeleton"
)

func TestClassifyHumanRegions(t *testing.T) {
	pose := humanPose()
	cases := []struct {
		name string
		p    r2.Vec
		want Region
	}{
		{"crown", r2.Vec{X: 0.5, Y: 0.02}, RegionHead},
		{"cheek", r2.Vec{X: 0.45, Y: 0.10}, RegionHead},
		{"throat", r2.Vec{X: 0.5, Y: 0.20}, RegionNeck},
		{"chest", r2.Vec{X: 0.5, Y: 0.30}, RegionTorso},
		{"belly", r2.Vec{X: 0.55, Y: 0.45}, RegionTorso},
		{"left upper arm", r2.Vec{X: 0.30, Y: 0.30}, RegionArmLeft},
		{"right forearm", r2.Vec{X: 0.72, Y: 0.42}, RegionArmRight},
		{"left hand below hip", r2.Vec{X: 0.22, Y: 0.52}, RegionArmLeft},
		{"right hand below hip", r2.Vec{X: 0.80, Y: 0.55}, RegionArmRight},
		{"left thigh", r2.Vec{X: 0.44, Y: 0.55}, RegionLegLeft},
		{"right shin", r2.Vec{X: 0.56, Y: 0.75}, RegionLegRight},
	}
	for _, tc := range cases {
		if got := ClassifyHuman(tc.p, pose); got != tc.want {
			t.Errorf("%s at %v: classified %v, want %v", tc.name, tc.p, got, tc.want)
		}
	}
}

func TestClassifyTracksMovedBones(t *testing.T) {
	pose := humanPose()
	// Raising the hip line turns a former thigh vertex into a leg vertex
	// relative to the new bands.
	pose["hip"] = r2.Vec{X: 0.5, Y: 0.40}
	if got := ClassifyHuman(r2.Vec{X: 0.45, Y: 0.44}, pose); got != RegionLegLeft {
		t.Errorf("vertex below the raised hip classified %v, want leg_left", got)
	}
}

func TestEligibleBonesWithoutLandmarks(t *testing.T) {
	// A pose missing classifier landmarks cannot be regioned; every bone
	// stays eligible.
	pose := skeleton.Pose{
		"head": r2.Vec{X: 0.5, Y: 0.1},
		"hip":  r2.Vec{X: 0.5, Y: 0.5},
	}
	got := EligibleBones(r2.Vec{X: 0.5, Y: 0.1}, pose, skeleton.KindHuman)
	if len(got) != 2 {
		t.Fatalf("eligible = %v, want both bones", got)
	}
}

func TestRegionTableCoversAllRegions(t *testing.T) {
	for region := RegionHead; region <= RegionLegRight; region++ {
		names, ok := humanRegionTable[region]
		if !ok || len(names) == 0 {
			t.Errorf("region %v has no table entry", region)
			continue
		}
		if bones := skeleton.Human.CollectNames(names); len(bones) == 0 {
			t.Errorf("region %v resolves to no bones", region)
		}
	}
}
