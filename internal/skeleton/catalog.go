package skeleton

import "gonum.org/v1/gonum/spatial/r2"

// Human is the front-view biped preset. Left/right are viewer-relative:
// "_l" bones sit at smaller X.
var Human = Preset{
	Kind:  KindHuman,
	Label: "Human",
	Nodes: []BoneNode{
		{ID: "head", Label: "Head", DefaultPosition: r2.Vec{X: 0.50, Y: 0.05}},
		{ID: "jaw", Label: "Jaw", DefaultPosition: r2.Vec{X: 0.50, Y: 0.15}},
		{ID: "collarbone", Label: "Collarbone", DefaultPosition: r2.Vec{X: 0.50, Y: 0.25}},
		{ID: "navel", Label: "Navel", DefaultPosition: r2.Vec{X: 0.50, Y: 0.38}},
		{ID: "hip", Label: "Hip", DefaultPosition: r2.Vec{X: 0.50, Y: 0.48}},
		{ID: "shoulder_l", Label: "Left Shoulder", DefaultPosition: r2.Vec{X: 0.36, Y: 0.25}},
		{ID: "shoulder_r", Label: "Right Shoulder", DefaultPosition: r2.Vec{X: 0.64, Y: 0.25}},
		{ID: "elbow_l", Label: "Left Elbow", DefaultPosition: r2.Vec{X: 0.30, Y: 0.38}},
		{ID: "elbow_r", Label: "Right Elbow", DefaultPosition: r2.Vec{X: 0.70, Y: 0.38}},
		{ID: "wrist_l", Label: "Left Wrist", DefaultPosition: r2.Vec{X: 0.25, Y: 0.48}},
		{ID: "wrist_r", Label: "Right Wrist", DefaultPosition: r2.Vec{X: 0.75, Y: 0.48}},
		{ID: "fingertip_l", Label: "Left Fingertip", DefaultPosition: r2.Vec{X: 0.21, Y: 0.55}},
		{ID: "fingertip_r", Label: "Right Fingertip", DefaultPosition: r2.Vec{X: 0.79, Y: 0.55}},
		{ID: "knee_l", Label: "Left Knee", DefaultPosition: r2.Vec{X: 0.43, Y: 0.65}},
		{ID: "knee_r", Label: "Right Knee", DefaultPosition: r2.Vec{X: 0.57, Y: 0.65}},
		{ID: "ankle_l", Label: "Left Ankle", DefaultPosition: r2.Vec{X: 0.43, Y: 0.85}},
		{ID: "ankle_r", Label: "Right Ankle", DefaultPosition: r2.Vec{X: 0.57, Y: 0.85}},
		{ID: "toe_l", Label: "Left Toe", DefaultPosition: r2.Vec{X: 0.41, Y: 0.95}},
		{ID: "toe_r", Label: "Right Toe", DefaultPosition: r2.Vec{X: 0.59, Y: 0.95}},
	},
	Edges: []Edge{
		{From: "head", To: "jaw"},
		{From: "jaw", To: "collarbone"},
		{From: "collarbone", To: "navel"},
		{From: "navel", To: "hip"},
		{From: "collarbone", To: "shoulder_l"},
		{From: "shoulder_l", To: "elbow_l"},
		{From: "elbow_l", To: "wrist_l"},
		{From: "wrist_l", To: "fingertip_l"},
		{From: "collarbone", To: "shoulder_r"},
		{From: "shoulder_r", To: "elbow_r"},
		{From: "elbow_r", To: "wrist_r"},
		{From: "wrist_r", To: "fingertip_r"},
		{From: "hip", To: "knee_l"},
		{From: "knee_l", To: "ankle_l"},
		{From: "ankle_l", To: "toe_l"},
		{From: "hip", To: "knee_r"},
		{From: "knee_r", To: "ankle_r"},
		{From: "ankle_r", To: "toe_r"},
	},
	Groups: map[string]Group{
		"skull":       {Bones: []string{"head", "jaw"}},
		"upper_torso": {Bones: []string{"collarbone"}},
		"lower_torso": {Bones: []string{"navel", "hip"}},
		"torso":       {Includes: []string{"upper_torso", "lower_torso"}},
		"shoulders":   {Bones: []string{"shoulder_l", "shoulder_r"}},
		"hand_l":      {Bones: []string{"fingertip_l"}},
		"hand_r":      {Bones: []string{"fingertip_r"}},
		"arm_l":       {Bones: []string{"shoulder_l", "elbow_l", "wrist_l"}, Includes: []string{"hand_l"}},
		"arm_r":       {Bones: []string{"shoulder_r", "elbow_r", "wrist_r"}, Includes: []string{"hand_r"}},
		"foot_l":      {Bones: []string{"toe_l"}},
		"foot_r":      {Bones: []string{"toe_r"}},
		"leg_l":       {Bones: []string{"knee_l", "ankle_l"}, Includes: []string{"foot_l"}},
		"leg_r":       {Bones: []string{"knee_r", "ankle_r"}, Includes: []string{"foot_r"}},
		"extremities": {Includes: []string{"hand_l", "hand_r", "foot_l", "foot_r"}},
	},
}

// Animal is a side-view quadruped preset, head at smaller X.
var Animal = Preset{
	Kind:  KindAnimal,
	Label: "Animal",
	Nodes: []BoneNode{
		{ID: "head", Label: "Head", DefaultPosition: r2.Vec{X: 0.12, Y: 0.28}},
		{ID: "neck", Label: "Neck", DefaultPosition: r2.Vec{X: 0.24, Y: 0.32}},
		{ID: "withers", Label: "Withers", DefaultPosition: r2.Vec{X: 0.38, Y: 0.30}},
		{ID: "spine", Label: "Spine", DefaultPosition: r2.Vec{X: 0.55, Y: 0.30}},
		{ID: "croup", Label: "Croup", DefaultPosition: r2.Vec{X: 0.72, Y: 0.30}},
		{ID: "tail", Label: "Tail", DefaultPosition: r2.Vec{X: 0.90, Y: 0.26}},
		{ID: "front_knee", Label: "Front Knee", DefaultPosition: r2.Vec{X: 0.35, Y: 0.55}},
		{ID: "front_ankle", Label: "Front Ankle", DefaultPosition: r2.Vec{X: 0.35, Y: 0.75}},
		{ID: "front_paw", Label: "Front Paw", DefaultPosition: r2.Vec{X: 0.35, Y: 0.92}},
		{ID: "rear_knee", Label: "Rear Knee", DefaultPosition: r2.Vec{X: 0.72, Y: 0.55}},
		{ID: "rear_ankle", Label: "Rear Ankle", DefaultPosition: r2.Vec{X: 0.72, Y: 0.75}},
		{ID: "rear_paw", Label: "Rear Paw", DefaultPosition: r2.Vec{X: 0.72, Y: 0.92}},
	},
	Edges: []Edge{
		{From: "head", To: "neck"},
		{From: "neck", To: "withers"},
		{From: "withers", To: "spine"},
		{From: "spine", To: "croup"},
		{From: "croup", To: "tail"},
		{From: "withers", To: "front_knee"},
		{From: "front_knee", To: "front_ankle"},
		{From: "front_ankle", To: "front_paw"},
		{From: "croup", To: "rear_knee"},
		{From: "rear_knee", To: "rear_ankle"},
		{From: "rear_ankle", To: "rear_paw"},
	},
	Groups: map[string]Group{
		"paws":        {Bones: []string{"front_paw", "rear_paw"}},
		"extremities": {Includes: []string{"paws"}},
	},
}

// Bird is a front-view bird preset.
var Bird = Preset{
	Kind:  KindBird,
	Label: "Bird",
	Nodes: []BoneNode{
		{ID: "head", Label: "Head", DefaultPosition: r2.Vec{X: 0.50, Y: 0.10}},
		{ID: "beak", Label: "Beak", DefaultPosition: r2.Vec{X: 0.50, Y: 0.18}},
		{ID: "neck", Label: "Neck", DefaultPosition: r2.Vec{X: 0.50, Y: 0.26}},
		{ID: "body", Label: "Body", DefaultPosition: r2.Vec{X: 0.50, Y: 0.45}},
		{ID: "wing_l", Label: "Left Wing", DefaultPosition: r2.Vec{X: 0.26, Y: 0.40}},
		{ID: "wing_r", Label: "Right Wing", DefaultPosition: r2.Vec{X: 0.74, Y: 0.40}},
		{ID: "tail", Label: "Tail", DefaultPosition: r2.Vec{X: 0.50, Y: 0.72}},
		{ID: "leg_l", Label: "Left Leg", DefaultPosition: r2.Vec{X: 0.42, Y: 0.80}},
		{ID: "leg_r", Label: "Right Leg", DefaultPosition: r2.Vec{X: 0.58, Y: 0.80}},
		{ID: "foot_l", Label: "Left Foot", DefaultPosition: r2.Vec{X: 0.42, Y: 0.94}},
		{ID: "foot_r", Label: "Right Foot", DefaultPosition: r2.Vec{X: 0.58, Y: 0.94}},
	},
	Edges: []Edge{
		{From: "head", To: "beak"},
		{From: "head", To: "neck"},
		{From: "neck", To: "body"},
		{From: "body", To: "wing_l"},
		{From: "body", To: "wing_r"},
		{From: "body", To: "tail"},
		{From: "body", To: "leg_l"},
		{From: "leg_l", To: "foot_l"},
		{From: "body", To: "leg_r"},
		{From: "leg_r", To: "foot_r"},
	},
	Groups: map[string]Group{
		"feet":        {Bones: []string{"foot_l", "foot_r"}},
		"extremities": {Includes: []string{"feet"}},
	},
}
