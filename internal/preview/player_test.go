package preview

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"contour-rig/internal/mesh"
	"contour-rig/internal/render"
	"contour-rig/internal/skeleton"
	"contour-rig/internal/weights"
)

func previewFixture() (*mesh.ContourMesh, skeleton.Pose, *image.NRGBA) {
	m := &mesh.ContourMesh{
		Vertices: []mesh.Vertex{
			{ID: "c0", Position: r2.Vec{X: 0.2, Y: 0.2}, Weights: []weights.BoneWeight{{BoneID: "root", Weight: 1}}},
			{ID: "c1", Position: r2.Vec{X: 0.8, Y: 0.2}, Weights: []weights.BoneWeight{{BoneID: "root", Weight: 1}}},
			{ID: "c2", Position: r2.Vec{X: 0.5, Y: 0.8}, Weights: []weights.BoneWeight{{BoneID: "root", Weight: 1}}},
		},
		Triangles: []mesh.Triangle{{"c0", "c1", "c2"}},
	}
	src := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+3] = 255, 255
	}
	return m, skeleton.Pose{"root": r2.Vec{X: 0.5, Y: 0.4}}, src
}

func TestRenderStatic(t *testing.T) {
	m, bind, src := previewFixture()
	p := NewPlayer(m, bind, src, render.Options{}, 0)

	frame := p.RenderStatic(bind.Clone())
	if frame.Rect.Dx() != 32 || frame.Rect.Dy() != 32 {
		t.Fatalf("frame is %v, want 32x32", frame.Rect)
	}
	if c := frame.NRGBAAt(16, 12); c.A != 255 {
		t.Errorf("triangle interior has alpha %d", c.A)
	}
}

func TestRunDeliversFramesAndStops(t *testing.T) {
	m, bind, src := previewFixture()
	p := NewPlayer(m, bind, src, render.Options{}, 200)

	ctx, cancel := context.WithCancel(context.Background())
	frames := 0
	err := p.Run(ctx, func(time.Duration) skeleton.Pose {
		return bind
	}, func(frame *image.NRGBA) {
		frames++
		if frames >= 3 {
			cancel()
		}
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v, want context.Canceled", err)
	}
	// Three ticks plus the final bind-pose frame; the ticker may squeeze in
	// an extra frame before cancellation is observed.
	if frames < 4 {
		t.Errorf("delivered %d frames, want at least 4", frames)
	}
}

func TestRunEmitsFinalBindFrame(t *testing.T) {
	m, bind, src := previewFixture()
	p := NewPlayer(m, bind, src, render.Options{}, 200)

	// Animate the bone far off canvas so mid-run frames differ from the
	// bind frame.
	away := skeleton.Pose{"root": r2.Vec{X: 5, Y: 5}}
	want := p.RenderStatic(bind.Clone())

	ctx, cancel := context.WithCancel(context.Background())
	var last *image.NRGBA
	frames := 0
	err := p.Run(ctx, func(time.Duration) skeleton.Pose {
		return away
	}, func(frame *image.NRGBA) {
		last = frame
		frames++
		if frames == 2 {
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v, want context.Canceled", err)
	}

	if len(last.Pix) != len(want.Pix) {
		t.Fatalf("final frame size differs")
	}
	for i := range last.Pix {
		if last.Pix[i] != want.Pix[i] {
			t.Fatalf("final frame is not the bind-pose frame (first diff at byte %d)", i)
		}
	}
}

func TestNewPlayerClonesBindPose(t *testing.T) {
	m, bind, src := previewFixture()
	p := NewPlayer(m, bind, src, render.Options{}, 0)

	before := p.RenderStatic(bind.Clone())
	bind["root"] = r2.Vec{X: 9, Y: 9}
	after := p.RenderStatic(skeleton.Pose{"root": r2.Vec{X: 0.5, Y: 0.4}})

	for i := range before.Pix {
		if before.Pix[i] != after.Pix[i] {
			t.Fatalf("mutating the caller's pose changed the player's bind pose")
		}
	}
}
