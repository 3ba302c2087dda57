package preview

import (
	"context"
	"image"
	"time"

	"contour-rig/internal/mesh"
	"contour-rig/internal/render"
	"contour-rig/internal/skeleton"
)

// DefaultFPS is the preview frame rate.
const DefaultFPS = 30

// PoseFunc supplies the pose for a frame at the given elapsed time. The
// player clones the result before rendering, so the provider may keep
// mutating its own copy (for example while the user drags bones).
type PoseFunc func(elapsed time.Duration) skeleton.Pose

// FrameSink receives each rendered frame.
type FrameSink func(frame *image.NRGBA)

// Player drives a frame-synchronous deform-and-composite loop. One frame is
// rendered per tick while running; cancellation takes effect at a frame
// boundary, never mid-draw.
type Player struct {
	mesh *mesh.ContourMesh
	bind skeleton.Pose
	src  *image.NRGBA
	opts render.Options
	fps  int
}

// NewPlayer captures the bind pose and the immutable inputs for a preview
// session. The bind pose is cloned once here; later mutations of the caller's
// pose never leak into the session.
func NewPlayer(m *mesh.ContourMesh, bind skeleton.Pose, src *image.NRGBA, opts render.Options, fps int) *Player {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Player{
		mesh: m,
		bind: bind.Clone(),
		src:  src,
		opts: opts,
		fps:  fps,
	}
}

// RenderStatic produces a single frame from the given pose, for when no
// animation is active.
func (p *Player) RenderStatic(pose skeleton.Pose) *image.NRGBA {
	return render.Composite(p.mesh, p.bind, pose.Clone(), p.src, p.opts)
}

// Run renders frames until ctx is cancelled. On stop it emits one final
// bind-pose frame so the preview never ends on a half-applied pose.
func (p *Player) Run(ctx context.Context, pose PoseFunc, sink FrameSink) error {
	ticker := time.NewTicker(time.Second / time.Duration(p.fps))
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			sink(render.Composite(p.mesh, p.bind, p.bind, p.src, p.opts))
			return ctx.Err()
		case <-ticker.C:
			// Snapshot the pose for this frame; the source may change
			// underneath us between ticks.
			current := pose(time.Since(start)).Clone()
			sink(render.Composite(p.mesh, p.bind, current, p.src, p.opts))
		}
	}
}
