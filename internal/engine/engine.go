package engine

import (
	"context"
	"fmt"
	"image"

	"gonum.org/v1/gonum/spatial/r2"

	"contour-rig/internal/config"
	"contour-rig/internal/contour"
	"contour-rig/internal/mask"
	"contour-rig/internal/matting"
	"contour-rig/internal/mesh"
	"contour-rig/internal/render"
	"contour-rig/internal/skeleton"
	"contour-rig/internal/store"
	"contour-rig/internal/suggest"
	"contour-rig/internal/weights"
)

// Engine ties the geometry pipeline to the asset store and the optional
// matting service, applying configured tunables throughout. All geometry
// calls are synchronous; each operates on one bounded image and finishes in
// a single pass.
type Engine struct {
	cfg   config.Config
	store *store.Store
	matte *matting.Client
}

// New builds an engine over a resolved config.
func New(cfg config.Config) (*Engine, error) {
	st, err := store.New(cfg.AssetDir)
	if err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg, store: st}
	if cfg.MattingURL != "" {
		e.matte = matting.NewClient(cfg.MattingURL)
	}
	return e, nil
}

// Store exposes the underlying asset store.
func (e *Engine) Store() *store.Store { return e.store }

func (e *Engine) contourOptions() contour.Options {
	return contour.Options{
		Threshold:         uint8(e.cfg.ContourThreshold),
		MaxPoints:         e.cfg.MaxContourPoints,
		SimplifyTolerance: e.cfg.SimplifyTolerance,
	}
}

func (e *Engine) weightParams() weights.Params {
	return weights.Params{
		MaxInfluences: e.cfg.MaxInfluences,
		Floor:         e.cfg.WeightFloor,
	}
}

func (e *Engine) meshParams(kind skeleton.Kind) mesh.Params {
	exclude := mesh.DefaultExclusions(kind)
	if names, ok := e.cfg.ExcludeGroups[string(kind)]; ok {
		exclude = names
	}
	return mesh.Params{
		Contour:       e.contourOptions(),
		MeshThreshold: uint8(e.cfg.MeshThreshold),
		ExcludeNames:  exclude,
		Weights:       e.weightParams(),
	}
}

// RenderOptions returns the configured composite options for a source image.
func (e *Engine) RenderOptions() render.Options {
	return render.Options{
		Supersample: e.cfg.Supersample,
		SeamInflate: e.cfg.SeamInflate,
	}
}

// PrepareImage loads a character raster, optionally runs it through the
// matting service for a cleaner alpha channel, and removes stray alpha
// islands when configured.
func (e *Engine) PrepareImage(ctx context.Context, rel string, useMatting bool) (*image.NRGBA, error) {
	img, err := e.store.LoadImage(rel)
	if err != nil {
		return nil, err
	}
	if useMatting {
		if e.matte == nil {
			return nil, fmt.Errorf("engine: matting requested but no matting_url configured")
		}
		img, err = e.matte.Matte(ctx, img)
		if err != nil {
			return nil, err
		}
	}
	if e.cfg.MinIslandRatio > 0 {
		img = mask.RemoveSmallIslands(img, e.cfg.MinIslandRatio)
	}
	return img, nil
}

// ExtractContour derives the simplified boundary polygon of the image's
// alpha mask. A zero threshold uses the configured default.
func (e *Engine) ExtractContour(img *image.NRGBA, threshold uint8) []r2.Vec {
	opts := e.contourOptions()
	if threshold > 0 {
		opts.Threshold = threshold
	}
	return contour.Extract(mask.New(img), opts)
}

// GenerateContourMesh triangulates the silhouette with the given bones and
// assigns weights.
func (e *Engine) GenerateContourMesh(img *image.NRGBA, bones []skeleton.PlacedBone, kind skeleton.Kind) (*mesh.ContourMesh, error) {
	return mesh.Generate(img, bones, kind, e.meshParams(kind))
}

// RecomputeContourMeshWeights reassigns weights for moved bones without
// touching geometry.
func (e *Engine) RecomputeContourMeshWeights(m *mesh.ContourMesh, bones []skeleton.PlacedBone, kind skeleton.Kind) *mesh.ContourMesh {
	return mesh.RecomputeWeights(m, bones, kind, e.weightParams())
}

// SuggestBonePositions re-derives bone placements from a generated mesh.
func (e *Engine) SuggestBonePositions(m *mesh.ContourMesh, preset skeleton.Preset, hint skeleton.Pose) []skeleton.PlacedBone {
	return suggest.BonePositions(m, preset, hint, suggest.Options{})
}

// DeformAndComposite renders one frame of the deformed character.
func (e *Engine) DeformAndComposite(m *mesh.ContourMesh, bind, current skeleton.Pose, src *image.NRGBA) *image.NRGBA {
	return render.Composite(m, bind, current, src, e.RenderOptions())
}

// Rebind regenerates the mesh for a character angle and persists the new
// binding. Generation failure leaves any previously saved binding intact;
// the save itself is atomic, so the stored state is never half-replaced.
func (e *Engine) Rebind(img *image.NRGBA, character, angle string, bones []skeleton.PlacedBone, kind skeleton.Kind) (*store.Binding, error) {
	m, err := e.GenerateContourMesh(img, bones, kind)
	if err != nil {
		return nil, err
	}
	b := &store.Binding{
		PresetKind: kind,
		AngleView:  angle,
		Nodes:      bones,
		Mesh:       m,
	}
	if err := e.store.SaveBinding(character, angle, b); err != nil {
		return nil, err
	}
	return b, nil
}
