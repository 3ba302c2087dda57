package batch

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/sync/errgroup"

	"contour-rig/internal/mesh"
	"contour-rig/internal/render"
	"contour-rig/internal/skeleton"
)

// Config holds shared resources for a frame-export run.
type Config struct {
	OutputDir string
	Workers   int
	Render    render.Options
	// Progress prints a frames/sec line every couple of seconds when true.
	Progress bool
}

// ExportFrames renders one WebP file per pose using a worker pool. Frames
// are independent, so workers run in parallel over the shared immutable mesh
// and source image. The first failure cancels the remaining frames.
func ExportFrames(ctx context.Context, cfg Config, m *mesh.ContourMesh, bind skeleton.Pose, poses []skeleton.Pose, src *image.NRGBA) error {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("batch: mkdir output: %w", err)
	}

	total := len(poses)
	var processed atomic.Int64
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, float64(p)/elapsed)
					}
				}
			}
		}()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range poses {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			frame := render.Composite(m, bind, poses[i], src, cfg.Render)
			if err := writeFrame(cfg.OutputDir, i, frame); err != nil {
				return err
			}
			processed.Add(1)
			return nil
		})
	}

	err := g.Wait()
	close(done)
	return err
}

func writeFrame(dir string, index int, frame *image.NRGBA) error {
	outPath := filepath.Join(dir, fmt.Sprintf("frame_%04d.webp", index))
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("batch: create %s: %w", outPath, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, frame, nil); err != nil {
		return fmt.Errorf("batch: WebP encode %s: %w", outPath, err)
	}
	return nil
}
