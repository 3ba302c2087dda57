package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"contour-rig/internal/config"
	"contour-rig/internal/engine"
)

// Debugging tool: extract and dump a silhouette contour without touching
// bindings.
func main() {
	assetDir := flag.String("data", "", "Asset store root directory")
	imagePath := flag.String("image", "", "Character raster, relative to the store root")
	threshold := flag.Int("threshold", 0, "Alpha threshold override (1-255)")
	useMatting := flag.Bool("matting", false, "Run the image through the matting service first")
	mattingURL := flag.String("matting-url", "", "Matting service base URL")
	asJSON := flag.Bool("json", false, "Dump points as JSON instead of a summary")

	flag.Parse()

	if *imagePath == "" {
		fmt.Fprintln(os.Stderr, "Error: -image is required")
		os.Exit(1)
	}

	var cfg config.Config
	cfg.Resolve(config.Flags{AssetDir: *assetDir, MattingURL: *mattingURL})

	eng, err := engine.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	img, err := eng.PrepareImage(context.Background(), *imagePath, *useMatting)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error preparing image: %v\n", err)
		os.Exit(1)
	}

	points := eng.ExtractContour(img, uint8(*threshold))
	if len(points) < 3 {
		fmt.Fprintf(os.Stderr, "No usable contour (%d points). Provide a transparent PNG/WebP or use -matting.\n", len(points))
		os.Exit(1)
	}

	if *asJSON {
		if err := json.NewEncoder(os.Stdout).Encode(points); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	fmt.Printf("%d contour points, bbox (%.4f, %.4f)-(%.4f, %.4f)\n", len(points), minX, minY, maxX, maxY)
}
