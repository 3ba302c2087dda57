package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"contour-rig/internal/config"
	"contour-rig/internal/engine"
	"contour-rig/internal/skeleton"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	assetDir := flag.String("data", "", "Asset store root directory")
	imagePath := flag.String("image", "", "Character raster, relative to the store root (PNG/WebP/TGA)")
	character := flag.String("character", "", "Character id")
	angle := flag.String("angle", "front", "Angle view id")
	preset := flag.String("preset", "human", "Skeleton preset kind (human/animal/bird)")
	useMatting := flag.Bool("matting", false, "Run the image through the matting service first")
	fromBinding := flag.Bool("from-binding", false, "Reuse bone positions from the saved binding instead of preset defaults")

	flag.Parse()

	if *imagePath == "" || *character == "" {
		fmt.Fprintln(os.Stderr, "Error: -image and -character are required")
		os.Exit(1)
	}

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{AssetDir: *assetDir})

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

	kind := skeleton.Kind(*preset)
	bones := skeleton.ByKind(kind).DefaultPlacement()
	if *fromBinding {
		b, err := eng.Store().LoadBinding(*character, *angle)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading binding: %v\n", err)
			os.Exit(1)
		}
		kind = b.PresetKind
		bones = b.Nodes
	}

	binding, err := eng.Rebind(img, *character, *angle, bones, kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating mesh: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated mesh for %s/%s: %d vertices, %d triangles\n",
		*character, *angle, len(binding.Mesh.Vertices), len(binding.Mesh.Triangles))
}
