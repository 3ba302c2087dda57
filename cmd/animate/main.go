package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"contour-rig/internal/batch"
	"contour-rig/internal/config"
	"contour-rig/internal/engine"
	"contour-rig/internal/skeleton"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	assetDir := flag.String("data", "", "Asset store root directory")
	imagePath := flag.String("image", "", "Character raster, relative to the store root")
	character := flag.String("character", "", "Character id")
	angle := flag.String("angle", "front", "Angle view id")
	targetPath := flag.String("target", "", "Target pose JSON file (boneId -> {X,Y})")
	frames := flag.Int("frames", 30, "Number of frames to render")
	outputDir := flag.String("output", "", "Output directory")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

	flag.Parse()

	if *imagePath == "" || *character == "" || *targetPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -image, -character and -target are required")
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
	cfg.Resolve(config.Flags{AssetDir: *assetDir, OutputDir: *outputDir, Workers: *workers})

	eng, err := engine.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	binding, err := eng.Store().LoadBinding(*character, *angle)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading binding: %v\n", err)
		os.Exit(1)
	}
	if binding.Mesh == nil {
		fmt.Fprintln(os.Stderr, "Error: binding has no mesh; run meshgen first")
		os.Exit(1)
	}

	img, err := eng.PrepareImage(context.Background(), *imagePath, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error preparing image: %v\n", err)
		os.Exit(1)
	}

	targetData, err := os.ReadFile(*targetPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading target pose: %v\n", err)
		os.Exit(1)
	}
	var target skeleton.Pose
	if err := json.Unmarshal(targetData, &target); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing target pose: %v\n", err)
		os.Exit(1)
	}

	bind := skeleton.PoseFromBones(binding.Nodes)
	poses := make([]skeleton.Pose, *frames)
	for i := range poses {
		t := 0.0
		if *frames > 1 {
			t = float64(i) / float64(*frames-1)
		}
		poses[i] = skeleton.Lerp(bind, target, t)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	bcfg := batch.Config{
		OutputDir: cfg.OutputDir,
		Workers:   cfg.Workers,
		Render:    eng.RenderOptions(),
		Progress:  true,
	}
	if err := batch.ExportFrames(ctx, bcfg, binding.Mesh, bind, poses, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting frames: %v\n", err)
		os.Exit(1)
	}
	if err := batch.WriteManifest(filepath.Join(cfg.OutputDir, "manifest.json"), *character, *angle, cfg.FPS, *frames); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing manifest: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d frames to %s in %.1fs\n", *frames, cfg.OutputDir, time.Since(start).Seconds())
}
