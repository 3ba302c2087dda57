package main

import (
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
	character := flag.String("character", "", "Character id")
	angle := flag.String("angle", "front", "Angle view id")
	dryRun := flag.Bool("n", false, "Print suggestions without saving")

	flag.Parse()

	if *character == "" {
		fmt.Fprintln(os.Stderr, "Error: -character is required")
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

	binding, err := eng.Store().LoadBinding(*character, *angle)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading binding: %v\n", err)
		os.Exit(1)
	}
	if binding.Mesh == nil {
		fmt.Fprintln(os.Stderr, "Error: binding has no mesh; run meshgen first")
		os.Exit(1)
	}

	preset := skeleton.ByKind(binding.PresetKind)
	hint := skeleton.PoseFromBones(binding.Nodes)
	suggested := eng.SuggestBonePositions(binding.Mesh, preset, hint)

	for _, b := range suggested {
		fmt.Printf("  %-14s (%.4f, %.4f)\n", b.ID, b.Position.X, b.Position.Y)
	}
	if *dryRun {
		return
	}

	binding.Nodes = suggested
	if err := eng.Store().SaveBinding(*character, *angle, binding); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving binding: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved %d bone positions for %s/%s\n", len(suggested), *character, *angle)
}
