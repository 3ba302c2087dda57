package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.AssetDir != "." || cfg.OutputDir != "renders" {
		t.Errorf("paths = %q, %q", cfg.AssetDir, cfg.OutputDir)
	}
	if cfg.ContourThreshold != 128 || cfg.MeshThreshold != 48 {
		t.Errorf("thresholds = %d, %d", cfg.ContourThreshold, cfg.MeshThreshold)
	}
	if cfg.MaxContourPoints != 180 || cfg.SimplifyTolerance != 0.0015 {
		t.Errorf("contour tuning = %d, %v", cfg.MaxContourPoints, cfg.SimplifyTolerance)
	}
	if cfg.MaxInfluences != 4 || cfg.WeightFloor != 0.01 {
		t.Errorf("weight tuning = %d, %v", cfg.MaxInfluences, cfg.WeightFloor)
	}
	if cfg.Supersample != 2 || cfg.SeamInflate != 1 || cfg.FPS != 30 {
		t.Errorf("render tuning = %d, %v, %d", cfg.Supersample, cfg.SeamInflate, cfg.FPS)
	}
	if cfg.Workers <= 0 {
		t.Errorf("workers = %d", cfg.Workers)
	}
}

func TestResolveFlagsOverride(t *testing.T) {
	cfg := Config{AssetDir: "from-file", Workers: 2}
	cfg.Resolve(Flags{AssetDir: "from-flag", OutputDir: "out", Workers: 7})

	if cfg.AssetDir != "from-flag" {
		t.Errorf("AssetDir = %q", cfg.AssetDir)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.Workers != 7 {
		t.Errorf("Workers = %d", cfg.Workers)
	}
}

func TestResolveRejectsOutOfRange(t *testing.T) {
	cfg := Config{ContourThreshold: 999, MeshThreshold: -3, MinIslandRatio: 1.5}
	cfg.Resolve(Flags{})

	if cfg.ContourThreshold != 128 {
		t.Errorf("ContourThreshold = %d", cfg.ContourThreshold)
	}
	if cfg.MeshThreshold != 48 {
		t.Errorf("MeshThreshold = %d", cfg.MeshThreshold)
	}
	if cfg.MinIslandRatio != 0 {
		t.Errorf("MinIslandRatio = %v", cfg.MinIslandRatio)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
  "asset_dir": "assets",
  "matting_url": "http://127.0.0.1:7870",
  "contour_threshold": 100,
  "exclude_groups": {"human": ["extremities", "jaw"]}
}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AssetDir != "assets" || cfg.MattingURL != "http://127.0.0.1:7870" {
		t.Errorf("paths = %q, %q", cfg.AssetDir, cfg.MattingURL)
	}
	if cfg.ContourThreshold != 100 {
		t.Errorf("ContourThreshold = %d", cfg.ContourThreshold)
	}
	if got := cfg.ExcludeGroups["human"]; len(got) != 2 || got[1] != "jaw" {
		t.Errorf("ExcludeGroups = %v", cfg.ExcludeGroups)
	}

	cfg.Resolve(Flags{})
	if cfg.ContourThreshold != 100 {
		t.Errorf("Resolve clobbered ContourThreshold: %d", cfg.ContourThreshold)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("Load succeeded for a missing file")
	}
}

func TestLoadBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load succeeded for malformed JSON")
	}
}
