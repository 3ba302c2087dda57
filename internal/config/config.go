package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable paths and engine tunables.
type Config struct {
	// Paths
	AssetDir   string `json:"asset_dir"`
	OutputDir  string `json:"output_dir"`
	MattingURL string `json:"matting_url"`

	// Contour extraction
	ContourThreshold  int     `json:"contour_threshold"`
	MaxContourPoints  int     `json:"max_contour_points"`
	SimplifyTolerance float64 `json:"simplify_tolerance"`
	MinIslandRatio    float64 `json:"min_island_ratio"`

	// Triangulation
	MeshThreshold int `json:"mesh_threshold"`
	// ExcludeGroups maps a preset kind to the group names (or bone ids)
	// excluded from triangulation. Omitted kinds use the preset default.
	ExcludeGroups map[string][]string `json:"exclude_groups"`

	// Weights
	MaxInfluences int     `json:"max_influences"`
	WeightFloor   float64 `json:"weight_floor"`

	// Rendering
	Supersample int     `json:"supersample"`
	SeamInflate float64 `json:"seam_inflate"`
	FPS         int     `json:"fps"`
	Workers     int     `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	AssetDir   string
	OutputDir  string
	MattingURL string
	Workers    int
}

// Resolve fills in any empty fields with defaults. CLI flags take priority
// when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.AssetDir != "" {
		c.AssetDir = flags.AssetDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.MattingURL != "" {
		c.MattingURL = flags.MattingURL
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.AssetDir == "" {
		c.AssetDir = "."
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}

	if c.ContourThreshold <= 0 || c.ContourThreshold > 255 {
		c.ContourThreshold = 128
	}
	if c.MaxContourPoints <= 0 {
		c.MaxContourPoints = 180
	}
	if c.SimplifyTolerance <= 0 {
		c.SimplifyTolerance = 0.0015
	}
	if c.MinIslandRatio < 0 || c.MinIslandRatio >= 1 {
		c.MinIslandRatio = 0
	}
	if c.MeshThreshold <= 0 || c.MeshThreshold > 255 {
		c.MeshThreshold = 48
	}
	if c.MaxInfluences <= 0 {
		c.MaxInfluences = 4
	}
	if c.WeightFloor <= 0 {
		c.WeightFloor = 0.01
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.SeamInflate <= 0 {
		c.SeamInflate = 1
	}
	if c.FPS <= 0 {
		c.FPS = 30
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
