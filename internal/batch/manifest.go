package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// Manifest describes an exported frame sequence so a playback layer can
// consume the directory without globbing.
type Manifest struct {
	Character string   `json:"character,omitempty"`
	Angle     string   `json:"angle,omitempty"`
	FPS       int      `json:"fps"`
	Frames    []string `json:"frames"`
}

// WriteManifest writes manifest.json to the output directory.
func WriteManifest(path, character, angle string, fps, frameCount int) error {
	m := Manifest{
		Character: character,
		Angle:     angle,
		FPS:       fps,
		Frames:    make([]string, frameCount),
	}
	for i := range m.Frames {
		m.Frames[i] = fmt.Sprintf("frame_%04d.webp", i)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
