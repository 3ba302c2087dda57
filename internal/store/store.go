package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"contour-rig/internal/mesh"
	"contour-rig/internal/skeleton"
)

// Binding is the per-character-angle persisted state: the active preset,
// the user's bone placements, and the cached mesh with weights. It is
// replaced wholesale on preset or angle change.
type Binding struct {
	PresetKind skeleton.Kind         `json:"preset_kind"`
	AngleView  string                `json:"angle_view"`
	Nodes      []skeleton.PlacedBone `json:"nodes"`
	Mesh       *mesh.ContourMesh     `json:"contour_mesh,omitempty"`
}

// Store is a filesystem asset store rooted at a directory. Character rasters
// live anywhere under the root; bindings are JSON files keyed by character
// and angle.
type Store struct {
	root string
}

// New creates a store rooted at the given directory, which must exist.
func New(root string) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("store: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("store: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("store: root is not a directory: %s", abs)
	}
	return &Store{root: abs}, nil
}

// safePath resolves a relative path against the root and rejects any result
// that escapes it (directory traversal).
func (s *Store) safePath(rel string) (string, error) {
	cleaned := filepath.Clean(rel)
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("store: absolute paths not allowed: %s", rel)
	}
	joined := filepath.Join(s.root, cleaned)
	abs, err := filepath.Abs(joined)
	if err != nil {
		return "", fmt.Errorf("store: resolve path: %w", err)
	}
	if !strings.HasPrefix(abs, s.root+string(os.PathSeparator)) && abs != s.root {
		return "", fmt.Errorf("store: path escapes root: %s", rel)
	}
	return abs, nil
}

func (s *Store) bindingPath(character, angle string) (string, error) {
	if character == "" || angle == "" {
		return "", fmt.Errorf("store: empty character or angle")
	}
	return s.safePath(filepath.Join("bindings", character, angle+".json"))
}

// SaveBinding persists a binding for a character angle. The write is
// temp-file-and-rename, so a crash or a failed regeneration never leaves a
// partially written binding behind.
func (s *Store) SaveBinding(character, angle string, b *Binding) error {
	path, err := s.bindingPath(character, angle)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("store: mkdir: %w", err)
	}

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal binding: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".binding-*.json")
	if err != nil {
		return fmt.Errorf("store: temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("store: write binding: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: close binding: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: rename binding: %w", err)
	}
	return nil
}

// LoadBinding reads a previously saved binding.
func (s *Store) LoadBinding(character, angle string) (*Binding, error) {
	path, err := s.bindingPath(character, angle)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("store: read binding %s/%s: %w", character, angle, err)
	}
	var b Binding
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("store: parse binding %s/%s: %w", character, angle, err)
	}
	return &b, nil
}
