package ingest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Manifest is the per-book record written at ingest time. Page checksums let
// a re-ingest detect changed page text without re-reading every file.
type Manifest struct {
	BookID string         `yaml:"book_id"`
	Title  string         `yaml:"title"`
	Author string         `yaml:"author,omitempty"`
	Pages  []ManifestPage `yaml:"pages"`
}

// ManifestPage records one page's identity.
type ManifestPage struct {
	PageNumber int    `yaml:"page_number"`
	Checksum   string `yaml:"checksum"` // xxhash64 of the page text, hex
}

// Write marshals the manifest to path.
func (m *Manifest) Write(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// ReadManifest loads a manifest from path.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}
