// Package storage persists strain records as individual JSON snapshot
// artifacts named after the strain's display name.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jfcharron/sqdc-strain-scraper/internal/models"
)

// SnapshotStore writes one artifact per strain under a base directory.
type SnapshotStore struct {
	dir string
}

func NewSnapshotStore(dir string) (*SnapshotStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return &SnapshotStore{dir: dir}, nil
}

// Save writes the strain's snapshot. The artifact is named after the display
// name, so the strain must be fully processed.
func (s *SnapshotStore) Save(strain *models.Strain) error {
	if !strain.IsProcessed() {
		return fmt.Errorf("strain %s is not fully processed", strain.SKU)
	}

	data, err := json.MarshalIndent(strain, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal strain %s: %w", strain.SKU, err)
	}

	path := s.path(strain.Name)

	// Write to temp file first for atomicity.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to finalize snapshot: %w", err)
	}

	return nil
}

// SaveAll persists every processed strain, skipping incomplete ones.
func (s *SnapshotStore) SaveAll(strains []*models.Strain) (int, error) {
	saved := 0
	for _, strain := range strains {
		if !strain.IsProcessed() {
			continue
		}
		if err := s.Save(strain); err != nil {
			return saved, err
		}
		saved++
	}
	return saved, nil
}

// Load reads a snapshot back by display name, reproducing an equivalent
// strain.
func (s *SnapshotStore) Load(name string) (*models.Strain, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %q: %w", name, err)
	}

	var strain models.Strain
	if err := json.Unmarshal(data, &strain); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot %q: %w", name, err)
	}
	return &strain, nil
}

func (s *SnapshotStore) path(name string) string {
	return filepath.Join(s.dir, sanitizeName(name)+".json")
}

// sanitizeName makes a display name safe to use as a file name.
func sanitizeName(name string) string {
	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"\"", "-",
		"<", "-",
		">", "-",
		"|", "-",
	)
	return strings.TrimSpace(replacer.Replace(name))
}
