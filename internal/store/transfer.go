package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zeloras/ssh-manager/internal/profile"
)

// transferDocument extends the stored shape with provenance timestamps for
// exports and backups.
type transferDocument struct {
	Version         string           `json:"version"`
	ExportedAt      string           `json:"exported_at,omitempty"`
	BackupCreatedAt string           `json:"backup_created_at,omitempty"`
	Profiles        []profile.Record `json:"profiles"`
}

// Export writes the collection to an arbitrary file with an exported_at tag.
func Export(path string, profiles []*profile.Profile) error {
	doc := transferDocument{
		Version:    Version,
		ExportedAt: time.Now().Format(time.RFC3339),
		Profiles:   encode(profiles).Profiles,
	}
	return writeDocument(path, doc)
}

// Backup writes a timestamped copy of the collection under dir and returns
// the backup file path.
func Backup(dir string, profiles []*profile.Profile) (string, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	name := fmt.Sprintf("profiles_backup_%s.json", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	doc := transferDocument{
		Version:         Version,
		BackupCreatedAt: time.Now().Format(time.RFC3339),
		Profiles:        encode(profiles).Profiles,
	}
	if err := writeDocument(path, doc); err != nil {
		return "", err
	}
	return path, nil
}

// ReadFile parses a profile document from an arbitrary file. Unlike Load
// this is strict: the caller asked for this specific file, so parse and
// record failures propagate instead of degrading to empty.
func ReadFile(path string) ([]*profile.Profile, error) {
	// #nosec G304 - path is given explicitly by the user on import
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc transferDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	profiles := make([]*profile.Profile, 0, len(doc.Profiles))
	for _, rec := range doc.Profiles {
		p, err := profile.FromRecord(rec)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func writeDocument(path string, doc transferDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profiles: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
