// Package store persists the profile collection as a JSON document.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeloras/ssh-manager/internal/profile"
)

// Version is the advisory document version tag written on save. Load does
// not branch on it; historical shapes are handled by record defaulting.
const Version = "2.0"

// document is the stored file shape.
type document struct {
	Version  string           `json:"version"`
	Profiles []profile.Record `json:"profiles"`
}

// LoadError reports an unreadable or unparsable store. It is non-fatal by
// contract: the caller proceeds with an empty collection.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading profiles from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Store reads and writes the profile document at a fixed path.
type Store struct {
	path string
}

// New creates a store for the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the store's file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the profile collection. A missing file yields an empty slice
// and no error. An unreadable file, invalid JSON, or a record missing a
// required key yields an empty slice and a *LoadError; the process is never
// expected to treat that as fatal.
func (s *Store) Load() ([]*profile.Profile, error) {
	// #nosec G304 - path comes from the user's own config directory
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*profile.Profile{}, nil
		}
		return []*profile.Profile{}, &LoadError{Path: s.path, Err: err}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return []*profile.Profile{}, &LoadError{Path: s.path, Err: err}
	}

	profiles := make([]*profile.Profile, 0, len(doc.Profiles))
	for _, rec := range doc.Profiles {
		p, err := profile.FromRecord(rec)
		if err != nil {
			return []*profile.Profile{}, &LoadError{Path: s.path, Err: err}
		}
		profiles = append(profiles, p)
	}

	return profiles, nil
}

// Save writes the full collection, creating parent directories as needed.
// The previous file is overwritten in place; multi-process writers get
// last-writer-wins semantics at whole-document granularity.
func (s *Store) Save(profiles []*profile.Profile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create profile directory: %w", err)
	}

	data, err := json.MarshalIndent(encode(profiles), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profiles: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write profile file: %w", err)
	}

	return nil
}

func encode(profiles []*profile.Profile) document {
	doc := document{
		Version:  Version,
		Profiles: make([]profile.Record, 0, len(profiles)),
	}
	for _, p := range profiles {
		doc.Profiles = append(doc.Profiles, p.ToRecord())
	}
	return doc
}
