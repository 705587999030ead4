package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/zeloras/ssh-manager/internal/profile"
)

func TestLoadNonExistent(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "profiles.json"))

	profiles, err := s.Load()
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(profiles) != 0 {
		t.Errorf("expected empty collection, got %d profiles", len(profiles))
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	profiles, err := New(path).Load()

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
	if loadErr.Path != path {
		t.Errorf("expected path %q in error, got %q", path, loadErr.Path)
	}
	if len(profiles) != 0 {
		t.Errorf("expected empty collection on corrupt store, got %d", len(profiles))
	}
}

func TestLoadMalformedRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	// Record missing required "username".
	doc := `{"version":"2.0","profiles":[{"id":"x","name":"web","host":"example.com"}]}`
	if err := os.WriteFile(path, []byte(doc), 0600); err != nil {
		t.Fatal(err)
	}

	profiles, err := New(path).Load()

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
	if !errors.Is(err, profile.ErrMalformedRecord) {
		t.Errorf("expected wrapped ErrMalformedRecord, got %v", err)
	}
	if len(profiles) != 0 {
		t.Errorf("expected empty collection, got %d", len(profiles))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "profiles.json")
	s := New(path)

	in := []*profile.Profile{
		profile.New("web", "example.com", "deploy"),
		profile.New("db", "db.example.com", "admin",
			profile.WithPort(5432),
			profile.WithPrivateKey("~/.ssh/db"),
			profile.WithJumpHost("j@bastion"),
			profile.WithTags([]string{"prod"}),
		),
	}
	in[1].MarkUsed()

	if err := s.Save(in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	out, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d profiles, got %d", len(in), len(out))
	}
	for i := range in {
		if out[i].ID != in[i].ID || out[i].Name != in[i].Name ||
			out[i].Port != in[i].Port || out[i].LastUsed != in[i].LastUsed ||
			out[i].UseCount != in[i].UseCount {
			t.Errorf("profile %d mismatch:\n got %+v\nwant %+v", i, out[i], in[i])
		}
	}
}

func TestSaveDocumentShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	s := New(path)

	if err := s.Save([]*profile.Profile{profile.New("web", "example.com", "deploy")}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("saved file is not valid JSON: %v", err)
	}
	if _, ok := doc["version"]; !ok {
		t.Error("expected version tag in document")
	}
	if _, ok := doc["profiles"]; !ok {
		t.Error("expected profiles list in document")
	}

	// Unset optionals must serialize as null, not be omitted.
	var full struct {
		Profiles []map[string]json.RawMessage `json:"profiles"`
	}
	if err := json.Unmarshal(data, &full); err != nil {
		t.Fatal(err)
	}
	rec := full.Profiles[0]
	for _, key := range []string{"private_key_path", "jump_host", "last_used"} {
		raw, ok := rec[key]
		if !ok {
			t.Errorf("expected key %q present in record", key)
			continue
		}
		if string(raw) != "null" {
			t.Errorf("expected %q to be null, got %s", key, raw)
		}
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	s := New(path)

	if err := s.Save([]*profile.Profile{
		profile.New("one", "h1", "u"),
		profile.New("two", "h2", "u"),
	}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save([]*profile.Profile{profile.New("three", "h3", "u")}); err != nil {
		t.Fatal(err)
	}

	out, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Name != "three" {
		t.Errorf("expected full overwrite with single profile, got %v", out)
	}
}
