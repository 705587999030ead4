package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zeloras/ssh-manager/internal/profile"
)

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	in := []*profile.Profile{profile.New("web", "example.com", "deploy")}

	if err := Export(path, in); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if _, ok := doc["exported_at"]; !ok {
		t.Error("expected exported_at tag")
	}

	out, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(out) != 1 || out[0].Name != "web" {
		t.Errorf("unexpected import result: %v", out)
	}
}

func TestBackup(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "backups")
	in := []*profile.Profile{profile.New("web", "example.com", "deploy")}

	path, err := Backup(dir, in)
	if err != nil {
		t.Fatalf("Backup failed: %v", err)
	}
	base := filepath.Base(path)
	if !strings.HasPrefix(base, "profiles_backup_") || !strings.HasSuffix(base, ".json") {
		t.Errorf("unexpected backup file name: %q", base)
	}

	out, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(out) != 1 {
		t.Errorf("expected 1 profile in backup, got %d", len(out))
	}
}

func TestReadFileStrict(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("expected error for missing import file")
		}
	})

	t.Run("malformed record", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		doc := `{"version":"2.0","profiles":[{"name":"web"}]}`
		if err := os.WriteFile(path, []byte(doc), 0600); err != nil {
			t.Fatal(err)
		}
		_, err := ReadFile(path)
		if !errors.Is(err, profile.ErrMalformedRecord) {
			t.Errorf("expected ErrMalformedRecord, got %v", err)
		}
	})
}
