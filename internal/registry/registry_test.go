package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/zeloras/ssh-manager/internal/logger"
	"github.com/zeloras/ssh-manager/internal/profile"
	"github.com/zeloras/ssh-manager/internal/store"
)

func newTestRegistry(t *testing.T) (*Registry, *store.Store) {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "profiles.json"))
	return Open(st, logger.Nop()), st
}

func TestAddAndFind(t *testing.T) {
	r, _ := newTestRegistry(t)

	added, err := r.Add("web", "example.com", "deploy", profile.WithPort(2222))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	found, err := r.Find("web")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if found.ID != added.ID || found.Host != "example.com" ||
		found.Username != "deploy" || found.Port != 2222 {
		t.Errorf("Find returned different profile: %+v", found)
	}
}

func TestAddDuplicate(t *testing.T) {
	r, st := newTestRegistry(t)

	orig, err := r.Add("web", "example.com", "deploy")
	if err != nil {
		t.Fatal(err)
	}

	_, err = r.Add("web", "other.example.com", "root")
	if !errors.Is(err, profile.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}

	// Original profile must be untouched, in memory and on disk.
	found, err := r.Find("web")
	if err != nil {
		t.Fatal(err)
	}
	if found.Host != "example.com" || found.ID != orig.ID {
		t.Errorf("original profile was altered: %+v", found)
	}

	persisted, err := st.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(persisted) != 1 || persisted[0].Host != "example.com" {
		t.Errorf("persisted state was altered: %+v", persisted)
	}
}

func TestRemove(t *testing.T) {
	r, st := newTestRegistry(t)

	if _, err := r.Add("web", "example.com", "deploy"); err != nil {
		t.Fatal(err)
	}

	t.Run("unknown name", func(t *testing.T) {
		err := r.Remove("nope")
		if !errors.Is(err, profile.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		persisted, err := st.Load()
		if err != nil {
			t.Fatal(err)
		}
		if len(persisted) != 1 {
			t.Errorf("persisted state changed on failed remove: %d profiles", len(persisted))
		}
	})

	t.Run("existing name", func(t *testing.T) {
		if err := r.Remove("web"); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		if _, err := r.Find("web"); !errors.Is(err, profile.ErrNotFound) {
			t.Errorf("expected profile gone, got %v", err)
		}
		persisted, err := st.Load()
		if err != nil {
			t.Fatal(err)
		}
		if len(persisted) != 0 {
			t.Errorf("expected empty persisted state, got %d", len(persisted))
		}
	})
}

func TestRename(t *testing.T) {
	r, _ := newTestRegistry(t)

	if _, err := r.Add("old", "example.com", "deploy"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Add("taken", "other.com", "deploy"); err != nil {
		t.Fatal(err)
	}

	t.Run("unknown source", func(t *testing.T) {
		if err := r.Rename("nope", "new"); !errors.Is(err, profile.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("target taken", func(t *testing.T) {
		if err := r.Rename("old", "taken"); !errors.Is(err, profile.ErrDuplicateName) {
			t.Errorf("expected ErrDuplicateName, got %v", err)
		}
	})

	t.Run("rekeys the index", func(t *testing.T) {
		if err := r.Rename("old", "new"); err != nil {
			t.Fatalf("Rename failed: %v", err)
		}
		if _, err := r.Find("old"); !errors.Is(err, profile.ErrNotFound) {
			t.Error("old key still resolves after rename")
		}
		p, err := r.Find("new")
		if err != nil {
			t.Fatalf("new key does not resolve: %v", err)
		}
		if p.Name != "new" {
			t.Errorf("Name field not updated: %q", p.Name)
		}
	})

	t.Run("rename to itself", func(t *testing.T) {
		if err := r.Rename("new", "new"); err != nil {
			t.Errorf("self-rename should succeed, got %v", err)
		}
	})
}

func TestEdit(t *testing.T) {
	r, _ := newTestRegistry(t)

	if _, err := r.Add("web", "example.com", "deploy", profile.WithPort(2222)); err != nil {
		t.Fatal(err)
	}

	host := "new.example.com"
	p, err := r.Edit("web", Update{Host: &host})
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}

	if p.Host != "new.example.com" {
		t.Errorf("host not updated: %q", p.Host)
	}
	// Unspecified fields keep previous values.
	if p.Port != 2222 || p.Username != "deploy" {
		t.Errorf("unspecified fields changed: %+v", p)
	}

	if _, err := r.Edit("nope", Update{Host: &host}); !errors.Is(err, profile.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestConnect(t *testing.T) {
	r, st := newTestRegistry(t)

	if _, err := r.Add("web", "example.com", "deploy", profile.WithPort(2222)); err != nil {
		t.Fatal(err)
	}

	t.Run("unknown name", func(t *testing.T) {
		if _, err := r.Connect("nope", false); !errors.Is(err, profile.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("dry run has no side effects", func(t *testing.T) {
		cmd, err := r.Connect("web", true)
		if err != nil {
			t.Fatalf("Connect failed: %v", err)
		}
		if cmd != "ssh deploy@example.com -p 2222" {
			t.Errorf("unexpected command: %q", cmd)
		}

		p, _ := r.Find("web")
		if p.LastUsed != "" || p.UseCount != 0 {
			t.Errorf("dry run mutated usage metadata: %q/%d", p.LastUsed, p.UseCount)
		}
	})

	t.Run("stamps usage exactly once", func(t *testing.T) {
		cmd, err := r.Connect("web", false)
		if err != nil {
			t.Fatalf("Connect failed: %v", err)
		}
		if cmd != "ssh deploy@example.com -p 2222" {
			t.Errorf("unexpected command: %q", cmd)
		}

		p, _ := r.Find("web")
		if p.LastUsed == "" || p.UseCount != 1 {
			t.Errorf("expected stamped usage, got %q/%d", p.LastUsed, p.UseCount)
		}

		// The stamp is persisted before the command is handed back.
		persisted, err := st.Load()
		if err != nil {
			t.Fatal(err)
		}
		if persisted[0].UseCount != 1 {
			t.Errorf("usage not persisted: %d", persisted[0].UseCount)
		}
	})
}

func TestOrderPreserved(t *testing.T) {
	r, st := newTestRegistry(t)

	for _, name := range []string{"charlie", "alpha", "bravo"} {
		if _, err := r.Add(name, "h", "u"); err != nil {
			t.Fatal(err)
		}
	}

	want := []string{"charlie", "alpha", "bravo"}
	got := r.Names()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("insertion order not preserved: got %v", got)
		}
	}

	// Order survives a reload.
	r2 := Open(st, logger.Nop())
	got = r2.Names()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order not preserved across reload: got %v", got)
		}
	}
}

func TestOpenCorruptStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.json")
	if err := os.WriteFile(path, []byte("{broken"), 0600); err != nil {
		t.Fatal(err)
	}

	r := Open(store.New(path), logger.Nop())
	if r.Len() != 0 {
		t.Errorf("expected empty registry from corrupt store, got %d", r.Len())
	}

	// The registry is usable after degradation.
	if _, err := r.Add("web", "example.com", "deploy"); err != nil {
		t.Errorf("Add after degraded open failed: %v", err)
	}
}

func TestImport(t *testing.T) {
	r, _ := newTestRegistry(t)

	if _, err := r.Add("web", "example.com", "deploy"); err != nil {
		t.Fatal(err)
	}

	incoming := []*profile.Profile{
		profile.New("web", "changed.example.com", "root"),
		profile.New("db", "db.example.com", "admin"),
	}

	t.Run("without overwrite", func(t *testing.T) {
		imported, err := r.Import(incoming, false)
		if err != nil {
			t.Fatal(err)
		}
		if len(imported) != 1 || imported[0] != "db" {
			t.Errorf("expected only db imported, got %v", imported)
		}
		p, _ := r.Find("web")
		if p.Host != "example.com" {
			t.Errorf("existing profile overwritten: %q", p.Host)
		}
	})

	t.Run("with overwrite", func(t *testing.T) {
		imported, err := r.Import(incoming, true)
		if err != nil {
			t.Fatal(err)
		}
		if len(imported) != 2 {
			t.Errorf("expected both imported, got %v", imported)
		}
		p, _ := r.Find("web")
		if p.Host != "changed.example.com" {
			t.Errorf("expected overwrite, got %q", p.Host)
		}
	})
}
