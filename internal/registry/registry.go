// Package registry owns the in-memory profile collection and its identity
// rules. Every mutation is persisted through the store before returning.
package registry

import (
	"fmt"

	"github.com/zeloras/ssh-manager/internal/logger"
	"github.com/zeloras/ssh-manager/internal/profile"
	"github.com/zeloras/ssh-manager/internal/store"
)

// Registry maps unique profile names to profiles, preserving insertion
// order. Name lookups go through an index that is rebuilt whenever the
// key set changes, so a rename can never leave a stale entry behind.
type Registry struct {
	store    *store.Store
	log      logger.Logger
	profiles []*profile.Profile
	index    map[string]int
}

// Open loads the registry from the store. A corrupt or unreadable store is
// reported as a warning and degrades to an empty registry; the caller
// always gets a usable value.
func Open(st *store.Store, log logger.Logger) *Registry {
	r := &Registry{store: st, log: log}

	profiles, err := st.Load()
	if err != nil {
		log.Warnf("starting with an empty registry: %v", err)
	}
	r.profiles = profiles
	r.rebuildIndex()

	return r
}

// Update describes a partial profile edit. Nil fields are left untouched.
type Update struct {
	Host           *string
	Username       *string
	Port           *int
	PrivateKeyPath *string
	JumpHost       *string
	Description    *string
	Tags           *[]string
}

// Add creates a profile and inserts it under its name.
func (r *Registry) Add(name, host, username string, opts ...profile.Option) (*profile.Profile, error) {
	if _, ok := r.index[name]; ok {
		return nil, fmt.Errorf("%w: %q", profile.ErrDuplicateName, name)
	}

	p := profile.New(name, host, username, opts...)
	r.profiles = append(r.profiles, p)
	r.index[name] = len(r.profiles) - 1

	if err := r.persist(); err != nil {
		return nil, err
	}
	r.log.Debugf("added profile %q (%s)", name, p.Target())
	return p, nil
}

// Remove deletes a profile by name. Removal from the registry is the only
// deletion path; there is no tombstoning.
func (r *Registry) Remove(name string) error {
	i, ok := r.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", profile.ErrNotFound, name)
	}

	r.profiles = append(r.profiles[:i], r.profiles[i+1:]...)
	r.rebuildIndex()

	if err := r.persist(); err != nil {
		return err
	}
	r.log.Debugf("removed profile %q", name)
	return nil
}

// Rename changes a profile's registry key and its Name field.
func (r *Registry) Rename(oldName, newName string) error {
	i, ok := r.index[oldName]
	if !ok {
		return fmt.Errorf("%w: %q", profile.ErrNotFound, oldName)
	}
	if _, taken := r.index[newName]; taken && newName != oldName {
		return fmt.Errorf("%w: %q", profile.ErrDuplicateName, newName)
	}

	r.profiles[i].Name = newName
	r.rebuildIndex()

	return r.persist()
}

// Edit applies a partial update; unspecified fields keep their values.
func (r *Registry) Edit(name string, upd Update) (*profile.Profile, error) {
	i, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", profile.ErrNotFound, name)
	}

	p := r.profiles[i]
	if upd.Host != nil {
		p.Host = *upd.Host
	}
	if upd.Username != nil {
		p.Username = *upd.Username
	}
	if upd.Port != nil {
		p.Port = *upd.Port
	}
	if upd.PrivateKeyPath != nil {
		p.PrivateKeyPath = *upd.PrivateKeyPath
	}
	if upd.JumpHost != nil {
		p.JumpHost = *upd.JumpHost
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Tags != nil {
		p.Tags = append([]string{}, *upd.Tags...)
	}

	if err := r.persist(); err != nil {
		return nil, err
	}
	return p, nil
}

// Find returns the profile with the given name.
func (r *Registry) Find(name string) (*profile.Profile, error) {
	i, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", profile.ErrNotFound, name)
	}
	return r.profiles[i], nil
}

// List returns the profiles in registry order.
func (r *Registry) List() []*profile.Profile {
	return append([]*profile.Profile(nil), r.profiles...)
}

// Names returns the profile names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.profiles))
	for i, p := range r.profiles {
		names[i] = p.Name
	}
	return names
}

// Len returns the number of profiles.
func (r *Registry) Len() int {
	return len(r.profiles)
}

// Connect resolves a profile to its ssh command line. With dryRun the call
// has no side effects. Otherwise the profile's usage metadata is stamped
// exactly once and persisted before the command is handed back; whether
// the subsequent process invocation succeeds is the caller's concern.
func (r *Registry) Connect(name string, dryRun bool) (string, error) {
	p, err := r.Find(name)
	if err != nil {
		return "", err
	}

	cmd := p.BuildCommand()
	if dryRun {
		return cmd, nil
	}

	p.MarkUsed()
	if err := r.persist(); err != nil {
		return "", err
	}
	r.log.Debugf("connect %q: %s", name, cmd)
	return cmd, nil
}

// Import merges externally read profiles into the registry. Names already
// present are skipped unless overwrite is set. Returns the imported names.
func (r *Registry) Import(profiles []*profile.Profile, overwrite bool) ([]string, error) {
	imported := make([]string, 0, len(profiles))
	for _, p := range profiles {
		if i, ok := r.index[p.Name]; ok {
			if !overwrite {
				continue
			}
			r.profiles[i] = p
		} else {
			r.profiles = append(r.profiles, p)
			r.index[p.Name] = len(r.profiles) - 1
		}
		imported = append(imported, p.Name)
	}

	if err := r.persist(); err != nil {
		return nil, err
	}
	return imported, nil
}

func (r *Registry) persist() error {
	return r.store.Save(r.profiles)
}

func (r *Registry) rebuildIndex() {
	r.index = make(map[string]int, len(r.profiles))
	for i, p := range r.profiles {
		r.index[p.Name] = i
	}
}
