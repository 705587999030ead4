package profile

import (
	"fmt"
	"time"
)

// Record is the flat on-disk shape of a profile. Optional fields are
// pointers so that absent keys can be told apart from zero values; unknown
// extra keys are ignored by the decoder.
type Record struct {
	ID             *string  `json:"id"`
	Name           *string  `json:"name"`
	Host           *string  `json:"host"`
	Username       *string  `json:"username"`
	Port           *int     `json:"port"`
	PrivateKeyPath *string  `json:"private_key_path"`
	JumpHost       *string  `json:"jump_host"`
	Description    *string  `json:"description"`
	Tags           []string `json:"tags"`
	CreatedAt      *string  `json:"created_at"`
	LastUsed       *string  `json:"last_used"`
	UseCount       *int     `json:"use_count"`
}

// ToRecord produces the canonical serialized form. Unset optionals are
// emitted as null, matching the stored document contract.
func (p *Profile) ToRecord() Record {
	return Record{
		ID:             ptr(p.ID),
		Name:           ptr(p.Name),
		Host:           ptr(p.Host),
		Username:       ptr(p.Username),
		Port:           ptr(p.Port),
		PrivateKeyPath: optional(p.PrivateKeyPath),
		JumpHost:       optional(p.JumpHost),
		Description:    optional(p.Description),
		Tags:           append([]string{}, p.Tags...),
		CreatedAt:      ptr(p.CreatedAt),
		LastUsed:       optional(p.LastUsed),
		UseCount:       ptr(p.UseCount),
	}
}

// FromRecord reconstructs a profile from a stored record. The required keys
// are id, name, host and username; everything else falls back to documented
// defaults so that older document shapes keep loading.
func FromRecord(r Record) (*Profile, error) {
	for _, req := range []struct {
		key   string
		value *string
	}{
		{"id", r.ID},
		{"name", r.Name},
		{"host", r.Host},
		{"username", r.Username},
	} {
		if req.value == nil {
			return nil, fmt.Errorf("%w: missing %q", ErrMalformedRecord, req.key)
		}
	}

	p := &Profile{
		ID:       *r.ID,
		Name:     *r.Name,
		Host:     *r.Host,
		Username: *r.Username,
		Port:     DefaultPort,
		Tags:     []string{},
	}

	if r.Port != nil {
		p.Port = *r.Port
	}
	if r.PrivateKeyPath != nil {
		p.PrivateKeyPath = *r.PrivateKeyPath
	}
	if r.JumpHost != nil {
		p.JumpHost = *r.JumpHost
	}
	if r.Description != nil && *r.Description != "" {
		p.Description = *r.Description
	} else {
		p.Description = fmt.Sprintf("SSH connection to %s", p.Host)
	}
	if r.Tags != nil {
		p.Tags = append([]string{}, r.Tags...)
	}
	if r.CreatedAt != nil {
		p.CreatedAt = *r.CreatedAt
	} else {
		p.CreatedAt = timeNow().Format(time.RFC3339)
	}
	if r.LastUsed != nil {
		p.LastUsed = *r.LastUsed
	}
	if r.UseCount != nil {
		p.UseCount = *r.UseCount
	}

	return p, nil
}

func ptr[T any](v T) *T {
	return &v
}

// optional maps "" to null so unset fields round-trip as absent values.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
