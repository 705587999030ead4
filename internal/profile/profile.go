// Package profile provides the SSH profile entity and its canonical
// serialized representation.
package profile

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultPort is the SSH port assumed when none is given.
const DefaultPort = 22

// timeNow is overridable in tests.
var timeNow = time.Now

// Profile represents one SSH connection bookmark.
//
// The entity is deliberately permissive: ports are not range-checked and
// key paths are not checked for existence. Validate exists as a separate
// pass for interactive front ends that want those checks.
type Profile struct {
	// ID is the unique identifier, generated at creation and never reused.
	ID string
	// Name is the user-chosen label and the uniqueness key in a registry.
	Name string
	// Host is the SSH host to connect to.
	Host string
	// Username is the SSH login user.
	Username string
	// Port is the SSH port (DefaultPort when unset).
	Port int
	// PrivateKeyPath is an optional identity file path ("" when unset).
	PrivateKeyPath string
	// JumpHost is an optional jump host in user@host[:port] form, kept opaque.
	JumpHost string
	// Description is a free-form label, defaulted from Host when empty.
	Description string
	// Tags is an optional ordered list of labels.
	Tags []string
	// CreatedAt is an ISO-8601 timestamp set once at construction.
	CreatedAt string
	// LastUsed is an ISO-8601 timestamp of the last connect ("" when never).
	LastUsed string
	// UseCount is the number of connects recorded against this profile.
	UseCount int
}

// Option configures optional fields at construction.
type Option func(*Profile)

// WithPort sets the SSH port.
func WithPort(port int) Option {
	return func(p *Profile) {
		p.Port = port
	}
}

// WithPrivateKey sets the identity file path.
func WithPrivateKey(path string) Option {
	return func(p *Profile) {
		p.PrivateKeyPath = path
	}
}

// WithJumpHost sets the jump host.
func WithJumpHost(jump string) Option {
	return func(p *Profile) {
		p.JumpHost = jump
	}
}

// WithDescription sets the description.
func WithDescription(desc string) Option {
	return func(p *Profile) {
		p.Description = desc
	}
}

// WithTags sets the tag list.
func WithTags(tags []string) Option {
	return func(p *Profile) {
		p.Tags = tags
	}
}

// New creates a profile with a fresh ID and creation timestamp.
// An empty description defaults to "SSH connection to <host>".
func New(name, host, username string, opts ...Option) *Profile {
	p := &Profile{
		ID:       uuid.NewString(),
		Name:     name,
		Host:     host,
		Username: username,
		Port:     DefaultPort,
		Tags:     []string{},
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.Description == "" {
		p.Description = fmt.Sprintf("SSH connection to %s", host)
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	p.CreatedAt = timeNow().Format(time.RFC3339)

	return p
}

// MarkUsed stamps the last-used timestamp and increments the use counter.
func (p *Profile) MarkUsed() {
	p.LastUsed = timeNow().Format(time.RFC3339)
	p.UseCount++
}

// Target returns the user@host:port form used in listings.
func (p *Profile) Target() string {
	return fmt.Sprintf("%s@%s:%d", p.Username, p.Host, p.Port)
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	c := *p
	c.Tags = append([]string(nil), p.Tags...)
	return &c
}

// Validate is the optional strictness pass for interactive input. The
// registry never calls it; stored values stay permissive.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	if p.Host == "" {
		return fmt.Errorf("host is required")
	}
	if p.Username == "" {
		return fmt.Errorf("username is required")
	}
	if p.Port < 1 || p.Port > 65535 {
		return fmt.Errorf("port %d is outside the valid range 1-65535", p.Port)
	}
	return nil
}
