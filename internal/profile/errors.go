package profile

import "errors"

// Registry- and record-level failure conditions. These are returned to the
// immediate caller and never terminate the process.
var (
	// ErrDuplicateName indicates a profile with that name already exists.
	ErrDuplicateName = errors.New("profile name already exists")
	// ErrNotFound indicates no profile has that name.
	ErrNotFound = errors.New("profile not found")
	// ErrMalformedRecord indicates a persisted record is missing a required key.
	ErrMalformedRecord = errors.New("malformed profile record")
)
