package decision

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrProfileNotFound indicates that the requested profile is not a key of the table.
	// API layer should map this to HTTP 404 Not Found.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidTable is returned by NewTable when an entry has an empty name
	// or a partially populated record.
	ErrInvalidTable = errors.New("invalid profile table")
)

// ProfileNotFoundError carries the requested name together with the names
// that would have matched, so callers can self-correct.
type ProfileNotFoundError struct {
	Profile   string
	Available []string
}

// Error returns the user-facing message, e.g.
// "Unknown profile: 'x'. Available profiles: dev-internal, dev-public".
func (e *ProfileNotFoundError) Error() string {
	return fmt.Sprintf("Unknown profile: '%s'. Available profiles: %s",
		e.Profile, strings.Join(e.Available, ", "))
}

// Is reports whether target is ErrProfileNotFound.
func (e *ProfileNotFoundError) Is(target error) bool {
	return target == ErrProfileNotFound
}
