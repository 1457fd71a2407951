// Package repository defines the session store interface and errors.
package repository

import (
	"context"

	"github.com/okian/heft/internal/session"
)

// Store provides access to the live measurement sessions. Sessions are
// process-local; persistence is deliberately out of scope.
type Store interface {
	// Put registers a session. Returns ErrStoreFull at capacity.
	Put(ctx context.Context, s *session.Session) error

	// Get returns the session with the given id.
	// Returns ErrNotFound if the id is unknown.
	Get(ctx context.Context, id string) (*session.Session, error)

	// Delete removes a session. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string)

	// Count returns the number of live sessions.
	Count(ctx context.Context) int
}
