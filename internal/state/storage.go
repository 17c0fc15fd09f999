// Package state manages the per-user conversation context for the bot.
package state

import (
	"context"
	"errors"
)

// ErrContextNotFound indicates that no context is stored for a user.
var ErrContextNotFound = errors.New("user context not found")

// Storage defines the persistence contract for conversation contexts.
// Implementations must be safe for concurrent use; every operation touches
// exactly one user's entry, so no multi-key atomicity is required.
type Storage interface {
	// GetContext returns the stored context for the user or ErrContextNotFound.
	GetContext(ctx context.Context, psid string) (*UserContext, error)
	// SetContext overwrites (or creates) the context entry for the user.
	SetContext(ctx context.Context, psid string, userCtx *UserContext) error
	// ClearContext removes the stored context for the user.
	ClearContext(ctx context.Context, psid string) error
}
