// Package session keeps track of which user a session token belongs to.
package session

import (
	"context"
	"errors"
)

// ErrNoSession is returned when a token is missing, expired, revoked or
// otherwise unusable.
var ErrNoSession = errors.New("no session")

// Store maps opaque session tokens to user IDs.
type Store interface {
	// Save starts a session for userID and returns its token.
	Save(ctx context.Context, userID uint) (string, error)
	// Load returns the user ID behind token, or ErrNoSession.
	Load(ctx context.Context, token string) (uint, error)
	// Destroy ends the session. Destroying an unknown token is not an error.
	Destroy(ctx context.Context, token string) error
}
