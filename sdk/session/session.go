// Package session implements the client-side authentication session
// lifecycle: token storage, scheduled silent refresh, and the HTTP transport
// that attaches credentials to outgoing requests and recovers-- exactly
// once-- from authorization failures.
package session

import (
	"time"

	"github.com/assetgrid/assetgrid/sdk"
)

// State is a point-in-time snapshot of the session. Zero values mean "not
// set"; an unauthenticated session is all zero values.
type State struct {
	// AccessToken is the bearer credential attached to outgoing requests.
	AccessToken string
	// RefreshToken is the credential used to mint a new access token.
	RefreshToken string
	// ExpiresAt indicates when AccessToken becomes invalid. The zero value
	// means the backend never said.
	ExpiresAt time.Time
	// User is the authenticated user's profile.
	User *sdk.User
	// Authenticated is true only after a successful login or refresh.
	Authenticated bool
	// Error is the message from the most recent failed login attempt.
	Error string
}

// PersistedSession is the on-disk form of a session, written on every state
// change and read once at startup.
type PersistedSession struct {
	User            *sdk.User `json:"user,omitempty"`
	AccessToken     string    `json:"accessToken,omitempty"`
	RefreshToken    string    `json:"refreshToken,omitempty"`
	IsAuthenticated bool      `json:"isAuthenticated"`
	// ExpiresAt is epoch milliseconds. Zero means unknown.
	ExpiresAt int64 `json:"expiresAt,omitempty"`
}

// Store persists sessions between runs.
type Store interface {
	// Load returns the persisted session, or nil if there isn't one.
	Load() (*PersistedSession, error)
	// Save persists the session. Implementations also mirror the bare access
	// token somewhere cheap for consumers that only need the credential.
	Save(PersistedSession) error
	// Clear removes all persisted session data. Clearing an already-empty
	// store is not an error.
	Clear() error
}
