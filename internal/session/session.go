// Package session persists the single authentication session behind a
// uniform Store interface with two interchangeable backends: an embedded
// SQLite table and a flat JSON file. The backend is chosen once, at
// composition time, from configuration.
package session

import "context"

// Session is the locally persisted proof of an authenticated user.
// At most one session exists at a time.
type Session struct {
	// LocalID is the opaque user identifier, the primary key.
	LocalID string `json:"localId"`

	Email string `json:"email"`

	// Token is the opaque credential returned by the identity endpoint.
	Token string `json:"token"`
}

// Store is the persistence contract shared by both backends.
//
// Contract:
//   - Init: prepare the backing storage; idempotent, safe on every startup.
//   - Save: upsert the session, replacing whatever was stored before.
//   - Load: return the stored session, (nil, nil) when there is none, and a
//     non-nil error only for backend or decode failures. Callers treat both
//     nil outcomes as "not signed in" but may log the error.
//   - Clear: remove any stored session; clearing an empty store succeeds.
//
// All methods honor context cancellation where the backend supports it.
type Store interface {
	Init(ctx context.Context) error
	Save(ctx context.Context, s Session) error
	Load(ctx context.Context) (*Session, error)
	Clear(ctx context.Context) error
}
