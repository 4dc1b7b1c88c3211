// Package store holds the verifier-side state the service package reads
// and writes across RPCs: the permanent user table and the TTL-bounded
// challenge and session tables.
package store

import (
	"github.com/google/uuid"

	"github.com/snormore/zkauth"
)

// User is the permanently-stored registration record for one username.
type User struct {
	Y1, Y2 zkauth.Element
}

// Challenge is the TTL-bounded record created by
// CreateAuthenticationChallenge and consumed by VerifyAuthentication.
type Challenge struct {
	Username string
	C        zkauth.Scalar
	R1, R2   zkauth.Element
}

// Session is the TTL-bounded record created by a successful
// VerifyAuthentication call.
type Session struct {
	ID uuid.UUID
}

// Store is the persistence boundary the service package depends on. A
// conforming implementation must be safe for concurrent use.
type Store interface {
	InsertUser(username string, user User)
	GetUser(username string) (User, bool)

	InsertChallenge(authID uuid.UUID, challenge Challenge)
	GetChallenge(authID uuid.UUID) (Challenge, bool)

	InsertSession(key string, session Session)
	GetSession(key string) (Session, bool)
}
