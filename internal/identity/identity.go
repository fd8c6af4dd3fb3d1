// Package identity defines the session-identity boundary. The real
// authentication provider lives outside this codebase; everything here
// resolves a verified token into a plain value object exactly once, at
// the edge, so business logic never re-derives who the user is.
package identity

import (
	"context"
	"errors"
	"os"
	"strings"
)

// ErrUnauthorized indicates no valid session identity at a boundary
// that requires one. It is surfaced to the caller explicitly, never
// silently downgraded to a guest.
var ErrUnauthorized = errors.New("no valid session identity")

// Identity is the resolved session identity. Plain data, passed down
// by value after boundary resolution.
type Identity struct {
	ID    string
	Email string
}

// Verifier resolves a session token into an Identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

// StaticVerifier verifies tokens against a fixed token -> identity map.
// It stands in for the external auth provider in single-user and test
// deployments.
type StaticVerifier struct {
	tokens map[string]Identity
}

// NewStaticVerifier creates a verifier over a fixed token set.
func NewStaticVerifier(tokens map[string]Identity) *StaticVerifier {
	return &StaticVerifier{tokens: tokens}
}

func (v *StaticVerifier) Verify(_ context.Context, token string) (Identity, error) {
	id, ok := v.tokens[token]
	if !ok || token == "" {
		return Identity{}, ErrUnauthorized
	}
	return id, nil
}

// FromEnv builds a StaticVerifier from OYUNSANAA_SESSION_TOKEN,
// OYUNSANAA_USER_ID, and OYUNSANAA_USER_EMAIL. Returns false when no
// token is configured.
func FromEnv() (*StaticVerifier, string, bool) {
	token := strings.TrimSpace(os.Getenv("OYUNSANAA_SESSION_TOKEN"))
	if token == "" {
		return nil, "", false
	}
	id := Identity{
		ID:    strings.TrimSpace(os.Getenv("OYUNSANAA_USER_ID")),
		Email: strings.TrimSpace(os.Getenv("OYUNSANAA_USER_EMAIL")),
	}
	if id.ID == "" {
		id.ID = "local-user"
	}
	return NewStaticVerifier(map[string]Identity{token: id}), token, true
}
