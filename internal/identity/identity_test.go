package identity

import (
	"context"
	"errors"
	"testing"
)

func TestStaticVerifier(t *testing.T) {
	v := NewStaticVerifier(map[string]Identity{
		"tok-1": {ID: "u1", Email: "u1@example.com"},
	})
	ctx := context.Background()

	id, err := v.Verify(ctx, "tok-1")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id.ID != "u1" || id.Email != "u1@example.com" {
		t.Errorf("identity = %+v", id)
	}

	if _, err := v.Verify(ctx, "wrong"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := v.Verify(ctx, ""); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("empty token: expected ErrUnauthorized, got %v", err)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("OYUNSANAA_SESSION_TOKEN", "tok-env")
	t.Setenv("OYUNSANAA_USER_ID", "env-user")
	t.Setenv("OYUNSANAA_USER_EMAIL", "env@example.com")

	v, token, ok := FromEnv()
	if !ok {
		t.Fatal("expected verifier from env")
	}
	if token != "tok-env" {
		t.Errorf("token = %q", token)
	}
	id, err := v.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id.ID != "env-user" {
		t.Errorf("id = %+v", id)
	}
}

func TestFromEnvUnset(t *testing.T) {
	t.Setenv("OYUNSANAA_SESSION_TOKEN", "")
	if _, _, ok := FromEnv(); ok {
		t.Fatal("expected no verifier without a token")
	}
}
