package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestAcquire_UnknownProvider(t *testing.T) {
	_, err := Acquire(context.Background(), "nope", map[string]interface{}{})
	if err == nil || !strings.Contains(err.Error(), "unsupported provider type") {
		t.Fatalf("expected unsupported provider error, got %v", err)
	}
}

func TestAcquire_JWTMintsVerifiableToken(t *testing.T) {
	spec := map[string]interface{}{
		"secret":      "s3cret",
		"sub":         "postmaker",
		"ttl_seconds": 60,
		"custom":      map[string]interface{}{"scope": "test"},
	}
	tok, err := Acquire(context.Background(), "jwt", spec)
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	parsed, err := jwt.Parse(tok, func(tk *jwt.Token) (interface{}, error) {
		return []byte("s3cret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("minted token failed verification: %v", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("unexpected claims type %T", parsed.Claims)
	}
	if claims["sub"] != "postmaker" || claims["scope"] != "test" {
		t.Fatalf("unexpected claims: %#v", claims)
	}
}

func TestAcquire_JWTRequiresSecret(t *testing.T) {
	_, err := Acquire(context.Background(), "jwt", map[string]interface{}{})
	if err == nil || !strings.Contains(err.Error(), "secret required") {
		t.Fatalf("expected secret required error, got %v", err)
	}
}

func TestAcquire_OAuth2RequiresTokenURL(t *testing.T) {
	spec := map[string]interface{}{"client_id": "a", "client_secret": "b"}
	_, err := Acquire(context.Background(), "oauth2", spec)
	if err == nil || !strings.Contains(err.Error(), "token_url") {
		t.Fatalf("expected token_url error, got %v", err)
	}
}
