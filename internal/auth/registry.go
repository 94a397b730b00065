package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// Provider is the plugin interface for a named token provider. Providers mint
// a token value to be stored as a variable and referenced from compact auth
// descriptors (e.g. --auth "bearer {{api_token}}").
type Provider interface {
	Acquire(ctx context.Context) (value string, err error)
}

// Factory builds a Provider instance from a loosely-typed spec map.
type Factory func(spec map[string]interface{}) (Provider, error)

// In-memory registry of provider factories keyed by normalized type.
var providers = map[string]Factory{}

func normalizeKey(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// Register registers a provider factory under a type key (e.g. "jwt", "oauth2").
func Register(typ string, f Factory) {
	key := normalizeKey(typ)
	if key == "" || f == nil {
		return
	}
	providers[key] = f
}

// Acquire builds a Provider from its type and spec map and mints a token value.
func Acquire(ctx context.Context, typ string, spec map[string]interface{}) (string, error) {
	f, ok := providers[normalizeKey(typ)]
	if !ok {
		return "", errors.New("auth: unsupported provider type: " + typ)
	}
	p, err := f(spec)
	if err != nil {
		return "", err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return p.Acquire(ctx)
}

// Built-in provider registrations
func init() {
	Register("jwt", func(spec map[string]interface{}) (Provider, error) {
		var c JWTConfig
		if err := mapstructure.Decode(spec, &c); err != nil {
			return nil, err
		}
		return jwtProvider{c: c}, nil
	})

	Register("oauth2", func(spec map[string]interface{}) (Provider, error) {
		var c OAuth2Config
		if err := mapstructure.Decode(spec, &c); err != nil {
			return nil, err
		}
		return oauth2Provider{c: c}, nil
	})
}
