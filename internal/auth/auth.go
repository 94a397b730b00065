package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedAuth reports a basic-auth value without the user:pass separator.
var ErrMalformedAuth = errors.New("auth: basic value must be in the form username:password")

// UnsupportedAuthTypeError reports an auth descriptor type other than bearer/basic.
type UnsupportedAuthTypeError struct {
	Type string
}

func (e *UnsupportedAuthTypeError) Error() string {
	return fmt.Sprintf("auth: unsupported type %q (use 'bearer' or 'basic')", e.Type)
}

// ParseSpec splits a compact auth descriptor of the form "<type> <value>",
// e.g. "bearer TOKEN" or "basic user:pass". An empty descriptor is a no-op
// and yields empty type and value.
func ParseSpec(spec string) (authType, value string) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return "", ""
	}
	typ, val, found := strings.Cut(spec, " ")
	if !found {
		return typ, ""
	}
	return typ, strings.TrimSpace(val)
}

// Synthesize converts an auth type and value into a one-entry header map.
//   - bearer TOKEN      -> Authorization: Bearer TOKEN
//   - basic USER:PASS   -> Authorization: Basic base64(USER:PASS)
//
// Empty type or value yields an empty map, not an error. The caller merges the
// result over the request headers; auth always wins over a colliding header.
func Synthesize(authType, value string) (map[string]string, error) {
	if strings.TrimSpace(authType) == "" || strings.TrimSpace(value) == "" {
		return map[string]string{}, nil
	}
	switch strings.ToLower(strings.TrimSpace(authType)) {
	case "bearer":
		return map[string]string{"Authorization": "Bearer " + value}, nil
	case "basic":
		if !strings.Contains(value, ":") {
			return nil, ErrMalformedAuth
		}
		cred := base64.StdEncoding.EncodeToString([]byte(value))
		return map[string]string{"Authorization": "Basic " + cred}, nil
	default:
		return nil, &UnsupportedAuthTypeError{Type: authType}
	}
}

// SynthesizeSpec parses and synthesizes in one step.
func SynthesizeSpec(spec string) (map[string]string, error) {
	typ, val := ParseSpec(spec)
	return Synthesize(typ, val)
}
