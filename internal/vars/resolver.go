package vars

import (
	"fmt"
	"regexp"
)

// placeholderRe matches {{identifier}} tokens. The identifier is one or more
// word characters; anything else (including nested braces) is left alone so
// JSON bodies containing literal braces survive resolution.
var placeholderRe = regexp.MustCompile(`\{\{(\w+)\}\}`)

// MissingVariableError reports an unresolved placeholder in strict mode.
type MissingVariableError struct {
	Name string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("variable %q not found in saved variables", e.Name)
}

// MissingFunc supplies a value for a variable that is not in the map.
// The resolver writes the supplied value back into the map, so repeated
// occurrences within one resolution pass reuse the captured value.
type MissingFunc func(name string) (string, error)

// ResolveString expands every {{name}} token in s against m.
// With onMissing == nil the resolver is strict: the first unknown variable
// aborts with MissingVariableError. Otherwise onMissing is consulted and its
// result is both substituted and stored in m.
func ResolveString(s string, m Map, onMissing MissingFunc) (string, error) {
	var resolveErr error
	out := placeholderRe.ReplaceAllStringFunc(s, func(tok string) string {
		if resolveErr != nil {
			return tok
		}
		name := placeholderRe.FindStringSubmatch(tok)[1]
		if v, ok := m[name]; ok {
			return v
		}
		if onMissing == nil {
			resolveErr = &MissingVariableError{Name: name}
			return tok
		}
		v, err := onMissing(name)
		if err != nil {
			resolveErr = err
			return tok
		}
		m[name] = v
		return v
	})
	if resolveErr != nil {
		return "", resolveErr
	}
	return out, nil
}

// Resolve walks an arbitrary value tree (string, string-keyed map, slice,
// recursively) and returns a new tree of the same shape with placeholders
// expanded. Non-string scalars pass through unchanged.
func Resolve(v interface{}, m Map, onMissing MissingFunc) (interface{}, error) {
	switch t := v.(type) {
	case string:
		return ResolveString(t, m, onMissing)
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, vv := range t {
			rv, err := Resolve(vv, m, onMissing)
			if err != nil {
				return nil, err
			}
			out[k] = rv
		}
		return out, nil
	case map[string]string:
		out := make(map[string]string, len(t))
		for k, vv := range t {
			rv, err := ResolveString(vv, m, onMissing)
			if err != nil {
				return nil, err
			}
			out[k] = rv
		}
		return out, nil
	case []interface{}:
		out := make([]interface{}, len(t))
		for i := range t {
			rv, err := Resolve(t[i], m, onMissing)
			if err != nil {
				return nil, err
			}
			out[i] = rv
		}
		return out, nil
	default:
		return v, nil
	}
}

// ResolveStringMap expands placeholders in every value of a string map.
// Keys are not resolved; header names are literal.
func ResolveStringMap(in map[string]string, m Map, onMissing MissingFunc) (map[string]string, error) {
	out := make(map[string]string, len(in))
	for k, v := range in {
		rv, err := ResolveString(v, m, onMissing)
		if err != nil {
			return nil, err
		}
		out[k] = rv
	}
	return out, nil
}
