package vars

import (
	"errors"
	"reflect"
	"testing"
)

func TestResolveString_NoTokensUnchanged(t *testing.T) {
	m := Map{"x": "1"}
	out, err := ResolveString("plain text, no tokens", m, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "plain text, no tokens" {
		t.Fatalf("expected unchanged string, got %q", out)
	}
}

func TestResolveString_ReplacesAllOccurrences(t *testing.T) {
	m := Map{"host": "api.local", "port": "8080"}
	out, err := ResolveString("https://{{host}}:{{port}}/v1?h={{host}}", m, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "https://api.local:8080/v1?h=api.local" {
		t.Fatalf("unexpected resolution: %q", out)
	}
}

func TestResolveString_StrictMissingVariable(t *testing.T) {
	m := Map{}
	_, err := ResolveString("https://{{host}}/api", m, nil)
	if err == nil {
		t.Fatalf("expected MissingVariableError")
	}
	var mv *MissingVariableError
	if !errors.As(err, &mv) {
		t.Fatalf("expected MissingVariableError, got %T: %v", err, err)
	}
	if mv.Name != "host" {
		t.Fatalf("expected missing variable 'host', got %q", mv.Name)
	}
}

func TestResolveString_MissingFuncCapturesValue(t *testing.T) {
	m := Map{}
	calls := 0
	onMissing := func(name string) (string, error) {
		calls++
		return "captured-" + name, nil
	}
	out, err := ResolveString("{{tok}} and again {{tok}}", m, onMissing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "captured-tok and again captured-tok" {
		t.Fatalf("unexpected resolution: %q", out)
	}
	if calls != 1 {
		t.Fatalf("expected a single prompt for repeated variable, got %d", calls)
	}
	if m["tok"] != "captured-tok" {
		t.Fatalf("expected captured value stored in map, got %q", m["tok"])
	}
}

func TestResolve_TreeShapePreserved(t *testing.T) {
	m := Map{"name": "alice", "id": "42"}
	in := map[string]interface{}{
		"user":  "{{name}}",
		"count": float64(3),
		"tags":  []interface{}{"{{id}}", true, nil},
		"nested": map[string]interface{}{
			"path": "/users/{{id}}",
		},
	}
	out, err := Resolve(in, m, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]interface{}{
		"user":  "alice",
		"count": float64(3),
		"tags":  []interface{}{"42", true, nil},
		"nested": map[string]interface{}{
			"path": "/users/42",
		},
	}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("unexpected tree: %#v", out)
	}
}

func TestResolve_NonStringScalarsPassThrough(t *testing.T) {
	m := Map{}
	for _, v := range []interface{}{float64(1), true, nil} {
		out, err := Resolve(v, m, nil)
		if err != nil {
			t.Fatalf("unexpected error for %v: %v", v, err)
		}
		if !reflect.DeepEqual(out, v) {
			t.Fatalf("expected %v unchanged, got %v", v, out)
		}
	}
}

func TestResolveStringMap_ValuesOnly(t *testing.T) {
	m := Map{"token": "abc"}
	in := map[string]string{"Authorization": "Bearer {{token}}", "Accept": "application/json"}
	out, err := ResolveStringMap(in, m, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["Authorization"] != "Bearer abc" || out["Accept"] != "application/json" {
		t.Fatalf("unexpected headers: %#v", out)
	}
}
