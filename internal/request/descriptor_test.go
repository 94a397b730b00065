package request

import (
	"encoding/json"
	"testing"
)

func TestNormalized_MethodDefaultsAndUppercases(t *testing.T) {
	d := Descriptor{URL: "https://example.com"}.Normalized()
	if d.Method != "GET" {
		t.Fatalf("expected default GET, got %q", d.Method)
	}
	if d.Headers == nil {
		t.Fatalf("expected non-nil headers")
	}

	d2 := Descriptor{Method: " post ", URL: "https://example.com"}.Normalized()
	if d2.Method != "POST" {
		t.Fatalf("expected POST, got %q", d2.Method)
	}
}

func TestNormalizeBody_EmptyObjectMeansAbsent(t *testing.T) {
	if NormalizeBody(map[string]interface{}{}) != nil {
		t.Fatalf("expected empty object to normalize to nil")
	}
	if NormalizeBody(map[string]string{}) != nil {
		t.Fatalf("expected empty string map to normalize to nil")
	}
}

func TestNormalizeBody_OtherEmptiesPreserved(t *testing.T) {
	cases := []interface{}{
		[]interface{}{},
		"",
		float64(0),
		false,
	}
	for _, c := range cases {
		if got := NormalizeBody(c); got == nil {
			t.Fatalf("expected %#v preserved, got nil", c)
		}
	}
	body := map[string]interface{}{"a": float64(1)}
	got, ok := NormalizeBody(body).(map[string]interface{})
	if !ok || got["a"] != float64(1) {
		t.Fatalf("expected non-empty object preserved, got %#v", got)
	}
}

func TestDescriptor_JSONRoundTrip(t *testing.T) {
	raw := `{"method":"POST","url":"https://example.com","headers":{"X-Req":"1"},"data":{"name":"demo"},"auth":"bearer tok"}`
	var d Descriptor
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if d.Method != "POST" || d.Auth != "bearer tok" || d.Headers["X-Req"] != "1" {
		t.Fatalf("unexpected descriptor: %#v", d)
	}
	body, ok := d.Body.(map[string]interface{})
	if !ok || body["name"] != "demo" {
		t.Fatalf("unexpected body: %#v", d.Body)
	}
}

func TestOptionsNormalized_Clamps(t *testing.T) {
	o := Options{Repeat: 0, IntervalMs: -5}.normalized()
	if o.Repeat != 1 || o.IntervalMs != 0 {
		t.Fatalf("unexpected normalization: %#v", o)
	}
	o2 := Options{Repeat: 4, IntervalMs: 250}.normalized()
	if o2.Repeat != 4 || o2.IntervalMs != 250 {
		t.Fatalf("valid values must pass through: %#v", o2)
	}
}
