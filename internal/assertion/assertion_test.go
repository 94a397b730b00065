package assertion

import (
	"errors"
	"testing"

	"github.com/yousseftechdev/postmaker/internal/history"
)

func TestParse_StatusCondition(t *testing.T) {
	a, err := Parse("status=200")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Kind != KindStatus || a.Value != "200" || a.Script != 0 {
		t.Fatalf("unexpected assertion: %#v", a)
	}
}

func TestParse_BodyContainsWithScript(t *testing.T) {
	a, err := Parse("body_contains=ok,3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Kind != KindBodyContains || a.Value != "ok" || a.Script != 3 {
		t.Fatalf("unexpected assertion: %#v", a)
	}
}

func TestParse_ScriptOutOfRangeIgnored(t *testing.T) {
	a, err := Parse("status=200,9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Script != 0 {
		t.Fatalf("expected out-of-range script ignored, got %d", a.Script)
	}
	a, err = Parse("status=200,abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Script != 0 {
		t.Fatalf("expected non-numeric script ignored, got %d", a.Script)
	}
}

func TestParse_SignedScriptIgnored(t *testing.T) {
	for _, cond := range []string{"status=200,+3", "status=200,-3"} {
		a, err := Parse(cond)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", cond, err)
		}
		if a.Script != 0 {
			t.Fatalf("expected signed script id ignored for %q, got %d", cond, a.Script)
		}
		if a.Kind != KindStatus || a.Value != "200" {
			t.Fatalf("condition must still evaluate for %q: %#v", cond, a)
		}
	}
}

func TestParse_UnrecognizedCondition(t *testing.T) {
	for _, cond := range []string{"header=foo", "status200", "", "status=notanumber"} {
		_, err := Parse(cond)
		var ia *InvalidAssertionError
		if !errors.As(err, &ia) {
			t.Fatalf("expected InvalidAssertionError for %q, got %v", cond, err)
		}
	}
}

func TestEvaluate_Status(t *testing.T) {
	a, _ := Parse("status=200")
	if !a.Evaluate(history.Record{Status: 200}) {
		t.Fatalf("expected pass for status 200")
	}
	if a.Evaluate(history.Record{Status: 404}) {
		t.Fatalf("expected fail for status 404")
	}
}

func TestEvaluate_BodyContains(t *testing.T) {
	a, _ := Parse("body_contains=ok")
	if !a.Evaluate(history.Record{RespBody: `{"status":"ok"}`}) {
		t.Fatalf("expected pass for body containing 'ok'")
	}
	if a.Evaluate(history.Record{RespBody: `{"status":"failed"}`}) {
		t.Fatalf("expected fail for body without 'ok'")
	}
}
