package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addDescriptorFlags(fs)
	addDispatchFlags(fs)
	return fs
}

func TestDescriptorFromFlags_InlineJSON(t *testing.T) {
	fs := newFlagSet()
	err := fs.Parse([]string{
		"-X", "post",
		"-u", "https://example.com/api",
		"-H", `{"X-Req":"1"}`,
		"-d", `{"name":"demo"}`,
		"-a", "bearer tok",
	})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	d, err := descriptorFromFlags(fs)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if d.Method != "post" || d.URL != "https://example.com/api" || d.Auth != "bearer tok" {
		t.Fatalf("unexpected descriptor: %#v", d)
	}
	if d.Headers["X-Req"] != "1" {
		t.Fatalf("unexpected headers: %#v", d.Headers)
	}
	body, ok := d.Body.(map[string]interface{})
	if !ok || body["name"] != "demo" {
		t.Fatalf("unexpected body: %#v", d.Body)
	}
}

func TestDescriptorFromFlags_BodyFromFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "body.json")
	if err := os.WriteFile(p, []byte(`{"from":"file"}`), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	fs := newFlagSet()
	if err := fs.Parse([]string{"-u", "https://example.com", "-d", "@" + p}); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	d, err := descriptorFromFlags(fs)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	body, ok := d.Body.(map[string]interface{})
	if !ok || body["from"] != "file" {
		t.Fatalf("unexpected body: %#v", d.Body)
	}
}

func TestDescriptorFromFlags_RejectsBadJSON(t *testing.T) {
	fs := newFlagSet()
	if err := fs.Parse([]string{"-u", "https://example.com", "-H", "not json"}); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if _, err := descriptorFromFlags(fs); err == nil {
		t.Fatalf("expected error for invalid header JSON")
	}
}

func TestOptionsFromFlags(t *testing.T) {
	fs := newFlagSet()
	err := fs.Parse([]string{
		"-u", "https://example.com",
		"--repeat", "3",
		"--interval", "100",
		"--only", "body",
		"--assert", "status=200,2",
		"--no-history",
		"--capture", "token=auth.token",
	})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	o := optionsFromFlags(fs, true)
	if o.Repeat != 3 || o.IntervalMs != 100 || o.Only != "body" || o.Assertion != "status=200,2" {
		t.Fatalf("unexpected options: %#v", o)
	}
	if !o.SkipHistory || !o.DebugMode {
		t.Fatalf("expected skip-history and debug carried: %#v", o)
	}
	if o.Captures["token"] != "auth.token" {
		t.Fatalf("unexpected captures: %#v", o.Captures)
	}
}

func TestChangedFlags_OnlyExplicitOnes(t *testing.T) {
	fs := newFlagSet()
	if err := fs.Parse([]string{"-u", "https://example.com", "--repeat", "2", "--preview"}); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	flags := changedFlags(fs)
	if flags["repeat"] != 2 || flags["preview"] != true {
		t.Fatalf("unexpected flags: %#v", flags)
	}
	if _, ok := flags["interval"]; ok {
		t.Fatalf("untouched flags must not be captured: %#v", flags)
	}
	if _, ok := flags["url"]; ok {
		t.Fatalf("descriptor flags must not leak into the bundle: %#v", flags)
	}
}

func TestParseJSONArg_Empty(t *testing.T) {
	var v interface{}
	if err := parseJSONArg("", &v); err != nil {
		t.Fatalf("empty arg must be a no-op: %v", err)
	}
	if v != nil {
		t.Fatalf("expected untouched value, got %#v", v)
	}
}
