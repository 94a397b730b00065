package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/yousseftechdev/postmaker/internal/request"
)

func TestParseCurl_FullCommand(t *testing.T) {
	cmd := `curl -X POST -H 'Content-Type: application/json' -H "X-Req: 1" -d '{"name":"demo"}' https://example.com/api`
	d, err := ParseCurl(cmd)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if d.Method != "POST" || d.URL != "https://example.com/api" {
		t.Fatalf("unexpected descriptor: %#v", d)
	}
	if d.Headers["Content-Type"] != "application/json" || d.Headers["X-Req"] != "1" {
		t.Fatalf("unexpected headers: %#v", d.Headers)
	}
	body, ok := d.Body.(map[string]interface{})
	if !ok || body["name"] != "demo" {
		t.Fatalf("expected structured JSON body, got %#v", d.Body)
	}
}

func TestParseCurl_DefaultsAndRawData(t *testing.T) {
	d, err := ParseCurl(`curl --data 'plain text body' https://example.com`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if d.Method != "GET" {
		t.Fatalf("expected default GET, got %q", d.Method)
	}
	if d.Body != "plain text body" {
		t.Fatalf("expected raw string body preserved, got %#v", d.Body)
	}
}

func TestParseCurl_BasicUser(t *testing.T) {
	d, err := ParseCurl(`curl -u alice:s3cret https://example.com`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if d.Auth != "basic alice:s3cret" {
		t.Fatalf("unexpected auth: %q", d.Auth)
	}
}

func TestParseCurl_Rejections(t *testing.T) {
	if _, err := ParseCurl(`wget https://example.com`); !errors.Is(err, ErrNotCurl) {
		t.Fatalf("expected ErrNotCurl, got %v", err)
	}
	if _, err := ParseCurl(`curl -X POST`); err == nil {
		t.Fatalf("expected error for missing url")
	}
	if _, err := ParseCurl(`curl 'https://example.com`); err == nil {
		t.Fatalf("expected error for unterminated quote")
	}
}

func TestExportCurl_RoundTrip(t *testing.T) {
	d := request.Descriptor{
		Method:  "POST",
		URL:     "https://example.com/api",
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    map[string]interface{}{"name": "demo"},
	}
	cmd := ExportCurl(d)
	if !strings.HasPrefix(cmd, "curl -X POST") {
		t.Fatalf("unexpected command: %q", cmd)
	}
	back, err := ParseCurl(cmd)
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if back.Method != "POST" || back.URL != d.URL {
		t.Fatalf("round trip lost request line: %#v", back)
	}
	if back.Headers["Content-Type"] != "application/json" {
		t.Fatalf("round trip lost headers: %#v", back.Headers)
	}
	body, ok := back.Body.(map[string]interface{})
	if !ok || body["name"] != "demo" {
		t.Fatalf("round trip lost body: %#v", back.Body)
	}
}

func TestExportCurl_GetOmitsMethodFlag(t *testing.T) {
	cmd := ExportCurl(request.Descriptor{URL: "https://example.com"})
	if strings.Contains(cmd, "-X") {
		t.Fatalf("GET export must not carry -X: %q", cmd)
	}
	if cmd != "curl https://example.com" {
		t.Fatalf("unexpected command: %q", cmd)
	}
}
