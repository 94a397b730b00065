package catalog

import (
	"errors"
	"testing"

	"github.com/yousseftechdev/postmaker/internal/request"
)

func sampleDescriptor() request.Descriptor {
	return request.Descriptor{
		Method:  "POST",
		URL:     "https://example.com/api",
		Headers: map[string]string{"X-Req": "1"},
		Body:    map[string]interface{}{"name": "demo"},
		Auth:    "bearer {{token}}",
	}
}

func TestSaveAndLookupGlobalAlias(t *testing.T) {
	c := New(t.TempDir())
	if err := c.SaveAlias("", "login", sampleDescriptor()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := c.Lookup("", "login")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got.Method != "POST" || got.URL != "https://example.com/api" || got.Auth != "bearer {{token}}" {
		t.Fatalf("unexpected descriptor: %#v", got)
	}
	body, ok := got.Body.(map[string]interface{})
	if !ok || body["name"] != "demo" {
		t.Fatalf("unexpected body: %#v", got.Body)
	}
}

func TestSaveAndLookupCollectionAlias(t *testing.T) {
	c := New(t.TempDir())
	if err := c.SaveAlias("users", "create", sampleDescriptor()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := c.Lookup("users", "create"); err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	var nf *NotFoundError
	if _, err := c.Lookup("users", "missing"); !errors.As(err, &nf) || nf.Kind != "alias" {
		t.Fatalf("expected alias not-found, got %v", err)
	}
	if _, err := c.Lookup("nope", "create"); !errors.As(err, &nf) || nf.Kind != "collection" {
		t.Fatalf("expected collection not-found, got %v", err)
	}
}

func TestRemoveAliasAndDeleteCollection(t *testing.T) {
	c := New(t.TempDir())
	if err := c.SaveAlias("", "a", sampleDescriptor()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := c.RemoveAlias("a"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	var nf *NotFoundError
	if err := c.RemoveAlias("a"); !errors.As(err, &nf) {
		t.Fatalf("expected not-found on second remove, got %v", err)
	}

	if err := c.SaveAlias("col", "a", sampleDescriptor()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := c.SaveAlias("col", "b", sampleDescriptor()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := c.DeleteCollectionItem("col", "a"); err != nil {
		t.Fatalf("delete item failed: %v", err)
	}
	if _, err := c.Lookup("col", "a"); err == nil {
		t.Fatalf("expected alias gone")
	}
	if _, err := c.Lookup("col", "b"); err != nil {
		t.Fatalf("sibling alias must survive: %v", err)
	}
	if err := c.DeleteCollection("col"); err != nil {
		t.Fatalf("delete collection failed: %v", err)
	}
	cols, err := c.Collections()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(cols) != 0 {
		t.Fatalf("expected empty collections, got %#v", cols)
	}
}

func TestTemplateRoundTripWithFlags(t *testing.T) {
	c := New(t.TempDir())
	tpl := Template{
		Descriptor: sampleDescriptor(),
		Flags: map[string]interface{}{
			"repeat":   3,
			"interval": 100,
			"only":     "body",
			"preview":  true,
		},
	}
	if err := c.SaveTemplate("smoke", tpl); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := c.Template("smoke")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	opts, err := got.Options()
	if err != nil {
		t.Fatalf("decode flags failed: %v", err)
	}
	if opts.Repeat != 3 || opts.IntervalMs != 100 || opts.Only != "body" || !opts.Preview {
		t.Fatalf("unexpected options: %#v", opts)
	}

	names, err := c.TemplateNames()
	if err != nil {
		t.Fatalf("names failed: %v", err)
	}
	if len(names) != 1 || names[0] != "smoke" {
		t.Fatalf("unexpected names: %v", names)
	}
	if err := c.DeleteTemplate("smoke"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	var nf *NotFoundError
	if _, err := c.Template("smoke"); !errors.As(err, &nf) || nf.Kind != "template" {
		t.Fatalf("expected template not-found, got %v", err)
	}
}

func TestMissingFilesYieldEmptyMaps(t *testing.T) {
	c := New(t.TempDir())
	cols, err := c.Collections()
	if err != nil || len(cols) != 0 {
		t.Fatalf("expected empty collections, got %v / %v", cols, err)
	}
	aliases, err := c.Aliases()
	if err != nil || len(aliases) != 0 {
		t.Fatalf("expected empty aliases, got %v / %v", aliases, err)
	}
	templates, err := c.Templates()
	if err != nil || len(templates) != 0 {
		t.Fatalf("expected empty templates, got %v / %v", templates, err)
	}
}
