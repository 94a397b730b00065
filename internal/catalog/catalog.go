// Package catalog persists named requests: collections of aliased descriptors,
// global aliases, and templates that bundle a descriptor with saved dispatch
// flags. Everything is stored as indented JSON files under one data directory.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-viper/mapstructure/v2"
	"github.com/yousseftechdev/postmaker/internal/request"
)

const (
	collectionsFile = "collections.json"
	aliasesFile     = "global_aliases.json"
	templatesFile   = "templates.json"
)

// NotFoundError reports a missing collection, alias or template.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("catalog: %s %q not found", e.Kind, e.Name)
}

// Template is a descriptor plus the dispatch flags it was saved with. The
// flags map decodes into request.Options when the template is used.
type Template struct {
	request.Descriptor
	Flags map[string]interface{} `json:"flags,omitempty"`
}

// Options decodes the saved flags into a request option bundle.
func (t Template) Options() (request.Options, error) {
	var opts request.Options
	if len(t.Flags) == 0 {
		return opts, nil
	}
	if err := mapstructure.WeakDecode(t.Flags, &opts); err != nil {
		return request.Options{}, fmt.Errorf("catalog: decode template flags: %w", err)
	}
	return opts, nil
}

// Catalog reads and writes the JSON data files in Dir.
type Catalog struct {
	Dir string
}

func New(dir string) *Catalog { return &Catalog{Dir: dir} }

func (c *Catalog) path(name string) string { return filepath.Join(c.Dir, name) }

// readJSON decodes path into v. A missing or empty file leaves v untouched.
func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path) // #nosec G304 -- catalog files live under the user's data dir
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("catalog: read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	return nil
}

// writeJSON atomically rewrites path with indented JSON.
func writeJSON(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("catalog: create data dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("catalog: encode %s: %w", path, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("catalog: write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("catalog: replace %s: %w", path, err)
	}
	return nil
}

// Collections returns the full collection map (collection name -> alias ->
// descriptor). A missing file yields an empty map.
func (c *Catalog) Collections() (map[string]map[string]request.Descriptor, error) {
	out := map[string]map[string]request.Descriptor{}
	if err := readJSON(c.path(collectionsFile), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Catalog) saveCollections(m map[string]map[string]request.Descriptor) error {
	return writeJSON(c.path(collectionsFile), m)
}

// Aliases returns the global alias map.
func (c *Catalog) Aliases() (map[string]request.Descriptor, error) {
	out := map[string]request.Descriptor{}
	if err := readJSON(c.path(aliasesFile), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Catalog) saveAliases(m map[string]request.Descriptor) error {
	return writeJSON(c.path(aliasesFile), m)
}

// Templates returns the template map.
func (c *Catalog) Templates() (map[string]Template, error) {
	out := map[string]Template{}
	if err := readJSON(c.path(templatesFile), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Catalog) saveTemplates(m map[string]Template) error {
	return writeJSON(c.path(templatesFile), m)
}

// SaveAlias stores a descriptor under alias. With a non-empty collection the
// alias lives inside that collection, otherwise it is global.
func (c *Catalog) SaveAlias(collection, alias string, d request.Descriptor) error {
	if collection == "" {
		aliases, err := c.Aliases()
		if err != nil {
			return err
		}
		aliases[alias] = d
		return c.saveAliases(aliases)
	}
	cols, err := c.Collections()
	if err != nil {
		return err
	}
	if cols[collection] == nil {
		cols[collection] = map[string]request.Descriptor{}
	}
	cols[collection][alias] = d
	return c.saveCollections(cols)
}

// Lookup resolves an alias: collection first when given, then the global map.
func (c *Catalog) Lookup(collection, alias string) (request.Descriptor, error) {
	if collection != "" {
		cols, err := c.Collections()
		if err != nil {
			return request.Descriptor{}, err
		}
		reqs, ok := cols[collection]
		if !ok {
			return request.Descriptor{}, &NotFoundError{Kind: "collection", Name: collection}
		}
		d, ok := reqs[alias]
		if !ok {
			return request.Descriptor{}, &NotFoundError{Kind: "alias", Name: collection + "." + alias}
		}
		return d, nil
	}
	aliases, err := c.Aliases()
	if err != nil {
		return request.Descriptor{}, err
	}
	d, ok := aliases[alias]
	if !ok {
		return request.Descriptor{}, &NotFoundError{Kind: "alias", Name: alias}
	}
	return d, nil
}

// RemoveAlias deletes a global alias.
func (c *Catalog) RemoveAlias(alias string) error {
	aliases, err := c.Aliases()
	if err != nil {
		return err
	}
	if _, ok := aliases[alias]; !ok {
		return &NotFoundError{Kind: "alias", Name: alias}
	}
	delete(aliases, alias)
	return c.saveAliases(aliases)
}

// DeleteCollection removes a collection and everything in it.
func (c *Catalog) DeleteCollection(name string) error {
	cols, err := c.Collections()
	if err != nil {
		return err
	}
	if _, ok := cols[name]; !ok {
		return &NotFoundError{Kind: "collection", Name: name}
	}
	delete(cols, name)
	return c.saveCollections(cols)
}

// DeleteCollectionItem removes one alias from a collection.
func (c *Catalog) DeleteCollectionItem(collection, alias string) error {
	cols, err := c.Collections()
	if err != nil {
		return err
	}
	reqs, ok := cols[collection]
	if !ok {
		return &NotFoundError{Kind: "collection", Name: collection}
	}
	if _, ok := reqs[alias]; !ok {
		return &NotFoundError{Kind: "alias", Name: collection + "." + alias}
	}
	delete(reqs, alias)
	return c.saveCollections(cols)
}

// SaveTemplate stores a descriptor together with its flag bundle.
func (c *Catalog) SaveTemplate(name string, t Template) error {
	templates, err := c.Templates()
	if err != nil {
		return err
	}
	templates[name] = t
	return c.saveTemplates(templates)
}

// Template returns one saved template.
func (c *Catalog) Template(name string) (Template, error) {
	templates, err := c.Templates()
	if err != nil {
		return Template{}, err
	}
	t, ok := templates[name]
	if !ok {
		return Template{}, &NotFoundError{Kind: "template", Name: name}
	}
	return t, nil
}

// DeleteTemplate removes one saved template.
func (c *Catalog) DeleteTemplate(name string) error {
	templates, err := c.Templates()
	if err != nil {
		return err
	}
	if _, ok := templates[name]; !ok {
		return &NotFoundError{Kind: "template", Name: name}
	}
	delete(templates, name)
	return c.saveTemplates(templates)
}

// TemplateNames lists saved template names in sorted order.
func (c *Catalog) TemplateNames() ([]string, error) {
	templates, err := c.Templates()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
