package catalog

import (
	"fmt"

	"github.com/yousseftechdev/postmaker/internal/request"
	"github.com/yousseftechdev/postmaker/internal/vars"
)

// Export targets.
const (
	TargetAll         = "all"
	TargetCollections = "collections"
	TargetAliases     = "aliases"
	TargetVariables   = "variables"
	TargetTemplates   = "templates"
)

// bundle is the on-disk shape of a combined export.
type bundle struct {
	Collections map[string]map[string]request.Descriptor `json:"collections,omitempty"`
	Aliases     map[string]request.Descriptor            `json:"aliases,omitempty"`
	Variables   vars.Map                                 `json:"variables,omitempty"`
	Templates   map[string]Template                      `json:"templates,omitempty"`
}

// Export writes the chosen data set to filename as indented JSON. The vars
// store is passed in because variables live outside the catalog directory.
func (c *Catalog) Export(target, filename string, vs *vars.Store) error {
	switch target {
	case TargetAll:
		b := bundle{}
		var err error
		if b.Collections, err = c.Collections(); err != nil {
			return err
		}
		if b.Aliases, err = c.Aliases(); err != nil {
			return err
		}
		if b.Templates, err = c.Templates(); err != nil {
			return err
		}
		if b.Variables, err = vs.Load(); err != nil {
			return err
		}
		return writeJSON(filename, b)
	case TargetCollections:
		m, err := c.Collections()
		if err != nil {
			return err
		}
		return writeJSON(filename, m)
	case TargetAliases:
		m, err := c.Aliases()
		if err != nil {
			return err
		}
		return writeJSON(filename, m)
	case TargetVariables:
		m, err := vs.Load()
		if err != nil {
			return err
		}
		return writeJSON(filename, m)
	case TargetTemplates:
		m, err := c.Templates()
		if err != nil {
			return err
		}
		return writeJSON(filename, m)
	default:
		return fmt.Errorf("catalog: unknown export target %q", target)
	}
}

// Import reads a combined bundle produced by Export(all) and replaces every
// data set the file carries. Sections absent from the file are left alone.
func (c *Catalog) Import(filename string, vs *vars.Store) error {
	var b bundle
	if err := readJSON(filename, &b); err != nil {
		return err
	}
	if b.Collections == nil && b.Aliases == nil && b.Variables == nil && b.Templates == nil {
		return fmt.Errorf("catalog: %s contains no importable sections", filename)
	}
	if b.Collections != nil {
		if err := c.saveCollections(b.Collections); err != nil {
			return err
		}
	}
	if b.Aliases != nil {
		if err := c.saveAliases(b.Aliases); err != nil {
			return err
		}
	}
	if b.Templates != nil {
		if err := c.saveTemplates(b.Templates); err != nil {
			return err
		}
	}
	if b.Variables != nil {
		if err := vs.Save(b.Variables); err != nil {
			return err
		}
	}
	return nil
}
