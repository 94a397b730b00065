package vars

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Map holds variable name -> string value. Values are never coerced to other types.
type Map map[string]string

// Clone returns a shallow copy so one execute() call can mutate its own view.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Store persists variables as a flat JSON object on disk.
// Writes go through a temp file + rename so concurrent readers never observe
// a partially written file.
type Store struct {
	Path string
}

// Load reads the variable map from disk. A missing or empty file yields an
// empty map, matching first-run behavior.
func (s *Store) Load() (Map, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return Map{}, nil
		}
		return nil, fmt.Errorf("vars: read %s: %w", s.Path, err)
	}
	if len(data) == 0 {
		return Map{}, nil
	}
	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("vars: parse %s: %w", s.Path, err)
	}
	if m == nil {
		m = Map{}
	}
	return m, nil
}

// Save atomically rewrites the variable file with the provided map.
func (s *Store) Save(m Map) error {
	if m == nil {
		m = Map{}
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("vars: marshal: %w", err)
	}
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("vars: mkdir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".variables-*.json")
	if err != nil {
		return fmt.Errorf("vars: temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("vars: write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("vars: close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("vars: rename to %s: %w", s.Path, err)
	}
	return nil
}

// Set stores a single variable (read-modify-write).
func (s *Store) Set(name, value string) error {
	m, err := s.Load()
	if err != nil {
		return err
	}
	m[name] = value
	return s.Save(m)
}

// Remove deletes a single variable. Removing an absent name is not an error.
func (s *Store) Remove(name string) error {
	m, err := s.Load()
	if err != nil {
		return err
	}
	delete(m, name)
	return s.Save(m)
}

// Clear drops all variables.
func (s *Store) Clear() error {
	return s.Save(Map{})
}
