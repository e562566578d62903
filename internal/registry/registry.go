package registry

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/unicode/norm"

	"vaultpub/internal/fileutil"
)

// Mapping associates a vault note with its published copy.
type Mapping struct {
	Source string `toml:"source"`
	Target string `toml:"target,omitempty"`
}

// SourceName returns the final path component of the source.
func (m Mapping) SourceName() string {
	return filepath.Base(m.Source)
}

// Registry is the ordered set of mappings stored in the registry file.
type Registry struct {
	Files []Mapping `toml:"files"`
}

// Load reads and strictly decodes the registry at path.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry %s: %w", path, err)
	}
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	var reg Registry
	if err := decoder.Decode(&reg); err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", path, err)
	}
	for i, m := range reg.Files {
		if m.Source == "" {
			return nil, fmt.Errorf("parse registry %s: files[%d] has no source", path, i)
		}
	}
	return &reg, nil
}

// Save writes the whole registry to path, replacing its contents in place.
func Save(path string, reg *Registry) error {
	if reg.Files == nil {
		reg.Files = []Mapping{}
	}
	data, err := toml.Marshal(reg)
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}
	if err := fileutil.WriteText(path, string(data)); err != nil {
		return fmt.Errorf("write registry %s: %w", path, err)
	}
	return nil
}

// IndexOfSource returns the index of the mapping whose source equals source,
// or -1.
func (r *Registry) IndexOfSource(source string) int {
	for i, m := range r.Files {
		if m.Source == source {
			return i
		}
	}
	return -1
}

// RemoveByName drops every mapping whose source filename equals the filename
// of path and returns the removed mappings. Filenames are compared in Unicode
// NFC so a name typed on one platform matches the same name stored from
// another.
func (r *Registry) RemoveByName(path string) []Mapping {
	want := norm.NFC.String(filepath.Base(path))
	kept := r.Files[:0:0]
	var removed []Mapping
	for _, m := range r.Files {
		if norm.NFC.String(m.SourceName()) == want {
			removed = append(removed, m)
			continue
		}
		kept = append(kept, m)
	}
	r.Files = kept
	return removed
}
