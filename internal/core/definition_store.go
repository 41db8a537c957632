package core

import (
	"fmt"
	"path/filepath"

	"github.com/EmundoT/variant-audit/internal/types"
)

// DefinitionStore loads package definitions from disk.
type DefinitionStore interface {
	Load(path string) (*types.PackageDefinition, error)
}

// FileDefinitionStore implements DefinitionStore over YAML files.
type FileDefinitionStore struct {
	// Base is installed as the active configuration of every loaded definition.
	Base types.Config
}

// NewFileDefinitionStore creates a store that installs base on each definition it loads.
func NewFileDefinitionStore(base types.Config) *FileDefinitionStore {
	return &FileDefinitionStore{Base: base}
}

// Load reads the definition at path. Unknown keys, an empty document, and
// repeated language keys are rejected.
func (s *FileDefinitionStore) Load(path string) (*types.PackageDefinition, error) {
	def, err := NewYAMLStore[*types.PackageDefinition](path, true).Load()
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidDefinition, filepath.Base(path))
	}
	if def.Languages != nil {
		if dups := types.DuplicateKeys(*def.Languages); len(dups) > 0 {
			return nil, fmt.Errorf("%w in %s: %s", ErrDuplicateLanguage, filepath.Base(path), dups[0].Quoted())
		}
	}

	def.SetSource(path)
	def.SetConfig(s.Base.Clone())
	return def, nil
}

// SaveDefinition writes def to path as YAML.
func SaveDefinition(path string, def *types.PackageDefinition) error {
	return NewYAMLStore[*types.PackageDefinition](path, true).Save(def)
}
