package core

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// YAMLStore reads and writes one YAML document of type T.
type YAMLStore[T any] struct {
	path   string
	strict bool // Reject keys that do not map to a field of T
}

// NewYAMLStore creates a store for the file at path. When strict is set,
// Load fails on keys T does not declare.
func NewYAMLStore[T any](path string, strict bool) *YAMLStore[T] {
	return &YAMLStore[T]{path: path, strict: strict}
}

// Path returns the file path
func (s *YAMLStore[T]) Path() string {
	return s.path
}

// Load reads and decodes the file into T.
// Files larger than maxDefinitionFileSize are rejected before they are read.
func (s *YAMLStore[T]) Load() (T, error) {
	var result T
	name := filepath.Base(s.path)

	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return result, fmt.Errorf("%w: %s", ErrDefinitionNotFound, s.path)
		}
		return result, err
	}
	if info.Size() > maxDefinitionFileSize {
		return result, fmt.Errorf("%w: %s (%d bytes > %d byte limit)", ErrDefinitionTooLarge, name, info.Size(), maxDefinitionFileSize)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return result, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(s.strict)
	if err := dec.Decode(&result); err != nil && !errors.Is(err, io.EOF) {
		return result, fmt.Errorf("%w: %s: %v", ErrInvalidDefinition, name, err)
	}

	return result, nil
}

// Save encodes v and writes it to the file.
func (s *YAMLStore[T]) Save(v T) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(s.path), err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(s.path), err)
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(s.path), err)
	}
	return nil
}
