package types

import (
	"maps"
	"slices"
)

// Config describes the runtime policy a definition is evaluated under.
// Treat it as an immutable value: Merge and Clone never share backing
// storage with their inputs.
type Config struct {
	// Languages lists preferred locale tags; it selects the active variant.
	Languages []string `yaml:"languages,omitempty" json:"languages,omitempty"`

	// Architecture optionally pins the target CPU architecture.
	Architecture string `yaml:"arch,omitempty" json:"arch,omitempty"`

	// Explicit holds free-form overrides supplied by the caller.
	Explicit map[string]string `yaml:"explicit,omitempty" json:"explicit,omitempty"`
}

// Merge returns a new Config with overrides applied field by field on top of
// base. A zero-valued override field leaves the base value in place; Explicit
// maps merge key by key. Neither argument is modified.
func Merge(base, overrides Config) Config {
	out := base.Clone()

	if len(overrides.Languages) > 0 {
		out.Languages = slices.Clone(overrides.Languages)
	}
	if overrides.Architecture != "" {
		out.Architecture = overrides.Architecture
	}
	if len(overrides.Explicit) > 0 {
		if out.Explicit == nil {
			out.Explicit = make(map[string]string, len(overrides.Explicit))
		}
		maps.Copy(out.Explicit, overrides.Explicit)
	}

	return out
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	return Config{
		Languages:    slices.Clone(c.Languages),
		Architecture: c.Architecture,
		Explicit:     maps.Clone(c.Explicit),
	}
}

// Equal reports whether c and other describe the same policy. A nil and an
// empty collection compare equal.
func (c Config) Equal(other Config) bool {
	return slices.Equal(c.Languages, other.Languages) &&
		c.Architecture == other.Architecture &&
		maps.Equal(c.Explicit, other.Explicit)
}
