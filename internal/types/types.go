// Package types defines data structures for package definitions, their
// localized variants, and the runtime configuration an audit runs under.
package types

// PackageDefinition is the audited unit, parsed from a definition file.
//
// Languages is a pointer so that an absent `languages:` key (no localized
// variants at all) can be told apart from an empty list.
type PackageDefinition struct {
	Token       string           `yaml:"token"`
	Name        string           `yaml:"name,omitempty"`
	Version     string           `yaml:"version"`
	URL         string           `yaml:"url"`
	SHA256      string           `yaml:"sha256"`
	Homepage    string           `yaml:"homepage,omitempty"`
	Description string           `yaml:"description,omitempty"`
	Signature   *Signature       `yaml:"signature,omitempty"`
	Languages   *[]LanguageBlock `yaml:"languages,omitempty"`

	config Config
	source string
}

// Signature describes where a detached signature and its verification key live.
type Signature struct {
	URL string `yaml:"url"`
	Key string `yaml:"key"`
}

// LanguageBlock is one declared localized variant. Tags is its key; the
// remaining fields override the top-level document when the variant is active.
type LanguageBlock struct {
	Tags    LanguageKey `yaml:"tags"`
	Default bool        `yaml:"default,omitempty"`
	URL     string      `yaml:"url,omitempty"`
	SHA256  string      `yaml:"sha256,omitempty"`
	Version string      `yaml:"version,omitempty"`
}

// Config returns the definition's active configuration.
func (d *PackageDefinition) Config() Config {
	return d.config
}

// SetConfig installs cfg as the definition's active configuration.
func (d *PackageDefinition) SetConfig(cfg Config) {
	d.config = cfg
}

// Source returns the path the definition was loaded from, if any.
func (d *PackageDefinition) Source() string {
	return d.source
}

// SetSource records the path the definition was loaded from.
func (d *PackageDefinition) SetSource(path string) {
	d.source = path
}

// Variants returns a read-only catalog of the declared localized variants.
// The boolean is false when the definition declares no `languages:` key,
// which is different from declaring an empty list.
func (d *PackageDefinition) Variants() (*VariantCatalog, bool) {
	if d.Languages == nil {
		return nil, false
	}
	return NewVariantCatalog(*d.Languages), true
}

// Resolved is the effective download description for one configuration.
type Resolved struct {
	URL     string
	SHA256  string
	Version string
	Key     LanguageKey // nil when no variant applies
}

// Resolve picks the variant matching cfg.Languages and overlays it on the
// top-level document. The first preferred tag wins; without a match the
// default block applies, and without a default block the base document is used.
func (d *PackageDefinition) Resolve(cfg Config) Resolved {
	r := Resolved{URL: d.URL, SHA256: d.SHA256, Version: d.Version}

	catalog, ok := d.Variants()
	if !ok || catalog.Len() == 0 {
		return r
	}

	block, found := LanguageBlock{}, false
	for _, tag := range cfg.Languages {
		if block, found = catalog.Match(tag); found {
			break
		}
	}
	if !found {
		block, found = catalog.Default()
	}
	if !found {
		return r
	}

	r.Key = block.Tags.Clone()
	if block.URL != "" {
		r.URL = block.URL
	}
	if block.SHA256 != "" {
		r.SHA256 = block.SHA256
	}
	if block.Version != "" {
		r.Version = block.Version
	}
	return r
}
