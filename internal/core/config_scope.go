package core

import "github.com/EmundoT/variant-audit/internal/types"

// WithVariant runs body with the variant identified by key active on def.
//
// The scoped configuration is Merge(base, {Languages: key}). It is installed
// on def for the duration of body and also passed to body directly. base is
// reinstalled on every exit path, including a returned error or a panic, so
// the definition never leaks one variant's configuration into the next run.
func WithVariant(
	def *types.PackageDefinition,
	base types.Config,
	key types.LanguageKey,
	body func(scoped types.Config) (*Report, error),
) (*Report, error) {
	scoped := types.Merge(base, types.Config{Languages: key.Clone()})

	def.SetConfig(scoped)
	defer def.SetConfig(base)

	return body(scoped)
}
