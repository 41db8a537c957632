package core

//go:generate mockgen -source=engine.go -destination=engine_mock_test.go -package=core

import (
	"context"

	"github.com/EmundoT/variant-audit/internal/types"
)

// PolicyBundle is the set of audit toggles handed to a ValidationEngine.
// An Auditor builds it once and never changes it.
type PolicyBundle struct {
	Online         bool     // Allow checks that reach the network
	Strict         bool     // Promote style findings to errors
	Signing        bool     // Require signature metadata
	TokenConflicts bool     // Compare the token against known tokens
	NewPackage     bool     // Apply the stricter rules for new submissions
	Download       bool     // Download the artifact and verify its checksum
	Quarantine     bool     // Refuse downloads redirected to another host
	Only           []string // When non-empty, run only these checks
	Except         []string // Never run these checks
}

// ValidationEngine runs every applicable check against a definition and
// returns the findings as a Report.
//
// cfg is the configuration the definition must be evaluated under; engines
// read the active variant from it rather than from the definition.
type ValidationEngine interface {
	Run(ctx context.Context, def *types.PackageDefinition, cfg types.Config, policy PolicyBundle) (*Report, error)
}

// ValidationEngineFunc adapts a function to ValidationEngine.
type ValidationEngineFunc func(ctx context.Context, def *types.PackageDefinition, cfg types.Config, policy PolicyBundle) (*Report, error)

// Run calls f.
func (f ValidationEngineFunc) Run(ctx context.Context, def *types.PackageDefinition, cfg types.Config, policy PolicyBundle) (*Report, error) {
	return f(ctx, def, cfg, policy)
}
