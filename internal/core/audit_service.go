package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/EmundoT/variant-audit/internal/types"
	"github.com/google/uuid"
)

// AuditServiceInterface defines the contract for auditing a batch of definition files.
type AuditServiceInterface interface {
	// AuditFiles audits every file in paths and returns a combined AuditResult.
	// A definition that fails to load or audit is recorded as FAIL and does
	// NOT abort the others.
	AuditFiles(ctx context.Context, paths []string, opts AuditOptions) (*types.AuditResult, error)
}

// Compile-time interface satisfaction check for AuditService.
var _ AuditServiceInterface = (*AuditService)(nil)

// AuditService loads definitions and runs an Auditor over each of them.
type AuditService struct {
	store   DefinitionStore
	engine  ValidationEngine
	ui      UICallback
	options []AuditorOption
	now     func() time.Time
	newID   func() string
}

// NewAuditService creates a new AuditService with injected dependencies.
func NewAuditService(store DefinitionStore, engine ValidationEngine, ui UICallback, options ...AuditorOption) *AuditService {
	if ui == nil {
		ui = &SilentUICallback{}
	}
	return &AuditService{
		store:   store,
		engine:  engine,
		ui:      ui,
		options: options,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
}

// AuditFiles audits each definition in order and summarizes the outcomes.
// Context cancellation aborts the remaining definitions.
func (s *AuditService) AuditFiles(ctx context.Context, paths []string, opts AuditOptions) (*types.AuditResult, error) {
	result := &types.AuditResult{
		SchemaVersion: CurrentSchemaVersion,
		AuditID:       s.newID(),
		Timestamp:     s.now().UTC().Format(time.RFC3339),
		Definitions:   make([]types.DefinitionResult, 0, len(paths)),
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("audit cancelled: %w", err)
		}
		result.Definitions = append(result.Definitions, s.auditFile(ctx, path, opts))
	}

	result.Summary = summarize(result.Definitions)
	return result, nil
}

// auditFile loads and audits one definition. Failures become a FAIL entry.
func (s *AuditService) auditFile(ctx context.Context, path string, opts AuditOptions) types.DefinitionResult {
	entry := types.DefinitionResult{
		Source:   path,
		Warnings: types.NewSet(),
		Errors:   types.NewSet(),
	}

	def, err := s.store.Load(path)
	if err != nil {
		entry.Result = types.AuditResultFail
		entry.Error = fmt.Errorf(ErrLoadDefinitionMsg, path, err).Error()
		return entry
	}
	entry.Token = def.Token

	agg, err := Audit(ctx, def, s.engine, s.ui, opts, s.options...)
	if err != nil {
		entry.Result = types.AuditResultFail
		entry.Error = err.Error()
		return entry
	}

	entry.Warnings = agg.Warnings
	entry.Errors = agg.Errors
	switch {
	case agg.Errors.Len() > 0:
		entry.Result = types.AuditResultFail
	case agg.Warnings.Len() > 0:
		entry.Result = types.AuditResultWarn
	default:
		entry.Result = types.AuditResultPass
	}
	return entry
}

// summarize computes the combined result: FAIL > WARN > PASS.
func summarize(entries []types.DefinitionResult) types.AuditSummary {
	sum := types.AuditSummary{Definitions: len(entries), Result: types.AuditResultPass}
	for _, e := range entries {
		switch e.Result {
		case types.AuditResultPass:
			sum.Passed++
		case types.AuditResultWarn:
			sum.Warned++
		default:
			sum.Failed++
		}
	}
	if sum.Warned > 0 {
		sum.Result = types.AuditResultWarn
	}
	if sum.Failed > 0 {
		sum.Result = types.AuditResultFail
	}
	return sum
}

// FormatAuditTable formats an AuditResult as a human-readable table string.
func FormatAuditTable(result *types.AuditResult) string {
	var b strings.Builder
	b.WriteString("=== Audit Report ===\n\n")

	for _, d := range result.Definitions {
		name := d.Token
		if name == "" {
			name = d.Source
		}
		b.WriteString(formatCheckLine(name, d.Result, definitionDetail(d)))
	}

	fmt.Fprintf(&b, "\nResult: %s (%s: %d passed, %d warned, %d failed)\n",
		result.Summary.Result,
		Pluralize(result.Summary.Definitions, "definition", "definitions"),
		result.Summary.Passed, result.Summary.Warned, result.Summary.Failed)

	return b.String()
}

// formatCheckLine produces a dotted-line format: "  Name ........... STATUS (detail)"
func formatCheckLine(name, status, detail string) string {
	dots := 24 - len(name)
	if dots < 3 {
		dots = 3
	}
	return fmt.Sprintf("  %s %s %s (%s)\n", name, strings.Repeat(".", dots), status, detail)
}

func definitionDetail(d types.DefinitionResult) string {
	if d.Error != "" {
		return d.Error
	}
	return fmt.Sprintf("%s, %s",
		Pluralize(d.Errors.Len(), "error", "errors"),
		Pluralize(d.Warnings.Len(), "warning", "warnings"))
}
