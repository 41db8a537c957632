package types

// AuditResult is the top-level JSON document written by `variant-audit audit --json`.
// It aggregates the per-definition outcomes of one invocation and
// produces a combined pass/fail summary.
type AuditResult struct {
	SchemaVersion string             `json:"schema_version"`
	AuditID       string             `json:"audit_id"`
	Timestamp     string             `json:"timestamp"`
	Definitions   []DefinitionResult `json:"definitions"`
	Summary       AuditSummary       `json:"summary"`
}

// DefinitionResult is the outcome of auditing one definition file.
// Error is set when the audit itself failed (load error or engine failure);
// Warnings and Errors are then empty because no partial result survives.
type DefinitionResult struct {
	Source   string `json:"source"`
	Token    string `json:"token,omitempty"`
	Result   string `json:"result"`
	Warnings Set    `json:"warnings"`
	Errors   Set    `json:"errors"`
	Error    string `json:"error,omitempty"`
}

// AuditSummary contains aggregate counts across all audited definitions.
type AuditSummary struct {
	Result      string `json:"result"`             // "PASS", "FAIL", "WARN"
	Definitions int    `json:"definitions"`        // Definitions audited
	Passed      int    `json:"definitions_passed"` // No errors, no warnings
	Warned      int    `json:"definitions_warned"` // Warnings only
	Failed      int    `json:"definitions_failed"` // Errors or audit failure
}

// Audit result constants for AuditSummary.Result and DefinitionResult.Result.
const (
	AuditResultPass = "PASS"
	AuditResultFail = "FAIL"
	AuditResultWarn = "WARN"
)
