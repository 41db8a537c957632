package core

import (
	"slices"
	"strings"
)

// Report result strings used in summary headers.
const (
	ReportPassed  = "passed"
	ReportWarning = "warning"
	ReportFailed  = "failed"
)

// Report holds the diagnostics of one validation pass. Warnings and errors
// keep the order they were first added; identical messages collapse into one
// entry. An engine builds a Report and hands it off; callers only read it.
type Report struct {
	token    string
	warnings []string
	errors   []string
	seenWarn map[string]struct{}
	seenErr  map[string]struct{}
}

// NewReport creates an empty Report for the definition named token.
func NewReport(token string) *Report {
	return &Report{
		token:    token,
		seenWarn: make(map[string]struct{}),
		seenErr:  make(map[string]struct{}),
	}
}

// Token returns the definition token the report describes.
func (r *Report) Token() string {
	return r.token
}

// AddWarning records a warning unless the same text was already recorded.
func (r *Report) AddWarning(message string) {
	if _, ok := r.seenWarn[message]; ok {
		return
	}
	r.seenWarn[message] = struct{}{}
	r.warnings = append(r.warnings, message)
}

// AddError records an error unless the same text was already recorded.
func (r *Report) AddError(message string) {
	if _, ok := r.seenErr[message]; ok {
		return
	}
	r.seenErr[message] = struct{}{}
	r.errors = append(r.errors, message)
}

// Warnings returns a copy of the warnings in insertion order.
func (r *Report) Warnings() []string {
	return slices.Clone(r.warnings)
}

// Errors returns a copy of the errors in insertion order.
func (r *Report) Errors() []string {
	return slices.Clone(r.errors)
}

// HasErrors reports whether any error was recorded.
func (r *Report) HasErrors() bool {
	return len(r.errors) > 0
}

// HasWarnings reports whether any warning was recorded.
func (r *Report) HasWarnings() bool {
	return len(r.warnings) > 0
}

// Result returns "failed", "warning", or "passed".
func (r *Report) Result() string {
	switch {
	case r.HasErrors():
		return ReportFailed
	case r.HasWarnings():
		return ReportWarning
	default:
		return ReportPassed
	}
}

// Summary renders the report for the console. It returns "" for a clean
// report unless includePassed is set, and for a warnings-only report unless
// includeWarnings is set.
//
// Format:
//
//	audit for <token>: <result>
//	 - <error>
//	 - <warning>
func (r *Report) Summary(includePassed, includeWarnings bool) string {
	if !r.HasErrors() && !r.HasWarnings() && !includePassed {
		return ""
	}
	if r.HasWarnings() && !r.HasErrors() && !includeWarnings {
		return ""
	}

	var b strings.Builder
	b.WriteString("audit for " + r.token + ": " + r.Result())
	for _, e := range r.errors {
		b.WriteString("\n - " + e)
	}
	if includeWarnings {
		for _, w := range r.warnings {
			b.WriteString("\n - " + w)
		}
	}
	return b.String()
}
