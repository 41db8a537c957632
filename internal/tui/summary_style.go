package tui

import (
	"strings"

	"github.com/EmundoT/variant-audit/internal/core"
)

// styleSummary colours the "audit for <token>: <result>" header of a report
// summary. Diagnostic lines are left as they are.
func styleSummary(summary string) string {
	header, rest, found := strings.Cut(summary, "\n")

	switch {
	case strings.HasSuffix(header, ": "+core.ReportFailed):
		header = styleErr.Render(header)
	case strings.HasSuffix(header, ": "+core.ReportWarning):
		header = styleWarn.Render(header)
	case strings.HasSuffix(header, ": "+core.ReportPassed):
		header = styleSuccess.Render(header)
	}

	if !found {
		return header
	}
	return header + "\n" + rest
}
