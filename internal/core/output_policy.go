package core

// IncludePassed reports whether clean reports are rendered.
// IncludePassed is true only when passes are requested and failures-only is not.
func (a *Auditor) IncludePassed() bool {
	if a.opts.DisplayFailuresOnly {
		return false
	}
	return a.opts.DisplayPasses
}

// IncludeWarnings reports whether warnings are rendered. Only failures-only turns them off.
func (a *Auditor) IncludeWarnings() bool {
	return !a.opts.DisplayFailuresOnly
}

// ShouldPrintSummary reports whether report's summary is printed. Named
// arguments and strict mode always print; otherwise only a report with
// errors does. A nil report never prints on its own merits.
func (a *Auditor) ShouldPrintSummary(report *Report) bool {
	if a.opts.AnyNamedArgs || a.opts.StrictAudit {
		return true
	}
	if report == nil {
		return false
	}
	return report.HasErrors()
}
