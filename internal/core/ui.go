package core

// UICallback receives everything the auditor and the CLI print. Implementations
// decide styling and whether anything is shown at all.
type UICallback interface {
	// ShowInfo prints an informational notice ("==> ..." in plain output).
	ShowInfo(message string)
	// ShowSummary prints a rendered report summary verbatim.
	ShowSummary(summary string)
	ShowError(title, message string)
	ShowWarning(title, message string)
	ShowSuccess(message string)
	StyleTitle(title string) string

	GetOutputMode() OutputMode
	FormatJSON(v any) error
}

// SilentUICallback is a no-op implementation (for testing/CI)
type SilentUICallback struct{}

func (s *SilentUICallback) ShowInfo(message string)           {}
func (s *SilentUICallback) ShowSummary(summary string)        {}
func (s *SilentUICallback) ShowError(title, message string)   {}
func (s *SilentUICallback) ShowWarning(title, message string) {}
func (s *SilentUICallback) ShowSuccess(message string)        {}
func (s *SilentUICallback) StyleTitle(title string) string    { return title }
func (s *SilentUICallback) GetOutputMode() OutputMode         { return OutputNormal }
func (s *SilentUICallback) FormatJSON(v any) error            { return nil }
