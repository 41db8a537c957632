// Package tui provides terminal output callbacks for variant-audit.
package tui

import (
	"fmt"
	"os"

	"github.com/EmundoT/variant-audit/internal/core"
)

// TUICallback implements UICallback for interactive terminal use with styled output.
//
//nolint:revive // Name TUICallback is intentional and descriptive
type TUICallback struct{}

// NewTUICallback creates a new interactive terminal UI callback.
func NewTUICallback() *TUICallback {
	return &TUICallback{}
}

// NewCallback picks the callback for flags: styled output on a terminal in
// normal mode, plain or JSON output everywhere else.
func NewCallback(flags core.NonInteractiveFlags) core.UICallback {
	if flags.Mode == core.OutputNormal && IsTerminal(os.Stdout) {
		return NewTUICallback()
	}
	return NewNonInteractiveTUICallback(flags)
}

// ShowInfo displays a "==>" notice.
func (t *TUICallback) ShowInfo(message string) {
	PrintInfo(message)
}

// ShowSummary prints a report summary, colouring its header line by result.
func (t *TUICallback) ShowSummary(summary string) {
	fmt.Println(styleSummary(summary))
}

// ShowError displays an error message with styled output.
func (t *TUICallback) ShowError(title, message string) {
	PrintError(title, message)
}

// ShowSuccess displays a success message with styled output.
func (t *TUICallback) ShowSuccess(message string) {
	PrintSuccess(message)
}

// ShowWarning displays a warning message with styled output.
func (t *TUICallback) ShowWarning(title, message string) {
	PrintWarning(title, message)
}

// StyleTitle returns a styled title string for terminal output.
func (t *TUICallback) StyleTitle(title string) string {
	return StyleTitle(title)
}

// GetOutputMode returns the output mode (normal for interactive TUI)
func (t *TUICallback) GetOutputMode() core.OutputMode {
	return core.OutputNormal
}

// FormatJSON is not used in interactive mode
func (t *TUICallback) FormatJSON(_ any) error {
	return nil
}
