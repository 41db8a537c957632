package tui

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/EmundoT/variant-audit/internal/core"
)

// NonInteractiveTUICallback handles plain, quiet and JSON output.
//
// Quiet mode keeps report summaries and errors. JSON mode prints nothing but
// JSON documents, so notices and summaries are dropped; the caller emits the
// full audit result at the end.
type NonInteractiveTUICallback struct {
	flags core.NonInteractiveFlags
}

// NewNonInteractiveTUICallback creates a new non-interactive callback
func NewNonInteractiveTUICallback(flags core.NonInteractiveFlags) *NonInteractiveTUICallback {
	return &NonInteractiveTUICallback{flags: flags}
}

// ShowInfo displays an informational notice
func (n *NonInteractiveTUICallback) ShowInfo(message string) {
	if n.flags.Mode == core.OutputNormal {
		fmt.Println("==> " + message)
	}
}

// ShowSummary prints a report summary verbatim
func (n *NonInteractiveTUICallback) ShowSummary(summary string) {
	if n.flags.Mode != core.OutputJSON {
		fmt.Println(summary)
	}
}

// ShowError displays an error message
func (n *NonInteractiveTUICallback) ShowError(title, message string) {
	if n.flags.Mode == core.OutputJSON {
		_ = n.FormatJSON(core.JSONOutput{
			Status: "error",
			Error: &core.JSONError{
				Title:   title,
				Message: message,
			},
		})
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s - %s\n", title, message)
}

// ShowSuccess displays a success message
func (n *NonInteractiveTUICallback) ShowSuccess(message string) {
	if n.flags.Mode == core.OutputNormal {
		fmt.Println(message)
	}
}

// ShowWarning displays a warning message
func (n *NonInteractiveTUICallback) ShowWarning(title, message string) {
	if n.flags.Mode == core.OutputJSON {
		_ = n.FormatJSON(core.JSONOutput{
			Status:  "warning",
			Message: fmt.Sprintf("%s: %s", title, message),
		})
	} else if n.flags.Mode != core.OutputQuiet {
		fmt.Fprintf(os.Stderr, "Warning: %s - %s\n", title, message)
	}
}

// StyleTitle returns a styled title (no styling in non-interactive mode)
func (n *NonInteractiveTUICallback) StyleTitle(title string) string {
	return title
}

// GetOutputMode returns the current output mode
func (n *NonInteractiveTUICallback) GetOutputMode() core.OutputMode {
	return n.flags.Mode
}

// FormatJSON formats and outputs JSON to stdout
func (n *NonInteractiveTUICallback) FormatJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
