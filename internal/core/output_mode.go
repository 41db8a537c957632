package core

// OutputMode controls how output is displayed
type OutputMode int

// OutputMode constants define available output formatting modes.
const (
	OutputNormal OutputMode = iota // Default: styled output
	OutputQuiet                    // Minimal output
	OutputJSON                     // Structured JSON
)

// NonInteractiveFlags groups the output options shared by every command
type NonInteractiveFlags struct {
	Mode    OutputMode // Output formatting mode
	Verbose bool       // Debug logging on stderr
}

// JSONOutput represents structured output for messages that are not audit results
type JSONOutput struct {
	Status  string     `json:"status"`            // "success", "error", "warning", "info"
	Message string     `json:"message,omitempty"` // Optional message
	Error   *JSONError `json:"error,omitempty"`   // Error details
}

// JSONError represents error information in JSON output
type JSONError struct {
	Title   string `json:"title"`   // Error title
	Message string `json:"message"` // Error message
}
