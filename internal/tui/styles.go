package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	styleArrow   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5F87FF"))
	styleErr     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PrintError displays an error message with styling to the terminal.
func PrintError(title, msg string) { fmt.Println(styleErr.Render("✖ " + title)); fmt.Println(msg) }

// PrintSuccess displays a success message with styling to the terminal.
func PrintSuccess(msg string) { fmt.Println(styleSuccess.Render("✔ " + msg)) }

// PrintInfo displays an informational notice with a leading arrow.
func PrintInfo(msg string) {
	fmt.Println(styleArrow.Render("==>") + " " + lipgloss.NewStyle().Bold(true).Render(msg))
}

// PrintWarning displays a warning message with styling to the terminal.
func PrintWarning(title, msg string) { fmt.Println(styleWarn.Render("! " + title)); fmt.Println(msg) }

// StyleTitle applies title styling to the given text string.
func StyleTitle(text string) string { return styleTitle.Render(text) }

// PrintHelp displays usage information for variant-audit commands.
func PrintHelp() {
	fmt.Println(styleTitle.Render("variant-audit"))
	fmt.Println("Audit package definitions and each of their localized variants")
	fmt.Println("\nCommands:")
	fmt.Println("  audit [options] <file|dir>...")
	fmt.Println("                      Audit definitions, one pass per language variant")
	fmt.Println("    --online          Check that download URLs are reachable")
	fmt.Println("    --strict          Promote style findings to errors")
	fmt.Println("    --signing         Require a signature stanza")
	fmt.Println("    --token-conflicts Fail on tokens that collide with known packages")
	fmt.Println("    --known-tokens=F  File listing known tokens, one per line")
	fmt.Println("    --new             Audit as a new submission (implies --online --strict --token-conflicts)")
	fmt.Println("    --download        Download artifacts and verify their sha256")
	fmt.Println("    --quarantine      Refuse cross-host redirects while downloading")
	fmt.Println("    --language=TAGS   Audit only the given comma-separated language tags")
	fmt.Println("    --only=CHECKS     Run only the named checks")
	fmt.Println("    --except=CHECKS   Skip the named checks")
	fmt.Println("    --display-passes  Print summaries for clean definitions too")
	fmt.Println("    --display-failures-only")
	fmt.Println("                      Hide warnings from printed summaries")
	fmt.Println("  watch [options] <file>")
	fmt.Println("                      Re-run the audit whenever the definition changes")
	fmt.Println("  checks              List the available checks")
	fmt.Println("  completion <shell>  Generate a shell completion script (bash, zsh, fish, powershell)")
	fmt.Println("  version             Show version information")
	fmt.Println("  help                Show this help")
	fmt.Println("\nOutput options:")
	fmt.Println("  --json              Emit machine-readable JSON")
	fmt.Println("  --quiet, -q         Only print summaries and errors")
	fmt.Println("  --verbose, -v       Log debug information to stderr")
	fmt.Println(styleDim.Render("\nExit codes: 0 = clean or warnings only, 1 = errors found or audit failed"))
}
