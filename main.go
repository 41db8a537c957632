// Package main implements the variant-audit CLI for auditing package
// definitions and each of their localized variants.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/EmundoT/variant-audit/cmd"
	"github.com/EmundoT/variant-audit/internal/core"
	"github.com/EmundoT/variant-audit/internal/tui"
	"github.com/EmundoT/variant-audit/internal/types"
	"github.com/EmundoT/variant-audit/internal/version"
)

// errUsage marks argument errors that should be followed by a usage hint.
var errUsage = errors.New("invalid arguments")

// parseCommonFlags extracts common non-interactive flags from args
// Returns: flags, remainingArgs
func parseCommonFlags(args []string) (core.NonInteractiveFlags, []string) {
	flags := core.NonInteractiveFlags{}
	var remaining []string

	for _, arg := range args {
		switch arg {
		case "--quiet", "-q":
			flags.Mode = core.OutputQuiet
		case "--json":
			flags.Mode = core.OutputJSON
		case "--verbose", "-v":
			flags.Verbose = true
		default:
			remaining = append(remaining, arg)
		}
	}

	return flags, remaining
}

// auditArgs holds the parsed arguments of `audit` and `watch`.
type auditArgs struct {
	opts        core.AuditOptions
	arch        string
	knownTokens string
	paths       []string
}

// baseConfig is installed on every loaded definition.
func (a auditArgs) baseConfig() types.Config {
	return types.Config{Architecture: a.arch}
}

// valueFlags take an argument, as "--name=value" or "--name value".
var valueFlags = map[string]bool{
	"--language":     true,
	"--only":         true,
	"--except":       true,
	"--known-tokens": true,
	"--arch":         true,
}

// parseAuditFlags parses the flags shared by `audit` and `watch`. Anything
// that is not a flag is a definition path.
func parseAuditFlags(args []string) (auditArgs, error) {
	var parsed auditArgs
	opts := &parsed.opts

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			parsed.paths = append(parsed.paths, arg)
			continue
		}

		name, value, hasValue := strings.Cut(arg, "=")
		if valueFlags[name] && !hasValue {
			if i+1 >= len(args) {
				return parsed, fmt.Errorf("%w: %s requires a value", errUsage, name)
			}
			i++
			value = args[i]
		} else if hasValue && !valueFlags[name] {
			return parsed, fmt.Errorf("%w: %s does not take a value", errUsage, name)
		}

		switch name {
		case "--online":
			opts.OnlineAudit = true
		case "--strict":
			opts.StrictAudit = true
		case "--signing":
			opts.SigningAudit = true
		case "--token-conflicts":
			opts.TokenConflictsAudit = true
		case "--new":
			opts.NewPackageAudit = true
		case "--download":
			opts.DownloadAudit = true
		case "--quarantine":
			opts.Quarantine = true
		case "--display-passes":
			opts.DisplayPasses = true
		case "--display-failures-only":
			opts.DisplayFailuresOnly = true
		case "--language":
			opts.ExplicitLanguage = core.SplitList(value)
		case "--only":
			opts.OnlyChecks = core.SplitList(value)
		case "--except":
			opts.ExceptChecks = core.SplitList(value)
		case "--known-tokens":
			parsed.knownTokens = value
		case "--arch":
			parsed.arch = value
		default:
			return parsed, fmt.Errorf("%w: unknown flag %s", errUsage, name)
		}
	}

	// New submissions get the full online and strict treatment.
	if opts.NewPackageAudit {
		opts.OnlineAudit = true
		opts.StrictAudit = true
		opts.TokenConflictsAudit = true
	}
	opts.AnyNamedArgs = len(parsed.paths) > 0

	return parsed, nil
}

// newAuditService wires the file store and the check engine for parsed.
func newAuditService(parsed auditArgs, ui core.UICallback) (*core.AuditService, error) {
	var options []core.CheckEngineOption
	if parsed.knownTokens != "" {
		tokens, err := core.LoadKnownTokens(parsed.knownTokens)
		if err != nil {
			return nil, err
		}
		options = append(options, core.WithKnownTokens(tokens...))
	}
	store := core.NewFileDefinitionStore(parsed.baseConfig())
	return core.NewAuditService(store, core.NewCheckEngine(options...), ui), nil
}

// reportResult prints the outcome of one AuditFiles call and returns the
// exit code: 1 when any definition failed, 0 otherwise.
func reportResult(ui core.UICallback, result *types.AuditResult) int {
	switch ui.GetOutputMode() {
	case core.OutputJSON:
		if err := ui.FormatJSON(result); err != nil {
			fmt.Fprintf(os.Stderr, "Error: JSON Output Failed - %v\n", err)
			return 1
		}
	default:
		for _, d := range result.Definitions {
			if d.Error != "" {
				ui.ShowError("Audit Failed", d.Error)
			}
		}
		if ui.GetOutputMode() == core.OutputNormal {
			fmt.Println()
			fmt.Print(core.FormatAuditTable(result))
		}
	}

	if result.Summary.Result == types.AuditResultFail {
		return 1
	}
	return 0
}

func runAudit(args []string) int {
	flags, rest := parseCommonFlags(args)
	core.SetVerbose(flags.Verbose)
	ui := tui.NewCallback(flags)

	parsed, err := parseAuditFlags(rest)
	if err == nil && len(parsed.paths) == 0 {
		err = fmt.Errorf("%w: no definition files given", errUsage)
	}
	if err != nil {
		ui.ShowError("Usage", err.Error()+"\nvariant-audit audit [flags] <definition.yml|dir>...")
		return 1
	}

	paths, err := core.ExpandDefinitionPaths(parsed.paths)
	if err != nil {
		ui.ShowError("Audit Failed", err.Error())
		return 1
	}

	svc, err := newAuditService(parsed, ui)
	if err != nil {
		ui.ShowError("Audit Failed", err.Error())
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := svc.AuditFiles(ctx, paths, parsed.opts)
	if err != nil {
		ui.ShowError("Audit Failed", err.Error())
		return 1
	}
	return reportResult(ui, result)
}

func runWatch(args []string) int {
	flags, rest := parseCommonFlags(args)
	core.SetVerbose(flags.Verbose)
	ui := tui.NewCallback(flags)

	parsed, err := parseAuditFlags(rest)
	if err == nil && len(parsed.paths) != 1 {
		err = fmt.Errorf("%w: watch takes exactly one definition file", errUsage)
	}
	if err != nil {
		ui.ShowError("Usage", err.Error()+"\nvariant-audit watch [flags] <definition.yml>")
		return 1
	}
	path := parsed.paths[0]

	svc, err := newAuditService(parsed, ui)
	if err != nil {
		ui.ShowError("Watch Failed", err.Error())
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	audit := func() error {
		result, err := svc.AuditFiles(ctx, []string{path}, parsed.opts)
		if err != nil {
			return err
		}
		reportResult(ui, result)
		return nil
	}

	if err := audit(); err != nil {
		ui.ShowError("Audit Failed", err.Error())
	}
	if err := core.NewWatchService(ui).Watch(ctx, path, audit); err != nil {
		ui.ShowError("Watch Failed", err.Error())
		return 1
	}
	return 0
}

// checkInfo is the JSON form of one registered check.
type checkInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	OptIn       bool   `json:"opt_in"`
}

func runChecks(args []string) int {
	flags, rest := parseCommonFlags(args)
	ui := tui.NewCallback(flags)
	if len(rest) > 0 {
		ui.ShowError("Usage", "variant-audit checks [--json]")
		return 1
	}

	checks := core.NewCheckEngine().Checks()
	infos := make([]checkInfo, len(checks))
	for i, c := range checks {
		infos[i] = checkInfo{Name: c.Name, Description: c.Description, OptIn: c.Enabled != nil}
	}

	if ui.GetOutputMode() == core.OutputJSON {
		if err := ui.FormatJSON(infos); err != nil {
			return 1
		}
		return 0
	}

	fmt.Println(ui.StyleTitle("Checks"))
	for _, c := range infos {
		line := fmt.Sprintf("  %-16s %s", c.Name, c.Description)
		if c.OptIn {
			line += " (opt-in)"
		}
		fmt.Println(line)
	}
	return 0
}

func runCompletion(args []string) int {
	if len(args) < 1 {
		tui.PrintError("Usage", "variant-audit completion <shell>\nSupported shells: bash, zsh, fish, powershell")
		return 1
	}

	var script string
	switch shell := args[0]; shell {
	case "bash":
		script = cmd.GenerateBashCompletion()
	case "zsh":
		script = cmd.GenerateZshCompletion()
	case "fish":
		script = cmd.GenerateFishCompletion()
	case "powershell":
		script = cmd.GeneratePowerShellCompletion()
	default:
		tui.PrintError("Invalid Shell", fmt.Sprintf("'%s' is not supported. Use: bash, zsh, fish, or powershell", shell))
		return 1
	}

	fmt.Println(script)
	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		tui.PrintHelp()
		return 0
	}

	command := args[0]
	switch command {
	case "--help", "-h", "help":
		tui.PrintHelp()
		return 0

	case "--version", "version":
		fmt.Printf("variant-audit %s\n", version.GetFullVersion())
		return 0

	case "audit":
		return runAudit(args[1:])

	case "watch":
		return runWatch(args[1:])

	case "checks":
		return runChecks(args[1:])

	case "completion":
		return runCompletion(args[1:])

	default:
		tui.PrintError("Unknown Command", fmt.Sprintf("'%s' is not a valid variant-audit command", command))
		fmt.Println()
		tui.PrintHelp()
		return 1
	}
}
