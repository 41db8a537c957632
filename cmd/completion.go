// Package cmd provides CLI utilities for variant-audit
package cmd

import (
	"fmt"
	"strings"
)

// flag describes one completable option.
type flag struct {
	long  string
	short string
	desc  string
	value bool // takes an argument
}

// command describes one subcommand and its options.
type command struct {
	name  string
	desc  string
	flags []flag
}

var outputFlags = []flag{
	{long: "json", desc: "JSON output"},
	{long: "quiet", short: "q", desc: "Minimal output"},
	{long: "verbose", short: "v", desc: "Debug logging"},
}

var auditFlags = append([]flag{
	{long: "online", desc: "Check download URLs"},
	{long: "strict", desc: "Promote style findings to errors"},
	{long: "signing", desc: "Require a signature stanza"},
	{long: "token-conflicts", desc: "Check token collisions"},
	{long: "known-tokens", desc: "File of known tokens", value: true},
	{long: "new", desc: "Audit as a new submission"},
	{long: "download", desc: "Verify downloaded sha256"},
	{long: "quarantine", desc: "Refuse cross-host redirects"},
	{long: "language", desc: "Audit only these language tags", value: true},
	{long: "only", desc: "Run only these checks", value: true},
	{long: "except", desc: "Skip these checks", value: true},
	{long: "display-passes", desc: "Print clean summaries"},
	{long: "display-failures-only", desc: "Hide warnings"},
}, outputFlags...)

// Commands available in variant-audit
var commands = []command{
	{name: "audit", desc: "Audit definitions and their language variants", flags: auditFlags},
	{name: "watch", desc: "Re-audit a definition when it changes", flags: auditFlags},
	{name: "checks", desc: "List available checks", flags: []flag{{long: "json", desc: "JSON output"}}},
	{name: "completion", desc: "Generate shell completion script"},
	{name: "version", desc: "Show version information"},
	{name: "help", desc: "Show help information"},
}

var shells = []string{"bash", "zsh", "fish", "powershell"}

func commandNames() []string {
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.name
	}
	return names
}

// options returns every spelling of c's flags, e.g. "--quiet -q".
func (c command) options() []string {
	var opts []string
	for _, f := range c.flags {
		opts = append(opts, "--"+f.long)
		if f.short != "" {
			opts = append(opts, "-"+f.short)
		}
	}
	return opts
}

// GenerateBashCompletion generates bash completion script
func GenerateBashCompletion() string {
	var cases strings.Builder
	for _, c := range commands {
		if len(c.flags) == 0 {
			continue
		}
		fmt.Fprintf(&cases, "        %s)\n            opts=\"%s\"\n            ;;\n", c.name, strings.Join(c.options(), " "))
	}
	fmt.Fprintf(&cases, "        completion)\n            opts=\"%s\"\n            ;;\n", strings.Join(shells, " "))

	return fmt.Sprintf(`# bash completion for variant-audit
_variant_audit_completions() {
    local cur cmd opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    cmd="${COMP_WORDS[1]}"

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "%s" -- ${cur}) )
        return 0
    fi

    case "${cmd}" in
%s    esac

    if [[ ${cur} == -* || ${cmd} == completion ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    else
        COMPREPLY=( $(compgen -f -- ${cur}) )
    fi
    return 0
}

complete -F _variant_audit_completions variant-audit
`, strings.Join(commandNames(), " "), cases.String())
}

// GenerateZshCompletion generates zsh completion script
func GenerateZshCompletion() string {
	cmdList := make([]string, len(commands))
	var cases strings.Builder
	for i, c := range commands {
		cmdList[i] = fmt.Sprintf("        '%s:%s'", c.name, c.desc)
		if len(c.flags) == 0 {
			continue
		}
		fmt.Fprintf(&cases, "                %s)\n                    _arguments \\\n", c.name)
		for _, f := range c.flags {
			spec := fmt.Sprintf("--%s[%s]", f.long, f.desc)
			if f.value {
				spec = fmt.Sprintf("--%s=[%s]:value:", f.long, f.desc)
			}
			fmt.Fprintf(&cases, "                        '%s' \\\n", spec)
			if f.short != "" {
				fmt.Fprintf(&cases, "                        '-%s[%s]' \\\n", f.short, f.desc)
			}
		}
		cases.WriteString("                        '*:definition:_files -g \"*.yml\"'\n                    ;;\n")
	}

	return fmt.Sprintf(`#compdef variant-audit

_variant_audit() {
    local -a commands
    commands=(
%s
    )

    _arguments -C \
        '1: :->command' \
        '*::arg:->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
%s                completion)
                    _arguments '1:shell:(%s)'
                    ;;
            esac
            ;;
    esac
}

_variant_audit "$@"
`, strings.Join(cmdList, "\n"), cases.String(), strings.Join(shells, " "))
}

// GenerateFishCompletion generates fish completion script
func GenerateFishCompletion() string {
	var completions []string

	for _, c := range commands {
		completions = append(completions, fmt.Sprintf("complete -c variant-audit -f -n '__fish_use_subcommand' -a '%s' -d '%s'", c.name, c.desc))
	}

	for _, c := range commands {
		if len(c.flags) == 0 {
			continue
		}
		completions = append(completions, fmt.Sprintf("# %s command flags", c.name))
		for _, f := range c.flags {
			line := fmt.Sprintf("complete -c variant-audit -n '__fish_seen_subcommand_from %s' -l %s", c.name, f.long)
			if f.short != "" {
				line += " -s " + f.short
			}
			line += fmt.Sprintf(" -d '%s'", f.desc)
			if f.value {
				line += " -r"
			}
			completions = append(completions, line)
		}
	}

	completions = append(completions, "# completion command shells")
	completions = append(completions, fmt.Sprintf("complete -c variant-audit -n '__fish_seen_subcommand_from completion' -f -a '%s'", strings.Join(shells, " ")))

	return strings.Join(completions, "\n")
}

// GeneratePowerShellCompletion generates PowerShell completion script
func GeneratePowerShellCompletion() string {
	var cases strings.Builder
	for _, c := range commands {
		if len(c.flags) == 0 {
			continue
		}
		fmt.Fprintf(&cases, "            '%s' { $candidates = @(%s) }\n", c.name, quoteAll(c.options()))
	}
	fmt.Fprintf(&cases, "            'completion' { $candidates = @(%s) }\n", quoteAll(shells))

	return fmt.Sprintf(`# PowerShell completion for variant-audit
Register-ArgumentCompleter -Native -CommandName variant-audit -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $commands = @(%s)

    $line = $commandAst.ToString()
    $tokens = $line.Split(' ')

    if ($tokens.Count -eq 2) {
        $candidates = $commands
    }
    else {
        $candidates = @()
        switch ($tokens[1]) {
%s        }
    }

    $candidates | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
    }
}
`, quoteAll(commandNames()), cases.String())
}

func quoteAll(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = "'" + w + "'"
	}
	return strings.Join(quoted, ", ")
}

// getCommandDescription returns a short description for a command
func getCommandDescription(name string) string {
	for _, c := range commands {
		if c.name == name {
			return c.desc
		}
	}
	return ""
}
