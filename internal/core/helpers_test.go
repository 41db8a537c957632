package core

import (
	"fmt"
	"strings"

	"github.com/EmundoT/variant-audit/internal/types"
)

// ============================================================================
// Definition builders
// ============================================================================

// newTestDefinition creates a valid definition without localized variants.
func newTestDefinition(token string) *types.PackageDefinition {
	return &types.PackageDefinition{
		Token:   token,
		Version: "1.2.3",
		URL:     "https://example.com/" + token + ".zip",
		SHA256:  strings.Repeat("a", 64),
	}
}

// newLocalizedDefinition creates a definition with one single-tag variant per tag.
// The first variant is marked default.
func newLocalizedDefinition(token string, tags ...string) *types.PackageDefinition {
	def := newTestDefinition(token)
	blocks := make([]types.LanguageBlock, 0, len(tags))
	for i, tag := range tags {
		blocks = append(blocks, types.LanguageBlock{Tags: types.LanguageKey{tag}, Default: i == 0})
	}
	def.Languages = &blocks
	return def
}

// numberedTags returns n distinct tags: "l00", "l01", ...
func numberedTags(n int) []string {
	tags := make([]string, n)
	for i := range tags {
		tags[i] = fmt.Sprintf("l%02d", i)
	}
	return tags
}

// reportWith builds a report holding the given findings.
func reportWith(token string, warnings, errs []string) *Report {
	r := NewReport(token)
	for _, w := range warnings {
		r.AddWarning(w)
	}
	for _, e := range errs {
		r.AddError(e)
	}
	return r
}

// ============================================================================
// Recording UI
// ============================================================================

// uiCall is one recorded UICallback invocation.
type uiCall struct {
	kind string // "info", "summary", "error", "warning", "success"
	text string
}

// recordingUI implements UICallback and records everything shown.
type recordingUI struct {
	SilentUICallback
	calls []uiCall
}

func (r *recordingUI) ShowInfo(message string) {
	r.calls = append(r.calls, uiCall{"info", message})
}

func (r *recordingUI) ShowSummary(summary string) {
	r.calls = append(r.calls, uiCall{"summary", summary})
}

func (r *recordingUI) ShowError(title, message string) {
	r.calls = append(r.calls, uiCall{"error", title + ": " + message})
}

func (r *recordingUI) ShowWarning(title, message string) {
	r.calls = append(r.calls, uiCall{"warning", title + ": " + message})
}

func (r *recordingUI) ShowSuccess(message string) {
	r.calls = append(r.calls, uiCall{"success", message})
}

// byKind returns the texts of all calls of one kind, in order.
func (r *recordingUI) byKind(kind string) []string {
	var out []string
	for _, c := range r.calls {
		if c.kind == kind {
			out = append(out, c.text)
		}
	}
	return out
}

// ============================================================================
// Samplers
// ============================================================================

// lastNSampler deterministically picks the last n keys in reverse order, so
// tests can tell draw order from catalog order.
type lastNSampler struct{}

func (lastNSampler) Sample(keys []types.LanguageKey, n int) []types.LanguageKey {
	if n > len(keys) {
		n = len(keys)
	}
	out := make([]types.LanguageKey, 0, n)
	for i := len(keys) - 1; i >= len(keys)-n; i-- {
		out = append(out, keys[i])
	}
	return out
}
