package core

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/EmundoT/variant-audit/internal/types"
)

// Check is one named rule the CheckEngine can run.
type Check struct {
	Name        string
	Description string
	// Enabled gates the check on the policy; nil means always enabled.
	Enabled func(PolicyBundle) bool
	// Run records findings on cc.Report. A returned error aborts the engine
	// run; problems with the definition itself are findings, not errors.
	Run func(ctx context.Context, cc *CheckContext) error
}

// CheckContext is what a Check sees during one engine run.
type CheckContext struct {
	Def         *types.PackageDefinition
	Config      types.Config
	Policy      PolicyBundle
	Resolved    types.Resolved
	Report      *Report
	Client      *http.Client
	KnownTokens types.Set
}

// strictFinding records an error under strict mode and a warning otherwise.
func (cc *CheckContext) strictFinding(message string) {
	if cc.Policy.Strict {
		cc.Report.AddError(message)
		return
	}
	cc.Report.AddWarning(message)
}

// CheckEngine is the built-in ValidationEngine. It runs a fixed registry of
// named checks filtered by the policy's gates and Only/Except lists.
type CheckEngine struct {
	checks      []Check
	client      *http.Client
	knownTokens types.Set
}

// Compile-time interface satisfaction check for CheckEngine.
var _ ValidationEngine = (*CheckEngine)(nil)

// CheckEngineOption customizes a CheckEngine.
type CheckEngineOption func(*CheckEngine)

// WithHTTPClient sets the client used by online checks.
func WithHTTPClient(c *http.Client) CheckEngineOption {
	return func(e *CheckEngine) { e.client = c }
}

// WithKnownTokens sets the tokens the token_conflicts check compares against.
func WithKnownTokens(tokens ...string) CheckEngineOption {
	return func(e *CheckEngine) { e.knownTokens = types.NewSet(tokens...) }
}

// WithChecks replaces the check registry.
func WithChecks(checks ...Check) CheckEngineOption {
	return func(e *CheckEngine) { e.checks = checks }
}

// NewCheckEngine creates an engine with the default check registry.
func NewCheckEngine(options ...CheckEngineOption) *CheckEngine {
	e := &CheckEngine{
		checks:      DefaultChecks(),
		client:      &http.Client{Timeout: DefaultHTTPTimeout},
		knownTokens: types.NewSet(),
	}
	for _, o := range options {
		o(e)
	}
	return e
}

// Checks returns the registered checks in run order.
func (e *CheckEngine) Checks() []Check {
	return slices.Clone(e.checks)
}

// Run implements ValidationEngine.
func (e *CheckEngine) Run(ctx context.Context, def *types.PackageDefinition, cfg types.Config, policy PolicyBundle) (*Report, error) {
	selected, err := e.selectChecks(policy)
	if err != nil {
		return nil, err
	}

	cc := &CheckContext{
		Def:         def,
		Config:      cfg,
		Policy:      policy,
		Resolved:    def.Resolve(cfg),
		Report:      NewReport(def.Token),
		Client:      e.httpClient(policy),
		KnownTokens: e.knownTokens,
	}

	for _, c := range selected {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("audit cancelled: %w", err)
		}
		Logger().Debug("running check", "check", c.Name, "token", def.Token, "languages", strings.Join(cfg.Languages, ","))
		if err := c.Run(ctx, cc); err != nil {
			return nil, fmt.Errorf("check %s: %w", c.Name, err)
		}
	}

	return cc.Report, nil
}

// selectChecks applies the policy gates and the Only/Except filters.
func (e *CheckEngine) selectChecks(policy PolicyBundle) ([]Check, error) {
	known := make(map[string]struct{}, len(e.checks))
	for _, c := range e.checks {
		known[c.Name] = struct{}{}
	}
	for _, name := range append(slices.Clone(policy.Only), policy.Except...) {
		if _, ok := known[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCheck, name)
		}
	}

	var selected []Check
	for _, c := range e.checks {
		if len(policy.Only) > 0 && !slices.Contains(policy.Only, c.Name) {
			continue
		}
		if slices.Contains(policy.Except, c.Name) {
			continue
		}
		if c.Enabled != nil && !c.Enabled(policy) {
			continue
		}
		selected = append(selected, c)
	}
	return selected, nil
}

// httpClient returns the client for one run. Under quarantine, redirects to
// a different host are refused.
func (e *CheckEngine) httpClient(policy PolicyBundle) *http.Client {
	if !policy.Quarantine {
		return e.client
	}
	c := *e.client
	c.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if len(via) > 0 && !strings.EqualFold(req.URL.Host, via[0].URL.Host) {
			return fmt.Errorf("quarantine: redirect from %s to %s refused", via[0].URL.Host, req.URL.Host)
		}
		if len(via) >= 10 {
			return fmt.Errorf("stopped after %d redirects", len(via))
		}
		return nil
	}
	return &c
}
