package core

import (
	"context"
	"fmt"

	"github.com/EmundoT/variant-audit/internal/types"
)

// AuditOptions configures one Auditor. Every field is fixed for the
// Auditor's lifetime.
type AuditOptions struct {
	DownloadAudit       bool
	OnlineAudit         bool
	StrictAudit         bool
	SigningAudit        bool
	TokenConflictsAudit bool
	NewPackageAudit     bool
	Quarantine          bool

	AnyNamedArgs        bool     // The caller named definitions explicitly
	ExplicitLanguage    []string // Audit only this language; skips the variant catalog
	DisplayPasses       bool
	DisplayFailuresOnly bool

	OnlyChecks   []string
	ExceptChecks []string
}

// PolicyBundle derives the engine policy from the options.
func (o AuditOptions) PolicyBundle() PolicyBundle {
	return PolicyBundle{
		Online:         o.OnlineAudit,
		Strict:         o.StrictAudit,
		Signing:        o.SigningAudit,
		TokenConflicts: o.TokenConflictsAudit,
		NewPackage:     o.NewPackageAudit,
		Download:       o.DownloadAudit,
		Quarantine:     o.Quarantine,
		Only:           append([]string(nil), o.OnlyChecks...),
		Except:         append([]string(nil), o.ExceptChecks...),
	}
}

// AggregateResult is the set union of the warnings and errors of every
// validation pass an audit performed.
type AggregateResult struct {
	Warnings types.Set `json:"warnings"`
	Errors   types.Set `json:"errors"`
}

func newAggregateResult() *AggregateResult {
	return &AggregateResult{Warnings: types.NewSet(), Errors: types.NewSet()}
}

func (r *AggregateResult) merge(report *Report) {
	if report == nil {
		return
	}
	r.Warnings.Add(report.Warnings()...)
	r.Errors.Add(report.Errors()...)
}

// Auditor audits every selected localized variant of one definition and
// merges the findings.
type Auditor struct {
	def     *types.PackageDefinition
	engine  ValidationEngine
	ui      UICallback
	sampler Sampler
	opts    AuditOptions
	policy  PolicyBundle
}

// AuditorOption customizes an Auditor.
type AuditorOption func(*Auditor)

// WithSampler replaces the random sampler used for large catalogs.
func WithSampler(s Sampler) AuditorOption {
	return func(a *Auditor) { a.sampler = s }
}

// NewAuditor creates an Auditor. A nil ui prints nothing.
func NewAuditor(def *types.PackageDefinition, engine ValidationEngine, ui UICallback, opts AuditOptions, options ...AuditorOption) *Auditor {
	if ui == nil {
		ui = &SilentUICallback{}
	}
	a := &Auditor{
		def:     def,
		engine:  engine,
		ui:      ui,
		sampler: RandomSampler{},
		opts:    opts,
		policy:  opts.PolicyBundle(),
	}
	for _, o := range options {
		o(a)
	}
	return a
}

// Audit constructs an Auditor and runs it once.
func Audit(ctx context.Context, def *types.PackageDefinition, engine ValidationEngine, ui UICallback, opts AuditOptions, options ...AuditorOption) (*AggregateResult, error) {
	return NewAuditor(def, engine, ui, opts, options...).Audit(ctx)
}

// Audit validates the definition and returns the merged warnings and errors.
//
// Without an explicit language, a definition that declares localized
// variants is validated once per variant with that variant active. Catalogs
// larger than SampleLimit are sampled unless the new-package policy is set.
//
// An engine failure aborts the whole audit: the definition's configuration
// is restored and no partial result is returned.
func (a *Auditor) Audit(ctx context.Context) (*AggregateResult, error) {
	result := newAggregateResult()

	catalog, hasVariants := a.def.Variants()
	if len(a.opts.ExplicitLanguage) > 0 || !hasVariants {
		report, err := a.auditSingle(ctx)
		if err != nil {
			return nil, err
		}
		a.printSummary(report, nil)
		result.merge(report)
		return result, nil
	}

	for _, key := range a.selectKeys(catalog) {
		report, err := a.auditLanguage(ctx, key)
		if err != nil {
			return nil, fmt.Errorf(ErrLanguageAuditMsg, key.Quoted(), err)
		}
		a.printSummary(report, key)
		result.merge(report)
	}

	return result, nil
}

// selectKeys returns the catalog keys to audit, in declaration order.
func (a *Auditor) selectKeys(catalog *types.VariantCatalog) []types.LanguageKey {
	keys := catalog.Keys()
	if len(keys) <= SampleLimit || a.opts.NewPackageAudit {
		return keys
	}

	sample := a.sampler.Sample(keys, SampleLimit)
	tags := make([]string, len(sample))
	picked := make(map[string]struct{}, len(sample))
	for i, k := range sample {
		tags[i] = k.Primary()
		picked[k.ID()] = struct{}{}
	}
	a.ui.ShowInfo("Auditing a sample of available languages: " + types.ToSentence(tags))

	selected := make([]types.LanguageKey, 0, len(sample))
	for _, k := range keys {
		if _, ok := picked[k.ID()]; ok {
			selected = append(selected, k)
		}
	}
	Logger().Debug("sampled languages", "token", a.def.Token, "catalog", len(keys), "selected", len(selected))
	return selected
}

// auditSingle runs one pass over the definition as it stands. An explicit
// language is handed to the engine without touching the definition.
func (a *Auditor) auditSingle(ctx context.Context) (*Report, error) {
	cfg := a.def.Config()
	if len(a.opts.ExplicitLanguage) > 0 {
		cfg = types.Merge(cfg, types.Config{Languages: a.opts.ExplicitLanguage})
	}
	return a.engine.Run(ctx, a.def, cfg, a.policy)
}

func (a *Auditor) auditLanguage(ctx context.Context, key types.LanguageKey) (*Report, error) {
	Logger().Debug("auditing language", "token", a.def.Token, "key", key.String())
	return WithVariant(a.def, a.def.Config(), key, func(scoped types.Config) (*Report, error) {
		return a.engine.Run(ctx, a.def, scoped, a.policy)
	})
}

// printSummary prints report when the output policy allows it and the
// rendered summary is non-empty. A non-nil key is announced first.
func (a *Auditor) printSummary(report *Report, key types.LanguageKey) {
	if report == nil {
		return
	}
	summary := report.Summary(a.IncludePassed(), a.IncludeWarnings())
	if summary == "" || !a.ShouldPrintSummary(report) {
		return
	}
	if key != nil {
		a.ui.ShowInfo("Auditing language: " + key.Quoted())
	}
	a.ui.ShowSummary(summary)
}
