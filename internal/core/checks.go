package core

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/EmundoT/variant-audit/internal/types"
	"golang.org/x/text/language"
)

var (
	tokenPattern  = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*(@[a-z0-9.-]+)?$`)
	sha256Pattern = regexp.MustCompile(`^[0-9a-f]{64}$`)
)

// DefaultChecks returns the built-in check registry in run order.
func DefaultChecks() []Check {
	return []Check{
		{Name: "required_fields", Description: "token, version and url are present", Run: checkRequiredFields},
		{Name: "token_format", Description: "token is lowercase with an optional @suffix", Run: checkTokenFormat},
		{Name: "url_scheme", Description: "url uses https", Run: checkURLScheme},
		{Name: "checksum", Description: "sha256 is a hex digest or no_check", Run: checkChecksum},
		{Name: "languages", Description: "variant language tags are valid and unambiguous", Run: checkLanguages},
		{
			Name:        "new_package",
			Description: "new submissions carry a description, homepage and pinned version",
			Enabled:     func(p PolicyBundle) bool { return p.NewPackage },
			Run:         checkNewPackage,
		},
		{
			Name:        "token_conflicts",
			Description: "token does not collide with a known token",
			Enabled:     func(p PolicyBundle) bool { return p.TokenConflicts },
			Run:         checkTokenConflicts,
		},
		{
			Name:        "signing",
			Description: "signature url and key are declared",
			Enabled:     func(p PolicyBundle) bool { return p.Signing },
			Run:         checkSigning,
		},
		{
			Name:        "url_reachable",
			Description: "url answers a HEAD request",
			Enabled:     func(p PolicyBundle) bool { return p.Online },
			Run:         checkURLReachable,
		},
		{
			Name:        "download",
			Description: "downloaded artifact matches sha256",
			Enabled:     func(p PolicyBundle) bool { return p.Download },
			Run:         checkDownload,
		},
	}
}

func checkRequiredFields(_ context.Context, cc *CheckContext) error {
	if cc.Def.Token == "" {
		cc.Report.AddError("a token is required")
	}
	if cc.Resolved.Version == "" {
		cc.Report.AddError("a version stanza is required")
	}
	if cc.Resolved.URL == "" {
		cc.Report.AddError("a url stanza is required")
	}
	return nil
}

func checkTokenFormat(_ context.Context, cc *CheckContext) error {
	if cc.Def.Token == "" {
		return nil
	}
	if !tokenPattern.MatchString(cc.Def.Token) {
		cc.Report.AddError(fmt.Sprintf("token '%s' must be lowercase letters, digits and hyphens", cc.Def.Token))
	}
	return nil
}

func checkURLScheme(_ context.Context, cc *CheckContext) error {
	raw := cc.Resolved.URL
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		cc.Report.AddError(fmt.Sprintf("url '%s' is not a valid URL", raw))
		return nil
	}
	switch u.Scheme {
	case "https":
	case "http":
		cc.strictFinding(fmt.Sprintf("url '%s' should use https", raw))
	default:
		cc.Report.AddError(fmt.Sprintf("url '%s' has unsupported scheme '%s'", raw, u.Scheme))
	}
	return nil
}

func checkChecksum(_ context.Context, cc *CheckContext) error {
	sum := cc.Resolved.SHA256
	switch {
	case sum == "":
		cc.Report.AddError("a sha256 stanza is required")
	case sum == NoCheck:
		cc.strictFinding("sha256 is no_check; the download cannot be verified")
	case !sha256Pattern.MatchString(sum):
		cc.Report.AddError(fmt.Sprintf("sha256 '%s' is not a 64-character lowercase hex digest", sum))
	}
	return nil
}

func checkLanguages(_ context.Context, cc *CheckContext) error {
	catalog, ok := cc.Def.Variants()
	if !ok {
		return nil
	}

	for _, dup := range types.DuplicateKeys(*cc.Def.Languages) {
		cc.Report.AddError(fmt.Sprintf("language variant %s is declared more than once", dup.Quoted()))
	}

	defaults := 0
	for i, key := range catalog.Keys() {
		if len(key) == 0 {
			cc.Report.AddError(fmt.Sprintf("language variant %d declares no tags", i+1))
			continue
		}
		if b, _ := catalog.Block(key); b.Default {
			defaults++
		}
		for _, tag := range key {
			parsed, err := language.Parse(tag)
			if err != nil {
				cc.Report.AddError(fmt.Sprintf("language tag '%s' is not a valid locale identifier", tag))
				continue
			}
			if canonical := parsed.String(); canonical != tag {
				cc.Report.AddWarning(fmt.Sprintf("language tag '%s' should be written '%s'", tag, canonical))
			}
		}
	}

	if catalog.Len() > 0 && defaults == 0 {
		cc.strictFinding("no language variant is marked default")
	}
	if defaults > 1 {
		cc.Report.AddError(fmt.Sprintf("only one language variant may be marked default, found %d", defaults))
	}

	if len(cc.Config.Languages) > 0 && catalog.Len() > 0 && cc.Resolved.Key == nil {
		cc.Report.AddWarning(fmt.Sprintf("language '%s' is not provided by any variant", cc.Config.Languages[0]))
	}
	return nil
}

func checkNewPackage(_ context.Context, cc *CheckContext) error {
	if strings.TrimSpace(cc.Def.Description) == "" {
		cc.Report.AddError("new packages must have a description")
	}
	if strings.TrimSpace(cc.Def.Homepage) == "" {
		cc.Report.AddError("new packages must have a homepage")
	}
	if strings.EqualFold(cc.Resolved.Version, "latest") {
		cc.Report.AddError("new packages must pin a version instead of 'latest'")
	}
	return nil
}

func checkTokenConflicts(_ context.Context, cc *CheckContext) error {
	if cc.Def.Token == "" {
		return nil
	}
	base, _, _ := strings.Cut(cc.Def.Token, "@")
	for _, candidate := range []string{cc.Def.Token, base} {
		if cc.KnownTokens.Has(candidate) {
			cc.Report.AddError(fmt.Sprintf("token '%s' conflicts with existing package '%s'", cc.Def.Token, candidate))
			return nil
		}
	}
	return nil
}

func checkSigning(_ context.Context, cc *CheckContext) error {
	sig := cc.Def.Signature
	if sig == nil {
		cc.Report.AddError("signature verification requires a signature stanza")
		return nil
	}
	if sig.URL == "" {
		cc.Report.AddError("signature stanza is missing a url")
	}
	if sig.Key == "" {
		cc.Report.AddError("signature stanza is missing a key")
	}
	return nil
}
