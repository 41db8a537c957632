package core

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
)

// checkURLReachable issues a HEAD request against the resolved url. Network
// failures are findings; only cancellation of ctx aborts the run.
func checkURLReachable(ctx context.Context, cc *CheckContext) error {
	target := cc.Resolved.URL
	if target == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		cc.Report.AddError(fmt.Sprintf("url '%s' cannot be requested: %v", target, err))
		return nil
	}

	Logger().Debug("HEAD", "url", target)
	resp, err := cc.Client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		cc.Report.AddError(fmt.Sprintf("url '%s' is not reachable: %v", target, err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		cc.Report.AddError(fmt.Sprintf("url '%s' returned HTTP %d", target, resp.StatusCode))
	}
	return nil
}

// checkDownload fetches the resolved url and compares its sha256 with the
// declared one.
func checkDownload(ctx context.Context, cc *CheckContext) error {
	target, want := cc.Resolved.URL, cc.Resolved.SHA256
	if target == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		cc.Report.AddError(fmt.Sprintf("download of '%s' cannot be requested: %v", target, err))
		return nil
	}

	Logger().Debug("GET", "url", target, "quarantine", cc.Policy.Quarantine)
	resp, err := cc.Client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		cc.Report.AddError(fmt.Sprintf("download of '%s' failed: %v", target, err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		cc.Report.AddError(fmt.Sprintf("download of '%s' returned HTTP %d", target, resp.StatusCode))
		return nil
	}

	h := sha256.New()
	if _, err := io.Copy(h, resp.Body); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		cc.Report.AddError(fmt.Sprintf("download of '%s' was interrupted: %v", target, err))
		return nil
	}

	if want == "" || want == NoCheck {
		return nil
	}
	if got := hex.EncodeToString(h.Sum(nil)); got != want {
		cc.Report.AddError(fmt.Sprintf("sha256 mismatch for '%s': expected %s, got %s", target, want, got))
	}
	return nil
}
