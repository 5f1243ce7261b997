// Package update checks whether a newer lspkit release is available.
package update

import (
	"context"
	"fmt"

	"github.com/lspkit/lspkit/internal/github"
	"github.com/lspkit/lspkit/internal/messages"
	"github.com/lspkit/lspkit/internal/version"
)

// Repo identifies the GitHub repository used for release checks.
const Repo = "lspkit/lspkit"

// EnvNoNetwork disables all network access when set (update checks and
// release resolution alike honor it at the CLI layer).
const EnvNoNetwork = "LSPKIT_NO_NETWORK"

var latestRelease = github.LatestRelease

// CheckResult captures the latest release check outcome.
type CheckResult struct {
	Current      string
	Latest       string
	Outdated     bool
	CurrentIsDev bool
}

// Check fetches the latest release and compares it to currentVersion.
func Check(ctx context.Context, currentVersion string) (CheckResult, error) {
	current, isDev, err := normalizeCurrentVersion(currentVersion)
	if err != nil {
		return CheckResult{}, err
	}

	release, err := latestRelease(ctx, Repo)
	if err != nil {
		return CheckResult{}, err
	}
	latest, err := version.Normalize(release.TagName)
	if err != nil {
		return CheckResult{}, fmt.Errorf(messages.UpdateInvalidLatestReleaseTagFmt, release.TagName, err)
	}

	result := CheckResult{
		Current:      current,
		Latest:       latest,
		CurrentIsDev: isDev,
	}
	if !isDev {
		cmp, err := version.Compare(current, latest)
		if err != nil {
			return CheckResult{}, fmt.Errorf(messages.UpdateCompareVersionsFmt, current, latest, err)
		}
		result.Outdated = cmp < 0
	}
	return result, nil
}

// normalizeCurrentVersion validates the running version and reports dev builds.
func normalizeCurrentVersion(raw string) (string, bool, error) {
	if version.IsDev(raw) {
		return "dev", true, nil
	}
	normalized, err := version.Normalize(raw)
	if err != nil {
		return "", false, fmt.Errorf(messages.UpdateInvalidCurrentVersionFmt, raw, err)
	}
	return normalized, false, nil
}
