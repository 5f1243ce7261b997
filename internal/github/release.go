// Package github queries the GitHub release index for tool binaries.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lspkit/lspkit/internal/messages"
)

var apiBaseURL = "https://api.github.com"
var httpClient = &http.Client{Timeout: 30 * time.Second}

// ErrNoMatchingAsset reports that a release carries no asset with the
// resolved platform name. A later release may fix this; the current release
// cannot, so callers must not retry within the same provisioning attempt.
var ErrNoMatchingAsset = errors.New("no matching release asset")

// Asset is a downloadable file attached to a release.
type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// Release is the latest published release of a repository.
type Release struct {
	TagName string  `json:"tag_name"`
	Assets  []Asset `json:"assets"`
}

// RateLimitError indicates GitHub's API rate limit was hit during a release query.
type RateLimitError struct {
	StatusCode int
	Status     string
	Remaining  *int
}

func (e *RateLimitError) Error() string {
	remainingText := "unknown"
	if e.Remaining != nil {
		remainingText = strconv.Itoa(*e.Remaining)
	}
	return fmt.Sprintf("github api rate limit exceeded (%s, remaining=%s)", e.Status, remainingText)
}

// IsRateLimitError reports whether err represents a GitHub API rate-limit condition.
func IsRateLimitError(err error) bool {
	var rl *RateLimitError
	return errors.As(err, &rl)
}

// LatestRelease fetches the latest published release of repo (owner/name form).
// The releases/latest endpoint excludes pre-releases and drafts on the server
// side, so no client-side filtering is needed. Transient failures propagate to
// the caller, which owns the decision to retry the whole provisioning flow.
func LatestRelease(ctx context.Context, repo string) (*Release, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	url := apiBaseURL + "/repos/" + repo + "/releases/latest"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf(messages.GitHubCreateRequestErrFmt, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "lspkit")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf(messages.GitHubFetchReleaseErrFmt, repo, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		if rateLimitErr := rateLimitErrorFromResponse(resp); rateLimitErr != nil {
			return nil, fmt.Errorf(messages.GitHubFetchReleaseErrFmt, repo, rateLimitErr)
		}
		return nil, fmt.Errorf(messages.GitHubFetchReleaseStatusFmt, repo, resp.Status)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf(messages.GitHubDecodeReleaseErrFmt, repo, err)
	}
	if strings.TrimSpace(release.TagName) == "" {
		return nil, errors.New(messages.GitHubReleaseMissingTag)
	}
	return &release, nil
}

// FindAsset selects the asset whose name exactly equals name.
func FindAsset(release *Release, name string) (*Asset, error) {
	for i := range release.Assets {
		if release.Assets[i].Name == name {
			return &release.Assets[i], nil
		}
	}
	return nil, fmt.Errorf(messages.GitHubNoMatchingAssetFmt, release.TagName, name, ErrNoMatchingAsset)
}

func rateLimitErrorFromResponse(resp *http.Response) *RateLimitError {
	if resp.StatusCode == http.StatusTooManyRequests {
		return &RateLimitError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	// GitHub returns 403 Forbidden for unauthenticated exhaustion; confirm with rate-limit headers.
	if resp.StatusCode == http.StatusForbidden {
		remainingStr := strings.TrimSpace(resp.Header.Get("X-RateLimit-Remaining"))
		if remainingStr == "" {
			return nil
		}
		remaining, err := strconv.Atoi(remainingStr)
		if err != nil {
			return nil
		}
		if remaining == 0 {
			return &RateLimitError{StatusCode: resp.StatusCode, Status: resp.Status, Remaining: &remaining}
		}
	}
	return nil
}
