package messages

// GitHub release index messages.
const (
	// GitHubCreateRequestErrFmt formats request construction failures.
	GitHubCreateRequestErrFmt = "failed to create release request: %w"
	// GitHubFetchReleaseErrFmt formats transport-level release query failures.
	GitHubFetchReleaseErrFmt = "failed to fetch latest release for %s: %w"
	// GitHubFetchReleaseStatusFmt formats non-OK release query responses.
	GitHubFetchReleaseStatusFmt = "failed to fetch latest release for %s: %s"
	// GitHubDecodeReleaseErrFmt formats release payload decode failures.
	GitHubDecodeReleaseErrFmt = "failed to decode latest release for %s: %w"
	// GitHubReleaseMissingTag reports a release payload without a tag name.
	GitHubReleaseMissingTag = "latest release has no tag name"
	// GitHubNoMatchingAssetFmt names the asset that no release asset matched.
	GitHubNoMatchingAssetFmt = "release %s has no asset named %q: %w"
)
