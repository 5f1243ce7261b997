package messages

// Update messages for the self-update release check.
const (
	// UpdateInvalidCurrentVersionFmt formats invalid running-version errors.
	UpdateInvalidCurrentVersionFmt = "invalid current version %q: %w"
	// UpdateInvalidLatestReleaseTagFmt formats invalid latest release tags.
	UpdateInvalidLatestReleaseTagFmt = "invalid latest release tag %q: %w"
	// UpdateCompareVersionsFmt formats version comparison failures.
	UpdateCompareVersionsFmt = "failed to compare versions %q and %q: %w"
)
