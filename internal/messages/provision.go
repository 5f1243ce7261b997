package messages

// Provisioning messages for the fetch-and-cache engine and cache reader.
const (
	// ProvisionCreateContainerFmt formats container directory creation failures.
	ProvisionCreateContainerFmt = "failed to create cache container %s: %w"
	ProvisionCreateEntryFmt     = "failed to create cache entry %s: %w"
	ProvisionCloseEntryFmt      = "failed to close cache entry %s: %w"
	ProvisionChmodEntryFmt      = "failed to mark cache entry executable %s: %w"
	ProvisionRequestFmt         = "error downloading release from %s: %w"
	ProvisionDownloadStatusFmt  = "download failed with status %s"
	ProvisionStreamFmt          = "error streaming release to %s: %w"

	// ProvisionResolveFailedFmt wraps release resolution failures for a tool.
	ProvisionResolveFailedFmt = "failed to resolve latest release for %s: %w"
	ProvisionNoBinaryFmt      = "no binary available for %s: %w"
	ProvisionNoCachedFmt      = "no cached binary for %s"
)
