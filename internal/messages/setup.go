package messages

// Setup messages for the interactive registry wizard.
const (
	// SetupRequiresTerminal rejects interactive prompts without a terminal.
	SetupRequiresTerminal = "setup prompts require an interactive terminal; re-run with --force to use defaults"
	SetupSelectToolsTitle = "Which language servers should lspkit manage?"
	SetupCacheDirTitle    = "Cache root directory (empty for the default)"
	SetupOverwriteTitle   = "Overwrite the existing registry?"
	SetupDiffHeaderFmt    = "Registry changes for %s:\n"
	SetupDiffTruncatedFmt = "... diff truncated at %d lines\n"
	SetupAborted          = "setup aborted; registry left unchanged"
	SetupNoToolsSelected  = "no tools selected; registry left unchanged"

	SetupRenderRegistryFailedFmt = "failed to render registry: %w"
	SetupWriteRegistryFailedFmt  = "failed to write registry %s: %w"
	SetupReadRegistryFailedFmt   = "failed to read registry %s: %w"
	SetupUnknownCatalogToolFmt   = "unknown catalog tool %q"
)
