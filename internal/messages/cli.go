package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "lspkit"
	// RootShort is the short description for the root command.
	RootShort       = "Provision language server binaries"
	RootLong        = "lspkit locates, downloads, and caches language server binaries for editor hosts."
	RootVerboseFlag = "Enable debug logging"
	RootRegistryFlag = "Registry path (defaults to tools.toml in the user config directory)"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"
	// VersionInvalidFmt rejects version strings that are not vX.Y.Z or X.Y.Z.
	VersionInvalidFmt = "version %q must be in the form vX.Y.Z or X.Y.Z: %w"

	// GetUse is the get command name.
	GetUse   = "get <tool>"
	GetShort = "Ensure a runnable binary for the tool and print its path"
	GetLong  = "get probes the PATH for a user-installed binary, otherwise resolves the latest release,\n" +
		"downloads it into the cache container, and prints the resulting executable path."
	GetFlagOffline  = "Skip network resolution and use the cached binary only"
	GetFlagCacheDir = "Override the cache root directory"

	// WhichUse is the which command name.
	WhichUse          = "which <tool>"
	WhichShort        = "Report the user-installed binary for the tool, if any"
	WhichNotFoundFmt  = "%s: not installed\n"

	// ResolveUse is the resolve command name.
	ResolveUse       = "resolve <tool>"
	ResolveShort     = "Resolve the latest release for the tool and print tag and asset URL"
	ResolveOutputFmt = "%s\t%s\n"

	// CachedUse is the cached command name.
	CachedUse     = "cached <tool>"
	CachedShort   = "Print the cached binary for the tool, if any"
	CachedMissFmt = "%s: no cached binary\n"

	// StatusUse is the status command name.
	StatusUse       = "status"
	StatusShort     = "Summarize installed, cached, and latest versions per tool"
	StatusRowFmt    = "%-12s %-10s %-14s %-14s\n"
	StatusColTool   = "TOOL"
	StatusColSource = "SOURCE"
	StatusColCached = "CACHED"
	StatusColLatest = "LATEST"
	StatusInstalled = "installed"
	StatusCached    = "cached"
	StatusMissing   = "missing"
	StatusNone      = "-"

	// InitUse is the init command name.
	InitUse          = "init"
	InitShort        = "Write the tool registry (tools.toml)"
	InitFlagForce    = "Overwrite an existing registry without prompting"
	InitFlagCacheDir = "Cache root to record in the registry"
	InitWroteFmt     = "wrote %s\n"
	InitUnchangedFmt = "%s is already up to date\n"

	InitWarnUpdateCheckFailedFmt = "warning: update check failed: %v\n"
	InitWarnDevBuildFmt          = "warning: running a dev build; latest release is %s\n"
	InitWarnUpdateAvailableFmt   = "warning: lspkit %s is available (running %s)\n"
)
