package messages

// Registry messages for loading and validating tools.toml.
const (
	// RegistryMissingFileFmt formats missing registry file errors.
	RegistryMissingFileFmt      = "missing registry file %s: %w"
	RegistryInvalidFmt          = "invalid registry %s: %w"
	RegistryFailedReadTemplate  = "failed to read template tools.toml: %w"
	RegistryNoToolsFmt          = "%s: registry defines no tools"
	RegistryToolRepoRequiredFmt = "%s: tools.%s.repo is required"
	RegistryToolRepoFormFmt     = "%s: tools.%s.repo must be in the form owner/name"
	RegistryToolAssetsRequired  = "%s: tools.%s.assets must define at least one platform"
	RegistryUnknownToolFmt      = "unknown tool %q (not in registry)"
	RegistryResolveCacheDirFmt  = "failed to resolve cache root: %w"
	RegistryExpandCacheDirFmt   = "failed to expand cache_dir %q: %w"
	RegistryResolvePathFmt      = "failed to resolve registry path: %w"
)
