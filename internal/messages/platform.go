package messages

// Platform resolution messages.
const (
	// PlatformUnsupportedOSFmt names an operating system with no release assets.
	PlatformUnsupportedOSFmt = "running on unsupported os: %s"
	// PlatformUnsupportedArchFmt names an architecture with no release assets under a known OS.
	PlatformUnsupportedArchFmt = "running on unsupported architecture: %s/%s"
)
