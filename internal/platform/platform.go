// Package platform maps the running OS and architecture to release asset names.
package platform

import (
	"errors"
	"fmt"

	"github.com/lspkit/lspkit/internal/messages"
)

// AnyArch matches every architecture under an OS in an asset table.
const AnyArch = "any"

// UnsupportedOSError reports an operating system with no release assets.
type UnsupportedOSError struct {
	OS string
}

func (e *UnsupportedOSError) Error() string {
	return fmt.Sprintf(messages.PlatformUnsupportedOSFmt, e.OS)
}

// UnsupportedArchError reports an architecture with no release assets under a
// recognized OS.
type UnsupportedArchError struct {
	OS   string
	Arch string
}

func (e *UnsupportedArchError) Error() string {
	return fmt.Sprintf(messages.PlatformUnsupportedArchFmt, e.OS, e.Arch)
}

// IsUnsupported reports whether err is either unsupported-platform case.
// Callers should not retry these: the host platform cannot change.
func IsUnsupported(err error) bool {
	var osErr *UnsupportedOSError
	var archErr *UnsupportedArchError
	return errors.As(err, &osErr) || errors.As(err, &archErr)
}

// AssetName resolves goos/goarch against a per-tool asset table
// (OS → architecture → asset name). An OS absent from the table is an
// UnsupportedOSError; a known OS without an entry for goarch (and no AnyArch
// wildcard) is an UnsupportedArchError.
func AssetName(assets map[string]map[string]string, goos string, goarch string) (string, error) {
	byArch, ok := assets[goos]
	if !ok {
		return "", &UnsupportedOSError{OS: goos}
	}
	if name, ok := byArch[goarch]; ok && name != "" {
		return name, nil
	}
	if name, ok := byArch[AnyArch]; ok && name != "" {
		return name, nil
	}
	return "", &UnsupportedArchError{OS: goos, Arch: goarch}
}

// NeedsExecBit reports whether binaries on goos require explicit execute
// permission bits before they can be spawned.
func NeedsExecBit(goos string) bool {
	return goos != "windows"
}
