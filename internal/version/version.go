// Package version normalizes and compares release version strings.
package version

import (
	"fmt"
	"strings"

	"github.com/blang/semver"

	"github.com/lspkit/lspkit/internal/messages"
)

// IsDev reports whether raw names a development build rather than a release.
func IsDev(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed == "" || strings.EqualFold(trimmed, "dev")
}

// Normalize strips a leading v/V prefix and returns the canonical semver form.
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "v")
	trimmed = strings.TrimPrefix(trimmed, "V")
	parsed, err := semver.ParseTolerant(trimmed)
	if err != nil {
		return "", fmt.Errorf(messages.VersionInvalidFmt, raw, err)
	}
	return parsed.String(), nil
}

// Compare returns -1, 0, or 1 ordering a relative to b.
func Compare(a string, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}
	bv, err := parse(b)
	if err != nil {
		return 0, err
	}
	return av.Compare(bv), nil
}

func parse(raw string) (semver.Version, error) {
	normalized, err := Normalize(raw)
	if err != nil {
		return semver.Version{}, err
	}
	return semver.ParseTolerant(normalized)
}
