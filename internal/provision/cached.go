package provision

import "path/filepath"

// Cached returns the last container entry in directory-listing order without
// performing any network resolution. An empty or unreadable container is a
// normal cold-start state and reports absence rather than an error.
//
// Listing order does not correlate with version freshness; this is a weak
// ordering policy kept for compatibility, not a sorted most-recent selection.
// The returned Binary carries no arguments and no environment override.
func (e *Engine) Cached(containerDir string) (*Binary, bool) {
	entries, err := osReadDir(containerDir)
	if err != nil {
		e.log.Debug().Err(err).Str("dir", containerDir).Msg("cache container unreadable")
		return nil, false
	}
	if len(entries) == 0 {
		e.log.Debug().Str("dir", containerDir).Msg("cache container empty")
		return nil, false
	}
	last := entries[len(entries)-1]
	return &Binary{Path: filepath.Join(containerDir, last.Name())}, true
}
