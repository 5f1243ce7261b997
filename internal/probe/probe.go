// Package probe checks whether a tool is already installed on the PATH.
package probe

import "os/exec"

var lookPath = exec.LookPath

// Installed searches the executable resolution path for name and returns the
// resolved path. Absence is a normal outcome: every lookup failure (not found,
// permission denied, relative-path rejection) collapses to found == false and
// routes the caller to network resolution instead.
func Installed(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	path, err := lookPath(name)
	if err != nil || path == "" {
		return "", false
	}
	return path, true
}
