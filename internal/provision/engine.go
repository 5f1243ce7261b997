// Package provision materializes language server binaries from release assets
// into a per-tool cache container.
package provision

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/lspkit/lspkit/internal/messages"
	"github.com/lspkit/lspkit/internal/platform"
	"github.com/lspkit/lspkit/internal/registry"
)

var (
	osStat      = os.Stat
	osCreate    = os.Create
	osChmod     = os.Chmod
	osMkdirAll  = os.MkdirAll
	osReadDir   = os.ReadDir
	osRemoveAll = os.RemoveAll
	httpClient  = &http.Client{Timeout: 5 * time.Minute}
	execBitGOOS = runtime.GOOS
)

// Binary is the externally visible provisioning result handed to the process
// launcher. Env nil means the launcher inherits its own environment.
type Binary struct {
	Path      string
	Env       map[string]string
	Arguments []string
}

// VersionInfo carries a resolved release tag together with the download URL of
// its platform asset. Both come from a single release query; the value is
// consumed immediately by Materialize and not stored.
type VersionInfo struct {
	Tag string
	URL string
}

// DownloadError reports a failed asset transfer. Status holds the HTTP status
// line for non-success responses; Err holds transport or streaming failures.
type DownloadError struct {
	Status string
	Err    error
}

func (e *DownloadError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf(messages.ProvisionDownloadStatusFmt, e.Status)
	}
	return fmt.Sprintf("download failed: %v", e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// Engine downloads release assets into a cache container and prunes stale
// entries. It exclusively owns writes beneath the container directory.
type Engine struct {
	tool registry.Tool
	log  zerolog.Logger
}

// NewEngine returns an engine provisioning the given tool.
func NewEngine(tool registry.Tool, log zerolog.Logger) *Engine {
	return &Engine{tool: tool, log: log}
}

// EntryPath returns the cache entry path for a version tag:
// {container}/{tool}-{tag}.
func (e *Engine) EntryPath(containerDir string, tag string) string {
	return filepath.Join(containerDir, e.tool.Name+"-"+tag)
}

// Materialize ensures a cache entry exists for exactly the resolved version
// and returns the runnable binary for it.
//
// The existence fast path doubles as the only concurrency-safety mechanism:
// concurrent provisioning attempts all write the same deterministic target
// path, so a race costs a redundant download but never a corrupted result.
// On a non-success response the partially created file is left in place for
// operator inspection.
func (e *Engine) Materialize(ctx context.Context, info VersionInfo, containerDir string) (*Binary, error) {
	target := e.EntryPath(containerDir, info.Tag)
	if _, err := osStat(target); err == nil {
		e.log.Debug().Str("path", target).Msg("cache entry already present")
		return e.binaryAt(target), nil
	}
	if err := osMkdirAll(containerDir, 0o755); err != nil {
		return nil, fmt.Errorf(messages.ProvisionCreateContainerFmt, containerDir, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, info.URL, nil)
	if err != nil {
		return nil, fmt.Errorf(messages.ProvisionRequestFmt, info.URL, err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf(messages.ProvisionRequestFmt, info.URL, &DownloadError{Err: err})
	}
	defer func() { _ = resp.Body.Close() }()

	file, err := osCreate(target)
	if err != nil {
		return nil, fmt.Errorf(messages.ProvisionCreateEntryFmt, target, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = file.Close()
		return nil, &DownloadError{Status: resp.Status}
	}
	if _, err := io.Copy(file, resp.Body); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf(messages.ProvisionStreamFmt, target, &DownloadError{Err: err})
	}
	if err := file.Close(); err != nil {
		return nil, fmt.Errorf(messages.ProvisionCloseEntryFmt, target, err)
	}

	if platform.NeedsExecBit(execBitGOOS) {
		if err := osChmod(target, 0o755); err != nil {
			return nil, fmt.Errorf(messages.ProvisionChmodEntryFmt, target, err)
		}
	}

	e.prune(containerDir, target)
	e.log.Debug().Str("path", target).Str("tag", info.Tag).Msg("materialized cache entry")
	return e.binaryAt(target), nil
}

// prune deletes every container entry except keep. Failures are logged, not
// fatal: a failed prune does not roll back an otherwise successful fetch.
func (e *Engine) prune(containerDir string, keep string) {
	entries, err := osReadDir(containerDir)
	if err != nil {
		e.log.Warn().Err(err).Str("dir", containerDir).Msg("failed to scan cache container for pruning")
		return
	}
	for _, entry := range entries {
		path := filepath.Join(containerDir, entry.Name())
		if path == keep {
			continue
		}
		if err := osRemoveAll(path); err != nil {
			e.log.Warn().Err(err).Str("path", path).Msg("failed to prune stale cache entry")
			continue
		}
		e.log.Debug().Str("path", path).Msg("pruned stale cache entry")
	}
}

func (e *Engine) binaryAt(path string) *Binary {
	return &Binary{
		Path:      path,
		Env:       nil,
		Arguments: append([]string(nil), e.tool.ServerArgs...),
	}
}
