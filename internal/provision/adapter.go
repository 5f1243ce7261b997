package provision

import (
	"context"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/lspkit/lspkit/internal/github"
	"github.com/lspkit/lspkit/internal/messages"
	"github.com/lspkit/lspkit/internal/platform"
	"github.com/lspkit/lspkit/internal/probe"
	"github.com/lspkit/lspkit/internal/registry"
)

// Adapter composes the resolution chain for one tool: user-installed binary,
// then freshly fetched release, then cached fallback.
type Adapter struct {
	tool   registry.Tool
	engine *Engine
	log    zerolog.Logger

	goos           string
	goarch         string
	probeInstalled func(name string) (string, bool)
	latestRelease  func(ctx context.Context, repo string) (*github.Release, error)
}

// NewAdapter returns an adapter for the given tool backed by engine.
func NewAdapter(tool registry.Tool, engine *Engine, log zerolog.Logger) *Adapter {
	return &Adapter{
		tool:           tool,
		engine:         engine,
		log:            log,
		goos:           runtime.GOOS,
		goarch:         runtime.GOARCH,
		probeInstalled: probe.Installed,
		latestRelease:  github.LatestRelease,
	}
}

// Installed reports a user-installed binary on the PATH, if any. Absence is a
// normal outcome and short-circuits nothing beyond this probe.
func (a *Adapter) Installed() (*Binary, bool) {
	path, ok := a.probeInstalled(a.tool.Name)
	if !ok {
		return nil, false
	}
	return &Binary{
		Path:      path,
		Env:       nil,
		Arguments: append([]string(nil), a.tool.ServerArgs...),
	}, true
}

// ResolveLatest queries the release index for the latest qualifying release
// and selects the asset matching the current platform. Unsupported-platform
// errors are fatal for the attempt; query failures are transient and the
// caller owns retrying the whole flow.
func (a *Adapter) ResolveLatest(ctx context.Context) (VersionInfo, error) {
	assetName, err := platform.AssetName(a.tool.Assets, a.goos, a.goarch)
	if err != nil {
		return VersionInfo{}, fmt.Errorf(messages.ProvisionResolveFailedFmt, a.tool.Name, err)
	}
	release, err := a.latestRelease(ctx, a.tool.Repo)
	if err != nil {
		return VersionInfo{}, fmt.Errorf(messages.ProvisionResolveFailedFmt, a.tool.Name, err)
	}
	asset, err := github.FindAsset(release, assetName)
	if err != nil {
		return VersionInfo{}, fmt.Errorf(messages.ProvisionResolveFailedFmt, a.tool.Name, err)
	}
	return VersionInfo{Tag: release.TagName, URL: asset.BrowserDownloadURL}, nil
}

// AcquireOptions controls one acquisition attempt.
type AcquireOptions struct {
	// ContainerDir is the per-tool cache container.
	ContainerDir string
	// Offline skips network resolution and uses the cache reader only.
	Offline bool
}

// Acquire walks the resolution chain and returns a runnable binary.
func (a *Adapter) Acquire(ctx context.Context, opts AcquireOptions) (*Binary, error) {
	if bin, ok := a.Installed(); ok {
		a.log.Debug().Str("tool", a.tool.Name).Str("path", bin.Path).Msg("using installed binary")
		return bin, nil
	}
	if opts.Offline {
		if bin, ok := a.engine.Cached(opts.ContainerDir); ok {
			return bin, nil
		}
		return nil, fmt.Errorf(messages.ProvisionNoCachedFmt, a.tool.Name)
	}
	info, err := a.ResolveLatest(ctx)
	if err != nil {
		return a.fallbackCached(opts.ContainerDir, err)
	}
	bin, err := a.engine.Materialize(ctx, info, opts.ContainerDir)
	if err != nil {
		return a.fallbackCached(opts.ContainerDir, err)
	}
	return bin, nil
}

// fallbackCached tries the cache reader after a failed fetch. The original
// failure is logged and, when no cached entry exists, returned to the caller.
func (a *Adapter) fallbackCached(containerDir string, cause error) (*Binary, error) {
	a.log.Warn().Err(cause).Str("tool", a.tool.Name).Msg("provisioning failed, trying cached binary")
	if bin, ok := a.engine.Cached(containerDir); ok {
		return bin, nil
	}
	return nil, fmt.Errorf(messages.ProvisionNoBinaryFmt, a.tool.Name, cause)
}
