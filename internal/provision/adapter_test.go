package provision

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lspkit/lspkit/internal/github"
	"github.com/lspkit/lspkit/internal/platform"
)

func testAdapter(t *testing.T) *Adapter {
	t.Helper()
	adapter := NewAdapter(testTool(), testEngine(), zerolog.Nop())
	adapter.goos = "linux"
	adapter.goarch = "amd64"
	adapter.probeInstalled = func(string) (string, bool) { return "", false }
	return adapter
}

func TestInstalledShortCircuits(t *testing.T) {
	adapter := testAdapter(t)
	adapter.probeInstalled = func(name string) (string, bool) {
		if name != "marksman" {
			t.Errorf("probe called with %q", name)
		}
		return "/usr/bin/marksman", true
	}
	adapter.latestRelease = func(context.Context, string) (*github.Release, error) {
		t.Fatal("installed binary must not trigger network resolution")
		return nil, nil
	}

	bin, err := adapter.Acquire(context.Background(), AcquireOptions{ContainerDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Acquire error: %v", err)
	}
	if bin.Path != "/usr/bin/marksman" {
		t.Fatalf("unexpected path %q", bin.Path)
	}
	if len(bin.Arguments) != 1 || bin.Arguments[0] != "server" {
		t.Fatalf("installed binary must carry server-mode arguments, got %v", bin.Arguments)
	}
}

func TestResolveLatest(t *testing.T) {
	adapter := testAdapter(t)
	adapter.latestRelease = func(_ context.Context, repo string) (*github.Release, error) {
		if repo != "artempyanykh/marksman" {
			t.Errorf("unexpected repo %q", repo)
		}
		return &github.Release{
			TagName: "2024-12-18",
			Assets: []github.Asset{
				{Name: "marksman-macos", BrowserDownloadURL: "https://example.com/macos"},
				{Name: "marksman-linux-x64", BrowserDownloadURL: "https://example.com/linux"},
			},
		}, nil
	}

	info, err := adapter.ResolveLatest(context.Background())
	if err != nil {
		t.Fatalf("ResolveLatest error: %v", err)
	}
	if info.Tag != "2024-12-18" || info.URL != "https://example.com/linux" {
		t.Fatalf("unexpected version info %+v", info)
	}
}

func TestResolveLatestUnsupportedPlatform(t *testing.T) {
	adapter := testAdapter(t)
	adapter.goos = "plan9"
	adapter.latestRelease = func(context.Context, string) (*github.Release, error) {
		t.Fatal("unsupported platform must not query the release index")
		return nil, nil
	}

	_, err := adapter.ResolveLatest(context.Background())
	if err == nil {
		t.Fatal("expected unsupported-platform error")
	}
	if !platform.IsUnsupported(err) {
		t.Fatalf("expected unsupported-platform classification, got %v", err)
	}
}

func TestResolveLatestNoMatchingAssetSkipsDownload(t *testing.T) {
	adapter := testAdapter(t)
	adapter.latestRelease = func(context.Context, string) (*github.Release, error) {
		return &github.Release{TagName: "v1", Assets: []github.Asset{{Name: "marksman-macos"}}}, nil
	}

	_, err := adapter.ResolveLatest(context.Background())
	if !errors.Is(err, github.ErrNoMatchingAsset) {
		t.Fatalf("expected ErrNoMatchingAsset, got %v", err)
	}
}

func TestAcquireFetchesAndReturnsBinary(t *testing.T) {
	container := t.TempDir()
	var hits atomic.Int64
	server := assetServer(t, http.StatusOK, "binary-bytes", &hits)

	adapter := testAdapter(t)
	adapter.latestRelease = func(context.Context, string) (*github.Release, error) {
		return &github.Release{
			TagName: "1.2.0",
			Assets:  []github.Asset{{Name: "marksman-linux-x64", BrowserDownloadURL: server.URL}},
		}, nil
	}

	bin, err := adapter.Acquire(context.Background(), AcquireOptions{ContainerDir: container})
	if err != nil {
		t.Fatalf("Acquire error: %v", err)
	}
	if filepath.Base(bin.Path) != "marksman-1.2.0" {
		t.Fatalf("unexpected path %q", bin.Path)
	}
	if hits.Load() != 1 {
		t.Fatalf("expected one download, got %d", hits.Load())
	}
}

func TestAcquireOffline(t *testing.T) {
	container := t.TempDir()
	if err := os.WriteFile(filepath.Join(container, "marksman-1.0.0"), []byte("bin"), 0o755); err != nil {
		t.Fatal(err)
	}
	adapter := testAdapter(t)
	adapter.latestRelease = func(context.Context, string) (*github.Release, error) {
		t.Fatal("offline acquisition must not resolve releases")
		return nil, nil
	}

	bin, err := adapter.Acquire(context.Background(), AcquireOptions{ContainerDir: container, Offline: true})
	if err != nil {
		t.Fatalf("Acquire error: %v", err)
	}
	if filepath.Base(bin.Path) != "marksman-1.0.0" {
		t.Fatalf("unexpected path %q", bin.Path)
	}
}

func TestAcquireOfflineColdCache(t *testing.T) {
	adapter := testAdapter(t)

	_, err := adapter.Acquire(context.Background(), AcquireOptions{ContainerDir: t.TempDir(), Offline: true})
	if err == nil {
		t.Fatal("expected error for cold offline cache")
	}
	if !strings.Contains(err.Error(), "marksman") {
		t.Fatalf("error should name the tool: %v", err)
	}
}

func TestAcquireFallsBackToCacheOnResolveFailure(t *testing.T) {
	container := t.TempDir()
	if err := os.WriteFile(filepath.Join(container, "marksman-0.9.0"), []byte("bin"), 0o755); err != nil {
		t.Fatal(err)
	}
	adapter := testAdapter(t)
	adapter.latestRelease = func(context.Context, string) (*github.Release, error) {
		return nil, errors.New("network down")
	}

	bin, err := adapter.Acquire(context.Background(), AcquireOptions{ContainerDir: container})
	if err != nil {
		t.Fatalf("expected cached fallback, got %v", err)
	}
	if filepath.Base(bin.Path) != "marksman-0.9.0" {
		t.Fatalf("unexpected path %q", bin.Path)
	}
}

func TestAcquireSurfacesFailureWhenNothingCached(t *testing.T) {
	adapter := testAdapter(t)
	adapter.latestRelease = func(context.Context, string) (*github.Release, error) {
		return nil, errors.New("network down")
	}

	_, err := adapter.Acquire(context.Background(), AcquireOptions{ContainerDir: t.TempDir()})
	if err == nil {
		t.Fatal("expected error when resolution fails and cache is empty")
	}
	if !strings.Contains(err.Error(), "network down") {
		t.Fatalf("error should carry the original cause: %v", err)
	}
}
