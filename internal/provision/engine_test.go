package provision

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lspkit/lspkit/internal/registry"
)

func testTool() registry.Tool {
	return registry.Tool{
		Name:       "marksman",
		Repo:       "artempyanykh/marksman",
		ServerArgs: []string{"server"},
		Assets: map[string]map[string]string{
			"darwin":  {"any": "marksman-macos"},
			"linux":   {"amd64": "marksman-linux-x64", "arm64": "marksman-linux-arm64"},
			"windows": {"any": "marksman.exe"},
		},
	}
}

func testEngine() *Engine {
	return NewEngine(testTool(), zerolog.Nop())
}

func assetServer(t *testing.T, status int, body string, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestMaterializeDownloadsAndPrunes(t *testing.T) {
	container := t.TempDir()
	for _, stale := range []string{"marksman-2023-11-06", "marksman-2023-12-09.partial"} {
		if err := os.WriteFile(filepath.Join(container, stale), []byte("old"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	server := assetServer(t, http.StatusOK, "binary-bytes", nil)

	bin, err := testEngine().Materialize(context.Background(), VersionInfo{Tag: "2024-12-18", URL: server.URL}, container)
	if err != nil {
		t.Fatalf("Materialize error: %v", err)
	}
	want := filepath.Join(container, "marksman-2024-12-18")
	if bin.Path != want {
		t.Fatalf("expected path %q, got %q", want, bin.Path)
	}
	if bin.Env != nil {
		t.Fatalf("expected no env override, got %v", bin.Env)
	}
	if len(bin.Arguments) != 1 || bin.Arguments[0] != "server" {
		t.Fatalf("expected server-mode arguments, got %v", bin.Arguments)
	}

	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "binary-bytes" {
		t.Fatalf("unexpected entry contents %q", data)
	}

	entries, err := os.ReadDir(container)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "marksman-2024-12-18" {
		t.Fatalf("expected exactly the new entry after pruning, got %v", entries)
	}
}

func TestMaterializeIdempotent(t *testing.T) {
	container := t.TempDir()
	var hits atomic.Int64
	server := assetServer(t, http.StatusOK, "binary-bytes", &hits)
	engine := testEngine()
	info := VersionInfo{Tag: "1.0.0", URL: server.URL}

	first, err := engine.Materialize(context.Background(), info, container)
	if err != nil {
		t.Fatalf("first Materialize error: %v", err)
	}
	second, err := engine.Materialize(context.Background(), info, container)
	if err != nil {
		t.Fatalf("second Materialize error: %v", err)
	}
	if first.Path != second.Path {
		t.Fatalf("paths differ: %q vs %q", first.Path, second.Path)
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("expected exactly one download, got %d", got)
	}
}

func TestMaterializeFailedStatusLeavesPartialFile(t *testing.T) {
	container := t.TempDir()
	server := assetServer(t, http.StatusNotFound, "not found", nil)

	_, err := testEngine().Materialize(context.Background(), VersionInfo{Tag: "1.0.0", URL: server.URL}, container)
	if err == nil {
		t.Fatal("expected error for 404 download")
	}
	var dlErr *DownloadError
	if !errors.As(err, &dlErr) {
		t.Fatalf("expected DownloadError, got %v", err)
	}
	if dlErr.Status == "" {
		t.Fatalf("expected HTTP status in error, got %+v", dlErr)
	}

	// The partially created file stays on disk for operator inspection.
	info, err := os.Stat(filepath.Join(container, "marksman-1.0.0"))
	if err != nil {
		t.Fatalf("expected partial file to remain: %v", err)
	}
	if info.Size() != 0 {
		t.Fatalf("expected zero-byte partial file, got %d bytes", info.Size())
	}
}

func TestMaterializeSetsExecBits(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("exec bits are a unix concern")
	}
	container := t.TempDir()
	server := assetServer(t, http.StatusOK, "binary-bytes", nil)

	bin, err := testEngine().Materialize(context.Background(), VersionInfo{Tag: "1.0.0", URL: server.URL}, container)
	if err != nil {
		t.Fatalf("Materialize error: %v", err)
	}
	info, err := os.Stat(bin.Path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0o111 == 0 {
		t.Fatalf("expected exec bits set, got %v", info.Mode())
	}
}

func TestMaterializeSkipsExecBitsWhenNotNeeded(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("exec bits are a unix concern")
	}
	origGOOS := execBitGOOS
	execBitGOOS = "windows"
	t.Cleanup(func() { execBitGOOS = origGOOS })

	container := t.TempDir()
	server := assetServer(t, http.StatusOK, "binary-bytes", nil)

	bin, err := testEngine().Materialize(context.Background(), VersionInfo{Tag: "1.0.0", URL: server.URL}, container)
	if err != nil {
		t.Fatalf("Materialize error: %v", err)
	}
	info, err := os.Stat(bin.Path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0o111 != 0 {
		t.Fatalf("expected no exec bits when the platform does not need them, got %v", info.Mode())
	}
}

func TestMaterializePruneFailureNotFatal(t *testing.T) {
	origRemoveAll := osRemoveAll
	osRemoveAll = func(string) error { return errors.New("busy") }
	t.Cleanup(func() { osRemoveAll = origRemoveAll })

	container := t.TempDir()
	if err := os.WriteFile(filepath.Join(container, "marksman-old"), []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	server := assetServer(t, http.StatusOK, "binary-bytes", nil)

	bin, err := testEngine().Materialize(context.Background(), VersionInfo{Tag: "1.0.0", URL: server.URL}, container)
	if err != nil {
		t.Fatalf("Materialize must succeed despite prune failure: %v", err)
	}
	if _, err := os.Stat(bin.Path); err != nil {
		t.Fatalf("expected new entry: %v", err)
	}
}

func TestCachedLastListingOrderEntry(t *testing.T) {
	container := t.TempDir()
	// Created in this filesystem order; selection follows listing order, not
	// version comparison.
	for _, name := range []string{"marksman-0.1.0", "marksman-2.0.0"} {
		if err := os.WriteFile(filepath.Join(container, name), []byte("bin"), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	entries, err := os.ReadDir(container)
	if err != nil {
		t.Fatal(err)
	}
	wantName := entries[len(entries)-1].Name()

	bin, ok := testEngine().Cached(container)
	if !ok {
		t.Fatal("expected a cached binary")
	}
	if filepath.Base(bin.Path) != wantName {
		t.Fatalf("expected last listing-order entry %q, got %q", wantName, filepath.Base(bin.Path))
	}
	if len(bin.Arguments) != 0 {
		t.Fatalf("cached binary must carry no arguments, got %v", bin.Arguments)
	}
	if bin.Env != nil {
		t.Fatalf("cached binary must carry no env override, got %v", bin.Env)
	}
}

func TestCachedEmptyAndUnreadable(t *testing.T) {
	engine := testEngine()

	if _, ok := engine.Cached(t.TempDir()); ok {
		t.Fatal("empty container must report absence")
	}
	if _, ok := engine.Cached(filepath.Join(t.TempDir(), "missing")); ok {
		t.Fatal("missing container must report absence, not an error")
	}
}

func TestEntryPath(t *testing.T) {
	got := testEngine().EntryPath("/cache/marksman", "2024-12-18")
	if got != filepath.Join("/cache/marksman", "marksman-2024-12-18") {
		t.Fatalf("unexpected entry path %q", got)
	}
}
