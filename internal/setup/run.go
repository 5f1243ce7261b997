package setup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lspkit/lspkit/internal/fsutil"
	"github.com/lspkit/lspkit/internal/messages"
)

// Options controls one setup run.
type Options struct {
	// Path is the registry file to write.
	Path string
	// CacheDir, when non-empty, is recorded in the registry without prompting.
	CacheDir string
	// Force skips all prompts: default catalog tools, overwrite without asking.
	Force bool
	// UI supplies interactive prompts; required unless Force is set.
	UI UI
	// Out receives progress output.
	Out io.Writer
	// DiffMaxLines caps the overwrite diff preview (<=0 uses the default).
	DiffMaxLines int
}

// Run writes the tool registry described by opts.
func Run(opts Options) error {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	selected := defaultSelection()
	cacheDir := opts.CacheDir
	if !opts.Force {
		names := make([]string, 0)
		for _, entry := range Catalog() {
			names = append(names, entry.Tool.Name)
		}
		if err := opts.UI.MultiSelect(messages.SetupSelectToolsTitle, names, &selected); err != nil {
			return err
		}
		if len(selected) == 0 {
			return errors.New(messages.SetupNoToolsSelected)
		}
		if cacheDir == "" {
			if err := opts.UI.Input(messages.SetupCacheDirTitle, &cacheDir); err != nil {
				return err
			}
		}
	}

	content, err := Render(selected, cacheDir)
	if err != nil {
		return err
	}

	existing, err := os.ReadFile(opts.Path)
	switch {
	case err == nil:
		if string(existing) == content {
			_, _ = fmt.Fprintf(out, messages.InitUnchangedFmt, opts.Path)
			return nil
		}
		if !opts.Force {
			if err := confirmOverwrite(opts, out, string(existing), content); err != nil {
				return err
			}
		}
	case errors.Is(err, os.ErrNotExist):
		// First write, nothing to compare.
	default:
		return fmt.Errorf(messages.SetupReadRegistryFailedFmt, opts.Path, err)
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return fmt.Errorf(messages.SetupWriteRegistryFailedFmt, opts.Path, err)
	}
	if err := fsutil.WriteFileAtomic(opts.Path, []byte(content), 0o644); err != nil {
		return fmt.Errorf(messages.SetupWriteRegistryFailedFmt, opts.Path, err)
	}
	_, _ = fmt.Fprintf(out, messages.InitWroteFmt, opts.Path)
	return nil
}

func confirmOverwrite(opts Options, out io.Writer, existing string, proposed string) error {
	preview, truncated := DiffPreview(existing, proposed, opts.DiffMaxLines)
	_, _ = fmt.Fprintf(out, messages.SetupDiffHeaderFmt, opts.Path)
	_, _ = fmt.Fprint(out, preview)
	if truncated {
		max := opts.DiffMaxLines
		if max <= 0 {
			max = DefaultDiffMaxLines
		}
		_, _ = fmt.Fprintf(out, messages.SetupDiffTruncatedFmt, max)
	}
	overwrite := false
	if err := opts.UI.Confirm(messages.SetupOverwriteTitle, &overwrite); err != nil {
		return err
	}
	if !overwrite {
		return errors.New(messages.SetupAborted)
	}
	return nil
}

func defaultSelection() []string {
	selected := make([]string, 0)
	for _, entry := range Catalog() {
		if entry.Default {
			selected = append(selected, entry.Tool.Name)
		}
	}
	return selected
}
