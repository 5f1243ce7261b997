package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lspkit/lspkit/internal/messages"
	"github.com/lspkit/lspkit/internal/provision"
	"github.com/lspkit/lspkit/internal/registry"
	"github.com/lspkit/lspkit/internal/version"
)

func newStatusCmd(opts *rootOptions) *cobra.Command {
	var cacheDir string

	cmd := &cobra.Command{
		Use:   messages.StatusUse,
		Short: messages.StatusShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(opts.verbose, cmd.ErrOrStderr())
			path, err := registryPath(opts)
			if err != nil {
				return err
			}
			cfg, err := registry.LoadOrTemplate(path)
			if err != nil {
				return err
			}
			cacheRoot, err := cfg.CacheRoot(cacheDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, messages.StatusRowFmt,
				messages.StatusColTool, messages.StatusColSource, messages.StatusColCached, messages.StatusColLatest)
			for _, name := range cfg.ToolNames() {
				tool, err := cfg.Tool(name)
				if err != nil {
					return err
				}
				engine := provision.NewEngine(tool, log)
				adapter := provision.NewAdapter(tool, engine, log)
				container := registry.ContainerDir(cacheRoot, name)

				source := color.RedString(messages.StatusMissing)
				cached := messages.StatusNone
				if bin, ok := engine.Cached(container); ok {
					source = color.YellowString(messages.StatusCached)
					cached = strings.TrimPrefix(filepath.Base(bin.Path), name+"-")
				}
				if _, ok := adapter.Installed(); ok {
					source = color.GreenString(messages.StatusInstalled)
				}

				latest := messages.StatusNone
				if !noNetwork() {
					info, err := adapter.ResolveLatest(cmd.Context())
					if err != nil {
						log.Debug().Err(err).Str("tool", name).Msg("latest release unavailable")
					} else {
						latest = info.Tag
						if outdated(cached, latest) {
							latest = color.YellowString(latest)
						}
					}
				}

				_, _ = fmt.Fprintf(out, messages.StatusRowFmt, name, source, cached, latest)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", messages.GetFlagCacheDir)
	return cmd
}

// outdated compares a cached entry tag against the latest release tag.
// Tags that are not semver (marksman publishes date-form tags) fall back to
// plain inequality.
func outdated(cached string, latest string) bool {
	if cached == messages.StatusNone {
		return false
	}
	if cmp, err := version.Compare(cached, latest); err == nil {
		return cmp < 0
	}
	return cached != latest
}
