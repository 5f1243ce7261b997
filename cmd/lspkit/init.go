package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/lspkit/lspkit/internal/messages"
	"github.com/lspkit/lspkit/internal/setup"
	"github.com/lspkit/lspkit/internal/updatewarn"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	var (
		force    bool
		cacheDir string
	)

	cmd := &cobra.Command{
		Use:   messages.InitUse,
		Short: messages.InitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force && !isTerminal() {
				return errors.New(messages.SetupRequiresTerminal)
			}

			updatewarn.WarnIfOutdated(cmd.Context(), Version, cmd.ErrOrStderr())

			path, err := registryPath(opts)
			if err != nil {
				return err
			}

			return setup.Run(setup.Options{
				Path:     path,
				CacheDir: cacheDir,
				Force:    force,
				UI:       setup.NewHuhUI(),
				Out:      cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, messages.InitFlagForce)
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", messages.InitFlagCacheDir)
	return cmd
}
