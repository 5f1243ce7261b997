package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lspkit/lspkit/internal/messages"
)

func newCachedCmd(opts *rootOptions) *cobra.Command {
	var cacheDir string

	cmd := &cobra.Command{
		Use:   messages.CachedUse,
		Short: messages.CachedShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newToolEnv(opts, cmd.ErrOrStderr(), args[0], cacheDir)
			if err != nil {
				return err
			}
			bin, ok := env.engine.Cached(env.containerDir)
			if !ok {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.CachedMissFmt, env.tool.Name)
				return &SilentExitError{Code: 1}
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), bin.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", messages.GetFlagCacheDir)
	return cmd
}
