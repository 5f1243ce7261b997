package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lspkit/lspkit/internal/messages"
	"github.com/lspkit/lspkit/internal/provision"
)

func newGetCmd(opts *rootOptions) *cobra.Command {
	var offline bool
	var cacheDir string

	cmd := &cobra.Command{
		Use:   messages.GetUse,
		Short: messages.GetShort,
		Long:  messages.GetLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newToolEnv(opts, cmd.ErrOrStderr(), args[0], cacheDir)
			if err != nil {
				return err
			}
			bin, err := env.adapter.Acquire(cmd.Context(), provision.AcquireOptions{
				ContainerDir: env.containerDir,
				Offline:      offline || noNetwork(),
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), bin.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, messages.GetFlagOffline)
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", messages.GetFlagCacheDir)
	return cmd
}
