package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lspkit/lspkit/internal/messages"
)

func newResolveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.ResolveUse,
		Short: messages.ResolveShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newToolEnv(opts, cmd.ErrOrStderr(), args[0], "")
			if err != nil {
				return err
			}
			info, err := env.adapter.ResolveLatest(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.ResolveOutputFmt, info.Tag, info.URL)
			return nil
		},
	}
}
