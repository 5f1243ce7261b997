package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lspkit/lspkit/internal/messages"
)

func newWhichCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.WhichUse,
		Short: messages.WhichShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newToolEnv(opts, cmd.ErrOrStderr(), args[0], "")
			if err != nil {
				return err
			}
			bin, ok := env.adapter.Installed()
			if !ok {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.WhichNotFoundFmt, env.tool.Name)
				return &SilentExitError{Code: 1}
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), bin.Path)
			return nil
		},
	}
}
