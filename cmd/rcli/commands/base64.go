package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rcli/internal/services/b64"
)

type base64Opts struct {
	Input  string `flag:"input" validate:"required,file_or_stdin"`
	Format b64.Format
}

func base64Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base64",
		Short: "Base64 encode or decode",
	}
	cmd.AddCommand(
		base64Sub("encode", "Encode input as base64", func(cmd *cobra.Command, o base64Opts) (string, error) {
			return wire.Base64.Encode(cmd.Context(), o.Input, o.Format)
		}),
		base64Sub("decode", "Decode base64 input", func(cmd *cobra.Command, o base64Opts) (string, error) {
			return wire.Base64.Decode(cmd.Context(), o.Input, o.Format)
		}),
	)
	return cmd
}

func base64Sub(use, short string, run func(*cobra.Command, base64Opts) (string, error)) *cobra.Command {
	opts := base64Opts{Input: "-", Format: b64.Standard}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := check(opts); err != nil {
				return err
			}
			out, err := run(cmd, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.Input, "input", "i", opts.Input, "input file, or - for stdin")
	cmd.Flags().Var(&opts.Format, "format", "standard or url_safe")
	return cmd
}
