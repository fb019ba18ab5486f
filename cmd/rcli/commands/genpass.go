package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rcli/internal/domain"
)

func genpassCmd() *cobra.Command {
	opts := domain.PasswordOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Number:    true,
		Symbol:    true,
	}
	cmd := &cobra.Command{
		Use:   "genpass",
		Short: "Generate a random password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := check(opts); err != nil {
				return err
			}
			pw, err := wire.Passwords.Generate(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pw)
			return nil
		},
	}
	cmd.Flags().IntVarP(&opts.Length, "length", "l", opts.Length, "password length")
	cmd.Flags().BoolVar(&opts.Uppercase, "uppercase", opts.Uppercase, "include upper-case letters")
	cmd.Flags().BoolVar(&opts.Lowercase, "lowercase", opts.Lowercase, "include lower-case letters")
	cmd.Flags().BoolVar(&opts.Number, "number", opts.Number, "include digits (1-9)")
	cmd.Flags().BoolVar(&opts.Symbol, "symbol", opts.Symbol, "include symbols")
	return cmd
}
