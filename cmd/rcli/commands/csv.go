package commands

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"rcli/internal/services/csvconv"
)

type csvOpts struct {
	Input     string `flag:"input" validate:"required,file_or_stdin"`
	Output    string
	Delimiter string `flag:"delimiter" validate:"len=1"`
	Header    bool
	Format    csvconv.Format
}

func csvCmd() *cobra.Command {
	opts := csvOpts{Delimiter: ",", Header: true, Format: csvconv.JSON}
	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Convert CSV to JSON or YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := check(opts); err != nil {
				return err
			}
			delim, _ := utf8.DecodeRuneInString(opts.Delimiter)
			path, err := wire.CSV.Convert(cmd.Context(), csvconv.Options{
				Input:     opts.Input,
				Output:    opts.Output,
				Format:    opts.Format,
				Delimiter: delim,
				Header:    opts.Header,
			})
			if err != nil {
				return err
			}
			wire.Log.Debug("csv converted", "input", opts.Input, "output", path, "format", opts.Format)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "CSV file, or - for stdin")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (default output.<format>)")
	cmd.Flags().StringVarP(&opts.Delimiter, "delimiter", "d", opts.Delimiter, "field delimiter")
	cmd.Flags().BoolVar(&opts.Header, "header", opts.Header, "first row holds field names")
	cmd.Flags().Var(&opts.Format, "format", "json or yaml")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
