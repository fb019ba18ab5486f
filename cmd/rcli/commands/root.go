package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"rcli/internal/app"
)

var (
	envFile string
	verbose bool

	cfg  app.Config
	wire *app.Wire
)

// Execute runs the CLI with ctx as the base context for every command.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rcli",
		Short:         "Text signing, encryption and file utilities",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = app.LoadConfig(envFile)
			if err != nil {
				return err
			}
			if verbose {
				cfg.LogLevel = slog.LevelDebug
			}
			cfg.Stdin = cmd.InOrStdin()
			cfg.Stderr = cmd.ErrOrStderr()

			wire, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with RCLI_* settings")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(textCmd(), genpassCmd(), base64Cmd(), jwtCmd(), csvCmd(), httpCmd())
	return root
}
