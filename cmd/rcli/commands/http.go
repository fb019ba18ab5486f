package commands

import (
	"github.com/spf13/cobra"

	"rcli/internal/app"
	"rcli/internal/httpserve"
)

func httpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "http",
		Short: "HTTP utilities",
	}
	cmd.AddCommand(httpServeCmd())
	return cmd
}

type httpServeOpts struct {
	Dir  string `flag:"dir" validate:"required,dir"`
	Port int    `flag:"port" validate:"min=0,max=65535"`
}

func httpServeCmd() *cobra.Command {
	opts := httpServeOpts{Dir: "."}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a directory over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := check(opts); err != nil {
				return err
			}
			srv, err := httpserve.New(app.ServeConfig(cfg, opts.Dir, opts.Port), wire.Log)
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&opts.Dir, "dir", "d", opts.Dir, "directory to serve")
	cmd.Flags().IntVarP(&opts.Port, "port", "p", 0, "listen port (default $RCLI_HTTP_PORT or 8080)")
	return cmd
}
