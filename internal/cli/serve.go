package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/unitwiz/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve parse, convert, translate and standardize over HTTP",
		Long: `Start an HTTP server exposing the wizard as a JSON API:

  GET  /forms
  POST /parse
  POST /convert
  POST /translate
  POST /standardize

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			return server.New(c.wiz, logger).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")

	return cmd
}
