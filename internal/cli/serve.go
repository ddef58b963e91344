package cli

import (
	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Addr = addr
			}
			s, err := server.New(a.log, a.cfg)
			if err != nil {
				return err
			}
			return s.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (env: MINES_ADDR)")

	return cmd
}
