package cli

import (
	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/terminal"
)

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := a.cfg.Params()
			if err != nil {
				return err
			}
			engine, err := mines.NewEngine(params, nil)
			if err != nil {
				return err
			}
			t := terminal.New(a.log, engine, cmd.InOrStdin(), cmd.OutOrStdout())
			return t.Run(cmd.Context())
		},
	}
}
