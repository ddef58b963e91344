package cli

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/logging"
	"github.com/vancomm/minesweeper/internal/mines"
)

type options struct {
	configPath string
	difficulty string
	custom     string
	verbose    bool
}

type app struct {
	cfg *config.Config
	log *logrus.Logger
}

// NewRootCmd creates the root command. Logs go to logOut.
func NewRootCmd(logOut io.Writer) *cobra.Command {
	opts := &options{}
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "minesweeper",
		Short: "Minesweeper in the terminal or the browser",
		Long: `minesweeper plays the classic game on a rectangular board.

"play" runs a game in the terminal; "serve" runs a local server with a
browser client, one game per WebSocket connection.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.apply(cmd, cfg)

			// Fail on a bad board before anything starts.
			if _, err := cfg.Params(); err != nil {
				return err
			}

			log, err := logging.New(cfg, logOut)
			if err != nil {
				return err
			}
			mines.Log = log
			log.WithFields(cfg.Fields()).Debug("config loaded")

			a.cfg, a.log = cfg, log
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "JSON config file")
	rootCmd.PersistentFlags().StringVarP(&opts.difficulty, "difficulty", "d", "", "Preset board: easy, medium or hard (env: MINES_DIFFICULTY)")
	rootCmd.PersistentFlags().StringVar(&opts.custom, "custom", "", "Custom board as W:H:M (env: MINES_CUSTOM)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newPlayCmd(a))

	return rootCmd
}

// apply lays the flags given on the command line over cfg.
func (o *options) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("difficulty") {
		cfg.Difficulty = o.difficulty
		cfg.Custom = ""
	}
	if flags.Changed("custom") {
		cfg.Custom = o.custom
	}
	if o.verbose {
		cfg.Log.Level = logrus.DebugLevel.String()
	}
}

// ExecuteContext runs the root command until ctx is done.
func ExecuteContext(ctx context.Context, logOut io.Writer) error {
	return NewRootCmd(logOut).ExecuteContext(ctx)
}
