package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shoockrates/casinosim/internal/dependencies/clock"
	"github.com/shoockrates/casinosim/internal/engine"
	"github.com/shoockrates/casinosim/internal/interp"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [script]",
		Short: "Run a command script",
		Long: `Run executes a command script against a fresh game state, one line at a
time, printing each result. With no argument the script is read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening script: %w", err)
				}
				defer f.Close()
				in = f
			}

			logger := newLogger()
			interpreter := interp.New(engine.New(clock.New(), logger), logger)
			return interpreter.Run(in, cmd.OutOrStdout())
		},
	}
}
