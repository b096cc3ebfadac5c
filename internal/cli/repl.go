package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shoockrates/casinosim/internal/dependencies/clock"
	"github.com/shoockrates/casinosim/internal/engine"
	"github.com/shoockrates/casinosim/internal/interp"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive command prompt",
		Long: `Repl starts an interactive prompt over a fresh game state. Type commands
one per line; "dump examples" prints one example of every command. Exit with
"exit", "quit" or Ctrl-D.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			interpreter := interp.New(engine.New(clock.New(), logger), logger)

			in := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			for {
				fmt.Fprint(out, "> ")
				if !in.Scan() {
					fmt.Fprintln(out)
					return in.Err()
				}

				line := strings.TrimSpace(in.Text())
				switch {
				case line == "" || strings.HasPrefix(line, "#"):
					continue
				case line == "exit" || line == "quit":
					return nil
				}

				result, err := interpreter.Exec(line)
				if err != nil {
					fmt.Fprintf(out, "error: %v\n", err)
					continue
				}
				interp.Render(out, result)
			}
		},
	}
}
