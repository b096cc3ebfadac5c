// Package interp is the line-oriented driver around the engine: it reads
// command lines, applies them to one GameState, and renders results as
// plain text. All algorithmic work stays in the engine; this layer only
// moves text.
package interp

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shoockrates/casinosim/internal/command"
	"github.com/shoockrates/casinosim/internal/engine"
	"github.com/shoockrates/casinosim/internal/state"
)

// Interpreter applies command lines to a single game state
type Interpreter struct {
	engine *engine.Engine
	state  *state.GameState
	logger *slog.Logger
}

// New creates an interpreter over a fresh game state
func New(eng *engine.Engine, logger *slog.Logger) *Interpreter {
	return &Interpreter{
		engine: eng,
		state:  state.New(),
		logger: logger,
	}
}

// State exposes the aggregate for inspection and snapshotting
func (i *Interpreter) State() *state.GameState {
	return i.state
}

// Exec parses and applies one command line
func (i *Interpreter) Exec(line string) (*engine.Result, error) {
	cmd, err := command.Parse(line)
	if err != nil {
		return nil, err
	}
	return i.engine.Apply(i.state, cmd)
}

// Run reads command lines from r until EOF, writing rendered results and
// errors to w. Blank lines and lines starting with # are skipped. Errors
// are per-line: a rejected command never stops the run.
func (i *Interpreter) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		result, err := i.Exec(line)
		if err != nil {
			fmt.Fprintf(w, "error: line %d: %v\n", lineNo, err)
			continue
		}
		Render(w, result)
	}
	return scanner.Err()
}
