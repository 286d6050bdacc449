// Package repl provides the interactive calculator loop.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sivchari/nncalc/internal/config"
	"github.com/sivchari/nncalc/internal/display"
	"github.com/sivchari/nncalc/internal/keypad"
	"github.com/sivchari/nncalc/pkg/nncalc"
)

// REPL reads key presses line by line and renders the view after each one.
type REPL struct {
	engine  *nncalc.Engine
	sink    display.Sink
	prompt  string
	banner  bool
	limit   int
	history []string
}

// New creates a REPL driving engine and rendering through sink.
func New(engine *nncalc.Engine, sink display.Sink, cfg config.REPLConfig) *REPL {
	return &REPL{
		engine: engine,
		sink:   sink,
		prompt: cfg.Prompt,
		banner: cfg.Banner,
		limit:  cfg.HistorySize,
	}
}

// Start runs the loop until in is exhausted or a quit command is read.
func (r *REPL) Start(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	if r.banner {
		fmt.Fprintln(out, "nncalc - natural number calculator")
		fmt.Fprintln(out, "Type 'help' for available keys, 'quit' to exit")
		fmt.Fprintln(out)
	}

	if err := r.sink.Flush(); err != nil {
		return err
	}

	for {
		fmt.Fprint(out, r.prompt)

		if !scanner.Scan() {
			break
		}

		quit, err := r.handleLine(scanner.Text(), out)
		if err != nil {
			return err
		}

		if quit {
			fmt.Fprintln(out, "Goodbye!")

			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

// handleLine processes one input line. Only sink failures are returned;
// calculator errors are printed and the loop continues. The view is
// rendered even when a key fails, since earlier keys already applied.
func (r *REPL) handleLine(line string, out io.Writer) (bool, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false, nil
	}

	switch parts[0] {
	case "quit", "exit", "q":
		return true, nil

	case "help", "h", "?":
		r.printHelp(out)

		return false, nil

	case "show":
		return false, r.sink.Flush()

	case "gates":
		r.printGates(out)

		return false, nil

	case "history":
		for i, key := range r.history {
			fmt.Fprintf(out, "%3d: %s\n", i+1, key)
		}

		return false, nil
	}

	for _, key := range parts {
		if _, err := keypad.Press(r.engine, key); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)

			return false, r.sink.Flush()
		}

		r.remember(key)
	}

	return false, r.sink.Flush()
}

func (r *REPL) remember(key string) {
	r.history = append(r.history, key)
	if r.limit > 0 && len(r.history) > r.limit {
		r.history = r.history[len(r.history)-r.limit:]
	}
}

// History returns the keys pressed this session, oldest first.
func (r *REPL) History() []string {
	return append([]string(nil), r.history...)
}

func (r *REPL) printGates(out io.Writer) {
	g := r.engine.Snapshot().Gates
	fmt.Fprintf(out, "subtract: %t\n", g.SubtractAllowed)
	fmt.Fprintf(out, "divide:   %t\n", g.DivideAllowed)
	fmt.Fprintf(out, "power:    %t\n", g.PowerAllowed)
	fmt.Fprintf(out, "root:     %t\n", g.RootAllowed)
}

func (r *REPL) printHelp(out io.Writer) {
	help := `nncalc Commands:
  0-9, 123      Append digits to bottom
  enter, e, =   Copy bottom into top
  clear, c      Set bottom to 0
  swap, s       Exchange top and bottom
  +  -  *  /    Add, subtract, multiply, divide (top op bottom)
  ^, pow        Raise top to the power bottom
  root, r       Take the bottom-th root of top
  show          Redraw the display
  gates         List which guarded operations are allowed
  history       Show keys pressed this session
  help, h, ?    Show this help
  quit, exit, q Exit
Several keys may be given on one line, separated by spaces.
`
	fmt.Fprint(out, help)
}
