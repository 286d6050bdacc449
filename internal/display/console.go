package display

import (
	"fmt"
	"io"
	"strings"
)

const disabled = "·"

// Console renders the registers and the gate line as plain text.
type Console struct {
	frame
	w io.Writer
}

// NewConsole creates a text sink.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Flush writes the current view.
func (c *Console) Flush() error {
	if _, err := io.WriteString(c.w, c.Render()); err != nil {
		return fmt.Errorf("failed to write display: %w", err)
	}

	return nil
}

// Render formats the current view without writing it.
func (c *Console) Render() string {
	g := c.view.Gates

	ops := []string{
		gate("-", g.SubtractAllowed),
		gate("/", g.DivideAllowed),
		gate("^", g.PowerAllowed),
		gate("√", g.RootAllowed),
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "top    %s\n", c.view.Top)
	fmt.Fprintf(&sb, "bottom %s\n", c.view.Bottom)
	fmt.Fprintf(&sb, "ops    + * %s\n", strings.Join(ops, " "))

	return sb.String()
}

func gate(symbol string, allowed bool) string {
	if allowed {
		return symbol
	}

	return disabled
}
