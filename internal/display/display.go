// Package display provides output sinks for the calculator engine.
package display

import (
	"fmt"
	"io"

	"github.com/sivchari/nncalc/pkg/natural"
	"github.com/sivchari/nncalc/pkg/nncalc"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Sink is an engine Display that renders the collected view on Flush.
type Sink interface {
	nncalc.Display
	Flush() error
}

// New returns a sink writing the given format to w.
func New(format string, w io.Writer) (Sink, error) {
	switch format {
	case FormatText, "":
		return NewConsole(w), nil
	case FormatJSON:
		return NewJSON(w), nil
	default:
		return nil, fmt.Errorf("unsupported display format: %s", format)
	}
}

// frame holds the most recent value of every notification.
type frame struct {
	view nncalc.Snapshot
}

func (f *frame) UpdateTopDisplay(n natural.Natural) {
	f.view.Top = n
}

func (f *frame) UpdateBottomDisplay(n natural.Natural) {
	f.view.Bottom = n
}

func (f *frame) UpdateSubtractAllowed(allowed bool) {
	f.view.Gates.SubtractAllowed = allowed
}

func (f *frame) UpdateDivideAllowed(allowed bool) {
	f.view.Gates.DivideAllowed = allowed
}

func (f *frame) UpdatePowerAllowed(allowed bool) {
	f.view.Gates.PowerAllowed = allowed
}

func (f *frame) UpdateRootAllowed(allowed bool) {
	f.view.Gates.RootAllowed = allowed
}

// View returns the last received view.
func (f *frame) View() nncalc.Snapshot {
	return f.view
}
