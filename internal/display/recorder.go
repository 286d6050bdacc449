package display

import (
	"fmt"

	"github.com/sivchari/nncalc/pkg/natural"
	"github.com/sivchari/nncalc/pkg/nncalc"
)

// Event is a single notification received from the engine.
type Event struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

func (e Event) String() string {
	return e.Kind + "=" + e.Value
}

// Recorder keeps every notification in arrival order and forwards it to an
// optional next Display.
type Recorder struct {
	frame
	Events []Event
	next   nncalc.Display
}

// NewRecorder creates a recorder. next may be nil.
func NewRecorder(next nncalc.Display) *Recorder {
	return &Recorder{next: next}
}

func (r *Recorder) record(kind string, value any) {
	r.Events = append(r.Events, Event{Kind: kind, Value: fmt.Sprint(value)})
}

// UpdateTopDisplay implements nncalc.Display.
func (r *Recorder) UpdateTopDisplay(n natural.Natural) {
	r.frame.UpdateTopDisplay(n)
	r.record("top", n)

	if r.next != nil {
		r.next.UpdateTopDisplay(n)
	}
}

// UpdateBottomDisplay implements nncalc.Display.
func (r *Recorder) UpdateBottomDisplay(n natural.Natural) {
	r.frame.UpdateBottomDisplay(n)
	r.record("bottom", n)

	if r.next != nil {
		r.next.UpdateBottomDisplay(n)
	}
}

// UpdateSubtractAllowed implements nncalc.Display.
func (r *Recorder) UpdateSubtractAllowed(allowed bool) {
	r.frame.UpdateSubtractAllowed(allowed)
	r.record("subtract", allowed)

	if r.next != nil {
		r.next.UpdateSubtractAllowed(allowed)
	}
}

// UpdateDivideAllowed implements nncalc.Display.
func (r *Recorder) UpdateDivideAllowed(allowed bool) {
	r.frame.UpdateDivideAllowed(allowed)
	r.record("divide", allowed)

	if r.next != nil {
		r.next.UpdateDivideAllowed(allowed)
	}
}

// UpdatePowerAllowed implements nncalc.Display.
func (r *Recorder) UpdatePowerAllowed(allowed bool) {
	r.frame.UpdatePowerAllowed(allowed)
	r.record("power", allowed)

	if r.next != nil {
		r.next.UpdatePowerAllowed(allowed)
	}
}

// UpdateRootAllowed implements nncalc.Display.
func (r *Recorder) UpdateRootAllowed(allowed bool) {
	r.frame.UpdateRootAllowed(allowed)
	r.record("root", allowed)

	if r.next != nil {
		r.next.UpdateRootAllowed(allowed)
	}
}

// Reset drops recorded events.
func (r *Recorder) Reset() {
	r.Events = nil
}

// Flush forwards to the next display when it is a Sink.
func (r *Recorder) Flush() error {
	if s, ok := r.next.(Sink); ok {
		return s.Flush()
	}

	return nil
}
