package nncalc

import "github.com/sivchari/nncalc/pkg/natural"

// Display receives the engine's view after every operation. Values passed to
// it are copies; a Display cannot reach back into engine state.
type Display interface {
	UpdateTopDisplay(n natural.Natural)
	UpdateBottomDisplay(n natural.Natural)
	UpdateSubtractAllowed(allowed bool)
	UpdateDivideAllowed(allowed bool)
	UpdatePowerAllowed(allowed bool)
	UpdateRootAllowed(allowed bool)
}

// Snapshot is an immutable view of both registers and the emitted gates.
type Snapshot struct {
	Top    natural.Natural `json:"top" yaml:"top"`
	Bottom natural.Natural `json:"bottom" yaml:"bottom"`
	Gates  Gates           `json:"gates" yaml:"gates"`
}

type discard struct{}

func (discard) UpdateTopDisplay(natural.Natural) {}
func (discard) UpdateBottomDisplay(natural.Natural) {}
func (discard) UpdateSubtractAllowed(bool) {}
func (discard) UpdateDivideAllowed(bool) {}
func (discard) UpdatePowerAllowed(bool) {}
func (discard) UpdateRootAllowed(bool) {}
