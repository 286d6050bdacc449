package nncalc

import "github.com/sivchari/nncalc/pkg/natural"

var (
	two      = natural.FromUint64(2)
	intLimit = natural.FromUint64(natural.MaxInt)
)

// Gates reports which operations currently have their precondition satisfied.
type Gates struct {
	SubtractAllowed bool `json:"subtractAllowed" yaml:"subtractAllowed"`
	DivideAllowed   bool `json:"divideAllowed" yaml:"divideAllowed"`
	PowerAllowed    bool `json:"powerAllowed" yaml:"powerAllowed"`
	RootAllowed     bool `json:"rootAllowed" yaml:"rootAllowed"`
}

// ComputeGates derives all four gates from a register pair.
func ComputeGates(top, bottom natural.Natural) Gates {
	return Gates{
		SubtractAllowed: top.Cmp(bottom) >= 0,
		DivideAllowed:   !bottom.IsZero(),
		PowerAllowed:    bottom.Cmp(intLimit) <= 0,
		RootAllowed:     bottom.Cmp(two) >= 0,
	}
}

// Allows reports whether the gate guarding op is open. Operations without
// a precondition are always allowed.
func (g Gates) Allows(op Op) bool {
	switch op {
	case OpSubtract:
		return g.SubtractAllowed
	case OpDivide:
		return g.DivideAllowed
	case OpPower:
		return g.PowerAllowed
	case OpRoot:
		return g.RootAllowed
	default:
		return true
	}
}
