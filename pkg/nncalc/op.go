package nncalc

// Op identifies one engine operation.
type Op int

// Engine operations.
const (
	OpClear Op = iota
	OpSwap
	OpEnter
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpPower
	OpRoot
	OpAppendDigit
)

var opNames = [...]string{
	OpClear:       "clear",
	OpSwap:        "swap",
	OpEnter:       "enter",
	OpAdd:         "add",
	OpSubtract:    "subtract",
	OpMultiply:    "multiply",
	OpDivide:      "divide",
	OpPower:       "power",
	OpRoot:        "root",
	OpAppendDigit: "append-digit",
}

func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return "unknown"
	}

	return opNames[o]
}
