// Package nncalc provides the two-register natural number calculator engine.
package nncalc

import (
	"io"
	"log"

	"github.com/sivchari/nncalc/pkg/natural"
)

// Engine holds the top and bottom registers and the gates last emitted to
// its Display. It is not safe for concurrent use.
//
// Gates are advisory. Only Clear, Swap, Enter and AppendDigit update them;
// the arithmetic operations re-emit the previous values unchanged.
type Engine struct {
	top     natural.Natural
	bottom  natural.Natural
	gates   Gates
	display Display
	strict  bool
	logger  *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithStrict makes every operation check its precondition against the
// registers and fail with ErrNotAllowed instead of mutating.
func WithStrict(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

// WithLogger sets the logger used for operation tracing.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithRegisters sets the initial register values.
func WithRegisters(top, bottom natural.Natural) Option {
	return func(e *Engine) {
		e.top.CopyFrom(top)
		e.bottom.CopyFrom(bottom)
	}
}

// New creates an engine with both registers at zero and emits the initial
// view to display. A nil display discards all updates.
func New(display Display, opts ...Option) *Engine {
	if display == nil {
		display = discard{}
	}

	e := &Engine{
		display: display,
		logger:  log.New(io.Discard, "", 0),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.gates = ComputeGates(e.top, e.bottom)
	e.refresh()

	return e
}

// Snapshot returns the current view without emitting it.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Top:    e.top,
		Bottom: e.bottom,
		Gates:  e.gates,
	}
}

// Clear sets bottom to zero and closes the divide and root gates.
func (e *Engine) Clear() Snapshot {
	e.bottom.Clear()
	e.gates.DivideAllowed = false
	e.gates.RootAllowed = false

	return e.done(OpClear)
}

// Swap exchanges top and bottom and recomputes every gate.
func (e *Engine) Swap() Snapshot {
	var tmp natural.Natural
	tmp.TransferFrom(&e.top)
	e.top.TransferFrom(&e.bottom)
	e.bottom.TransferFrom(&tmp)
	e.gates = ComputeGates(e.top, e.bottom)

	return e.done(OpSwap)
}

// Enter copies bottom into top and opens the subtract gate.
func (e *Engine) Enter() Snapshot {
	e.top.CopyFrom(e.bottom)
	e.gates.SubtractAllowed = true

	return e.done(OpEnter)
}

// Add sets bottom to bottom + top and top to zero.
func (e *Engine) Add() Snapshot {
	e.bottom.Add(e.top)
	e.top.Clear()

	return e.done(OpAdd)
}

// Subtract sets bottom to top - bottom and top to zero. It requires top >= bottom.
func (e *Engine) Subtract() (Snapshot, error) {
	if err := e.check(OpSubtract); err != nil {
		return e.Snapshot(), err
	}

	if err := e.top.Subtract(e.bottom); err != nil {
		return e.Snapshot(), e.fail(OpSubtract, err)
	}

	e.bottom.CopyFrom(e.top)
	e.top.Clear()

	return e.done(OpSubtract), nil
}

// Multiply sets bottom to bottom * top and top to zero.
func (e *Engine) Multiply() Snapshot {
	e.bottom.Multiply(e.top)
	e.top.Clear()

	return e.done(OpMultiply)
}

// Divide puts the quotient top / bottom in bottom and the remainder in top.
// It requires bottom != 0.
func (e *Engine) Divide() (Snapshot, error) {
	if err := e.check(OpDivide); err != nil {
		return e.Snapshot(), err
	}

	rem, err := e.top.Divide(e.bottom)
	if err != nil {
		return e.Snapshot(), e.fail(OpDivide, err)
	}

	e.bottom.CopyFrom(e.top)
	e.top.CopyFrom(rem)

	return e.done(OpDivide), nil
}

// Power sets bottom to top raised to bottom and top to zero. It requires
// bottom <= natural.MaxInt.
func (e *Engine) Power() (Snapshot, error) {
	if err := e.check(OpPower); err != nil {
		return e.Snapshot(), err
	}

	p, err := e.bottom.ToInt()
	if err != nil {
		return e.Snapshot(), e.fail(OpPower, err)
	}

	if err := e.top.Power(p); err != nil {
		return e.Snapshot(), e.fail(OpPower, err)
	}

	e.bottom.CopyFrom(e.top)
	e.top.Clear()

	return e.done(OpPower), nil
}

// Root sets bottom to the bottom-th integer root of top and top to zero.
// It requires bottom >= 2.
func (e *Engine) Root() (Snapshot, error) {
	if err := e.check(OpRoot); err != nil {
		return e.Snapshot(), err
	}

	r, err := e.bottom.ToInt()
	if err != nil {
		return e.Snapshot(), e.fail(OpRoot, err)
	}

	if err := e.top.Root(r); err != nil {
		return e.Snapshot(), e.fail(OpRoot, err)
	}

	e.bottom.CopyFrom(e.top)
	e.top.Clear()

	return e.done(OpRoot), nil
}

// AppendDigit sets bottom to bottom * 10 + d and recomputes every gate.
func (e *Engine) AppendDigit(d int) (Snapshot, error) {
	if err := e.bottom.MultiplyBy10(d); err != nil {
		return e.Snapshot(), e.fail(OpAppendDigit, err)
	}

	e.gates = ComputeGates(e.top, e.bottom)

	return e.done(OpAppendDigit), nil
}

// Apply runs op. digit is only used by OpAppendDigit.
func (e *Engine) Apply(op Op, digit int) (Snapshot, error) {
	switch op {
	case OpClear:
		return e.Clear(), nil
	case OpSwap:
		return e.Swap(), nil
	case OpEnter:
		return e.Enter(), nil
	case OpAdd:
		return e.Add(), nil
	case OpSubtract:
		return e.Subtract()
	case OpMultiply:
		return e.Multiply(), nil
	case OpDivide:
		return e.Divide()
	case OpPower:
		return e.Power()
	case OpRoot:
		return e.Root()
	case OpAppendDigit:
		return e.AppendDigit(digit)
	default:
		return e.Snapshot(), &OpError{Op: op, Err: ErrUnknownOp}
	}
}

func (e *Engine) check(op Op) error {
	if !e.strict {
		return nil
	}

	if !ComputeGates(e.top, e.bottom).Allows(op) {
		return e.fail(op, ErrNotAllowed)
	}

	return nil
}

func (e *Engine) fail(op Op, err error) error {
	e.logger.Printf("%s failed: %v", op, err)

	return &OpError{Op: op, Err: err}
}

func (e *Engine) done(op Op) Snapshot {
	e.logger.Printf("%s: top=%s bottom=%s gates=%+v", op, e.top, e.bottom, e.gates)
	e.refresh()

	return e.Snapshot()
}

// refresh emits both registers and the current gates.
func (e *Engine) refresh() {
	e.display.UpdateTopDisplay(e.top)
	e.display.UpdateBottomDisplay(e.bottom)
	e.display.UpdateSubtractAllowed(e.gates.SubtractAllowed)
	e.display.UpdateDivideAllowed(e.gates.DivideAllowed)
	e.display.UpdatePowerAllowed(e.gates.PowerAllowed)
	e.display.UpdateRootAllowed(e.gates.RootAllowed)
}
