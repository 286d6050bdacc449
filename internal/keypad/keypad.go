// Package keypad maps key names to calculator engine operations.
package keypad

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sivchari/nncalc/pkg/nncalc"
)

// ErrUnknownKey is returned for a key that names no operation.
var ErrUnknownKey = errors.New("unknown key")

var keys = map[string]nncalc.Op{
	"clear": nncalc.OpClear,
	"c":     nncalc.OpClear,
	"swap":  nncalc.OpSwap,
	"s":     nncalc.OpSwap,
	"enter": nncalc.OpEnter,
	"e":     nncalc.OpEnter,
	"=":     nncalc.OpEnter,
	"+":     nncalc.OpAdd,
	"-":     nncalc.OpSubtract,
	"*":     nncalc.OpMultiply,
	"x":     nncalc.OpMultiply,
	"/":     nncalc.OpDivide,
	"^":     nncalc.OpPower,
	"pow":   nncalc.OpPower,
	"root":  nncalc.OpRoot,
	"r":     nncalc.OpRoot,
}

// Lookup returns the operation bound to key. Digit keys are not included.
func Lookup(key string) (nncalc.Op, bool) {
	op, ok := keys[strings.ToLower(key)]

	return op, ok
}

// Keys returns every named key in sorted order.
func Keys() []string {
	names := make([]string, 0, len(keys))
	for k := range keys {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Press applies key to the engine. A run of digits such as "123" is pressed
// as consecutive AppendDigit operations, stopping at the first failure.
func Press(e *nncalc.Engine, key string) (nncalc.Snapshot, error) {
	if op, ok := Lookup(key); ok {
		return e.Apply(op, 0)
	}

	if !isDigits(key) {
		return e.Snapshot(), fmt.Errorf("%q: %w", key, ErrUnknownKey)
	}

	var s nncalc.Snapshot

	for _, r := range key {
		var err error

		s, err = e.AppendDigit(int(r - '0'))
		if err != nil {
			return s, err
		}
	}

	return s, nil
}

// PressAll presses each key of pressed in order, calling after (if non-nil) with the
// snapshot produced by every key.
func PressAll(e *nncalc.Engine, pressed []string, after func(key string, s nncalc.Snapshot) error) (nncalc.Snapshot, error) {
	s := e.Snapshot()

	for _, key := range pressed {
		var err error

		s, err = Press(e, key)
		if err != nil {
			return s, fmt.Errorf("key %q: %w", key, err)
		}

		if after != nil {
			if err := after(key, s); err != nil {
				return s, err
			}
		}
	}

	return s, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
