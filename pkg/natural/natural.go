// Package natural provides an arbitrary-precision natural number value type.
package natural

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
)

// MaxInt is the largest value ToInt converts: the maximum of a 32-bit signed integer.
const MaxInt = math.MaxInt32

var (
	bigTen    = big.NewInt(10)
	bigMaxInt = big.NewInt(MaxInt)
)

// Natural is a non-negative integer of unbounded magnitude.
//
// The zero value is 0 and ready to use. A Natural never mutates the big.Int
// it points to: every operation stores a freshly allocated result, so plain
// assignment of a Natural never aliases mutable state.
type Natural struct {
	v *big.Int
}

// Zero returns a Natural holding 0.
func Zero() Natural {
	return Natural{}
}

// FromUint64 returns a Natural holding n.
func FromUint64(n uint64) Natural {
	return Natural{v: new(big.Int).SetUint64(n)}
}

// FromInt returns a Natural holding n.
func FromInt(n int) (Natural, error) {
	if n < 0 {
		return Natural{}, fmt.Errorf("%d: %w", n, ErrNegative)
	}

	return Natural{v: big.NewInt(int64(n))}, nil
}

// FromBig returns a Natural holding a copy of x.
func FromBig(x *big.Int) (Natural, error) {
	if x.Sign() < 0 {
		return Natural{}, fmt.Errorf("%s: %w", x, ErrNegative)
	}

	return Natural{v: new(big.Int).Set(x)}, nil
}

// Parse reads a decimal natural number. Leading zeros are accepted.
func Parse(s string) (Natural, error) {
	if s == "" {
		return Natural{}, fmt.Errorf("empty input: %w", ErrSyntax)
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return Natural{}, fmt.Errorf("%q: %w", s, ErrSyntax)
		}
	}

	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Natural{}, fmt.Errorf("%q: %w", s, ErrSyntax)
	}

	return Natural{v: v}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Natural {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return n
}

func (n Natural) int() *big.Int {
	if n.v == nil {
		return new(big.Int)
	}

	return n.v
}

// Big returns a copy of n as a big.Int.
func (n Natural) Big() *big.Int {
	return new(big.Int).Set(n.int())
}

// CopyFrom sets n to the value of src.
func (n *Natural) CopyFrom(src Natural) {
	n.v = src.v
}

// TransferFrom moves the value of src into n and leaves src at zero.
func (n *Natural) TransferFrom(src *Natural) {
	n.v = src.v
	src.v = nil
}

// Cmp compares n and m and returns -1, 0 or +1.
func (n Natural) Cmp(m Natural) int {
	return n.int().Cmp(m.int())
}

// IsZero reports whether n is 0.
func (n Natural) IsZero() bool {
	return n.v == nil || n.v.Sign() == 0
}

// Clear sets n to 0.
func (n *Natural) Clear() {
	n.v = nil
}

// Add sets n to n + m.
func (n *Natural) Add(m Natural) {
	n.v = new(big.Int).Add(n.int(), m.int())
}

// Subtract sets n to n - m. It fails without modifying n if m > n.
func (n *Natural) Subtract(m Natural) error {
	if n.Cmp(m) < 0 {
		return fmt.Errorf("%s - %s: %w", n, m, ErrNegativeResult)
	}

	n.v = new(big.Int).Sub(n.int(), m.int())

	return nil
}

// Multiply sets n to n * m.
func (n *Natural) Multiply(m Natural) {
	n.v = new(big.Int).Mul(n.int(), m.int())
}

// MultiplyBy10 sets n to n * 10 + d, appending a decimal digit.
func (n *Natural) MultiplyBy10(d int) error {
	if d < 0 || d > 9 {
		return fmt.Errorf("%d: %w", d, ErrInvalidDigit)
	}

	v := new(big.Int).Mul(n.int(), bigTen)
	n.v = v.Add(v, big.NewInt(int64(d)))

	return nil
}

// Divide sets n to n / m and returns n mod m.
func (n *Natural) Divide(m Natural) (Natural, error) {
	if m.IsZero() {
		return Natural{}, fmt.Errorf("%s / 0: %w", n, ErrDivideByZero)
	}

	q, r := new(big.Int).QuoRem(n.int(), m.int(), new(big.Int))
	n.v = q

	return Natural{v: r}, nil
}

// Power sets n to n raised to p. 0^0 is 1.
func (n *Natural) Power(p int) error {
	if p < 0 {
		return fmt.Errorf("%d: %w", p, ErrNegativeExponent)
	}

	n.v = new(big.Int).Exp(n.int(), big.NewInt(int64(p)), nil)

	return nil
}

// Root sets n to the largest x such that x^r <= n.
func (n *Natural) Root(r int) error {
	if r < 2 {
		return fmt.Errorf("%d: %w", r, ErrInvalidRootIndex)
	}

	n.v = nthRoot(n.int(), r)

	return nil
}

// nthRoot runs Newton's iteration from an initial guess that is known to be
// at least the root, so the sequence decreases monotonically to the floor.
func nthRoot(a *big.Int, r int) *big.Int {
	if a.Cmp(big.NewInt(2)) < 0 {
		return new(big.Int).Set(a)
	}

	if r == 2 {
		return new(big.Int).Sqrt(a)
	}

	if a.BitLen() <= r {
		return big.NewInt(1)
	}

	bigR := big.NewInt(int64(r))
	bigR1 := big.NewInt(int64(r - 1))

	x := new(big.Int).Lsh(big.NewInt(1), uint((a.BitLen()+r-1)/r))
	for {
		// y = ((r-1)x + a / x^(r-1)) / r
		t := new(big.Int).Exp(x, bigR1, nil)
		t.Quo(a, t)
		y := new(big.Int).Mul(x, bigR1)
		y.Add(y, t)
		y.Quo(y, bigR)

		if y.Cmp(x) >= 0 {
			return x
		}

		x = y
	}
}

// ToInt converts n to a native integer. It fails when n exceeds MaxInt.
func (n Natural) ToInt() (int, error) {
	if n.int().Cmp(bigMaxInt) > 0 {
		return 0, fmt.Errorf("%s: %w", n, ErrExponentOutOfRange)
	}

	return int(n.int().Int64()), nil
}

// String returns the decimal representation of n.
func (n Natural) String() string {
	return n.int().String()
}

// MarshalJSON encodes n as a decimal string, since values may exceed float precision.
func (n Natural) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

// UnmarshalJSON decodes a decimal string.
func (n *Natural) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to unmarshal natural number: %w", err)
	}

	v, err := Parse(s)
	if err != nil {
		return err
	}

	*n = v

	return nil
}

// MarshalYAML encodes n as a decimal string.
func (n Natural) MarshalYAML() (any, error) {
	return n.String(), nil
}

// UnmarshalText decodes a decimal string. yaml.v3 uses it for scalar values.
func (n *Natural) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*n = v

	return nil
}

// Equal reports whether n and m hold the same value.
func (n Natural) Equal(m Natural) bool {
	return n.Cmp(m) == 0
}
