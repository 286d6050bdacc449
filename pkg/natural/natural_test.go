package natural

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestZeroValue(t *testing.T) {
	var n Natural

	if !n.IsZero() {
		t.Error("Expected zero value to be zero")
	}

	if n.String() != "0" {
		t.Errorf("Expected \"0\", got %q", n.String())
	}

	if n.Cmp(Zero()) != 0 {
		t.Error("Expected zero value to equal Zero()")
	}
}

func TestFromInt(t *testing.T) {
	n, err := FromInt(42)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if n.String() != "42" {
		t.Errorf("Expected 42, got %s", n)
	}

	if _, err := FromInt(-1); !errors.Is(err, ErrNegative) {
		t.Errorf("Expected ErrNegative, got %v", err)
	}

	if _, err := FromBig(big.NewInt(-5)); !errors.Is(err, ErrNegative) {
		t.Errorf("Expected ErrNegative from FromBig, got %v", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"simple", "123", "123", false},
		{"leading zeros", "007", "7", false},
		{"big", "123456789012345678901234567890", "123456789012345678901234567890", false},
		{"empty", "", "", true},
		{"sign", "-1", "", true},
		{"plus", "+1", "", true},
		{"letters", "12a", "", true},
		{"space", " 1", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrSyntax) {
					t.Errorf("Parse(%q) error = %v, want ErrSyntax", tt.input, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}

			if got.String() != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestCopyFromDoesNotAlias(t *testing.T) {
	src := FromUint64(5)

	var dst Natural
	dst.CopyFrom(src)
	dst.Add(FromUint64(1))

	if src.String() != "5" {
		t.Errorf("Expected source to stay 5, got %s", src)
	}

	if dst.String() != "6" {
		t.Errorf("Expected copy to be 6, got %s", dst)
	}
}

func TestTransferFrom(t *testing.T) {
	src := FromUint64(9)

	var dst Natural
	dst.TransferFrom(&src)

	if !src.IsZero() {
		t.Errorf("Expected source to be zero after transfer, got %s", src)
	}

	if dst.String() != "9" {
		t.Errorf("Expected 9, got %s", dst)
	}
}

func TestSubtract(t *testing.T) {
	n := FromUint64(10)
	if err := n.Subtract(FromUint64(4)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if n.String() != "6" {
		t.Errorf("Expected 6, got %s", n)
	}

	err := n.Subtract(FromUint64(7))
	if !errors.Is(err, ErrNegativeResult) {
		t.Fatalf("Expected ErrNegativeResult, got %v", err)
	}

	if n.String() != "6" {
		t.Errorf("Expected failed subtract to leave 6, got %s", n)
	}
}

func TestMultiplyBy10(t *testing.T) {
	var n Natural
	for _, d := range []int{1, 0, 9} {
		if err := n.MultiplyBy10(d); err != nil {
			t.Fatalf("MultiplyBy10(%d) unexpected error: %v", d, err)
		}
	}

	if n.String() != "109" {
		t.Errorf("Expected 109, got %s", n)
	}

	for _, d := range []int{-1, 10} {
		if err := n.MultiplyBy10(d); !errors.Is(err, ErrInvalidDigit) {
			t.Errorf("MultiplyBy10(%d) error = %v, want ErrInvalidDigit", d, err)
		}
	}
}

func TestDivide(t *testing.T) {
	n := FromUint64(100)

	rem, err := n.Divide(FromUint64(7))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if n.String() != "14" || rem.String() != "2" {
		t.Errorf("Expected 14 rem 2, got %s rem %s", n, rem)
	}

	if _, err := n.Divide(Zero()); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("Expected ErrDivideByZero, got %v", err)
	}

	if n.String() != "14" {
		t.Errorf("Expected failed divide to leave 14, got %s", n)
	}
}

func TestPower(t *testing.T) {
	tests := []struct {
		base string
		exp  int
		want string
	}{
		{"2", 10, "1024"},
		{"0", 0, "1"},
		{"7", 0, "1"},
		{"0", 5, "0"},
		{"10", 30, "1000000000000000000000000000000"},
	}

	for _, tt := range tests {
		n := MustParse(tt.base)
		if err := n.Power(tt.exp); err != nil {
			t.Fatalf("%s^%d unexpected error: %v", tt.base, tt.exp, err)
		}

		if n.String() != tt.want {
			t.Errorf("%s^%d = %s, want %s", tt.base, tt.exp, n, tt.want)
		}
	}

	n := FromUint64(3)
	if err := n.Power(-1); !errors.Is(err, ErrNegativeExponent) {
		t.Errorf("Expected ErrNegativeExponent, got %v", err)
	}
}

func TestRoot(t *testing.T) {
	tests := []struct {
		value string
		index int
		want  string
	}{
		{"8", 3, "2"},
		{"0", 2, "0"},
		{"1", 5, "1"},
		{"3", 2, "1"},
		{"4", 2, "2"},
		{"26", 3, "2"},
		{"27", 3, "3"},
		{"7", 3, "1"},
		{"1000000000000000000000000000000", 3, "10000000000"},
		{"999999999999999999999999999999", 3, "9999999999"},
		{"100", 200, "1"},
	}

	for _, tt := range tests {
		n := MustParse(tt.value)
		if err := n.Root(tt.index); err != nil {
			t.Fatalf("root(%s, %d) unexpected error: %v", tt.value, tt.index, err)
		}

		if n.String() != tt.want {
			t.Errorf("root(%s, %d) = %s, want %s", tt.value, tt.index, n, tt.want)
		}
	}

	n := FromUint64(9)
	for _, r := range []int{-1, 0, 1} {
		if err := n.Root(r); !errors.Is(err, ErrInvalidRootIndex) {
			t.Errorf("Root(%d) error = %v, want ErrInvalidRootIndex", r, err)
		}
	}
}

func TestRootMatchesDefinition(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		a := new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), uint(rng.Intn(200)+1)))
		r := rng.Intn(9) + 2

		n, err := FromBig(a)
		if err != nil {
			t.Fatal(err)
		}

		if err := n.Root(r); err != nil {
			t.Fatal(err)
		}

		x := n.Big()
		lo := new(big.Int).Exp(x, big.NewInt(int64(r)), nil)
		hi := new(big.Int).Exp(new(big.Int).Add(x, big.NewInt(1)), big.NewInt(int64(r)), nil)

		if lo.Cmp(a) > 0 || hi.Cmp(a) <= 0 {
			t.Fatalf("root(%s, %d) = %s is not the floor root", a, r, x)
		}
	}
}

func TestToInt(t *testing.T) {
	n := FromUint64(MaxInt)

	got, err := n.ToInt()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got != MaxInt {
		t.Errorf("Expected %d, got %d", MaxInt, got)
	}

	n.Add(FromUint64(1))

	if _, err := n.ToInt(); !errors.Is(err, ErrExponentOutOfRange) {
		t.Errorf("Expected ErrExponentOutOfRange, got %v", err)
	}
}

func TestArithmeticMatchesBig(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	limit := new(big.Int).Lsh(big.NewInt(1), 256)

	for i := 0; i < 100; i++ {
		a := new(big.Int).Rand(rng, limit)
		b := new(big.Int).Rand(rng, limit)

		na, _ := FromBig(a)
		nb, _ := FromBig(b)

		sum := na
		sum.Add(nb)

		if want := new(big.Int).Add(a, b); sum.Big().Cmp(want) != 0 {
			t.Fatalf("%s + %s = %s, want %s", a, b, sum, want)
		}

		prod := na
		prod.Multiply(nb)

		if want := new(big.Int).Mul(a, b); prod.Big().Cmp(want) != 0 {
			t.Fatalf("%s * %s = %s, want %s", a, b, prod, want)
		}

		if na.String() != a.String() {
			t.Fatalf("Expected operand to stay %s, got %s", a, na)
		}
	}
}

func TestJSONAndYAML(t *testing.T) {
	n := MustParse("123456789012345678901234567890")

	data, err := n.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}

	if string(data) != `"123456789012345678901234567890"` {
		t.Errorf("Unexpected JSON: %s", data)
	}

	var back Natural
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON failed: %v", err)
	}

	if !back.Equal(n) {
		t.Errorf("Expected %s, got %s", n, back)
	}

	var doc struct {
		Value Natural `yaml:"value"`
	}

	if err := yaml.Unmarshal([]byte("value: 9876543210987654321\n"), &doc); err != nil {
		t.Fatalf("yaml.Unmarshal failed: %v", err)
	}

	if doc.Value.String() != "9876543210987654321" {
		t.Errorf("Expected yaml value, got %s", doc.Value)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("yaml.Marshal failed: %v", err)
	}

	var again struct {
		Value Natural `yaml:"value"`
	}

	if err := yaml.Unmarshal(out, &again); err != nil {
		t.Fatalf("yaml.Unmarshal of %q failed: %v", out, err)
	}

	if !again.Value.Equal(doc.Value) {
		t.Errorf("YAML round trip: expected %s, got %s", doc.Value, again.Value)
	}
}
