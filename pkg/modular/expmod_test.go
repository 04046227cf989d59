package modular

import (
	"testing"

	"github.com/oisee/mpi/pkg/mpi"
)

func setDec(s string) *mpi.Int {
	x := mpi.New()
	if err := x.ReadString(10, s); err != nil {
		panic(err)
	}
	return x
}

// TestExpModWikipediaExample reproduces the classic modular exponentiation
// worked example 4^13 mod 497 = 445.
func TestExpModWikipediaExample(t *testing.T) {
	a := setDec("4")
	e := setDec("13")
	n := setDec("497")
	x := mpi.New()
	if err := ExpMod(x, a, e, n, nil); err != nil {
		t.Fatalf("ExpMod: %v", err)
	}
	if mpi.CmpInt64(x, 445) != 0 {
		t.Fatalf("4^13 mod 497 = %v, want 445", x)
	}
}

func TestExpModZeroExponent(t *testing.T) {
	a := setDec("123456789")
	e := setDec("0")
	n := setDec("97") // odd
	x := mpi.New()
	if err := ExpMod(x, a, e, n, nil); err != nil {
		t.Fatalf("ExpMod: %v", err)
	}
	if mpi.CmpInt64(x, 1) != 0 {
		t.Fatalf("a^0 mod n = %v, want 1", x)
	}
}

func TestExpModOneExponent(t *testing.T) {
	a := setDec("12345")
	e := setDec("1")
	n := setDec("97")
	x, want := mpi.New(), mpi.New()
	if err := ExpMod(x, a, e, n, nil); err != nil {
		t.Fatalf("ExpMod: %v", err)
	}
	if err := mpi.Mod(want, a, n); err != nil {
		t.Fatal(err)
	}
	if mpi.Cmp(x, want) != 0 {
		t.Fatalf("a^1 mod n = %v, want %v", x, want)
	}
}

// TestExpModFermat checks Fermat's little theorem: for prime n and
// gcd(a,n)=1, a^(n-1) mod n = 1.
func TestExpModFermat(t *testing.T) {
	n := setDec("97") // prime
	for _, av := range []string{"2", "5", "33", "96"} {
		a := setDec(av)
		e := setDec("96") // n-1
		x := mpi.New()
		if err := ExpMod(x, a, e, n, nil); err != nil {
			t.Fatalf("ExpMod(%s): %v", av, err)
		}
		if mpi.CmpInt64(x, 1) != 0 {
			t.Fatalf("Fermat: %s^96 mod 97 = %v, want 1", av, x)
		}
	}
}

func TestExpModRejectsEvenOrNonPositiveModulus(t *testing.T) {
	a, e := setDec("3"), setDec("5")
	x := mpi.New()
	if err := ExpMod(x, a, e, setDec("8"), nil); err != mpi.ErrBadInput {
		t.Fatalf("expected ErrBadInput for even modulus, got %v", err)
	}
	if err := ExpMod(x, a, e, setDec("0"), nil); err != mpi.ErrBadInput {
		t.Fatalf("expected ErrBadInput for zero modulus, got %v", err)
	}
	if err := ExpMod(x, a, e, setDec("-9"), nil); err != mpi.ErrBadInput {
		t.Fatalf("expected ErrBadInput for negative modulus, got %v", err)
	}
}

func TestExpModRRCacheReuse(t *testing.T) {
	n := setDec("1000000007")
	var cache RRCache
	for _, av := range []string{"2", "3", "123456"} {
		a := setDec(av)
		e := setDec("65537")
		x1, x2 := mpi.New(), mpi.New()
		if err := ExpMod(x1, a, e, n, nil); err != nil {
			t.Fatal(err)
		}
		if err := ExpMod(x2, a, e, n, &cache); err != nil {
			t.Fatal(err)
		}
		if mpi.Cmp(x1, x2) != 0 {
			t.Fatalf("cached and uncached ExpMod disagree for a=%s: %v != %v", av, x1, x2)
		}
	}
}

func TestExpModLargeWindowAgainstRepeatedSquaring(t *testing.T) {
	// A modulus and exponent large enough to exercise window widths > 1,
	// checked against an independent repeated-squaring computation.
	n := setDec("1000000000000000000000000000057") // prime-ish, odd
	a := setDec("123456789012345678901234567890")
	e := setDec("987654321098765432109876543210")

	x := mpi.New()
	if err := ExpMod(x, a, e, n, nil); err != nil {
		t.Fatal(err)
	}

	// Independent reference: repeated squaring using only Mul/Mod.
	want := mpi.New()
	want.SetInt64(1)
	base := mpi.New()
	if err := mpi.Mod(base, a, n); err != nil {
		t.Fatal(err)
	}
	exp := mpi.New()
	if err := exp.CopyFrom(e); err != nil {
		t.Fatal(err)
	}
	for mpi.CmpInt64(exp, 0) != 0 {
		bit, err := mpi.ModInt64(exp, 2)
		if err != nil {
			t.Fatal(err)
		}
		if bit != 0 {
			tmp := mpi.New()
			mpi.Mul(tmp, want, base)
			mpi.Mod(want, tmp, n)
		}
		tmp2 := mpi.New()
		mpi.Mul(tmp2, base, base)
		mpi.Mod(base, tmp2, n)
		mpi.ShiftRight(exp, 1)
	}

	if mpi.Cmp(x, want) != 0 {
		t.Fatalf("ExpMod disagrees with repeated-squaring reference: %v != %v", x, want)
	}
}
