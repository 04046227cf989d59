package modular

import (
	"testing"

	"github.com/oisee/mpi/pkg/mpi"
)

func TestInvModConcreteScenario(t *testing.T) {
	a := setDec("3")
	n := setDec("11")
	x := mpi.New()
	if err := InvMod(x, a, n); err != nil {
		t.Fatalf("InvMod: %v", err)
	}
	if mpi.CmpInt64(x, 4) != 0 {
		t.Fatalf("inv_mod(3,11) = %v, want 4", x)
	}
}

func TestInvModIdentity(t *testing.T) {
	n := setDec("1000000007") // prime
	for _, av := range []string{"1", "2", "97", "999999999", "123456789"} {
		a := setDec(av)
		x := mpi.New()
		if err := InvMod(x, a, n); err != nil {
			t.Fatalf("InvMod(%s): %v", av, err)
		}
		prod := mpi.New()
		if err := mpi.Mul(prod, a, x); err != nil {
			t.Fatal(err)
		}
		rem := mpi.New()
		if err := mpi.Mod(rem, prod, n); err != nil {
			t.Fatal(err)
		}
		if mpi.CmpInt64(rem, 1) != 0 {
			t.Fatalf("(%s * inv_mod(%s,n)) mod n = %v, want 1", av, av, rem)
		}
	}
}

func TestInvModNotAcceptableWhenNotCoprime(t *testing.T) {
	a := setDec("6")
	n := setDec("9") // gcd(6,9) = 3
	x := mpi.New()
	if err := InvMod(x, a, n); err != mpi.ErrNotAcceptable {
		t.Fatalf("expected ErrNotAcceptable, got %v", err)
	}
}

func TestInvModBadInputModulus(t *testing.T) {
	a := setDec("3")
	x := mpi.New()
	if err := InvMod(x, a, setDec("1")); err != mpi.ErrBadInput {
		t.Fatalf("expected ErrBadInput for n=1, got %v", err)
	}
	if err := InvMod(x, a, setDec("0")); err != mpi.ErrBadInput {
		t.Fatalf("expected ErrBadInput for n=0, got %v", err)
	}
	if err := InvMod(x, a, setDec("-5")); err != mpi.ErrBadInput {
		t.Fatalf("expected ErrBadInput for negative n, got %v", err)
	}
}
