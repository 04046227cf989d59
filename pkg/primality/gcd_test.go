package primality

import (
	"testing"

	"github.com/oisee/mpi/pkg/mpi"
)

func setDec(t *testing.T, s string) *mpi.Int {
	t.Helper()
	x := mpi.New()
	if err := x.ReadString(10, s); err != nil {
		t.Fatalf("ReadString(%q): %v", s, err)
	}
	return x
}

func TestGcdConcreteScenarios(t *testing.T) {
	cases := []struct {
		a, b, want string
	}{
		{"693", "609", "21"},
		{"1764", "868", "28"},
	}
	for _, c := range cases {
		g := mpi.New()
		if err := Gcd(g, setDec(t, c.a), setDec(t, c.b)); err != nil {
			t.Fatalf("Gcd(%s,%s): %v", c.a, c.b, err)
		}
		if mpi.Cmp(g, setDec(t, c.want)) != 0 {
			t.Fatalf("Gcd(%s,%s) = %v, want %s", c.a, c.b, g, c.want)
		}
	}
}

func TestGcdWithZero(t *testing.T) {
	g := mpi.New()
	if err := Gcd(g, setDec(t, "0"), setDec(t, "42")); err != nil {
		t.Fatal(err)
	}
	if mpi.CmpInt64(g, 42) != 0 {
		t.Fatalf("Gcd(0,42) = %v, want 42", g)
	}
	if err := Gcd(g, setDec(t, "42"), setDec(t, "0")); err != nil {
		t.Fatal(err)
	}
	if mpi.CmpInt64(g, 42) != 0 {
		t.Fatalf("Gcd(42,0) = %v, want 42", g)
	}
}

func TestGcdCoprime(t *testing.T) {
	g := mpi.New()
	if err := Gcd(g, setDec(t, "17"), setDec(t, "5")); err != nil {
		t.Fatal(err)
	}
	if mpi.CmpInt64(g, 1) != 0 {
		t.Fatalf("Gcd(17,5) = %v, want 1", g)
	}
}

func TestGcdNegativeOperands(t *testing.T) {
	g := mpi.New()
	if err := Gcd(g, setDec(t, "-693"), setDec(t, "609")); err != nil {
		t.Fatal(err)
	}
	if mpi.CmpInt64(g, 21) != 0 {
		t.Fatalf("Gcd(-693,609) = %v, want 21", g)
	}
}
