package primality

import (
	"context"
	"testing"

	"github.com/oisee/mpi/pkg/mpi"
	"github.com/oisee/mpi/pkg/rng"
)

func testSource() rng.Source {
	return rng.NewMathRandSource(1, 2)
}

func TestIsPrimeAcceptsSmallTablePrimes(t *testing.T) {
	ctx := context.Background()
	src := testSource()
	for _, p := range []int64{2, 3, 5, 7, 97, 7919} {
		x := mpi.New()
		x.SetInt64(p)
		if err := IsPrime(ctx, x, src); err != nil {
			t.Fatalf("IsPrime(%d): %v", p, err)
		}
	}
}

func TestIsPrimeRejectsComposites(t *testing.T) {
	ctx := context.Background()
	src := testSource()
	for _, c := range []int64{0, 1, 4, 9, 15, 7921, 8911} { // 8911 = 7*19*67, a Carmichael number
		x := mpi.New()
		x.SetInt64(c)
		if err := IsPrime(ctx, x, src); err != mpi.ErrNotAcceptable {
			t.Fatalf("IsPrime(%d) = %v, want ErrNotAcceptable", c, err)
		}
	}
}

func TestIsPrimeAcceptsLargePrime(t *testing.T) {
	ctx := context.Background()
	src := testSource()
	x := mpi.New()
	if err := x.ReadString(10, "1000000007"); err != nil {
		t.Fatal(err)
	}
	if err := IsPrime(ctx, x, src); err != nil {
		t.Fatalf("IsPrime(1000000007): %v", err)
	}
}

func TestIsPrimeRejectsLargeComposite(t *testing.T) {
	ctx := context.Background()
	src := testSource()
	x := mpi.New()
	// 1000000007 * 1000000009, a product of two large primes.
	if err := x.ReadString(10, "1000000016000000063"); err != nil {
		t.Fatal(err)
	}
	if err := IsPrime(ctx, x, src); err != mpi.ErrNotAcceptable {
		t.Fatalf("IsPrime(product of two primes) = %v, want ErrNotAcceptable", err)
	}
}
