package primality

import (
	"context"
	"testing"

	"github.com/oisee/mpi/pkg/mpi"
)

func TestGenPrimeProducesPrimeOfRequestedBitLength(t *testing.T) {
	ctx := context.Background()
	src := testSource()
	for _, nbits := range []int{16, 64, 128} {
		x, err := GenPrime(ctx, nbits, false, src)
		if err != nil {
			t.Fatalf("GenPrime(%d): %v", nbits, err)
		}
		if got := x.Msb(); got != nbits {
			t.Fatalf("GenPrime(%d) produced a value with %d bits, want %d", nbits, got, nbits)
		}
		if err := IsPrime(ctx, x, src); err != nil {
			t.Fatalf("GenPrime(%d) = %v is not prime: %v", nbits, x, err)
		}
	}
}

func TestGenPrimeSafePrime(t *testing.T) {
	ctx := context.Background()
	src := testSource()
	x, err := GenPrime(ctx, 128, true, src)
	if err != nil {
		t.Fatalf("GenPrime(128, dh_flag=true): %v", err)
	}
	if err := IsPrime(ctx, x, src); err != nil {
		t.Fatalf("safe prime candidate %v failed IsPrime: %v", x, err)
	}
	half := mpi.New()
	if err := mpi.SubInt64(half, x, 1); err != nil {
		t.Fatal(err)
	}
	if err := mpi.ShiftRight(half, 1); err != nil {
		t.Fatal(err)
	}
	if err := IsPrime(ctx, half, src); err != nil {
		t.Fatalf("(X-1)/2 = %v failed IsPrime: %v", half, err)
	}
}

func TestGenPrimeRejectsTooFewBits(t *testing.T) {
	ctx := context.Background()
	src := testSource()
	if _, err := GenPrime(ctx, 2, false, src); err != mpi.ErrBadInput {
		t.Fatalf("GenPrime(2, ...) = %v, want ErrBadInput", err)
	}
}
