package primality

import (
	"context"

	"github.com/oisee/mpi/pkg/modular"
	"github.com/oisee/mpi/pkg/mpi"
	"github.com/oisee/mpi/pkg/rng"
)

// rounds returns the number of Miller-Rabin rounds needed to push the
// composite-acceptance probability at or below 2^-80 for a candidate of
// the given bit length. The table matches common TLS-stack practice: the
// smaller the candidate, the more rounds a single random witness is worth.
func rounds(bits int) int {
	switch {
	case bits >= 1300:
		return 2
	case bits >= 850:
		return 3
	case bits >= 650:
		return 4
	case bits >= 550:
		return 5
	case bits >= 450:
		return 6
	case bits >= 400:
		return 7
	case bits >= 350:
		return 8
	case bits >= 300:
		return 9
	case bits >= 250:
		return 12
	case bits >= 200:
		return 15
	case bits >= 150:
		return 18
	default:
		return 40
	}
}

// IsPrime runs the Miller-Rabin probabilistic primality test on x, reading
// witnesses from src. It rejects even numbers and numbers below 2 outright,
// filters with CheckSmallFactors before paying for any modular
// exponentiation, then performs enough rounds to bring the
// composite-acceptance probability to at most 2^-80.
//
// Returns nil when x is (probably) prime, mpi.ErrNotAcceptable when x is
// composite, or another *mpi.Error on malformed input.
func IsPrime(ctx context.Context, x *mpi.Int, src rng.Source) error {
	if mpi.CmpInt64(x, 2) < 0 {
		return mpi.ErrNotAcceptable
	}
	if mpi.CmpInt64(x, 2) == 0 {
		return nil
	}
	if x.Lsb() != 0 {
		// Even and greater than two.
		return mpi.ErrNotAcceptable
	}
	if mpi.CmpInt64(x, 3) == 0 {
		return nil
	}

	if err := CheckSmallFactors(x); err != nil {
		return err
	}

	// Every scratch value below is derived from x, which may be a key
	// candidate; wipe all of it on every exit path.
	xMinus1, xMinus2, d := mpi.New(), mpi.New(), mpi.New()
	a, y := mpi.New(), mpi.New()
	defer xMinus1.Zeroize()
	defer xMinus2.Zeroize()
	defer d.Zeroize()
	defer a.Zeroize()
	defer y.Zeroize()

	if err := mpi.SubInt64(xMinus1, x, 1); err != nil {
		return err
	}
	if err := mpi.SubInt64(xMinus2, x, 2); err != nil {
		return err
	}

	s := xMinus1.Lsb()
	if err := d.CopyFrom(xMinus1); err != nil {
		return err
	}
	if err := mpi.ShiftRight(d, s); err != nil {
		return err
	}

	two := mpi.New().SetInt64(2)
	nbytes := (x.Msb() + 7) / 8
	rr := &modular.RRCache{}

	for round, t := 0, rounds(x.Msb()); round < t; round++ {
		if err := randomWitness(ctx, a, xMinus2, nbytes, src); err != nil {
			return err
		}

		if err := modular.ExpMod(y, a, d, x, rr); err != nil {
			return err
		}

		if mpi.CmpInt64(y, 1) == 0 || mpi.Cmp(y, xMinus1) == 0 {
			continue
		}

		composite := true
		for i := 1; i < s; i++ {
			if err := modular.ExpMod(y, y, two, x, rr); err != nil {
				return err
			}
			if mpi.Cmp(y, xMinus1) == 0 {
				composite = false
				break
			}
		}
		if composite {
			return mpi.ErrNotAcceptable
		}
	}
	return nil
}

// randomWitness fills a with a uniform draw from [2, x-2] by reading nbytes
// random bytes and retrying on a draw that lands outside the range.
func randomWitness(ctx context.Context, a, xMinus2 *mpi.Int, nbytes int, src rng.Source) error {
	for {
		if err := rng.FillRandom(ctx, a, nbytes, src); err != nil {
			return err
		}
		if mpi.CmpInt64(a, 2) < 0 || mpi.Cmp(a, xMinus2) > 0 {
			continue
		}
		return nil
	}
}
