// Package primality implements the number-theoretic services built on
// pkg/mpi and pkg/rng: binary GCD, a small-prime trial-division filter,
// Miller-Rabin primality testing, and prime (optionally safe-prime)
// generation.
package primality

import "github.com/oisee/mpi/pkg/mpi"

// Gcd sets g = gcd(|a|, |b|) using the binary GCD algorithm: strip the
// common power of two from both operands, then repeatedly subtract the
// smaller (odd) magnitude from the larger and strip the power of two the
// subtraction introduced, until one side reaches zero; the surviving odd
// side, shifted back up by the common power of two, is the result.
func Gcd(g, a, b *mpi.Int) error {
	if a.IsZero() {
		return mpi.Abs(g, b)
	}
	if b.IsZero() {
		return mpi.Abs(g, a)
	}

	u, v := mpi.New(), mpi.New()
	if err := mpi.Abs(u, a); err != nil {
		return err
	}
	if err := mpi.Abs(v, b); err != nil {
		return err
	}

	k := u.Lsb()
	if lv := v.Lsb(); lv < k {
		k = lv
	}
	if err := mpi.ShiftRight(u, k); err != nil {
		return err
	}
	if err := mpi.ShiftRight(v, k); err != nil {
		return err
	}
	if err := mpi.ShiftRight(u, u.Lsb()); err != nil {
		return err
	}
	if err := mpi.ShiftRight(v, v.Lsb()); err != nil {
		return err
	}

	for !u.IsZero() {
		if mpi.CmpAbs(u, v) < 0 {
			mpi.Swap(u, v)
		}
		if err := mpi.Sub(u, u, v); err != nil {
			return err
		}
		if !u.IsZero() {
			if err := mpi.ShiftRight(u, u.Lsb()); err != nil {
				return err
			}
		}
	}

	if err := g.CopyFrom(v); err != nil {
		return err
	}
	return mpi.ShiftLeft(g, k)
}
