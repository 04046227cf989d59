package modular

import "github.com/oisee/mpi/pkg/mpi"

// InvMod sets x = a^-1 mod n. Fails with ErrBadInput when n <= 1, and with
// ErrNotAcceptable when gcd(a, n) != 1.
//
// Implemented as the extended Euclidean algorithm over pkg/mpi's DivMod,
// maintaining the Bezout identity u1*a + u2*n = gcd(a,n) until the
// remainder chain terminates.
func InvMod(x, a, n *mpi.Int) error {
	if mpi.CmpInt64(n, 1) <= 0 {
		return mpi.ErrBadInput
	}

	// All scratch below has held values derived from a (possibly a secret
	// key component); wipe every one of them on every exit path.
	aMod := mpi.New()
	oldR, r := mpi.New(), mpi.New()
	oldS, s := mpi.New(), mpi.New()
	q, t := mpi.New(), mpi.New()
	defer aMod.Zeroize()
	defer oldR.Zeroize()
	defer r.Zeroize()
	defer oldS.Zeroize()
	defer s.Zeroize()
	defer q.Zeroize()
	defer t.Zeroize()

	if err := mpi.Mod(aMod, a, n); err != nil {
		return err
	}
	if err := oldR.CopyFrom(aMod); err != nil {
		return err
	}
	if err := r.CopyFrom(n); err != nil {
		return err
	}
	oldS.SetInt64(1)
	s.SetInt64(0)

	for !r.IsZero() {
		// (oldR, r) <- (r, oldR mod r), rotating storage through t so no
		// iteration allocates a fresh Int.
		if err := mpi.DivMod(q, t, oldR, r); err != nil {
			return err
		}
		mpi.Swap(oldR, r)
		mpi.Swap(r, t)

		// (oldS, s) <- (s, oldS - q*s).
		if err := mpi.Mul(t, q, s); err != nil {
			return err
		}
		if err := mpi.Sub(t, oldS, t); err != nil {
			return err
		}
		mpi.Swap(oldS, s)
		mpi.Swap(s, t)
	}

	if mpi.CmpInt64(oldR, 1) != 0 {
		return mpi.ErrNotAcceptable
	}
	return mpi.Mod(x, oldS, n)
}
