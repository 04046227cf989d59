package primality

import (
	"context"

	"github.com/golang/glog"

	"github.com/oisee/mpi/pkg/mpi"
	"github.com/oisee/mpi/pkg/rng"
)

// GenPrime draws a random nbits-bit prime from src. When dhFlag is set the
// candidate is additionally forced toward x = 3 (mod 4) and the search
// requires (x-1)/2 to also be prime, producing a safe prime suitable as a
// Diffie-Hellman group modulus.
//
// Fails with mpi.ErrBadInput for nbits < 3, or propagates whatever error
// the underlying RNG or arithmetic raised.
func GenPrime(ctx context.Context, nbits int, dhFlag bool, src rng.Source) (*mpi.Int, error) {
	if nbits < 3 {
		return nil, mpi.ErrBadInput
	}

	nbytes := (nbits + 7) / 8
	x := mpi.New()
	found := false
	defer func() {
		// The candidate is key material; don't leave it behind on failure.
		if !found {
			x.Zeroize()
		}
	}()
	half := mpi.New()
	defer half.Zeroize()

	if err := rng.FillRandom(ctx, x, nbytes, src); err != nil {
		return nil, err
	}
	if err := mpi.MaskBits(x, nbits); err != nil {
		return nil, err
	}
	if err := forceCandidateBits(x, nbits, dhFlag); err != nil {
		return nil, err
	}

	step := int64(2)
	if dhFlag {
		step = 4
	}

	for attempt := 1; ; attempt++ {
		if err := CheckSmallFactors(x); err != nil {
			if err != mpi.ErrNotAcceptable {
				return nil, err
			}
			glog.V(2).Infof("primality: candidate %d has a small factor", attempt)
			if err := mpi.AddInt64(x, x, step); err != nil {
				return nil, err
			}
			continue
		}

		if dhFlag {
			r3, err := mpi.ModInt64(x, 3)
			if err != nil {
				return nil, err
			}
			if r3 == 1 {
				// x = 1 (mod 3) makes (x-1)/2 divisible by 3; skip before
				// paying for any Miller-Rabin round.
				glog.V(2).Infof("primality: candidate %d = 1 (mod 3), skipped", attempt)
				if err := mpi.AddInt64(x, x, step); err != nil {
					return nil, err
				}
				continue
			}

			if err := mpi.SubInt64(half, x, 1); err != nil {
				return nil, err
			}
			if err := mpi.ShiftRight(half, 1); err != nil {
				return nil, err
			}
			if err := IsPrime(ctx, half, src); err != nil {
				if err == mpi.ErrNotAcceptable {
					glog.V(1).Infof("primality: candidate %d rejected, (x-1)/2 composite", attempt)
					if err := mpi.AddInt64(x, x, step); err != nil {
						return nil, err
					}
					continue
				}
				return nil, err
			}
		}

		if err := IsPrime(ctx, x, src); err != nil {
			if err == mpi.ErrNotAcceptable {
				glog.V(1).Infof("primality: candidate %d rejected by Miller-Rabin", attempt)
				if err := mpi.AddInt64(x, x, step); err != nil {
					return nil, err
				}
				continue
			}
			return nil, err
		}

		glog.V(1).Infof("primality: %d-bit prime found after %d candidates", nbits, attempt)
		found = true
		return x, nil
	}
}

// forceCandidateBits sets the top two bits (so the product of two such
// candidates has the full expected bit length) and the low bit (oddness)
// of a freshly drawn nbits-bit candidate. With dhFlag it also sets bit 1,
// steering the candidate toward 3 (mod 4) so the (x-1)/2 search below
// preserves residue under the step-by-4 increment.
func forceCandidateBits(x *mpi.Int, nbits int, dhFlag bool) error {
	top := nbits - 1
	if err := mpi.SetBit(x, top); err != nil {
		return err
	}
	if err := mpi.SetBit(x, top-1); err != nil {
		return err
	}
	if err := mpi.SetBit(x, 0); err != nil {
		return err
	}
	if dhFlag {
		if err := mpi.SetBit(x, 1); err != nil {
			return err
		}
	}
	return nil
}
