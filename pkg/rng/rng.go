// Package rng defines the RNG capability the MPI core's probabilistic
// operations (Miller-Rabin witness selection, prime generation) are built
// against, plus a math/rand/v2-backed Source for tests and tooling.
//
// Source deliberately returns an error from Fill: a caller backing it with
// an OS entropy pool can fail (EOF, permission, file descriptor
// exhaustion), and swallowing that is worse than one extra error check per
// call.
package rng

import (
	"context"
	"math/rand/v2"

	"github.com/oisee/mpi/pkg/mpi"
)

// Source is the RNG capability: fill buf with random bytes, or fail.
type Source interface {
	Fill(ctx context.Context, buf []byte) error
}

// FillRandom fills x with nbytes random bytes from src and imports them as
// a non-negative magnitude via ReadBinary.
func FillRandom(ctx context.Context, x *mpi.Int, nbytes int, src Source) error {
	buf := make([]byte, nbytes)
	if err := src.Fill(ctx, buf); err != nil {
		return err
	}
	return x.ReadBinary(buf)
}

// MathRandSource is a Source backed by math/rand/v2 over a PCG state. It
// is meant for tests and the cmd/mpitool driver, where deterministic
// output per seed is a feature; production callers handling real key
// material should supply a crypto/rand-backed Source instead.
type MathRandSource struct {
	r *rand.Rand
}

// NewMathRandSource returns a MathRandSource seeded deterministically from
// seed1/seed2 (matching rand.NewPCG's two-word seed).
func NewMathRandSource(seed1, seed2 uint64) *MathRandSource {
	return &MathRandSource{r: rand.New(rand.NewPCG(seed1, seed2))}
}

// Fill implements Source.
func (m *MathRandSource) Fill(ctx context.Context, buf []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	for i := range buf {
		buf[i] = byte(m.r.IntN(256))
	}
	return nil
}
