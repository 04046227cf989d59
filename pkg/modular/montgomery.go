// Package modular implements the Montgomery-form modular core: modular
// inverse via the division-based extended Euclidean algorithm (not the
// extended binary GCD), and modular exponentiation via
// sliding-window exponent scanning over Montgomery multiplication. It is
// written entirely in terms of pkg/mpi and pkg/limb and never touches limb
// storage except through limb.MulAddCarry.
package modular

import (
	"github.com/oisee/mpi/pkg/limb"
	"github.com/oisee/mpi/pkg/mpi"
)

// RRCache holds R^2 mod n from a prior ExpMod call so repeated calls against
// the same modulus can skip recomputing it.
// A cache is only valid for the exact n it was computed against; passing it
// to ExpMod with a different n silently recomputes and overwrites it.
type RRCache struct {
	rr    []limb.Word
	n     []limb.Word // snapshot of the modulus limbs this cache was built for
	valid bool
}

// newtonInverse computes -n0^-1 mod 2^64 via five Newton iterations over
// the limb ring: x <- x*(2 - n0*x), starting from x = n0, then negated.
// The start value is correct to 3 low bits for any odd n0 and each
// iteration doubles that, so five iterations reach 96 bits, past the 64
// needed.
func newtonInverse(n0 limb.Word) limb.Word {
	x := n0
	for i := 0; i < 5; i++ {
		x = x * (2 - n0*x)
	}
	return -x
}

// montgomerySetup extracts n's limbs (padded/trimmed to exactly k words,
// k = number of limbs n occupies) and computes mm = -n[0]^-1 mod 2^64.
func montgomerySetup(n *mpi.Int) (nWords []limb.Word, mm limb.Word, k int) {
	k = limbCount(n)
	nWords = exportWords(n, k)
	mm = newtonInverse(nWords[0])
	return nWords, mm, k
}

// limbCount returns the number of 64-bit limbs x currently occupies
// (ceil(Msb(x)/64), at least 1).
func limbCount(x *mpi.Int) int {
	m := x.Msb()
	n := (m + 63) / 64
	if n == 0 {
		n = 1
	}
	return n
}

// exportWords returns exactly k little-endian limbs of |x|'s magnitude,
// zero-padded if x occupies fewer than k limbs.
func exportWords(x *mpi.Int, k int) []limb.Word {
	buf := make([]byte, k*8)
	// x.SizeBytes() <= k*8 always holds since k = ceil(Msb/64) >= ceil(bytes/8).
	n, err := x.WriteBinary(buf)
	if err != nil {
		// buf is sized from k = ceil(Msb/64)*64 bits, which always has room
		// for SizeBytes() = ceil(Msb/8) bytes; this path is unreachable.
		panic(err)
	}
	_ = n
	out := make([]limb.Word, k)
	for i := 0; i < k; i++ {
		// buf is big-endian; word i (little-endian) occupies bytes
		// [len(buf)-8*(i+1), len(buf)-8*i).
		hi := len(buf) - 8*i
		lo := hi - 8
		var w limb.Word
		for b := lo; b < hi; b++ {
			w = (w << 8) | limb.Word(buf[b])
		}
		out[i] = w
	}
	return out
}

// importWords sets x to the magnitude represented by the little-endian
// limb slice w, sign +1.
func importWords(x *mpi.Int, w []limb.Word) error {
	buf := make([]byte, len(w)*8)
	for i, word := range w {
		hi := len(buf) - 8*i
		for b := 0; b < 8; b++ {
			buf[hi-1-b] = byte(word >> uint(8*b))
		}
	}
	return x.ReadBinary(buf)
}

// montMul computes a*b*R^-1 mod n using the interleaved CIOS form, where
// a, b and n are each exactly k little-endian limbs (zero-padded) and mm is
// -n[0]^-1 mod 2^64. The result is exactly k limbs.
func montMul(a, b, n []limb.Word, mm limb.Word, k int) []limb.Word {
	t := make([]limb.Word, k+2)

	for i := 0; i < k; i++ {
		ai := limb.Word(0)
		if i < len(a) {
			ai = a[i]
		}

		var c limb.Word
		for j := 0; j < k; j++ {
			var hi limb.Word
			t[j], hi = limb.MulAddCarry(t[j], ai, b[j], c)
			c = hi
		}
		var carry limb.Word
		t[k], carry = limb.AddCarry(t[k], c, 0)
		t[k+1] += carry

		u := t[0] * mm

		c = 0
		for j := 0; j < k; j++ {
			var hi limb.Word
			t[j], hi = limb.MulAddCarry(t[j], u, n[j], c)
			c = hi
		}
		t[k], carry = limb.AddCarry(t[k], c, 0)
		t[k+1] += carry

		copy(t[0:k+1], t[1:k+2])
		t[k+1] = 0
	}

	// The reduced value is below 2n, so at most one conditional subtraction
	// is needed. 2n can spill one limb past k, so the spill limb t[k] takes
	// part in both the comparison and the borrow.
	if t[k] != 0 || cmpWords(t[:k], n) >= 0 {
		var borrow limb.Word
		for i := 0; i < k; i++ {
			t[i], borrow = limb.SubBorrow(t[i], n[i], borrow)
		}
		t[k] -= borrow
	}
	return append([]limb.Word(nil), t[:k]...)
}

// zeroWords overwrites a scratch word slice that held secret-derived
// material, the slice-level counterpart of (*mpi.Int).Zeroize.
func zeroWords(w []limb.Word) {
	for i := range w {
		w[i] = 0
	}
}

func cmpWords(a, b []limb.Word) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
