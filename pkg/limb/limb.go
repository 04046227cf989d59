// Package limb implements the single-limb multiply-accumulate primitive
// that every multi-precision routine in pkg/mpi, pkg/modular and
// pkg/primality is built on top of.
package limb

import "math/bits"

// Word is the limb width used throughout the MPI core: a 64-bit unsigned
// word with a native 128-bit double-width product via math/bits.
type Word = uint64

// WordBits is the number of bits in a Word.
const WordBits = 64

// MulAddCarry computes s + a*b + c in a 128-bit accumulator and returns the
// low and high Word of the result. This is the muladdc primitive: every
// schoolbook multiply, Montgomery CIOS step and Knuth-D quotient estimate
// reduces to a sequence of these.
func MulAddCarry(s, a, b, c Word) (lo, hi Word) {
	hi, lo = bits.Mul64(a, b)
	var carry0, carry1 uint64
	lo, carry0 = bits.Add64(lo, s, 0)
	lo, carry1 = bits.Add64(lo, c, 0)
	hi += carry0 + carry1
	return lo, hi
}

// AddCarry adds a, b and an incoming carry bit, returning the sum and the
// outgoing carry bit (0 or 1).
func AddCarry(a, b, carryIn Word) (sum, carryOut Word) {
	sum, c := bits.Add64(a, b, carryIn)
	return sum, c
}

// SubBorrow subtracts b and an incoming borrow from a, returning the
// difference and the outgoing borrow bit (0 or 1).
func SubBorrow(a, b, borrowIn Word) (diff, borrowOut Word) {
	diff, bo := bits.Sub64(a, b, borrowIn)
	return diff, bo
}
