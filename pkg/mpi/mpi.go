// Package mpi implements arbitrary-precision signed integer arithmetic:
// the representation, growth/copy/swap plumbing, schoolbook add/sub/mul/div,
// bit operations and comparisons, and radix/binary I/O that the higher
// layers (pkg/modular, pkg/primality) build on.
//
// An Int's zero value is a valid zero integer (no limbs; its sign field is
// 0 until an operation writes it, and IsZero, Sign and Cmp treat it as
// zero); there is no separate constructor required, though New, which sets
// sign +1, is provided for call sites that want one.
package mpi

import (
	"math/bits"

	"github.com/oisee/mpi/pkg/limb"
)

// Word is the limb type: a 64-bit unsigned word, little-endian limb order
// (index 0 is least significant).
type Word = limb.Word

// MaxLimbs is the hard ceiling on the number of limbs an Int may hold,
// rejecting pathological inputs. It is a package variable rather than a
// constant so a build embedding this library on small devices can lower it;
// nothing in this package depends on it being fixed.
var MaxLimbs = 10000

// Int is a multi-precision signed integer. The zero value represents 0.
type Int struct {
	sign  int    // +1 or -1; 0 only in a zero value no operation has written
	limbs []Word // little-endian; trimmed, no nonzero limb beyond len(limbs)
}

// New returns a new zero Int.
func New() *Int {
	return &Int{sign: 1}
}

// trim drops trailing (most-significant) zero limbs and normalizes the
// sign of zero to +1. Every mutating operation calls this before returning.
func (x *Int) trim() {
	n := len(x.limbs)
	for n > 0 && x.limbs[n-1] == 0 {
		n--
	}
	x.limbs = x.limbs[:n]
	if n == 0 {
		x.sign = 1
	}
}

// Grow ensures x has capacity for at least n limbs, preserving its value.
// Newly acquired limbs are zeroed. Fails with ErrAlloc if n > MaxLimbs.
func (x *Int) Grow(n int) error {
	if n > MaxLimbs {
		return ErrAlloc
	}
	if cap(x.limbs) >= n {
		return nil
	}
	fresh := make([]Word, len(x.limbs), n)
	copy(fresh, x.limbs)
	x.limbs = fresh
	return nil
}

// resize grows (if needed) and sets the logical length to n, zero-filling
// any newly exposed limbs. It does not trim.
func (x *Int) resize(n int) error {
	if n > MaxLimbs {
		return ErrAlloc
	}
	if cap(x.limbs) < n {
		if err := x.Grow(n); err != nil {
			return err
		}
	}
	old := len(x.limbs)
	x.limbs = x.limbs[:n]
	for i := old; i < n; i++ {
		x.limbs[i] = 0
	}
	return nil
}

// CopyFrom sets x = src. A no-op if x and src are the same Int.
func (x *Int) CopyFrom(src *Int) error {
	if x == src {
		return nil
	}
	if err := x.resize(len(src.limbs)); err != nil {
		return err
	}
	copy(x.limbs, src.limbs)
	x.sign = src.sign
	x.trim()
	return nil
}

// Swap exchanges the contents of a and b. Infallible, no allocation.
func Swap(a, b *Int) {
	a.sign, b.sign = b.sign, a.sign
	a.limbs, b.limbs = b.limbs, a.limbs
}

// SetInt64 sets x to a small signed integer, shrinking its capacity to at
// most one limb.
func (x *Int) SetInt64(z int64) *Int {
	sign := 1
	u := uint64(z)
	if z < 0 {
		sign = -1
		u = uint64(-z)
	}
	if cap(x.limbs) > 1 {
		x.limbs = x.limbs[:1:1]
	}
	if u == 0 {
		x.limbs = x.limbs[:0]
		x.sign = 1
		return x
	}
	if cap(x.limbs) < 1 {
		x.limbs = make([]Word, 1)
	} else {
		x.limbs = x.limbs[:1]
	}
	x.limbs[0] = Word(u)
	x.sign = sign
	return x
}

// IsZero reports whether x represents the value 0.
func (x *Int) IsZero() bool {
	return len(x.limbs) == 0
}

// Sign returns -1, 0 or +1 according to the sign of x.
func (x *Int) Sign() int {
	if x.IsZero() {
		return 0
	}
	return x.sign
}

// Lsb returns the index of the lowest set bit of |x|, or 0 if x is zero.
func (x *Int) Lsb() int {
	for i, w := range x.limbs {
		if w != 0 {
			return i*limb.WordBits + bits.TrailingZeros64(w)
		}
	}
	return 0
}

// Msb returns 1 + the index of the highest set bit of |x| (i.e. the bit
// length), or 0 if x is zero.
func (x *Int) Msb() int {
	n := len(x.limbs)
	if n == 0 {
		return 0
	}
	top := x.limbs[n-1]
	return (n-1)*limb.WordBits + bits.Len64(top)
}

// SizeBytes returns ceil(Msb(x)/8), the number of bytes needed to hold the
// magnitude of x in big-endian binary form.
func (x *Int) SizeBytes() int {
	return (x.Msb() + 7) / 8
}

// String renders x in base 10, mainly for debugging and test failure
// messages. It ignores the error WriteString can only return for an
// out-of-range radix, which 10 never triggers.
func (x *Int) String() string {
	s, _ := x.WriteString(10)
	return s
}

// Zeroize overwrites the limb storage of x with zero. Every Int that
// touched secret material (modular exponent, RSA factor, prime candidate,
// scratch inside a compound operation) must be zeroized before it is
// dropped; the storage may later be reused for other key material.
func (x *Int) Zeroize() {
	for i := range x.limbs {
		x.limbs[i] = 0
	}
	x.limbs = x.limbs[:0]
	x.sign = 1
}
