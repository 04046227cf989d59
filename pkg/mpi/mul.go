package mpi

import "github.com/oisee/mpi/pkg/limb"

// Mul sets x = a * b via schoolbook multiplication built on
// limb.MulAddCarry. sign(x) = sign(a)*sign(b); a zero result forces +1.
func Mul(x, a, b *Int) error {
	if a.IsZero() || b.IsZero() {
		x.limbs = x.limbs[:0]
		x.sign = 1
		return nil
	}
	aCopy := append([]Word(nil), a.limbs...)
	bCopy := append([]Word(nil), b.limbs...)
	sign := a.sign * b.sign

	n := len(aCopy) + len(bCopy)
	if n > MaxLimbs {
		return ErrAlloc
	}
	out := make([]Word, n)
	for i, ai := range aCopy {
		if ai == 0 {
			continue
		}
		var carry Word
		for j, bj := range bCopy {
			var hi Word
			out[i+j], hi = limb.MulAddCarry(out[i+j], ai, bj, carry)
			carry = hi
		}
		out[i+len(bCopy)] += carry
	}
	if err := x.resize(n); err != nil {
		return err
	}
	copy(x.limbs, out)
	x.sign = sign
	x.trim()
	return nil
}

// MulInt64 sets x = a * z.
func MulInt64(x, a *Int, z int64) error {
	var t Int
	t.SetInt64(z)
	return Mul(x, a, &t)
}
