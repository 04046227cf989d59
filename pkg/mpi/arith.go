package mpi

import "github.com/oisee/mpi/pkg/limb"

// AddAbs sets x = |a| + |b| via schoolbook ripple-carry addition. sign(x)
// is forced to +1. x may grow by one limb beyond max(|a|,|b|) to hold the
// final carry. a and b may alias x.
func AddAbs(x, a, b *Int) error {
	if len(a.limbs) < len(b.limbs) {
		a, b = b, a
	}
	la := a.limbs
	lb := b.limbs
	// Read operands into locals before any resize touches x's storage, so
	// add_abs(x, x, y) and friends are safe even when x aliases a or b.
	aCopy := append([]Word(nil), la...)
	bCopy := append([]Word(nil), lb...)

	n := len(aCopy)
	if err := x.resize(n + 1); err != nil {
		return err
	}
	var carry Word
	for i := 0; i < n; i++ {
		var bi Word
		if i < len(bCopy) {
			bi = bCopy[i]
		}
		x.limbs[i], carry = limb.AddCarry(aCopy[i], bi, carry)
	}
	x.limbs[n] = carry
	x.sign = 1
	x.trim()
	return nil
}

// SubAbs sets x = |a| - |b|. Fails with ErrNegative when |a| < |b|.
// sign(x) is forced to +1 on success.
func SubAbs(x, a, b *Int) error {
	if CmpAbs(a, b) < 0 {
		return ErrNegative
	}
	aCopy := append([]Word(nil), a.limbs...)
	bCopy := append([]Word(nil), b.limbs...)

	n := len(aCopy)
	if err := x.resize(n); err != nil {
		return err
	}
	var borrow Word
	for i := 0; i < n; i++ {
		var bi Word
		if i < len(bCopy) {
			bi = bCopy[i]
		}
		x.limbs[i], borrow = limb.SubBorrow(aCopy[i], bi, borrow)
	}
	x.sign = 1
	x.trim()
	return nil
}

// Add sets x = a + b, signed, dispatching to AddAbs/SubAbs by comparing
// magnitudes and signs. A zero result forces sign +1.
func Add(x, a, b *Int) error {
	// Read the signs first: x may alias a or b, and AddAbs/SubAbs overwrite
	// x's sign.
	aSign, bSign := a.sign, b.sign
	if aSign == bSign {
		if err := AddAbs(x, a, b); err != nil {
			return err
		}
		x.sign = aSign
		x.trim()
		return nil
	}
	// Opposite signs: x = sign-of-larger-magnitude * (|a| - |b|) or (|b| - |a|).
	switch CmpAbs(a, b) {
	case 0:
		x.limbs = x.limbs[:0]
		x.sign = 1
		return nil
	case 1:
		if err := SubAbs(x, a, b); err != nil {
			return err
		}
		x.sign = aSign
	default:
		if err := SubAbs(x, b, a); err != nil {
			return err
		}
		x.sign = bSign
	}
	x.trim()
	return nil
}

// Sub sets x = a - b, signed.
func Sub(x, a, b *Int) error {
	var negB Int
	if err := negB.CopyFrom(b); err != nil {
		return err
	}
	if !negB.IsZero() {
		negB.sign = -negB.sign
	}
	return Add(x, a, &negB)
}

// Abs sets x = |a|.
func Abs(x, a *Int) error {
	if err := x.CopyFrom(a); err != nil {
		return err
	}
	if !x.IsZero() {
		x.sign = 1
	}
	return nil
}

// AddInt64 sets x = a + z.
func AddInt64(x, a *Int, z int64) error {
	var t Int
	t.SetInt64(z)
	return Add(x, a, &t)
}

// SubInt64 sets x = a - z.
func SubInt64(x, a *Int, z int64) error {
	var t Int
	t.SetInt64(z)
	return Sub(x, a, &t)
}
