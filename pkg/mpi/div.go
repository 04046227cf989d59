package mpi

import (
	"math/bits"

	"github.com/oisee/mpi/pkg/limb"
)

// DivMod computes a = q*b + r with 0 <= |r| < |b| and sign(r) = sign(a).
// Either q or r may be nil to omit that output. Fails with ErrDivByZero if
// b is zero. Uses Knuth Algorithm D: normalize divisor so its top limb's
// high bit is set, shift the dividend the same amount, estimate each
// quotient limb from the top two dividend limbs over the top divisor limb,
// then correct the estimate by at most two subtractions.
func DivMod(q, r, a, b *Int) error {
	if b.IsZero() {
		return ErrDivByZero
	}
	if a.IsZero() {
		if q != nil {
			q.limbs = q.limbs[:0]
			q.sign = 1
		}
		if r != nil {
			r.limbs = r.limbs[:0]
			r.sign = 1
		}
		return nil
	}

	aAbs := append([]Word(nil), a.limbs...)
	bAbs := append([]Word(nil), b.limbs...)

	var qAbs, rAbs []Word
	if len(bAbs) == 1 {
		qAbs, rAbs = divModSmall(aAbs, bAbs[0])
	} else {
		var err error
		qAbs, rAbs, err = divModKnuth(aAbs, bAbs)
		if err != nil {
			return err
		}
	}

	qSign := a.sign * b.sign
	if q != nil {
		if err := q.resize(len(qAbs)); err != nil {
			return err
		}
		copy(q.limbs, qAbs)
		q.sign = qSign
		q.trim()
	}
	if r != nil {
		if err := r.resize(len(rAbs)); err != nil {
			return err
		}
		copy(r.limbs, rAbs)
		r.sign = a.sign
		r.trim()
	}
	return nil
}

// divModSmall divides magnitude a by a single-limb divisor d.
func divModSmall(a []Word, d Word) (q []Word, r []Word) {
	q = make([]Word, len(a))
	var rem Word
	for i := len(a) - 1; i >= 0; i-- {
		q[i], rem = bits.Div64(rem, a[i], d)
	}
	return q, []Word{rem}
}

// divModKnuth implements Knuth's Algorithm D for a multi-limb divisor.
// a and b are trimmed, nonzero magnitude slices with len(b) >= 2.
func divModKnuth(a, b []Word) (q []Word, r []Word, err error) {
	m := len(b)
	n := len(a)
	if n < m {
		return []Word{}, append([]Word(nil), a...), nil
	}

	shift := bits.LeadingZeros64(b[m-1])

	vn := make([]Word, m)
	shlWords(vn, b, shift)

	un := make([]Word, n+1)
	shlWordsExtended(un, a, shift)

	qn := make([]Word, n-m+1)

	for j := n - m; j >= 0; j-- {
		var qhat, rhat Word
		if un[j+m] >= vn[m-1] {
			qhat = ^Word(0)
		} else {
			qhat, rhat = bits.Div64(un[j+m], un[j+m-1], vn[m-1])
			// Refine using the second-most-significant divisor limb.
			for m >= 2 && greater128(qhat, vn[m-2], rhat, un[j+m-2]) {
				qhat--
				rhatNew, carry := bits.Add64(rhat, vn[m-1], 0)
				rhat = rhatNew
				if carry != 0 {
					break
				}
			}
		}

		borrow := mulSub(un[j:j+m+1], vn, qhat)
		if borrow != 0 {
			qhat--
			addBack(un[j : j+m+1], vn)
		}
		qn[j] = qhat
	}

	rem := shrWords(un[:m], shift)
	return qn, rem, nil
}

// greater128 reports whether qhat*vLow > rhat*2^64 + uLow (both sides
// treated as 128-bit values), used to refine the quotient-digit estimate.
func greater128(qhat, vLow, rhat, uLow Word) bool {
	hi, lo := bits.Mul64(qhat, vLow)
	if hi != rhat {
		return hi > rhat
	}
	return lo > uLow
}

// mulSub computes u -= v*qhat over the limbs u[0:len(v)+1], returning the
// final borrow (0 or 1).
func mulSub(u, v []Word, qhat Word) Word {
	var carry, borrow Word
	for i, vi := range v {
		var hi Word
		var prod Word
		prod, hi = limb.MulAddCarry(0, vi, qhat, carry)
		carry = hi
		var b Word
		u[i], b = limb.SubBorrow(u[i], prod, borrow)
		borrow = b
	}
	last, b := limb.SubBorrow(u[len(v)], carry, borrow)
	u[len(v)] = last
	return b
}

// addBack adds v back into u[0:len(v)+1] (undoing one subtraction too many
// when mulSub's estimate was off by one). The final carry out of the top
// limb cancels the borrow mulSub reported and is discarded.
func addBack(u, v []Word) {
	var carry Word
	for i, vi := range v {
		u[i], carry = limb.AddCarry(u[i], vi, carry)
	}
	u[len(v)], _ = limb.AddCarry(u[len(v)], 0, carry)
}

// shlWords left-shifts src by bits (0..63) into dst, where len(dst) == len(src).
func shlWords(dst, src []Word, shiftBits int) {
	if shiftBits == 0 {
		copy(dst, src)
		return
	}
	var carry Word
	for i, w := range src {
		dst[i] = (w << uint(shiftBits)) | carry
		carry = w >> uint(limb.WordBits-shiftBits)
	}
}

// shlWordsExtended left-shifts src by shiftBits into dst, where
// len(dst) == len(src)+1, capturing the overflow limb.
func shlWordsExtended(dst, src []Word, shiftBits int) {
	if shiftBits == 0 {
		copy(dst, src)
		dst[len(src)] = 0
		return
	}
	var carry Word
	for i, w := range src {
		dst[i] = (w << uint(shiftBits)) | carry
		carry = w >> uint(limb.WordBits-shiftBits)
	}
	dst[len(src)] = carry
}

// shrWords right-shifts src (in place conceptually) by shiftBits and
// returns a trimmed copy.
func shrWords(src []Word, shiftBits int) []Word {
	out := make([]Word, len(src))
	if shiftBits == 0 {
		copy(out, src)
	} else {
		for i := range src {
			var hi Word
			if i+1 < len(src) {
				hi = src[i+1]
			}
			out[i] = (src[i] >> uint(shiftBits)) | (hi << uint(limb.WordBits-shiftBits))
		}
	}
	n := len(out)
	for n > 0 && out[n-1] == 0 {
		n--
	}
	return out[:n]
}

// Mod sets r = a mod b, adjusted into [0, |b|) regardless of the sign of a.
// Fails with ErrDivByZero if b is zero, ErrNegative if b is negative.
func Mod(r, a, b *Int) error {
	if b.IsZero() {
		return ErrDivByZero
	}
	if b.sign < 0 {
		return ErrNegative
	}
	if err := DivMod(nil, r, a, b); err != nil {
		return err
	}
	if r.sign < 0 && !r.IsZero() {
		if err := Add(r, r, b); err != nil {
			return err
		}
	}
	r.sign = 1
	return nil
}

// ModInt64 computes a mod z for a single-limb, nonnegative z, using the
// fast iterate-from-the-top remainder rather than a full DivMod. Fails with
// ErrDivByZero if z is zero, ErrNegative if z is negative.
func ModInt64(a *Int, z int64) (int64, error) {
	if z == 0 {
		return 0, ErrDivByZero
	}
	if z < 0 {
		return 0, ErrNegative
	}
	d := Word(z)
	var rem Word
	for i := len(a.limbs) - 1; i >= 0; i-- {
		_, rem = bits.Div64(rem, a.limbs[i], d)
	}
	if a.sign < 0 && rem != 0 {
		rem = d - rem
	}
	return int64(rem), nil
}
