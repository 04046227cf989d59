package mpi

import "github.com/oisee/mpi/pkg/limb"

// ShiftLeft shifts the magnitude of x left by k bits in place (logical
// shift; sign is unchanged). Fails with ErrAlloc if the result would need
// more than MaxLimbs limbs.
func ShiftLeft(x *Int, k int) error {
	if k == 0 || x.IsZero() {
		return nil
	}
	limbShift := k / limb.WordBits
	bitShift := uint(k % limb.WordBits)

	oldLen := len(x.limbs)
	newLen := oldLen + limbShift + 1
	if newLen > MaxLimbs {
		return ErrAlloc
	}
	src := append([]Word(nil), x.limbs...)
	if err := x.resize(newLen); err != nil {
		return err
	}
	for i := range x.limbs {
		x.limbs[i] = 0
	}
	if bitShift == 0 {
		copy(x.limbs[limbShift:], src)
	} else {
		var carry Word
		for i, w := range src {
			x.limbs[i+limbShift] = (w << bitShift) | carry
			carry = w >> (limb.WordBits - bitShift)
		}
		x.limbs[limbShift+len(src)] = carry
	}
	x.trim()
	return nil
}

// ShiftRight shifts the magnitude of x right by k bits in place (logical
// shift, bits shifted past the LSB are discarded).
func ShiftRight(x *Int, k int) error {
	if k == 0 || x.IsZero() {
		return nil
	}
	limbShift := k / limb.WordBits
	bitShift := uint(k % limb.WordBits)

	if limbShift >= len(x.limbs) {
		x.limbs = x.limbs[:0]
		x.sign = 1
		return nil
	}
	src := append([]Word(nil), x.limbs[limbShift:]...)
	if bitShift == 0 {
		x.limbs = x.limbs[:len(src)]
		copy(x.limbs, src)
	} else {
		for i := range src {
			var hi Word
			if i+1 < len(src) {
				hi = src[i+1]
			}
			src[i] = (src[i] >> bitShift) | (hi << (limb.WordBits - bitShift))
		}
		x.limbs = x.limbs[:len(src)]
		copy(x.limbs, src)
	}
	x.trim()
	return nil
}

// SetBit sets bit i of x's magnitude to 1, leaving every other bit
// unchanged, growing x if necessary. Used by candidate generation to force
// top/parity bits on a freshly drawn random value without disturbing bits
// the draw already set.
func SetBit(x *Int, i int) error {
	limbIdx := i / limb.WordBits
	bitIdx := uint(i % limb.WordBits)
	if limbIdx >= len(x.limbs) {
		if err := x.resize(limbIdx + 1); err != nil {
			return err
		}
	}
	x.limbs[limbIdx] |= Word(1) << bitIdx
	x.trim()
	return nil
}

// MaskBits clears every bit of x's magnitude at index nbits and above,
// leaving the low nbits bits untouched. Used to bring a byte-aligned random
// draw (whose top byte may carry a few bits beyond the requested width)
// down to exactly nbits of randomness before forcing marker bits.
func MaskBits(x *Int, nbits int) error {
	if nbits <= 0 {
		x.limbs = x.limbs[:0]
		x.sign = 1
		return nil
	}
	fullLimbs := nbits / limb.WordBits
	rem := uint(nbits % limb.WordBits)
	if fullLimbs >= len(x.limbs) {
		return nil
	}
	if rem != 0 {
		x.limbs[fullLimbs] &= (Word(1) << rem) - 1
		fullLimbs++
	}
	x.limbs = x.limbs[:fullLimbs]
	x.trim()
	return nil
}
