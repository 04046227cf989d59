package mpi

// CmpAbs compares |a| and |b|, returning -1, 0 or +1.
func CmpAbs(a, b *Int) int {
	if len(a.limbs) != len(b.limbs) {
		if len(a.limbs) < len(b.limbs) {
			return -1
		}
		return 1
	}
	for i := len(a.limbs) - 1; i >= 0; i-- {
		if a.limbs[i] != b.limbs[i] {
			if a.limbs[i] < b.limbs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp is the signed comparison of a and b. Zero compares equal regardless
// of its sign field.
func Cmp(a, b *Int) int {
	az, bz := a.IsZero(), b.IsZero()
	switch {
	case az && bz:
		return 0
	case az:
		return -b.sign
	case bz:
		return a.sign
	}
	if a.sign != b.sign {
		return a.sign
	}
	return a.sign * CmpAbs(a, b)
}

// CmpInt64 compares a against a small signed integer.
func CmpInt64(a *Int, z int64) int {
	var t Int
	t.SetInt64(z)
	return Cmp(a, &t)
}
