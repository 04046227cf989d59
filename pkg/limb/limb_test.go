package limb

import "testing"

func TestMulAddCarry(t *testing.T) {
	cases := []struct {
		s, a, b, c Word
		wantLo     Word
		wantHi     Word
	}{
		{0, 0, 0, 0, 0, 0},
		{0, 1, 1, 0, 1, 0},
		{0, ^Word(0), ^Word(0), 0, 1, ^Word(0) - 1},
		{5, 2, 3, 1, 12, 0},
		{^Word(0), ^Word(0), 1, 0, ^Word(0) - 1, 1},
	}
	for _, c := range cases {
		lo, hi := MulAddCarry(c.s, c.a, c.b, c.c)
		if lo != c.wantLo || hi != c.wantHi {
			t.Errorf("MulAddCarry(%d,%d,%d,%d) = (%d,%d), want (%d,%d)",
				c.s, c.a, c.b, c.c, lo, hi, c.wantLo, c.wantHi)
		}
	}
}

func TestAddCarrySubBorrow(t *testing.T) {
	sum, carry := AddCarry(^Word(0), 1, 0)
	if sum != 0 || carry != 1 {
		t.Errorf("AddCarry overflow: got (%d,%d), want (0,1)", sum, carry)
	}
	diff, borrow := SubBorrow(0, 1, 0)
	if diff != ^Word(0) || borrow != 1 {
		t.Errorf("SubBorrow underflow: got (%d,%d), want (%d,1)", diff, borrow, ^Word(0))
	}
}
