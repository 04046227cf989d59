package modular

import (
	"github.com/golang/glog"

	"github.com/oisee/mpi/pkg/limb"
	"github.com/oisee/mpi/pkg/mpi"
)

// windowWidth picks the sliding-window width for a given exponent bit
// length: wider windows amortize their precomputation cost only once the
// exponent is long enough to reuse the table many times.
func windowWidth(expBits int) int {
	switch {
	case expBits <= 17:
		return 1
	case expBits <= 49:
		return 2
	case expBits <= 115:
		return 3
	case expBits <= 275:
		return 4
	case expBits <= 670:
		return 5
	default:
		return 6
	}
}

// expBits is a read-only, most-significant-bit-first view over an
// exponent's magnitude, used so the sliding-window scan doesn't pay for a
// big-integer shift per bit.
type expBits struct {
	b []byte // big-endian magnitude, as from (*mpi.Int).WriteBinary
	n int    // bit length
}

func newExpBits(e *mpi.Int) (expBits, error) {
	n := e.Msb()
	buf := make([]byte, (n+7)/8)
	if _, err := e.WriteBinary(buf); err != nil {
		return expBits{}, err
	}
	return expBits{b: buf, n: n}, nil
}

// bit returns bit i (0 = least significant) of the exponent.
func (eb expBits) bit(i int) bool {
	if i < 0 || i >= eb.n {
		return false
	}
	byteIdx := len(eb.b) - 1 - i/8
	return eb.b[byteIdx]&(1<<uint(i%8)) != 0
}

// ExpMod computes x = a^e mod n using Montgomery reduction with
// sliding-window exponent scanning. n must be positive and odd, otherwise
// ErrBadInput. If rr is non-nil, a cached R^2 mod n is reused (and
// populated if not yet valid), so repeated calls against the same modulus
// skip recomputing it.
func ExpMod(x, a, e, n *mpi.Int, rr *RRCache) error {
	if n.Sign() <= 0 || n.Lsb() != 0 {
		return mpi.ErrBadInput
	}
	if e.Sign() < 0 {
		return mpi.ErrBadInput
	}

	nWords, mm, k := montgomerySetup(n)

	var rrWords []limb.Word
	if rr != nil && rr.valid && sameWords(rr.n, nWords) {
		rrWords = rr.rr
	} else {
		glog.V(1).Infof("modular: computing R^2 mod n for a %d-limb modulus", k)
		var err error
		rrWords, err = computeRR(nWords, k)
		if err != nil {
			return err
		}
		if rr != nil {
			rr.rr = rrWords
			rr.n = append([]limb.Word(nil), nWords...)
			rr.valid = true
		}
	}

	one := make([]limb.Word, k)
	one[0] = 1
	montOne := montMul(one, rrWords, nWords, mm, k) // Montgomery form of 1

	ebits, err := newExpBits(e)
	if err != nil {
		return err
	}
	if ebits.n == 0 {
		// a^0 = 1 for any a, including a = 0, by convention.
		x.SetInt64(1)
		return mpi.Mod(x, x, n)
	}

	// Reduce and Montgomery-encode the base: A = (a mod n) * R mod n.
	var aRed mpi.Int
	if err := mpi.Mod(&aRed, a, n); err != nil {
		return err
	}
	defer aRed.Zeroize()
	aWords := exportWords(&aRed, k)
	defer zeroWords(aWords)
	A := montMul(aWords, rrWords, nWords, mm, k)

	w := windowWidth(ebits.n)
	tableSize := 1 << (w - 1)
	// odd[i] holds A^(2i+1) in Montgomery form, for i = 0..tableSize-1.
	odd := make([][]limb.Word, tableSize)
	odd[0] = A
	if tableSize > 1 {
		aSquared := montMul(A, A, nWords, mm, k)
		for i := 1; i < tableSize; i++ {
			odd[i] = montMul(odd[i-1], aSquared, nWords, mm, k)
		}
		defer zeroWords(aSquared)
	}
	// The window table is derived from the (possibly secret) base; wipe it
	// on every exit path.
	defer func() {
		for _, entry := range odd {
			zeroWords(entry)
		}
	}()

	acc := montOne

	bit := ebits.n - 1
	for bit >= 0 {
		if !ebits.bit(bit) {
			acc = montMul(acc, acc, nWords, mm, k)
			bit--
			continue
		}
		// Collect a run of up to w bits starting at this '1', but shrink it
		// so the run's own low bit is 1 (the table only holds odd powers).
		runLen := w
		if bit-runLen+1 < 0 {
			runLen = bit + 1
		}
		for runLen > 1 && !ebits.bit(bit-runLen+1) {
			runLen--
		}

		windowVal := 0
		for i := 0; i < runLen; i++ {
			acc = montMul(acc, acc, nWords, mm, k)
			if ebits.bit(bit - i) {
				windowVal |= 1 << uint(runLen-1-i)
			}
		}
		idx := (windowVal - 1) / 2
		acc = montMul(acc, odd[idx], nWords, mm, k)
		bit -= runLen
	}

	result := montMul(acc, one, nWords, mm, k)
	err = importWords(x, result)
	zeroWords(result)
	zeroWords(acc)
	return err
}

func sameWords(a, b []limb.Word) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// computeRR computes R^2 mod n where R = 2^(k*64), by shifting 1 left by
// 2*k*64 bits and reducing modulo n.
func computeRR(nWords []limb.Word, k int) ([]limb.Word, error) {
	var n, rr mpi.Int
	if err := importWords(&n, nWords); err != nil {
		return nil, err
	}
	rr.SetInt64(1)
	if err := mpi.ShiftLeft(&rr, 2*k*64); err != nil {
		return nil, err
	}
	var r mpi.Int
	if err := mpi.Mod(&r, &rr, &n); err != nil {
		return nil, err
	}
	return exportWords(&r, k), nil
}
