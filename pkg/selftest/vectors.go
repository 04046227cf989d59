// Package selftest carries the library's built-in verification vectors
// (the multiply/divide/exp-mod/inv-mod values every release is checked
// against) and a worker pool that runs them in parallel for the
// cmd/mpitool selftest driver.
package selftest

import (
	"context"
	"fmt"

	"github.com/oisee/mpi/pkg/modular"
	"github.com/oisee/mpi/pkg/mpi"
	"github.com/oisee/mpi/pkg/primality"
	"github.com/oisee/mpi/pkg/rng"
)

// The 512-bit operand, 448-bit exponent and 375-bit odd modulus of the
// reference vector set, with the expected result of each operation on them.
const (
	vecA = "EFE021C2645FD1DC586E69184AF4A31E" +
		"D5F53E93B5F123FA41680867BA110131" +
		"944FE7952E2517337780CB0DB80E61AA" +
		"E7C8DDC6C5C6AADEB34EB38A2F40D5E6"

	vecE = "B2E7EFD37075B9F03FF989C7C5051C20" +
		"34D2A323810251127E7BF8625A4F49A5" +
		"F3E27F4DA8BD59C47D6DAAB754B8D64F" +
		"A4C248425C25B2E8"

	vecN = "0066A198186C18C10B2F5ED9B522752A" +
		"9830B69916E535C8F047518A889A43A5" +
		"94B6BED27A168D31D4A52F88925AA8F5"

	vecMul = "602AB7ECA597A3D6B56FF9829A5E8B85" +
		"9E857EA95A03512E2BAE7391688D264A" +
		"A5663B0341DB9CCFD2C4C5F421FEC814" +
		"8001B72E848A38CAE1C65F78E56ABDEF" +
		"E12D3C039B8A02D6BE593F0BBBDA56F1" +
		"ECF677152EF804370C1A305CAF3B5BF1" +
		"30879B56C61DE584A0F53A2447A51E"

	vecDivQ = "256567336059E52CAE22925474705F39A94"

	vecDivR = "6613F26162223DF488E9CD48CC132C7A" +
		"0AC93C701B001B092E4E5B9F73BCD27B" +
		"9EE50D0657C77F374E903CDFA4C642"

	vecExpMod = "1EE5C5B6B3205003238B9D478D32BED7" +
		"6DB09AA4DC656D965A1EC6D158E5DD23" +
		"C48C8483FC868B0229F2002BC2D1C5"

	vecInvMod = "3A0AAEDD7E784FC07D8F9EC6E3BFD5C3" +
		"DBA76456363A10869622EAC2DD84ECC5" +
		"B8A74DAC4D09E03B5E0BE779F2DF61"
)

var gcdPairs = [][3]int64{
	{693, 609, 21},
	{1764, 868, 28},
	{768454923, 542167814, 1},
}

// Case is one named verification check.
type Case struct {
	Name string
	Run  func() error
}

// Cases returns the full vector suite. Each case is independent and holds
// no shared state, so the pool may run them in any order on any worker.
func Cases() []Case {
	return []Case{
		{Name: "mul", Run: checkMul},
		{Name: "div", Run: checkDiv},
		{Name: "exp-mod", Run: checkExpMod},
		{Name: "inv-mod", Run: checkInvMod},
		{Name: "gcd", Run: checkGcd},
		{Name: "gen-prime", Run: checkGenPrime},
		{Name: "gen-prime-safe", Run: checkGenPrimeSafe},
	}
}

func parseHex(s string) (*mpi.Int, error) {
	x := mpi.New()
	if err := x.ReadString(16, s); err != nil {
		return nil, fmt.Errorf("bad vector %.16s...: %w", s, err)
	}
	return x, nil
}

func checkAgainst(got *mpi.Int, wantHex, op string) error {
	want, err := parseHex(wantHex)
	if err != nil {
		return err
	}
	if mpi.Cmp(got, want) != 0 {
		return fmt.Errorf("%s: got %v, want %v", op, got, want)
	}
	return nil
}

func checkMul() error {
	a, err := parseHex(vecA)
	if err != nil {
		return err
	}
	n, err := parseHex(vecN)
	if err != nil {
		return err
	}
	x := mpi.New()
	if err := mpi.Mul(x, a, n); err != nil {
		return err
	}
	return checkAgainst(x, vecMul, "a*n")
}

func checkDiv() error {
	a, err := parseHex(vecA)
	if err != nil {
		return err
	}
	n, err := parseHex(vecN)
	if err != nil {
		return err
	}
	q, r := mpi.New(), mpi.New()
	if err := mpi.DivMod(q, r, a, n); err != nil {
		return err
	}
	if err := checkAgainst(q, vecDivQ, "a/n quotient"); err != nil {
		return err
	}
	return checkAgainst(r, vecDivR, "a/n remainder")
}

func checkExpMod() error {
	a, err := parseHex(vecA)
	if err != nil {
		return err
	}
	e, err := parseHex(vecE)
	if err != nil {
		return err
	}
	n, err := parseHex(vecN)
	if err != nil {
		return err
	}
	x := mpi.New()
	if err := modular.ExpMod(x, a, e, n, nil); err != nil {
		return err
	}
	return checkAgainst(x, vecExpMod, "a^e mod n")
}

func checkInvMod() error {
	a, err := parseHex(vecA)
	if err != nil {
		return err
	}
	n, err := parseHex(vecN)
	if err != nil {
		return err
	}
	x := mpi.New()
	if err := modular.InvMod(x, a, n); err != nil {
		return err
	}
	return checkAgainst(x, vecInvMod, "a^-1 mod n")
}

func checkGcd() error {
	for _, p := range gcdPairs {
		a, b, g := mpi.New(), mpi.New(), mpi.New()
		a.SetInt64(p[0])
		b.SetInt64(p[1])
		if err := primality.Gcd(g, a, b); err != nil {
			return err
		}
		if mpi.CmpInt64(g, p[2]) != 0 {
			return fmt.Errorf("gcd(%d,%d): got %v, want %d", p[0], p[1], g, p[2])
		}
	}
	return nil
}

func checkGenPrime() error {
	src := rng.NewMathRandSource(3, 3^0xDEADBEEF)
	x, err := primality.GenPrime(context.Background(), 64, false, src)
	if err != nil {
		return err
	}
	if x.Msb() != 64 {
		return fmt.Errorf("gen-prime: %d-bit result, want 64", x.Msb())
	}
	return primality.IsPrime(context.Background(), x, src)
}

func checkGenPrimeSafe() error {
	src := rng.NewMathRandSource(7, 7^0xDEADBEEF)
	x, err := primality.GenPrime(context.Background(), 64, true, src)
	if err != nil {
		return err
	}
	if err := primality.IsPrime(context.Background(), x, src); err != nil {
		return fmt.Errorf("gen-prime-safe: x not prime: %w", err)
	}
	half := mpi.New()
	if err := mpi.SubInt64(half, x, 1); err != nil {
		return err
	}
	if err := mpi.ShiftRight(half, 1); err != nil {
		return err
	}
	if err := primality.IsPrime(context.Background(), half, src); err != nil {
		return fmt.Errorf("gen-prime-safe: (x-1)/2 not prime: %w", err)
	}
	return nil
}
