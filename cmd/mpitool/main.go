package main

import (
	"context"
	goflag "flag"
	"fmt"
	"os"
	"runtime"

	"github.com/oisee/mpi/pkg/modular"
	"github.com/oisee/mpi/pkg/mpi"
	"github.com/oisee/mpi/pkg/primality"
	"github.com/oisee/mpi/pkg/rng"
	"github.com/oisee/mpi/pkg/selftest"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mpitool",
		Short: "Multi-precision integer toolkit: self-test, radix conversion, primes",
	}
	// glog registers its flags (-v, -logtostderr, ...) on the standard flag
	// set; surface them through cobra and mark the go set parsed so glog
	// doesn't warn about logging before flag.Parse.
	rootCmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
	goflag.CommandLine.Parse(nil)

	// selftest command
	var numWorkers int
	var verbose bool

	selftestCmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in arithmetic verification vectors",
		RunE: func(cmd *cobra.Command, args []string) error {
			cases := selftest.Cases()
			workers := numWorkers
			if workers <= 0 {
				workers = runtime.NumCPU()
			}
			fmt.Printf("MPI self-test\n")
			fmt.Printf("  Cases: %d\n", len(cases))
			fmt.Printf("  Workers: %d\n", workers)
			fmt.Println()

			pool := selftest.NewPool(numWorkers)
			pool.Run(cases, verbose)
			passed, failed := pool.Stats()
			fmt.Printf("\n%d passed, %d failed\n", passed, failed)
			if failed > 0 {
				return fmt.Errorf("%d self-test cases failed", failed)
			}
			return nil
		},
	}
	selftestCmd.Flags().IntVar(&numWorkers, "workers", 0, "Number of workers (0 = NumCPU)")
	selftestCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print passing cases too")

	// convert command
	var fromRadix, toRadix int

	convertCmd := &cobra.Command{
		Use:   "convert [value]",
		Short: "Convert a value between radixes 2..16",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x := mpi.New()
			if err := x.ReadString(fromRadix, args[0]); err != nil {
				return fmt.Errorf("cannot parse %q in radix %d: %w", args[0], fromRadix, err)
			}
			s, err := x.WriteString(toRadix)
			if err != nil {
				return err
			}
			fmt.Println(s)
			return nil
		},
	}
	convertCmd.Flags().IntVar(&fromRadix, "from", 10, "Input radix (2..16)")
	convertCmd.Flags().IntVar(&toRadix, "to", 16, "Output radix (2..16)")

	// genprime command
	var bits int
	var safe bool
	var seed uint64
	var outRadix int

	genprimeCmd := &cobra.Command{
		Use:   "genprime",
		Short: "Generate a random prime (optionally a safe prime)",
		RunE: func(cmd *cobra.Command, args []string) error {
			src := rng.NewMathRandSource(seed, seed^0xDEADBEEF)
			x, err := primality.GenPrime(context.Background(), bits, safe, src)
			if err != nil {
				return fmt.Errorf("prime generation failed: %w", err)
			}
			s, err := x.WriteString(outRadix)
			if err != nil {
				return err
			}
			fmt.Println(s)
			return nil
		},
	}
	genprimeCmd.Flags().IntVar(&bits, "bits", 256, "Bit length of the prime")
	genprimeCmd.Flags().BoolVar(&safe, "safe", false, "Require (p-1)/2 to also be prime")
	genprimeCmd.Flags().Uint64Var(&seed, "seed", 1, "PRNG seed (deterministic output per seed)")
	genprimeCmd.Flags().IntVar(&outRadix, "radix", 16, "Output radix (2..16)")

	// gcd command
	var gcdRadix int

	gcdCmd := &cobra.Command{
		Use:   "gcd [a] [b]",
		Short: "Greatest common divisor of two values",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, g := mpi.New(), mpi.New(), mpi.New()
			if err := a.ReadString(gcdRadix, args[0]); err != nil {
				return fmt.Errorf("cannot parse %q: %w", args[0], err)
			}
			if err := b.ReadString(gcdRadix, args[1]); err != nil {
				return fmt.Errorf("cannot parse %q: %w", args[1], err)
			}
			if err := primality.Gcd(g, a, b); err != nil {
				return err
			}
			s, err := g.WriteString(gcdRadix)
			if err != nil {
				return err
			}
			fmt.Println(s)
			return nil
		},
	}
	gcdCmd.Flags().IntVar(&gcdRadix, "radix", 10, "Radix for inputs and output (2..16)")

	// modexp command
	var modexpRadix int

	modexpCmd := &cobra.Command{
		Use:   "modexp [base] [exponent] [modulus]",
		Short: "Modular exponentiation: base^exponent mod modulus",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, e, n, x := mpi.New(), mpi.New(), mpi.New(), mpi.New()
			for i, dst := range []*mpi.Int{a, e, n} {
				if err := dst.ReadString(modexpRadix, args[i]); err != nil {
					return fmt.Errorf("cannot parse %q: %w", args[i], err)
				}
			}
			if err := modular.ExpMod(x, a, e, n, nil); err != nil {
				return err
			}
			s, err := x.WriteString(modexpRadix)
			if err != nil {
				return err
			}
			fmt.Println(s)
			return nil
		},
	}
	modexpCmd.Flags().IntVar(&modexpRadix, "radix", 16, "Radix for inputs and output (2..16)")

	// invmod command
	var invmodRadix int

	invmodCmd := &cobra.Command{
		Use:   "invmod [a] [modulus]",
		Short: "Modular inverse: a^-1 mod modulus",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, n, x := mpi.New(), mpi.New(), mpi.New()
			if err := a.ReadString(invmodRadix, args[0]); err != nil {
				return fmt.Errorf("cannot parse %q: %w", args[0], err)
			}
			if err := n.ReadString(invmodRadix, args[1]); err != nil {
				return fmt.Errorf("cannot parse %q: %w", args[1], err)
			}
			if err := modular.InvMod(x, a, n); err != nil {
				return err
			}
			s, err := x.WriteString(invmodRadix)
			if err != nil {
				return err
			}
			fmt.Println(s)
			return nil
		},
	}
	invmodCmd.Flags().IntVar(&invmodRadix, "radix", 10, "Radix for inputs and output (2..16)")

	rootCmd.AddCommand(selftestCmd, convertCmd, genprimeCmd, gcdCmd, modexpCmd, invmodCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
