package selftest

import "testing"

func TestAllVectorsPass(t *testing.T) {
	for _, c := range Cases() {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			if err := c.Run(); err != nil {
				t.Fatalf("%s: %v", c.Name, err)
			}
		})
	}
}

func TestPoolCountsAndSorts(t *testing.T) {
	pool := NewPool(4)
	results := pool.Run(Cases(), false)
	passed, failed := pool.Stats()
	if failed != 0 {
		t.Fatalf("%d cases failed", failed)
	}
	if int(passed) != len(Cases()) {
		t.Fatalf("passed = %d, want %d", passed, len(Cases()))
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].Name > results[i].Name {
			t.Fatalf("results not sorted: %q before %q", results[i-1].Name, results[i].Name)
		}
	}
}
