// internal/utils/prng_test.go
package utils

import "testing"

func TestSeededDeterminism(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatalf("sequences diverged at draw %d", i)
		}
	}
}

func TestRangeBounds(t *testing.T) {
	rng := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		v := rng.Range(80, 200)
		if v < 80 || v >= 200 {
			t.Fatalf("Range(80,200) = %v, out of bounds", v)
		}
	}
}

func TestChanceEdges(t *testing.T) {
	rng := NewPRNGService(7)
	for i := 0; i < 100; i++ {
		if rng.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
		if !rng.Chance(1) {
			t.Fatal("Chance(1) returned false")
		}
	}
}

func TestPickIndices(t *testing.T) {
	rng := NewPRNGService(11)

	picks := rng.PickIndices(10, 3)
	if len(picks) != 3 {
		t.Fatalf("got %d picks, want 3", len(picks))
	}
	seen := make(map[int]bool)
	for _, idx := range picks {
		if idx < 0 || idx >= 10 {
			t.Errorf("index %d out of range", idx)
		}
		if seen[idx] {
			t.Errorf("index %d picked twice", idx)
		}
		seen[idx] = true
	}

	// Asking for more than available returns everything once.
	picks = rng.PickIndices(2, 5)
	if len(picks) != 2 {
		t.Fatalf("got %d picks, want 2", len(picks))
	}
}
