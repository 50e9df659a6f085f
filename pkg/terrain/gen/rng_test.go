package gen

import "testing"

func TestStreamReproducible(t *testing.T) {
	r1 := newStream(42, saltTrees)
	r2 := newStream(42, saltTrees)

	for i := 0; i < 1000; i++ {
		if r1.Float64() != r2.Float64() {
			t.Fatalf("draw %d differs for identical seed+salt", i)
		}
	}
}

func TestStreamSaltIndependence(t *testing.T) {
	r1 := newStream(42, saltTrees)
	r2 := newStream(42, saltProps)

	same := 0
	for i := 0; i < 100; i++ {
		if r1.Float64() == r2.Float64() {
			same++
		}
	}
	if same == 100 {
		t.Error("different salts should produce different sequences")
	}
}

func TestStreamFloat64Range(t *testing.T) {
	r := newStream(7, saltOffsets)
	for i := 0; i < 10000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %f, out of [0,1)", v)
		}
	}
}

func TestStreamRange(t *testing.T) {
	r := newStream(7, saltProps)
	for i := 0; i < 10000; i++ {
		v := r.Range(0.5, 2.5)
		if v < 0.5 || v >= 2.5 {
			t.Fatalf("Range(0.5, 2.5) = %f, out of bounds", v)
		}
	}
}

func TestStreamIntN(t *testing.T) {
	r := newStream(99, saltTrees)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := r.IntN(5)
		if v < 0 || v >= 5 {
			t.Fatalf("IntN(5) = %d, out of [0,5)", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Errorf("IntN(5) produced %d distinct values over 1000 draws, want 5", len(seen))
	}
}

func TestStreamCountsDraws(t *testing.T) {
	r := newStream(1, saltTrees)
	if r.draws != 0 {
		t.Fatalf("fresh stream has %d draws, want 0", r.draws)
	}
	r.Float64()
	r.IntN(3)
	r.Range(0, 1)
	if r.draws != 3 {
		t.Errorf("draws = %d, want 3", r.draws)
	}
}
