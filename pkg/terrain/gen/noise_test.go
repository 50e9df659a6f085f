package gen

import (
	"math"
	"testing"
)

func testLayer(kind NoiseKind, octaves int) NoiseLayer {
	return NoiseLayer{
		Enabled:     true,
		Kind:        kind,
		Amplitude:   1,
		Frequency:   1,
		Octaves:     octaves,
		Persistence: 0.5,
		Lacunarity:  2,
	}
}

func TestFractalZeroOctaves(t *testing.T) {
	f := NewNoiseField(42)
	layer := testLayer(NoisePlain, 0)

	for i := 0; i < 100; i++ {
		x := float64(i)*0.37 - 10
		z := float64(i)*0.53 - 10
		if v := f.Fractal(x, z, layer); v != 0 {
			t.Fatalf("Fractal(%f, %f) with 0 octaves = %f, want 0", x, z, v)
		}
	}
}

func TestFractalRange(t *testing.T) {
	f := NewNoiseField(42)

	for _, kind := range []NoiseKind{NoisePlain, NoiseRidged, NoiseBillow} {
		layer := testLayer(kind, 5)
		for i := 0; i < 2000; i++ {
			x := float64(i)*0.13 - 100
			z := float64(i)*0.29 - 100
			v := f.Fractal(x, z, layer)
			if v < 0 || v > 1 {
				t.Fatalf("Fractal %s at (%f, %f) = %f, out of [0,1]", kind, x, z, v)
			}
		}
	}
}

func TestFractalDeterministic(t *testing.T) {
	f1 := NewNoiseField(12345)
	f2 := NewNoiseField(12345)
	layer := testLayer(NoiseRidged, 4)

	for i := 0; i < 100; i++ {
		x := float64(i) * 0.1
		z := float64(i) * 0.2
		if f1.Fractal(x, z, layer) != f2.Fractal(x, z, layer) {
			t.Fatalf("Fractal not deterministic at (%f, %f)", x, z)
		}
	}
}

func TestFractalDifferentSeeds(t *testing.T) {
	f1 := NewNoiseField(1)
	f2 := NewNoiseField(2)
	layer := testLayer(NoisePlain, 3)

	different := false
	for i := 0; i < 100; i++ {
		x := float64(i) * 0.1
		z := float64(i) * 0.2
		if f1.Fractal(x, z, layer) != f2.Fractal(x, z, layer) {
			different = true
			break
		}
	}
	if !different {
		t.Error("different seeds should produce different noise")
	}
}

// With a single octave the ridged and billow folds of the same raw
// sample are exact complements.
func TestRidgedBillowComplement(t *testing.T) {
	f := NewNoiseField(7)
	ridged := testLayer(NoiseRidged, 1)
	billow := testLayer(NoiseBillow, 1)

	for i := 0; i < 500; i++ {
		x := float64(i)*0.21 - 50
		z := float64(i)*0.43 - 50
		sum := f.Fractal(x, z, ridged) + f.Fractal(x, z, billow)
		if math.Abs(sum-1) > 1e-12 {
			t.Fatalf("ridged+billow at (%f, %f) = %f, want 1", x, z, sum)
		}
	}
}

func TestFoldFormulas(t *testing.T) {
	cases := []struct {
		kind NoiseKind
		in   float64
		want float64
	}{
		{NoisePlain, 0.3, 0.3},
		{NoiseRidged, 0.5, 1},
		{NoiseRidged, 0, 0},
		{NoiseRidged, 1, 0},
		{NoiseBillow, 0.5, 0},
		{NoiseBillow, 0, 1},
		{NoiseBillow, 1, 1},
	}
	for _, c := range cases {
		if got := c.kind.fold(c.in); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("%s fold(%f) = %f, want %f", c.kind, c.in, got, c.want)
		}
	}
}
