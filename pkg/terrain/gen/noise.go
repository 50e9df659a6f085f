package gen

import "github.com/aquilax/go-perlin"

// Perlin parameters: alpha=2 beta=2 n=3 give terrain-like noise.
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinN     = 3
)

// NoiseField evaluates seeded fractal noise for heightmap layers.
type NoiseField struct {
	p *perlin.Perlin
}

// NewNoiseField creates a noise field from a seed.
func NewNoiseField(seed int64) *NoiseField {
	return &NoiseField{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed)}
}

// Sample returns one base noise value at (x, z), remapped to [0,1].
func (f *NoiseField) Sample(x, z float64) float64 {
	return (f.p.Noise2D(x, z) + 1) / 2
}

// Fractal sums layer.Octaves octaves of base noise, folding each raw
// sample per the layer kind before weighting. The accumulated value is
// divided by the sum of amplitudes used, keeping the output range
// comparable regardless of octave count. Zero octaves yield exactly 0.
func (f *NoiseField) Fractal(x, z float64, layer NoiseLayer) float64 {
	var total, maxValue float64
	amplitude := 1.0
	frequency := 1.0

	for range layer.Octaves {
		s := f.Sample(x*frequency, z*frequency)
		total += layer.Kind.fold(s) * amplitude
		maxValue += amplitude
		amplitude *= layer.Persistence
		frequency *= layer.Lacunarity
	}

	if maxValue == 0 {
		return 0
	}
	return total / maxValue
}
