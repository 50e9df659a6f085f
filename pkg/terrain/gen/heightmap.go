package gen

import (
	"math"

	"github.com/ojrac/opensimplex-go"

	"github.com/letstrythisshit/terragen/pkg/terrain"
)

// Synthesizer builds the full normalized height grid for a profile.
type Synthesizer struct {
	profile  *Profile
	noise    *NoiseField
	modifier opensimplex.Noise
}

// NewSynthesizer creates a Synthesizer. Layer noise and the geology
// modifier field use independent primitives seeded from the run seed so
// modifiers stay decorrelated from the layers they reshape.
func NewSynthesizer(p *Profile) *Synthesizer {
	return &Synthesizer{
		profile:  p,
		noise:    NewNoiseField(p.Seed),
		modifier: opensimplex.NewNormalized(p.Seed + 1),
	}
}

// Synthesize computes the res×res height grid. Per cell the order is
// fixed: base height + noise layer sum, then falloff, then the geology
// modifier, then the final clamp. Reordering changes output.
func (s *Synthesizer) Synthesize(res int) terrain.HeightGrid {
	p := s.profile
	grid := terrain.NewHeightGrid(res)

	// Global offsets decorrelate repeated seeds across world sizes.
	// Drawn once, before any per-cell work.
	rng := newStream(p.Seed, saltOffsets)
	offsetX := rng.Range(-10000, 10000)
	offsetZ := rng.Range(-10000, 10000)

	for z := 0; z < res; z++ {
		for x := 0; x < res; x++ {
			var u, v float64
			if res > 1 {
				u = float64(x) / float64(res-1)
				v = float64(z) / float64(res-1)
			}

			h := p.BaseHeight
			for _, layer := range p.NoiseLayers {
				if !layer.Enabled {
					continue
				}
				nx := (u+layer.OffsetX)*p.SizeX*layer.Frequency + offsetX
				nz := (v+layer.OffsetY)*p.SizeZ*layer.Frequency + offsetZ
				h += s.noise.Fractal(nx, nz, layer) * layer.Amplitude
			}

			if p.UseFalloff {
				h *= s.falloff(u, v)
			}

			h = s.applyGeology(h, u, v)

			grid[z][x] = clamp01(h)
		}
	}
	return grid
}

// falloff returns the island attenuation factor at (u,v).
func (s *Synthesizer) falloff(u, v float64) float64 {
	cx := u*2 - 1
	cz := v*2 - 1
	dist := math.Hypot(cx, cz) / math.Sqrt2
	f := s.profile.FalloffCurve.eval(dist)
	f = math.Pow(f, s.profile.FalloffStrength)
	return clamp01(f)
}

// mod samples the geology modifier noise field in [0,1].
func (s *Synthesizer) mod(x, z float64) float64 {
	return s.modifier.Eval2(x, z)
}

// applyGeology reshapes a scalar height before the final clamp. The
// numeric constants are tuned look parameters and must not change.
func (s *Synthesizer) applyGeology(h, u, v float64) float64 {
	switch s.profile.Geology {
	case GeologyVolcanic:
		dist := math.Hypot(u-0.5, v-0.5)
		h += clamp01(1-dist*1.8) * 0.25
		h -= smoothstep(0.2, 0.8, dist*2.2) * 0.15
	case GeologySedimentary:
		h = math.Round(h*8) / 8
	case GeologyGranite:
		if h > 0 {
			h = math.Pow(h, 0.85)
		}
	case GeologyKarst:
		h -= s.mod(u*6, v*6) * 0.15
	case GeologyCanyon:
		h = lerp(h, h*s.mod(u*3, v*3), 0.6)
	case GeologyArchipelago:
		h *= lerp(0.4, 1.0, s.mod(u*4, v*4))
	}
	return h
}
