package gen

import (
	"github.com/ojrac/opensimplex-go"

	"github.com/letstrythisshit/terragen/pkg/terrain"
)

// Sampler serves the terrain queries the blender and scatterers need:
// height normalized by the world height, and slope in degrees. Both are
// answered from committed sink data, not recomputed locally.
type Sampler interface {
	NormalizedHeight(u, v float64) float64
	Slope(u, v float64) float64
}

// Blender computes per-cell texture blend weights from layer profiles.
type Blender struct {
	layers []TextureLayer
	noise  opensimplex.Noise
}

// NewBlender creates a Blender over the profile's active texture layers.
// Layers without a texture reference are dropped here and consume no
// weight channel.
func NewBlender(p *Profile) *Blender {
	return &Blender{
		layers: p.activeTextureLayers(),
		noise:  opensimplex.NewNormalized(p.Seed + 2),
	}
}

// LayerCount returns the number of participating layers.
func (b *Blender) LayerCount() int { return len(b.layers) }

// Handles returns sink registration handles for the participating layers.
func (b *Blender) Handles() []terrain.LayerHandle {
	handles := make([]terrain.LayerHandle, len(b.layers))
	for i, l := range b.layers {
		handles[i] = terrain.LayerHandle{Name: l.Name, Texture: l.Texture}
	}
	return handles
}

// BlendWeights computes the res×res weight grid. Per cell every layer's
// height, slope and noise factors multiply into a raw weight; when the
// cell total is positive the weights are renormalized to sum to exactly
// one, otherwise the cell stays all-zero (unpainted).
func (b *Blender) BlendWeights(s Sampler, res int) terrain.WeightGrid {
	w := terrain.NewWeightGrid(res, len(b.layers))

	for z := 0; z < res; z++ {
		for x := 0; x < res; x++ {
			var u, v float64
			if res > 1 {
				u = float64(x) / float64(res-1)
				v = float64(z) / float64(res-1)
			}
			height := s.NormalizedHeight(u, v)
			slope := s.Slope(u, v)

			var total float64
			for i, l := range b.layers {
				heightFactor := clamp01(inverseLerp(l.MinHeight, l.MaxHeight, height))
				// Inverted argument order: weight fades out as slope
				// approaches MaxSlope.
				slopeFactor := clamp01(inverseLerp(l.MaxSlope, l.MinSlope, slope))
				noiseFactor := lerp(1-l.NoiseStrength, 1, b.noise.Eval2(u*l.NoiseScale, v*l.NoiseScale))

				weight := heightFactor * slopeFactor * noiseFactor * l.Weight
				w[z][x][i] = weight
				total += weight
			}

			if total > 0 {
				for i := range b.layers {
					w[z][x][i] /= total
				}
			}
		}
	}
	return w
}
