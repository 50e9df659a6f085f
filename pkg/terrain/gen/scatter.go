package gen

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/ojrac/opensimplex-go"

	"github.com/letstrythisshit/terragen/pkg/terrain"
)

// Scatterer runs the placement passes: tree instances, detail layer
// cells and free-form props. Each pass draws from its own salted stream
// (trees: seed + profileIndex*31, props: seed + profile offset) so
// profiles are independent and reproducible.
type Scatterer struct {
	profile *Profile
	noise   opensimplex.Noise
}

// NewScatterer creates a Scatterer for the profile.
func NewScatterer(p *Profile) *Scatterer {
	return &Scatterer{
		profile: p,
		noise:   opensimplex.NewNormalized(p.Seed + 3),
	}
}

// rejected reports whether a candidate at (height, slope) fails the
// water gate or the profile's height/slope bands. Rejected draws are not
// retried; the attempt budget bounds cost, not output count.
func (sc *Scatterer) rejected(height, slope, minH, maxH, minS, maxS float64) bool {
	if height < sc.profile.WaterLevel {
		return true
	}
	if height < minH || height > maxH {
		return true
	}
	if slope < minS || slope > maxS {
		return true
	}
	return false
}

// ScatterTrees emits tree instances for every tree profile. Profiles
// whose prototype index is outside the registered prototype list are
// skipped whole.
func (sc *Scatterer) ScatterTrees(s Sampler) []terrain.TreeInstance {
	p := sc.profile
	area := float64(p.Resolution) * float64(p.Resolution)

	var out []terrain.TreeInstance
	for i, tp := range p.Trees {
		if tp.PrototypeIndex < 0 || tp.PrototypeIndex >= len(p.TreePrototypes) {
			continue
		}
		target := int(math.Round(area * tp.Density))
		if target <= 0 {
			continue
		}

		rng := newStream(p.Seed+int64(i)*31, saltTrees)
		for range target {
			u := rng.Float64()
			v := rng.Float64()
			height := s.NormalizedHeight(u, v)
			slope := s.Slope(u, v)
			if sc.rejected(height, slope, tp.MinHeight, tp.MaxHeight, tp.MinSlope, tp.MaxSlope) {
				continue
			}
			out = append(out, terrain.TreeInstance{
				U:              u,
				V:              v,
				Height:         height,
				PrototypeIndex: tp.PrototypeIndex,
				Scale:          rng.Range(tp.ScaleMin, tp.ScaleMax),
				Yaw:            rng.Float64() * tp.RandomYaw,
			})
		}
	}
	return out
}

// DetailLayer evaluates one detail profile over the res×res detail grid.
// Unlike the point-sampled passes this visits every cell: occupancy is 1
// where the noise threshold test passes and the height/slope/water gates
// hold. Deterministic per cell, no RNG.
func (sc *Scatterer) DetailLayer(dp DetailProfile, res int, s Sampler) [][]int {
	grid := make([][]int, res)
	for z := range grid {
		grid[z] = make([]int, res)
		for x := range grid[z] {
			var u, v float64
			if res > 1 {
				u = float64(x) / float64(res-1)
				v = float64(z) / float64(res-1)
			}
			height := s.NormalizedHeight(u, v)
			slope := s.Slope(u, v)
			if sc.rejected(height, slope, dp.MinHeight, dp.MaxHeight, dp.MinSlope, dp.MaxSlope) {
				continue
			}
			if sc.noise.Eval2(u*dp.NoiseSpread, v*dp.NoiseSpread) < dp.Density {
				grid[z][x] = 1
			}
		}
	}
	return grid
}

var up = mgl64.Vec3{0, 1, 0}

// ScatterProps emits free-form placements for one prop profile. Each
// accepted point picks a uniformly random prefab from the profile's
// list; profiles with no prefabs are skipped. Surface-aligned profiles
// compose the rotation from the interpolated normal plus a random yaw in
// [0,360), flat ones use a random yaw in [0,RandomYaw).
func (sc *Scatterer) ScatterProps(pp PropProfile, s Sampler, normals terrain.HeightSink) []terrain.PropPlacement {
	if len(pp.Prefabs) == 0 {
		return nil
	}
	p := sc.profile
	area := float64(p.Resolution) * float64(p.Resolution)
	target := int(math.Round(area * pp.Density))
	if target <= 0 {
		return nil
	}

	rng := newStream(p.Seed+pp.SeedOffset, saltProps)
	var out []terrain.PropPlacement
	for range target {
		u := rng.Float64()
		v := rng.Float64()
		height := s.NormalizedHeight(u, v)
		slope := s.Slope(u, v)
		if sc.rejected(height, slope, pp.MinHeight, pp.MaxHeight, pp.MinSlope, pp.MaxSlope) {
			continue
		}

		idx := rng.IntN(len(pp.Prefabs))
		scale := rng.Range(pp.ScaleMin, pp.ScaleMax)

		var rot mgl64.Quat
		if pp.AlignToNormal {
			n := normals.InterpolatedNormal(u, v)
			tilt := mgl64.QuatBetweenVectors(up, n)
			yaw := mgl64.QuatRotate(mgl64.DegToRad(rng.Float64()*360), up)
			rot = tilt.Mul(yaw)
		} else {
			rot = mgl64.QuatRotate(mgl64.DegToRad(rng.Float64()*pp.RandomYaw), up)
		}

		out = append(out, terrain.PropPlacement{
			U:           u,
			V:           v,
			PrefabIndex: idx,
			Scale:       scale,
			Rotation:    rot,
		})
	}
	return out
}
