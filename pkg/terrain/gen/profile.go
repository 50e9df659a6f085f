package gen

import "math"

// NoiseKind selects the per-octave fold applied to raw noise samples.
type NoiseKind string

const (
	NoisePlain  NoiseKind = "plain"
	NoiseRidged NoiseKind = "ridged"
	NoiseBillow NoiseKind = "billow"
)

// fold transforms a raw [0,1] sample according to the kind.
func (k NoiseKind) fold(s float64) float64 {
	switch k {
	case NoiseRidged:
		return 1 - math.Abs(2*s-1)
	case NoiseBillow:
		return math.Abs(2*s - 1)
	default:
		return s
	}
}

// GeologyKind selects the height post-processing modifier.
type GeologyKind string

const (
	GeologyNone        GeologyKind = "none"
	GeologyVolcanic    GeologyKind = "volcanic"
	GeologySedimentary GeologyKind = "sedimentary"
	GeologyGranite     GeologyKind = "granite"
	GeologyKarst       GeologyKind = "karst"
	GeologyCanyon      GeologyKind = "canyon"
	GeologyArchipelago GeologyKind = "archipelago"
)

// FalloffCurve names the radial attenuation curve for island shaping.
type FalloffCurve string

const (
	FalloffLinear   FalloffCurve = "linear"
	FalloffSmooth   FalloffCurve = "smooth"
	FalloffSmoother FalloffCurve = "smoother"
	FalloffPower    FalloffCurve = "power"
)

// eval returns the attenuation factor at normalized radial distance d,
// 1 at the center falling to 0 at the edge.
func (c FalloffCurve) eval(d float64) float64 {
	d = clamp01(d)
	switch c {
	case FalloffLinear:
		return 1 - d
	case FalloffSmoother:
		t := 1 - d
		return t * t * t * (t*(t*6-15) + 10)
	case FalloffPower:
		return 1 - d*d
	default: // smooth
		return 1 - smoothstep(0, 1, d)
	}
}

// NoiseLayer configures one fractal noise contribution to the heightmap.
type NoiseLayer struct {
	Enabled     bool      `yaml:"enabled"`
	Kind        NoiseKind `yaml:"kind"`
	Amplitude   float64   `yaml:"amplitude"`
	Frequency   float64   `yaml:"frequency"`
	Octaves     int       `yaml:"octaves"`
	Persistence float64   `yaml:"persistence"`
	Lacunarity  float64   `yaml:"lacunarity"`
	OffsetX     float64   `yaml:"offset_x"`
	OffsetY     float64   `yaml:"offset_y"`
}

// TextureLayer configures one ground texture's blend weighting. Layers
// with an empty Texture reference do not participate in blending.
type TextureLayer struct {
	Name          string  `yaml:"name"`
	Texture       string  `yaml:"texture"`
	MinHeight     float64 `yaml:"min_height"`
	MaxHeight     float64 `yaml:"max_height"`
	MinSlope      float64 `yaml:"min_slope"`
	MaxSlope      float64 `yaml:"max_slope"`
	NoiseScale    float64 `yaml:"noise_scale"`
	NoiseStrength float64 `yaml:"noise_strength"`
	Weight        float64 `yaml:"weight"`
}

// TreeProfile configures one tree scatter pass.
type TreeProfile struct {
	PrototypeIndex int     `yaml:"prototype_index"`
	Density        float64 `yaml:"density"`
	MinHeight      float64 `yaml:"min_height"`
	MaxHeight      float64 `yaml:"max_height"`
	MinSlope       float64 `yaml:"min_slope"`
	MaxSlope       float64 `yaml:"max_slope"`
	ScaleMin       float64 `yaml:"scale_min"`
	ScaleMax       float64 `yaml:"scale_max"`
	RandomYaw      float64 `yaml:"random_yaw"`
}

// DetailProfile configures one ground-cover detail layer.
type DetailProfile struct {
	PrototypeIndex int     `yaml:"prototype_index"`
	Density        float64 `yaml:"density"`
	NoiseSpread    float64 `yaml:"noise_spread"`
	MinHeight      float64 `yaml:"min_height"`
	MaxHeight      float64 `yaml:"max_height"`
	MinSlope       float64 `yaml:"min_slope"`
	MaxSlope       float64 `yaml:"max_slope"`
}

// PropProfile configures one free-form prefab scatter pass.
type PropProfile struct {
	Name          string   `yaml:"name"`
	Prefabs       []string `yaml:"prefabs"`
	SeedOffset    int64    `yaml:"seed_offset"`
	Density       float64  `yaml:"density"`
	MinHeight     float64  `yaml:"min_height"`
	MaxHeight     float64  `yaml:"max_height"`
	MinSlope      float64  `yaml:"min_slope"`
	MaxSlope      float64  `yaml:"max_slope"`
	ScaleMin      float64  `yaml:"scale_min"`
	ScaleMax      float64  `yaml:"scale_max"`
	RandomYaw     float64  `yaml:"random_yaw"`
	AlignToNormal bool     `yaml:"align_to_normal"`
}

// Profile is the full declarative configuration for one generation run.
// It is read-only while a run is in progress.
type Profile struct {
	Resolution         int     `yaml:"resolution"`
	AlphamapResolution int     `yaml:"alphamap_resolution"`
	DetailResolution   int     `yaml:"detail_resolution"`
	SizeX              float64 `yaml:"size_x"`
	SizeY              float64 `yaml:"size_y"`
	SizeZ              float64 `yaml:"size_z"`
	Seed               int64   `yaml:"seed"`
	BaseHeight         float64 `yaml:"base_height"`

	UseFalloff      bool         `yaml:"use_falloff"`
	FalloffCurve    FalloffCurve `yaml:"falloff_curve"`
	FalloffStrength float64      `yaml:"falloff_strength"`

	Geology    GeologyKind `yaml:"geology"`
	WaterLevel float64     `yaml:"water_level"`

	NoiseLayers []NoiseLayer `yaml:"noise_layers"`

	TextureLayers    []TextureLayer  `yaml:"texture_layers"`
	TreePrototypes   []string        `yaml:"tree_prototypes"`
	DetailPrototypes []string        `yaml:"detail_prototypes"`
	Trees            []TreeProfile   `yaml:"trees"`
	Details          []DetailProfile `yaml:"details"`
	Props            []PropProfile   `yaml:"props"`
}

// activeTextureLayers returns the layers that reference a texture, in
// profile order. Layers without a texture are excluded from blending
// entirely and consume no weight channel.
func (p *Profile) activeTextureLayers() []TextureLayer {
	var active []TextureLayer
	for _, l := range p.TextureLayers {
		if l.Texture == "" {
			continue
		}
		active = append(active, l)
	}
	return active
}
