// Package profile loads and validates generation profiles. Profiles are
// YAML documents checked against an embedded JSON Schema before they are
// decoded over the defaults, so a bad kind or negative octave count is
// rejected at load time rather than surfacing mid-run.
package profile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/letstrythisshit/terragen/pkg/terrain/gen"
)

// Default returns a profile with sensible defaults: a single enabled
// plain noise layer over a mid-size island, no texture layers, no
// scatter.
func Default() *gen.Profile {
	return &gen.Profile{
		Resolution:         257,
		AlphamapResolution: 256,
		DetailResolution:   256,
		SizeX:              500,
		SizeY:              100,
		SizeZ:              500,
		Seed:               0,
		BaseHeight:         0.1,
		UseFalloff:         true,
		FalloffCurve:       gen.FalloffSmooth,
		FalloffStrength:    1,
		Geology:            gen.GeologyNone,
		WaterLevel:         0.15,
		NoiseLayers: []gen.NoiseLayer{
			{
				Enabled:     true,
				Kind:        gen.NoisePlain,
				Amplitude:   0.5,
				Frequency:   0.004,
				Octaves:     4,
				Persistence: 0.5,
				Lacunarity:  2,
			},
		},
	}
}

// Load reads a profile file and decodes it over Default().
func Load(path string) (*gen.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	return Parse(data)
}

// Parse validates and decodes profile YAML over Default().
func Parse(data []byte) (*gen.Profile, error) {
	if err := validate(data); err != nil {
		return nil, err
	}
	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if err := check(p); err != nil {
		return nil, err
	}
	return p, nil
}

// validate checks the raw document against the embedded schema. The YAML
// is round-tripped through JSON so the validator sees canonical types.
func validate(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode profile: %w", err)
	}
	jsonBytes, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("normalize profile: %w", err)
	}
	var doc any
	if err := json.Unmarshal(jsonBytes, &doc); err != nil {
		return fmt.Errorf("normalize profile: %w", err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	return nil
}

// check enforces the structural invariants the schema cannot express.
func check(p *gen.Profile) error {
	if p.Resolution < 1 {
		return fmt.Errorf("invalid profile: resolution %d < 1", p.Resolution)
	}
	if p.SizeX <= 0 || p.SizeY <= 0 || p.SizeZ <= 0 {
		return fmt.Errorf("invalid profile: world size must be positive")
	}
	for i, l := range p.NoiseLayers {
		if l.Octaves < 0 {
			return fmt.Errorf("invalid profile: noise layer %d octaves %d < 0", i, l.Octaves)
		}
		if l.Frequency < 0 || l.Lacunarity < 0 {
			return fmt.Errorf("invalid profile: noise layer %d frequency/lacunarity must be non-negative", i)
		}
	}
	return nil
}

// Merge applies flag overrides onto a file-loaded profile. Only flags
// explicitly provided on the command line win over the file.
func Merge(p *gen.Profile, explicit map[string]bool, seed int64, resolution int) {
	if explicit["seed"] {
		p.Seed = seed
	}
	if explicit["resolution"] {
		p.Resolution = resolution
	}
}

var compiledSchema = jsonschema.MustCompileString("profile.schema.json", schemaJSON)
