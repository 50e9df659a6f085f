package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/letstrythisshit/terragen/pkg/terrain/gen"
)

const sampleYAML = `
seed: 1337
resolution: 129
geology: volcanic
water_level: 0.2
noise_layers:
  - enabled: true
    kind: ridged
    amplitude: 0.6
    frequency: 0.008
    octaves: 5
    persistence: 0.45
    lacunarity: 2.1
texture_layers:
  - name: grass
    texture: grass_diffuse
    max_height: 0.6
    max_slope: 40
    noise_scale: 4
    noise_strength: 0.3
    weight: 1
tree_prototypes: [oak]
trees:
  - prototype_index: 0
    density: 0.01
    max_height: 0.8
    max_slope: 30
    scale_min: 0.8
    scale_max: 1.3
    random_yaw: 360
`

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAppliesOverDefaults(t *testing.T) {
	p, err := Load(writeProfile(t, sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if p.Seed != 1337 {
		t.Errorf("Seed = %d, want 1337", p.Seed)
	}
	if p.Resolution != 129 {
		t.Errorf("Resolution = %d, want 129", p.Resolution)
	}
	if p.Geology != gen.GeologyVolcanic {
		t.Errorf("Geology = %s, want volcanic", p.Geology)
	}
	// Untouched fields keep their defaults.
	if p.SizeX != 500 || p.FalloffCurve != gen.FalloffSmooth {
		t.Errorf("defaults not preserved: size_x=%f curve=%s", p.SizeX, p.FalloffCurve)
	}
	if len(p.NoiseLayers) != 1 || p.NoiseLayers[0].Kind != gen.NoiseRidged {
		t.Fatalf("noise layers = %+v, want one ridged layer", p.NoiseLayers)
	}
	if len(p.Trees) != 1 || p.Trees[0].Density != 0.01 {
		t.Fatalf("trees = %+v, want one profile with density 0.01", p.Trees)
	}
}

func TestLoadRejectsBadGeology(t *testing.T) {
	_, err := Load(writeProfile(t, "geology: lunar\n"))
	if err == nil {
		t.Fatal("expected schema error for unknown geology kind")
	}
	if !strings.Contains(err.Error(), "invalid profile") {
		t.Errorf("error = %v, want invalid profile", err)
	}
}

func TestLoadRejectsNegativeOctaves(t *testing.T) {
	doc := "noise_layers:\n  - octaves: -1\n"
	if _, err := Load(writeProfile(t, doc)); err == nil {
		t.Fatal("expected schema error for negative octaves")
	}
}

func TestLoadRejectsBadNoiseKind(t *testing.T) {
	doc := "noise_layers:\n  - kind: worley\n"
	if _, err := Load(writeProfile(t, doc)); err == nil {
		t.Fatal("expected schema error for unknown noise kind")
	}
}

func TestLoadRejectsZeroWorldSize(t *testing.T) {
	if _, err := Load(writeProfile(t, "size_y: 0\n")); err == nil {
		t.Fatal("expected error for zero world height")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseEmptyDocumentKeepsDefaults(t *testing.T) {
	p, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	d := Default()
	if p.Resolution != d.Resolution || p.SizeX != d.SizeX || p.WaterLevel != d.WaterLevel {
		t.Errorf("empty document should yield defaults, got %+v", p)
	}
}

func TestMergeHonorsExplicitFlags(t *testing.T) {
	p := Default()
	p.Seed = 5
	p.Resolution = 257

	Merge(p, map[string]bool{"seed": true}, 99, 33)
	if p.Seed != 99 {
		t.Errorf("Seed = %d, want flag override 99", p.Seed)
	}
	if p.Resolution != 257 {
		t.Errorf("Resolution = %d, want file value 257 (flag not explicit)", p.Resolution)
	}
}

func TestIsRemote(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"profile.yaml", false},
		{"./profiles/island.yaml", false},
		{"https://example.com/island.yaml", true},
		{"git::https://example.com/repo.git//profiles/island.yaml", true},
	}
	for _, c := range cases {
		if got := IsRemote(c.src); got != c.want {
			t.Errorf("IsRemote(%q) = %v, want %v", c.src, got, c.want)
		}
	}
}
