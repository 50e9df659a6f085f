package terrain

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func rampGrid(res int) HeightGrid {
	g := NewHeightGrid(res)
	for z := range g {
		for x := range g[z] {
			g[z][x] = float64(x) / float64(res-1)
		}
	}
	return g
}

func TestDataInterpolatedHeight(t *testing.T) {
	d := NewData(100, 50, 100)
	d.SetHeights(0, 0, rampGrid(11))

	cases := []struct {
		u, v float64
		want float64
	}{
		{0, 0, 0},
		{1, 0, 50},
		{0.5, 0.5, 25},
		{0.25, 0.9, 12.5},
	}
	for _, c := range cases {
		got := d.InterpolatedHeight(c.u, c.v)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("InterpolatedHeight(%f, %f) = %f, want %f", c.u, c.v, got, c.want)
		}
	}
}

func TestDataCommitIsCopy(t *testing.T) {
	d := NewData(100, 50, 100)
	g := rampGrid(5)
	d.SetHeights(0, 0, g)

	g[0][0] = 0.75
	if d.Heights()[0][0] != 0 {
		t.Error("mutating the source grid after commit changed the stored grid")
	}
}

func TestDataFlatSteepnessZero(t *testing.T) {
	d := NewData(100, 50, 100)
	flat := NewHeightGrid(9)
	for z := range flat {
		for x := range flat[z] {
			flat[z][x] = 0.5
		}
	}
	d.SetHeights(0, 0, flat)

	for _, uv := range [][2]float64{{0.1, 0.1}, {0.5, 0.5}, {0.9, 0.2}} {
		if s := d.Steepness(uv[0], uv[1]); s != 0 {
			t.Errorf("Steepness(%f, %f) = %f on flat terrain, want 0", uv[0], uv[1], s)
		}
		n := d.InterpolatedNormal(uv[0], uv[1])
		if n != (mgl64.Vec3{0, 1, 0}) {
			t.Errorf("InterpolatedNormal(%f, %f) = %v on flat terrain, want +Y", uv[0], uv[1], n)
		}
	}
}

func TestDataRampSteepness(t *testing.T) {
	// Ramp rises the full world height (50) across the world width (100):
	// gradient 0.5, incline atan(0.5) ≈ 26.57°.
	d := NewData(100, 50, 100)
	d.SetHeights(0, 0, rampGrid(11))

	got := d.Steepness(0.5, 0.5)
	want := math.Atan(0.5) * 180 / math.Pi
	if math.Abs(got-want) > 0.1 {
		t.Errorf("Steepness(0.5, 0.5) = %f, want ≈%f", got, want)
	}

	n := d.InterpolatedNormal(0.5, 0.5)
	if n.Y() <= 0 || n.X() >= 0 {
		t.Errorf("normal %v should lean against the +X upslope", n)
	}
	if math.Abs(n.Len()-1) > 1e-9 {
		t.Errorf("normal length %f, want 1", n.Len())
	}
}

func TestDataClearChildren(t *testing.T) {
	d := NewData(100, 50, 100)
	parent := ObjectHandle{ID: 1}
	other := ObjectHandle{ID: 2}

	d.Place(PrefabHandle{Name: "a"}, mgl64.Vec3{}, mgl64.QuatIdent(), 1, parent)
	d.Place(PrefabHandle{Name: "b"}, mgl64.Vec3{}, mgl64.QuatIdent(), 1, other)
	d.Place(PrefabHandle{Name: "c"}, mgl64.Vec3{}, mgl64.QuatIdent(), 1, parent)

	if err := d.ClearChildren(parent); err != nil {
		t.Fatalf("ClearChildren: %v", err)
	}
	if len(d.Objects()) != 1 || d.Objects()[0].Prefab.Name != "b" {
		t.Errorf("objects after clear = %v, want only b", d.Objects())
	}
}

func TestWeightGridLayers(t *testing.T) {
	if got := NewWeightGrid(4, 3).Layers(); got != 3 {
		t.Errorf("Layers() = %d, want 3", got)
	}
	if got := (WeightGrid{}).Layers(); got != 0 {
		t.Errorf("empty grid Layers() = %d, want 0", got)
	}
}
