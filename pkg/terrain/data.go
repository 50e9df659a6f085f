package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Data is an in-memory terrain store implementing every sink interface.
// It serves interpolated height, steepness and normal queries from the
// last committed height grid, which is what the generation pipeline and
// headless tools run against. An engine adapter would satisfy the same
// interfaces over real terrain storage.
type Data struct {
	sizeX, sizeY, sizeZ float64

	heights      HeightGrid
	layers       []LayerHandle
	alphamaps    WeightGrid
	treeProtos   []TreePrototype
	detailProtos []DetailPrototype
	detailLayers map[int][][]int
	trees        []TreeInstance

	objects    []PlacedObject
	nextHandle int
}

// PlacedObject records one Instantiator placement.
type PlacedObject struct {
	Prefab PrefabHandle
	Pos    mgl64.Vec3
	Rot    mgl64.Quat
	Scale  float64
	Parent ObjectHandle
}

// NewData creates an empty terrain store with the given world extents.
func NewData(sizeX, sizeY, sizeZ float64) *Data {
	return &Data{
		sizeX:        sizeX,
		sizeY:        sizeY,
		sizeZ:        sizeZ,
		detailLayers: make(map[int][][]int),
	}
}

// SetHeights commits a height grid. The stored grid is replaced wholesale;
// origin offsets other than zero are not supported by the in-memory store.
func (d *Data) SetHeights(originX, originZ int, h HeightGrid) {
	_ = originX
	_ = originZ
	d.heights = h.Clone()
}

// Heights returns the committed height grid.
func (d *Data) Heights() HeightGrid { return d.heights }

// Size returns the world extents.
func (d *Data) Size() (x, y, z float64) { return d.sizeX, d.sizeY, d.sizeZ }

// InterpolatedHeight returns the bilinearly interpolated height at
// normalized (u,v), in world units.
func (d *Data) InterpolatedHeight(u, v float64) float64 {
	return d.sampleNormalized(u, v) * d.sizeY
}

// sampleNormalized bilinearly samples the committed grid in [0,1] space.
func (d *Data) sampleNormalized(u, v float64) float64 {
	res := d.heights.Resolution()
	if res == 0 {
		return 0
	}
	if res == 1 {
		return d.heights[0][0]
	}
	gx := clamp01(u) * float64(res-1)
	gz := clamp01(v) * float64(res-1)
	x0 := int(gx)
	z0 := int(gz)
	x1 := x0 + 1
	z1 := z0 + 1
	if x1 > res-1 {
		x1 = res - 1
	}
	if z1 > res-1 {
		z1 = res - 1
	}
	fx := gx - float64(x0)
	fz := gz - float64(z0)

	h00 := d.heights[z0][x0]
	h10 := d.heights[z0][x1]
	h01 := d.heights[z1][x0]
	h11 := d.heights[z1][x1]
	top := h00 + (h10-h00)*fx
	bot := h01 + (h11-h01)*fx
	return top + (bot-top)*fz
}

// gradient returns the world-space height gradient (dy/dx, dy/dz) at
// normalized (u,v), using central differences over one cell.
func (d *Data) gradient(u, v float64) (float64, float64) {
	res := d.heights.Resolution()
	if res < 2 {
		return 0, 0
	}
	step := 1.0 / float64(res-1)
	cellX := d.sizeX * step
	cellZ := d.sizeZ * step

	hx0 := d.sampleNormalized(u-step, v) * d.sizeY
	hx1 := d.sampleNormalized(u+step, v) * d.sizeY
	hz0 := d.sampleNormalized(u, v-step) * d.sizeY
	hz1 := d.sampleNormalized(u, v+step) * d.sizeY

	return (hx1 - hx0) / (2 * cellX), (hz1 - hz0) / (2 * cellZ)
}

// Steepness returns the terrain incline at (u,v) in degrees, 0 for flat.
func (d *Data) Steepness(u, v float64) float64 {
	gx, gz := d.gradient(u, v)
	return mgl64.RadToDeg(math.Atan(math.Hypot(gx, gz)))
}

// InterpolatedNormal returns the unit surface normal at (u,v).
func (d *Data) InterpolatedNormal(u, v float64) mgl64.Vec3 {
	gx, gz := d.gradient(u, v)
	return mgl64.Vec3{-gx, 1, -gz}.Normalize()
}

// SetTerrainLayers registers the texture layer handles.
func (d *Data) SetTerrainLayers(layers []LayerHandle) {
	d.layers = append([]LayerHandle(nil), layers...)
}

// Layers returns the registered texture layers.
func (d *Data) Layers() []LayerHandle { return d.layers }

// SetAlphamaps commits the blend weight grid.
func (d *Data) SetAlphamaps(originX, originZ int, w WeightGrid) {
	_ = originX
	_ = originZ
	d.alphamaps = w
}

// Alphamaps returns the committed weight grid.
func (d *Data) Alphamaps() WeightGrid { return d.alphamaps }

// SetTreePrototypes registers tree prototypes.
func (d *Data) SetTreePrototypes(protos []TreePrototype) {
	d.treeProtos = append([]TreePrototype(nil), protos...)
}

// TreePrototypes returns the registered tree prototypes.
func (d *Data) TreePrototypes() []TreePrototype { return d.treeProtos }

// SetDetailPrototypes registers detail prototypes.
func (d *Data) SetDetailPrototypes(protos []DetailPrototype) {
	d.detailProtos = append([]DetailPrototype(nil), protos...)
}

// DetailPrototypes returns the registered detail prototypes.
func (d *Data) DetailPrototypes() []DetailPrototype { return d.detailProtos }

// SetDetailLayer commits one detail layer's occupancy grid.
func (d *Data) SetDetailLayer(layer int, grid [][]int) {
	d.detailLayers[layer] = grid
}

// DetailLayer returns the occupancy grid for a layer, or nil.
func (d *Data) DetailLayer(layer int) [][]int { return d.detailLayers[layer] }

// SetTreeInstances commits the tree instance list.
func (d *Data) SetTreeInstances(trees []TreeInstance) {
	d.trees = append([]TreeInstance(nil), trees...)
}

// Trees returns the committed tree instances.
func (d *Data) Trees() []TreeInstance { return d.trees }

// Place records an object placement and returns its handle.
func (d *Data) Place(prefab PrefabHandle, pos mgl64.Vec3, rot mgl64.Quat, scale float64, parent ObjectHandle) (ObjectHandle, error) {
	d.objects = append(d.objects, PlacedObject{
		Prefab: prefab,
		Pos:    pos,
		Rot:    rot,
		Scale:  scale,
		Parent: parent,
	})
	d.nextHandle++
	return ObjectHandle{ID: d.nextHandle}, nil
}

// ClearChildren removes all objects recorded under the given parent.
func (d *Data) ClearChildren(parent ObjectHandle) error {
	kept := d.objects[:0]
	for _, o := range d.objects {
		if o.Parent != parent {
			kept = append(kept, o)
		}
	}
	d.objects = kept
	return nil
}

// Objects returns all recorded placements.
func (d *Data) Objects() []PlacedObject { return d.objects }

// Flush marks the run complete. The in-memory store commits eagerly, so
// this is a no-op kept for sink-contract parity.
func (d *Data) Flush() error { return nil }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
