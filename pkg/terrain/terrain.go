package terrain

import "github.com/go-gl/mathgl/mgl64"

// HeightGrid is a row-major grid of normalized heights in [0,1].
// Index = [row][col] with rows along the Z axis.
type HeightGrid [][]float64

// NewHeightGrid allocates a res×res grid initialized to zero.
func NewHeightGrid(res int) HeightGrid {
	g := make(HeightGrid, res)
	for i := range g {
		g[i] = make([]float64, res)
	}
	return g
}

// Resolution returns the grid's edge length in cells.
func (g HeightGrid) Resolution() int { return len(g) }

// Clone returns a deep copy of the grid.
func (g HeightGrid) Clone() HeightGrid {
	c := make(HeightGrid, len(g))
	for i, row := range g {
		c[i] = make([]float64, len(row))
		copy(c[i], row)
	}
	return c
}

// WeightGrid holds per-cell texture blend weights, [row][col][layer].
// For every cell the layer weights either all equal zero or sum to one.
type WeightGrid [][][]float64

// NewWeightGrid allocates a res×res grid with the given layer count.
func NewWeightGrid(res, layers int) WeightGrid {
	w := make(WeightGrid, res)
	for i := range w {
		w[i] = make([][]float64, res)
		for j := range w[i] {
			w[i][j] = make([]float64, layers)
		}
	}
	return w
}

// Layers returns the number of weight channels per cell.
func (w WeightGrid) Layers() int {
	if len(w) == 0 || len(w[0]) == 0 {
		return 0
	}
	return len(w[0][0])
}

// LayerHandle identifies a ground texture layer registered with the host.
type LayerHandle struct {
	Name    string
	Texture string
}

// TreePrototype identifies a tree mesh/prefab registered with the host.
type TreePrototype struct {
	Name   string
	Prefab string
}

// DetailPrototype identifies a ground-cover detail (grass, rocks)
// registered with the host.
type DetailPrototype struct {
	Name    string
	Texture string
}

// PrefabHandle identifies a free-placement prefab asset.
type PrefabHandle struct {
	Name string
}

// ObjectHandle identifies an instantiated scene object.
type ObjectHandle struct {
	ID int
}

// TreeInstance is one placed tree. U, V and Height are normalized to
// [0,1]; Yaw is in degrees.
type TreeInstance struct {
	U, V           float64
	Height         float64
	PrototypeIndex int
	Scale          float64
	Yaw            float64
}

// PropPlacement is one accepted free-form placement.
type PropPlacement struct {
	U, V        float64
	PrefabIndex int
	Scale       float64
	Rotation    mgl64.Quat
}

// HeightSink stores a committed height grid and serves interpolated
// queries from it. InterpolatedHeight is in world units; Steepness is in
// degrees; InterpolatedNormal is a unit vector.
type HeightSink interface {
	SetHeights(originX, originZ int, h HeightGrid)
	InterpolatedHeight(u, v float64) float64
	Size() (x, y, z float64)
	Steepness(u, v float64) float64
	InterpolatedNormal(u, v float64) mgl64.Vec3
}

// WeightSink receives texture layer registrations and blend weights.
type WeightSink interface {
	SetTerrainLayers(layers []LayerHandle)
	SetAlphamaps(originX, originZ int, w WeightGrid)
}

// PrototypeSink receives tree/detail prototype registrations and
// per-layer detail occupancy grids.
type PrototypeSink interface {
	SetTreePrototypes(protos []TreePrototype)
	SetDetailPrototypes(protos []DetailPrototype)
	SetDetailLayer(layer int, grid [][]int)
}

// InstanceSink receives the final tree instance list.
type InstanceSink interface {
	SetTreeInstances(trees []TreeInstance)
}

// Instantiator creates and clears scene objects for free-form placements.
type Instantiator interface {
	Place(prefab PrefabHandle, pos mgl64.Vec3, rot mgl64.Quat, scale float64, parent ObjectHandle) (ObjectHandle, error)
	ClearChildren(parent ObjectHandle) error
}

// Flusher is implemented by sinks that defer work until a run completes.
type Flusher interface {
	Flush() error
}
