package gen

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/letstrythisshit/terragen/pkg/terrain"
)

// Target bundles the collaborator handles one run writes into. Heights,
// Weights, Prototypes and Instances are required for their passes;
// Objects is optional and skips prop instantiation when nil.
type Target struct {
	Heights    terrain.HeightSink
	Weights    terrain.WeightSink
	Prototypes terrain.PrototypeSink
	Instances  terrain.InstanceSink
	Objects    terrain.Instantiator
	Parent     terrain.ObjectHandle
}

// sinkSampler answers blender/scatter queries from committed sink data.
type sinkSampler struct {
	sink terrain.HeightSink
}

func (s sinkSampler) NormalizedHeight(u, v float64) float64 {
	_, sizeY, _ := s.sink.Size()
	if sizeY == 0 {
		return 0
	}
	return s.sink.InterpolatedHeight(u, v) / sizeY
}

func (s sinkSampler) Slope(u, v float64) float64 {
	return s.sink.Steepness(u, v)
}

// Pipeline sequences one full generation run against a target.
type Pipeline struct {
	profile *Profile
	log     *slog.Logger
}

// NewPipeline creates a Pipeline. A nil logger discards output.
func NewPipeline(p *Profile, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Pipeline{profile: p, log: log}
}

// Run executes the passes in fixed order: height synthesis → commit →
// weight blend → prototype registration → detail layers → tree scatter →
// prop placement → flush. Weight blending and scatter read heights back
// through the sink, so the commit must precede them. A missing profile
// or target is a logged no-op.
func (pl *Pipeline) Run(t *Target) error {
	if pl.profile == nil {
		pl.log.Warn("generation skipped: no profile")
		return nil
	}
	if t == nil || t.Heights == nil {
		pl.log.Warn("generation skipped: no target surface")
		return nil
	}

	p := pl.profile
	log := pl.log.With("run", uuid.NewString())
	log.Info("generation started", "seed", p.Seed, "resolution", p.Resolution, "geology", p.Geology)

	// Pass 1: heightmap.
	heights := NewSynthesizer(p).Synthesize(p.Resolution)
	t.Heights.SetHeights(0, 0, heights)
	sampler := sinkSampler{sink: t.Heights}

	// Pass 2: texture layer weights.
	pl.blendPass(t, sampler, log)

	// Pass 3: prototypes and detail layers.
	pl.prototypePass(t, sampler, log)

	// Pass 4: tree scatter.
	if t.Instances != nil {
		trees := NewScatterer(p).ScatterTrees(sampler)
		t.Instances.SetTreeInstances(trees)
		log.Info("trees scattered", "count", len(trees))
	}

	// Pass 5: free-form props.
	if t.Objects != nil {
		pl.propPass(t, sampler, log)
	}

	if f, ok := t.Heights.(terrain.Flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush terrain data: %w", err)
		}
	}
	log.Info("generation finished")
	return nil
}

func (pl *Pipeline) blendPass(t *Target, sampler Sampler, log *slog.Logger) {
	if t.Weights == nil {
		return
	}
	blender := NewBlender(pl.profile)
	if blender.LayerCount() == 0 {
		return
	}
	t.Weights.SetTerrainLayers(blender.Handles())
	w := blender.BlendWeights(sampler, pl.profile.AlphamapResolution)
	t.Weights.SetAlphamaps(0, 0, w)
	log.Info("weights blended", "layers", blender.LayerCount())
}

func (pl *Pipeline) prototypePass(t *Target, sampler Sampler, log *slog.Logger) {
	if t.Prototypes == nil {
		return
	}
	p := pl.profile

	if len(p.TreePrototypes) > 0 {
		protos := make([]terrain.TreePrototype, len(p.TreePrototypes))
		for i, name := range p.TreePrototypes {
			protos[i] = terrain.TreePrototype{Name: name, Prefab: name}
		}
		t.Prototypes.SetTreePrototypes(protos)
	}

	if len(p.DetailPrototypes) == 0 {
		return
	}
	protos := make([]terrain.DetailPrototype, len(p.DetailPrototypes))
	for i, name := range p.DetailPrototypes {
		protos[i] = terrain.DetailPrototype{Name: name, Texture: name}
	}
	t.Prototypes.SetDetailPrototypes(protos)

	sc := NewScatterer(p)
	for _, dp := range p.Details {
		if dp.PrototypeIndex < 0 || dp.PrototypeIndex >= len(p.DetailPrototypes) {
			log.Debug("detail profile skipped: prototype index out of range", "index", dp.PrototypeIndex)
			continue
		}
		grid := sc.DetailLayer(dp, p.DetailResolution, sampler)
		t.Prototypes.SetDetailLayer(dp.PrototypeIndex, grid)
	}
}

func (pl *Pipeline) propPass(t *Target, sampler Sampler, log *slog.Logger) {
	p := pl.profile
	if err := t.Objects.ClearChildren(t.Parent); err != nil {
		log.Warn("clear placement parent", "error", err)
	}

	sizeX, _, sizeZ := t.Heights.Size()
	sc := NewScatterer(p)
	placed := 0
	for _, pp := range p.Props {
		if len(pp.Prefabs) == 0 {
			log.Debug("prop profile skipped: no prefabs", "profile", pp.Name)
			continue
		}
		for _, rec := range sc.ScatterProps(pp, sampler, t.Heights) {
			pos := mgl64.Vec3{
				rec.U * sizeX,
				t.Heights.InterpolatedHeight(rec.U, rec.V),
				rec.V * sizeZ,
			}
			prefab := terrain.PrefabHandle{Name: pp.Prefabs[rec.PrefabIndex]}
			if _, err := t.Objects.Place(prefab, pos, rec.Rotation, rec.Scale, t.Parent); err != nil {
				log.Debug("place prop", "prefab", prefab.Name, "error", err)
				continue
			}
			placed++
		}
	}
	log.Info("props placed", "count", placed)
}
