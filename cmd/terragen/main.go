package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/letstrythisshit/terragen/internal/profile"
	"github.com/letstrythisshit/terragen/internal/snapshot"
	"github.com/letstrythisshit/terragen/pkg/terrain"
	"github.com/letstrythisshit/terragen/pkg/terrain/gen"
)

func main() {
	var (
		src        = flag.String("profile", "", "profile file path or go-getter URL (empty = defaults)")
		seed       = flag.Int64("seed", 0, "override profile seed")
		resolution = flag.Int("resolution", 0, "override heightmap resolution")
		out        = flag.String("o", "terrain.jsonl.zst", "snapshot output path")
		preview    = flag.String("preview", "", "heightmap PNG preview path (empty = skip)")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	p := profile.Default()
	if *src != "" {
		path := *src
		if profile.IsRemote(path) {
			cache, err := os.MkdirTemp("", "terragen-profile-")
			if err != nil {
				log.Error("create cache dir", "error", err)
				os.Exit(1)
			}
			defer os.RemoveAll(cache)
			path, err = profile.Fetch(*src, cache)
			if err != nil {
				log.Error("fetch profile", "url", *src, "error", err)
				os.Exit(1)
			}
			log.Info("profile fetched", "url", *src)
		}
		var err error
		p, err = profile.Load(path)
		if err != nil {
			log.Error("load profile", "path", path, "error", err)
			os.Exit(1)
		}
	}
	profile.Merge(p, explicit, *seed, *resolution)

	data := terrain.NewData(p.SizeX, p.SizeY, p.SizeZ)
	pipeline := gen.NewPipeline(p, log)
	if err := pipeline.Run(&gen.Target{
		Heights:    data,
		Weights:    data,
		Prototypes: data,
		Instances:  data,
		Objects:    data,
	}); err != nil {
		log.Error("generation failed", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.Error("create output dir", "error", err)
		os.Exit(1)
	}
	if err := snapshot.WriteRun(*out, p.Seed, data); err != nil {
		log.Error("write snapshot", "path", *out, "error", err)
		os.Exit(1)
	}
	log.Info("snapshot written", "path", *out)

	if *preview != "" {
		if err := snapshot.WritePreview(*preview, data.Heights()); err != nil {
			log.Error("write preview", "path", *preview, "error", err)
			os.Exit(1)
		}
		log.Info("preview written", "path", *preview)
	}
}
