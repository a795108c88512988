// Command voxmesh builds chunk meshes for a voxel world without opening a
// window. It prints per-chunk statistics and can write the meshes as GLB and
// the world as a compressed snapshot.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"mini-vox/internal/config"
	"mini-vox/internal/export"
	"mini-vox/internal/meshing"
	"mini-vox/internal/profiling"
	"mini-vox/internal/storage"
	"mini-vox/internal/world"
)

func main() {
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	var (
		configPath = flag.String("config", "", "YAML config file")
		loadPath   = flag.String("load", "", "load the world from a snapshot instead of the configured pattern")
		glbPath    = flag.String("glb", "", "write meshes as binary glTF (overrides output.glb)")
		snapPath   = flag.String("snapshot", "", "write the world snapshot (overrides output.snapshot)")
		workers    = flag.Int("workers", 0, "mesh worker count (overrides meshing.workers)")
		light      = flag.String("light", "", "light model: literal or linear (overrides meshing.light_model)")
		fill       = flag.Bool("fill", false, "fill chunk 0,0 solid before meshing")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *glbPath != "" {
		cfg.Output.GLB = *glbPath
	}
	if *snapPath != "" {
		cfg.Output.Snapshot = *snapPath
	}
	if *workers > 0 {
		cfg.Meshing.Workers = *workers
	}
	if *light != "" {
		cfg.Meshing.LightModel = *light
	}

	model, ok := meshing.ParseLightModel(cfg.Meshing.LightModel)
	if !ok {
		log.Fatalf("unknown light model %q", cfg.Meshing.LightModel)
	}
	opts := meshing.Options{Light: model}

	w, err := loadWorld(cfg, *loadPath)
	if err != nil {
		log.Fatalf("world: %v", err)
	}
	if *fill {
		c, _ := w.Chunk(world.ChunkCoord{})
		c.Fill(world.Solid(world.NewMaterial(world.White, 255)))
	}

	start := time.Now()
	meshes, buildErr := build(w, cfg.Meshing, opts)
	log.Printf("meshed %d chunks in %s (%d workers, %s light)", len(meshes), time.Since(start).Round(time.Microsecond), cfg.Meshing.Workers, model)

	report(meshes)
	reportErrors(buildErr)

	if cfg.Output.GLB != "" {
		if err := export.WriteGLB(cfg.Output.GLB, meshes); err != nil {
			log.Fatalf("glb: %v", err)
		}
		log.Printf("wrote %s", cfg.Output.GLB)
	}
	if cfg.Output.Snapshot != "" {
		if err := storage.WriteSnapshot(cfg.Output.Snapshot, w); err != nil {
			log.Fatalf("snapshot: %v", err)
		}
		log.Printf("wrote %s", cfg.Output.Snapshot)
	}

	log.Printf("profile: %s", profiling.TopN(5))

	if buildErr != nil {
		os.Exit(2)
	}
}

func loadWorld(cfg config.Config, snapshot string) (*world.World, error) {
	if snapshot != "" {
		return storage.ReadSnapshot(snapshot)
	}
	p, ok := world.ParsePattern(cfg.World.Pattern)
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q", cfg.World.Pattern)
	}
	return world.NewWithPattern(p), nil
}

func build(w *world.World, mc config.MeshingConfig, opts meshing.Options) ([]meshing.ChunkMesh, error) {
	if mc.Workers <= 1 {
		defer profiling.Track("meshing.BuildWorld")()
		return meshing.BuildWorld(w, opts)
	}
	pool := meshing.NewWorkerPool(mc.Workers, world.GridSizeX*world.GridSizeZ, opts, time.Duration(mc.SlowBuildMS)*time.Millisecond)
	defer pool.Shutdown()
	return pool.BuildWorld(context.Background(), w)
}

func report(meshes []meshing.ChunkMesh) {
	var quads, indices int
	for _, cm := range meshes {
		quads += cm.Mesh.QuadCount()
		indices += cm.Mesh.IndexCount()
		fmt.Printf("chunk %d,%d: %6d vertices %6d indices %5d quads  fp=%016x\n",
			cm.Coord.X, cm.Coord.Z, len(cm.Mesh.Vertices), cm.Mesh.IndexCount(), cm.Mesh.QuadCount(), meshing.Fingerprint(cm.Mesh))
	}
	fmt.Printf("total: %d quads %d indices\n", quads, indices)
}

func reportErrors(err error) {
	if err == nil {
		return
	}
	var overflow *meshing.OverflowError
	if errors.As(err, &overflow) {
		log.Printf("chunk %d,%d needs %d vertices, index limit is %d", overflow.Coord.X, overflow.Coord.Z, overflow.Vertices, overflow.Limit)
	}
	log.Printf("build: %v", err)
}
