package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"mini-vox/internal/camera"
	"mini-vox/internal/config"
	"mini-vox/internal/graphics/renderables/terrain"
	"mini-vox/internal/graphics/renderer"
	"mini-vox/internal/meshing"
	"mini-vox/internal/storage"
	"mini-vox/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

func setupWindow(wc config.WindowConfig) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(wc.Width, wc.Height, wc.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, err
	}
	log.Printf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	if wc.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	return window, nil
}

// Viewer holds the initialized viewer components
type Viewer struct {
	Renderer   *renderer.Renderer
	Terrain    *terrain.Terrain
	World      *world.World
	Camera     *camera.Camera
	Controller *camera.Controller
}

func setupViewer(cfg config.Config, snapshot string) (*Viewer, error) {
	model, ok := meshing.ParseLightModel(cfg.Meshing.LightModel)
	if !ok {
		return nil, fmt.Errorf("unknown light model %q", cfg.Meshing.LightModel)
	}
	opts := meshing.Options{Light: model}

	w, err := loadWorld(cfg.World, snapshot)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	meshes, err := buildMeshes(w, cfg.Meshing, opts)
	if err != nil {
		// chunks that failed stay blank; the rest still render
		log.Printf("mesh build: %v", err)
	}
	log.Printf("meshed %d chunks in %s", len(meshes), time.Since(start).Round(time.Microsecond))

	terrainRenderer := terrain.NewTerrain(opts)
	terrainRenderer.SetMeshes(meshes)

	cam := camera.New(cfg.Window.Width, cfg.Window.Height)
	resetCamera(cam, cfg.Camera)
	config.SetFOV(cfg.Camera.FOV)

	r, err := renderer.NewRenderer(cam, terrainRenderer)
	if err != nil {
		return nil, err
	}

	return &Viewer{
		Renderer:   r,
		Terrain:    terrainRenderer,
		World:      w,
		Camera:     cam,
		Controller: camera.NewController(cfg.Camera.Speed, cfg.Camera.Sensitivity),
	}, nil
}

func loadWorld(wc config.WorldConfig, snapshot string) (*world.World, error) {
	if snapshot != "" {
		return storage.ReadSnapshot(snapshot)
	}
	p, ok := world.ParsePattern(wc.Pattern)
	if !ok {
		return nil, fmt.Errorf("unknown world pattern %q", wc.Pattern)
	}
	return world.NewWithPattern(p), nil
}

func buildMeshes(w *world.World, mc config.MeshingConfig, opts meshing.Options) ([]meshing.ChunkMesh, error) {
	if mc.Workers <= 1 {
		return meshing.BuildWorld(w, opts)
	}
	pool := meshing.NewWorkerPool(mc.Workers, world.GridSizeX*world.GridSizeZ, opts, time.Duration(mc.SlowBuildMS)*time.Millisecond)
	defer pool.Shutdown()
	return pool.BuildWorld(context.Background(), w)
}

// resetCamera restores the configured start pose.
func resetCamera(cam *camera.Camera, cc config.CameraConfig) {
	cam.Position = mgl32.Vec3(cc.Position)
	cam.Yaw = cc.Yaw
	cam.Pitch = cc.Pitch
	cam.NearPlane = cc.Near
	cam.FarPlane = cc.Far
}
