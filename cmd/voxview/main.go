// Command voxview opens a window and renders the voxel world with a free
// fly camera.
package main

import (
	"flag"
	"log"
	"runtime"

	"mini-vox/internal/config"
	"mini-vox/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML config file")
	loadPath := flag.String("load", "", "load the world from a snapshot")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw: %v", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Window)
	if err != nil {
		log.Fatalf("window: %v", err)
	}

	v, err := setupViewer(cfg, *loadPath)
	if err != nil {
		log.Fatalf("setup: %v", err)
	}
	defer v.Renderer.Dispose()

	im := input.NewManager()
	loop := NewViewLoop(window, cfg, v, im)
	setupInputHandlers(window, loop, im)

	loop.Run()
}
