package main

import (
	"fmt"
	"log"
	"time"

	"mini-vox/internal/config"
	"mini-vox/internal/input"
	"mini-vox/internal/physics"
	"mini-vox/internal/profiling"
	"mini-vox/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const slowFrame = 50 * time.Millisecond

// ViewLoop manages the main loop state
type ViewLoop struct {
	window *glfw.Window
	cfg    config.Config
	viewer *Viewer
	input  *input.Manager

	// the cursor starts free; a left click captures it
	captured bool

	frames           int
	lastFPSCheckTime time.Time
	lastTime         time.Time
}

func NewViewLoop(window *glfw.Window, cfg config.Config, v *Viewer, im *input.Manager) *ViewLoop {
	return &ViewLoop{
		window:           window,
		cfg:              cfg,
		viewer:           v,
		input:            im,
		lastFPSCheckTime: time.Now(),
		lastTime:         time.Now(),
	}
}

// Run draws frames until the window is closed
func (vl *ViewLoop) Run() {
	for !vl.window.ShouldClose() {
		vl.tick()
	}
}

func (vl *ViewLoop) tick() {
	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(vl.lastTime).Seconds()
	vl.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	vl.handleInputActions()
	if vl.captured {
		vl.viewer.Controller.Update(vl.viewer.Camera, vl.input.Movement(), float32(dt))
	}

	vl.renderFrame(dt)

	func() { defer profiling.Track("glfw.SwapBuffers")(); vl.window.SwapBuffers() }()

	vl.input.PostUpdate()

	if d := time.Since(now); d > slowFrame {
		log.Printf("slow frame %.2fms: %s", float64(d.Microseconds())/1000.0, profiling.TopN(3))
	}
}

func (vl *ViewLoop) handleInputActions() {
	if vl.input.JustPressed(input.ActionReleaseCursor) {
		vl.setCaptured(false)
	}
	if vl.input.JustPressed(input.ActionCapture) && !vl.captured {
		vl.setCaptured(true)
	}
	if vl.input.JustPressed(input.ActionResetCamera) {
		resetCamera(vl.viewer.Camera, vl.cfg.Camera)
	}
	if vl.input.JustPressed(input.ActionToggleWireframe) {
		config.ToggleWireframe()
	}
	if !vl.captured {
		return
	}
	if vl.input.JustPressed(input.ActionRemoveVoxel) {
		vl.editTarget(false)
	}
	if vl.input.JustPressed(input.ActionPlaceVoxel) {
		vl.editTarget(true)
	}
}

func (vl *ViewLoop) setCaptured(on bool) {
	vl.captured = on
	if on {
		vl.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		vl.viewer.Controller.ResetMouse()
	} else {
		vl.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// editTarget removes the voxel under the crosshair, or places one against
// it, and rebuilds the affected chunk.
func (vl *ViewLoop) editTarget(place bool) {
	cam := vl.viewer.Camera
	hit := physics.Raycast(cam.Eye(), cam.Front(), physics.MinReachDistance, physics.MaxReachDistance, vl.viewer.World)
	if !hit.Hit {
		return
	}

	pos, v := hit.HitPosition, world.Empty()
	if place {
		pos, v = hit.AdjacentPosition, world.Solid(world.NewMaterial(world.White, 255))
	}

	cc, err := vl.viewer.World.Set(pos[0], pos[1], pos[2], v)
	if err != nil {
		log.Printf("edit %v: %v", pos, err)
		return
	}
	c, err := vl.viewer.World.Chunk(cc)
	if err != nil {
		log.Printf("edit %v: %v", pos, err)
		return
	}
	func() {
		defer profiling.Track("terrain.Rebuild")()
		if err := vl.viewer.Terrain.Rebuild(cc, c); err != nil {
			log.Printf("rebuild chunk %d,%d: %v", cc.X, cc.Z, err)
		}
	}()
}

func (vl *ViewLoop) renderFrame(dt float64) {
	vl.viewer.Renderer.Render(vl.viewer.World, dt)
	vl.frames++

	if time.Since(vl.lastFPSCheckTime) >= time.Second {
		fmt.Println("FPS: ", vl.frames)
		vl.frames = 0
		vl.lastFPSCheckTime = time.Now()
	}
}

// RefreshRender draws a frame without advancing state (used during resize)
func (vl *ViewLoop) RefreshRender() {
	vl.viewer.Renderer.Render(vl.viewer.World, 0.016)
	vl.window.SwapBuffers()
}
