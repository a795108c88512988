package renderer

import (
	"mini-vox/internal/camera"
	"mini-vox/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Camera   *camera.Camera
	World    *world.World
	DT       float64
	View     mgl32.Mat4
	Proj     mgl32.Mat4
	ProjView mgl32.Mat4
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
