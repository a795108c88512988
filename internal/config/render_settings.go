package config

import "sync"

const (
	MinFOV float32 = 30
	MaxFOV float32 = 110
)

// RenderSettings holds values toggled while the viewer is running
type RenderSettings struct {
	mu        sync.RWMutex
	fov       float32
	wireframe bool
}

var globalRenderSettings = &RenderSettings{
	fov: 70,
}

// GetFOV returns the current vertical field of view in degrees
func GetFOV() float32 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fov
}

// SetFOV sets the field of view, clamped to [MinFOV, MaxFOV]
func SetFOV(fov float32) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if fov < MinFOV {
		fov = MinFOV
	}
	if fov > MaxFOV {
		fov = MaxFOV
	}

	globalRenderSettings.fov = fov
}

// GetWireframe returns whether chunks are drawn as lines
func GetWireframe() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.wireframe
}

// ToggleWireframe flips wireframe mode and returns the new value
func ToggleWireframe() bool {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.wireframe = !globalRenderSettings.wireframe
	return globalRenderSettings.wireframe
}
