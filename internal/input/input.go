package input

import (
	"sync"

	"mini-vox/internal/camera"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a logical viewer action bound to one or more physical inputs
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionResetCamera
	ActionReleaseCursor
	ActionToggleWireframe
	ActionCapture
	ActionRemoveVoxel
	ActionPlaceVoxel
	ActionCount // sentinel for array sizing
)

// Manager maps keys and mouse buttons to actions and tracks per-frame edges
type Manager struct {
	mu sync.RWMutex

	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	current      [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewManager returns a Manager with the default viewer bindings
func NewManager() *Manager {
	m := &Manager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	m.BindKey(glfw.KeyW, ActionMoveForward)
	m.BindKey(glfw.KeyS, ActionMoveBackward)
	m.BindKey(glfw.KeyA, ActionMoveLeft)
	m.BindKey(glfw.KeyD, ActionMoveRight)
	m.BindKey(glfw.KeySpace, ActionMoveUp)
	m.BindKey(glfw.KeyLeftShift, ActionMoveDown)
	m.BindKey(glfw.KeyE, ActionResetCamera)
	m.BindKey(glfw.KeyEnter, ActionResetCamera)
	m.BindKey(glfw.KeyEscape, ActionReleaseCursor)
	m.BindKey(glfw.KeyF, ActionToggleWireframe)

	m.BindMouseButton(glfw.MouseButtonLeft, ActionCapture)
	m.BindMouseButton(glfw.MouseButtonRight, ActionRemoveVoxel)
	m.BindMouseButton(glfw.MouseButtonMiddle, ActionPlaceVoxel)

	return m
}

// BindKey adds an action to key. A key may drive several actions.
func (m *Manager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// UnbindKey removes all actions for key
func (m *Manager) UnbindKey(key glfw.Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keyToActions, key)
}

// BindMouseButton adds an action to button
func (m *Manager) BindMouseButton(button glfw.MouseButton, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mouseButtonToActions[button] = append(m.mouseButtonToActions[button], action)
}

// HandleKeyEvent updates state from a GLFW key event
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apply(m.keyToActions[key], action == glfw.Press || action == glfw.Repeat)
}

// HandleMouseButtonEvent updates state from a GLFW mouse button event
func (m *Manager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apply(m.mouseButtonToActions[button], action == glfw.Press)
}

func (m *Manager) apply(actions []Action, pressed bool) {
	for _, act := range actions {
		if pressed && !m.current[act] {
			m.justPressed[act] = true
		}
		if !pressed && m.current[act] {
			m.justReleased[act] = true
		}
		m.current[act] = pressed
	}
}

// PostUpdate clears edge flags. Call once at the end of each frame.
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.justPressed = [ActionCount]bool{}
	m.justReleased = [ActionCount]bool{}
}

// IsActive reports whether action is held
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current[action]
}

// JustPressed reports whether action went down this frame
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justPressed[action]
}

// JustReleased reports whether action went up this frame
func (m *Manager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justReleased[action]
}

// Movement collects the held movement actions for camera.Controller
func (m *Manager) Movement() camera.Movement {
	return camera.Movement{
		Forward: m.IsActive(ActionMoveForward),
		Back:    m.IsActive(ActionMoveBackward),
		Left:    m.IsActive(ActionMoveLeft),
		Right:   m.IsActive(ActionMoveRight),
		Up:      m.IsActive(ActionMoveUp),
		Down:    m.IsActive(ActionMoveDown),
	}
}
