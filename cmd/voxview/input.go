package main

import (
	"mini-vox/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupInputHandlers(window *glfw.Window, loop *ViewLoop, im *input.Manager) {
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if loop.captured {
			loop.viewer.Controller.HandleMouseMovement(loop.viewer.Camera, xpos, ypos)
		}
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		loop.viewer.Renderer.UpdateViewport(fbWidth, fbHeight)
	})

	// keeps the frame drawn while the window is being resized
	window.SetRefreshCallback(func(w *glfw.Window) {
		loop.RefreshRender()
	})
}
