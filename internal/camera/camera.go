package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const maxPitch = 89.0

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera is a Y-up first-person camera. Yaw and pitch are in degrees;
// yaw -90 looks down -Z.
type Camera struct {
	Position    mgl32.Vec3
	Yaw         float32
	Pitch       float32
	FOV         float32
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
}

func New(width, height int) *Camera {
	c := &Camera{
		Yaw:       -90,
		FOV:       70,
		NearPlane: 0.01,
		FarPlane:  100,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio; a zero height is ignored.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

// Front returns the unit view direction.
func (c *Camera) Front() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	return mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
}

// Eye returns the camera position in world space.
func (c *Camera) Eye() mgl32.Vec3 {
	return c.Position
}

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front()), worldUp)
}

func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// ProjectionView is the combined transform uploaded to the terrain shader.
func (c *Camera) ProjectionView() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

func (c *Camera) InverseView() mgl32.Mat4 {
	return c.View().Inv()
}

func (c *Camera) InverseProjection() mgl32.Mat4 {
	return c.Projection().Inv()
}

// horizontal returns the view direction flattened onto the XZ plane.
func (c *Camera) horizontal() mgl32.Vec3 {
	f := c.Front()
	f[1] = 0
	if f.Len() == 0 {
		return mgl32.Vec3{}
	}
	return f.Normalize()
}

// MoveForward moves along the view direction without changing height.
func (c *Camera) MoveForward(d float32) {
	c.Position = c.Position.Add(c.horizontal().Mul(d))
}

// MoveRight strafes perpendicular to the view direction.
func (c *Camera) MoveRight(d float32) {
	right := c.horizontal().Cross(worldUp)
	c.Position = c.Position.Add(right.Mul(d))
}

func (c *Camera) MoveUp(d float32) {
	c.Position = c.Position.Add(worldUp.Mul(d))
}

// Rotate adds to yaw and pitch, clamping pitch short of straight up/down.
func (c *Camera) Rotate(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch += dPitch
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}
