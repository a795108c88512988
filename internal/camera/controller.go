package camera

// Controller turns cursor positions and held movement keys into camera motion.
type Controller struct {
	Speed       float32
	Sensitivity float32

	firstMouse bool
	lastX      float64
	lastY      float64
}

// Movement is the set of movement keys held during a frame.
type Movement struct {
	Forward, Back, Left, Right, Up, Down bool
}

func NewController(speed, sensitivity float32) *Controller {
	return &Controller{Speed: speed, Sensitivity: sensitivity, firstMouse: true}
}

// ResetMouse makes the next cursor event set the reference position only.
// Call it when the cursor is captured again.
func (ctl *Controller) ResetMouse() {
	ctl.firstMouse = true
}

// HandleMouseMovement rotates cam by the cursor delta since the last call.
func (ctl *Controller) HandleMouseMovement(cam *Camera, xpos, ypos float64) {
	if ctl.firstMouse {
		ctl.lastX = xpos
		ctl.lastY = ypos
		ctl.firstMouse = false
		return
	}

	xoffset := float32(xpos-ctl.lastX) * ctl.Sensitivity
	yoffset := float32(ctl.lastY-ypos) * ctl.Sensitivity
	ctl.lastX = xpos
	ctl.lastY = ypos

	cam.Rotate(xoffset, yoffset)
}

// Update moves cam for dt seconds.
func (ctl *Controller) Update(cam *Camera, m Movement, dt float32) {
	step := ctl.Speed * dt
	if m.Forward {
		cam.MoveForward(step)
	}
	if m.Back {
		cam.MoveForward(-step)
	}
	if m.Right {
		cam.MoveRight(step)
	}
	if m.Left {
		cam.MoveRight(-step)
	}
	if m.Up {
		cam.MoveUp(step)
	}
	if m.Down {
		cam.MoveUp(-step)
	}
}
