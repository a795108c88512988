package meshing

import (
	"mini-vox/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// LightModel selects how a face light level scales the base color.
type LightModel int

const (
	// LightLiteral divides the light by 255 before scaling, so any level
	// below 255 produces black. This is the default.
	LightLiteral LightModel = iota
	// LightLinear scales each channel by light/255.
	LightLinear
)

func (m LightModel) String() string {
	switch m {
	case LightLiteral:
		return "literal"
	case LightLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// ParseLightModel maps a config name to a LightModel.
func ParseLightModel(s string) (LightModel, bool) {
	switch s {
	case "literal", "":
		return LightLiteral, true
	case "linear":
		return LightLinear, true
	}
	return 0, false
}

// Attenuate applies the light model to every channel of c, alpha included.
func (m LightModel) Attenuate(c world.Color, light uint8) world.Color {
	var out world.Color
	switch m {
	case LightLinear:
		for i := range c {
			out[i] = uint8(uint16(c[i]) * uint16(light) / 255)
		}
	default:
		// integer division first: scale is 0 or 1
		scale := float32(light / 255)
		for i := range c {
			out[i] = c[i] * uint8(scale)
		}
	}
	return out
}

// faceCorners holds the unit-quad corner offsets per face. For corners
// v0..v3, (v1-v0) x (v2-v0) points along the outward normal, and v3 is the
// corner opposite v0, so both triangles of quadIndices are counter-clockwise
// when seen from outside.
var faceCorners = [world.FaceCount][4][3]float32{
	world.FaceFront: {{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1}},
	world.FaceBack:  {{0, 0, 0}, {0, 1, 0}, {1, 0, 0}, {1, 1, 0}},
	world.FaceDown:  {{0, 0, 0}, {1, 0, 0}, {0, 0, 1}, {1, 0, 1}},
	world.FaceUp:    {{0, 1, 0}, {0, 1, 1}, {1, 1, 0}, {1, 1, 1}},
	world.FaceLeft:  {{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {0, 1, 1}},
	world.FaceRight: {{1, 0, 0}, {1, 1, 0}, {1, 0, 1}, {1, 1, 1}},
}

var faceNormals = [world.FaceCount]mgl32.Vec3{
	world.FaceFront: {0, 0, 1},
	world.FaceBack:  {0, 0, -1},
	world.FaceDown:  {0, -1, 0},
	world.FaceUp:    {0, 1, 0},
	world.FaceLeft:  {-1, 0, 0},
	world.FaceRight: {1, 0, 0},
}

// quadIndices is the two-triangle pattern shared by every face.
var quadIndices = [6]uint16{0, 1, 2, 2, 1, 3}

// Normal returns the outward unit normal of face f.
func Normal(f world.Face) mgl32.Vec3 {
	return faceNormals[f]
}

// EmitFace returns the four vertices of face f of the voxel whose minimum
// corner is (x, y, z), colored by c attenuated with light.
func EmitFace(f world.Face, x, y, z int, c world.Color, light uint8, model LightModel) [4]Vertex {
	shaded := model.Attenuate(c, light)
	base := mgl32.Vec3{float32(x), float32(y), float32(z)}
	var quad [4]Vertex
	for i, off := range faceCorners[f] {
		quad[i] = Vertex{
			Position: base.Add(mgl32.Vec3{off[0], off[1], off[2]}),
			Color:    shaded,
		}
	}
	return quad
}

// FaceIndices returns the six indices of quad k (0-based) in a mesh.
// k must be below MaxVertices/4.
func FaceIndices(k int) [6]uint16 {
	base := uint16(k * 4)
	var out [6]uint16
	for i, idx := range quadIndices {
		out[i] = base + idx
	}
	return out
}

// FaceFront emits the +Z face.
func FaceFront(x, y, z int, c world.Color, light uint8) [4]Vertex {
	return EmitFace(world.FaceFront, x, y, z, c, light, LightLiteral)
}

// FaceBack emits the -Z face.
func FaceBack(x, y, z int, c world.Color, light uint8) [4]Vertex {
	return EmitFace(world.FaceBack, x, y, z, c, light, LightLiteral)
}

// FaceDown emits the -Y face.
func FaceDown(x, y, z int, c world.Color, light uint8) [4]Vertex {
	return EmitFace(world.FaceDown, x, y, z, c, light, LightLiteral)
}

// FaceUp emits the +Y face.
func FaceUp(x, y, z int, c world.Color, light uint8) [4]Vertex {
	return EmitFace(world.FaceUp, x, y, z, c, light, LightLiteral)
}

// FaceLeft emits the -X face.
func FaceLeft(x, y, z int, c world.Color, light uint8) [4]Vertex {
	return EmitFace(world.FaceLeft, x, y, z, c, light, LightLiteral)
}

// FaceRight emits the +X face.
func FaceRight(x, y, z int, c world.Color, light uint8) [4]Vertex {
	return EmitFace(world.FaceRight, x, y, z, c, light, LightLiteral)
}
