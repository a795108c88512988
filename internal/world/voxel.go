package world

// Face identifies one of the six axis-aligned faces of a voxel.
type Face int

// Faces are listed in emission order.
const (
	FaceFront Face = iota // +Z
	FaceBack              // -Z
	FaceDown              // -Y
	FaceUp                // +Y
	FaceLeft              // -X
	FaceRight             // +X

	FaceCount = 6
)

var faceNames = [FaceCount]string{"front", "back", "down", "up", "left", "right"}

func (f Face) String() string {
	if f < 0 || f >= FaceCount {
		return "invalid"
	}
	return faceNames[f]
}

// Color is an RGBA color with 8-bit channels.
type Color [4]uint8

// White is the color used by the reference world.
var White = Color{255, 255, 255, 255}

// Material describes a solid voxel: a base color and one light level per face.
type Material struct {
	Color Color
	Light [FaceCount]uint8
}

// NewMaterial returns a material with every face lit at the given level.
func NewMaterial(c Color, light uint8) Material {
	m := Material{Color: c}
	for i := range m.Light {
		m.Light[i] = light
	}
	return m
}

// LightFor returns the light level of face f.
func (m Material) LightFor(f Face) uint8 {
	return m.Light[f]
}

// Voxel is a single grid cell. The zero value is Empty.
// A voxel only carries a material when it is solid.
type Voxel struct {
	solid bool
	mat   Material
}

// Empty returns the empty voxel.
func Empty() Voxel {
	return Voxel{}
}

// Solid returns a solid voxel with material m.
func Solid(m Material) Voxel {
	return Voxel{solid: true, mat: m}
}

// IsEmpty reports whether v holds no material.
func (v Voxel) IsEmpty() bool {
	return !v.solid
}

// Material returns the voxel's material and true, or the zero Material and
// false for an empty voxel.
func (v Voxel) Material() (Material, bool) {
	if !v.solid {
		return Material{}, false
	}
	return v.mat, true
}
