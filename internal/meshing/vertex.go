package meshing

import (
	"encoding/binary"
	"math"

	"mini-vox/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// VertexStride is the size in bytes of one vertex record (pos.xyz f32 + rgba u8)
const VertexStride = 16

// ColorOffset is the byte offset of the color attribute inside a vertex
const ColorOffset = 12

// Vertex is one corner of a face quad in world space.
type Vertex struct {
	Position mgl32.Vec3
	Color    world.Color
}

// Mesh is the CPU-side geometry of one chunk: four vertices and six indices
// per quad, ready to be copied into vertex and index buffers.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// IndexCount returns the number of indices to draw.
func (m *Mesh) IndexCount() int {
	return len(m.Indices)
}

// QuadCount returns the number of emitted faces.
func (m *Mesh) QuadCount() int {
	return len(m.Vertices) / 4
}

// IsEmpty reports whether the mesh has nothing to draw.
func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0
}

// VertexBytes encodes the vertices little-endian with VertexStride bytes each.
func (m *Mesh) VertexBytes() []byte {
	buf := make([]byte, len(m.Vertices)*VertexStride)
	for i, v := range m.Vertices {
		b := buf[i*VertexStride:]
		binary.LittleEndian.PutUint32(b[0:], math.Float32bits(v.Position[0]))
		binary.LittleEndian.PutUint32(b[4:], math.Float32bits(v.Position[1]))
		binary.LittleEndian.PutUint32(b[8:], math.Float32bits(v.Position[2]))
		copy(b[ColorOffset:ColorOffset+4], v.Color[:])
	}
	return buf
}

// IndexBytes encodes the indices as little-endian u16.
func (m *Mesh) IndexBytes() []byte {
	buf := make([]byte, len(m.Indices)*2)
	for i, idx := range m.Indices {
		binary.LittleEndian.PutUint16(buf[i*2:], idx)
	}
	return buf
}
