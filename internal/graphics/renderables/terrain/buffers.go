package terrain

import (
	"mini-vox/internal/meshing"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ChunkBuffers owns the VAO, VBO and EBO of one chunk mesh.
type ChunkBuffers struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// NewChunkBuffers allocates GPU objects and uploads m. An empty mesh gets no
// GPU objects and draws nothing.
func NewChunkBuffers(m *meshing.Mesh) *ChunkBuffers {
	b := &ChunkBuffers{}
	b.Upload(m)
	return b
}

// Upload replaces the buffer contents with m.
func (b *ChunkBuffers) Upload(m *meshing.Mesh) {
	if m.IsEmpty() {
		b.Delete()
		return
	}
	if b.vao == 0 {
		gl.GenVertexArrays(1, &b.vao)
		gl.GenBuffers(1, &b.vbo)
		gl.GenBuffers(1, &b.ebo)
	}

	vertices := m.VertexBytes()
	indices := m.IndexBytes()

	gl.BindVertexArray(b.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices), gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices), gl.Ptr(indices), gl.STATIC_DRAW)

	// position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, meshing.VertexStride, 0)
	gl.EnableVertexAttribArray(0)
	// color, normalized to [0, 1]
	gl.VertexAttribPointerWithOffset(1, 4, gl.UNSIGNED_BYTE, true, meshing.VertexStride, meshing.ColorOffset)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	b.indexCount = int32(m.IndexCount())
}

// Draw issues one indexed draw call.
func (b *ChunkBuffers) Draw() {
	if b.vao == 0 || b.indexCount == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_SHORT, 0)
	gl.BindVertexArray(0)
}

// IndexCount returns the number of indices the last upload stored.
func (b *ChunkBuffers) IndexCount() int32 {
	return b.indexCount
}

// Delete frees the GPU objects.
func (b *ChunkBuffers) Delete() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		gl.DeleteBuffers(1, &b.vbo)
		gl.DeleteBuffers(1, &b.ebo)
	}
	b.vao, b.vbo, b.ebo = 0, 0, 0
	b.indexCount = 0
}
