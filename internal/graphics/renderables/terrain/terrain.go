package terrain

import (
	_ "embed"
	"fmt"
	"log"

	"mini-vox/internal/graphics"
	"mini-vox/internal/graphics/renderer"
	"mini-vox/internal/meshing"
	"mini-vox/internal/profiling"
	"mini-vox/internal/world"
)

var (
	//go:embed shaders/terrain.vert
	vertexSource string
	//go:embed shaders/terrain.frag
	fragmentSource string
)

// Terrain implements renderer.Renderable for the voxel grid.
type Terrain struct {
	shader  *graphics.Shader
	opts    meshing.Options
	chunks  map[world.ChunkCoord]*ChunkBuffers
	pending []meshing.ChunkMesh
}

// NewTerrain creates a terrain renderable. Meshes passed to SetMeshes before
// Init are uploaded once the GL context is ready.
func NewTerrain(opts meshing.Options) *Terrain {
	return &Terrain{
		opts:   opts,
		chunks: make(map[world.ChunkCoord]*ChunkBuffers),
	}
}

// Init compiles the terrain shader and uploads pending meshes.
func (t *Terrain) Init() error {
	shader, err := graphics.NewShader(vertexSource, fragmentSource)
	if err != nil {
		return fmt.Errorf("terrain shader: %w", err)
	}
	t.shader = shader

	pending := t.pending
	t.pending = nil
	t.SetMeshes(pending)
	return nil
}

// SetMeshes uploads the given chunk meshes, replacing any previous ones.
func (t *Terrain) SetMeshes(meshes []meshing.ChunkMesh) {
	if t.shader == nil {
		t.pending = append(t.pending[:0], meshes...)
		return
	}
	for _, cm := range meshes {
		t.upload(cm.Coord, &cm.Mesh)
	}
}

// Rebuild re-meshes one chunk and replaces its buffers. On failure the
// previous buffers stay in place.
func (t *Terrain) Rebuild(coord world.ChunkCoord, c *world.Chunk) error {
	m, err := meshing.BuildChunkMeshWithOptions(coord, c, t.opts)
	if err != nil {
		return err
	}
	t.upload(coord, &m)
	return nil
}

func (t *Terrain) upload(coord world.ChunkCoord, m *meshing.Mesh) {
	if b, ok := t.chunks[coord]; ok {
		b.Upload(m)
		return
	}
	t.chunks[coord] = NewChunkBuffers(m)
	log.Printf("terrain: chunk %d,%d uploaded %d quads", coord.X, coord.Z, m.QuadCount())
}

// Render draws every uploaded chunk.
func (t *Terrain) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderTerrain")()

	t.shader.Use()
	t.shader.SetMatrix4("projView", ctx.ProjView)
	for _, b := range t.chunks {
		b.Draw()
	}
}

// IndexCount returns the total number of indices across all chunks.
func (t *Terrain) IndexCount() int {
	n := 0
	for _, b := range t.chunks {
		n += int(b.IndexCount())
	}
	return n
}

// SetViewport is a no-op; terrain only depends on the camera matrices.
func (t *Terrain) SetViewport(width, height int) {}

// Dispose frees buffers and the shader.
func (t *Terrain) Dispose() {
	for coord, b := range t.chunks {
		b.Delete()
		delete(t.chunks, coord)
	}
	if t.shader != nil {
		t.shader.Delete()
		t.shader = nil
	}
}
