package meshing

import (
	"errors"
	"fmt"

	"mini-vox/internal/world"
)

const (
	// MaxVertices is the number of vertices a 16-bit index can address.
	MaxVertices = 1 << 16

	verticesPerVoxel = world.FaceCount * 4
	indicesPerVoxel  = world.FaceCount * 6

	// MaxSolidVoxels is the largest solid count a chunk may hold and still mesh.
	MaxSolidVoxels = MaxVertices / verticesPerVoxel
)

// ErrIndexOverflow is matched by every OverflowError.
var ErrIndexOverflow = errors.New("mesh exceeds 16-bit index range")

// OverflowError reports a chunk whose mesh cannot be addressed by u16 indices.
type OverflowError struct {
	Coord    world.ChunkCoord
	Vertices int
	Limit    int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("chunk (%d, %d): %d vertices exceed limit of %d",
		e.Coord.X, e.Coord.Z, e.Vertices, e.Limit)
}

func (e *OverflowError) Unwrap() error {
	return ErrIndexOverflow
}

// Options tunes mesh generation. The zero value uses literal light.
type Options struct {
	Light LightModel
}

// faceOrder is the emission order of the six faces of every voxel.
var faceOrder = [world.FaceCount]world.Face{
	world.FaceFront,
	world.FaceBack,
	world.FaceDown,
	world.FaceUp,
	world.FaceLeft,
	world.FaceRight,
}

// BuildChunkMesh builds the mesh of chunk c located at coord with default options.
func BuildChunkMesh(coord world.ChunkCoord, c *world.Chunk) (Mesh, error) {
	return BuildChunkMeshWithOptions(coord, c, Options{})
}

// BuildChunkMeshWithOptions emits all six faces of every solid voxel of c,
// visiting cells x outer, y middle, z inner. Neighbours are not consulted.
// If the mesh would need more than MaxVertices vertices nothing is emitted
// and an *OverflowError is returned.
func BuildChunkMeshWithOptions(coord world.ChunkCoord, c *world.Chunk, opts Options) (Mesh, error) {
	if c == nil {
		return Mesh{}, nil
	}

	solid := c.SolidCount()
	if need := solid * verticesPerVoxel; need > MaxVertices {
		return Mesh{}, &OverflowError{Coord: coord, Vertices: need, Limit: MaxVertices}
	}

	mesh := Mesh{
		Vertices: make([]Vertex, 0, solid*verticesPerVoxel),
		Indices:  make([]uint16, 0, solid*indicesPerVoxel),
	}

	quad := 0
	// flat index order is x*256 + y*16 + z
	for i := range world.ChunkVolume {
		mat, ok := c.At(i).Material()
		if !ok {
			continue
		}
		lx, ly, lz := world.LocalFromIndex(i)
		gx, gy, gz := coord.Global(world.LocalCoord{X: lx, Y: ly, Z: lz})

		for _, f := range faceOrder {
			verts := EmitFace(f, gx, gy, gz, mat.Color, mat.LightFor(f), opts.Light)
			idx := FaceIndices(quad)
			mesh.Vertices = append(mesh.Vertices, verts[:]...)
			mesh.Indices = append(mesh.Indices, idx[:]...)
			quad++
		}
	}

	return mesh, nil
}

// ChunkMesh pairs a mesh with the chunk it was built from.
type ChunkMesh struct {
	Coord world.ChunkCoord
	Mesh  Mesh
}

// BuildWorld meshes every chunk of w in grid order. Chunks that fail are
// left out of the result and their errors are joined.
func BuildWorld(w *world.World, opts Options) ([]ChunkMesh, error) {
	var errs []error
	out := make([]ChunkMesh, 0, world.GridSizeX*world.GridSizeZ)
	for _, cc := range w.Coords() {
		c, err := w.Chunk(cc)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		m, err := BuildChunkMeshWithOptions(cc, c, opts)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, ChunkMesh{Coord: cc, Mesh: m})
	}
	return out, errors.Join(errs...)
}
