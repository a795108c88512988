package world

const (
	// Chunk dimensions
	ChunkSizeX = 16
	ChunkSizeY = 16
	ChunkSizeZ = 16

	ChunkVolume = ChunkSizeX * ChunkSizeY * ChunkSizeZ
)

var chunkLimit = [3]int{ChunkSizeX, ChunkSizeY, ChunkSizeZ}

// Chunk is a fixed 16x16x16 block of voxels stored in one flat array.
type Chunk struct {
	voxels [ChunkVolume]Voxel
}

// NewChunk creates an empty chunk.
func NewChunk() *Chunk {
	return &Chunk{}
}

// index converts local coordinates (x, y, z) → flat index
func index(x, y, z int) int {
	return x*ChunkSizeY*ChunkSizeZ + y*ChunkSizeZ + z
}

// InChunk reports whether (x, y, z) is a valid local coordinate.
func InChunk(x, y, z int) bool {
	return x >= 0 && x < ChunkSizeX && y >= 0 && y < ChunkSizeY && z >= 0 && z < ChunkSizeZ
}

// Get returns the voxel at the specified local coordinates.
func (c *Chunk) Get(x, y, z int) (Voxel, error) {
	if !InChunk(x, y, z) {
		return Voxel{}, &BoundsError{Op: "chunk get", X: x, Y: y, Z: z, Limit: chunkLimit}
	}
	return c.voxels[index(x, y, z)], nil
}

// Set overwrites the voxel at the specified local coordinates. Meshes built
// from this chunk are not updated.
func (c *Chunk) Set(x, y, z int, v Voxel) error {
	if !InChunk(x, y, z) {
		return &BoundsError{Op: "chunk set", X: x, Y: y, Z: z, Limit: chunkLimit}
	}
	c.voxels[index(x, y, z)] = v
	return nil
}

// At returns the voxel at a flat index in [0, ChunkVolume).
// Callers iterating the whole chunk use this to skip per-cell bounds checks.
func (c *Chunk) At(i int) Voxel {
	return c.voxels[i]
}

// LocalFromIndex is the inverse of the flat index.
func LocalFromIndex(i int) (x, y, z int) {
	return i / (ChunkSizeY * ChunkSizeZ), (i / ChunkSizeZ) % ChunkSizeY, i % ChunkSizeZ
}

// Clone returns an independent copy, safe to read while the original is edited.
func (c *Chunk) Clone() *Chunk {
	cp := *c
	return &cp
}

// SolidCount returns the number of non-empty voxels.
func (c *Chunk) SolidCount() int {
	n := 0
	for i := range c.voxels {
		if !c.voxels[i].IsEmpty() {
			n++
		}
	}
	return n
}

// Fill sets every cell to v.
func (c *Chunk) Fill(v Voxel) {
	for i := range c.voxels {
		c.voxels[i] = v
	}
}
