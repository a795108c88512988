package world

// ChunkCoord addresses a chunk in the world grid.
type ChunkCoord struct {
	X, Z int
}

// LocalCoord addresses a voxel inside a chunk.
type LocalCoord struct {
	X, Y, Z int
}

// Origin returns the global coordinate of the chunk's minimum corner.
func (c ChunkCoord) Origin() (x, y, z int) {
	return c.X * ChunkSizeX, 0, c.Z * ChunkSizeZ
}

// Global composes a chunk coordinate and a local coordinate into a global one.
func (c ChunkCoord) Global(l LocalCoord) (x, y, z int) {
	ox, oy, oz := c.Origin()
	return ox + l.X, oy + l.Y, oz + l.Z
}

// ChunkAndLocal splits a global coordinate into its chunk and local parts.
// It does not check the result against any world; see World.ChunkAndLocal.
func ChunkAndLocal(x, y, z int) (ChunkCoord, LocalCoord) {
	cc := ChunkCoord{X: floorDiv(x, ChunkSizeX), Z: floorDiv(z, ChunkSizeZ)}
	lc := LocalCoord{X: floorMod(x, ChunkSizeX), Y: y, Z: floorMod(z, ChunkSizeZ)}
	return cc, lc
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
