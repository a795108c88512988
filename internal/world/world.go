package world

const (
	// Chunk grid dimensions
	GridSizeX = 2
	GridSizeZ = 2

	// Global voxel extent
	SizeX = GridSizeX * ChunkSizeX
	SizeY = ChunkSizeY
	SizeZ = GridSizeZ * ChunkSizeZ
)

var worldLimit = [3]int{SizeX, SizeY, SizeZ}

// Pattern selects the initial contents of a new world.
type Pattern int

const (
	// PatternReference fills every chunk with rows of fully lit white voxels:
	// all x, y in [0,3), every other z in [0,6).
	PatternReference Pattern = iota
	PatternEmpty
	// PatternFloor fills the y=0 layer of every chunk.
	PatternFloor
	// PatternHills fills columns up to a value-noise height in
	// [1, HillMaxHeight], shaded by height.
	PatternHills
)

// ParsePattern maps a config name to a Pattern.
func ParsePattern(s string) (Pattern, bool) {
	switch s {
	case "reference", "":
		return PatternReference, true
	case "empty":
		return PatternEmpty, true
	case "floor":
		return PatternFloor, true
	case "hills":
		return PatternHills, true
	}
	return PatternReference, false
}

// World owns a fixed grid of chunks. Every slot is always populated.
type World struct {
	chunks [GridSizeX][GridSizeZ]*Chunk
}

// New creates a world with the reference pattern.
func New() *World {
	return NewWithPattern(PatternReference)
}

// NewEmpty creates a world whose chunks contain only empty voxels.
func NewEmpty() *World {
	return NewWithPattern(PatternEmpty)
}

// NewWithPattern creates a world and fills each chunk with pattern p.
func NewWithPattern(p Pattern) *World {
	w := &World{}
	for cx := range GridSizeX {
		for cz := range GridSizeZ {
			c := NewChunk()
			fillPattern(c, ChunkCoord{X: cx, Z: cz}, p)
			w.chunks[cx][cz] = c
		}
	}
	return w
}

func fillPattern(c *Chunk, cc ChunkCoord, p Pattern) {
	lit := Solid(NewMaterial(White, 255))
	switch p {
	case PatternReference:
		for x := range ChunkSizeX {
			for y := range 3 {
				for z := range 3 {
					c.voxels[index(x, y, 2*z)] = lit
				}
			}
		}
	case PatternFloor:
		for x := range ChunkSizeX {
			for z := range ChunkSizeZ {
				c.voxels[index(x, 0, z)] = lit
			}
		}
	case PatternHills:
		for x := range ChunkSizeX {
			for z := range ChunkSizeZ {
				gx, _, gz := cc.Global(LocalCoord{X: x, Z: z})
				for y := range HillHeight(gx, gz) {
					c.voxels[index(x, y, z)] = Solid(NewMaterial(hillColor(y), 255))
				}
			}
		}
	}
}

// InGrid reports whether cc addresses a chunk slot of the world.
func InGrid(cc ChunkCoord) bool {
	return cc.X >= 0 && cc.X < GridSizeX && cc.Z >= 0 && cc.Z < GridSizeZ
}

// Chunk returns the chunk at chunk coordinate cc.
func (w *World) Chunk(cc ChunkCoord) (*Chunk, error) {
	if !InGrid(cc) {
		return nil, &BoundsError{Op: "world chunk", X: cc.X, Y: 0, Z: cc.Z, Limit: [3]int{GridSizeX, 1, GridSizeZ}}
	}
	return w.chunks[cc.X][cc.Z], nil
}

// Coords returns every chunk coordinate in grid order (x outer, z inner).
func (w *World) Coords() []ChunkCoord {
	coords := make([]ChunkCoord, 0, GridSizeX*GridSizeZ)
	for cx := range GridSizeX {
		for cz := range GridSizeZ {
			coords = append(coords, ChunkCoord{X: cx, Z: cz})
		}
	}
	return coords
}

// ChunkAndLocal translates a global voxel coordinate into the chunk that
// holds it and the local coordinate inside that chunk.
func (w *World) ChunkAndLocal(x, y, z int) (ChunkCoord, LocalCoord, error) {
	if x < 0 || x >= SizeX || y < 0 || y >= SizeY || z < 0 || z >= SizeZ {
		return ChunkCoord{}, LocalCoord{}, &BoundsError{Op: "world to chunk", X: x, Y: y, Z: z, Limit: worldLimit}
	}
	cc, lc := ChunkAndLocal(x, y, z)
	return cc, lc, nil
}

// Get returns the voxel at global coordinates.
func (w *World) Get(x, y, z int) (Voxel, error) {
	cc, lc, err := w.ChunkAndLocal(x, y, z)
	if err != nil {
		return Voxel{}, err
	}
	return w.chunks[cc.X][cc.Z].Get(lc.X, lc.Y, lc.Z)
}

// Set overwrites the voxel at global coordinates and returns the coordinate
// of the chunk that changed. The caller is responsible for rebuilding that
// chunk's mesh.
func (w *World) Set(x, y, z int, v Voxel) (ChunkCoord, error) {
	cc, lc, err := w.ChunkAndLocal(x, y, z)
	if err != nil {
		return ChunkCoord{}, err
	}
	return cc, w.chunks[cc.X][cc.Z].Set(lc.X, lc.Y, lc.Z, v)
}
