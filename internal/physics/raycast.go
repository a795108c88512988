package physics

import (
	"math"

	"mini-vox/internal/profiling"
	"mini-vox/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinReachDistance = 0.1
	MaxReachDistance = 8.0
)

// RaycastResult stores the first solid voxel along a ray. AdjacentPosition
// is the empty cell the ray passed through just before the hit.
type RaycastResult struct {
	HitPosition      [3]int
	AdjacentPosition [3]int
	Distance         float32
	Hit              bool
}

// Raycast walks the voxel grid from start along direction and returns the
// first solid voxel whose entry distance lies in [minDist, maxDist]. Voxel
// (x, y, z) occupies the unit cube [x, x+1) on each axis. Cells outside the
// world count as empty.
func Raycast(start, direction mgl32.Vec3, minDist, maxDist float32, w *world.World) RaycastResult {
	defer profiling.Track("physics.Raycast")()

	if direction.Len() == 0 {
		return RaycastResult{}
	}
	dir := direction.Normalize()

	var cell, step [3]int
	var tMax, tDelta [3]float32
	for i := range 3 {
		cell[i] = int(math.Floor(float64(start[i])))
		switch {
		case dir[i] > 0:
			step[i] = 1
			tMax[i] = (float32(cell[i]+1) - start[i]) / dir[i]
			tDelta[i] = 1 / dir[i]
		case dir[i] < 0:
			step[i] = -1
			tMax[i] = (float32(cell[i]) - start[i]) / dir[i]
			tDelta[i] = -1 / dir[i]
		default:
			tMax[i] = float32(math.Inf(1))
			tDelta[i] = float32(math.Inf(1))
		}
	}

	prev := cell
	var dist float32
	for dist <= maxDist {
		if dist >= minDist && isSolid(w, cell) {
			return RaycastResult{
				HitPosition:      cell,
				AdjacentPosition: prev,
				Distance:         dist,
				Hit:              true,
			}
		}

		axis := 0
		if tMax[1] < tMax[axis] {
			axis = 1
		}
		if tMax[2] < tMax[axis] {
			axis = 2
		}
		prev = cell
		cell[axis] += step[axis]
		dist = tMax[axis]
		tMax[axis] += tDelta[axis]
	}

	return RaycastResult{}
}

func isSolid(w *world.World, p [3]int) bool {
	v, err := w.Get(p[0], p[1], p[2])
	return err == nil && !v.IsEmpty()
}
