package physics_test

import (
	"math"
	"testing"

	"mini-vox/internal/physics"
	"mini-vox/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func solid() world.Voxel {
	return world.Solid(world.NewMaterial(world.White, 255))
}

func TestRaycast(t *testing.T) {
	w := world.NewEmpty()
	if _, err := w.Set(5, 0, 0, solid()); err != nil {
		t.Fatal(err)
	}

	start := mgl32.Vec3{0.5, 0.5, 0.5}
	dir := mgl32.Vec3{1, 0, 0}

	result := physics.Raycast(start, dir, 0.1, 10, w)
	if !result.Hit {
		t.Fatalf("Expected hit, got miss")
	}
	if result.HitPosition != [3]int{5, 0, 0} {
		t.Errorf("Expected hit at {5,0,0}, got %v", result.HitPosition)
	}
	if result.AdjacentPosition != [3]int{4, 0, 0} {
		t.Errorf("Expected adjacent at {4,0,0}, got %v", result.AdjacentPosition)
	}
	// x=0.5 to the x=5 face
	if math.Abs(float64(result.Distance-4.5)) > 1e-4 {
		t.Errorf("Expected distance 4.5, got %f", result.Distance)
	}

	if r := physics.Raycast(start, dir, 0.1, 4, w); r.Hit {
		t.Errorf("Expected miss due to maxDist, got hit at %v", r.HitPosition)
	}
	if r := physics.Raycast(start, mgl32.Vec3{0, 1, 0}, 0.1, 10, w); r.Hit {
		t.Errorf("Expected miss, got hit at %v", r.HitPosition)
	}
	if r := physics.Raycast(start, mgl32.Vec3{}, 0.1, 10, w); r.Hit {
		t.Error("zero direction should not hit")
	}
}

func TestRaycastDiagonal(t *testing.T) {
	w := world.NewEmpty()
	if _, err := w.Set(2, 2, 2, solid()); err != nil {
		t.Fatal(err)
	}

	start := mgl32.Vec3{0.5, 0.5, 0.5}
	result := physics.Raycast(start, mgl32.Vec3{1, 1, 1}, 0.1, 10, w)
	if !result.Hit || result.HitPosition != [3]int{2, 2, 2} {
		t.Fatalf("Expected hit at {2,2,2}, got %+v", result)
	}
	// entry through the corner at (2,2,2): 1.5 * sqrt(3)
	want := 1.5 * math.Sqrt(3)
	if math.Abs(float64(result.Distance)-want) > 1e-3 {
		t.Errorf("Expected distance %f, got %f", want, result.Distance)
	}
}

func TestRaycastNegativeAndOutside(t *testing.T) {
	w := world.NewEmpty()
	if _, err := w.Set(0, 3, 7, solid()); err != nil {
		t.Fatal(err)
	}

	// from outside the world looking back along -x
	start := mgl32.Vec3{10.5, 3.5, 7.5}
	result := physics.Raycast(start, mgl32.Vec3{-1, 0, 0}, physics.MinReachDistance, 20, w)
	if !result.Hit || result.HitPosition != [3]int{0, 3, 7} {
		t.Fatalf("Expected hit at {0,3,7}, got %+v", result)
	}
	if result.AdjacentPosition != [3]int{1, 3, 7} {
		t.Errorf("Expected adjacent at {1,3,7}, got %v", result.AdjacentPosition)
	}

	out := mgl32.Vec3{-5.5, 3.5, 7.5}
	if r := physics.Raycast(out, mgl32.Vec3{-1, 0, 0}, 0, 20, w); r.Hit {
		t.Errorf("ray leaving the world should miss, got %v", r.HitPosition)
	}
}

func TestRaycastReferenceWorld(t *testing.T) {
	w := world.New()
	// straight down onto the first row of the reference pattern
	result := physics.Raycast(mgl32.Vec3{4.5, 10, 0.5}, mgl32.Vec3{0, -1, 0}, 0, 20, w)
	if !result.Hit || result.HitPosition != [3]int{4, 2, 0} {
		t.Fatalf("Expected hit at {4,2,0}, got %+v", result)
	}
	if result.AdjacentPosition != [3]int{4, 3, 0} {
		t.Errorf("Expected adjacent at {4,3,0}, got %v", result.AdjacentPosition)
	}
}

func BenchmarkRaycast(b *testing.B) {
	w := world.New()
	start := mgl32.Vec3{16, 8, 40}
	dir := mgl32.Vec3{0, -0.3, -1}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		physics.Raycast(start, dir, physics.MinReachDistance, 40, w)
	}
}
