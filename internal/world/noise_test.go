package world

import "testing"

func TestValueNoiseRange(t *testing.T) {
	for x := -20; x < 20; x++ {
		for z := -20; z < 20; z++ {
			n := octaveNoise2D(float64(x)*0.37, float64(z)*0.37, 7, 3, 0.5, 2.0)
			if n < 0 || n > 1 {
				t.Fatalf("noise(%d,%d) = %f outside [0,1]", x, z, n)
			}
		}
	}
}

func TestValueNoiseLatticeExact(t *testing.T) {
	// at integer points the interpolation weights are zero
	for _, p := range [][2]int64{{0, 0}, {3, -2}, {-7, 11}} {
		got := valueNoise2D(float64(p[0]), float64(p[1]), 99)
		want := latticeValue(p[0], p[1], 99)
		if got != want {
			t.Errorf("noise at lattice %v = %f, want %f", p, got, want)
		}
	}
}

func TestHillHeightBoundsAndDeterminism(t *testing.T) {
	seen := map[int]bool{}
	for x := range SizeX {
		for z := range SizeZ {
			h := HillHeight(x, z)
			if h < hillMinHeight || h > HillMaxHeight {
				t.Fatalf("HillHeight(%d,%d) = %d outside [%d,%d]", x, z, h, hillMinHeight, HillMaxHeight)
			}
			if h != HillHeight(x, z) {
				t.Fatalf("HillHeight(%d,%d) not deterministic", x, z)
			}
			seen[h] = true
		}
	}
	if len(seen) < 2 {
		t.Errorf("hills are flat: heights %v", seen)
	}
}

func TestHillsPattern(t *testing.T) {
	w := NewWithPattern(PatternHills)
	for _, cc := range w.Coords() {
		c, err := w.Chunk(cc)
		if err != nil {
			t.Fatal(err)
		}
		if n := c.SolidCount(); n > ChunkSizeX*ChunkSizeZ*HillMaxHeight {
			t.Errorf("chunk %v has %d solid voxels", cc, n)
		}
	}

	for _, p := range [][2]int{{0, 0}, {17, 5}, {31, 31}} {
		h := HillHeight(p[0], p[1])
		top, err := w.Get(p[0], h-1, p[1])
		if err != nil || top.IsEmpty() {
			t.Errorf("column %v should be solid at y=%d", p, h-1)
		}
		above, err := w.Get(p[0], h, p[1])
		if err != nil || !above.IsEmpty() {
			t.Errorf("column %v should be empty at y=%d", p, h)
		}
	}
}
