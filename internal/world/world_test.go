package world

import (
	"errors"
	"testing"
)

func TestWorldGlobalRoundTrip(t *testing.T) {
	w := NewEmpty()
	for x := range SizeX {
		for y := range SizeY {
			for z := range SizeZ {
				cc, lc, err := w.ChunkAndLocal(x, y, z)
				if err != nil {
					t.Fatalf("ChunkAndLocal(%d,%d,%d): %v", x, y, z, err)
				}
				if !InGrid(cc) || !InChunk(lc.X, lc.Y, lc.Z) {
					t.Fatalf("(%d,%d,%d) -> %+v %+v outside grid", x, y, z, cc, lc)
				}
				gx, gy, gz := cc.Global(lc)
				if gx != x || gy != y || gz != z {
					t.Fatalf("(%d,%d,%d) -> %+v %+v -> (%d,%d,%d)", x, y, z, cc, lc, gx, gy, gz)
				}
			}
		}
	}
}

func TestWorldChunkAndLocalBounds(t *testing.T) {
	w := NewEmpty()
	for _, p := range [][3]int{{-1, 0, 0}, {SizeX, 0, 0}, {0, SizeY, 0}, {0, -1, 0}, {0, 0, SizeZ}} {
		if _, _, err := w.ChunkAndLocal(p[0], p[1], p[2]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("ChunkAndLocal%v err = %v", p, err)
		}
		if _, err := w.Get(p[0], p[1], p[2]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get%v err = %v", p, err)
		}
	}
	if _, err := w.Chunk(ChunkCoord{X: 2, Z: 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Chunk{2,0} err = %v", err)
	}
}

func TestWorldSetRoutesToChunk(t *testing.T) {
	w := NewEmpty()
	v := Solid(NewMaterial(Color{10, 20, 30, 255}, 255))
	cc, err := w.Set(17, 5, 3, v)
	if err != nil {
		t.Fatal(err)
	}
	if cc != (ChunkCoord{X: 1, Z: 0}) {
		t.Fatalf("Set returned chunk %+v", cc)
	}
	c, _ := w.Chunk(cc)
	got, _ := c.Get(1, 5, 3)
	if got != v {
		t.Fatalf("chunk cell = %+v", got)
	}
	if got, _ := w.Get(17, 5, 3); got != v {
		t.Fatalf("world Get = %+v", got)
	}
}

func TestReferencePattern(t *testing.T) {
	w := New()
	for _, cc := range w.Coords() {
		c, err := w.Chunk(cc)
		if err != nil {
			t.Fatal(err)
		}
		if n := c.SolidCount(); n != 16*3*3 {
			t.Fatalf("chunk %+v has %d solid voxels, want 144", cc, n)
		}
		for _, p := range [][3]int{{0, 0, 0}, {15, 2, 4}, {7, 1, 2}} {
			if v, _ := c.Get(p[0], p[1], p[2]); v.IsEmpty() {
				t.Errorf("chunk %+v cell %v should be solid", cc, p)
			}
		}
		for _, p := range [][3]int{{0, 0, 1}, {0, 3, 0}, {0, 0, 6}} {
			if v, _ := c.Get(p[0], p[1], p[2]); !v.IsEmpty() {
				t.Errorf("chunk %+v cell %v should be empty", cc, p)
			}
		}
	}
}

func TestCoordsOrder(t *testing.T) {
	want := []ChunkCoord{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	got := New().Coords()
	if len(got) != len(want) {
		t.Fatalf("len = %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Coords()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestChunkAndLocalNegative(t *testing.T) {
	cc, lc := ChunkAndLocal(-1, 0, -17)
	if cc != (ChunkCoord{X: -1, Z: -2}) || lc != (LocalCoord{X: 15, Y: 0, Z: 15}) {
		t.Fatalf("got %+v %+v", cc, lc)
	}
}

func TestParsePattern(t *testing.T) {
	cases := map[string]Pattern{"reference": PatternReference, "": PatternReference, "empty": PatternEmpty, "floor": PatternFloor}
	for name, want := range cases {
		got, ok := ParsePattern(name)
		if !ok || got != want {
			t.Errorf("ParsePattern(%q) = %v, %v; want %v", name, got, ok, want)
		}
	}
	if _, ok := ParsePattern("mountains"); ok {
		t.Error("unknown pattern should not parse")
	}
}
