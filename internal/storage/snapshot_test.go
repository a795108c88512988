package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"mini-vox/internal/world"
)

func TestSnapshotRoundTrip(t *testing.T) {
	w := world.New()
	odd := world.Solid(world.Material{Color: world.Color{9, 8, 7, 6}, Light: [world.FaceCount]uint8{1, 2, 3, 4, 5, 6}})
	if _, err := w.Set(31, 15, 31, odd); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Set(0, 0, 0, world.Empty()); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "nested", "world.vox.zst")
	if err := WriteSnapshot(path, w); err != nil {
		t.Fatal(err)
	}
	got, err := ReadSnapshot(path)
	if err != nil {
		t.Fatal(err)
	}

	for x := range world.SizeX {
		for y := range world.SizeY {
			for z := range world.SizeZ {
				a, _ := w.Get(x, y, z)
				b, _ := got.Get(x, y, z)
				if a != b {
					t.Fatalf("(%d,%d,%d): wrote %+v, read %+v", x, y, z, a, b)
				}
			}
		}
	}
	if Capture(got).Header != Capture(w).Header {
		t.Fatal("header changed across round trip")
	}
}

func TestCaptureCountsSolid(t *testing.T) {
	snap := Capture(world.New())
	if snap.Header.Solid != 4*144 {
		t.Fatalf("solid = %d, want %d", snap.Header.Solid, 4*144)
	}
	if len(snap.Chunks) != world.GridSizeX*world.GridSizeZ {
		t.Fatalf("chunks = %d", len(snap.Chunks))
	}
}

func TestRestoreRejectsTampering(t *testing.T) {
	snap := Capture(world.New())
	snap.Chunks[0].Cells[0].Color[0] ^= 0xff
	if _, err := Restore(snap); !errors.Is(err, ErrDigestMismatch) {
		t.Fatalf("err = %v, want ErrDigestMismatch", err)
	}

	path := filepath.Join(t.TempDir(), "bad.vox.zst")
	if err := writeSnapshot(path, snap); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadSnapshot(path); !errors.Is(err, ErrDigestMismatch) {
		t.Fatalf("ReadSnapshot err = %v", err)
	}
}

func TestRestoreRejectsVersionAndGrid(t *testing.T) {
	snap := Capture(world.NewEmpty())
	snap.Header.Version = 2
	if _, err := Restore(snap); err == nil {
		t.Fatal("accepted unknown version")
	}
	snap = Capture(world.NewEmpty())
	snap.Header.GridX = 3
	if _, err := Restore(snap); err == nil {
		t.Fatal("accepted mismatched grid")
	}
}

func TestReadSnapshotNotZstd(t *testing.T) {
	if _, err := ReadSnapshot(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("read of missing file succeeded")
	}
}
