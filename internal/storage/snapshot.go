package storage

import (
	"bufio"
	"encoding/binary"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"mini-vox/internal/world"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
)

const SnapshotVersion = 1

// ErrDigestMismatch is returned when a snapshot's cells do not hash to the
// digest recorded in its header.
var ErrDigestMismatch = errors.New("snapshot digest mismatch")

// HeaderV1 is written as a JSON line ahead of the gob body so the file can
// be identified with zstdcat | head -1.
type HeaderV1 struct {
	Version int    `json:"version"`
	GridX   int    `json:"grid_x"`
	GridZ   int    `json:"grid_z"`
	Solid   int    `json:"solid"`
	Digest  uint64 `json:"digest"`
}

// CellV1 is one solid voxel; empty voxels are not stored.
type CellV1 struct {
	Index uint16
	Color [4]uint8
	Light [world.FaceCount]uint8
}

type ChunkV1 struct {
	CX    int
	CZ    int
	Cells []CellV1
}

type SnapshotV1 struct {
	Header HeaderV1
	Chunks []ChunkV1
}

// Capture records every solid voxel of w.
func Capture(w *world.World) SnapshotV1 {
	snap := SnapshotV1{Header: HeaderV1{Version: SnapshotVersion, GridX: world.GridSizeX, GridZ: world.GridSizeZ}}
	for _, cc := range w.Coords() {
		c, _ := w.Chunk(cc)
		ch := ChunkV1{CX: cc.X, CZ: cc.Z}
		for i := range world.ChunkVolume {
			mat, ok := c.At(i).Material()
			if !ok {
				continue
			}
			ch.Cells = append(ch.Cells, CellV1{Index: uint16(i), Color: mat.Color, Light: mat.Light})
		}
		snap.Header.Solid += len(ch.Cells)
		snap.Chunks = append(snap.Chunks, ch)
	}
	snap.Header.Digest = digest(snap.Chunks)
	return snap
}

// Restore builds a world from snap. Missing chunks stay empty.
func Restore(snap SnapshotV1) (*world.World, error) {
	if snap.Header.Version != SnapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", snap.Header.Version)
	}
	if snap.Header.GridX != world.GridSizeX || snap.Header.GridZ != world.GridSizeZ {
		return nil, fmt.Errorf("snapshot grid %dx%d does not match world %dx%d",
			snap.Header.GridX, snap.Header.GridZ, world.GridSizeX, world.GridSizeZ)
	}
	if d := digest(snap.Chunks); d != snap.Header.Digest {
		return nil, fmt.Errorf("%w: header %016x, cells %016x", ErrDigestMismatch, snap.Header.Digest, d)
	}

	w := world.NewEmpty()
	for _, ch := range snap.Chunks {
		c, err := w.Chunk(world.ChunkCoord{X: ch.CX, Z: ch.CZ})
		if err != nil {
			return nil, fmt.Errorf("snapshot chunk: %w", err)
		}
		for _, cell := range ch.Cells {
			if int(cell.Index) >= world.ChunkVolume {
				return nil, fmt.Errorf("snapshot chunk (%d, %d): cell index %d out of range", ch.CX, ch.CZ, cell.Index)
			}
			x, y, z := world.LocalFromIndex(int(cell.Index))
			v := world.Solid(world.Material{Color: cell.Color, Light: cell.Light})
			if err := c.Set(x, y, z, v); err != nil {
				return nil, err
			}
		}
	}
	return w, nil
}

func digest(chunks []ChunkV1) uint64 {
	d := xxhash.New()
	var b [16]byte
	for _, ch := range chunks {
		binary.LittleEndian.PutUint32(b[0:], uint32(ch.CX))
		binary.LittleEndian.PutUint32(b[4:], uint32(ch.CZ))
		binary.LittleEndian.PutUint32(b[8:], uint32(len(ch.Cells)))
		_, _ = d.Write(b[:12])
		for _, cell := range ch.Cells {
			binary.LittleEndian.PutUint16(b[0:], cell.Index)
			copy(b[2:6], cell.Color[:])
			copy(b[6:12], cell.Light[:])
			_, _ = d.Write(b[:12])
		}
	}
	return d.Sum64()
}

// WriteSnapshot captures w and writes it zstd-compressed to path.
func WriteSnapshot(path string, w *world.World) error {
	return writeSnapshot(path, Capture(w))
}

func writeSnapshot(path string, snap SnapshotV1) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}

	bw := bufio.NewWriterSize(enc, 64*1024)
	hb, _ := json.Marshal(snap.Header)
	if _, err := bw.Write(hb); err != nil {
		enc.Close()
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		enc.Close()
		return err
	}
	if err := gob.NewEncoder(bw).Encode(&snap); err != nil {
		enc.Close()
		return fmt.Errorf("gob encode: %w", err)
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return f.Sync()
}

// ReadSnapshot reads a snapshot written by WriteSnapshot and restores it.
func ReadSnapshot(path string) (*world.World, error) {
	snap, err := readSnapshot(path)
	if err != nil {
		return nil, err
	}
	return Restore(snap)
}

func readSnapshot(path string) (SnapshotV1, error) {
	var snap SnapshotV1
	f, err := os.Open(path)
	if err != nil {
		return snap, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return snap, err
	}
	defer dec.Close()

	br := bufio.NewReaderSize(dec, 64*1024)

	// The header line is repeated inside the gob body.
	if _, err := br.ReadBytes('\n'); err != nil {
		return snap, fmt.Errorf("read header: %w", err)
	}

	if err := gob.NewDecoder(br).Decode(&snap); err != nil {
		return snap, fmt.Errorf("gob decode: %w", err)
	}
	return snap, nil
}
