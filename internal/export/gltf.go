package export

import (
	"errors"
	"fmt"

	"mini-vox/internal/meshing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ErrNothingToExport is returned when every chunk mesh is empty.
var ErrNothingToExport = errors.New("no geometry to export")

// Document builds a glTF document with one mesh and one node per non-empty
// chunk mesh. Vertices are already in world space, so nodes carry no
// transform.
func Document(meshes []meshing.ChunkMesh) (*gltf.Document, error) {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "mini-vox chunk mesher"

	pbr := &gltf.PBRMetallicRoughness{
		BaseColorFactor: &[4]float32{1, 1, 1, 1},
		MetallicFactor:  gltf.Float(0),
		RoughnessFactor: gltf.Float(1),
	}
	doc.Materials = []*gltf.Material{{Name: "voxel", PBRMetallicRoughness: pbr, AlphaMode: gltf.AlphaOpaque}}

	for _, cm := range meshes {
		if cm.Mesh.IsEmpty() {
			continue
		}
		positions, normals, colors, indices := attributes(cm.Mesh)

		posAccessor := modeler.WritePosition(doc, positions)
		normalAccessor := modeler.WriteNormal(doc, normals)
		colorAccessor := modeler.WriteColor(doc, colors)
		indicesAccessor := modeler.WriteIndices(doc, indices)

		prim := &gltf.Primitive{
			Attributes: map[string]uint32{
				gltf.POSITION: uint32(posAccessor),
				gltf.NORMAL:   uint32(normalAccessor),
				gltf.COLOR_0:  uint32(colorAccessor),
			},
			Indices:  gltf.Index(uint32(indicesAccessor)),
			Material: gltf.Index(0),
		}

		name := fmt.Sprintf("chunk_%d_%d", cm.Coord.X, cm.Coord.Z)
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{Name: name, Primitives: []*gltf.Primitive{prim}})
		doc.Nodes = append(doc.Nodes, &gltf.Node{Name: name, Mesh: gltf.Index(uint32(len(doc.Meshes) - 1))})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	}

	if len(doc.Meshes) == 0 {
		return nil, ErrNothingToExport
	}
	return doc, nil
}

// WriteGLB writes meshes as a binary glTF file.
func WriteGLB(path string, meshes []meshing.ChunkMesh) error {
	doc, err := Document(meshes)
	if err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// attributes flattens a mesh into glTF vertex streams. Every quad gets the
// flat normal of its first triangle.
func attributes(m meshing.Mesh) (positions, normals [][3]float32, colors [][4]float32, indices []uint32) {
	positions = make([][3]float32, len(m.Vertices))
	normals = make([][3]float32, len(m.Vertices))
	colors = make([][4]float32, len(m.Vertices))
	for i, v := range m.Vertices {
		positions[i] = v.Position
		for c := range 4 {
			colors[i][c] = float32(v.Color[c]) / 255
		}
	}
	for q := 0; q+3 < len(m.Vertices); q += 4 {
		p0 := m.Vertices[q].Position
		n := m.Vertices[q+1].Position.Sub(p0).Cross(m.Vertices[q+2].Position.Sub(p0)).Normalize()
		for k := range 4 {
			normals[q+k] = n
		}
	}
	indices = make([]uint32, len(m.Indices))
	for i, idx := range m.Indices {
		indices[i] = uint32(idx)
	}
	return positions, normals, colors, indices
}
