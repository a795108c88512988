package meshing

import (
	"testing"
	"unsafe"

	"mini-vox/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func TestVertexLayout(t *testing.T) {
	if got := unsafe.Sizeof(Vertex{}); got != VertexStride {
		t.Fatalf("sizeof(Vertex) = %d, want %d", got, VertexStride)
	}
	if got := unsafe.Offsetof(Vertex{}.Color); got != ColorOffset {
		t.Fatalf("color offset = %d, want %d", got, ColorOffset)
	}
}

func TestFaceIndices(t *testing.T) {
	cases := []struct {
		k    int
		want [6]uint16
	}{
		{0, [6]uint16{0, 1, 2, 2, 1, 3}},
		{1, [6]uint16{4, 5, 6, 6, 5, 7}},
		{2, [6]uint16{8, 9, 10, 10, 9, 11}},
		{MaxVertices/4 - 1, [6]uint16{65532, 65533, 65534, 65534, 65533, 65535}},
	}
	for _, tc := range cases {
		if got := FaceIndices(tc.k); got != tc.want {
			t.Errorf("FaceIndices(%d) = %v, want %v", tc.k, got, tc.want)
		}
	}
}

func TestFacesLieOnTheirPlane(t *testing.T) {
	x, y, z := 3, 4, 5
	corner := mgl32.Vec3{3, 4, 5}
	for f := world.Face(0); f < world.FaceCount; f++ {
		quad := EmitFace(f, x, y, z, world.White, 255, LightLiteral)
		n := Normal(f)
		// plane offset: 1 for positive normals, 0 for negative ones
		var plane float32
		axis := 0
		for i := range 3 {
			if n[i] != 0 {
				axis = i
				if n[i] > 0 {
					plane = 1
				}
			}
		}
		seen := map[mgl32.Vec3]bool{}
		for _, v := range quad {
			rel := v.Position.Sub(corner)
			if rel[axis] != plane {
				t.Errorf("%v: vertex %v off face plane", f, v.Position)
			}
			for i := range 3 {
				if rel[i] != 0 && rel[i] != 1 {
					t.Errorf("%v: vertex %v not a unit-cube corner", f, v.Position)
				}
			}
			seen[v.Position] = true
		}
		if len(seen) != 4 {
			t.Errorf("%v: %d distinct corners, want 4", f, len(seen))
		}
	}
}

func TestTriangleNormalsPointOutward(t *testing.T) {
	for f := world.Face(0); f < world.FaceCount; f++ {
		quad := EmitFace(f, 0, 0, 0, world.White, 255, LightLiteral)
		idx := FaceIndices(0)
		for tri := 0; tri < 6; tri += 3 {
			p0 := quad[idx[tri]].Position
			p1 := quad[idx[tri+1]].Position
			p2 := quad[idx[tri+2]].Position
			n := p1.Sub(p0).Cross(p2.Sub(p0))
			if !n.ApproxEqual(Normal(f)) {
				t.Errorf("%v triangle %d normal = %v, want %v", f, tri/3, n, Normal(f))
			}
		}
	}
}

// frontFacing projects a triangle with mvp and reports whether it is
// counter-clockwise on screen, which is what survives glCullFace(GL_BACK).
func frontFacing(mvp mgl32.Mat4, p0, p1, p2 mgl32.Vec3) bool {
	ndc := func(p mgl32.Vec3) mgl32.Vec2 {
		clip := mvp.Mul4x1(p.Vec4(1))
		return mgl32.Vec2{clip.X() / clip.W(), clip.Y() / clip.W()}
	}
	a, b, c := ndc(p0), ndc(p1), ndc(p2)
	area := (b.X()-a.X())*(c.Y()-a.Y()) - (c.X()-a.X())*(b.Y()-a.Y())
	return area > 0
}

func TestWindingVisibleFromOutsideOnly(t *testing.T) {
	c := world.NewChunk()
	if err := c.Set(0, 0, 0, world.Solid(world.NewMaterial(world.White, 255))); err != nil {
		t.Fatal(err)
	}
	mesh, err := BuildChunkMesh(world.ChunkCoord{}, c)
	if err != nil {
		t.Fatal(err)
	}
	center := mgl32.Vec3{0.5, 0.5, 0.5}
	proj := mgl32.Perspective(mgl32.DegToRad(60), 1, 0.1, 100)

	for view := world.Face(0); view < world.FaceCount; view++ {
		n := Normal(view)
		eye := center.Add(n.Mul(3))
		up := mgl32.Vec3{0, 1, 0}
		if n.Y() != 0 {
			up = mgl32.Vec3{0, 0, -1}
		}
		mvp := proj.Mul4(mgl32.LookAtV(eye, center, up))

		visible := map[int]int{}
		for i := 0; i < len(mesh.Indices); i += 3 {
			p0 := mesh.Vertices[mesh.Indices[i]].Position
			p1 := mesh.Vertices[mesh.Indices[i+1]].Position
			p2 := mesh.Vertices[mesh.Indices[i+2]].Position
			if frontFacing(mvp, p0, p1, p2) {
				visible[int(mesh.Indices[i])/4]++
			}
		}
		if len(visible) != 1 {
			t.Fatalf("from %v: %d quads visible, want 1 (%v)", view, len(visible), visible)
		}
		for quad, tris := range visible {
			if faceOrder[quad] != view {
				t.Errorf("from %v: visible quad is %v", view, faceOrder[quad])
			}
			if tris != 2 {
				t.Errorf("from %v: %d triangles visible, want 2", view, tris)
			}
		}
	}

	// From inside the voxel every triangle faces away.
	for i := 0; i < len(mesh.Indices); i += 3 {
		p0 := mesh.Vertices[mesh.Indices[i]].Position
		p1 := mesh.Vertices[mesh.Indices[i+1]].Position
		p2 := mesh.Vertices[mesh.Indices[i+2]].Position
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		if n.Dot(center.Sub(p0)) >= 0 {
			t.Errorf("triangle %d visible from the voxel interior", i/3)
		}
	}
}

func TestLiteralAttenuation(t *testing.T) {
	base := world.Color{200, 100, 50, 255}

	// Fully lit: the literal formula matches the unattenuated color.
	if got := FaceUp(0, 0, 0, base, 255)[0].Color; got != base {
		t.Fatalf("light 255: got %v, want %v", got, base)
	}

	// Known defect: light/255 is integer division, so every level below 255
	// produces black instead of a dimmed color.
	for _, light := range []uint8{0, 1, 128, 254} {
		got := FaceUp(0, 0, 0, base, light)[0].Color
		if got != (world.Color{}) {
			t.Errorf("light %d: got %v, want the literal result {0 0 0 0}", light, got)
		}
	}
}

func TestLinearAttenuation(t *testing.T) {
	base := world.Color{200, 100, 50, 255}
	cases := []struct {
		light uint8
		want  world.Color
	}{
		{255, base},
		{0, world.Color{}},
		{128, world.Color{100, 50, 25, 128}},
	}
	for _, tc := range cases {
		if got := LightLinear.Attenuate(base, tc.light); got != tc.want {
			t.Errorf("linear light %d = %v, want %v", tc.light, got, tc.want)
		}
	}
}

func TestEmittersUseOwnLight(t *testing.T) {
	m := world.Material{Color: world.White}
	m.Light[world.FaceUp] = 255
	c := world.NewChunk()
	_ = c.Set(0, 0, 0, world.Solid(m))
	mesh, err := BuildChunkMesh(world.ChunkCoord{}, c)
	if err != nil {
		t.Fatal(err)
	}
	for q, f := range faceOrder {
		got := mesh.Vertices[q*4].Color
		lit := got == world.White
		if lit != (f == world.FaceUp) {
			t.Errorf("face %v color %v", f, got)
		}
	}
}

func TestParseLightModel(t *testing.T) {
	for _, s := range []string{"literal", "linear", ""} {
		if _, ok := ParseLightModel(s); !ok {
			t.Errorf("ParseLightModel(%q) rejected", s)
		}
	}
	if _, ok := ParseLightModel("gamma"); ok {
		t.Error("ParseLightModel accepted unknown model")
	}
}
