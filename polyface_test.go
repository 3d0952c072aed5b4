package dxf_test

import (
	"errors"
	"testing"

	"github.com/LeiYangGH/dxf"
	"github.com/ungerik/go3d/float64/mat3"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestNewPolyfaceMesh_Errors(t *testing.T) {
	face := dxf.NewPolyfaceMeshFace
	tests := []struct {
		name     string
		vertexes []vec3.T
		faces    []*dxf.PolyfaceMeshFace
		want     error
	}{
		{"nil vertexes", nil, []*dxf.PolyfaceMeshFace{face(1)}, dxf.ErrNilInput},
		{"nil faces", square(), nil, dxf.ErrNilInput},
		{"nil face", square(), []*dxf.PolyfaceMeshFace{nil}, dxf.ErrNilInput},
		{"two vertexes", square()[:2], []*dxf.PolyfaceMeshFace{face(1, 2)}, dxf.ErrInvalidConstruction},
		{"no faces", square(), []*dxf.PolyfaceMeshFace{}, dxf.ErrInvalidConstruction},
		{"empty face", square(), []*dxf.PolyfaceMeshFace{face()}, dxf.ErrInvalidConstruction},
		{"five indexes", square(), []*dxf.PolyfaceMeshFace{face(1, 2, 3, 4, 1)}, dxf.ErrInvalidConstruction},
		{"index zero", square(), []*dxf.PolyfaceMeshFace{face(0, 1, 2)}, dxf.ErrInvalidConstruction},
		{"index too large", square(), []*dxf.PolyfaceMeshFace{face(1, 2, 5)}, dxf.ErrInvalidConstruction},
		{"negative index too large", square(), []*dxf.PolyfaceMeshFace{face(1, -5)}, dxf.ErrInvalidConstruction},
		{"min int16", square(), []*dxf.PolyfaceMeshFace{face(-32768)}, dxf.ErrInvalidConstruction},
		{"second face bad", square(), []*dxf.PolyfaceMeshFace{face(1, 2, 3), face(7)}, dxf.ErrInvalidConstruction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mesh, err := dxf.NewPolyfaceMesh(tt.vertexes, tt.faces, nil)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewPolyfaceMesh() error = %v, want %v", err, tt.want)
			}
			if mesh != nil {
				t.Errorf("NewPolyfaceMesh() returned a mesh along with error %v", err)
			}
		})
	}
}

func TestNewPolyfaceMesh_Fixtures(t *testing.T) {
	tests := []struct {
		name string
		want error
	}{
		{"square", nil},
		{"triangle", nil},
		{"mixed", nil},
		{"too-few-vertexes", dxf.ErrInvalidConstruction},
		{"no-faces", dxf.ErrInvalidConstruction},
		{"index-zero", dxf.ErrInvalidConstruction},
		{"index-out-of-range", dxf.ErrInvalidConstruction},
		{"five-indexes", dxf.ErrInvalidConstruction},
		{"missing-faces", dxf.ErrNilInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fixtureMesh(t, tt.name).Build()
			if !errors.Is(err, tt.want) {
				t.Errorf("Build() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewPolyfaceMesh_CopiesInput(t *testing.T) {
	vertexes := square()
	face := dxf.NewPolyfaceMeshFace(1, 2, 3)
	mesh, err := dxf.NewPolyfaceMesh(vertexes, []*dxf.PolyfaceMeshFace{face}, nil)
	if err != nil {
		t.Fatal(err)
	}

	vertexes[0] = vec3.T{9, 9, 9}
	if mesh.Vertexes()[0].Position != (vec3.T{}) {
		t.Errorf("mesh vertex follows caller slice: %v", mesh.Vertexes()[0].Position)
	}
	if mesh.Faces()[0] == face {
		t.Error("mesh shares the caller's face")
	}
}

func TestExplode_Square(t *testing.T) {
	mesh := loadMesh(t, "square")

	parts := mesh.Explode()
	if len(parts) != 1 {
		t.Fatalf("Explode() returned %d entities, want 1", len(parts))
	}
	face, ok := parts[0].(*dxf.Face3D)
	if !ok {
		t.Fatalf("Explode()[0] is %T, want *dxf.Face3D", parts[0])
	}

	want := square()
	got := []vec3.T{face.FirstVertex, face.SecondVertex, face.ThirdVertex, face.FourthVertex}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, got[i], want[i])
		}
	}
	if face.EdgeFlags != dxf.NoneEdges {
		t.Errorf("EdgeFlags = %v, want None", face.EdgeFlags)
	}
	if face.IsTriangle() {
		t.Error("quad reported as triangle")
	}
}

func TestExplode_Triangle(t *testing.T) {
	mesh := loadMesh(t, "triangle")

	face := mesh.Explode()[0].(*dxf.Face3D)
	if face.FirstVertex != (vec3.T{0, 0, 0}) {
		t.Errorf("FirstVertex = %v", face.FirstVertex)
	}
	if face.SecondVertex != (vec3.T{1, 0, 0}) {
		t.Errorf("SecondVertex = %v; a negative index must not move the vertex", face.SecondVertex)
	}
	if face.FourthVertex != face.ThirdVertex {
		t.Errorf("FourthVertex = %v, want ThirdVertex %v", face.FourthVertex, face.ThirdVertex)
	}
	if !face.EdgeFlags.Has(dxf.SecondEdge) {
		t.Errorf("EdgeFlags = %v, want Second set", face.EdgeFlags)
	}
	if face.EdgeFlags.Has(dxf.ThirdEdge) {
		t.Errorf("EdgeFlags = %v, want Third unset", face.EdgeFlags)
	}
	if !face.IsTriangle() {
		t.Error("IsTriangle() = false")
	}
}

func TestExplode_Mixed(t *testing.T) {
	mesh := loadMesh(t, "mixed")

	parts := mesh.Explode()
	if len(parts) != len(mesh.Faces()) {
		t.Fatalf("Explode() returned %d entities for %d faces", len(parts), len(mesh.Faces()))
	}

	wantTypes := []dxf.EntityType{dxf.PointEntity, dxf.LineEntity, dxf.Face3DEntity, dxf.Face3DEntity}
	for i, p := range parts {
		if p.Type() != wantTypes[i] {
			t.Errorf("part %d type = %v, want %v", i, p.Type(), wantTypes[i])
		}
	}

	if pt := parts[0].(*dxf.Point); pt.Position != (vec3.T{0, 2, 1}) {
		t.Errorf("point = %v", pt.Position)
	}
	if ln := parts[1].(*dxf.Line); ln.StartPoint != (vec3.T{0, 0, 0}) || ln.EndPoint != (vec3.T{2, 0, 0}) {
		t.Errorf("line = %v -> %v", ln.StartPoint, ln.EndPoint)
	}

	// [1, 2, -3] repeats -3 as the fourth index
	if got, want := parts[2].(*dxf.Face3D).EdgeFlags, dxf.ThirdEdge|dxf.FourthEdge; got != want {
		t.Errorf("triangle flags = %v, want %v", got, want)
	}
	if got, want := parts[3].(*dxf.Face3D).EdgeFlags, dxf.FirstEdge|dxf.FourthEdge; got != want {
		t.Errorf("quad flags = %v, want %v", got, want)
	}
}

func TestExplode_AttributesAreCopies(t *testing.T) {
	mesh := loadMesh(t, "mixed")
	mesh.Attributes().XData.Add(dxf.NewXData("APP", dxf.StringRecord("mesh")))

	parts := mesh.Explode()
	seen := map[*dxf.Attributes]bool{mesh.Attributes(): true}
	for i, p := range parts {
		attrs := p.Attributes()
		if seen[attrs] {
			t.Fatalf("part %d reuses an attribute set", i)
		}
		seen[attrs] = true

		if attrs.Layer == mesh.Attributes().Layer {
			t.Errorf("part %d shares the mesh layer", i)
		}
		if attrs.Layer.Name != "annotations" || attrs.Color.Index() != 3 {
			t.Errorf("part %d attributes = layer %q color %v", i, attrs.Layer.Name, attrs.Color)
		}
		if p.Handle() != 0 {
			t.Errorf("part %d has handle %v", i, p.Handle())
		}
	}

	parts[0].Attributes().Layer.Name = "changed"
	parts[0].Attributes().XData["APP"].Records[0].String = "changed"
	if mesh.Attributes().Layer.Name != "annotations" {
		t.Error("mutating a part's layer changed the mesh")
	}
	if mesh.Attributes().XData["APP"].Records[0].String != "mesh" {
		t.Error("mutating a part's xdata changed the mesh")
	}
}

func TestTransformBy_Identity(t *testing.T) {
	mesh := loadMesh(t, "mixed")
	mesh.Attributes().SetNormal(vec3.T{1, 1, 1})
	normal := mesh.Attributes().Normal

	mesh.TransformBy(&mat3.Ident, &vec3.Zero)

	for i, v := range mesh.Vertexes() {
		want := loadMesh(t, "mixed").Vertexes()[i].Position
		if v.Position != want {
			t.Errorf("vertex %d = %v, want %v", i, v.Position, want)
		}
	}
	if !vecNear(mesh.Attributes().Normal, normal) {
		t.Errorf("normal = %v, want %v", mesh.Attributes().Normal, normal)
	}
}

func TestTransformBy_RoundTrip(t *testing.T) {
	linear := mat3.T{
		vec3.T{2, 0.5, 0},
		vec3.T{-1, 3, 0.25},
		vec3.T{0, 1, 4},
	}
	translation := vec3.T{10, -5, 2.5}

	inverse, inverseTranslation, err := dxf.InverseTransform(&linear, &translation)
	if err != nil {
		t.Fatal(err)
	}

	mesh := loadMesh(t, "mixed")
	original := loadMesh(t, "mixed")

	mesh.TransformBy(&linear, &translation)
	if vecNear(mesh.Vertexes()[1].Position, original.Vertexes()[1].Position) {
		t.Fatal("transform did not move the vertexes")
	}
	mesh.TransformBy(&inverse, &inverseTranslation)

	for i, v := range mesh.Vertexes() {
		if want := original.Vertexes()[i].Position; !vecNear(v.Position, want) {
			t.Errorf("vertex %d = %v, want %v", i, v.Position, want)
		}
	}
	if !vecNear(mesh.Attributes().Normal, vec3.UnitZ) {
		t.Errorf("normal = %v, want +Z", mesh.Attributes().Normal)
	}
}

func TestTransformBy_Normal(t *testing.T) {
	tests := []struct {
		name   string
		linear mat3.T
		want   vec3.T
	}{
		// columns are the images of X, Y and Z
		{"rotate about X", mat3.T{{1, 0, 0}, {0, 0, 1}, {0, -1, 0}}, vec3.T{0, -1, 0}},
		{"uniform scale", mat3.T{{3, 0, 0}, {0, 3, 0}, {0, 0, 3}}, vec3.T{0, 0, 3}},
		{"collapsed Z keeps normal", mat3.T{{1, 0, 0}, {0, 1, 0}, {0, 0, 0}}, vec3.UnitZ},
		{"zero matrix keeps normal", mat3.T{}, vec3.UnitZ},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mesh := loadMesh(t, "square")
			mesh.TransformBy(&tt.linear, &vec3.Zero)
			if got := mesh.Attributes().Normal; !vecNear(got, tt.want) {
				t.Errorf("normal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransformBy_IdentityKeepsNonUnitNormal(t *testing.T) {
	mesh := loadMesh(t, "square")
	mesh.Attributes().Normal = vec3.T{0, 0, 2}

	mesh.TransformBy(&mat3.Ident, &vec3.Zero)

	if got := mesh.Attributes().Normal; got != (vec3.T{0, 0, 2}) {
		t.Errorf("normal = %v, want [0 0 2]", got)
	}
}

func TestVertexes_SliceIsCopy(t *testing.T) {
	mesh := loadMesh(t, "square")
	other := loadMesh(t, "triangle")
	want := mesh.Vertexes()[0].Position

	vertexes := mesh.Vertexes()
	vertexes[0] = other.Vertexes()[0]
	vertexes[1] = nil
	faces := mesh.Faces()
	faces[0] = nil

	other.Vertexes()[0].Position = vec3.T{9, 9, 9}
	if got := mesh.Vertexes()[0].Position; got != want {
		t.Errorf("vertex 0 = %v, want %v", got, want)
	}
	if mesh.Vertexes()[1] == nil || mesh.Faces()[0] == nil {
		t.Fatal("writing a returned slice changed the mesh")
	}
	if n := len(mesh.Explode()); n != len(mesh.Faces()) {
		t.Errorf("Explode() returned %d entities, want %d", n, len(mesh.Faces()))
	}
}

func TestNewPolyfaceMeshFaceFromEdges(t *testing.T) {
	tests := []struct {
		name  string
		edges []dxf.FaceEdge
		want  []int16
	}{
		{"visible", []dxf.FaceEdge{{Vertex: 1, Visible: true}, {Vertex: 2, Visible: true}}, []int16{1, 2}},
		{"hidden", []dxf.FaceEdge{{Vertex: 1, Visible: true}, {Vertex: 2, Visible: false}}, []int16{1, -2}},
		{"negative vertex hidden", []dxf.FaceEdge{{Vertex: -2, Visible: false}}, []int16{-2}},
		{"negative vertex visible", []dxf.FaceEdge{{Vertex: -3, Visible: true}}, []int16{3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dxf.NewPolyfaceMeshFaceFromEdges(tt.edges...).VertexIndexes()
			if len(got) != len(tt.want) {
				t.Fatalf("indexes = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("indexes = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestTransformBy_LeavesFaces(t *testing.T) {
	mesh := loadMesh(t, "mixed")
	before := mesh.Faces()[3].VertexIndexes()

	translation := vec3.T{1, 2, 3}
	mesh.TransformBy(&mat3.Ident, &translation)

	after := mesh.Faces()[3].VertexIndexes()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("face index %d changed from %d to %d", i, before[i], after[i])
		}
	}
	if got, want := mesh.Vertexes()[2].Position, (vec3.T{3, 4, 3}); got != want {
		t.Errorf("vertex 2 = %v, want %v", got, want)
	}
}

func TestClone_Independent(t *testing.T) {
	src := loadMesh(t, "mixed")
	src.Attributes().XData.Add(dxf.NewXData("APP", dxf.BinaryRecord([]byte{1, 2, 3})))
	src.AssignHandles(1)

	clone := src.Clone().(*dxf.PolyfaceMesh)

	if len(clone.Vertexes()) != len(src.Vertexes()) || len(clone.Faces()) != len(src.Faces()) {
		t.Fatalf("clone has %d vertexes and %d faces, want %d and %d",
			len(clone.Vertexes()), len(clone.Faces()), len(src.Vertexes()), len(src.Faces()))
	}
	for i := range src.Vertexes() {
		if clone.Vertexes()[i] == src.Vertexes()[i] {
			t.Errorf("vertex %d shared", i)
		}
		if clone.Vertexes()[i].Position != src.Vertexes()[i].Position {
			t.Errorf("vertex %d = %v, want %v", i, clone.Vertexes()[i].Position, src.Vertexes()[i].Position)
		}
	}
	for i := range src.Faces() {
		got, want := clone.Faces()[i].VertexIndexes(), src.Faces()[i].VertexIndexes()
		if len(got) != len(want) {
			t.Fatalf("face %d = %v, want %v", i, got, want)
		}
		for k := range want {
			if got[k] != want[k] {
				t.Errorf("face %d = %v, want %v", i, got, want)
			}
		}
	}
	if clone.EndSequence() == src.EndSequence() {
		t.Error("end sequence shared")
	}

	if clone.Handle() != 0 || clone.EndSequence().Handle() != 0 || clone.Vertexes()[0].Handle() != 0 || clone.Faces()[0].Handle() != 0 {
		t.Error("clone carries handles")
	}

	clone.Vertexes()[0].Position = vec3.T{7, 7, 7}
	if err := clone.SetFace(0, 2); err != nil {
		t.Fatal(err)
	}
	clone.Attributes().Layer.Name = "other"
	clone.Attributes().Color = dxf.ByBlockColor()
	clone.Attributes().XData["APP"].Records[0].Binary[0] = 9

	if src.Vertexes()[0].Position != (vec3.T{0, 0, 0}) {
		t.Error("source vertex changed")
	}
	if got := src.Faces()[0].VertexIndexes(); len(got) != 1 || got[0] != 4 {
		t.Errorf("source face changed to %v", got)
	}
	if src.Attributes().Layer.Name != "annotations" || src.Attributes().Color.Index() != 3 {
		t.Error("source attributes changed")
	}
	if src.Attributes().XData["APP"].Records[0].Binary[0] != 1 {
		t.Error("source xdata changed")
	}

	src.Vertexes()[1].Position = vec3.T{5, 5, 5}
	if clone.Vertexes()[1].Position == src.Vertexes()[1].Position {
		t.Error("clone vertex follows source")
	}
}

func TestAssignHandles(t *testing.T) {
	mesh := loadMesh(t, "square")
	const seed = dxf.Handle(0x20)

	next := mesh.AssignHandles(seed)

	v, f := len(mesh.Vertexes()), len(mesh.Faces())
	if want := seed + dxf.Handle(v+f+2); next != want {
		t.Errorf("AssignHandles() = %v, want %v", next, want)
	}
	if mesh.EndSequence().Handle() != seed {
		t.Errorf("end sequence handle = %v, want %v", mesh.EndSequence().Handle(), seed)
	}
	for i, vertex := range mesh.Vertexes() {
		if want := seed + 1 + dxf.Handle(i); vertex.Handle() != want {
			t.Errorf("vertex %d handle = %v, want %v", i, vertex.Handle(), want)
		}
	}
	if want := seed + 1 + dxf.Handle(v); mesh.Faces()[0].Handle() != want {
		t.Errorf("face handle = %v, want %v", mesh.Faces()[0].Handle(), want)
	}
	if want := next - 1; mesh.Handle() != want {
		t.Errorf("mesh handle = %v, want %v", mesh.Handle(), want)
	}
	if got := loadMesh(t, "square").PendingHandles(); got != uint64(v+f+2) {
		t.Errorf("PendingHandles() = %d, want %d", got, v+f+2)
	}
	if got := mesh.PendingHandles(); got != 0 {
		t.Errorf("PendingHandles() after assignment = %d, want 0", got)
	}
}

func TestPendingHandles_Partial(t *testing.T) {
	mesh := loadMesh(t, "square")
	mesh.AssignHandles(1)

	added := mesh.Clone().(*dxf.PolyfaceMesh)
	v, f := len(added.Vertexes()), len(added.Faces())
	if got := added.PendingHandles(); got != uint64(v+f+2) {
		t.Errorf("clone PendingHandles() = %d, want %d", got, v+f+2)
	}
	if next := added.AssignHandles(50); added.PendingHandles() != 0 || next != dxf.Handle(50+v+f+2) {
		t.Errorf("AssignHandles(50) = %v, %d pending", next, added.PendingHandles())
	}
}

func TestAssignHandles_Fixed(t *testing.T) {
	mesh := loadMesh(t, "square")
	mesh.AssignHandles(1)
	first := mesh.Handle()

	if next := mesh.AssignHandles(100); next != 100 {
		t.Errorf("second AssignHandles() = %v, want 100", next)
	}
	if mesh.Handle() != first {
		t.Errorf("handle changed from %v to %v", first, mesh.Handle())
	}
}

func TestSetFace(t *testing.T) {
	mesh := loadMesh(t, "square")

	if err := mesh.SetFace(0, 1, 5); !errors.Is(err, dxf.ErrInvalidConstruction) {
		t.Errorf("SetFace(out of range) error = %v", err)
	}
	if err := mesh.SetFace(3, 1); !errors.Is(err, dxf.ErrInvalidConstruction) {
		t.Errorf("SetFace(bad face number) error = %v", err)
	}
	if err := mesh.SetFace(0, -1, 2); err != nil {
		t.Fatalf("SetFace() error = %v", err)
	}
	if _, ok := mesh.Explode()[0].(*dxf.Line); !ok {
		t.Error("face was not replaced by a two index face")
	}
}

func TestFaceEdges(t *testing.T) {
	face := dxf.NewPolyfaceMeshFaceFromEdges(
		dxf.FaceEdge{Vertex: 1, Visible: true},
		dxf.FaceEdge{Vertex: 2, Visible: false},
		dxf.FaceEdge{Vertex: 3, Visible: true},
	)

	got := face.VertexIndexes()
	want := []int16{1, -2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("VertexIndexes() = %v, want %v", got, want)
		}
	}

	for i, e := range face.Edges() {
		if e.Vertex != int16(i+1) || e.Visible != (i != 1) {
			t.Errorf("edge %d = %+v", i, e)
		}
	}
}

func TestPolyfaceMesh_BoundingBox(t *testing.T) {
	bb := loadMesh(t, "mixed").BoundingBox()
	if bb.Min != (vec3.T{0, 0, 0}) || bb.Max != (vec3.T{2, 2, 1}) {
		t.Errorf("BoundingBox() = %v .. %v", bb.Min, bb.Max)
	}
}
