package dxf

import (
	"fmt"

	"github.com/LeiYangGH/dxf/bbox"
	"github.com/ungerik/go3d/float64/mat3"
	"github.com/ungerik/go3d/float64/vec3"
)

const (
	minPolyfaceVertexes = 3
	minPolyfaceFaces    = 1
	maxFaceIndexes      = 4
)

type PolyfaceMeshVertex struct {
	DxfObject
	Position vec3.T
}

// PolyfaceMeshFace references between one and four vertexes of its mesh by
// 1-based index. A negative index hides the edge starting at that vertex.
type PolyfaceMeshFace struct {
	DxfObject
	indexes []int16
}

// FaceEdge is the unsigned form of a face index.
type FaceEdge struct {
	Vertex  int16
	Visible bool
}

func NewPolyfaceMeshFace(indexes ...int16) *PolyfaceMeshFace {
	return &PolyfaceMeshFace{indexes: append([]int16(nil), indexes...)}
}

// NewPolyfaceMeshFaceFromEdges builds a face from edges. Only Visible
// decides the sign; the sign of Vertex is ignored.
func NewPolyfaceMeshFaceFromEdges(edges ...FaceEdge) *PolyfaceMeshFace {
	indexes := make([]int16, len(edges))
	for i, e := range edges {
		indexes[i] = abs16(e.Vertex)
		if !e.Visible {
			indexes[i] = -indexes[i]
		}
	}
	return &PolyfaceMeshFace{indexes: indexes}
}

// VertexIndexes returns a copy of the signed indexes.
func (this *PolyfaceMeshFace) VertexIndexes() []int16 {
	return append([]int16(nil), this.indexes...)
}

func (this *PolyfaceMeshFace) Edges() []FaceEdge {
	edges := make([]FaceEdge, len(this.indexes))
	for i, index := range this.indexes {
		edges[i] = FaceEdge{Vertex: abs16(index), Visible: index > 0}
	}
	return edges
}

func (this *PolyfaceMeshFace) clone() *PolyfaceMeshFace {
	return NewPolyfaceMeshFace(this.indexes...)
}

// EndSequence closes the vertex and face records of a mesh. It holds no
// geometry, only a handle.
type EndSequence struct {
	DxfObject
}

// PolyfaceMesh is a mesh of points, lines, triangles and quads sharing an
// indexed vertex list.
type PolyfaceMesh struct {
	entityObject
	vertexes    []*PolyfaceMeshVertex
	faces       []*PolyfaceMeshFace
	endSequence *EndSequence
}

// NewPolyfaceMesh builds a mesh from vertex positions and faces. The faces
// are copied; the caller keeps ownership of the values passed in.
//
// It fails with ErrNilInput when vertexes or faces is nil, and with
// ErrInvalidConstruction when there are fewer than three vertexes, no
// faces, a face with other than one to four indexes, or an index whose
// absolute value is not a valid vertex number.
func NewPolyfaceMesh(vertexes []vec3.T, faces []*PolyfaceMeshFace, attributes *Attributes) (*PolyfaceMesh, error) {
	if vertexes == nil {
		return nil, fmt.Errorf("%w: vertexes", ErrNilInput)
	}
	if faces == nil {
		return nil, fmt.Errorf("%w: faces", ErrNilInput)
	}
	if err := checkPolyface(len(vertexes), faces); err != nil {
		return nil, err
	}

	this := &PolyfaceMesh{
		entityObject: newEntityObject(attributes),
		vertexes:     make([]*PolyfaceMeshVertex, len(vertexes)),
		faces:        make([]*PolyfaceMeshFace, len(faces)),
		endSequence:  &EndSequence{},
	}
	for i, p := range vertexes {
		this.vertexes[i] = &PolyfaceMeshVertex{Position: p}
	}
	for i, f := range faces {
		this.faces[i] = f.clone()
	}

	return this, nil
}

func checkPolyface(numVertexes int, faces []*PolyfaceMeshFace) error {
	if numVertexes < minPolyfaceVertexes {
		return fmt.Errorf("%w: polyface mesh needs at least %d vertexes, got %d",
			ErrInvalidConstruction, minPolyfaceVertexes, numVertexes)
	}
	if len(faces) < minPolyfaceFaces {
		return fmt.Errorf("%w: polyface mesh needs at least %d face", ErrInvalidConstruction, minPolyfaceFaces)
	}
	for i, f := range faces {
		if f == nil {
			return fmt.Errorf("%w: face %d", ErrNilInput, i)
		}
		if err := checkFace(numVertexes, f.indexes); err != nil {
			return fmt.Errorf("face %d: %w", i, err)
		}
	}
	return nil
}

func checkFace(numVertexes int, indexes []int16) error {
	if len(indexes) < 1 || len(indexes) > maxFaceIndexes {
		return fmt.Errorf("%w: face has %d indexes, want 1 to %d", ErrInvalidConstruction, len(indexes), maxFaceIndexes)
	}
	for _, index := range indexes {
		if a := int(abs16(index)); a < 1 || a > numVertexes {
			return fmt.Errorf("%w: vertex index %d out of range [1, %d]", ErrInvalidConstruction, index, numVertexes)
		}
	}
	return nil
}

func (this *PolyfaceMesh) Type() EntityType { return PolyfaceMeshEntity }

// Vertexes returns a copy of the vertex list. The vertexes themselves are
// the mesh's own, so positions may be edited in place.
func (this *PolyfaceMesh) Vertexes() []*PolyfaceMeshVertex {
	return append([]*PolyfaceMeshVertex(nil), this.vertexes...)
}

// Faces returns a copy of the face list. Use SetFace to change indexes.
func (this *PolyfaceMesh) Faces() []*PolyfaceMeshFace {
	return append([]*PolyfaceMeshFace(nil), this.faces...)
}

func (this *PolyfaceMesh) EndSequence() *EndSequence {
	return this.endSequence
}

// SetFace replaces the indexes of face i after validating them against
// this mesh.
func (this *PolyfaceMesh) SetFace(i int, indexes ...int16) error {
	if i < 0 || i >= len(this.faces) {
		return fmt.Errorf("%w: face %d out of range [0, %d)", ErrInvalidConstruction, i, len(this.faces))
	}
	if err := checkFace(len(this.vertexes), indexes); err != nil {
		return err
	}
	this.faces[i].indexes = append([]int16(nil), indexes...)
	return nil
}

func (this *PolyfaceMesh) position(index int16) vec3.T {
	return this.vertexes[abs16(index)-1].Position
}

// Decompose the mesh into one primitive entity per face
//
// **returns**
// + a Point for every single index face, a Line for every two index face
// and a Face3D for every triangle or quad, in face order. Each carries its
// own copy of the mesh attributes.
func (this *PolyfaceMesh) Explode() []EntityObject {
	entities := make([]EntityObject, 0, len(this.faces))

	for _, face := range this.faces {
		indexes := face.indexes

		switch len(indexes) {
		case 1:
			entities = append(entities, NewPoint(this.position(indexes[0]), this.attributes.Clone()))
		case 2:
			entities = append(entities, NewLine(this.position(indexes[0]), this.position(indexes[1]), this.attributes.Clone()))
		default:
			var quad [maxFaceIndexes]int16
			copy(quad[:], indexes)
			if len(indexes) == 3 {
				quad[3] = quad[2]
			}

			var flags EdgeFlags
			for k, index := range quad {
				if index < 0 {
					flags |= EdgeFlags(1 << k)
				}
			}

			entities = append(entities, NewFace3D(
				this.position(quad[0]),
				this.position(quad[1]),
				this.position(quad[2]),
				this.position(quad[3]),
				flags,
				this.attributes.Clone(),
			))
		}
	}

	return entities
}

// TransformBy maps every vertex through linear*p + translation and the
// normal through linear. A normal mapped to zero is left unchanged.
func (this *PolyfaceMesh) TransformBy(linear *mat3.T, translation *vec3.T) {
	for _, v := range this.vertexes {
		v.Position = transformPoint(linear, translation, &v.Position)
	}
	this.transformNormal(linear)
}

// Clone returns an independent mesh with the same vertexes, faces and
// attributes, a new end sequence, and no handles.
func (this *PolyfaceMesh) Clone() EntityObject {
	vertexes := make([]vec3.T, len(this.vertexes))
	for i, v := range this.vertexes {
		vertexes[i] = v.Position
	}

	clone, err := NewPolyfaceMesh(vertexes, this.faces, this.attributes.Clone())
	if err != nil {
		panic(fmt.Sprintf("dxf: cloning an invalid polyface mesh: %v", err))
	}
	return clone
}

// AssignHandles numbers the end sequence, then the vertexes, then the
// faces, and finally the mesh itself. Encoders rely on this order.
func (this *PolyfaceMesh) AssignHandles(next Handle) Handle {
	next = this.endSequence.assign(next)
	for _, v := range this.vertexes {
		next = v.assign(next)
	}
	for _, f := range this.faces {
		next = f.assign(next)
	}
	return this.assign(next)
}

func (this *PolyfaceMesh) PendingHandles() uint64 {
	n := this.endSequence.pending() + this.pending()
	for _, v := range this.vertexes {
		n += v.pending()
	}
	for _, f := range this.faces {
		n += f.pending()
	}
	return n
}

// BoundingBox returns the axis-aligned box enclosing every vertex.
func (this *PolyfaceMesh) BoundingBox() bbox.BoundingBox {
	var bb bbox.BoundingBox
	for _, v := range this.vertexes {
		bb.Add(&v.Position)
	}
	return bb
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
