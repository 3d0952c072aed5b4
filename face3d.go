package dxf

import (
	"strings"

	"github.com/LeiYangGH/dxf/bbox"
	"github.com/ungerik/go3d/float64/mat3"
	"github.com/ungerik/go3d/float64/vec3"
)

// EdgeFlags marks the invisible edges of a Face3D. Edge k runs from the
// k-th vertex to the next one.
type EdgeFlags uint8

const (
	FirstEdge EdgeFlags = 1 << iota
	SecondEdge
	ThirdEdge
	FourthEdge

	NoneEdges EdgeFlags = 0
)

func (this EdgeFlags) Has(f EdgeFlags) bool {
	return this&f == f
}

func (this EdgeFlags) String() string {
	if this == NoneEdges {
		return "None"
	}
	var names []string
	for i, name := range [...]string{"First", "Second", "Third", "Fourth"} {
		if this.Has(EdgeFlags(1 << i)) {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// Face3D is a three or four sided planar face. A triangle repeats its third
// vertex as the fourth.
type Face3D struct {
	entityObject
	FirstVertex  vec3.T
	SecondVertex vec3.T
	ThirdVertex  vec3.T
	FourthVertex vec3.T
	EdgeFlags    EdgeFlags
}

func NewFace3D(v1, v2, v3, v4 vec3.T, flags EdgeFlags, attributes *Attributes) *Face3D {
	return &Face3D{
		entityObject: newEntityObject(attributes),
		FirstVertex:  v1,
		SecondVertex: v2,
		ThirdVertex:  v3,
		FourthVertex: v4,
		EdgeFlags:    flags,
	}
}

func NewTriangleFace3D(v1, v2, v3 vec3.T, flags EdgeFlags, attributes *Attributes) *Face3D {
	return NewFace3D(v1, v2, v3, v3, flags, attributes)
}

func (this *Face3D) Type() EntityType { return Face3DEntity }

func (this *Face3D) IsTriangle() bool {
	return this.FourthVertex == this.ThirdVertex
}

func (this *Face3D) Clone() EntityObject {
	return NewFace3D(this.FirstVertex, this.SecondVertex, this.ThirdVertex, this.FourthVertex, this.EdgeFlags, this.attributes.Clone())
}

func (this *Face3D) TransformBy(linear *mat3.T, translation *vec3.T) {
	this.FirstVertex = transformPoint(linear, translation, &this.FirstVertex)
	this.SecondVertex = transformPoint(linear, translation, &this.SecondVertex)
	this.ThirdVertex = transformPoint(linear, translation, &this.ThirdVertex)
	this.FourthVertex = transformPoint(linear, translation, &this.FourthVertex)
	this.transformNormal(linear)
}

func (this *Face3D) AssignHandles(next Handle) Handle {
	return this.assign(next)
}

func (this *Face3D) BoundingBox() bbox.BoundingBox {
	var bb bbox.BoundingBox
	bb.Add(&this.FirstVertex).Add(&this.SecondVertex).Add(&this.ThirdVertex).Add(&this.FourthVertex)
	return bb
}
