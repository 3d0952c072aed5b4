package dxf

import (
	"github.com/LeiYangGH/dxf/bbox"
	"github.com/ungerik/go3d/float64/mat3"
	"github.com/ungerik/go3d/float64/vec3"
)

type Point struct {
	entityObject
	Position vec3.T
}

// NewPoint returns a point with the given attributes, or the defaults when
// attributes is nil.
func NewPoint(position vec3.T, attributes *Attributes) *Point {
	return &Point{entityObject: newEntityObject(attributes), Position: position}
}

func (this *Point) Type() EntityType { return PointEntity }

func (this *Point) Clone() EntityObject {
	return NewPoint(this.Position, this.attributes.Clone())
}

func (this *Point) TransformBy(linear *mat3.T, translation *vec3.T) {
	this.Position = transformPoint(linear, translation, &this.Position)
	this.transformNormal(linear)
}

func (this *Point) AssignHandles(next Handle) Handle {
	return this.assign(next)
}

func (this *Point) BoundingBox() bbox.BoundingBox {
	var bb bbox.BoundingBox
	bb.Add(&this.Position)
	return bb
}
