package dxf

import (
	"github.com/LeiYangGH/dxf/bbox"
	"github.com/ungerik/go3d/float64/mat3"
	"github.com/ungerik/go3d/float64/vec3"
)

type Line struct {
	entityObject
	StartPoint vec3.T
	EndPoint   vec3.T
}

func NewLine(start, end vec3.T, attributes *Attributes) *Line {
	return &Line{entityObject: newEntityObject(attributes), StartPoint: start, EndPoint: end}
}

func (this *Line) Type() EntityType { return LineEntity }

func (this *Line) Length() float64 {
	return vec3.Distance(&this.StartPoint, &this.EndPoint)
}

func (this *Line) Clone() EntityObject {
	return NewLine(this.StartPoint, this.EndPoint, this.attributes.Clone())
}

func (this *Line) TransformBy(linear *mat3.T, translation *vec3.T) {
	this.StartPoint = transformPoint(linear, translation, &this.StartPoint)
	this.EndPoint = transformPoint(linear, translation, &this.EndPoint)
	this.transformNormal(linear)
}

func (this *Line) AssignHandles(next Handle) Handle {
	return this.assign(next)
}

func (this *Line) BoundingBox() bbox.BoundingBox {
	var bb bbox.BoundingBox
	bb.Add(&this.StartPoint).Add(&this.EndPoint)
	return bb
}
