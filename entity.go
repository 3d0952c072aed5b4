package dxf

import (
	"github.com/ungerik/go3d/float64/mat3"
	"github.com/ungerik/go3d/float64/vec3"
)

// EntityType identifies the kind of an entity.
type EntityType int

const (
	PointEntity EntityType = iota
	LineEntity
	Face3DEntity
	PolyfaceMeshEntity
)

// CodeName is the DXF record name of the entity.
func (this EntityType) CodeName() string {
	switch this {
	case PointEntity:
		return "POINT"
	case LineEntity:
		return "LINE"
	case Face3DEntity:
		return "3DFACE"
	case PolyfaceMeshEntity:
		return "POLYLINE"
	}
	return "UNKNOWN"
}

func (this EntityType) String() string {
	return this.CodeName()
}

// EntityObject is implemented by every drawing entity.
type EntityObject interface {
	Handle() Handle
	Type() EntityType
	Attributes() *Attributes

	// Clone returns a deep copy with no handles assigned.
	Clone() EntityObject

	// TransformBy maps every position p to linear*p + translation.
	TransformBy(linear *mat3.T, translation *vec3.T)

	// AssignHandles gives the entity and its owned objects handles starting
	// at next and returns the value for the following object.
	AssignHandles(next Handle) Handle

	// PendingHandles is the number of handles AssignHandles would consume
	// now: the entity and its owned objects that have none yet.
	PendingHandles() uint64
}

// entityObject carries the state common to every entity.
type entityObject struct {
	DxfObject
	attributes *Attributes
}

func newEntityObject(attributes *Attributes) entityObject {
	if attributes == nil {
		attributes = NewAttributes()
	}
	return entityObject{attributes: attributes}
}

func (this *entityObject) Attributes() *Attributes {
	return this.attributes
}

func (this *entityObject) transformNormal(linear *mat3.T) {
	this.attributes.Normal = transformNormal(linear, this.attributes.Normal)
}

// PendingHandles covers entities owning no sub-objects.
func (this *entityObject) PendingHandles() uint64 {
	return this.pending()
}
