// Package document is a minimal in-memory DXF drawing: symbol tables for
// layers and line types, an ordered entity list, and the handle pass that
// prepares everything for an encoder.
package document

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/LeiYangGH/dxf"
	"github.com/LeiYangGH/dxf/bbox"
	"github.com/google/uuid"
	"github.com/ungerik/go3d/float64/mat3"
	"github.com/ungerik/go3d/float64/vec3"
)

var (
	ErrNilEntity       = errors.New("document: nil entity")
	ErrDuplicateEntity = errors.New("document: entity already in document")
	ErrEntityNotFound  = errors.New("document: entity not in document")
	ErrNotExplodable   = errors.New("document: entity cannot be exploded")
)

// Explodable is implemented by composite entities that can be replaced by
// simpler ones.
type Explodable interface {
	Explode() []dxf.EntityObject
}

type Document struct {
	// FingerprintGUID identifies the drawing for its whole life.
	FingerprintGUID uuid.UUID
	// VersionGUID changes on every handle pass.
	VersionGUID uuid.UUID

	layers     *Table[*dxf.Layer]
	linetypes  *Table[*dxf.Linetype]
	entities   []dxf.EntityObject
	handleSeed dxf.Handle
	logger     *slog.Logger
}

// New returns an empty document holding layer "0" and the ByLayer, ByBlock
// and Continuous line types.
func New(opts ...Option) *Document {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = dxf.Logger()
	}
	if o.fingerprint == uuid.Nil {
		o.fingerprint = uuid.New()
	}

	this := &Document{
		FingerprintGUID: o.fingerprint,
		VersionGUID:     uuid.New(),
		layers:          newTable("LAYER", func(l *dxf.Layer) string { return l.Name }),
		linetypes:       newTable("LTYPE", func(l *dxf.Linetype) string { return l.Name }),
		handleSeed:      o.handleSeed,
		logger:          o.logger,
	}

	this.linetypes.Add(dxf.ByLayerLinetype())
	this.linetypes.Add(dxf.ByBlockLinetype())
	this.linetypes.Add(dxf.ContinuousLinetype())
	this.addLayer(dxf.NewLayer(dxf.DefaultLayerName))

	return this
}

func (this *Document) Layers() *Table[*dxf.Layer]       { return this.layers }
func (this *Document) Linetypes() *Table[*dxf.Linetype] { return this.linetypes }

// HandleSeed is the next handle the document will hand out.
func (this *Document) HandleSeed() dxf.Handle { return this.handleSeed }

// Entities returns the entities in document order.
func (this *Document) Entities() []dxf.EntityObject {
	return append([]dxf.EntityObject(nil), this.entities...)
}

func (this *Document) addLayer(l *dxf.Layer) {
	if l.Linetype != nil {
		this.linetypes.Add(l.Linetype)
	}
	this.layers.Add(l)
}

// register adds the layer and line type an entity refers to when the
// tables do not know them yet.
func (this *Document) register(e dxf.EntityObject) {
	attrs := e.Attributes()
	if attrs.Layer != nil && !this.layers.Contains(attrs.Layer.Name) {
		this.addLayer(attrs.Layer)
		this.logger.Debug("dxf: layer added", "layer", attrs.Layer.Name)
	}
	if attrs.Linetype != nil && !this.linetypes.Contains(attrs.Linetype.Name) {
		this.linetypes.Add(attrs.Linetype)
		this.logger.Debug("dxf: linetype added", "linetype", attrs.Linetype.Name)
	}
}

func (this *Document) indexOf(e dxf.EntityObject) int {
	for i, other := range this.entities {
		if other == e {
			return i
		}
	}
	return -1
}

// AddEntity appends e to the document, registering its layer and line type.
func (this *Document) AddEntity(e dxf.EntityObject) error {
	if e == nil {
		this.logger.Warn("dxf: rejected nil entity")
		return ErrNilEntity
	}
	if this.indexOf(e) >= 0 {
		this.logger.Warn("dxf: rejected duplicate entity", "type", e.Type())
		return ErrDuplicateEntity
	}

	this.register(e)
	this.entities = append(this.entities, e)
	this.logger.Debug("dxf: entity added", "type", e.Type(), "count", len(this.entities))

	return nil
}

func (this *Document) RemoveEntity(e dxf.EntityObject) error {
	i := this.indexOf(e)
	if i < 0 {
		return ErrEntityNotFound
	}
	this.entities = append(this.entities[:i], this.entities[i+1:]...)
	return nil
}

// Explode replaces e by the entities it decomposes into, at the same
// position in document order, and returns them.
func (this *Document) Explode(e dxf.EntityObject) ([]dxf.EntityObject, error) {
	i := this.indexOf(e)
	if i < 0 {
		return nil, ErrEntityNotFound
	}
	x, ok := e.(Explodable)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotExplodable, e.Type())
	}

	parts := x.Explode()
	for _, p := range parts {
		this.register(p)
	}

	entities := make([]dxf.EntityObject, 0, len(this.entities)-1+len(parts))
	entities = append(entities, this.entities[:i]...)
	entities = append(entities, parts...)
	entities = append(entities, this.entities[i+1:]...)
	this.entities = entities

	this.logger.Debug("dxf: entity exploded", "type", e.Type(), "parts", len(parts))

	return parts, nil
}

// TransformAll applies linear*p + translation to every entity.
func (this *Document) TransformAll(linear *mat3.T, translation *vec3.T) {
	for _, e := range this.entities {
		e.TransformBy(linear, translation)
	}
}

// Extents returns the box enclosing every entity that can report one.
func (this *Document) Extents() bbox.BoundingBox {
	var bb bbox.BoundingBox
	for _, e := range this.entities {
		if b, ok := e.(interface{ BoundingBox() bbox.BoundingBox }); ok {
			eb := b.BoundingBox()
			bb.Union(&eb)
		}
	}
	return bb
}

// AssignHandles numbers the layer table, the line type table and then every
// entity in document order with one counter starting at the handle seed.
// It returns the next free handle, which also becomes the new seed.
//
// Nothing is assigned when the counter would overflow; the error is
// ErrHandleOverflow.
func (this *Document) AssignHandles() (dxf.Handle, error) {
	need := this.layers.pendingHandles() + this.linetypes.pendingHandles()
	for _, e := range this.entities {
		need += e.PendingHandles()
	}
	if uint64(this.handleSeed) > math.MaxUint64-need {
		return this.handleSeed, fmt.Errorf("%w: seed %s, %d objects", dxf.ErrHandleOverflow, this.handleSeed, need)
	}

	next := this.handleSeed
	next = this.layers.assignHandles(next)
	next = this.linetypes.assignHandles(next)
	for _, e := range this.entities {
		next = e.AssignHandles(next)
	}

	this.logger.Debug("dxf: handles assigned", "first", this.handleSeed, "next", next, "entities", len(this.entities))

	this.handleSeed = next
	this.VersionGUID = uuid.New()

	return next, nil
}
