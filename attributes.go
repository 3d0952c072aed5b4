package dxf

import "github.com/ungerik/go3d/float64/vec3"

// Attributes holds the presentation properties shared by every entity.
//
// Layer, Linetype, Color and Transparency are pointers because a document
// shares them between entities. Cloning an entity duplicates them through
// Clone so the copy never aliases the original's objects.
type Attributes struct {
	Layer         *Layer
	Linetype      *Linetype
	Color         *AciColor
	Lineweight    Lineweight
	Transparency  *Transparency
	LinetypeScale float64
	// Normal is the extrusion direction. SetNormal stores it with unit
	// length; TransformBy stores linear*Normal as is.
	Normal    vec3.T
	IsVisible bool
	XData     XDataDictionary
}

// NewAttributes returns the DXF defaults: layer "0", everything ByLayer,
// scale 1, normal +Z and visible.
func NewAttributes() *Attributes {
	return &Attributes{
		Layer:         NewLayer(DefaultLayerName),
		Linetype:      ByLayerLinetype(),
		Color:         ByLayerColor(),
		Lineweight:    LineweightByLayer,
		Transparency:  ByLayerTransparency(),
		LinetypeScale: 1,
		Normal:        vec3.UnitZ,
		IsVisible:     true,
		XData:         make(XDataDictionary),
	}
}

// SetNormal stores n normalized. A zero vector is ignored.
func (this *Attributes) SetNormal(n vec3.T) {
	if n.IsZero() {
		return
	}
	this.Normal = n.Normalized()
}

// Clone returns attributes holding duplicates of every referenced object.
func (this *Attributes) Clone() *Attributes {
	c := *this
	if this.Layer != nil {
		c.Layer = this.Layer.Clone()
	}
	if this.Linetype != nil {
		c.Linetype = this.Linetype.Clone()
	}
	if this.Color != nil {
		c.Color = this.Color.Clone()
	}
	if this.Transparency != nil {
		c.Transparency = this.Transparency.Clone()
	}
	c.XData = this.XData.Clone()
	return &c
}
