package dxf

// DefaultLayerName is the layer every document contains.
const DefaultLayerName = "0"

// Layer groups entities that share presentation defaults. Entities whose
// attributes are ByLayer inherit them from here.
type Layer struct {
	Name         string
	Color        *AciColor
	Linetype     *Linetype
	Lineweight   Lineweight
	Transparency *Transparency
	IsVisible    bool
	IsFrozen     bool
	IsLocked     bool
	Plot         bool
}

// NewLayer returns a visible, plottable layer drawn white with a continuous
// line type.
func NewLayer(name string) *Layer {
	return &Layer{
		Name:         name,
		Color:        &AciColor{index: 7},
		Linetype:     ContinuousLinetype(),
		Lineweight:   LineweightDefault,
		Transparency: &Transparency{value: 0},
		IsVisible:    true,
		Plot:         true,
	}
}

// Clone duplicates the layer together with its color, line type and
// transparency.
func (this *Layer) Clone() *Layer {
	c := *this
	if this.Color != nil {
		c.Color = this.Color.Clone()
	}
	if this.Linetype != nil {
		c.Linetype = this.Linetype.Clone()
	}
	if this.Transparency != nil {
		c.Transparency = this.Transparency.Clone()
	}
	return &c
}
