package dxf

import "strings"

const (
	linetypeByLayer    = "ByLayer"
	linetypeByBlock    = "ByBlock"
	linetypeContinuous = "Continuous"
)

// Linetype is a named dash pattern. Positive segment lengths are dashes,
// negative lengths are gaps and zero is a dot.
type Linetype struct {
	Name        string
	Description string
	Segments    []float64
}

func NewLinetype(name, description string, segments ...float64) *Linetype {
	return &Linetype{
		Name:        name,
		Description: description,
		Segments:    append([]float64(nil), segments...),
	}
}

func ByLayerLinetype() *Linetype { return &Linetype{Name: linetypeByLayer} }
func ByBlockLinetype() *Linetype { return &Linetype{Name: linetypeByBlock} }
func ContinuousLinetype() *Linetype {
	return &Linetype{Name: linetypeContinuous, Description: "Solid line"}
}

func (this *Linetype) IsByLayer() bool { return strings.EqualFold(this.Name, linetypeByLayer) }
func (this *Linetype) IsByBlock() bool { return strings.EqualFold(this.Name, linetypeByBlock) }

// PatternLength is the sum of the absolute segment lengths.
func (this *Linetype) PatternLength() float64 {
	var l float64
	for _, s := range this.Segments {
		if s < 0 {
			s = -s
		}
		l += s
	}
	return l
}

func (this *Linetype) Clone() *Linetype {
	return NewLinetype(this.Name, this.Description, this.Segments...)
}
