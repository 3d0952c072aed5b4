package dxf

import "fmt"

const (
	transparencyByLayer = -1
	transparencyByBlock = 100
)

// Transparency is an entity or layer transparency in percent, 0 (opaque)
// to 90, or ByLayer/ByBlock.
type Transparency struct {
	value int
}

func ByLayerTransparency() *Transparency { return &Transparency{value: transparencyByLayer} }
func ByBlockTransparency() *Transparency { return &Transparency{value: transparencyByBlock} }

func NewTransparency(percent int) (*Transparency, error) {
	if percent < 0 || percent > 90 {
		return nil, fmt.Errorf("dxf: transparency %d out of range [0, 90]", percent)
	}
	return &Transparency{value: percent}, nil
}

func (this *Transparency) Value() int      { return this.value }
func (this *Transparency) IsByLayer() bool { return this.value == transparencyByLayer }
func (this *Transparency) IsByBlock() bool { return this.value == transparencyByBlock }

func (this *Transparency) Clone() *Transparency {
	return &Transparency{value: this.value}
}

func (this *Transparency) String() string {
	switch this.value {
	case transparencyByLayer:
		return "ByLayer"
	case transparencyByBlock:
		return "ByBlock"
	}
	return fmt.Sprintf("%d%%", this.value)
}
