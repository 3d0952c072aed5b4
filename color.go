package dxf

import "fmt"

const (
	aciByBlock = 0
	aciByLayer = 256
)

// AciColor is an AutoCAD Color Index value, optionally carrying a 24-bit
// true color.
type AciColor struct {
	index     int16
	trueColor bool
	r, g, b   uint8
}

func ByLayerColor() *AciColor { return &AciColor{index: aciByLayer} }
func ByBlockColor() *AciColor { return &AciColor{index: aciByBlock} }

// NewAciColor returns an indexed color. Valid indexes are 1 through 255.
func NewAciColor(index int16) (*AciColor, error) {
	if index < 1 || index > 255 {
		return nil, fmt.Errorf("dxf: color index %d out of range [1, 255]", index)
	}
	return &AciColor{index: index}, nil
}

// NewTrueColor returns a 24-bit color. Its index is the closest of the
// seven standard colors so readers without true color support still get
// something sensible.
func NewTrueColor(r, g, b uint8) *AciColor {
	return &AciColor{index: nearestStandardIndex(r, g, b), trueColor: true, r: r, g: g, b: b}
}

func (this *AciColor) Index() int16      { return this.index }
func (this *AciColor) IsByLayer() bool   { return !this.trueColor && this.index == aciByLayer }
func (this *AciColor) IsByBlock() bool   { return !this.trueColor && this.index == aciByBlock }
func (this *AciColor) IsTrueColor() bool { return this.trueColor }

// RGB returns the true color components. For indexed colors it returns the
// components of the standard color when the index is one of 1 to 7, and
// black otherwise.
func (this *AciColor) RGB() (r, g, b uint8) {
	if this.trueColor {
		return this.r, this.g, this.b
	}
	if this.index >= 1 && int(this.index) <= len(standardColors) {
		c := standardColors[this.index-1]
		return c[0], c[1], c[2]
	}
	return 0, 0, 0
}

func (this *AciColor) Clone() *AciColor {
	c := *this
	return &c
}

func (this *AciColor) Equal(other *AciColor) bool {
	return *this == *other
}

func (this *AciColor) String() string {
	switch {
	case this.trueColor:
		return fmt.Sprintf("%d,%d,%d", this.r, this.g, this.b)
	case this.index == aciByLayer:
		return "ByLayer"
	case this.index == aciByBlock:
		return "ByBlock"
	}
	return fmt.Sprintf("%d", this.index)
}

// red, yellow, green, cyan, blue, magenta, white
var standardColors = [7][3]uint8{
	{255, 0, 0},
	{255, 255, 0},
	{0, 255, 0},
	{0, 255, 255},
	{0, 0, 255},
	{255, 0, 255},
	{255, 255, 255},
}

func nearestStandardIndex(r, g, b uint8) int16 {
	best, bestDist := 0, -1
	for i, c := range standardColors {
		dr, dg, db := int(c[0])-int(r), int(c[1])-int(g), int(c[2])-int(b)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return int16(best + 1)
}
