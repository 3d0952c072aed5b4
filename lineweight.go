package dxf

import "strconv"

// Lineweight is a line width in hundredths of a millimeter, or one of the
// special ByLayer, ByBlock and Default values.
type Lineweight int16

const (
	LineweightDefault Lineweight = -3
	LineweightByBlock Lineweight = -2
	LineweightByLayer Lineweight = -1

	LineweightW0   Lineweight = 0
	LineweightW5   Lineweight = 5
	LineweightW9   Lineweight = 9
	LineweightW13  Lineweight = 13
	LineweightW15  Lineweight = 15
	LineweightW18  Lineweight = 18
	LineweightW20  Lineweight = 20
	LineweightW25  Lineweight = 25
	LineweightW30  Lineweight = 30
	LineweightW35  Lineweight = 35
	LineweightW40  Lineweight = 40
	LineweightW50  Lineweight = 50
	LineweightW53  Lineweight = 53
	LineweightW60  Lineweight = 60
	LineweightW70  Lineweight = 70
	LineweightW80  Lineweight = 80
	LineweightW90  Lineweight = 90
	LineweightW100 Lineweight = 100
	LineweightW106 Lineweight = 106
	LineweightW120 Lineweight = 120
	LineweightW140 Lineweight = 140
	LineweightW158 Lineweight = 158
	LineweightW200 Lineweight = 200
	LineweightW211 Lineweight = 211
)

var standardLineweights = map[Lineweight]bool{
	LineweightDefault: true, LineweightByBlock: true, LineweightByLayer: true,
	0: true, 5: true, 9: true, 13: true, 15: true, 18: true, 20: true, 25: true,
	30: true, 35: true, 40: true, 50: true, 53: true, 60: true, 70: true, 80: true,
	90: true, 100: true, 106: true, 120: true, 140: true, 158: true, 200: true, 211: true,
}

// IsValid reports whether this is one of the values DXF accepts.
func (this Lineweight) IsValid() bool {
	return standardLineweights[this]
}

func (this Lineweight) String() string {
	switch this {
	case LineweightDefault:
		return "Default"
	case LineweightByBlock:
		return "ByBlock"
	case LineweightByLayer:
		return "ByLayer"
	}
	return strconv.Itoa(int(this))
}
