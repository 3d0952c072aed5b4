package make

import (
	"fmt"

	"github.com/LeiYangGH/dxf"
	"github.com/ungerik/go3d/float64/vec3"
)

// Generate a bilinear quad grid spanning 4 corner points
//
// **params**
// + first point in counter-clockwise form
// + second point in counter-clockwise form
// + third point in counter-clockwise form
// + forth point in counter-clockwise form
// + number of quads from p1 towards p2
// + number of quads from p1 towards p4
//
// **returns**
// + a mesh of divisionsU * divisionsV quads
func FourPoint(p1, p2, p3, p4 *vec3.T, divisionsU, divisionsV int) (*dxf.PolyfaceMesh, error) {
	if divisionsU < 1 || divisionsV < 1 {
		return nil, fmt.Errorf("%w: got %d x %d", ErrBadDivisions, divisionsU, divisionsV)
	}

	b := new(builder)
	for i := 0; i <= divisionsV; i++ {
		t := float64(i) / float64(divisionsV)
		p1p4 := vec3.Interpolate(p1, p4, t)
		p2p3 := vec3.Interpolate(p2, p3, t)

		for j := 0; j <= divisionsU; j++ {
			b.add(vec3.Interpolate(&p1p4, &p2p3, float64(j)/float64(divisionsU)))
		}
	}

	row := divisionsU + 1
	for i := 0; i < divisionsV; i++ {
		for j := 0; j < divisionsU; j++ {
			v := i*row + j
			b.face([]int{v, v + 1, v + row + 1, v + row})
		}
	}

	return b.build()
}
