package make

import (
	"fmt"

	"github.com/LeiYangGH/dxf"
	"github.com/ungerik/go3d/float64/vec3"
)

// Generate the polyface mesh of an extruded closed profile
//
// **params**
// + closed profile polygon, at least 3 points, without repeating the first
// + axis of the extrusion
// + length of the extrusion
//
// **returns**
// + a mesh with one quad per profile edge and two triangulated caps
func Extrusion(profile []vec3.T, axis *vec3.T, length float64) (*dxf.PolyfaceMesh, error) {
	n := len(profile)
	if n < 3 {
		return nil, fmt.Errorf("%w: profile has %d points, want at least 3", ErrTooFewPoints, n)
	}
	if axis.IsZero() {
		return nil, ErrDegenerateAxis
	}

	translation := axis.Normalized()
	translation.Scale(length)

	b := new(builder)
	bottom := b.add(profile...)
	top := len(b.vertexes)
	for j := range profile {
		b.add(vec3.Add(&translation, &profile[j]))
	}

	for j := 0; j < n; j++ {
		k := (j + 1) % n
		b.face([]int{bottom + j, bottom + k, top + k, top + j})
	}
	b.cap(bottom, n, true)
	b.cap(top, n, false)

	return b.build()
}
