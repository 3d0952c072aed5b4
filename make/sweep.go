package make

import (
	"fmt"

	"github.com/LeiYangGH/dxf"
	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

// Generate a mesh by translating a profile polyline along a rail polyline
//
// **params**
// + profile polyline, at least 2 points
// + rail polyline, at least 2 points; the profile starts at the first
//
// **returns**
// + a mesh with one quad per profile edge and rail edge
func Sweep(profile, rail []vec3.T) (*dxf.PolyfaceMesh, error) {
	if len(profile) < 2 || len(rail) < 2 {
		return nil, fmt.Errorf("%w: profile has %d points and rail %d, want at least 2 each",
			ErrTooFewPoints, len(profile), len(rail))
	}

	b := new(builder)
	pt0 := rail[0]
	for i := range rail {
		pt := vec3.Sub(&rail[i], &pt0)

		mat := mat4.Ident
		mat.SetTranslation(&pt)
		for j := range profile {
			b.add(mat.MulVec3(&profile[j]))
		}
	}

	n := len(profile)
	for i := 0; i < len(rail)-1; i++ {
		for j := 0; j < n-1; j++ {
			v := i*n + j
			b.face([]int{v, v + 1, v + n + 1, v + n})
		}
	}

	return b.build()
}
