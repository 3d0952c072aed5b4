package make

import (
	"github.com/LeiYangGH/dxf"
	"github.com/ungerik/go3d/float64/vec3"
)

// Box returns the axis aligned box spanning min and max as 8 vertexes and 6
// outward facing quads.
func Box(min, max *vec3.T) *dxf.PolyfaceMesh {
	b := new(builder)
	b.add(
		vec3.T{min[0], min[1], min[2]},
		vec3.T{max[0], min[1], min[2]},
		vec3.T{max[0], max[1], min[2]},
		vec3.T{min[0], max[1], min[2]},
		vec3.T{min[0], min[1], max[2]},
		vec3.T{max[0], min[1], max[2]},
		vec3.T{max[0], max[1], max[2]},
		vec3.T{min[0], max[1], max[2]},
	)

	b.face([]int{0, 3, 2, 1}) // bottom
	b.face([]int{4, 5, 6, 7}) // top
	b.face([]int{0, 1, 5, 4})
	b.face([]int{1, 2, 6, 5})
	b.face([]int{2, 3, 7, 6})
	b.face([]int{3, 0, 4, 7})

	mesh, err := b.build()
	if err != nil {
		panic(err)
	}
	return mesh
}
