// Package make builds polyface meshes for common solids and surfaces.
package make

import (
	"errors"
	"fmt"
	"math"

	"github.com/LeiYangGH/dxf"
	"github.com/ungerik/go3d/float64/vec3"
)

var (
	ErrTooFewPoints   = errors.New("make: too few points")
	ErrTooManyPoints  = errors.New("make: too many points for 16-bit face indexes")
	ErrBadDivisions   = errors.New("make: divisions must be positive")
	ErrDegenerateAxis = errors.New("make: axis has zero length")
)

// builder accumulates vertexes and faces using 0-based vertex numbers.
type builder struct {
	vertexes []vec3.T
	faces    []*dxf.PolyfaceMeshFace
}

func (this *builder) add(pts ...vec3.T) int {
	first := len(this.vertexes)
	this.vertexes = append(this.vertexes, pts...)
	return first
}

// face adds a face over 0-based vertex numbers. Each hidden entry is a
// position in vertexes whose outgoing edge is drawn invisible.
func (this *builder) face(vertexes []int, hidden ...int) {
	edges := make([]dxf.FaceEdge, len(vertexes))
	for i, v := range vertexes {
		edges[i] = dxf.FaceEdge{Vertex: int16(v + 1), Visible: true}
	}
	for _, h := range hidden {
		edges[h].Visible = false
	}
	this.faces = append(this.faces, dxf.NewPolyfaceMeshFaceFromEdges(edges...))
}

func (this *builder) build() (*dxf.PolyfaceMesh, error) {
	if len(this.vertexes) > math.MaxInt16 {
		return nil, fmt.Errorf("%w: %d vertexes", ErrTooManyPoints, len(this.vertexes))
	}
	return dxf.NewPolyfaceMesh(this.vertexes, this.faces, nil)
}

// cap triangulates the polygon first..first+n-1 as a fan around its first
// vertex. Diagonals inside the polygon are hidden so the cap draws as one
// outline. reverse flips the winding.
func (this *builder) cap(first, n int, reverse bool) {
	for i := 1; i < n-1; i++ {
		a, b := first+i, first+i+1
		if reverse {
			a, b = b, a
		}

		boundaryA, boundaryB := i == 1, i == n-2
		if reverse {
			boundaryA, boundaryB = boundaryB, boundaryA
		}

		var hidden []int
		if !boundaryA {
			hidden = append(hidden, 0)
		}
		if !boundaryB {
			hidden = append(hidden, 2)
		}
		this.face([]int{first, a, b}, hidden...)
	}
}
