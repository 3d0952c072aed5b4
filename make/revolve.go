package make

import (
	"fmt"
	"math"

	"github.com/LeiYangGH/dxf"
	"github.com/ungerik/go3d/float64/vec3"
)

const epsilon = 1e-10

// Find the closest point on a ray
//
// **params**
// + point to project
// + origin for ray
// + direction of ray, assumed normalized
//
// **returns**
// + pt
func rayClosestPoint(pt, origin, dir *vec3.T) vec3.T {
	o2pt := vec3.Sub(pt, origin)
	dirScaled := dir.Scaled(vec3.Dot(&o2pt, dir))
	return vec3.Add(origin, &dirScaled)
}

// Generate the polyface mesh of a profile polyline revolved about an axis
//
// **params**
// + profile polyline, at least 2 points
// + a point on the rotation axis
// + direction of the rotation axis
// + angle to revolve, in radians; 2*Pi or more closes the surface
// + number of angular steps
//
// **returns**
// + a mesh with segments quads per profile edge
func Revolution(profile []vec3.T, center, axis *vec3.T, theta float64, segments int) (*dxf.PolyfaceMesh, error) {
	if len(profile) < 2 {
		return nil, fmt.Errorf("%w: profile has %d points, want at least 2", ErrTooFewPoints, len(profile))
	}
	if segments < 1 {
		return nil, fmt.Errorf("%w: got %d segments", ErrBadDivisions, segments)
	}
	if axis.IsZero() {
		return nil, ErrDegenerateAxis
	}

	dir := axis.Normalized()
	closed := theta >= 2*math.Pi-epsilon
	if closed {
		theta = 2 * math.Pi
	}

	if closed && segments < 3 {
		return nil, fmt.Errorf("%w: a closed revolution needs at least 3 segments, got %d", ErrBadDivisions, segments)
	}

	rings := segments + 1
	if closed {
		rings = segments
	}
	dtheta := theta / float64(segments)

	b := new(builder)
	for i := 0; i < rings; i++ {
		angle := dtheta * float64(i)
		cos, sin := math.Cos(angle), math.Sin(angle)

		for j := range profile {
			// O + r * cos(theta) * X + r * sin(theta) * Y
			O := rayClosestPoint(&profile[j], center, &dir)
			X := vec3.Sub(&profile[j], &O)
			Y := vec3.Cross(&dir, &X)

			xCompon := X.Scaled(cos)
			yCompon := Y.Scaled(sin)
			b.add(vec3.Add(&O, xCompon.Add(&yCompon)))
		}
	}

	n := len(profile)
	for i := 0; i < segments; i++ {
		ring, next := i*n, ((i+1)%rings)*n
		for j := 0; j < n-1; j++ {
			b.face([]int{ring + j, next + j, next + j + 1, ring + j + 1})
		}
	}

	return b.build()
}
