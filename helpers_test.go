package dxf_test

import (
	"math"
	"testing"

	"github.com/LeiYangGH/dxf"
	"github.com/LeiYangGH/dxf/internal/fixture"
	"github.com/ungerik/go3d/float64/vec3"
)

const epsilon = 1e-9

func vecNear(a, b vec3.T) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > epsilon {
			return false
		}
	}
	return true
}

func loadMesh(t *testing.T, name string) *dxf.PolyfaceMesh {
	t.Helper()
	m := fixtureMesh(t, name)
	mesh, err := m.Build()
	if err != nil {
		t.Fatalf("building fixture %q: %v", name, err)
	}
	return mesh
}

func fixtureMesh(t *testing.T, name string) *fixture.Mesh {
	t.Helper()
	f, err := fixture.Load("testdata/meshes.yaml")
	if err != nil {
		t.Fatal(err)
	}
	m, err := f.Find(name)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func square() []vec3.T {
	return []vec3.T{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
}
