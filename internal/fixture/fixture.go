// Package fixture loads polyface mesh descriptions from YAML test data.
package fixture

import (
	"fmt"
	"os"

	"github.com/LeiYangGH/dxf"
	"github.com/ungerik/go3d/float64/vec3"
	"gopkg.in/yaml.v3"
)

// Mesh is the YAML form of a polyface mesh:
//
//	name: square
//	layer: walls
//	vertexes: [[0, 0, 0], [1, 0, 0], [1, 1, 0]]
//	faces: [[1, -2, 3]]
type Mesh struct {
	Name     string       `yaml:"name"`
	Layer    string       `yaml:"layer,omitempty"`
	Color    int16        `yaml:"color,omitempty"`
	Vertexes [][3]float64 `yaml:"vertexes"`
	Faces    [][]int16    `yaml:"faces"`
}

type File struct {
	Meshes []Mesh `yaml:"meshes"`
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	return &f, nil
}

// Find returns the mesh description with the given name.
func (this *File) Find(name string) (*Mesh, error) {
	for i := range this.Meshes {
		if this.Meshes[i].Name == name {
			return &this.Meshes[i], nil
		}
	}
	return nil, fmt.Errorf("fixture: no mesh named %q", name)
}

// Build constructs the described mesh. A missing vertexes or faces key
// reaches the constructor as nil.
func (this *Mesh) Build() (*dxf.PolyfaceMesh, error) {
	var vertexes []vec3.T
	if this.Vertexes != nil {
		vertexes = make([]vec3.T, len(this.Vertexes))
		for i, v := range this.Vertexes {
			vertexes[i] = vec3.T(v)
		}
	}

	var faces []*dxf.PolyfaceMeshFace
	if this.Faces != nil {
		faces = make([]*dxf.PolyfaceMeshFace, len(this.Faces))
		for i, f := range this.Faces {
			faces[i] = dxf.NewPolyfaceMeshFace(f...)
		}
	}

	attrs := dxf.NewAttributes()
	if this.Layer != "" {
		attrs.Layer = dxf.NewLayer(this.Layer)
	}
	if this.Color != 0 {
		c, err := dxf.NewAciColor(this.Color)
		if err != nil {
			return nil, err
		}
		attrs.Color = c
	}

	return dxf.NewPolyfaceMesh(vertexes, faces, attrs)
}
