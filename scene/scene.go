// Package scene loads a set of named polygons and probe points from a YAML file
// and evaluates all collisions and point containment checks between them.
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/oliverbestmann/shapes/gm"
	"github.com/oliverbestmann/shapes/shape"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScene is returned by Validate and Load if the scene is malformed.
var ErrInvalidScene = errors.New("invalid scene")

// Point is a 2d point written as a two element list, e.g. [1.5, 2].
type Point [2]float64

func (p Point) Vec() gm.Vec {
	return gm.Vec{X: p[0], Y: p[1]}
}

func PointOf(vec gm.Vec) Point {
	return Point{vec.X, vec.Y}
}

type PolygonSpec struct {
	Name     string  `yaml:"name"`
	Points   []Point `yaml:"points"`
	Velocity Point   `yaml:"velocity,omitempty"`
}

// Polygon returns the vertices of the polygon.
func (p PolygonSpec) Polygon() shape.Polygon {
	polygon := make(shape.Polygon, len(p.Points))
	for idx, point := range p.Points {
		polygon[idx] = point.Vec()
	}

	return polygon
}

type ProbeSpec struct {
	Name  string `yaml:"name"`
	Point Point  `yaml:"point"`
}

type Scene struct {
	Polygons []PolygonSpec `yaml:"polygons"`
	Probes   []ProbeSpec   `yaml:"probes,omitempty"`
}

// Load decodes and validates a scene.
func Load(r io.Reader) (Scene, error) {
	var scene Scene

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&scene); err != nil {
		if errors.Is(err, io.EOF) {
			return Scene{}, fmt.Errorf("empty scene: %w", ErrInvalidScene)
		}

		return Scene{}, fmt.Errorf("decode scene: %w", err)
	}

	if err := scene.Validate(); err != nil {
		return Scene{}, err
	}

	return scene, nil
}

// LoadFile loads a scene from the file at the given path.
func LoadFile(path string) (Scene, error) {
	fp, err := os.Open(path)
	if err != nil {
		return Scene{}, err
	}

	defer fp.Close()

	scene, err := Load(fp)
	if err != nil {
		return Scene{}, fmt.Errorf("load %q: %w", path, err)
	}

	return scene, nil
}

// Validate checks that all names are set and unique and that
// each polygon has at least two vertices.
func (s Scene) Validate() error {
	var errs []error

	names := map[string]bool{}
	checkName := func(kind, name string) {
		switch {
		case name == "":
			errs = append(errs, fmt.Errorf("%s without a name: %w", kind, ErrInvalidScene))
		case names[name]:
			errs = append(errs, fmt.Errorf("duplicate name %q: %w", name, ErrInvalidScene))
		}

		names[name] = true
	}

	for _, polygon := range s.Polygons {
		checkName("polygon", polygon.Name)

		if len(polygon.Points) < 2 {
			errs = append(errs, fmt.Errorf("polygon %q has %d points, need at least 2: %w",
				polygon.Name, len(polygon.Points), ErrInvalidScene))
		}
	}

	for _, probe := range s.Probes {
		checkName("probe", probe.Name)
	}

	return errors.Join(errs...)
}
