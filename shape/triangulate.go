package shape

import (
	"fmt"

	"github.com/rclancey/earcut"
)

// Triangulate splits the polygon into triangles using the earcut algorithm.
// The polygon may be concave. Each returned polygon has exactly three vertices.
func (p Polygon) Triangulate() ([]Polygon, error) {
	if len(p) < 3 {
		return nil, fmt.Errorf("triangulate polygon with %d vertices: %w", len(p), ErrInvalidInput)
	}

	// earcut expects a flat list of coordinates: [x0, y0, x1, y1, ...]
	coords := make([]float64, 0, len(p)*2)
	for _, point := range p {
		coords = append(coords, point.X, point.Y)
	}

	indices, err := earcut.Earcut(coords, nil, 2)
	if err != nil {
		return nil, fmt.Errorf("triangulate polygon with %d vertices: %w", len(p), err)
	}

	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("earcut returned %d indices: %w", len(indices), ErrInvalidInput)
	}

	triangles := make([]Polygon, 0, len(indices)/3)
	for idx := 0; idx < len(indices); idx += 3 {
		triangles = append(triangles, Polygon{
			p[indices[idx]],
			p[indices[idx+1]],
			p[indices[idx+2]],
		})
	}

	return triangles, nil
}
