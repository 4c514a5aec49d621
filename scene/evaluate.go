package scene

import (
	"log/slog"
	"time"

	"github.com/oliverbestmann/shapes/shape"
)

type PolygonInfo struct {
	Name      string  `yaml:"name"`
	Area      float64 `yaml:"area"`
	Convex    bool    `yaml:"convex"`
	Triangles int     `yaml:"triangles"`
	Min       Point   `yaml:"min"`
	Max       Point   `yaml:"max"`
}

type PairResult struct {
	A             string `yaml:"a"`
	B             string `yaml:"b"`
	Intersects    bool   `yaml:"intersects"`
	WillIntersect bool   `yaml:"will_intersect"`
	MTV           Point  `yaml:"mtv"`
}

type ProbeResult struct {
	Probe   string `yaml:"probe"`
	Polygon string `yaml:"polygon"`
	Inside  bool   `yaml:"inside"`
}

type Report struct {
	Polygons []PolygonInfo `yaml:"polygons"`
	Pairs    []PairResult  `yaml:"pairs"`
	Probes   []ProbeResult `yaml:"probes,omitempty"`
}

// Evaluate checks every pair of polygons for collisions and every probe against
// every polygon. Velocities are applied relative to each other: for the pair (a, b)
// polygon a moves by the difference of both velocities.
func Evaluate(s Scene) Report {
	startTime := time.Now()

	polygons := make([]shape.Polygon, len(s.Polygons))
	for idx, entry := range s.Polygons {
		polygons[idx] = entry.Polygon()
	}

	var report Report

	for idx, entry := range s.Polygons {
		report.Polygons = append(report.Polygons, describe(entry.Name, polygons[idx]))
	}

	for i := range s.Polygons {
		for j := i + 1; j < len(s.Polygons); j++ {
			a, b := s.Polygons[i], s.Polygons[j]
			velocity := a.Velocity.Vec().Sub(b.Velocity.Vec())

			result := shape.CollisionMoving(polygons[i], polygons[j], velocity)

			slog.Debug("Collision checked",
				slog.String("a", a.Name),
				slog.String("b", b.Name),
				slog.Bool("intersects", result.Intersects),
				slog.Bool("willIntersect", result.WillIntersect),
				slog.Any("mtv", result.MinimumTranslationVector))

			report.Pairs = append(report.Pairs, PairResult{
				A:             a.Name,
				B:             b.Name,
				Intersects:    result.Intersects,
				WillIntersect: result.WillIntersect,
				MTV:           PointOf(result.MinimumTranslationVector),
			})
		}
	}

	for _, probe := range s.Probes {
		for idx, entry := range s.Polygons {
			inside, err := polygons[idx].Contains(probe.Point.Vec())
			if err != nil {
				// Validate guarantees at least two vertices
				slog.Warn("Probe skipped",
					slog.String("probe", probe.Name),
					slog.String("polygon", entry.Name),
					slog.String("error", err.Error()))

				continue
			}

			report.Probes = append(report.Probes, ProbeResult{
				Probe:   probe.Name,
				Polygon: entry.Name,
				Inside:  inside,
			})
		}
	}

	slog.Debug("Scene evaluated",
		slog.Int("polygons", len(s.Polygons)),
		slog.Int("probes", len(s.Probes)),
		slog.Duration("duration", time.Since(startTime)))

	return report
}

func describe(name string, polygon shape.Polygon) PolygonInfo {
	bounds := polygon.Bounds()

	info := PolygonInfo{
		Name:   name,
		Area:   polygon.Area(),
		Convex: polygon.IsConvex(),
		Min:    PointOf(bounds.Min),
		Max:    PointOf(bounds.Max),
	}

	if triangles, err := polygon.Triangulate(); err == nil {
		info.Triangles = len(triangles)
	}

	return info
}

// Pair returns the result for the given pair of polygons, in either order.
func (r Report) Pair(a, b string) (PairResult, bool) {
	for _, pair := range r.Pairs {
		if (pair.A == a && pair.B == b) || (pair.A == b && pair.B == a) {
			return pair, true
		}
	}

	return PairResult{}, false
}

// Probe returns the result of the given probe against the given polygon.
func (r Report) Probe(probe, polygon string) (ProbeResult, bool) {
	for _, result := range r.Probes {
		if result.Probe == probe && result.Polygon == polygon {
			return result, true
		}
	}

	return ProbeResult{}, false
}
