package scene

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// WriteText writes the report as human readable tables.
func (r Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	_, _ = fmt.Fprintln(tw, "POLYGON\tAREA\tCONVEX\tTRIANGLES\tMIN\tMAX")
	for _, info := range r.Polygons {
		_, _ = fmt.Fprintf(tw, "%s\t%.4g\t%t\t%d\t%s\t%s\n",
			info.Name, info.Area, info.Convex, info.Triangles, info.Min, info.Max)
	}

	_, _ = fmt.Fprintln(tw)
	_, _ = fmt.Fprintln(tw, "A\tB\tINTERSECTS\tWILL INTERSECT\tMTV")
	for _, pair := range r.Pairs {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%t\t%t\t%s\n",
			pair.A, pair.B, pair.Intersects, pair.WillIntersect, pair.MTV)
	}

	if len(r.Probes) > 0 {
		_, _ = fmt.Fprintln(tw)
		_, _ = fmt.Fprintln(tw, "PROBE\tPOLYGON\tINSIDE")
		for _, probe := range r.Probes {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%t\n", probe.Probe, probe.Polygon, probe.Inside)
		}
	}

	return tw.Flush()
}

// WriteYAML writes the report as a yaml document.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return enc.Close()
}

func (p Point) String() string {
	return fmt.Sprintf("(%.4g, %.4g)", p[0], p[1])
}
