package export

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"

	"github.com/dgameiro/floorgen/pkg/floorplate"
	"github.com/dgameiro/floorgen/pkg/synthesis"
	"github.com/dgameiro/floorgen/pkg/unitmix"
)

// SVGOptions configures the floorplate preview.
type SVGOptions struct {
	Scale      float64 // Pixels per meter (default: 10)
	Margin     int     // Canvas margin in pixels (default: 40)
	ShowLabels bool    // Label units with type key and area
	ShowStats  bool    // Render the stats block under the plan
	Title      string  // Optional title
}

// DefaultSVGOptions returns sensible preview options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Scale:      10,
		Margin:     40,
		ShowLabels: true,
		ShowStats:  true,
	}
}

// Fallback fill palette for unit types without a configured color, picked by
// the type's position in the catalog.
var typePalette = []string{
	"#7fb2d9", "#8fd9a8", "#e0b470", "#d98f8f", "#b39fd9", "#d9cf7f",
}

const (
	corridorFill = "#e8e4da"
	coreFill     = "#6b6b78"
	utilityFill  = "#c9c4b8"
	outlineStyle = "fill:none;stroke:#2b2b33;stroke-width:2"
)

// ExportSVG renders one layout option to SVG bytes.
func ExportSVG(opt *floorplate.LayoutOption, types []unitmix.TypeSpec, opts SVGOptions) ([]byte, error) {
	if opt == nil {
		return nil, fmt.Errorf("layout option cannot be nil")
	}
	if opts.Scale <= 0 {
		opts.Scale = 10
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}

	colors := make(map[string]string, len(types))
	for i := range types {
		c := types[i].Color
		if c == "" {
			c = typePalette[i%len(typePalette)]
		}
		colors[types[i].Key] = c
	}

	planW := int(opt.BuildingLength * opts.Scale)
	planH := int(opt.BuildingDepth * opts.Scale)
	width := planW + 2*opts.Margin
	height := planH + 2*opts.Margin
	if opts.ShowStats {
		height += 110
	}
	if opts.Title != "" {
		height += 30
	}

	// Local frame → canvas: origin at footprint center, Y flipped so north
	// is up.
	top := opts.Margin
	if opts.Title != "" {
		top += 30
	}
	px := func(x float64) int {
		return opts.Margin + int((x+opt.BuildingLength/2)*opts.Scale)
	}
	py := func(y float64) int {
		return top + int((opt.BuildingDepth/2-y)*opts.Scale)
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#f7f5f0")

	if opts.Title != "" {
		canvas.Text(width/2, opts.Margin-10, opts.Title,
			"text-anchor:middle;font-size:18px;font-family:sans-serif;fill:#2b2b33")
	}

	// Units first so the outline draws over shared edges.
	for _, u := range opt.Units {
		drawUnit(canvas, u, colors, px, py, opts)
	}

	cr := opt.Corridor
	canvas.Rect(px(cr.X), py(cr.MaxY()),
		int(cr.Width*opts.Scale), int(cr.Depth*opts.Scale),
		"fill:"+corridorFill)

	for _, c := range opt.Cores {
		r := c.Rect
		canvas.Rect(px(r.X), py(r.MaxY()),
			int(r.Width*opts.Scale), int(r.Depth*opts.Scale),
			"fill:"+coreFill)
		if opts.ShowLabels {
			canvas.Text(px(r.CenterX()), py(r.CenterY())+4, string(c.Kind),
				"text-anchor:middle;font-size:10px;font-family:sans-serif;fill:#ffffff")
		}
	}

	canvas.Rect(px(-opt.BuildingLength/2), py(opt.BuildingDepth/2), planW, planH, outlineStyle)

	if opts.ShowStats {
		drawStats(canvas, opt, opts.Margin, top+planH+20)
	}

	canvas.End()
	return buf.Bytes(), nil
}

func drawUnit(canvas *svg.SVG, u *synthesis.Unit, colors map[string]string,
	px func(float64) int, py func(float64) int, opts SVGOptions) {

	fill := colors[u.TypeKey]
	if u.IsUtility {
		fill = utilityFill
	}
	style := fmt.Sprintf("fill:%s;stroke:#5a5a66;stroke-width:1", fill)

	if r, ok := u.Region.Rect(); ok {
		canvas.Rect(px(r.X), py(r.MaxY()),
			int(r.Width*opts.Scale), int(r.Depth*opts.Scale), style)
	} else {
		vs := u.Region.Vertices()
		xs := make([]int, len(vs))
		ys := make([]int, len(vs))
		for i, v := range vs {
			xs[i] = px(v.X)
			ys[i] = py(v.Y)
		}
		canvas.Polygon(xs, ys, style)
	}

	if opts.ShowLabels && !u.IsUtility {
		c := u.Region.Centroid()
		label := fmt.Sprintf("%s %.0fm²", u.TypeKey, u.Area)
		canvas.Text(px(c.X), py(c.Y)+3, label,
			"text-anchor:middle;font-size:9px;font-family:sans-serif;fill:#2b2b33")
	}
}

func drawStats(canvas *svg.SVG, opt *floorplate.LayoutOption, x, y int) {
	line := func(n int, s string) {
		canvas.Text(x, y+n*18, s, "font-size:12px;font-family:sans-serif;fill:#2b2b33")
	}
	line(0, fmt.Sprintf("Strategy: %s", opt.Strategy))
	line(1, fmt.Sprintf("GSF %.0f m²  NRSF %.0f m²  Efficiency %.1f%%",
		opt.Stats.GSF, opt.Stats.NRSF, opt.Stats.Efficiency*100))
	line(2, fmt.Sprintf("Units: %d  Cores: %d", opt.Stats.TotalUnits, len(opt.Cores)))

	status := func(m string, r bool) string {
		if r {
			return m + " PASS"
		}
		return m + " FAIL"
	}
	line(3, fmt.Sprintf("Egress: %s  %s  %s",
		status("dead-end", opt.Egress.DeadEnd.Pass),
		status("travel", opt.Egress.TravelDistance.Pass),
		status("common-path", opt.Egress.CommonPath.Pass)))
	if len(opt.Warnings) > 0 {
		line(4, fmt.Sprintf("Warnings: %d", len(opt.Warnings)))
	}
}
