package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dgameiro/floorgen/pkg/cores"
	"github.com/dgameiro/floorgen/pkg/corridor"
	"github.com/dgameiro/floorgen/pkg/floorplate"
	"github.com/dgameiro/floorgen/pkg/unitmix"
)

func exportFixture(t *testing.T) ([]floorplate.LayoutOption, []unitmix.TypeSpec) {
	t.Helper()
	types := []unitmix.TypeSpec{
		{
			Key: "studio", DisplayName: "Studio", TargetArea: 54.8, TargetPercentage: 30,
			Color: "#7fb2d9",
			Advanced: unitmix.AdvancedSettings{
				CornerEligible: true, SizeTolerance: 15, MinWidth: 3.6, MaxWidth: 14,
				PlacementPriority: 40, ExpansionWeight: 1, CompressionWeight: 1,
			},
		},
		{
			Key: "two-bed", DisplayName: "2 Bedroom", TargetArea: 109.6, TargetPercentage: 70,
			Advanced: unitmix.AdvancedSettings{
				CornerEligible: true, LShapeEligible: true, SizeTolerance: 15,
				MinWidth: 7.2, MaxWidth: 18, PlacementPriority: 80,
				ExpansionWeight: 1, CompressionWeight: 1,
			},
		},
	}
	in := floorplate.Input{
		Footprint: floorplate.Footprint{Length: 91.44, Depth: 19.81},
		UnitTypes: types,
		Corridor:  floorplate.CorridorSpec{Width: 1.52},
		Cores:     cores.Config{Width: 3.66, Depth: 7.62, Side: corridor.SideNorth},
		Egress: cores.EgressSpec{
			Sprinklered: true, DeadEndLimit: 15.24,
			TravelDistanceLimit: 76.2, CommonPathLimit: 38.1,
		},
		AlignmentStrictness: 0.7,
	}
	options, err := floorplate.Generate(in)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	return options, types
}

func TestExportJSON_RoundTrip(t *testing.T) {
	options, _ := exportFixture(t)
	data, err := ExportJSON(options, true)
	if err != nil {
		t.Fatalf("ExportJSON() failed: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("exported JSON does not parse: %v", err)
	}
	if doc.Version != formatVersion {
		t.Errorf("version = %q, want %q", doc.Version, formatVersion)
	}
	if len(doc.Options) != len(options) {
		t.Fatalf("option count = %d, want %d", len(doc.Options), len(options))
	}

	first := doc.Options[0]
	if first.Strategy != string(options[0].Strategy) {
		t.Errorf("strategy = %q, want %q", first.Strategy, options[0].Strategy)
	}
	if len(first.Units) != len(options[0].Units) {
		t.Errorf("unit count = %d, want %d", len(first.Units), len(options[0].Units))
	}
	for _, u := range first.Units {
		if len(u.Vertices) < 4 {
			t.Errorf("unit %s has %d vertices, want at least 4", u.TypeKey, len(u.Vertices))
		}
	}
	if len(first.Cores) != 2 {
		t.Errorf("core count = %d, want 2", len(first.Cores))
	}
}

func TestExportJSON_Empty(t *testing.T) {
	if _, err := ExportJSON(nil, false); err == nil {
		t.Fatal("ExportJSON() accepted an empty option list")
	}
}

func TestExportJSON_Deterministic(t *testing.T) {
	options, _ := exportFixture(t)
	a, err := ExportJSON(options, false)
	if err != nil {
		t.Fatalf("ExportJSON() failed: %v", err)
	}
	b, err := ExportJSON(options, false)
	if err != nil {
		t.Fatalf("ExportJSON() failed: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("JSON export is not byte-identical across runs")
	}
}

func TestExportSVG_Structure(t *testing.T) {
	options, types := exportFixture(t)
	data, err := ExportSVG(&options[0], types, DefaultSVGOptions())
	if err != nil {
		t.Fatalf("ExportSVG() failed: %v", err)
	}

	s := string(data)
	if !strings.Contains(s, "<svg") || !strings.Contains(s, "</svg>") {
		t.Error("output is not an SVG document")
	}
	// The configured studio color must appear.
	if !strings.Contains(s, "#7fb2d9") {
		t.Error("configured unit color missing from SVG")
	}
	// One rect per core plus corridor, outline and background at minimum.
	if strings.Count(s, "<rect") < 5 {
		t.Errorf("rect count = %d, want at least 5", strings.Count(s, "<rect"))
	}
}

func TestExportSVG_NilOption(t *testing.T) {
	if _, err := ExportSVG(nil, nil, DefaultSVGOptions()); err == nil {
		t.Fatal("ExportSVG() accepted nil option")
	}
}

func TestExportSVG_TitleAndStats(t *testing.T) {
	options, types := exportFixture(t)
	opts := DefaultSVGOptions()
	opts.Title = "Floorplate Preview"
	data, err := ExportSVG(&options[0], types, opts)
	if err != nil {
		t.Fatalf("ExportSVG() failed: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, "Floorplate Preview") {
		t.Error("title missing from SVG")
	}
	if !strings.Contains(s, "Efficiency") {
		t.Error("stats block missing from SVG")
	}
}
