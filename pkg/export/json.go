package export

import (
	"encoding/json"
	"fmt"

	"github.com/dgameiro/floorgen/pkg/floorplate"
	"github.com/dgameiro/floorgen/pkg/geometry"
	"github.com/dgameiro/floorgen/pkg/synthesis"
	"github.com/dgameiro/floorgen/pkg/validation"
)

// Document is the JSON export envelope.
type Document struct {
	Version string         `json:"version"`
	Options []LayoutRecord `json:"options"`
}

// LayoutRecord is the serialized form of one LayoutOption. Unit regions are
// flattened to vertex lists so rectangles and L-shapes read uniformly.
type LayoutRecord struct {
	Strategy       string                  `json:"strategy"`
	BuildingLength float64                 `json:"buildingLength"`
	BuildingDepth  float64                 `json:"buildingDepth"`
	FloorElevation float64                 `json:"floorElevation"`
	Corridor       geometry.Rect           `json:"corridor"`
	Cores          []CoreRecord            `json:"cores"`
	Units          []UnitRecord            `json:"units"`
	Stats          validation.Stats        `json:"stats"`
	Egress         validation.EgressReport `json:"egress"`
	Transform      geometry.Transform      `json:"transform"`
	Warnings       []string                `json:"warnings,omitempty"`
}

// CoreRecord serializes one core block.
type CoreRecord struct {
	Rect geometry.Rect `json:"rect"`
	Side string        `json:"side"`
	Kind string        `json:"kind"`
}

// UnitRecord serializes one unit block.
type UnitRecord struct {
	TypeKey   string           `json:"typeKey"`
	Side      string           `json:"side"`
	Vertices  []geometry.Point `json:"vertices"`
	Width     float64          `json:"width"`
	Depth     float64          `json:"depth"`
	Area      float64          `json:"area"`
	IsCorner  bool             `json:"isCorner,omitempty"`
	IsEnd     bool             `json:"isEnd,omitempty"`
	IsLShaped bool             `json:"isLShaped,omitempty"`
	IsUtility bool             `json:"isUtility,omitempty"`
}

// formatVersion identifies the export schema.
const formatVersion = "1.0"

// ExportJSON serializes layout options, optionally indented.
func ExportJSON(options []floorplate.LayoutOption, pretty bool) ([]byte, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("no layout options to export")
	}

	doc := Document{Version: formatVersion}
	for i := range options {
		doc.Options = append(doc.Options, toRecord(&options[i]))
	}

	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

func toRecord(opt *floorplate.LayoutOption) LayoutRecord {
	rec := LayoutRecord{
		Strategy:       string(opt.Strategy),
		BuildingLength: opt.BuildingLength,
		BuildingDepth:  opt.BuildingDepth,
		FloorElevation: opt.FloorElevation,
		Corridor:       opt.Corridor,
		Stats:          opt.Stats,
		Egress:         opt.Egress,
		Transform:      opt.Transform,
		Warnings:       opt.Warnings,
	}
	for _, c := range opt.Cores {
		rec.Cores = append(rec.Cores, CoreRecord{
			Rect: c.Rect,
			Side: string(c.Side),
			Kind: string(c.Kind),
		})
	}
	for _, u := range opt.Units {
		rec.Units = append(rec.Units, toUnitRecord(u))
	}
	return rec
}

func toUnitRecord(u *synthesis.Unit) UnitRecord {
	return UnitRecord{
		TypeKey:   u.TypeKey,
		Side:      string(u.Side),
		Vertices:  u.Region.Vertices(),
		Width:     u.Width,
		Depth:     u.Depth,
		Area:      u.Area,
		IsCorner:  u.IsCorner,
		IsEnd:     u.IsEnd,
		IsLShaped: u.IsLShaped,
		IsUtility: u.IsUtility,
	}
}
