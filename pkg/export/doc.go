// Package export renders generated layouts for inspection and downstream
// tooling: an SVG preview of the floorplate geometry and a JSON document
// carrying the full LayoutOption set.
package export
