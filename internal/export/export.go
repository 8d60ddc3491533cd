// Package export renders extracted palettes as CSS custom properties
// and machine-readable JSON.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pigmentlab/pigment/internal/colour"
)

// CSS renders a palette as a :root block of custom properties,
// --pigment-1 through --pigment-N in dominance order. When names are
// provided (one per swatch) each declaration carries the colour name as
// a trailing comment.
func CSS(p *colour.Palette, names []string) (string, error) {
	if p == nil || p.Len() == 0 {
		return "", fmt.Errorf("palette is empty")
	}
	if names != nil && len(names) != p.Len() {
		return "", fmt.Errorf("got %d names for %d colours", len(names), p.Len())
	}

	var b strings.Builder
	b.WriteString(":root {\n")
	for i, sw := range p.Swatches {
		b.WriteString(fmt.Sprintf("  --pigment-%d: %s;", i+1, sw.Colour.Hex()))
		if names != nil {
			b.WriteString(" /* " + names[i] + " */")
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	return b.String(), nil
}

// namedSwatch is the JSON shape of one named palette entry.
type namedSwatch struct {
	Hex    string        `json:"hex"`
	RGB    []int         `json:"rgb"`
	Weight float64       `json:"weight"`
	Name   string        `json:"name,omitempty"`
	Match  *colour.Match `json:"match,omitempty"`
}

// namedPalette is the JSON shape of a named palette.
type namedPalette struct {
	Count    int           `json:"count"`
	Swatches []namedSwatch `json:"swatches"`
}

// JSON renders a palette as indented JSON. Optional matches (one per
// swatch) attach vocabulary names and distances to each entry.
func JSON(p *colour.Palette, matches []colour.Match) (string, error) {
	if p == nil || p.Len() == 0 {
		return "", fmt.Errorf("palette is empty")
	}
	if matches != nil && len(matches) != p.Len() {
		return "", fmt.Errorf("got %d matches for %d colours", len(matches), p.Len())
	}

	out := namedPalette{
		Count:    p.Len(),
		Swatches: make([]namedSwatch, 0, p.Len()),
	}
	for i, sw := range p.Swatches {
		ns := namedSwatch{
			Hex:    sw.Colour.Hex(),
			RGB:    []int{int(sw.Colour.R), int(sw.Colour.G), int(sw.Colour.B)},
			Weight: sw.Weight,
		}
		if matches != nil {
			m := matches[i]
			ns.Name = m.Name
			ns.Match = &m
		}
		out.Swatches = append(out.Swatches, ns)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal palette: %w", err)
	}
	return string(data), nil
}
