package colour

import (
	"encoding/json"
	"fmt"
)

// Swatch is one colour of a palette together with its relative weight,
// the fraction of sampled pixels its cluster covered. Weights are zero
// for palettes built without extraction.
type Swatch struct {
	Colour RGB
	Weight float64
}

// Palette is an ordered collection of colours extracted from an artwork.
type Palette struct {
	Swatches []Swatch
}

// NewPalette creates an unweighted Palette from a list of colours.
func NewPalette(colours []RGB) *Palette {
	swatches := make([]Swatch, len(colours))
	for i, c := range colours {
		swatches[i] = Swatch{Colour: c}
	}
	return &Palette{Swatches: swatches}
}

// NewWeightedPalette creates a Palette with per-colour weights, ordered
// by descending weight so the dominant colour comes first.
func NewWeightedPalette(colours []RGB, weights []float64) (*Palette, error) {
	if len(colours) != len(weights) {
		return nil, fmt.Errorf("colour count %d does not match weight count %d", len(colours), len(weights))
	}

	swatches := make([]Swatch, len(colours))
	for i, c := range colours {
		swatches[i] = Swatch{Colour: c, Weight: weights[i]}
	}
	for i := 1; i < len(swatches); i++ {
		for j := i; j > 0 && swatches[j].Weight > swatches[j-1].Weight; j-- {
			swatches[j], swatches[j-1] = swatches[j-1], swatches[j]
		}
	}
	return &Palette{Swatches: swatches}, nil
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Swatches)
}

// Colours returns the palette colours in order.
func (p *Palette) Colours() []RGB {
	colours := make([]RGB, len(p.Swatches))
	for i, s := range p.Swatches {
		colours[i] = s.Colour
	}
	return colours
}

// Hex returns the palette colours as hex strings.
func (p *Palette) Hex() []string {
	hexes := make([]string, len(p.Swatches))
	for i, s := range p.Swatches {
		hexes[i] = s.Colour.Hex()
	}
	return hexes
}

// Dominant returns the heaviest swatch of the palette.
func (p *Palette) Dominant() (Swatch, error) {
	if len(p.Swatches) == 0 {
		return Swatch{}, fmt.Errorf("palette is empty")
	}
	best := p.Swatches[0]
	for _, s := range p.Swatches[1:] {
		if s.Weight > best.Weight {
			best = s
		}
	}
	return best, nil
}

// Get returns the colour at the specified index.
func (p *Palette) Get(index int) (RGB, error) {
	if index < 0 || index >= len(p.Swatches) {
		return RGB{}, fmt.Errorf("index out of bounds: %d (palette has %d colours)", index, len(p.Swatches))
	}
	return p.Swatches[index].Colour, nil
}

// swatchJSON is the JSON shape of a palette swatch.
type swatchJSON struct {
	Hex    string  `json:"hex"`
	RGB    RGB     `json:"rgb"`
	Weight float64 `json:"weight,omitempty"`
}

// paletteJSON is the JSON shape of a palette.
type paletteJSON struct {
	Count   int          `json:"count"`
	Colours []swatchJSON `json:"colours"`
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	out := paletteJSON{
		Count:   len(p.Swatches),
		Colours: make([]swatchJSON, len(p.Swatches)),
	}
	for i, s := range p.Swatches {
		out.Colours[i] = swatchJSON{
			Hex:    s.Colour.Hex(),
			RGB:    s.Colour,
			Weight: s.Weight,
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

// String returns a human-readable listing of the palette.
func (p *Palette) String() string {
	if len(p.Swatches) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colours:\n", len(p.Swatches))
	for i, s := range p.Swatches {
		if s.Weight > 0 {
			result += fmt.Sprintf("  %2d: %s (%s) %.1f%%\n", i+1, s.Colour.Hex(), s.Colour.String(), s.Weight*100)
		} else {
			result += fmt.Sprintf("  %2d: %s (%s)\n", i+1, s.Colour.Hex(), s.Colour.String())
		}
	}
	return result
}
