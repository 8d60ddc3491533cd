package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pigmentlab/pigment/internal/colour"
)

func testNamer(t *testing.T) *colour.Namer {
	t.Helper()
	namer, err := colour.NewNamer("artist")
	if err != nil {
		t.Fatalf("failed to create namer: %v", err)
	}
	return namer
}

func TestFormatPaletteHex(t *testing.T) {
	palette := colour.NewPalette([]colour.RGB{
		{R: 255, G: 87, B: 51},
		{R: 0, G: 0, B: 0},
	})

	out, err := formatPalette(palette, testNamer(t), "hex", false)
	if err != nil {
		t.Fatalf("formatPalette unexpected error: %v", err)
	}
	if out != "#FF5733\n#000000\n" {
		t.Errorf("hex output = %q", out)
	}
}

func TestFormatPaletteRGB(t *testing.T) {
	palette := colour.NewPalette([]colour.RGB{{R: 255, G: 87, B: 51}})

	out, err := formatPalette(palette, testNamer(t), "rgb", false)
	if err != nil {
		t.Fatalf("formatPalette unexpected error: %v", err)
	}
	if out != "rgb(255, 87, 51)\n" {
		t.Errorf("rgb output = %q", out)
	}
}

func TestFormatPaletteNames(t *testing.T) {
	palette := colour.NewPalette([]colour.RGB{{R: 227, G: 66, B: 52}})

	out, err := formatPalette(palette, testNamer(t), "names", false)
	if err != nil {
		t.Fatalf("formatPalette unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "#E34234  ") {
		t.Errorf("names output missing hex prefix: %q", out)
	}
	if len(strings.TrimSpace(strings.TrimPrefix(out, "#E34234"))) == 0 {
		t.Errorf("names output missing a colour name: %q", out)
	}
}

func TestFormatPaletteJSON(t *testing.T) {
	palette := colour.NewPalette([]colour.RGB{{R: 227, G: 66, B: 52}})

	out, err := formatPalette(palette, testNamer(t), "json", false)
	if err != nil {
		t.Fatalf("formatPalette unexpected error: %v", err)
	}

	var decoded struct {
		Count    int `json:"count"`
		Swatches []struct {
			Hex  string `json:"hex"`
			Name string `json:"name"`
		} `json:"swatches"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("json output invalid: %v", err)
	}
	if decoded.Count != 1 || decoded.Swatches[0].Hex != "#E34234" {
		t.Errorf("json output = %q", out)
	}
	if decoded.Swatches[0].Name == "" {
		t.Errorf("json output has no name: %q", out)
	}
}

func TestFormatPaletteCSS(t *testing.T) {
	palette := colour.NewPalette([]colour.RGB{{R: 227, G: 66, B: 52}})

	out, err := formatPalette(palette, testNamer(t), "css", false)
	if err != nil {
		t.Fatalf("formatPalette unexpected error: %v", err)
	}
	if !strings.Contains(out, "--pigment-1: #E34234;") {
		t.Errorf("css output = %q", out)
	}
}

func TestFormatPaletteUnknown(t *testing.T) {
	palette := colour.NewPalette([]colour.RGB{{R: 1}})
	if _, err := formatPalette(palette, testNamer(t), "yaml", false); err == nil {
		t.Error("unknown format did not fail")
	}
}

func TestSplitCompareArg(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "image path", input: "painting.jpg", want: 1},
		{name: "rgb triple stays one colour", input: "255,87,51", want: 1},
		{name: "hex list", input: "#FF0000,#00FF00,#0000FF", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitCompareArg(tt.input); len(got) != tt.want {
				t.Errorf("splitCompareArg(%q) = %v, want %d parts", tt.input, got, tt.want)
			}
		})
	}
}

func TestHexList(t *testing.T) {
	got := hexList([]colour.RGB{{R: 255, G: 87, B: 51}, {}})
	if len(got) != 2 || got[0] != "#FF5733" || got[1] != "#000000" {
		t.Errorf("hexList = %v", got)
	}
}
