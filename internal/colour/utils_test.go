package colour

import (
	"math"
	"strings"
	"testing"
)

func TestLuminance(t *testing.T) {
	if got := Luminance(RGB{R: 255, G: 255, B: 255}); math.Abs(got-1.0) > 0.001 {
		t.Errorf("Luminance(white) = %g, want 1", got)
	}
	if got := Luminance(RGB{R: 0, G: 0, B: 0}); got != 0 {
		t.Errorf("Luminance(black) = %g, want 0", got)
	}

	// Green contributes the most to perceived luminance.
	r := Luminance(RGB{R: 255})
	g := Luminance(RGB{G: 255})
	b := Luminance(RGB{B: 255})
	if !(g > r && r > b) {
		t.Errorf("luminance ordering wrong: r=%g g=%g b=%g", r, g, b)
	}
}

func TestContrastRatio(t *testing.T) {
	got := ContrastRatio(RGB{R: 255, G: 255, B: 255}, RGB{R: 0, G: 0, B: 0})
	if math.Abs(got-21.0) > 0.01 {
		t.Errorf("ContrastRatio(white, black) = %g, want 21", got)
	}

	same := ContrastRatio(RGB{R: 128, G: 128, B: 128}, RGB{R: 128, G: 128, B: 128})
	if math.Abs(same-1.0) > 0.001 {
		t.Errorf("ContrastRatio(grey, grey) = %g, want 1", same)
	}

	// Order must not matter.
	a := RGB{R: 200, G: 50, B: 50}
	b := RGB{R: 50, G: 50, B: 200}
	if ContrastRatio(a, b) != ContrastRatio(b, a) {
		t.Error("ContrastRatio is not symmetric")
	}
}

func TestHueDistance(t *testing.T) {
	tests := []struct {
		h1, h2 float64
		want   float64
	}{
		{0, 0, 0},
		{0, 180, 180},
		{10, 350, 20},
		{350, 10, 20},
		{90, 270, 180},
		{359, 1, 2},
	}

	for _, tt := range tests {
		if got := HueDistance(tt.h1, tt.h2); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("HueDistance(%g, %g) = %g, want %g", tt.h1, tt.h2, got, tt.want)
		}
	}
}

func TestHSLToRGBRoundTrip(t *testing.T) {
	colours := []RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 128, B: 255},
		{R: 34, G: 177, B: 76},
		{R: 255, G: 255, B: 255},
		{R: 0, G: 0, B: 0},
	}

	for _, c := range colours {
		h, s, l := rgbToHSL(c)
		got := HSLToRGB(h, s, l)
		if intAbs(int(got.R)-int(c.R)) > 1 ||
			intAbs(int(got.G)-int(c.G)) > 1 ||
			intAbs(int(got.B)-int(c.B)) > 1 {
			t.Errorf("round trip %v -> %v", c, got)
		}
	}
}

func TestColourPreview(t *testing.T) {
	out := ColourPreview(RGB{R: 255, G: 87, B: 51}, 4)
	if !strings.Contains(out, "48;2;255;87;51") {
		t.Errorf("preview missing background escape: %q", out)
	}
	if !strings.HasSuffix(out, "\033[0m") {
		t.Errorf("preview missing reset: %q", out)
	}
	if !strings.Contains(out, "    ") {
		t.Errorf("preview missing 4-wide block: %q", out)
	}
}

func TestColourPreviewWithText(t *testing.T) {
	// Dark background gets white text, light background black text.
	dark := ColourPreviewWithText(RGB{R: 10, G: 10, B: 10}, "ink", 8)
	if !strings.Contains(dark, "38;2;255;255;255") {
		t.Errorf("dark background without white text: %q", dark)
	}

	light := ColourPreviewWithText(RGB{R: 250, G: 250, B: 240}, "chalk", 8)
	if !strings.Contains(light, "38;2;0;0;0") {
		t.Errorf("light background without black text: %q", light)
	}
}
