// Package colour provides colour conversion, perceptual colour naming and
// palette analysis for artwork images.
package colour

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB represents an 8-bit colour in the sRGB colour space.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// InvalidColourError reports a colour input that is not a valid 8-bit RGB
// triple or 6-digit hex string.
type InvalidColourError struct {
	Input  string
	Reason string
}

func (e *InvalidColourError) Error() string {
	return fmt.Sprintf("invalid colour %q: %s", e.Input, e.Reason)
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as an uppercase hex string (e.g., "#FF6103").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// NewRGB builds an RGB value from integer channels, validating that each
// channel is within 0-255.
func NewRGB(r, g, b int) (RGB, error) {
	for _, ch := range []int{r, g, b} {
		if ch < 0 || ch > 255 {
			return RGB{}, &InvalidColourError{
				Input:  fmt.Sprintf("(%d, %d, %d)", r, g, b),
				Reason: "channel values must be within 0-255",
			}
		}
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// ParseHex parses a 6-digit hex colour string, with or without a leading
// '#'. The parse is case-insensitive and round-trips through Hex().
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return RGB{}, &InvalidColourError{
			Input:  s,
			Reason: fmt.Sprintf("hex colour must be 6 digits, got %d", len(hex)),
		}
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, &InvalidColourError{Input: s, Reason: "not a valid hex number"}
	}
	return RGB{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
	}, nil
}

// ParseColour parses a colour given either as a hex string ("#FF5733") or
// as a comma-separated RGB triple ("255,87,51").
func ParseColour(s string) (RGB, error) {
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return RGB{}, &InvalidColourError{Input: s, Reason: "RGB colour must have exactly 3 channels"}
		}
		var channels [3]int
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return RGB{}, &InvalidColourError{Input: s, Reason: "RGB channels must be integers"}
			}
			channels[i] = v
		}
		return NewRGB(channels[0], channels[1], channels[2])
	}
	return ParseHex(s)
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255].
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// RGBToColor converts an RGB value to a color.Color (RGBA) with full opacity.
func RGBToColor(rgb RGB) color.Color {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}
