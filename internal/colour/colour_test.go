package colour

import (
	"errors"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{
			name:  "with hash prefix",
			input: "#FF5733",
			want:  RGB{R: 255, G: 87, B: 51},
		},
		{
			name:  "without hash prefix",
			input: "FF5733",
			want:  RGB{R: 255, G: 87, B: 51},
		},
		{
			name:  "lowercase",
			input: "#ff5733",
			want:  RGB{R: 255, G: 87, B: 51},
		},
		{
			name:  "black",
			input: "#000000",
			want:  RGB{R: 0, G: 0, B: 0},
		},
		{
			name:  "white",
			input: "#FFFFFF",
			want:  RGB{R: 255, G: 255, B: 255},
		},
		{
			name:    "too short",
			input:   "#FFF",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   "#FF5733AA",
			wantErr: true,
		},
		{
			name:    "not hex digits",
			input:   "#GGHHII",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) expected error, got %v", tt.input, got)
				}
				var invalidErr *InvalidColourError
				if !errors.As(err, &invalidErr) {
					t.Errorf("ParseHex(%q) error type = %T, want *InvalidColourError", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	colours := []RGB{
		{R: 255, G: 87, B: 51},
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
		{R: 1, G: 2, B: 3},
	}

	for _, c := range colours {
		parsed, err := ParseHex(c.Hex())
		if err != nil {
			t.Fatalf("ParseHex(%q) unexpected error: %v", c.Hex(), err)
		}
		if parsed != c {
			t.Errorf("round trip %v -> %q -> %v", c, c.Hex(), parsed)
		}
	}
}

func TestNewRGB(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    RGB
		wantErr bool
	}{
		{name: "valid", r: 255, g: 87, b: 51, want: RGB{R: 255, G: 87, B: 51}},
		{name: "zero", r: 0, g: 0, b: 0, want: RGB{}},
		{name: "red too high", r: 256, g: 0, b: 0, wantErr: true},
		{name: "green negative", r: 0, g: -1, b: 0, wantErr: true},
		{name: "blue too high", r: 0, g: 0, b: 300, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRGB(tt.r, tt.g, tt.b)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewRGB(%d, %d, %d) expected error", tt.r, tt.g, tt.b)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewRGB(%d, %d, %d) unexpected error: %v", tt.r, tt.g, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("NewRGB(%d, %d, %d) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestParseColour(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{name: "hex", input: "#FF5733", want: RGB{R: 255, G: 87, B: 51}},
		{name: "rgb triple", input: "255,87,51", want: RGB{R: 255, G: 87, B: 51}},
		{name: "rgb with spaces", input: "255, 87, 51", want: RGB{R: 255, G: 87, B: 51}},
		{name: "rgb too few channels", input: "255,87", wantErr: true},
		{name: "rgb channel out of range", input: "255,87,300", wantErr: true},
		{name: "rgb not a number", input: "255,87,zz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColour(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseColour(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColour(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseColour(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRGBString(t *testing.T) {
	c := RGB{R: 255, G: 87, B: 51}
	if got := c.String(); got != "rgb(255, 87, 51)" {
		t.Errorf("String() = %q, want %q", got, "rgb(255, 87, 51)")
	}
	if got := c.Hex(); got != "#FF5733" {
		t.Errorf("Hex() = %q, want %q", got, "#FF5733")
	}
}
