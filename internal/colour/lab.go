package colour

import "math"

// Lab represents a colour in the CIE L*a*b* colour space, computed for the
// D65 illuminant and the 2 degree standard observer.
type Lab struct {
	L float64
	A float64
	B float64
}

// D65 reference white point.
const (
	whiteX = 0.95047
	whiteY = 1.00000
	whiteZ = 1.08883
)

// ToLab converts an sRGB colour to CIE Lab via the
// sRGB -> linear -> XYZ(D65) -> Lab pipeline. The conversion is a pure
// function of the input; repeated calls yield bit-identical results.
func ToLab(c RGB) Lab {
	r := srgbToLinear(float64(c.R) / 255.0)
	g := srgbToLinear(float64(c.G) / 255.0)
	b := srgbToLinear(float64(c.B) / 255.0)

	// Linear RGB to XYZ using the standard D65 matrix.
	x := r*0.4124564 + g*0.3575761 + b*0.1804375
	y := r*0.2126729 + g*0.7151522 + b*0.0721750
	z := r*0.0193339 + g*0.1191920 + b*0.9503041

	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	return Lab{
		L: 116.0*fy - 16.0,
		A: 500.0 * (fx - fy),
		B: 200.0 * (fy - fz),
	}
}

// srgbToLinear applies inverse sRGB companding to a channel in [0, 1].
func srgbToLinear(ch float64) float64 {
	if ch <= 0.04045 {
		return ch / 12.92
	}
	return math.Pow((ch+0.055)/1.055, 2.4)
}

// labF is the CIE f(t) function used by the XYZ to Lab conversion.
func labF(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	return t/(3*delta*delta) + 4.0/29.0
}
