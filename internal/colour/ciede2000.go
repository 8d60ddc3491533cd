package colour

import "math"

// CIEDE2000 computes the CIEDE2000 colour difference between two Lab
// colours with the parametric factors k_L = k_C = k_H = 1.
//
// This is the full published formula (Sharma, Wu, Dalal 2005), including
// the G chroma correction, the hue rotation term and the special handling
// of achromatic colours where the hue angle is undefined. It is not the
// simplified Euclidean Lab distance.
func CIEDE2000(lab1, lab2 Lab) float64 {
	const pow25to7 = 6103515625.0 // 25^7

	c1 := math.Hypot(lab1.A, lab1.B)
	c2 := math.Hypot(lab2.A, lab2.B)
	cBar := (c1 + c2) / 2.0

	cBar7 := math.Pow(cBar, 7)
	g := 0.5 * (1.0 - math.Sqrt(cBar7/(cBar7+pow25to7)))

	a1Prime := lab1.A * (1.0 + g)
	a2Prime := lab2.A * (1.0 + g)

	c1Prime := math.Hypot(a1Prime, lab1.B)
	c2Prime := math.Hypot(a2Prime, lab2.B)

	h1Prime := huePrime(a1Prime, lab1.B)
	h2Prime := huePrime(a2Prime, lab2.B)

	deltaL := lab2.L - lab1.L
	deltaC := c2Prime - c1Prime

	// Hue difference with the wrap-around rule. When either chroma is
	// zero the hue is undefined and the difference is defined as zero.
	var deltaSmallH float64
	switch {
	case c1Prime*c2Prime == 0:
		deltaSmallH = 0
	case math.Abs(h2Prime-h1Prime) <= 180:
		deltaSmallH = h2Prime - h1Prime
	case h2Prime-h1Prime > 180:
		deltaSmallH = h2Prime - h1Prime - 360
	default:
		deltaSmallH = h2Prime - h1Prime + 360
	}
	deltaH := 2.0 * math.Sqrt(c1Prime*c2Prime) * math.Sin(radians(deltaSmallH/2.0))

	lBarPrime := (lab1.L + lab2.L) / 2.0
	cBarPrime := (c1Prime + c2Prime) / 2.0

	// Mean hue, again special-cased for achromatic inputs.
	var hBarPrime float64
	switch {
	case c1Prime*c2Prime == 0:
		hBarPrime = h1Prime + h2Prime
	case math.Abs(h1Prime-h2Prime) <= 180:
		hBarPrime = (h1Prime + h2Prime) / 2.0
	case h1Prime+h2Prime < 360:
		hBarPrime = (h1Prime + h2Prime + 360) / 2.0
	default:
		hBarPrime = (h1Prime + h2Prime - 360) / 2.0
	}

	t := 1.0 -
		0.17*math.Cos(radians(hBarPrime-30)) +
		0.24*math.Cos(radians(2*hBarPrime)) +
		0.32*math.Cos(radians(3*hBarPrime+6)) -
		0.20*math.Cos(radians(4*hBarPrime-63))

	deltaTheta := 30.0 * math.Exp(-math.Pow((hBarPrime-275)/25, 2))

	cBarPrime7 := math.Pow(cBarPrime, 7)
	rc := 2.0 * math.Sqrt(cBarPrime7/(cBarPrime7+pow25to7))

	lTerm := (lBarPrime - 50) * (lBarPrime - 50)
	sl := 1.0 + (0.015*lTerm)/math.Sqrt(20+lTerm)
	sc := 1.0 + 0.045*cBarPrime
	sh := 1.0 + 0.015*cBarPrime*t

	rt := -math.Sin(radians(2*deltaTheta)) * rc

	dl := deltaL / sl
	dc := deltaC / sc
	dh := deltaH / sh

	return math.Sqrt(dl*dl + dc*dc + dh*dh + rt*dc*dh)
}

// huePrime returns the hue angle of (a', b) in degrees, normalised to
// [0, 360). Achromatic colours have no hue; zero is returned to avoid an
// undefined atan2(0, 0).
func huePrime(aPrime, b float64) float64 {
	if aPrime == 0 && b == 0 {
		return 0
	}
	h := degrees(math.Atan2(b, aPrime))
	if h < 0 {
		h += 360
	}
	return h
}

func radians(deg float64) float64 { return deg * math.Pi / 180.0 }

func degrees(rad float64) float64 { return rad * 180.0 / math.Pi }
