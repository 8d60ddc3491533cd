package colour

import "math"

// HSV represents a colour as hue (0-360 degrees), saturation (0-100) and
// value (0-100). The ranges match how artists usually discuss colour.
type HSV struct {
	H float64
	S float64
	V float64
}

// HSL represents a colour as hue (0-360 degrees), saturation (0-100) and
// lightness (0-100).
type HSL struct {
	H float64
	S float64
	L float64
}

// RGBToHSV converts an sRGB colour to HSV.
func RGBToHSV(c RGB) HSV {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	v := maxVal

	var s float64
	if maxVal > 0 {
		s = delta / maxVal
	}

	return HSV{H: hueOf(r, g, b, maxVal, delta), S: s * 100, V: v * 100}
}

// HSVToRGB converts an HSV colour back to sRGB. Inputs outside the valid
// ranges are rejected with an InvalidColourError.
func HSVToRGB(hsv HSV) (RGB, error) {
	if hsv.H < 0 || hsv.H > 360 || hsv.S < 0 || hsv.S > 100 || hsv.V < 0 || hsv.V > 100 {
		return RGB{}, &InvalidColourError{
			Input:  "HSV",
			Reason: "H must be 0-360, S and V must be 0-100",
		}
	}

	h := math.Mod(hsv.H, 360) / 60.0
	s := hsv.S / 100.0
	v := hsv.V / 100.0

	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}

	return RGB{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
	}, nil
}

// RGBToHSL converts an sRGB colour to HSL.
func RGBToHSL(c RGB) HSL {
	h, s, l := rgbToHSL(c)
	return HSL{H: h, S: s * 100, L: l * 100}
}

// HSLFromPercentToRGB converts an HSL colour (degrees and percentages)
// back to sRGB, rejecting out-of-range inputs.
func HSLFromPercentToRGB(hsl HSL) (RGB, error) {
	if hsl.H < 0 || hsl.H > 360 || hsl.S < 0 || hsl.S > 100 || hsl.L < 0 || hsl.L > 100 {
		return RGB{}, &InvalidColourError{
			Input:  "HSL",
			Reason: "H must be 0-360, S and L must be 0-100",
		}
	}
	return HSLToRGB(hsl.H, hsl.S/100.0, hsl.L/100.0), nil
}

// hueOf computes the hue in degrees shared by the HSV and HSL conversions.
func hueOf(r, g, b, maxVal, delta float64) float64 {
	if delta == 0 {
		return 0
	}
	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	return h * 60
}

// PaletteStatistics holds descriptive statistics of a colour palette.
type PaletteStatistics struct {
	Count          int     `json:"count"`
	MeanRGB        RGB     `json:"mean_rgb"`
	StdR           float64 `json:"std_r"`
	StdG           float64 `json:"std_g"`
	StdB           float64 `json:"std_b"`
	MeanHue        float64 `json:"mean_hue"`
	MeanSaturation float64 `json:"mean_saturation"`
	MeanValue      float64 `json:"mean_value"`
	StdHue         float64 `json:"std_hue"`
	StdSaturation  float64 `json:"std_saturation"`
	StdValue       float64 `json:"std_value"`
}

// Statistics computes descriptive colour statistics for a palette. The
// mean hue is a circular mean, so hues straddling 0/360 average sensibly.
func Statistics(colours []RGB) PaletteStatistics {
	if len(colours) == 0 {
		return PaletteStatistics{}
	}

	n := float64(len(colours))

	var sumR, sumG, sumB float64
	for _, c := range colours {
		sumR += float64(c.R)
		sumG += float64(c.G)
		sumB += float64(c.B)
	}
	meanR, meanG, meanB := sumR/n, sumG/n, sumB/n

	var varR, varG, varB float64
	for _, c := range colours {
		varR += (float64(c.R) - meanR) * (float64(c.R) - meanR)
		varG += (float64(c.G) - meanG) * (float64(c.G) - meanG)
		varB += (float64(c.B) - meanB) * (float64(c.B) - meanB)
	}

	hsvs := make([]HSV, len(colours))
	var sinSum, cosSum float64
	for i, c := range colours {
		hsvs[i] = RGBToHSV(c)
		sinSum += math.Sin(radians(hsvs[i].H))
		cosSum += math.Cos(radians(hsvs[i].H))
	}
	meanHue := math.Mod(degrees(math.Atan2(sinSum/n, cosSum/n))+360, 360)

	meanOf := func(get func(HSV) float64) float64 {
		var sum float64
		for _, hsv := range hsvs {
			sum += get(hsv)
		}
		return sum / n
	}
	stdOf := func(get func(HSV) float64, mean float64) float64 {
		var sum float64
		for _, hsv := range hsvs {
			d := get(hsv) - mean
			sum += d * d
		}
		return math.Sqrt(sum / n)
	}

	hue := func(h HSV) float64 { return h.H }
	sat := func(h HSV) float64 { return h.S }
	val := func(h HSV) float64 { return h.V }

	return PaletteStatistics{
		Count:          len(colours),
		MeanRGB:        RGB{R: uint8(math.Round(meanR)), G: uint8(math.Round(meanG)), B: uint8(math.Round(meanB))},
		StdR:           math.Sqrt(varR / n),
		StdG:           math.Sqrt(varG / n),
		StdB:           math.Sqrt(varB / n),
		MeanHue:        meanHue,
		MeanSaturation: meanOf(sat),
		MeanValue:      meanOf(val),
		StdHue:         stdOf(hue, meanOf(hue)),
		StdSaturation:  stdOf(sat, meanOf(sat)),
		StdValue:       stdOf(val, meanOf(val)),
	}
}

// hueBins is the number of histogram bins used for the diversity score,
// matching the twelve segments of a traditional colour wheel.
const hueBins = 12

// Diversity scores how varied a palette's hues are using the Shannon
// entropy of a 12-bin hue histogram, normalised to 0-1. Monochrome
// palettes score near zero; palettes spread around the wheel score high.
func Diversity(colours []RGB) float64 {
	if len(colours) < 2 {
		return 0.0
	}

	var histogram [hueBins]float64
	for _, c := range colours {
		bin := int(RGBToHSV(c).H / (360.0 / hueBins))
		if bin >= hueBins {
			bin = hueBins - 1
		}
		histogram[bin]++
	}

	total := float64(len(colours))
	var entropy float64
	for _, count := range histogram {
		if count == 0 {
			continue
		}
		p := count / total
		entropy -= p * math.Log2(p)
	}

	return entropy / math.Log2(hueBins)
}

// SaturationScore returns the mean saturation (0-100) of a palette. Bold
// styles tend high; muted styles tend low.
func SaturationScore(colours []RGB) float64 {
	if len(colours) == 0 {
		return 0.0
	}
	var sum float64
	for _, c := range colours {
		sum += RGBToHSV(c).S
	}
	return sum / float64(len(colours))
}

// BrightnessScore returns the mean value (0-100) of a palette.
func BrightnessScore(colours []RGB) float64 {
	if len(colours) == 0 {
		return 0.0
	}
	var sum float64
	for _, c := range colours {
		sum += RGBToHSV(c).V
	}
	return sum / float64(len(colours))
}

// Temperature classifies a colour as warm, cool or neutral.
type Temperature string

const (
	TemperatureWarm    Temperature = "warm"
	TemperatureCool    Temperature = "cool"
	TemperatureNeutral Temperature = "neutral"
)

// ClassifyTemperature assigns a colour temperature from its hue. Colours
// with very low saturation read as neutral regardless of hue.
func ClassifyTemperature(c RGB) Temperature {
	hsv := RGBToHSV(c)
	if hsv.S < 10 {
		return TemperatureNeutral
	}
	switch {
	case hsv.H <= 60 || hsv.H >= 300:
		return TemperatureWarm
	case hsv.H >= 120 && hsv.H <= 300:
		return TemperatureCool
	default:
		return TemperatureNeutral
	}
}

// TemperatureDistribution summarises warm versus cool usage in a palette.
type TemperatureDistribution struct {
	Warm              int         `json:"warm"`
	Cool              int         `json:"cool"`
	Neutral           int         `json:"neutral"`
	WarmPercentage    float64     `json:"warm_percentage"`
	CoolPercentage    float64     `json:"cool_percentage"`
	NeutralPercentage float64     `json:"neutral_percentage"`
	Dominant          Temperature `json:"dominant"`
}

// AnalyzeTemperature computes the warm/cool/neutral distribution of a
// palette.
func AnalyzeTemperature(colours []RGB) TemperatureDistribution {
	var dist TemperatureDistribution
	if len(colours) == 0 {
		return dist
	}

	for _, c := range colours {
		switch ClassifyTemperature(c) {
		case TemperatureWarm:
			dist.Warm++
		case TemperatureCool:
			dist.Cool++
		default:
			dist.Neutral++
		}
	}

	total := float64(len(colours))
	dist.WarmPercentage = float64(dist.Warm) / total * 100
	dist.CoolPercentage = float64(dist.Cool) / total * 100
	dist.NeutralPercentage = float64(dist.Neutral) / total * 100

	dist.Dominant = TemperatureWarm
	if dist.Cool > dist.Warm {
		dist.Dominant = TemperatureCool
	}
	if dist.Neutral > dist.Warm && dist.Neutral > dist.Cool {
		dist.Dominant = TemperatureNeutral
	}
	return dist
}

// PaletteComparison holds the statistical deltas between two palettes.
type PaletteComparison struct {
	First          PaletteStatistics `json:"first"`
	Second         PaletteStatistics `json:"second"`
	HueDiff        float64           `json:"hue_diff"`
	SaturationDiff float64           `json:"saturation_diff"`
	BrightnessDiff float64           `json:"brightness_diff"`
	DiversityDiff  float64           `json:"diversity_diff"`
}

// ComparePalettes compares two palettes statistically, for side-by-side
// discussion of artistic styles.
func ComparePalettes(first, second []RGB) PaletteComparison {
	statsFirst := Statistics(first)
	statsSecond := Statistics(second)
	return PaletteComparison{
		First:          statsFirst,
		Second:         statsSecond,
		HueDiff:        math.Abs(statsFirst.MeanHue - statsSecond.MeanHue),
		SaturationDiff: math.Abs(statsFirst.MeanSaturation - statsSecond.MeanSaturation),
		BrightnessDiff: math.Abs(statsFirst.MeanValue - statsSecond.MeanValue),
		DiversityDiff:  math.Abs(Diversity(first) - Diversity(second)),
	}
}
