package colour

import "math"

// Harmony detection finds classical colour-wheel relationships inside a
// palette: complementary pairs, triads, analogous runs, split
// complements and tetrads. All tolerances are hue angles in degrees.

// DefaultHarmonyTolerance is the hue tolerance used by AnalyzeHarmony.
const DefaultHarmonyTolerance = 30.0

// ComplementaryPairs finds colour pairs roughly opposite on the colour
// wheel (180 degrees apart, within tolerance).
func ComplementaryPairs(colours []RGB, tolerance float64) [][2]RGB {
	var pairs [][2]RGB
	hues := huesOf(colours)

	for i := 0; i < len(colours); i++ {
		for j := i + 1; j < len(colours); j++ {
			if math.Abs(HueDistance(hues[i], hues[j])-180) <= tolerance {
				pairs = append(pairs, [2]RGB{colours[i], colours[j]})
			}
		}
	}
	return pairs
}

// TriadicSets finds colour triplets equally spaced on the colour wheel
// (120 degrees apart, within tolerance).
func TriadicSets(colours []RGB, tolerance float64) [][3]RGB {
	var sets [][3]RGB
	hues := huesOf(colours)

	for i := 0; i < len(colours); i++ {
		for j := i + 1; j < len(colours); j++ {
			for k := j + 1; k < len(colours); k++ {
				d1 := HueDistance(hues[i], hues[j])
				d2 := HueDistance(hues[j], hues[k])
				d3 := HueDistance(hues[k], hues[i])
				if math.Abs(d1-120) <= tolerance &&
					math.Abs(d2-120) <= tolerance &&
					math.Abs(d3-120) <= tolerance {
					sets = append(sets, [3]RGB{colours[i], colours[j], colours[k]})
				}
			}
		}
	}
	return sets
}

// AnalogousGroups finds runs of two or more colours adjacent on the
// colour wheel: each group stays within maxHueRange of its first hue.
func AnalogousGroups(colours []RGB, maxHueRange float64) [][]RGB {
	if len(colours) < 2 {
		return nil
	}

	type hued struct {
		colour RGB
		hue    float64
	}
	sorted := make([]hued, len(colours))
	for i, c := range colours {
		sorted[i] = hued{colour: c, hue: RGBToHSV(c).H}
	}
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].hue < sorted[j-1].hue; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	var groups [][]RGB
	current := []RGB{sorted[0].colour}
	baseHue := sorted[0].hue

	for _, hc := range sorted[1:] {
		if HueDistance(hc.hue, baseHue) <= maxHueRange {
			current = append(current, hc.colour)
			continue
		}
		if len(current) >= 2 {
			groups = append(groups, current)
		}
		current = []RGB{hc.colour}
		baseHue = hc.hue
	}
	if len(current) >= 2 {
		groups = append(groups, current)
	}
	return groups
}

// SplitComplementarySets finds triplets of a base colour plus two colours
// flanking its complement at roughly +/-30 degrees.
func SplitComplementarySets(colours []RGB, tolerance float64) [][3]RGB {
	var sets [][3]RGB
	hues := huesOf(colours)

	for i := range colours {
		complement := math.Mod(hues[i]+180, 360)
		left := math.Mod(complement-30+360, 360)
		right := math.Mod(complement+30, 360)

		var leftMatches, rightMatches []RGB
		for j := range colours {
			if i == j {
				continue
			}
			if HueDistance(hues[j], left) <= tolerance {
				leftMatches = append(leftMatches, colours[j])
			}
			if HueDistance(hues[j], right) <= tolerance {
				rightMatches = append(rightMatches, colours[j])
			}
		}

		for _, l := range leftMatches {
			for _, r := range rightMatches {
				if l != r {
					sets = append(sets, [3]RGB{colours[i], l, r})
				}
			}
		}
	}
	return sets
}

// TetradicSets finds quartets forming two complementary pairs, a
// rectangle on the colour wheel: the sorted gaps between consecutive hues
// come in two roughly equal pairs.
func TetradicSets(colours []RGB, tolerance float64) [][4]RGB {
	if len(colours) < 4 {
		return nil
	}

	var sets [][4]RGB
	hues := huesOf(colours)

	for i := 0; i < len(colours); i++ {
		for j := i + 1; j < len(colours); j++ {
			for k := j + 1; k < len(colours); k++ {
				for l := k + 1; l < len(colours); l++ {
					sorted := []float64{hues[i], hues[j], hues[k], hues[l]}
					for a := 1; a < 4; a++ {
						for b := a; b > 0 && sorted[b] < sorted[b-1]; b-- {
							sorted[b], sorted[b-1] = sorted[b-1], sorted[b]
						}
					}

					gaps := []float64{
						sorted[1] - sorted[0],
						sorted[2] - sorted[1],
						sorted[3] - sorted[2],
						sorted[0] + 360 - sorted[3],
					}
					for a := 1; a < 4; a++ {
						for b := a; b > 0 && gaps[b] < gaps[b-1]; b-- {
							gaps[b], gaps[b-1] = gaps[b-1], gaps[b]
						}
					}

					if math.Abs(gaps[0]-gaps[1]) <= tolerance &&
						math.Abs(gaps[2]-gaps[3]) <= tolerance {
						sets = append(sets, [4]RGB{colours[i], colours[j], colours[k], colours[l]})
					}
				}
			}
		}
	}
	return sets
}

// HarmonySummary aggregates every harmony type found in a palette.
type HarmonySummary struct {
	Complementary      int     `json:"complementary"`
	Triadic            int     `json:"triadic"`
	Analogous          int     `json:"analogous"`
	SplitComplementary int     `json:"split_complementary"`
	Tetradic           int     `json:"tetradic"`
	Total              int     `json:"total"`
	Score              float64 `json:"score"`
	Dominant           string  `json:"dominant"`
}

// AnalyzeHarmony detects every harmony type with the default tolerance
// and summarises counts, the dominant harmony and a 0-1 harmony score
// normalised by the number of colour pairs in the palette.
func AnalyzeHarmony(colours []RGB) HarmonySummary {
	summary := HarmonySummary{
		Complementary:      len(ComplementaryPairs(colours, DefaultHarmonyTolerance)),
		Triadic:            len(TriadicSets(colours, DefaultHarmonyTolerance)),
		Analogous:          len(AnalogousGroups(colours, 2*DefaultHarmonyTolerance)),
		SplitComplementary: len(SplitComplementarySets(colours, DefaultHarmonyTolerance)),
		Tetradic:           len(TetradicSets(colours, DefaultHarmonyTolerance)),
	}

	counts := map[string]int{
		"complementary":       summary.Complementary,
		"triadic":             summary.Triadic,
		"analogous":           summary.Analogous,
		"split_complementary": summary.SplitComplementary,
		"tetradic":            summary.Tetradic,
	}

	summary.Dominant = "none"
	bestCount := 0
	for _, name := range []string{"complementary", "triadic", "analogous", "split_complementary", "tetradic"} {
		if counts[name] > bestCount {
			bestCount = counts[name]
			summary.Dominant = name
		}
		summary.Total += counts[name]
	}

	if pairs := len(colours) * (len(colours) - 1) / 2; pairs > 0 {
		summary.Score = math.Min(1.0, float64(summary.Total)/float64(pairs))
	}
	return summary
}

// huesOf precomputes the HSV hue of each colour.
func huesOf(colours []RGB) []float64 {
	hues := make([]float64, len(colours))
	for i, c := range colours {
		hues[i] = RGBToHSV(c).H
	}
	return hues
}
