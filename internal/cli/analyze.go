package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pigmentlab/pigment/internal/colour"
	"github.com/pigmentlab/pigment/internal/image"
)

var (
	// Analyze command flags
	analyzeColours int
	analyzeFormat  string
	analyzeCompare string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <image|colour...>",
	Short: "Analyse palette statistics, temperature and harmony",
	Long: `Analyse the colour composition of an image or an explicit list of
colours.

For an image, a palette is extracted first. The analysis reports
descriptive statistics (mean and spread of hue, saturation and value),
hue diversity, warm/cool temperature distribution and detected colour
harmonies.

Examples:
  # Analyse an image
  pigment analyze painting.jpg

  # Analyse an explicit set of colours
  pigment analyze "#E34234" "#1D5DEC" "#F4C430"

  # Compare the palettes of two images
  pigment analyze painting.jpg --compare other.jpg

  # Machine-readable output
  pigment analyze --format json painting.jpg`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVarP(&analyzeColours, "colours", "c", 0, "number of colours to extract from images (1-256, default from config)")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "text", "output format (text, json)")
	analyzeCmd.Flags().StringVar(&analyzeCompare, "compare", "", "second image or comma-separated hex list to compare against")
}

// analysisReport is the JSON shape of a full analysis.
type analysisReport struct {
	Colours     []string                       `json:"colours"`
	Statistics  colour.PaletteStatistics       `json:"statistics"`
	Diversity   float64                        `json:"diversity"`
	Saturation  float64                        `json:"saturation_score"`
	Brightness  float64                        `json:"brightness_score"`
	Temperature colour.TemperatureDistribution `json:"temperature"`
	Harmony     colour.HarmonySummary          `json:"harmony"`
	Comparison  *colour.PaletteComparison      `json:"comparison,omitempty"`
}

// runAnalyze executes the analyze command.
func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeFormat != "text" && analyzeFormat != "json" {
		return fmt.Errorf("unsupported format: %s (supported: text, json)", analyzeFormat)
	}

	colours, err := resolveColours(cmd, args)
	if err != nil {
		return err
	}

	report := analysisReport{
		Colours:     hexList(colours),
		Statistics:  colour.Statistics(colours),
		Diversity:   colour.Diversity(colours),
		Saturation:  colour.SaturationScore(colours),
		Brightness:  colour.BrightnessScore(colours),
		Temperature: colour.AnalyzeTemperature(colours),
		Harmony:     colour.AnalyzeHarmony(colours),
	}

	if analyzeCompare != "" {
		other, err := resolveColours(cmd, splitCompareArg(analyzeCompare))
		if err != nil {
			return fmt.Errorf("failed to resolve comparison palette: %w", err)
		}
		cmp := colour.ComparePalettes(colours, other)
		report.Comparison = &cmp
	}

	if analyzeFormat == "json" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal analysis: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	printReport(report)
	return nil
}

// resolveColours turns command arguments into a colour list: either one
// image path to extract from, or explicit colour values.
func resolveColours(cmd *cobra.Command, args []string) ([]colour.RGB, error) {
	if len(args) == 1 {
		if _, err := colour.ParseColour(args[0]); err != nil {
			return extractFromImage(cmd, args[0])
		}
	}

	colours := make([]colour.RGB, 0, len(args))
	for _, arg := range args {
		c, err := colour.ParseColour(arg)
		if err != nil {
			return nil, err
		}
		colours = append(colours, c)
	}
	return colours, nil
}

// extractFromImage loads an image and extracts its palette colours.
func extractFromImage(cmd *cobra.Command, path string) ([]colour.RGB, error) {
	if err := image.ValidateImagePath(path); err != nil {
		return nil, fmt.Errorf("invalid image path: %w", err)
	}

	resolved, err := image.ResolveImagePath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve image path: %w", err)
	}

	colours := analyzeColours
	if colours == 0 {
		colours = cfg.Colours
	}

	if verboseEnabled(cmd) {
		fmt.Fprintf(os.Stderr, "Extracting %d colours from %s...\n", colours, resolved)
	}

	img, err := image.NewSmartLoader().Load(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	extractor := colour.NewKMeansExtractor()
	palette, err := extractor.Extract(img, colours)
	if err != nil {
		return nil, fmt.Errorf("failed to extract colours: %w", err)
	}
	return palette.Colours(), nil
}

// splitCompareArg splits a --compare value: a comma-separated hex list
// becomes multiple colour arguments, anything else is an image path.
func splitCompareArg(value string) []string {
	if !strings.Contains(value, ",") {
		return []string{value}
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	// An RGB triple like 255,87,51 is one colour, not three.
	if _, err := colour.ParseColour(value); err == nil {
		return []string{value}
	}
	return parts
}

// hexList renders colours as hex strings.
func hexList(colours []colour.RGB) []string {
	out := make([]string, len(colours))
	for i, c := range colours {
		out[i] = c.Hex()
	}
	return out
}

// printReport prints an analysis in text form.
func printReport(r analysisReport) {
	fmt.Printf("Colours: %s\n\n", strings.Join(r.Colours, " "))

	fmt.Println("Statistics:")
	fmt.Printf("  mean hue:        %.1f deg (spread %.1f)\n", r.Statistics.MeanHue, r.Statistics.StdHue)
	fmt.Printf("  mean saturation: %.1f%% (spread %.1f)\n", r.Statistics.MeanSaturation, r.Statistics.StdSaturation)
	fmt.Printf("  mean value:      %.1f%% (spread %.1f)\n", r.Statistics.MeanValue, r.Statistics.StdValue)
	fmt.Printf("  mean rgb:        %s\n", r.Statistics.MeanRGB.String())
	fmt.Printf("  diversity:       %.2f\n", r.Diversity)
	fmt.Printf("  saturation:      %.2f\n", r.Saturation)
	fmt.Printf("  brightness:      %.2f\n", r.Brightness)

	fmt.Println("\nTemperature:")
	fmt.Printf("  warm:    %d (%.0f%%)\n", r.Temperature.Warm, r.Temperature.WarmPercentage)
	fmt.Printf("  cool:    %d (%.0f%%)\n", r.Temperature.Cool, r.Temperature.CoolPercentage)
	fmt.Printf("  neutral: %d (%.0f%%)\n", r.Temperature.Neutral, r.Temperature.NeutralPercentage)
	fmt.Printf("  dominant: %s\n", r.Temperature.Dominant)

	fmt.Println("\nHarmony:")
	fmt.Printf("  complementary:       %d\n", r.Harmony.Complementary)
	fmt.Printf("  triadic:             %d\n", r.Harmony.Triadic)
	fmt.Printf("  analogous:           %d\n", r.Harmony.Analogous)
	fmt.Printf("  split-complementary: %d\n", r.Harmony.SplitComplementary)
	fmt.Printf("  tetradic:            %d\n", r.Harmony.Tetradic)
	fmt.Printf("  score:               %.2f", r.Harmony.Score)
	if r.Harmony.Dominant != "" {
		fmt.Printf(" (dominant: %s)", r.Harmony.Dominant)
	}
	fmt.Println()

	if r.Comparison != nil {
		fmt.Println("\nComparison:")
		fmt.Printf("  hue difference:        %.1f deg\n", r.Comparison.HueDiff)
		fmt.Printf("  saturation difference: %.1f\n", r.Comparison.SaturationDiff)
		fmt.Printf("  brightness difference: %.1f\n", r.Comparison.BrightnessDiff)
		fmt.Printf("  diversity difference:  %.2f\n", r.Comparison.DiversityDiff)
	}
}
