package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pigmentlab/pigment/internal/colour"
	"github.com/pigmentlab/pigment/internal/export"
	"github.com/pigmentlab/pigment/internal/image"
)

var (
	// Palette command flags
	paletteColours    int
	paletteAlgorithm  string
	paletteVocabulary string
	paletteFormat     string
	paletteOutput     string
	paletteShowPrev   bool
)

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette <image>",
	Short: "Extract a named colour palette from an image",
	Long: `Extract a colour palette from an image and name each colour.

The palette command clusters the image pixels, orders the resulting
colours by dominance and names each one using a colour vocabulary.
The image argument may be a file, a directory (a random image is
picked) or an HTTP(S) URL.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Extract 8 colours (default) with artist pigment names
  pigment palette painting.jpg

  # Extract 5 colours named from the xkcd vocabulary
  pigment palette --colours 5 --vocabulary xkcd painting.png

  # Output as CSS custom properties
  pigment palette --format css painting.jpg

  # Output full match metadata as JSON, saved to a file
  pigment palette --format json --output palette.json painting.jpg

  # Plain hex codes with terminal previews
  pigment palette -f hex --preview painting.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runPalette,
}

func init() {
	paletteCmd.Flags().IntVarP(&paletteColours, "colours", "c", 0, "number of colours to extract (1-256, default from config)")
	paletteCmd.Flags().StringVarP(&paletteAlgorithm, "algorithm", "a", "kmeans", "extraction algorithm (kmeans)")
	paletteCmd.Flags().StringVarP(&paletteVocabulary, "vocabulary", "V", "", "colour vocabulary (artist, natural, resene, xkcd)")
	paletteCmd.Flags().StringVarP(&paletteFormat, "format", "f", "names", "output format (names, hex, rgb, json, css)")
	paletteCmd.Flags().StringVarP(&paletteOutput, "output", "o", "", "output file (default: stdout)")
	paletteCmd.Flags().BoolVar(&paletteShowPrev, "preview", false, "show colour previews in terminal")
}

// runPalette executes the palette command.
func runPalette(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	colours := paletteColours
	if colours == 0 {
		colours = cfg.Colours
	}

	extractorConfig := colour.ExtractorConfig{
		Algorithm:   colour.Algorithm(paletteAlgorithm),
		ColourCount: colours,
	}
	if err := extractorConfig.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	resolved, err := image.ResolveImagePath(imagePath)
	if err != nil {
		return fmt.Errorf("failed to resolve image path: %w", err)
	}

	verbose := verboseEnabled(cmd)
	if verbose {
		fmt.Fprintf(os.Stderr, "Loading image: %s\n", resolved)
	}

	img, err := image.NewSmartLoader().Load(resolved)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	if verbose {
		bounds := img.Bounds()
		fmt.Fprintf(os.Stderr, "Image loaded: %dx%d\n", bounds.Dx(), bounds.Dy())
		fmt.Fprintf(os.Stderr, "Extracting %d colours using %s algorithm...\n", colours, paletteAlgorithm)
	}

	extractor, err := colour.NewExtractor(extractorConfig.Algorithm)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	palette, err := extractor.Extract(img, colours)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Successfully extracted %d colours\n", palette.Len())
	}

	vocabulary := paletteVocabulary
	if vocabulary == "" {
		vocabulary = cfg.Vocabulary
	}
	namer, err := colour.NewNamer(vocabulary)
	if err != nil {
		return fmt.Errorf("failed to create namer: %w", err)
	}

	preview := resolvePreview(cmd, paletteShowPrev, paletteOutput)
	output, err := formatPalette(palette, namer, paletteFormat, preview)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if paletteOutput != "" && verbose {
		fmt.Fprintf(os.Stderr, "Writing output to: %s\n", paletteOutput)
	}
	return writeOutput(paletteOutput, output)
}

// formatPalette formats the palette according to the specified format.
func formatPalette(palette *colour.Palette, namer *colour.Namer, format string, showPreview bool) (string, error) {
	switch format {
	case "names":
		matches, err := namer.NamePaletteWithMetadata(palette.Colours())
		if err != nil {
			return "", err
		}
		output := ""
		for i, match := range matches {
			c := palette.Swatches[i].Colour
			if showPreview {
				output += fmt.Sprintf("%s %s  %s\n", colour.ColourPreview(c, 4), c.Hex(), match.Name)
			} else {
				output += fmt.Sprintf("%s  %s\n", c.Hex(), match.Name)
			}
		}
		return output, nil
	case "hex":
		output := ""
		for _, sw := range palette.Swatches {
			if showPreview {
				output += colour.ColourPreview(sw.Colour, 4) + " " + sw.Colour.Hex() + "\n"
			} else {
				output += sw.Colour.Hex() + "\n"
			}
		}
		return output, nil
	case "rgb":
		output := ""
		for _, sw := range palette.Swatches {
			if showPreview {
				output += colour.ColourPreview(sw.Colour, 4) + " " + sw.Colour.String() + "\n"
			} else {
				output += sw.Colour.String() + "\n"
			}
		}
		return output, nil
	case "json":
		matches, err := namer.NamePaletteWithMetadata(palette.Colours())
		if err != nil {
			return "", err
		}
		output, err := export.JSON(palette, matches)
		if err != nil {
			return "", err
		}
		return output + "\n", nil
	case "css":
		names, err := namer.NamePalette(palette.Colours())
		if err != nil {
			return "", err
		}
		return export.CSS(palette, names)
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: names, hex, rgb, json, css)", format)
	}
}
