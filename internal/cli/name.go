package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pigmentlab/pigment/internal/colour"
)

var (
	// Name command flags
	nameVocabulary string
	nameMetadata   bool
	nameAllVocabs  bool
	nameFormat     string
	nameShowPrev   bool
)

// nameCmd represents the name command
var nameCmd = &cobra.Command{
	Use:   "name <colour>...",
	Short: "Name colours using artist vocabularies",
	Long: `Name one or more colours by finding the perceptually nearest entry
in a named-colour vocabulary.

Colours may be given as hex codes (#FF5733 or FF5733) or as
comma-separated RGB triples (255,87,51). Matching uses the CIEDE2000
colour difference in CIE Lab space.

Examples:
  # Name a colour using the artist pigment vocabulary (default)
  pigment name "#FF5733"

  # Name a colour using the xkcd survey vocabulary
  pigment name --vocabulary xkcd 255,87,51

  # Show the match with distance, family and pigment details
  pigment name --metadata "#E34234"

  # Compare the nearest name across every vocabulary
  pigment name --all-vocabs "#1D5DEC"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runName,
}

func init() {
	nameCmd.Flags().StringVarP(&nameVocabulary, "vocabulary", "V", "", "colour vocabulary (artist, natural, resene, xkcd)")
	nameCmd.Flags().BoolVarP(&nameMetadata, "metadata", "m", false, "show full match details")
	nameCmd.Flags().BoolVar(&nameAllVocabs, "all-vocabs", false, "show the nearest name in every vocabulary")
	nameCmd.Flags().StringVarP(&nameFormat, "format", "f", "text", "output format (text, json)")
	nameCmd.Flags().BoolVar(&nameShowPrev, "preview", false, "show colour previews in terminal")
}

// runName executes the name command.
func runName(cmd *cobra.Command, args []string) error {
	if nameFormat != "text" && nameFormat != "json" {
		return fmt.Errorf("unsupported format: %s (supported: text, json)", nameFormat)
	}

	vocabulary := nameVocabulary
	if vocabulary == "" {
		vocabulary = cfg.Vocabulary
	}

	namer, err := colour.NewNamer(vocabulary)
	if err != nil {
		return fmt.Errorf("failed to create namer: %w", err)
	}

	preview := resolvePreview(cmd, nameShowPrev, "")

	var results []colour.Match
	for _, arg := range args {
		c, err := colour.ParseColour(arg)
		if err != nil {
			return err
		}

		if nameAllVocabs {
			if err := printAllVocabs(namer, c, preview); err != nil {
				return err
			}
			continue
		}

		match, err := namer.NameWithMetadata(c)
		if err != nil {
			return err
		}
		results = append(results, match)

		if nameFormat == "text" {
			printMatch(c, match, nameMetadata, preview)
		}
	}

	if nameFormat == "json" && !nameAllVocabs {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal matches: %w", err)
		}
		fmt.Println(string(data))
	}

	return nil
}

// printMatch prints one match in text form.
func printMatch(c colour.RGB, match colour.Match, metadata, preview bool) {
	if preview {
		fmt.Printf("%s %s -> %s\n", colour.ColourPreview(c, 4), c.Hex(), match.Name)
	} else {
		fmt.Printf("%s -> %s\n", c.Hex(), match.Name)
	}

	if !metadata {
		return
	}
	fmt.Printf("  vocabulary: %s\n", match.Vocabulary)
	fmt.Printf("  match:      %s (%s)\n", match.Hex, match.RGB.String())
	fmt.Printf("  distance:   %.2f\n", match.Distance)
	if match.CIName != "" {
		fmt.Printf("  ci name:    %s\n", match.CIName)
	}
	if match.Family != "" {
		fmt.Printf("  family:     %s\n", match.Family)
	}
	if match.Description != "" {
		fmt.Printf("  about:      %s\n", match.Description)
	}
}

// printAllVocabs prints the nearest name in every vocabulary for one
// colour.
func printAllVocabs(namer *colour.Namer, c colour.RGB, preview bool) error {
	if preview {
		fmt.Printf("%s %s\n", colour.ColourPreview(c, 4), c.Hex())
	} else {
		fmt.Printf("%s\n", c.Hex())
	}

	for _, key := range colour.AvailableVocabularies() {
		match, err := namer.NameInWithMetadata(c, key)
		if err != nil {
			return err
		}
		label := vocabLabel(key)
		if preview {
			fmt.Printf("  %s %s %s (distance %.2f)\n",
				label, colour.ColourPreview(match.RGB, 2), match.Name, match.Distance)
		} else {
			fmt.Printf("  %s %s (distance %.2f)\n", label, match.Name, match.Distance)
		}
	}
	return nil
}

// vocabLabel pads a vocabulary key into a fixed-width column so the
// per-vocabulary lines align regardless of key length.
func vocabLabel(key string) string {
	return fmt.Sprintf("%-8s", key+":")
}
