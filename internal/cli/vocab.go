package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pigmentlab/pigment/internal/colour"
)

var (
	// Vocab command flags
	vocabFormat   string
	vocabFamily   string
	vocabShowPrev bool
)

// vocabCmd represents the vocab command
var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Inspect colour vocabularies",
	Long: `Inspect the built-in colour vocabularies.

Available vocabularies:
  artist   traditional artist pigments with Colour Index codes
  natural  Werner's nomenclature of colours (1814)
  resene   Resene paint colours
  xkcd     the xkcd colour survey`,
}

// vocabListCmd represents the vocab list command
var vocabListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available vocabularies",
	RunE:  runVocabList,
}

// vocabInfoCmd represents the vocab info command
var vocabInfoCmd = &cobra.Command{
	Use:   "info <vocabulary>",
	Short: "Show summary information about a vocabulary",
	Args:  cobra.ExactArgs(1),
	RunE:  runVocabInfo,
}

// vocabShowCmd represents the vocab show command
var vocabShowCmd = &cobra.Command{
	Use:   "show <vocabulary>",
	Short: "Show every entry of a vocabulary",
	Args:  cobra.ExactArgs(1),
	RunE:  runVocabShow,
}

func init() {
	vocabInfoCmd.Flags().StringVarP(&vocabFormat, "format", "f", "text", "output format (text, json)")
	vocabShowCmd.Flags().StringVar(&vocabFamily, "family", "", "only show entries of this colour family")
	vocabShowCmd.Flags().BoolVar(&vocabShowPrev, "preview", false, "show colour previews in terminal")

	vocabCmd.AddCommand(vocabListCmd)
	vocabCmd.AddCommand(vocabInfoCmd)
	vocabCmd.AddCommand(vocabShowCmd)
}

// runVocabList executes the vocab list command.
func runVocabList(cmd *cobra.Command, args []string) error {
	for _, key := range colour.AvailableVocabularies() {
		vocab, err := colour.LoadVocabulary(key)
		if err != nil {
			return err
		}
		fmt.Printf("%-8s %4d colours\n", key, len(vocab.Entries))
	}
	return nil
}

// runVocabInfo executes the vocab info command.
func runVocabInfo(cmd *cobra.Command, args []string) error {
	vocab, err := colour.LoadVocabulary(args[0])
	if err != nil {
		return err
	}
	info := vocab.Info()

	if vocabFormat == "json" {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal vocabulary info: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Vocabulary: %s\n", info.Key)
	fmt.Printf("Entries:    %d\n", info.Count)
	if info.CICount > 0 {
		fmt.Printf("CI codes:   %d\n", info.CICount)
	}
	if len(info.Families) > 0 {
		families := make([]string, 0, len(info.Families))
		for f := range info.Families {
			families = append(families, f)
		}
		sort.Strings(families)
		fmt.Println("Families:")
		for _, f := range families {
			fmt.Printf("  %-12s %d\n", f, info.Families[f])
		}
	}
	return nil
}

// runVocabShow executes the vocab show command.
func runVocabShow(cmd *cobra.Command, args []string) error {
	vocab, err := colour.LoadVocabulary(args[0])
	if err != nil {
		return err
	}

	preview := resolvePreview(cmd, vocabShowPrev, "")
	shown := 0
	for _, entry := range vocab.Entries {
		if vocabFamily != "" && entry.Family != vocabFamily {
			continue
		}
		shown++

		line := fmt.Sprintf("%s  %-28s", entry.Hex, entry.Name)
		if entry.CIName != "" {
			line += "  " + entry.CIName
		}
		if preview {
			fmt.Printf("%s %s\n", colour.ColourPreview(entry.RGB, 4), line)
		} else {
			fmt.Println(line)
		}
	}

	if shown == 0 && vocabFamily != "" {
		return fmt.Errorf("no entries with family %q in vocabulary %s", vocabFamily, vocab.Key)
	}
	return nil
}
