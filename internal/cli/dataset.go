package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pigmentlab/pigment/internal/dataset"
)

var (
	// Dataset command flags
	datasetDir   string
	datasetLimit int
)

// datasetCmd represents the dataset command
var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Manage the local artwork dataset",
	Long: `Manage the local artwork dataset used for palette analysis.

A dataset is a directory holding an index.json and artwork images,
imported from an archive (tar.gz, tar.bz2, tar.xz or zip). The dataset
directory defaults to the dataset_dir config setting.`,
}

// datasetImportCmd represents the dataset import command
var datasetImportCmd = &cobra.Command{
	Use:   "import <archive|url>",
	Short: "Import a dataset archive",
	Long: `Import a dataset from a local archive file or an HTTPS URL.

Examples:
  pigment dataset import impressionists.tar.gz --dir ~/datasets/impressionists
  pigment dataset import https://example.org/datasets/impressionists.zip`,
	Args: cobra.ExactArgs(1),
	RunE: runDatasetImport,
}

// datasetListCmd represents the dataset list command
var datasetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List artists in the dataset",
	RunE:  runDatasetList,
}

// datasetInfoCmd represents the dataset info command
var datasetInfoCmd = &cobra.Command{
	Use:   "info <artist-slug>",
	Short: "Show works, genres and styles for an artist",
	Args:  cobra.ExactArgs(1),
	RunE:  runDatasetInfo,
}

func init() {
	datasetCmd.PersistentFlags().StringVar(&datasetDir, "dir", "", "dataset directory (default from config)")
	datasetListCmd.Flags().IntVar(&datasetLimit, "limit", 0, "maximum number of artists to list (0 = all)")

	datasetCmd.AddCommand(datasetImportCmd)
	datasetCmd.AddCommand(datasetListCmd)
	datasetCmd.AddCommand(datasetInfoCmd)
}

// resolveDatasetDir picks the dataset directory from the flag or config.
func resolveDatasetDir() (string, error) {
	if datasetDir != "" {
		return datasetDir, nil
	}
	if cfg.DatasetDir != "" {
		return cfg.DatasetDir, nil
	}
	return "", fmt.Errorf("no dataset directory: pass --dir or set dataset_dir in the config file")
}

// runDatasetImport executes the dataset import command.
func runDatasetImport(cmd *cobra.Command, args []string) error {
	dir, err := resolveDatasetDir()
	if err != nil {
		return err
	}

	files, err := dataset.Import(cmd.Context(), args[0], dir, logger)
	if err != nil {
		return err
	}

	lib, err := dataset.Open(dir, logger)
	if err != nil {
		return fmt.Errorf("dataset imported but failed to open: %w", err)
	}

	fmt.Printf("Imported %d files, %d artists into %s\n", files, len(lib.Artists(0)), dir)
	return nil
}

// runDatasetList executes the dataset list command.
func runDatasetList(cmd *cobra.Command, args []string) error {
	dir, err := resolveDatasetDir()
	if err != nil {
		return err
	}

	lib, err := dataset.Open(dir, logger)
	if err != nil {
		return err
	}

	for _, slug := range lib.Artists(datasetLimit) {
		artist, err := lib.Artist(slug)
		if err != nil {
			return err
		}
		fmt.Printf("%-32s %s (%d works)\n", slug, artist.Name, len(artist.Works))
	}
	return nil
}

// runDatasetInfo executes the dataset info command.
func runDatasetInfo(cmd *cobra.Command, args []string) error {
	dir, err := resolveDatasetDir()
	if err != nil {
		return err
	}

	lib, err := dataset.Open(dir, logger)
	if err != nil {
		return err
	}

	artist, err := lib.Artist(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Artist: %s (%s)\n", artist.Name, artist.Slug)
	fmt.Printf("Works:  %d\n", len(artist.Works))

	genres, err := lib.Genres(artist.Slug)
	if err != nil {
		return err
	}
	if len(genres) > 0 {
		fmt.Println("Genres:")
		for _, pair := range dataset.SortedCounts(genres) {
			fmt.Printf("  %-24s %d\n", pair.Key, pair.Count)
		}
	}

	styles, err := lib.Styles(artist.Slug)
	if err != nil {
		return err
	}
	if len(styles) > 0 {
		fmt.Println("Styles:")
		for _, pair := range dataset.SortedCounts(styles) {
			fmt.Printf("  %-24s %d\n", pair.Key, pair.Count)
		}
	}
	return nil
}
