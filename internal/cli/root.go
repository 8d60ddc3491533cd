// Package cli provides the command-line interface for Pigment.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/pigmentlab/pigment/internal/config"
	"github.com/pigmentlab/pigment/internal/version"
)

var (
	// Global flags
	globalConfigPath string

	// Effective configuration, assembled before any subcommand runs
	cfg = config.DefaultConfig()

	// Shared logger instance used by all commands
	logger = hclog.NewNullLogger()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "pigment",
		Short: "Name colours and analyse palettes like a painter",
		Long: `Pigment names colours, extracts palettes from artwork images and
analyses their statistics, temperature and harmonies.

Colour names come from curated vocabularies: artist pigments (with
Colour Index codes), Resene paint colours, Werner's nomenclature of
colours, and the xkcd colour survey. Matching uses the CIEDE2000
perceptual colour difference in CIE Lab space.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&globalConfigPath, "config", "", "config file (default: ~/.config/pigment/config.yaml)")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(datasetCmd)
}

// setup builds the logger and loads the configuration before any
// subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	if quiet {
		level = hclog.Error
	}
	logger = hclog.New(&hclog.LoggerOptions{
		Name:   "pigment",
		Level:  level,
		Output: os.Stderr,
	})

	loaded, err := config.NewLoader(logger).Load(globalConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg = loaded
	return nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
