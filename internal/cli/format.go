package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// stdoutIsTerminal reports whether stdout is attached to a terminal.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// flagChanged reports whether a flag was set explicitly on the command
// line.
func flagChanged(flags *pflag.FlagSet, name string) bool {
	f := flags.Lookup(name)
	return f != nil && f.Changed
}

// resolvePreview decides whether to render ANSI colour previews. An
// explicit --preview wins; otherwise previews auto-enable when stdout is
// a terminal and the output is not going to a file.
func resolvePreview(cmd *cobra.Command, requested bool, outputFile string) bool {
	return previewEnabled(flagChanged(cmd.Flags(), "preview"), requested, outputFile, stdoutIsTerminal())
}

func previewEnabled(explicit, requested bool, outputFile string, tty bool) bool {
	if explicit {
		return requested
	}
	return outputFile == "" && tty
}

// verboseEnabled reports whether --verbose is in effect.
func verboseEnabled(cmd *cobra.Command) bool {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return verbose
}

// writeOutput writes formatted output to a file, or stdout when path is
// empty.
func writeOutput(path, content string) error {
	if path == "" {
		fmt.Print(content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
