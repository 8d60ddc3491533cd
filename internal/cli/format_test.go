package cli

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestPreviewEnabled(t *testing.T) {
	tests := []struct {
		name       string
		explicit   bool
		requested  bool
		outputFile string
		tty        bool
		want       bool
	}{
		{name: "explicit on wins over file output", explicit: true, requested: true, outputFile: "out.css", want: true},
		{name: "explicit on wins without a terminal", explicit: true, requested: true, want: true},
		{name: "explicit off wins on a terminal", explicit: true, requested: false, tty: true, want: false},
		{name: "auto-enabled on a terminal", tty: true, want: true},
		{name: "suppressed when writing a file", outputFile: "out.css", tty: true, want: false},
		{name: "suppressed without a terminal", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := previewEnabled(tt.explicit, tt.requested, tt.outputFile, tt.tty)
			if got != tt.want {
				t.Errorf("previewEnabled(%v, %v, %q, %v) = %v, want %v",
					tt.explicit, tt.requested, tt.outputFile, tt.tty, got, tt.want)
			}
		})
	}
}

func TestResolvePreviewExplicitFlag(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Bool("preview", false, "")
	if err := cmd.Flags().Set("preview", "true"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}

	if !resolvePreview(cmd, true, "out.css") {
		t.Error("explicit --preview did not override file output")
	}
}

func TestResolvePreviewUnsetFollowsTerminal(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Bool("preview", false, "")

	if got := resolvePreview(cmd, false, ""); got != stdoutIsTerminal() {
		t.Errorf("resolvePreview with unset flag = %v, want terminal state %v", got, stdoutIsTerminal())
	}
	if resolvePreview(cmd, false, "out.css") {
		t.Error("file output did not suppress previews")
	}
}

func TestFlagChanged(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Bool("preview", false, "")

	if flagChanged(cmd.Flags(), "preview") {
		t.Error("unset flag reported as changed")
	}
	if flagChanged(cmd.Flags(), "missing") {
		t.Error("unknown flag reported as changed")
	}
	if err := cmd.Flags().Set("preview", "false"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}
	if !flagChanged(cmd.Flags(), "preview") {
		t.Error("set flag not reported as changed")
	}
}
