package cli

import (
	"testing"

	"github.com/pigmentlab/pigment/internal/colour"
)

func TestVocabLabel(t *testing.T) {
	for _, key := range colour.AvailableVocabularies() {
		label := vocabLabel(key)
		if len(label) != 8 {
			t.Errorf("vocabLabel(%q) = %q, want width 8", key, label)
		}
	}

	// Keys at or beyond the column width still produce a valid label.
	if got := vocabLabel("ostwaldix"); got != "ostwaldix:" {
		t.Errorf("vocabLabel(%q) = %q", "ostwaldix", got)
	}
}
