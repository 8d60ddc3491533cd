package colour

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadVocabulary(t *testing.T) {
	for _, key := range AvailableVocabularies() {
		t.Run(key, func(t *testing.T) {
			vocab, err := LoadVocabulary(key)
			if err != nil {
				t.Fatalf("LoadVocabulary(%q) unexpected error: %v", key, err)
			}
			if vocab.Key != key {
				t.Errorf("Key = %q, want %q", vocab.Key, key)
			}
			if len(vocab.Entries) == 0 {
				t.Fatal("vocabulary has no entries")
			}
		})
	}
}

func TestLoadVocabularyUnknown(t *testing.T) {
	_, err := LoadVocabulary("pantone")
	if err == nil {
		t.Fatal("LoadVocabulary with unknown key did not fail")
	}

	var unknownErr *UnknownVocabularyError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("error type = %T, want *UnknownVocabularyError", err)
	}
	if unknownErr.Key != "pantone" {
		t.Errorf("Key = %q, want %q", unknownErr.Key, "pantone")
	}
	if !strings.Contains(err.Error(), "artist") {
		t.Errorf("error message does not list available vocabularies: %s", err)
	}
}

func TestWernerAlias(t *testing.T) {
	natural, err := LoadVocabulary("natural")
	if err != nil {
		t.Fatalf("LoadVocabulary(natural) unexpected error: %v", err)
	}
	werner, err := LoadVocabulary("werner")
	if err != nil {
		t.Fatalf("LoadVocabulary(werner) unexpected error: %v", err)
	}
	if natural.File != werner.File {
		t.Errorf("natural and werner load different files: %q vs %q", natural.File, werner.File)
	}
	if len(natural.Entries) != len(werner.Entries) {
		t.Errorf("natural and werner entry counts differ: %d vs %d", len(natural.Entries), len(werner.Entries))
	}
}

func TestVocabularyEntriesConsistent(t *testing.T) {
	for _, key := range AvailableVocabularies() {
		t.Run(key, func(t *testing.T) {
			vocab, err := LoadVocabulary(key)
			if err != nil {
				t.Fatalf("LoadVocabulary(%q) unexpected error: %v", key, err)
			}

			seenNames := make(map[string]bool)
			seenHex := make(map[string]bool)
			for _, entry := range vocab.Entries {
				if entry.Name == "" {
					t.Fatal("entry has empty name")
				}
				if seenNames[entry.Name] {
					t.Errorf("duplicate name %q", entry.Name)
				}
				seenNames[entry.Name] = true

				if seenHex[entry.Hex] {
					t.Errorf("duplicate hex %s (%s)", entry.Hex, entry.Name)
				}
				seenHex[entry.Hex] = true

				if got := entry.RGB.Hex(); got != entry.Hex {
					t.Errorf("entry %q: hex %s does not match rgb %s", entry.Name, entry.Hex, got)
				}
			}
		})
	}
}

func TestArtistVocabularyHasCICodes(t *testing.T) {
	vocab, err := LoadVocabulary("artist")
	if err != nil {
		t.Fatalf("LoadVocabulary(artist) unexpected error: %v", err)
	}

	withCI := 0
	for _, entry := range vocab.Entries {
		if entry.CIName != "" {
			withCI++
			if !strings.HasPrefix(entry.CIName, "P") && !strings.HasPrefix(entry.CIName, "N") {
				t.Errorf("entry %q: unexpected CI code format %q", entry.Name, entry.CIName)
			}
		}
	}
	if withCI == 0 {
		t.Error("artist vocabulary has no Colour Index codes")
	}
}

func TestVocabularyInfo(t *testing.T) {
	vocab, err := LoadVocabulary("artist")
	if err != nil {
		t.Fatalf("LoadVocabulary(artist) unexpected error: %v", err)
	}

	info := vocab.Info()
	if info.Key != "artist" {
		t.Errorf("Key = %q, want %q", info.Key, "artist")
	}
	if info.Count != len(vocab.Entries) {
		t.Errorf("Count = %d, want %d", info.Count, len(vocab.Entries))
	}
	if info.CICount == 0 {
		t.Error("CICount = 0, want > 0")
	}

	total := 0
	for _, n := range info.Families {
		total += n
	}
	if total > info.Count {
		t.Errorf("family counts sum to %d, more than %d entries", total, info.Count)
	}
}

func TestKnownVocabulary(t *testing.T) {
	for _, key := range []string{"artist", "natural", "werner", "resene", "xkcd"} {
		if !KnownVocabulary(key) {
			t.Errorf("KnownVocabulary(%q) = false, want true", key)
		}
	}
	if KnownVocabulary("pantone") {
		t.Error("KnownVocabulary(pantone) = true, want false")
	}
}
