package colour

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

//go:embed data/*.json
var vocabularyData embed.FS

// vocabularyFiles maps vocabulary keys to their embedded data files.
// "natural" and "werner" are aliases for the same file.
var vocabularyFiles = map[string]string{
	"artist":  "artist_pigments.json",
	"resene":  "resene.json",
	"natural": "werner.json",
	"werner":  "werner.json",
	"xkcd":    "xkcd.json",
}

// UnknownVocabularyError reports a vocabulary key outside the recognised
// set. The message enumerates the valid keys.
type UnknownVocabularyError struct {
	Key string
}

func (e *UnknownVocabularyError) Error() string {
	return fmt.Sprintf("unknown vocabulary %q (available vocabularies: %s)",
		e.Key, strings.Join(vocabularyKeys(), ", "))
}

// Entry is a single named colour in a vocabulary, immutable after load.
type Entry struct {
	Name        string
	Hex         string
	RGB         RGB
	CIName      string
	Family      string
	Description string
}

// Vocabulary is a named, ordered collection of colour entries.
type Vocabulary struct {
	Key     string
	File    string
	Entries []Entry
}

// VocabularyInfo summarises a loaded vocabulary.
type VocabularyInfo struct {
	Key      string         `json:"key"`
	File     string         `json:"file"`
	Count    int            `json:"count"`
	Families map[string]int `json:"families,omitempty"`
	CICount  int            `json:"ci_count"`
}

// entryJSON is the on-disk shape of a vocabulary entry. The rgb array is
// authoritative; the hex field must agree with it.
type entryJSON struct {
	Name        string `json:"name"`
	Hex         string `json:"hex"`
	RGB         []int  `json:"rgb"`
	CIName      string `json:"ci_name"`
	Family      string `json:"family"`
	Description string `json:"description"`
}

// AvailableVocabularies returns the vocabulary keys that can be used,
// excluding aliases, in sorted order.
func AvailableVocabularies() []string {
	return []string{"artist", "natural", "resene", "xkcd"}
}

// KnownVocabulary reports whether key names a recognised vocabulary,
// including aliases.
func KnownVocabulary(key string) bool {
	_, ok := vocabularyFiles[key]
	return ok
}

// vocabularyKeys returns every accepted key, aliases included.
func vocabularyKeys() []string {
	keys := make([]string, 0, len(vocabularyFiles))
	for k := range vocabularyFiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LoadVocabulary loads and validates a vocabulary from the embedded data.
// Schema violations are fatal: there is no partial-vocabulary fallback.
func LoadVocabulary(key string) (*Vocabulary, error) {
	file, ok := vocabularyFiles[key]
	if !ok {
		return nil, &UnknownVocabularyError{Key: key}
	}

	data, err := vocabularyData.ReadFile("data/" + file)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary data %s: %w", file, err)
	}

	var raw []entryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON in vocabulary data %s: %w", file, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("vocabulary data %s contains no entries", file)
	}

	entries := make([]Entry, 0, len(raw))
	for i, e := range raw {
		entry, err := e.toEntry()
		if err != nil {
			return nil, fmt.Errorf("vocabulary data %s, entry %d: %w", file, i, err)
		}
		entries = append(entries, entry)
	}

	return &Vocabulary{Key: key, File: file, Entries: entries}, nil
}

// toEntry validates a raw entry and converts it to its immutable form.
// The rgb triple is the source of truth: a missing hex is derived from it
// and a contradictory hex is a data-integrity error.
func (e entryJSON) toEntry() (Entry, error) {
	if e.Name == "" {
		return Entry{}, fmt.Errorf("entry has no name")
	}
	if len(e.RGB) != 3 {
		return Entry{}, fmt.Errorf("%s: rgb must have exactly 3 channels, got %d", e.Name, len(e.RGB))
	}

	rgb, err := NewRGB(e.RGB[0], e.RGB[1], e.RGB[2])
	if err != nil {
		return Entry{}, fmt.Errorf("%s: %w", e.Name, err)
	}

	hex := e.Hex
	if hex == "" {
		hex = rgb.Hex()
	} else {
		parsed, err := ParseHex(hex)
		if err != nil {
			return Entry{}, fmt.Errorf("%s: %w", e.Name, err)
		}
		if parsed != rgb {
			return Entry{}, fmt.Errorf("%s: hex %s does not match rgb %s", e.Name, hex, rgb.String())
		}
		hex = rgb.Hex()
	}

	return Entry{
		Name:        e.Name,
		Hex:         hex,
		RGB:         rgb,
		CIName:      e.CIName,
		Family:      e.Family,
		Description: e.Description,
	}, nil
}

// Info summarises the vocabulary: entry count, colours per family and the
// number of entries carrying a Colour Index code.
func (v *Vocabulary) Info() VocabularyInfo {
	info := VocabularyInfo{
		Key:      v.Key,
		File:     v.File,
		Count:    len(v.Entries),
		Families: make(map[string]int),
	}
	for _, e := range v.Entries {
		if e.Family != "" {
			info.Families[e.Family]++
		}
		if e.CIName != "" {
			info.CICount++
		}
	}
	if len(info.Families) == 0 {
		info.Families = nil
	}
	return info
}
