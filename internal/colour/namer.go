package colour

import (
	"fmt"
	"sync"
)

// DefaultVocabulary is the vocabulary a Namer uses when none is given.
const DefaultVocabulary = "artist"

// Match describes the vocabulary entry nearest to an input colour.
type Match struct {
	Name        string  `json:"name"`
	Hex         string  `json:"hex"`
	RGB         RGB     `json:"rgb"`
	Distance    float64 `json:"distance"`
	Vocabulary  string  `json:"vocabulary"`
	CIName      string  `json:"ci_name,omitempty"`
	Family      string  `json:"family,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Namer maps colours to the perceptually nearest entry of a named-colour
// vocabulary using CIEDE2000 distance in CIE Lab space.
//
// Vocabularies are loaded once and cached for the lifetime of the Namer,
// as are Lab conversions of every colour seen. Both caches are guarded,
// so a Namer is safe for concurrent readers.
type Namer struct {
	mu     sync.RWMutex
	active string
	vocabs map[string]*Vocabulary
	labs   map[RGB]Lab
}

// NewNamer creates a Namer with the given default vocabulary. The
// vocabulary is loaded eagerly so data errors surface here rather than on
// the first lookup. An empty key selects DefaultVocabulary.
func NewNamer(vocabulary string) (*Namer, error) {
	if vocabulary == "" {
		vocabulary = DefaultVocabulary
	}
	n := &Namer{
		active: vocabulary,
		vocabs: make(map[string]*Vocabulary),
		labs:   make(map[RGB]Lab),
	}
	if _, err := n.vocabulary(vocabulary); err != nil {
		return nil, err
	}
	return n, nil
}

// Vocabulary returns the key of the active default vocabulary.
func (n *Namer) Vocabulary() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.active
}

// SetVocabulary switches the active default vocabulary, loading it if
// needed. Subsequent Name calls without an explicit vocabulary use it.
func (n *Namer) SetVocabulary(key string) error {
	if _, err := n.vocabulary(key); err != nil {
		return err
	}
	n.mu.Lock()
	n.active = key
	n.mu.Unlock()
	return nil
}

// EnsureLoaded loads a vocabulary into the cache without activating it,
// so data-file errors occur at a predictable point.
func (n *Namer) EnsureLoaded(key string) error {
	_, err := n.vocabulary(key)
	return err
}

// Info returns summary information for a vocabulary. An empty key
// describes the active vocabulary.
func (n *Namer) Info(key string) (VocabularyInfo, error) {
	if key == "" {
		key = n.Vocabulary()
	}
	vocab, err := n.vocabulary(key)
	if err != nil {
		return VocabularyInfo{}, err
	}
	return vocab.Info(), nil
}

// Entries returns the entries of a vocabulary in their load order.
func (n *Namer) Entries(key string) ([]Entry, error) {
	if key == "" {
		key = n.Vocabulary()
	}
	vocab, err := n.vocabulary(key)
	if err != nil {
		return nil, err
	}
	return vocab.Entries, nil
}

// Name returns the name of the vocabulary entry perceptually nearest to
// the colour, using the active default vocabulary.
func (n *Namer) Name(c RGB) (string, error) {
	return n.NameIn(c, n.Vocabulary())
}

// NameIn is Name against an explicit vocabulary.
func (n *Namer) NameIn(c RGB, vocabulary string) (string, error) {
	match, err := n.NameInWithMetadata(c, vocabulary)
	if err != nil {
		return "", err
	}
	return match.Name, nil
}

// NameWithMetadata returns the full match for the nearest entry of the
// active default vocabulary.
func (n *Namer) NameWithMetadata(c RGB) (Match, error) {
	return n.NameInWithMetadata(c, n.Vocabulary())
}

// NameInWithMetadata returns the full match for the nearest entry of an
// explicit vocabulary. Ties resolve to the first entry in vocabulary
// order, so results are stable across runs.
func (n *Namer) NameInWithMetadata(c RGB, vocabulary string) (Match, error) {
	vocab, err := n.vocabulary(vocabulary)
	if err != nil {
		return Match{}, err
	}
	return n.nearest(c, vocab, nil)
}

// NamePalette names each colour of a palette independently, preserving
// order. There is no cross-colour interaction.
func (n *Namer) NamePalette(colours []RGB) ([]string, error) {
	names := make([]string, len(colours))
	for i, c := range colours {
		name, err := n.Name(c)
		if err != nil {
			return nil, err
		}
		names[i] = name
	}
	return names, nil
}

// NamePaletteWithMetadata is NamePalette returning full matches.
func (n *Namer) NamePaletteWithMetadata(colours []RGB) ([]Match, error) {
	matches := make([]Match, len(colours))
	for i, c := range colours {
		match, err := n.NameWithMetadata(c)
		if err != nil {
			return nil, err
		}
		matches[i] = match
	}
	return matches, nil
}

// ClosestPigment finds the nearest actual artist pigment: the search is
// restricted to the artist vocabulary entries that carry a Colour Index
// code, regardless of the active vocabulary.
func (n *Namer) ClosestPigment(c RGB) (Match, error) {
	vocab, err := n.vocabulary("artist")
	if err != nil {
		return Match{}, err
	}
	return n.nearest(c, vocab, func(e Entry) bool { return e.CIName != "" })
}

// nearest scans every entry of the vocabulary that passes the filter and
// keeps the minimum CIEDE2000 distance. A nil filter accepts all entries.
func (n *Namer) nearest(c RGB, vocab *Vocabulary, filter func(Entry) bool) (Match, error) {
	input := n.lab(c)

	best := -1
	bestDistance := 0.0
	for i, entry := range vocab.Entries {
		if filter != nil && !filter(entry) {
			continue
		}
		distance := CIEDE2000(input, n.lab(entry.RGB))
		if best < 0 || distance < bestDistance {
			best = i
			bestDistance = distance
		}
	}
	if best < 0 {
		return Match{}, fmt.Errorf("no matching entries in vocabulary %q", vocab.Key)
	}

	entry := vocab.Entries[best]
	return Match{
		Name:        entry.Name,
		Hex:         entry.Hex,
		RGB:         entry.RGB,
		Distance:    bestDistance,
		Vocabulary:  vocab.Key,
		CIName:      entry.CIName,
		Family:      entry.Family,
		Description: entry.Description,
	}, nil
}

// vocabulary returns the cached vocabulary for key, loading it on first
// reference. A key transitions unloaded -> loaded at most once.
func (n *Namer) vocabulary(key string) (*Vocabulary, error) {
	n.mu.RLock()
	vocab, ok := n.vocabs[key]
	n.mu.RUnlock()
	if ok {
		return vocab, nil
	}

	loaded, err := LoadVocabulary(key)
	if err != nil {
		return nil, err
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if existing, ok := n.vocabs[key]; ok {
		return existing, nil
	}
	n.vocabs[key] = loaded
	return loaded, nil
}

// lab returns the cached Lab conversion for a colour, computing it on
// first use. The cache is unbounded; vocabularies are small and finite.
func (n *Namer) lab(c RGB) Lab {
	n.mu.RLock()
	lab, ok := n.labs[c]
	n.mu.RUnlock()
	if ok {
		return lab
	}

	lab = ToLab(c)
	n.mu.Lock()
	n.labs[c] = lab
	n.mu.Unlock()
	return lab
}
