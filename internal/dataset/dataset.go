// Package dataset loads and inspects local art-image dataset
// collections: artist metadata, work listings and genre/style
// distributions.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/go-hclog"
)

// IndexFile is the name of the dataset index inside the dataset
// directory.
const IndexFile = "index.json"

// Work is a single artwork entry of the dataset index. Image is a path
// relative to the dataset directory.
type Work struct {
	Title string `json:"title"`
	Year  int    `json:"year,omitempty"`
	Genre string `json:"genre,omitempty"`
	Style string `json:"style,omitempty"`
	Image string `json:"image,omitempty"`
}

// Artist groups the works of one artist under a URL-safe slug
// (e.g. "pierre-auguste-renoir").
type Artist struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Works []Work `json:"works"`
}

// index is the on-disk shape of the dataset index.
type index struct {
	Artists []Artist `json:"artists"`
}

// Library provides read access to a dataset directory.
type Library struct {
	dir     string
	artists map[string]*Artist
	order   []string
	logger  hclog.Logger
}

// Open reads the dataset index from dir. A missing or malformed index is
// an error; there is no partial fallback.
func Open(dir string, logger hclog.Logger) (*Library, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	path := filepath.Join(dir, IndexFile)
	data, err := os.ReadFile(path) // #nosec G304 - dataset directory is user-configured
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("dataset index not found: %s (import a dataset first)", path)
		}
		return nil, fmt.Errorf("failed to read dataset index: %w", err)
	}

	var idx index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("invalid JSON in dataset index %s: %w", path, err)
	}
	if len(idx.Artists) == 0 {
		return nil, fmt.Errorf("dataset index %s contains no artists", path)
	}

	lib := &Library{
		dir:     dir,
		artists: make(map[string]*Artist, len(idx.Artists)),
		order:   make([]string, 0, len(idx.Artists)),
		logger:  logger,
	}
	for i := range idx.Artists {
		artist := &idx.Artists[i]
		if artist.Slug == "" {
			return nil, fmt.Errorf("dataset index %s: artist %d has no slug", path, i)
		}
		if _, dup := lib.artists[artist.Slug]; dup {
			return nil, fmt.Errorf("dataset index %s: duplicate artist slug %q", path, artist.Slug)
		}
		lib.artists[artist.Slug] = artist
		lib.order = append(lib.order, artist.Slug)
	}

	logger.Debug("dataset opened", "dir", dir, "artists", len(lib.order))
	return lib, nil
}

// Dir returns the dataset directory.
func (l *Library) Dir() string {
	return l.dir
}

// Artists lists artist slugs in index order. A positive limit caps the
// list length.
func (l *Library) Artists(limit int) []string {
	slugs := make([]string, len(l.order))
	copy(slugs, l.order)
	if limit > 0 && limit < len(slugs) {
		slugs = slugs[:limit]
	}
	return slugs
}

// Artist returns the metadata for an artist slug.
func (l *Library) Artist(slug string) (*Artist, error) {
	artist, ok := l.artists[slug]
	if !ok {
		return nil, fmt.Errorf("artist %q not found in dataset (%d artists available)", slug, len(l.order))
	}
	return artist, nil
}

// Genres counts an artist's works per genre.
func (l *Library) Genres(slug string) (map[string]int, error) {
	return l.countWorks(slug, func(w Work) string { return w.Genre })
}

// Styles counts an artist's works per style.
func (l *Library) Styles(slug string) (map[string]int, error) {
	return l.countWorks(slug, func(w Work) string { return w.Style })
}

// countWorks tallies works by an attribute; empty attributes count under
// "unknown".
func (l *Library) countWorks(slug string, key func(Work) string) (map[string]int, error) {
	artist, err := l.Artist(slug)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, w := range artist.Works {
		k := key(w)
		if k == "" {
			k = "unknown"
		}
		counts[k]++
	}
	return counts, nil
}

// WorkImagePath resolves the image of a work to an absolute path inside
// the dataset directory.
func (l *Library) WorkImagePath(w Work) (string, error) {
	if w.Image == "" {
		return "", fmt.Errorf("work %q has no image", w.Title)
	}
	return filepath.Join(l.dir, w.Image), nil
}

// SortedCounts flattens a count map into (key, count) pairs ordered by
// descending count, then key, for stable display.
func SortedCounts(counts map[string]int) []struct {
	Key   string
	Count int
} {
	out := make([]struct {
		Key   string
		Count int
	}, 0, len(counts))
	for k, c := range counts {
		out = append(out, struct {
			Key   string
			Count int
		}{k, c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}
