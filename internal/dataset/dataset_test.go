package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

const testIndex = `{
  "artists": [
    {
      "slug": "pierre-auguste-renoir",
      "name": "Pierre-Auguste Renoir",
      "works": [
        {"title": "Bal du moulin de la Galette", "year": 1876, "genre": "genre painting", "style": "Impressionism", "image": "renoir/bal.jpg"},
        {"title": "Luncheon of the Boating Party", "year": 1881, "genre": "genre painting", "style": "Impressionism", "image": "renoir/luncheon.jpg"},
        {"title": "Two Sisters", "year": 1881, "genre": "portrait", "style": "Impressionism"}
      ]
    },
    {
      "slug": "claude-monet",
      "name": "Claude Monet",
      "works": [
        {"title": "Water Lilies", "year": 1906, "genre": "landscape", "style": "Impressionism", "image": "monet/lilies.jpg"},
        {"title": "Untitled Study"}
      ]
    }
  ]
}`

// writeTestIndex writes a dataset index into a temp directory.
func writeTestIndex(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, IndexFile), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test index: %v", err)
	}
	return dir
}

func TestOpen(t *testing.T) {
	dir := writeTestIndex(t, testIndex)

	lib, err := Open(dir, nil)
	if err != nil {
		t.Fatalf("Open unexpected error: %v", err)
	}
	if lib.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", lib.Dir(), dir)
	}

	slugs := lib.Artists(0)
	if len(slugs) != 2 {
		t.Fatalf("Artists(0) returned %d slugs, want 2", len(slugs))
	}
	// Index order is preserved.
	if slugs[0] != "pierre-auguste-renoir" || slugs[1] != "claude-monet" {
		t.Errorf("Artists(0) = %v", slugs)
	}
}

func TestOpenMissingIndex(t *testing.T) {
	if _, err := Open(t.TempDir(), nil); err == nil {
		t.Error("Open without index did not fail")
	}
}

func TestOpenInvalidIndex(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed json", content: "{"},
		{name: "no artists", content: `{"artists": []}`},
		{name: "missing slug", content: `{"artists": [{"name": "Anonymous", "works": []}]}`},
		{name: "duplicate slug", content: `{"artists": [
			{"slug": "monet", "name": "Monet", "works": []},
			{"slug": "monet", "name": "Monet Again", "works": []}
		]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeTestIndex(t, tt.content)
			if _, err := Open(dir, nil); err == nil {
				t.Error("Open did not fail")
			}
		})
	}
}

func TestArtistsLimit(t *testing.T) {
	dir := writeTestIndex(t, testIndex)
	lib, err := Open(dir, nil)
	if err != nil {
		t.Fatalf("Open unexpected error: %v", err)
	}

	if got := lib.Artists(1); len(got) != 1 {
		t.Errorf("Artists(1) returned %d slugs, want 1", len(got))
	}
	if got := lib.Artists(10); len(got) != 2 {
		t.Errorf("Artists(10) returned %d slugs, want 2", len(got))
	}
}

func TestArtist(t *testing.T) {
	dir := writeTestIndex(t, testIndex)
	lib, err := Open(dir, nil)
	if err != nil {
		t.Fatalf("Open unexpected error: %v", err)
	}

	artist, err := lib.Artist("claude-monet")
	if err != nil {
		t.Fatalf("Artist unexpected error: %v", err)
	}
	if artist.Name != "Claude Monet" {
		t.Errorf("Name = %q, want %q", artist.Name, "Claude Monet")
	}
	if len(artist.Works) != 2 {
		t.Errorf("Works = %d, want 2", len(artist.Works))
	}

	if _, err := lib.Artist("van-gogh"); err == nil {
		t.Error("unknown artist did not fail")
	}
}

func TestGenresAndStyles(t *testing.T) {
	dir := writeTestIndex(t, testIndex)
	lib, err := Open(dir, nil)
	if err != nil {
		t.Fatalf("Open unexpected error: %v", err)
	}

	genres, err := lib.Genres("pierre-auguste-renoir")
	if err != nil {
		t.Fatalf("Genres unexpected error: %v", err)
	}
	if genres["genre painting"] != 2 || genres["portrait"] != 1 {
		t.Errorf("Genres = %v", genres)
	}

	// Works without a style count under "unknown".
	styles, err := lib.Styles("claude-monet")
	if err != nil {
		t.Fatalf("Styles unexpected error: %v", err)
	}
	if styles["Impressionism"] != 1 || styles["unknown"] != 1 {
		t.Errorf("Styles = %v", styles)
	}
}

func TestWorkImagePath(t *testing.T) {
	dir := writeTestIndex(t, testIndex)
	lib, err := Open(dir, nil)
	if err != nil {
		t.Fatalf("Open unexpected error: %v", err)
	}

	artist, err := lib.Artist("claude-monet")
	if err != nil {
		t.Fatalf("Artist unexpected error: %v", err)
	}

	path, err := lib.WorkImagePath(artist.Works[0])
	if err != nil {
		t.Fatalf("WorkImagePath unexpected error: %v", err)
	}
	if want := filepath.Join(dir, "monet", "lilies.jpg"); path != want {
		t.Errorf("WorkImagePath = %q, want %q", path, want)
	}

	if _, err := lib.WorkImagePath(artist.Works[1]); err == nil {
		t.Error("work without image did not fail")
	}
}

func TestSortedCounts(t *testing.T) {
	counts := map[string]int{
		"landscape": 3,
		"portrait":  5,
		"study":     3,
	}

	sorted := SortedCounts(counts)
	if len(sorted) != 3 {
		t.Fatalf("SortedCounts returned %d pairs, want 3", len(sorted))
	}
	if sorted[0].Key != "portrait" {
		t.Errorf("first key = %q, want %q", sorted[0].Key, "portrait")
	}
	// Equal counts order alphabetically.
	if sorted[1].Key != "landscape" || sorted[2].Key != "study" {
		t.Errorf("tie order = %q, %q", sorted[1].Key, sorted[2].Key)
	}
}
