package dataset

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"
)

// writeTestArchive writes a tar.gz archive holding the given files.
func writeTestArchive(t *testing.T, files map[string]string) string {
	t.Helper()

	var buf bytes.Buffer
	gzw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gzw)
	for name, content := range files {
		header := &tar.Header{Name: name, Mode: 0o644, Size: int64(len(content))}
		if err := tw.WriteHeader(header); err != nil {
			t.Fatalf("failed to write tar header: %v", err)
		}
		if _, err := tw.Write([]byte(content)); err != nil {
			t.Fatalf("failed to write tar content: %v", err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("failed to close tar writer: %v", err)
	}
	if err := gzw.Close(); err != nil {
		t.Fatalf("failed to close gzip writer: %v", err)
	}

	path := filepath.Join(t.TempDir(), "dataset.tar.gz")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("failed to write archive: %v", err)
	}
	return path
}

func TestImportFromFile(t *testing.T) {
	archive := writeTestArchive(t, map[string]string{
		"index.json":       `{"artists": [{"slug": "monet", "name": "Claude Monet", "works": []}]}`,
		"monet/lilies.jpg": "image bytes",
	})
	destDir := filepath.Join(t.TempDir(), "dataset")

	count, err := Import(context.Background(), archive, destDir, nil)
	if err != nil {
		t.Fatalf("Import unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("imported %d files, want 2", count)
	}

	lib, err := Open(destDir, nil)
	if err != nil {
		t.Fatalf("imported dataset does not open: %v", err)
	}
	if len(lib.Artists(0)) != 1 {
		t.Errorf("imported dataset has %d artists, want 1", len(lib.Artists(0)))
	}
}

func TestImportWithoutIndex(t *testing.T) {
	archive := writeTestArchive(t, map[string]string{
		"readme.txt": "no index here",
	})
	destDir := filepath.Join(t.TempDir(), "dataset")

	if _, err := Import(context.Background(), archive, destDir, nil); err == nil {
		t.Error("archive without index.json did not fail")
	}
}

func TestImportValidation(t *testing.T) {
	ctx := context.Background()

	if _, err := Import(ctx, "", "/tmp/dest", nil); err == nil {
		t.Error("empty source did not fail")
	}
	if _, err := Import(ctx, "archive.tar.gz", "", nil); err == nil {
		t.Error("empty destination did not fail")
	}
	if _, err := Import(ctx, "http://example.org/d.tar.gz", t.TempDir(), nil); err == nil {
		t.Error("plain HTTP URL did not fail")
	}
	if _, err := Import(ctx, filepath.Join(t.TempDir(), "missing.tar.gz"), t.TempDir(), nil); err == nil {
		t.Error("missing archive file did not fail")
	}
}
