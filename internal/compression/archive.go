// Package compression extracts dataset archives into a destination
// directory. Supported formats: tar.gz, tar.bz2, tar.xz and zip.
package compression

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/ulikunitz/xz"

	"github.com/pigmentlab/pigment/internal/security"
)

// maxFileSize limits the decompressed size of any single archive member
// to guard against decompression bombs.
const maxFileSize = 200 * 1024 * 1024

// Format identifies an archive format.
type Format string

const (
	FormatTarGz Format = "tar.gz"
	FormatTarBz Format = "tar.bz2"
	FormatTarXz Format = "tar.xz"
	FormatZip   Format = "zip"
)

// DetectFormat determines the archive format from a filename.
func DetectFormat(filename string) (Format, error) {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".tar.gz"), strings.HasSuffix(name, ".tgz"):
		return FormatTarGz, nil
	case strings.HasSuffix(name, ".tar.bz2"), strings.HasSuffix(name, ".tbz2"):
		return FormatTarBz, nil
	case strings.HasSuffix(name, ".tar.xz"), strings.HasSuffix(name, ".txz"):
		return FormatTarXz, nil
	case strings.HasSuffix(name, ".zip"):
		return FormatZip, nil
	default:
		return "", fmt.Errorf("unsupported archive format: %s (supported: .tar.gz, .tar.bz2, .tar.xz, .zip)", filename)
	}
}

// ExtractArchive extracts an in-memory archive into destDir, creating the
// directory if needed. Every member path is validated against directory
// traversal and every member is size-limited. Returns the number of
// files written.
func ExtractArchive(data []byte, filename, destDir string, logger hclog.Logger) (int, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	format, err := DetectFormat(filename)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create destination directory: %w", err)
	}

	logger.Debug("extracting archive", "file", filename, "format", format, "dest", destDir)

	switch format {
	case FormatZip:
		return extractZip(data, destDir, logger)
	case FormatTarGz:
		gzr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return 0, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		return extractTar(gzr, destDir, logger)
	case FormatTarBz:
		return extractTar(bzip2.NewReader(bytes.NewReader(data)), destDir, logger)
	case FormatTarXz:
		xzr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return 0, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return extractTar(xzr, destDir, logger)
	default:
		return 0, fmt.Errorf("unsupported archive format: %s", format)
	}
}

// extractTar extracts every regular file of a tar stream into destDir.
func extractTar(r io.Reader, destDir string, logger hclog.Logger) (int, error) {
	tr := tar.NewReader(r)
	extracted := 0

	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return extracted, fmt.Errorf("failed to read tar archive: %w", err)
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := makeDir(header.Name, destDir); err != nil {
				return extracted, err
			}
		case tar.TypeReg:
			if err := writeFile(tr, header.Name, destDir, logger); err != nil {
				return extracted, err
			}
			extracted++
		default:
			// Symlinks and special files are skipped: dataset archives
			// carry only metadata and images.
			logger.Debug("skipping archive member", "name", header.Name, "type", header.Typeflag)
		}
	}

	if extracted == 0 {
		return 0, fmt.Errorf("no files found in archive")
	}
	return extracted, nil
}

// extractZip extracts every file of a zip archive into destDir.
func extractZip(data []byte, destDir string, logger hclog.Logger) (int, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("failed to open zip archive: %w", err)
	}

	extracted := 0
	for _, file := range zr.File {
		if file.FileInfo().IsDir() {
			if err := makeDir(file.Name, destDir); err != nil {
				return extracted, err
			}
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return extracted, fmt.Errorf("failed to open zip member %s: %w", file.Name, err)
		}
		err = writeFile(rc, file.Name, destDir, logger)
		rc.Close()
		if err != nil {
			return extracted, err
		}
		extracted++
	}

	if extracted == 0 {
		return 0, fmt.Errorf("no files found in archive")
	}
	return extracted, nil
}

// makeDir creates a directory inside destDir after traversal validation.
func makeDir(name, destDir string) error {
	if err := security.ValidateFilePath(name, destDir); err != nil {
		return fmt.Errorf("unsafe archive path %s: %w", name, err)
	}
	if err := os.MkdirAll(filepath.Join(destDir, name), 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", name, err)
	}
	return nil
}

// writeFile writes one archive member into destDir with traversal and
// size guards.
func writeFile(r io.Reader, name, destDir string, logger hclog.Logger) error {
	if err := security.ValidateFilePath(name, destDir); err != nil {
		return fmt.Errorf("unsafe archive path %s: %w", name, err)
	}

	destPath := filepath.Join(destDir, name)
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", name, err)
	}

	out, err := os.Create(destPath) // #nosec G304 - destination path validated above
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", name, err)
	}

	limited := security.NewLimitedReader(r, maxFileSize)
	_, copyErr := io.Copy(out, limited)
	closeErr := out.Close()

	if copyErr != nil {
		return fmt.Errorf("failed to extract %s: %w", name, copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close %s: %w", name, closeErr)
	}

	logger.Debug("extracted file", "name", name)
	return nil
}
