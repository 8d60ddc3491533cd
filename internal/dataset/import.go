package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/pigmentlab/pigment/internal/compression"
	"github.com/pigmentlab/pigment/internal/security"
	httputil "github.com/pigmentlab/pigment/internal/util/http"
)

// downloadTimeout bounds dataset archive downloads, which are much
// larger than ordinary image fetches.
const downloadTimeout = 5 * time.Minute

// Import fetches or opens a dataset archive and extracts it into destDir.
// Source may be a local archive path or an HTTPS URL. Returns the number
// of files extracted.
func Import(ctx context.Context, source, destDir string, logger hclog.Logger) (int, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if source == "" {
		return 0, fmt.Errorf("dataset source cannot be empty")
	}
	if destDir == "" {
		return 0, fmt.Errorf("dataset directory cannot be empty")
	}

	var (
		data []byte
		name string
		err  error
	)

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		if err := security.ValidateHTTPURL(source); err != nil {
			return 0, fmt.Errorf("invalid dataset URL: %w", err)
		}
		logger.Info("downloading dataset archive", "url", source)
		data, err = httputil.Fetch(ctx, source, httputil.FetchOptions{
			Timeout: downloadTimeout,
			Logger:  logger,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to download dataset archive: %w", err)
		}
		name = filepath.Base(source)
	} else {
		logger.Info("reading dataset archive", "path", source)
		data, err = os.ReadFile(source) // #nosec G304 - user-specified archive path, intended to be read
		if err != nil {
			return 0, fmt.Errorf("failed to read dataset archive: %w", err)
		}
		name = filepath.Base(source)
	}

	extracted, err := compression.ExtractArchive(data, name, destDir, logger)
	if err != nil {
		return 0, fmt.Errorf("failed to extract dataset archive: %w", err)
	}

	// A dataset without an index is unusable; fail now rather than on
	// the first query.
	indexPath := filepath.Join(destDir, IndexFile)
	if _, err := os.Stat(indexPath); err != nil {
		return extracted, fmt.Errorf("archive extracted but contains no %s", IndexFile)
	}

	logger.Info("dataset imported", "files", extracted, "dir", destDir)
	return extracted, nil
}
