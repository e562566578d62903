// Package assets copies images embedded in a published note from the vault's
// image directory into a per-post directory under the site's static root.
package assets

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"vaultpub/internal/fileutil"
	"vaultpub/internal/logging"
)

// ErrInvalidTargetFilename reports a target whose filename yields no slug.
var ErrInvalidTargetFilename = errors.New("invalid target filename")

// DirName returns the per-post image directory name, "<date>-<slug>".
//
// The slug comes from the target's filename: its first whitespace-separated
// token, then the last "-"-separated segment of that token. For
// "2023-05-01-trip.md" that is "trip.md"; for "2023-05-01-road trip.md" it is
// "road".
func DirName(targetPath, originalDate string) (string, error) {
	name := filepath.Base(targetPath)
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTargetFilename, targetPath)
	}
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTargetFilename, targetPath)
	}
	segments := strings.Split(tokens[0], "-")
	slug := segments[len(segments)-1]
	if slug == "" {
		return "", fmt.Errorf("%w: %q has no slug after the last '-'", ErrInvalidTargetFilename, targetPath)
	}
	return originalDate + "-" + slug, nil
}

// Migrator copies images from SourceDir into directories under TargetRoot.
type Migrator struct {
	SourceDir  string
	TargetRoot string
	logger     *slog.Logger
}

// NewMigrator builds a Migrator. A nil logger discards output.
func NewMigrator(sourceDir, targetRoot string, logger *slog.Logger) *Migrator {
	return &Migrator{
		SourceDir:  sourceDir,
		TargetRoot: targetRoot,
		logger:     logging.NewComponentLogger(logger, "assets"),
	}
}

// Migrate copies every named image into TargetRoot/DirName(targetPath,
// originalDate) and returns that directory. The directory is created when
// missing and reused as-is otherwise. The first missing or unreadable image
// aborts the migration; images copied before it stay in place.
func (m *Migrator) Migrate(targetPath, originalDate string, images []string) (string, error) {
	dirName, err := DirName(targetPath, originalDate)
	if err != nil {
		return "", err
	}
	dir := filepath.Join(m.TargetRoot, dirName)

	exists, err := fileutil.Exists(dir)
	if err != nil {
		return "", fmt.Errorf("inspect image directory %s: %w", dir, err)
	}
	if !exists {
		m.logger.Warn("image directory does not exist, creating", logging.Args(logging.String("dir", dir))...)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create image directory %s: %w", dir, err)
		}
	}

	for _, image := range images {
		src := filepath.Join(m.SourceDir, image)
		dst := filepath.Join(dir, image)
		if err := fileutil.CopyFile(src, dst); err != nil {
			return dir, fmt.Errorf("copy image %s: %w", image, err)
		}
		m.logger.Debug("copied image", logging.Args(
			logging.String(logging.FieldImage, image),
			logging.String("from", src),
			logging.String("to", dst),
		)...)
	}
	return dir, nil
}
