package publish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"vaultpub/internal/assets"
	"vaultpub/internal/config"
	"vaultpub/internal/fileutil"
	"vaultpub/internal/history"
	"vaultpub/internal/logging"
	"vaultpub/internal/notedate"
	"vaultpub/internal/registry"
	"vaultpub/internal/rewrite"
)

// ErrMissingTarget reports a registry mapping without a target path.
var ErrMissingTarget = errors.New("mapping has no target")

// Recorder journals completed publishes. *history.Store satisfies it.
type Recorder interface {
	Record(ctx context.Context, entry history.Entry) error
}

// Result describes one completed publish.
type Result struct {
	Mapping        registry.Mapping
	OriginalDate   string
	Classification Classification
	Images         []string
	ImageDir       string
}

// Pipeline publishes registry mappings.
type Pipeline struct {
	marker    string
	urlPrefix string
	migrator  *assets.Migrator
	recorder  Recorder
	logger    *slog.Logger
	now       func() time.Time
}

// New builds a Pipeline from configuration. recorder may be nil to skip the
// publish journal; a nil logger discards output.
func New(cfg *config.Config, recorder Recorder, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		marker:    cfg.Publish.PublishedMarker,
		urlPrefix: cfg.Publish.ImageURLPrefix,
		migrator:  assets.NewMigrator(cfg.Paths.SourceImageDir, cfg.Paths.TargetImageDir, logger),
		recorder:  recorder,
		logger:    logging.NewComponentLogger(logger, "publish"),
		now:       time.Now,
	}
}

// PublishAll publishes mappings in order under a fresh run ID and stops at
// the first failure. Results for the mappings completed before the failure
// are returned alongside the error.
func (p *Pipeline) PublishAll(ctx context.Context, mappings []registry.Mapping) ([]Result, error) {
	runID := uuid.NewString()
	logger := p.logger.With(logging.String(logging.FieldRunID, runID))
	logger.Info("publishing mappings", logging.Args(logging.Int("count", len(mappings)))...)

	results := make([]Result, 0, len(mappings))
	for _, m := range mappings {
		result, err := p.publish(ctx, runID, logger, m)
		if err != nil {
			return results, fmt.Errorf("publish %s: %w", m.Source, err)
		}
		results = append(results, result)
	}
	logger.Info("publish run complete", logging.Args(logging.Int("published", len(results)))...)
	return results, nil
}

// Publish runs a single mapping through the pipeline.
func (p *Pipeline) Publish(ctx context.Context, m registry.Mapping) (Result, error) {
	runID := uuid.NewString()
	return p.publish(ctx, runID, p.logger.With(logging.String(logging.FieldRunID, runID)), m)
}

func (p *Pipeline) publish(ctx context.Context, runID string, logger *slog.Logger, m registry.Mapping) (Result, error) {
	result := Result{Mapping: m}
	if m.Target == "" {
		return result, fmt.Errorf("%w: %s", ErrMissingTarget, m.Source)
	}
	logger = logger.With(logging.String(logging.FieldNote, m.SourceName()))

	raw, err := os.ReadFile(m.Source)
	if err != nil {
		return result, fmt.Errorf("read source: %w", err)
	}
	content := string(raw)

	date, err := notedate.Resolve(m.Source, content)
	if err != nil {
		return result, err
	}
	result.OriginalDate = date
	if _, ok := notedate.FromContent(content); !ok {
		logger.Debug("no date line, using file creation date", logging.Args(logging.String("date", date))...)
	}

	content = rewrite.NormalizeEscapes(content)
	if err := fileutil.WriteText(m.Source, content); err != nil {
		return result, fmt.Errorf("write source: %w", err)
	}
	logger.Debug("updated source", logging.Args(logging.String(logging.FieldSource, m.Source))...)

	result.Classification = Classify(m.Target, p.marker)
	switch result.Classification {
	case AssetBearing:
		if err := p.publishPost(logger, &result, content); err != nil {
			return result, err
		}
	default:
		if err := fileutil.WriteText(m.Target, content); err != nil {
			return result, fmt.Errorf("write target: %w", err)
		}
	}
	logger.Info("updated target", logging.Args(
		logging.String(logging.FieldTarget, m.Target),
		logging.String("kind", result.Classification.String()),
		logging.Int("images", len(result.Images)),
	)...)

	if p.recorder != nil {
		err := p.recorder.Record(ctx, history.Entry{
			RunID:        runID,
			Source:       m.Source,
			Target:       m.Target,
			OriginalDate: date,
			AssetBearing: result.Classification == AssetBearing,
			ImageCount:   len(result.Images),
			ImageDir:     result.ImageDir,
			PublishedAt:  p.now(),
		})
		if err != nil {
			return result, err
		}
	}
	return result, nil
}

func (p *Pipeline) publishPost(logger *slog.Logger, result *Result, content string) error {
	target := result.Mapping.Target
	dirName, err := assets.DirName(target, result.OriginalDate)
	if err != nil {
		return err
	}

	rewritten, images := rewrite.RewriteImageLinks(content, dirName, p.urlPrefix)
	result.Images = images
	if err := fileutil.WriteText(target, rewritten); err != nil {
		return fmt.Errorf("write target: %w", err)
	}

	dir, err := p.migrator.Migrate(target, result.OriginalDate, images)
	result.ImageDir = dir
	if err != nil {
		return err
	}
	if len(images) > 0 {
		logger.Debug("migrated images", logging.Args(logging.String("dir", dir), logging.Int("images", len(images)))...)
	}
	return nil
}
