package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/quantmind-br/postsync/internal/config"
	"github.com/quantmind-br/postsync/internal/domain"
	"github.com/quantmind-br/postsync/internal/index"
	"github.com/quantmind-br/postsync/internal/manifest"
	"github.com/quantmind-br/postsync/internal/output"
	"github.com/quantmind-br/postsync/internal/publisher"
	"github.com/quantmind-br/postsync/internal/scanner"
	"github.com/quantmind-br/postsync/internal/utils"
)

// Builder coordinates a blog build: scan, plan, patch, publish
type Builder struct {
	config    *config.Config
	scanner   domain.Scanner
	planner   domain.Planner
	publisher domain.Publisher
	patcher   domain.IndexPatcher
	logger    *utils.Logger
}

// BuilderOptions contains options for creating a builder.
// Nil collaborators are built from Config.
type BuilderOptions struct {
	Config         *config.Config
	Verbose        bool
	Logger         *utils.Logger
	ProgressOutput io.Writer
	Scanner        domain.Scanner
	Planner        domain.Planner
	Publisher      domain.Publisher
	Patcher        domain.IndexPatcher
}

// Result summarizes a finished build
type Result struct {
	Posts        []domain.Post
	ManifestPath string
	IndexPath    string
	IndexChanged bool
	DryRun       bool
	Duration     time.Duration
}

// NewBuilder creates a new builder with the given configuration
func NewBuilder(opts BuilderOptions) (*Builder, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:   cfg.Logging.Level,
			Format:  cfg.Logging.Format,
			Verbose: opts.Verbose,
		})
	}

	b := &Builder{
		config:    cfg,
		scanner:   opts.Scanner,
		planner:   opts.Planner,
		publisher: opts.Publisher,
		patcher:   opts.Patcher,
		logger:    logger,
	}

	if b.scanner == nil {
		b.scanner = scanner.New(scanner.Options{
			Extension: cfg.Drafts.Extension,
			Logger:    logger,
		})
	}

	if b.planner == nil || b.publisher == nil {
		progress := opts.ProgressOutput
		if progress == nil && cfg.Output.Progress {
			progress = os.Stderr
		}
		hrefPrefix, err := cfg.HrefPrefix()
		if err != nil {
			return nil, err
		}
		pub, err := publisher.New(publisher.Options{
			OutputDir:        cfg.Output.Directory,
			ManifestPath:     cfg.ManifestPath(),
			HrefPrefix:       hrefPrefix,
			Extension:        cfg.Drafts.Extension,
			Locale:           cfg.Sort.Locale,
			MaxExcerptLength: cfg.Excerpt.MaxLength,
			Progress:         progress,
			Logger:           logger,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create publisher: %w", err)
		}
		if b.planner == nil {
			b.planner = pub
		}
		if b.publisher == nil {
			b.publisher = pub
		}
	}

	if b.patcher == nil {
		b.patcher = index.NewPatcher(index.Options{
			StartMarker: cfg.Index.StartMarker,
			EndMarker:   cfg.Index.EndMarker,
			Logger:      logger,
		})
	}

	return b, nil
}

// Run executes a full build. The index document is patched in memory before
// anything is written, so a malformed index leaves the output untouched.
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	startTime := time.Now()
	cfg := b.config

	b.logger.Info().
		Str("drafts", cfg.Drafts.Directory).
		Str("output", cfg.Output.Directory).
		Str("index", cfg.Index.Path).
		Bool("dry_run", cfg.Output.DryRun).
		Msg("Starting build")

	drafts, err := b.scanner.Scan(ctx, cfg.Drafts.Directory)
	if err != nil {
		return nil, err
	}
	b.logger.Debug().Int("drafts", len(drafts)).Msg("Scanned drafts")

	plan, err := b.planner.Plan(ctx, drafts)
	if err != nil {
		return nil, fmt.Errorf("plan posts: %w", err)
	}
	posts := plan.Posts()

	update, err := b.patcher.Prepare(b.config.Index.Path, posts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Posts:        posts,
		ManifestPath: cfg.ManifestPath(),
		IndexPath:    update.Path,
		IndexChanged: update.Changed,
		DryRun:       cfg.Output.DryRun,
	}

	if cfg.Output.DryRun {
		result.Duration = time.Since(startTime)
		b.logger.Info().
			Int("posts", len(posts)).
			Bool("index_changed", update.Changed).
			Msg("Dry run: no files written")
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		b.logger.Warn().Msg("Build cancelled")
		return nil, err
	}

	manifestPath, err := b.publisher.Publish(ctx, plan)
	if err != nil {
		if ctx.Err() != nil {
			b.logger.Warn().Msg("Build cancelled")
			return nil, ctx.Err()
		}
		return nil, err
	}
	result.ManifestPath = manifestPath

	if err := b.patcher.Apply(update); err != nil {
		return nil, err
	}

	b.logStats()

	result.Duration = time.Since(startTime)
	b.logger.Info().
		Int("posts", len(posts)).
		Str("manifest", manifestPath).
		Bool("index_changed", update.Changed).
		Dur("duration", result.Duration).
		Msg("Build completed")

	return result, nil
}

// Reindex regenerates the index listing from the manifest on disk without republishing
func (b *Builder) Reindex(ctx context.Context) (*Result, error) {
	startTime := time.Now()
	manifestPath := b.config.ManifestPath()

	posts, err := manifest.NewLoader().Load(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("load manifest %s: %w: %w", manifestPath, domain.ErrInputUnreadable, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	update, err := b.patcher.Prepare(b.config.Index.Path, posts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Posts:        posts,
		ManifestPath: manifestPath,
		IndexPath:    update.Path,
		IndexChanged: update.Changed,
		DryRun:       b.config.Output.DryRun,
	}

	if !result.DryRun {
		if err := b.patcher.Apply(update); err != nil {
			return nil, err
		}
	}

	result.Duration = time.Since(startTime)
	b.logger.Info().
		Int("posts", len(posts)).
		Str("manifest", manifestPath).
		Bool("index_changed", update.Changed).
		Bool("dry_run", result.DryRun).
		Msg("Index regenerated")

	return result, nil
}

// logStats reports what the output directory holds after publishing
func (b *Builder) logStats() {
	w := output.NewWriter(output.WriterOptions{
		BaseDir:   b.config.Output.Directory,
		Extension: b.config.Drafts.Extension,
	})
	count, size, err := w.Stats()
	if err != nil {
		b.logger.Debug().Err(err).Msg("Failed to read output stats")
		return
	}
	b.logger.Debug().
		Int("documents", count).
		Int64("bytes", size).
		Msg("Output directory")
}
