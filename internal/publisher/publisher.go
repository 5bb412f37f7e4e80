// Package publisher turns scanned drafts into posts and writes the published
// blog section: one copy of each draft under its slug plus the manifest.
package publisher

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/quantmind-br/postsync/internal/domain"
	"github.com/quantmind-br/postsync/internal/extractor"
	"github.com/quantmind-br/postsync/internal/manifest"
	"github.com/quantmind-br/postsync/internal/output"
	"github.com/quantmind-br/postsync/internal/slug"
	"github.com/quantmind-br/postsync/internal/utils"
)

// Publisher plans and publishes a build
type Publisher struct {
	extractor    *extractor.Extractor
	writer       *output.Writer
	collator     *collate.Collator
	manifestPath string
	hrefPrefix   string
	extension    string
	progress     io.Writer
	logger       *utils.Logger
}

// Options contains options for the publisher
type Options struct {
	OutputDir        string
	ManifestPath     string // Defaults to posts.json inside OutputDir
	HrefPrefix       string
	Extension        string
	Locale           string
	MaxExcerptLength int
	Progress         io.Writer // Progress bar output; nil disables the bar
	Logger           *utils.Logger
}

// New creates a new publisher
func New(opts Options) (*Publisher, error) {
	if opts.OutputDir == "" {
		opts.OutputDir = "blog"
	}
	if opts.ManifestPath == "" {
		opts.ManifestPath = filepath.Join(opts.OutputDir, "posts.json")
	}
	if opts.Extension == "" {
		opts.Extension = ".html"
	}
	if opts.Locale == "" {
		opts.Locale = "en"
	}
	if opts.Logger == nil {
		opts.Logger = utils.NewNopLogger()
	}

	tag, err := language.Parse(opts.Locale)
	if err != nil {
		return nil, fmt.Errorf("invalid sort locale %q: %w", opts.Locale, err)
	}
	if _, err := manifest.FormatFor(opts.ManifestPath); err != nil {
		return nil, err
	}

	return &Publisher{
		extractor:    extractor.New(extractor.Options{MaxExcerptLength: opts.MaxExcerptLength}),
		writer:       output.NewWriter(output.WriterOptions{BaseDir: opts.OutputDir, Extension: strings.ToLower(opts.Extension)}),
		collator:     collate.New(tag),
		manifestPath: opts.ManifestPath,
		hrefPrefix:   opts.HrefPrefix,
		extension:    strings.ToLower(opts.Extension),
		progress:     opts.Progress,
		logger:       opts.Logger.WithComponent("publisher"),
	}, nil
}

// Href returns the link to a published slug as seen from the index document
func (p *Publisher) Href(s string) string {
	return p.hrefPrefix + s + p.extension
}

// Plan assigns slugs in draft order, extracts metadata and sorts the result by title.
// It does not touch the filesystem.
func (p *Publisher) Plan(ctx context.Context, drafts []domain.Draft) (*domain.Plan, error) {
	registry := slug.NewRegistry()
	entries := make([]domain.Entry, 0, len(drafts))

	for _, draft := range drafts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		s := registry.Assign(slug.FromFilename(draft.Name))
		meta := p.extractor.Extract(draft.Content, slug.Humanize(s))

		p.logger.WithDraft(draft.Name).WithSlug(s).Debug().
			Str("title", meta.Title).
			Int("excerpt_len", len([]rune(meta.Excerpt))).
			Msg("Planned post")

		entries = append(entries, domain.Entry{
			Post: domain.Post{
				Slug:    s,
				Title:   meta.Title,
				Excerpt: meta.Excerpt,
				Href:    p.Href(s),
			},
			Draft: draft,
		})
	}

	p.Sort(entries)
	return &domain.Plan{Entries: entries}, nil
}

// Sort orders entries by title using the configured collation, then by slug
func (p *Publisher) Sort(entries []domain.Entry) {
	slices.SortStableFunc(entries, func(a, b domain.Entry) int {
		if c := p.collator.CompareString(a.Post.Title, b.Post.Title); c != 0 {
			return c
		}
		return strings.Compare(a.Post.Slug, b.Post.Slug)
	})
}

// Publish writes every planned document and then the manifest, returning the manifest path.
// Existing files are overwritten. A failure aborts without cleaning up earlier writes.
func (p *Publisher) Publish(ctx context.Context, plan *domain.Plan) (string, error) {
	if err := p.writer.EnsureBaseDir(); err != nil {
		return "", err
	}

	var onWrite func(domain.Entry, string)
	if p.progress != nil && plan.Len() > 0 {
		bar := utils.NewProgressBar(p.progress, plan.Len(), utils.DescPublishing)
		onWrite = func(domain.Entry, string) {
			_ = bar.Add(1)
		}
	}

	if err := p.writer.WriteMultiple(ctx, plan.Entries, onWrite); err != nil {
		return "", err
	}

	if err := manifest.Write(p.manifestPath, plan.Posts()); err != nil {
		return "", err
	}

	p.logger.Info().
		Int("posts", plan.Len()).
		Str("output", p.writer.BaseDir()).
		Str("manifest", p.manifestPath).
		Msg("Published posts")

	return p.manifestPath, nil
}
