package scanner

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/postsync/internal/domain"
	"github.com/quantmind-br/postsync/internal/utils"
)

// DefaultExtension is the document extension scanned for
const DefaultExtension = ".html"

// Scanner lists draft documents in a directory
type Scanner struct {
	extension string
	logger    *utils.Logger
}

// Options contains options for the scanner
type Options struct {
	Extension string
	Logger    *utils.Logger
}

// New creates a new scanner
func New(opts Options) *Scanner {
	if opts.Extension == "" {
		opts.Extension = DefaultExtension
	}
	if opts.Logger == nil {
		opts.Logger = utils.NewNopLogger()
	}
	return &Scanner{
		extension: opts.Extension,
		logger:    opts.Logger.WithComponent("scanner"),
	}
}

// Scan returns every regular file in dir whose name ends in the document
// extension, compared case-insensitively. Subdirectories are not descended.
// Drafts come back in directory order with their content loaded.
func (s *Scanner) Scan(ctx context.Context, dir string) ([]domain.Draft, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, domain.NewScanError(dir, err)
	}

	drafts := make([]domain.Draft, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !s.Matches(entry) {
			s.logger.Debug().Str("entry", entry.Name()).Msg("Skipping non-draft entry")
			continue
		}

		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, domain.NewScanError(path, err)
		}

		drafts = append(drafts, domain.Draft{
			Name:    entry.Name(),
			Path:    path,
			Content: content,
		})
	}

	s.logger.Debug().Str("dir", dir).Int("drafts", len(drafts)).Msg("Scanned drafts")
	return drafts, nil
}

// Matches reports whether a directory entry is a candidate draft
func (s *Scanner) Matches(entry os.DirEntry) bool {
	if !entry.Type().IsRegular() {
		return false
	}
	return strings.EqualFold(filepath.Ext(entry.Name()), s.extension)
}
