// Package index regenerates the blog listing inside a marker-delimited region
// of a larger HTML document. Bytes outside the region are never touched, and
// a document with missing or inverted markers is rejected rather than repaired.
package index

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/quantmind-br/postsync/internal/domain"
	"github.com/quantmind-br/postsync/internal/utils"
)

// Default markers delimiting the owned region
const (
	DefaultStartMarker = "<!-- BLOG_POSTS:START -->"
	DefaultEndMarker   = "<!-- BLOG_POSTS:END -->"
)

// Patcher rewrites the marker region of an index document
type Patcher struct {
	start  string
	end    string
	logger *utils.Logger
}

// Options contains options for the patcher
type Options struct {
	StartMarker string
	EndMarker   string
	Logger      *utils.Logger
}

// NewPatcher creates a new patcher
func NewPatcher(opts Options) *Patcher {
	if opts.StartMarker == "" {
		opts.StartMarker = DefaultStartMarker
	}
	if opts.EndMarker == "" {
		opts.EndMarker = DefaultEndMarker
	}
	if opts.Logger == nil {
		opts.Logger = utils.NewNopLogger()
	}
	return &Patcher{
		start:  opts.StartMarker,
		end:    opts.EndMarker,
		logger: opts.Logger.WithComponent("index"),
	}
}

// Patch returns content with the region between the markers replaced by the
// listing for posts. Every generated line carries the indentation of the
// start marker's line, and the end marker is re-indented to match.
func (p *Patcher) Patch(content string, posts []domain.Post) (string, error) {
	startIdx, endIdx, err := p.locate(content)
	if err != nil {
		return "", err
	}

	lines, err := Render(posts)
	if err != nil {
		return "", fmt.Errorf("render listing: %w", err)
	}

	newline := "\n"
	if strings.Contains(content, "\r\n") {
		newline = "\r\n"
	}
	indent := lineIndent(content, startIdx)

	var b strings.Builder
	b.Grow(len(content) + 256*len(lines))
	b.WriteString(content[:startIdx+len(p.start)])
	b.WriteString(newline)
	for _, line := range lines {
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteString(newline)
	}
	b.WriteString(indent)
	b.WriteString(content[endIdx:])

	return b.String(), nil
}

// locate returns the start marker offset and the end marker offset
func (p *Patcher) locate(content string) (int, int, error) {
	startIdx := strings.Index(content, p.start)
	if startIdx < 0 {
		return 0, 0, domain.NewMarkerError(p.start, domain.ErrMarkerMissing)
	}
	endIdx := strings.Index(content, p.end)
	if endIdx < 0 {
		return 0, 0, domain.NewMarkerError(p.end, domain.ErrMarkerMissing)
	}
	if endIdx < startIdx+len(p.start) {
		return 0, 0, domain.NewMarkerError(p.end, domain.ErrMarkerOrder)
	}
	return startIdx, endIdx, nil
}

// lineIndent returns the leading whitespace of the line containing offset
func lineIndent(content string, offset int) string {
	lineStart := strings.LastIndexByte(content[:offset], '\n') + 1
	prefix := content[lineStart:offset]
	return prefix[:len(prefix)-len(strings.TrimLeft(prefix, " \t"))]
}

// Prepare reads the index document at path and patches it in memory
func (p *Patcher) Prepare(path string, posts []domain.Post) (*domain.IndexUpdate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read index document: %w: %w", domain.ErrInputUnreadable, err)
	}

	original := string(data)
	patched, err := p.Patch(original, posts)
	if err != nil {
		var markerErr *domain.MarkerError
		if errors.As(err, &markerErr) {
			markerErr.Path = path
		}
		return nil, err
	}

	p.logger.Debug().
		Str("path", path).
		Int("posts", len(posts)).
		Bool("changed", patched != original).
		Msg("Prepared index document")

	return &domain.IndexUpdate{
		Path:    path,
		Content: patched,
		Changed: patched != original,
	}, nil
}

// Apply writes the update, keeping the document's permissions
func (p *Patcher) Apply(update *domain.IndexUpdate) error {
	if err := utils.WriteFile(update.Path, []byte(update.Content)); err != nil {
		return domain.NewWriteError(update.Path, err)
	}
	p.logger.Info().
		Str("path", update.Path).
		Bool("changed", update.Changed).
		Msg("Patched index document")
	return nil
}
