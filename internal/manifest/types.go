package manifest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/postsync/internal/domain"
)

// Format is a manifest serialization format
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor returns the format implied by a file extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedExt, filepath.Ext(path))
	}
}

// Validate checks that every post has a slug and that slugs are unique
func Validate(posts []domain.Post) error {
	seen := make(map[string]int, len(posts))
	for i, p := range posts {
		if p.Slug == "" {
			return fmt.Errorf("post %d: %w", i, ErrEmptySlug)
		}
		if first, ok := seen[p.Slug]; ok {
			return fmt.Errorf("posts %d and %d: %w: %s", first, i, ErrDuplicateSlug, p.Slug)
		}
		seen[p.Slug] = i
	}
	return nil
}
