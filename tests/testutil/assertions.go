package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/postsync/internal/domain"
)

// Snapshot returns every file under dir keyed by slash-separated relative path.
// A missing dir yields an empty snapshot.
func Snapshot(t *testing.T, dir string) map[string]string {
	t.Helper()

	files := make(map[string]string)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return files
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = ReadFile(t, path)
		return nil
	})
	require.NoError(t, err)
	return files
}

// AssertSlugsUnique asserts no two posts share a slug
func AssertSlugsUnique(t *testing.T, posts []domain.Post) {
	t.Helper()

	seen := make(map[string]bool, len(posts))
	for _, p := range posts {
		assert.False(t, seen[p.Slug], "duplicate slug %q", p.Slug)
		seen[p.Slug] = true
	}
}

// AssertExcerptsWithin asserts every excerpt is at most max characters
func AssertExcerptsWithin(t *testing.T, posts []domain.Post, max int) {
	t.Helper()

	for _, p := range posts {
		assert.LessOrEqual(t, utf8.RuneCountInString(p.Excerpt), max, "excerpt of %q", p.Slug)
	}
}
