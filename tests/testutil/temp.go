package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// IndexPage is an index document with an empty listing region
const IndexPage = `<html>
<body>
  <section>
    <!-- BLOG_POSTS:START -->
    <!-- BLOG_POSTS:END -->
  </section>
</body>
</html>
`

// Site is a throwaway site layout rooted in a test temp dir
type Site struct {
	Dir    string
	Drafts string
	Output string
	Index  string
}

// NewSite creates an empty drafts directory and an index page.
// The output directory is left for the build to create.
func NewSite(t *testing.T) Site {
	t.Helper()

	dir := t.TempDir()
	s := Site{
		Dir:    dir,
		Drafts: filepath.Join(dir, "drafts"),
		Output: filepath.Join(dir, "blog"),
		Index:  filepath.Join(dir, "index.html"),
	}

	require.NoError(t, os.MkdirAll(s.Drafts, 0755))
	s.WriteIndex(t, IndexPage)
	return s
}

// WriteDraft writes a draft and returns its path
func (s Site) WriteDraft(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(s.Drafts, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// WriteIndex replaces the index page
func (s Site) WriteIndex(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(s.Index, []byte(content), 0644))
}

// ReadIndex returns the current index page
func (s Site) ReadIndex(t *testing.T) string {
	t.Helper()
	return ReadFile(t, s.Index)
}

// ReadFile reads a file that must exist
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
