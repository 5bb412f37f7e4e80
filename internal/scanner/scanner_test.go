package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/quantmind-br/postsync/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestScanner_Scan(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b-post.html", "<p>b</p>")
	writeFile(t, dir, "A Post.HTML", "<p>a</p>")
	writeFile(t, dir, "notes.txt", "not a draft")
	writeFile(t, dir, "page.htm", "wrong extension")
	writeFile(t, dir, "html", "no extension")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.html"), 0755))
	writeFile(t, filepath.Join(dir, "nested.html"), "inner.html", "<p>inner</p>")

	drafts, err := New(Options{}).Scan(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	names := []string{drafts[0].Name, drafts[1].Name}
	assert.ElementsMatch(t, []string{"A Post.HTML", "b-post.html"}, names)

	for _, d := range drafts {
		assert.Equal(t, filepath.Join(dir, d.Name), d.Path)
		assert.NotEmpty(t, d.Content)
	}
}

func TestScanner_ScanEmptyDirectory(t *testing.T) {
	drafts, err := New(Options{}).Scan(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestScanner_ScanMissingDirectory(t *testing.T) {
	drafts, err := New(Options{}).Scan(context.Background(), filepath.Join(t.TempDir(), "missing"))

	assert.Nil(t, drafts)
	assert.ErrorIs(t, err, domain.ErrInputUnreadable)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var scanErr *domain.ScanError
	require.ErrorAs(t, err, &scanErr)
	assert.Contains(t, scanErr.Path, "missing")
}

func TestScanner_CustomExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.htm", "<p>1</p>")
	writeFile(t, dir, "two.html", "<p>2</p>")

	drafts, err := New(Options{Extension: ".htm"}).Scan(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "one.htm", drafts[0].Name)
}

func TestScanner_ContentIsRaw(t *testing.T) {
	dir := t.TempDir()
	raw := "<html>\r\n<title>Keep &amp; bytes</title>\r\n</html>"
	writeFile(t, dir, "raw.html", raw)

	drafts, err := New(Options{}).Scan(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, raw, string(drafts[0].Content))
}

func TestScanner_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.html", "<p>a</p>")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Options{}).Scan(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)
}
