package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quantmind-br/postsync/internal/domain"
	"github.com/quantmind-br/postsync/internal/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draft(name, content string) domain.Draft {
	return domain.Draft{Name: name, Path: filepath.Join("drafts", name), Content: []byte(content)}
}

func newPublisher(t *testing.T, opts Options) *Publisher {
	t.Helper()
	p, err := New(opts)
	require.NoError(t, err)
	return p
}

func slugs(plan *domain.Plan) []string {
	out := make([]string, 0, plan.Len())
	for _, e := range plan.Entries {
		out = append(out, e.Post.Slug)
	}
	return out
}

func TestNew_Defaults(t *testing.T) {
	p := newPublisher(t, Options{})

	assert.Equal(t, "blog", p.writer.BaseDir())
	assert.Equal(t, filepath.Join("blog", "posts.json"), p.manifestPath)
	assert.Equal(t, "my-post.html", p.Href("my-post"))
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{name: "invalid locale", opts: Options{Locale: "not a locale!"}},
		{name: "unsupported manifest extension", opts: Options{ManifestPath: "blog/posts.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts)
			assert.Error(t, err)
		})
	}
}

func TestPlan_Metadata(t *testing.T) {
	p := newPublisher(t, Options{HrefPrefix: "blog/"})
	body := strings.Repeat("a", 250)

	plan, err := p.Plan(context.Background(), []domain.Draft{
		draft("My First Post.html", "<html><head><title>Hello, World!</title></head><body><p>"+body+"</p></body></html>"),
	})
	require.NoError(t, err)
	require.Equal(t, 1, plan.Len())

	post := plan.Entries[0].Post
	assert.Equal(t, "my-first-post", post.Slug)
	assert.Equal(t, "Hello, World!", post.Title)
	assert.Equal(t, "blog/my-first-post.html", post.Href)
	assert.LessOrEqual(t, len([]rune(post.Excerpt)), 200)
	assert.True(t, strings.HasSuffix(post.Excerpt, "…"))
}

func TestPlan_FallbackTitle(t *testing.T) {
	p := newPublisher(t, Options{})

	plan, err := p.Plan(context.Background(), []domain.Draft{
		draft("release-notes.html", "<p>No headings here.</p>"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Release Notes", plan.Entries[0].Post.Title)
	assert.Equal(t, "No headings here.", plan.Entries[0].Post.Excerpt)
}

func TestPlan_SlugCollisions(t *testing.T) {
	p := newPublisher(t, Options{})

	plan, err := p.Plan(context.Background(), []domain.Draft{
		draft("Launch.html", "<title>Launch A</title>"),
		draft("launch.HTML", "<title>Launch B</title>"),
		draft("LAUNCH!.html", "<title>Launch C</title>"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"launch", "launch-1", "launch-2"}, slugs(plan))
}

func TestPlan_SlugsUnique(t *testing.T) {
	p := newPublisher(t, Options{})
	names := []string{"a.html", "a-1.html", "A.html", "a 1.html", "???.html", "!!!.html", "untitled.html"}

	drafts := make([]domain.Draft, 0, len(names))
	for _, n := range names {
		drafts = append(drafts, draft(n, "<title>Same</title>"))
	}

	plan, err := p.Plan(context.Background(), drafts)
	require.NoError(t, err)
	require.Equal(t, len(names), plan.Len())

	seen := make(map[string]bool)
	for _, s := range slugs(plan) {
		assert.False(t, seen[s], "duplicate slug %q", s)
		seen[s] = true
	}
}

func TestPlan_SortedByTitle(t *testing.T) {
	p := newPublisher(t, Options{})

	plan, err := p.Plan(context.Background(), []domain.Draft{
		draft("c.html", "<title>cherry</title>"),
		draft("b.html", "<title>Banana</title>"),
		draft("a.html", "<title>apple</title>"),
		draft("e.html", "<title>Éclair</title>"),
		draft("d.html", "<title>date</title>"),
	})
	require.NoError(t, err)

	titles := make([]string, 0, plan.Len())
	for _, post := range plan.Posts() {
		titles = append(titles, post.Title)
	}
	assert.Equal(t, []string{"apple", "Banana", "cherry", "date", "Éclair"}, titles)
}

func TestPlan_TiesBrokenBySlug(t *testing.T) {
	p := newPublisher(t, Options{})

	plan, err := p.Plan(context.Background(), []domain.Draft{
		draft("zeta.html", "<title>Same</title>"),
		draft("alpha.html", "<title>Same</title>"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "zeta"}, slugs(plan))
}

func TestPlan_Cancelled(t *testing.T) {
	p := newPublisher(t, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Plan(ctx, []domain.Draft{draft("a.html", "")})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlan_Empty(t *testing.T) {
	p := newPublisher(t, Options{})

	plan, err := p.Plan(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, plan.Len())
	assert.NotNil(t, plan.Posts())
}

func TestPublish(t *testing.T) {
	out := filepath.Join(t.TempDir(), "blog")
	var progress bytes.Buffer
	p := newPublisher(t, Options{OutputDir: out, HrefPrefix: "blog/", Progress: &progress})
	ctx := context.Background()

	raw := "<html><title>Launch</title><p>Go &amp; ship</p></html>"
	plan, err := p.Plan(ctx, []domain.Draft{
		draft("launch.html", raw),
		draft("Launch.html", "<title>Launch again</title>"),
	})
	require.NoError(t, err)

	manifestPath, err := p.Publish(ctx, plan)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "posts.json"), manifestPath)

	data, err := os.ReadFile(filepath.Join(out, "launch.html"))
	require.NoError(t, err)
	assert.Equal(t, raw, string(data))
	assert.FileExists(t, filepath.Join(out, "launch-1.html"))

	posts, err := manifest.NewLoader().Load(manifestPath)
	require.NoError(t, err)
	assert.Equal(t, plan.Posts(), posts)
	assert.Equal(t, "blog/launch.html", posts[0].Href)

	assert.Contains(t, progress.String(), "Publishing")
}

func TestPublish_EmptyPlanWritesEmptyList(t *testing.T) {
	out := filepath.Join(t.TempDir(), "blog")
	p := newPublisher(t, Options{OutputDir: out})

	manifestPath, err := p.Publish(context.Background(), &domain.Plan{})
	require.NoError(t, err)

	data, err := os.ReadFile(manifestPath)
	require.NoError(t, err)

	var posts []domain.Post
	require.NoError(t, json.Unmarshal(data, &posts))
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))
}

func TestPublish_Idempotent(t *testing.T) {
	out := filepath.Join(t.TempDir(), "blog")
	p := newPublisher(t, Options{OutputDir: out})
	ctx := context.Background()
	drafts := []domain.Draft{
		draft("b.html", "<title>B</title><p>Second</p>"),
		draft("a.html", "<title>A</title><meta name=\"description\" content=\"First\">"),
	}

	run := func() map[string]string {
		plan, err := p.Plan(ctx, drafts)
		require.NoError(t, err)
		_, err = p.Publish(ctx, plan)
		require.NoError(t, err)

		files := make(map[string]string)
		entries, err := os.ReadDir(out)
		require.NoError(t, err)
		for _, e := range entries {
			data, err := os.ReadFile(filepath.Join(out, e.Name()))
			require.NoError(t, err)
			files[e.Name()] = string(data)
		}
		return files
	}

	first := run()
	second := run()
	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
}

func TestPublish_YAMLManifest(t *testing.T) {
	out := filepath.Join(t.TempDir(), "blog")
	p := newPublisher(t, Options{OutputDir: out, ManifestPath: filepath.Join(out, "posts.yaml")})
	ctx := context.Background()

	plan, err := p.Plan(ctx, []domain.Draft{draft("a.html", "<title>A</title>")})
	require.NoError(t, err)

	manifestPath, err := p.Publish(ctx, plan)
	require.NoError(t, err)

	posts, err := manifest.NewLoader().Load(manifestPath)
	require.NoError(t, err)
	assert.Equal(t, plan.Posts(), posts)
}

func TestPublish_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	p := newPublisher(t, Options{OutputDir: filepath.Join(blocker, "blog")})
	_, err := p.Publish(context.Background(), &domain.Plan{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrWriteFailed))
}
