package index

import (
	"html/template"
	"strings"

	"github.com/quantmind-br/postsync/internal/domain"
)

// EmptyMessage is shown when no posts are published
const EmptyMessage = "No posts yet. Check back soon."

// listingTemplate renders one block per post. html/template escapes titles,
// excerpts and hrefs for their context, so draft text cannot inject markup.
var listingTemplate = template.Must(template.New("listing").Parse(
	`{{- if .Posts -}}
{{- range .Posts -}}
<article class="blog-post">
  <h3><a href="{{ .Href }}">{{ .Title }}</a></h3>
{{- if .Excerpt }}
  <p>{{ .Excerpt }}</p>
{{- end }}
</article>
{{ end -}}
{{- else -}}
<p class="blog-empty">{{ .Empty }}</p>
{{ end -}}`))

type listingData struct {
	Posts []domain.Post
	Empty string
}

// Render returns the listing markup for posts, one line per element, without indentation
func Render(posts []domain.Post) ([]string, error) {
	var b strings.Builder
	if err := listingTemplate.Execute(&b, listingData{Posts: posts, Empty: EmptyMessage}); err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimRight(b.String(), "\n"), "\n"), nil
}
