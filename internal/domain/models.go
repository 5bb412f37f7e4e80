package domain

// Draft is a source document awaiting publication
type Draft struct {
	Name    string // File name as listed in the drafts directory
	Path    string // Full path to the file
	Content []byte // Raw document bytes, published unmodified
}

// Post represents a published blog post in the manifest
type Post struct {
	Slug    string `json:"slug" yaml:"slug"`
	Title   string `json:"title" yaml:"title"`
	Excerpt string `json:"excerpt" yaml:"excerpt"`
	Href    string `json:"href" yaml:"href"`
}

// Entry pairs a post with the draft it was built from
type Entry struct {
	Post  Post
	Draft Draft
}

// Plan is the in-memory result of processing every draft, ordered by title
type Plan struct {
	Entries []Entry
}

// Posts returns the manifest view of the plan in order
func (p *Plan) Posts() []Post {
	posts := make([]Post, 0, len(p.Entries))
	for _, e := range p.Entries {
		posts = append(posts, e.Post)
	}
	return posts
}

// Len returns the number of planned posts
func (p *Plan) Len() int {
	return len(p.Entries)
}

// IndexUpdate is a patched index document that has not been written yet
type IndexUpdate struct {
	Path    string
	Content string
	Changed bool
}
