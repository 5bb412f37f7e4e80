// Package extractor derives a post title and excerpt from loosely structured HTML.
//
// Lookups are best-effort: drafts are expected to be mostly well formed, and
// malformed markup yields whatever the HTML5 parser recovers rather than an error.
//
// Title precedence:  <title>, first <h1>, caller fallback.
// Excerpt precedence: <meta name="description" content>, first <p>, empty.
//
// A candidate that is empty after normalization counts as absent.
package extractor

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultMaxExcerptLength is the excerpt cap in characters, ellipsis included
const DefaultMaxExcerptLength = 200

// Metadata is what a draft contributes to its post
type Metadata struct {
	Title   string
	Excerpt string
}

// Extractor pulls metadata out of draft markup
type Extractor struct {
	maxExcerpt int
}

// Options contains options for the extractor
type Options struct {
	MaxExcerptLength int
}

// New creates a new extractor
func New(opts Options) *Extractor {
	if opts.MaxExcerptLength < 1 {
		opts.MaxExcerptLength = DefaultMaxExcerptLength
	}
	return &Extractor{maxExcerpt: opts.MaxExcerptLength}
}

// Extract returns the title and excerpt for raw draft content.
// fallbackTitle is used when neither <title> nor <h1> yields text.
func (e *Extractor) Extract(content []byte, fallbackTitle string) Metadata {
	fallback := collapseSpace(fallbackTitle)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return Metadata{Title: fallback}
	}

	title := rawTitle(content)
	if title == "" {
		title = innerText(doc.Find("h1").First())
	}
	if title == "" {
		title = fallback
	}

	return Metadata{
		Title:   title,
		Excerpt: Truncate(extractDescription(content, doc), e.maxExcerpt),
	}
}

// rawTitle returns the normalized <title> text. The title body is read
// straight from the token stream so markup inside it can be stripped
// before references are decoded.
func rawTitle(content []byte) string {
	z := html.NewTokenizer(bytes.NewReader(content))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			name, _ := z.TagName()
			if atom.Lookup(name) != atom.Title {
				continue
			}
			if z.Next() != html.TextToken {
				return ""
			}
			return NormalizeMarkup(string(z.Raw()))
		}
	}
}

// contentAttrRegex finds the content attribute in a raw start tag
var contentAttrRegex = regexp.MustCompile(`(?is)(?:^|[\s"'/])content\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'=<>` + "`" + `]+))`)

// extractDescription extracts the excerpt source text
func extractDescription(content []byte, doc *goquery.Document) string {
	if desc := rawMetaDescription(content); desc != "" {
		return desc
	}
	return innerText(doc.Find("p").First())
}

// rawMetaDescription returns the normalized content of the first
// <meta name="description"> tag. The value is taken from the raw tag text
// because the tokenizer decodes attribute values, and tags must be stripped
// before references are decoded.
func rawMetaDescription(content []byte) string {
	z := html.NewTokenizer(bytes.NewReader(content))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken, html.SelfClosingTagToken:
			// Raw must be copied first: TagName and TagAttr rewrite the buffer in place
			raw := string(z.Raw())
			name, hasAttr := z.TagName()
			if atom.Lookup(name) != atom.Meta || !hasAttr || !isDescription(z) {
				continue
			}
			m := contentAttrRegex.FindStringSubmatch(raw)
			if m == nil {
				return ""
			}
			return NormalizeMarkup(m[1] + m[2] + m[3])
		}
	}
}

// isDescription reports whether the current tag has name="description"
func isDescription(z *html.Tokenizer) bool {
	for {
		key, val, more := z.TagAttr()
		if string(key) == "name" && strings.EqualFold(strings.TrimSpace(string(val)), "description") {
			return true
		}
		if !more {
			return false
		}
	}
}

// innerText renders the selection's children back to markup and normalizes it
func innerText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	inner, err := sel.Html()
	if err != nil {
		return ""
	}
	return NormalizeMarkup(inner)
}
