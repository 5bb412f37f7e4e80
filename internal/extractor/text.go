package extractor

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ellipsis is appended to truncated excerpts
const Ellipsis = "…"

// breakingTags separate words when stripped; other tags vanish without a trace
var breakingTags = map[atom.Atom]bool{
	atom.Br: true, atom.P: true, atom.Div: true, atom.Li: true,
	atom.Td: true, atom.Th: true, atom.Tr: true, atom.Hr: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
}

// StripTags removes markup from an HTML fragment. Character references are
// left encoded; script and style bodies and comments are dropped.
func StripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	skip := 0
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Raw())
			}
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if a == atom.Script || a == atom.Style {
				if tt == html.StartTagToken {
					skip++
				} else if tt == html.EndTagToken && skip > 0 {
					skip--
				}
				continue
			}
			if breakingTags[a] {
				b.WriteByte(' ')
			}
		}
	}
}

// NormalizeMarkup strips tags from a raw fragment, decodes character
// references and collapses whitespace (non-breaking spaces included).
func NormalizeMarkup(raw string) string {
	return collapseSpace(html.UnescapeString(StripTags(raw)))
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate caps s at max characters including the ellipsis. The cut backs up
// to the last whole word and drops trailing punctuation, quotes and spaces.
// Text that already fits is returned unchanged. A single word longer than the
// cap has no boundary to back up to and is cut hard.
func Truncate(s string, max int) string {
	if max < 1 {
		return ""
	}

	r := []rune(s)
	if len(r) <= max {
		return s
	}

	budget := max - len([]rune(Ellipsis))
	cut := r[:budget]

	// The rune right after the cut tells whether a word is split
	if !unicode.IsSpace(r[budget]) {
		if i := lastSpace(cut); i > 0 {
			cut = cut[:i]
		}
	}

	trimmed := strings.TrimRightFunc(string(cut), func(c rune) bool {
		return unicode.IsSpace(c) || unicode.IsPunct(c) || isQuote(c)
	})
	return trimmed + Ellipsis
}

func lastSpace(r []rune) int {
	for i := len(r) - 1; i >= 0; i-- {
		if unicode.IsSpace(r[i]) {
			return i
		}
	}
	return -1
}

func isQuote(c rune) bool {
	switch c {
	case '"', '\'', '`', '“', '”', '‘', '’', '«', '»':
		return true
	}
	return false
}
