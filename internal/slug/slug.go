// Package slug derives URL-safe, build-unique identifiers from draft file names.
package slug

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Placeholder is used when a name normalizes to nothing
const Placeholder = "untitled"

var nonAlnumRegex = regexp.MustCompile(`[^a-z0-9]+`)

// FromFilename returns the base slug for a draft file name, ignoring its extension
func FromFilename(name string) string {
	base := filepath.Base(name)
	return Normalize(strings.TrimSuffix(base, filepath.Ext(base)))
}

// Normalize folds s to lowercase ASCII, collapsing every run of other
// characters into a single hyphen. Accented letters keep their base letter.
func Normalize(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	folded = strings.ToLower(folded)
	folded = nonAlnumRegex.ReplaceAllString(folded, "-")
	folded = strings.Trim(folded, "-")

	if folded == "" {
		return Placeholder
	}
	return folded
}

// Humanize turns a slug back into a readable title ("my-first-post" -> "My First Post")
func Humanize(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "-", " "))
	if len(words) == 0 {
		return cases.Title(language.English).String(Placeholder)
	}
	return cases.Title(language.English).String(strings.Join(words, " "))
}

// Registry hands out unique slugs in first-seen order
type Registry struct {
	taken map[string]bool
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{taken: make(map[string]bool)}
}

// Assign returns base if unused, otherwise the first free base-N for N = 1, 2, ...
func (r *Registry) Assign(base string) string {
	if !r.taken[base] {
		r.taken[base] = true
		return base
	}
	for n := 1; ; n++ {
		candidate := base + "-" + strconv.Itoa(n)
		if !r.taken[candidate] {
			r.taken[candidate] = true
			return candidate
		}
	}
}
