// Package manifest reads and writes the post manifest: the ordered list of
// published posts that drives index regeneration.
//
// # Manifest Format
//
// Manifests are written as JSON (default) or YAML, chosen by file extension:
//
//	[
//	  {
//	    "slug": "my-first-post",
//	    "title": "Hello, World!",
//	    "excerpt": "A short summary…",
//	    "href": "blog/my-first-post.html"
//	  }
//	]
//
// The manifest is regenerated in full on every build; there is no merge with
// a previous manifest. Encoding is deterministic so unchanged input yields
// byte-identical output.
//
// # Usage
//
//	if err := manifest.Write("blog/posts.json", posts); err != nil {
//	    return err
//	}
//
//	loader := manifest.NewLoader()
//	posts, err := loader.Load("blog/posts.json")
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrFileNotFound: manifest file does not exist
//   - ErrInvalidFormat: file is not valid YAML/JSON
//   - ErrUnsupportedExt: unsupported file extension
//   - ErrEmptySlug: a post has no slug
//   - ErrDuplicateSlug: two posts share a slug
package manifest
