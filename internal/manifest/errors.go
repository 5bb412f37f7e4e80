package manifest

import "errors"

// Sentinel errors for the manifest package
var (
	// ErrFileNotFound indicates the manifest file does not exist
	ErrFileNotFound = errors.New("manifest file not found")

	// ErrInvalidFormat indicates the manifest file is not valid YAML or JSON
	ErrInvalidFormat = errors.New("manifest must be valid YAML or JSON")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .json, .yaml, or .yml)")

	// ErrEmptySlug indicates a post without a slug
	ErrEmptySlug = errors.New("post slug cannot be empty")

	// ErrDuplicateSlug indicates two posts share a slug
	ErrDuplicateSlug = errors.New("duplicate post slug")
)
