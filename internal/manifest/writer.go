package manifest

import (
	"bytes"
	"encoding/json"

	"github.com/quantmind-br/postsync/internal/domain"
	"github.com/quantmind-br/postsync/internal/utils"
	"gopkg.in/yaml.v3"
)

// Encode serializes posts in the given format. The output is pretty-printed
// and ends with a newline; an empty set encodes as an empty list.
func Encode(posts []domain.Post, format Format) ([]byte, error) {
	if posts == nil {
		posts = []domain.Post{}
	}

	var buf bytes.Buffer
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(posts); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	default:
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(posts); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// Write replaces the manifest at path, creating parent directories as needed
func Write(path string, posts []domain.Post) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	data, err := Encode(posts, format)
	if err != nil {
		return err
	}

	if err := utils.EnsureDir(path); err != nil {
		return domain.NewWriteError(path, err)
	}
	if err := utils.WriteFile(path, data); err != nil {
		return domain.NewWriteError(path, err)
	}
	return nil
}
