package output

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/postsync/internal/domain"
	"github.com/quantmind-br/postsync/internal/utils"
)

// Writer handles writing published documents to the filesystem
type Writer struct {
	baseDir   string
	extension string
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	BaseDir   string
	Extension string
}

// NewWriter creates a new output writer
func NewWriter(opts WriterOptions) *Writer {
	if opts.BaseDir == "" {
		opts.BaseDir = "./blog"
	}
	if opts.Extension == "" {
		opts.Extension = ".html"
	}

	return &Writer{
		baseDir:   opts.BaseDir,
		extension: opts.Extension,
	}
}

// Write saves the raw draft content of entry under its slug, replacing any previous copy.
// Nothing is written once ctx is done.
func (w *Writer) Write(ctx context.Context, entry domain.Entry) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := w.GetPath(entry.Post.Slug)

	if err := utils.EnsureDir(path); err != nil {
		return "", domain.NewWriteError(path, err)
	}
	if err := utils.WriteFile(path, entry.Draft.Content); err != nil {
		return "", domain.NewWriteError(path, err)
	}

	return path, nil
}

// WriteMultiple writes entries in order, calling done after each one
func (w *Writer) WriteMultiple(ctx context.Context, entries []domain.Entry, done func(entry domain.Entry, path string)) error {
	for _, entry := range entries {
		path, err := w.Write(ctx, entry)
		if err != nil {
			return err
		}
		if done != nil {
			done(entry, path)
		}
	}
	return nil
}

// GetPath returns the output path for a slug
func (w *Writer) GetPath(slug string) string {
	return filepath.Join(w.baseDir, slug+w.extension)
}

// EnsureBaseDir creates the base directory if it doesn't exist
func (w *Writer) EnsureBaseDir() error {
	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return domain.NewWriteError(w.baseDir, err)
	}
	return nil
}

// BaseDir returns the output directory
func (w *Writer) BaseDir() string {
	return w.baseDir
}

// Stats returns the number and total size of published documents in the output directory
func (w *Writer) Stats() (int, int64, error) {
	var count int
	var size int64

	entries, err := os.ReadDir(w.baseDir)
	if err != nil {
		return 0, 0, err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), w.extension) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return 0, 0, err
		}
		count++
		size += info.Size()
	}

	return count, size, nil
}
