package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
)

// Config represents the application configuration
type Config struct {
	Drafts  DraftsConfig  `mapstructure:"drafts" yaml:"drafts"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Index   IndexConfig   `mapstructure:"index" yaml:"index"`
	Excerpt ExcerptConfig `mapstructure:"excerpt" yaml:"excerpt"`
	Sort    SortConfig    `mapstructure:"sort" yaml:"sort"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// DraftsConfig contains input settings
type DraftsConfig struct {
	Directory string `mapstructure:"directory" yaml:"directory"`
	Extension string `mapstructure:"extension" yaml:"extension"`
}

// OutputConfig contains output settings
type OutputConfig struct {
	Directory  string `mapstructure:"directory" yaml:"directory"`
	Manifest   string `mapstructure:"manifest" yaml:"manifest"`
	HrefPrefix string `mapstructure:"href_prefix" yaml:"href_prefix"`
	Progress   bool   `mapstructure:"progress" yaml:"progress"`
	DryRun     bool   `mapstructure:"dry_run" yaml:"dry_run"`
}

// IndexConfig contains settings for the patched root document
type IndexConfig struct {
	Path        string `mapstructure:"path" yaml:"path"`
	StartMarker string `mapstructure:"start_marker" yaml:"start_marker"`
	EndMarker   string `mapstructure:"end_marker" yaml:"end_marker"`
}

// ExcerptConfig contains excerpt settings
type ExcerptConfig struct {
	MaxLength int `mapstructure:"max_length" yaml:"max_length"`
}

// SortConfig contains manifest ordering settings
type SortConfig struct {
	Locale string `mapstructure:"locale" yaml:"locale"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Drafts.Directory == "" {
		c.Drafts.Directory = DefaultDraftsDir
	}
	if c.Drafts.Extension == "" {
		c.Drafts.Extension = DefaultExtension
	}
	if !strings.HasPrefix(c.Drafts.Extension, ".") {
		c.Drafts.Extension = "." + c.Drafts.Extension
	}
	if c.Output.Directory == "" {
		c.Output.Directory = DefaultOutputDir
	}
	if c.Index.Path == "" {
		c.Index.Path = DefaultIndexPath
	}
	if c.Index.StartMarker == "" {
		c.Index.StartMarker = DefaultStartMarker
	}
	if c.Index.EndMarker == "" {
		c.Index.EndMarker = DefaultEndMarker
	}
	if c.Index.StartMarker == c.Index.EndMarker {
		return fmt.Errorf("index.start_marker and index.end_marker must differ (both %q)", c.Index.StartMarker)
	}
	if c.Excerpt.MaxLength < 1 {
		c.Excerpt.MaxLength = DefaultExcerptMaxLength
	}
	if c.Sort.Locale == "" {
		c.Sort.Locale = DefaultLocale
	}
	if _, err := language.Parse(c.Sort.Locale); err != nil {
		return fmt.Errorf("invalid sort.locale %q: %w", c.Sort.Locale, err)
	}
	if _, err := c.HrefPrefix(); err != nil {
		return err
	}
	return nil
}

// ManifestPath returns the manifest location, defaulting to a file inside the output directory
func (c *Config) ManifestPath() string {
	if c.Output.Manifest != "" {
		return c.Output.Manifest
	}
	return filepath.Join(c.Output.Directory, DefaultManifestName)
}

// HrefPrefix returns the prefix prepended to published file names in the manifest.
// Without an explicit value, links are made relative to the index document's
// directory. Paths are resolved against the working directory first, so a mix
// of absolute and relative paths still yields a correct prefix.
func (c *Config) HrefPrefix() (string, error) {
	if c.Output.HrefPrefix != "" {
		return c.Output.HrefPrefix, nil
	}

	indexDir, err := filepath.Abs(filepath.Dir(c.Index.Path))
	if err != nil {
		return "", fmt.Errorf("resolve index directory: %w", err)
	}
	outputDir, err := filepath.Abs(c.Output.Directory)
	if err != nil {
		return "", fmt.Errorf("resolve output directory: %w", err)
	}

	rel, err := filepath.Rel(indexDir, outputDir)
	if err != nil {
		return "", fmt.Errorf("cannot link %s from %s, set output.href_prefix: %w", outputDir, indexDir, err)
	}
	if rel == "." {
		return "", nil
	}
	return filepath.ToSlash(rel) + "/", nil
}
