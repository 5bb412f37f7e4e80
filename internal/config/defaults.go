package config

// Default values
const (
	// Input defaults
	DefaultDraftsDir = "drafts"
	DefaultExtension = ".html"

	// Output defaults
	DefaultOutputDir    = "blog"
	DefaultManifestName = "posts.json"

	// Index defaults
	DefaultIndexPath   = "index.html"
	DefaultStartMarker = "<!-- BLOG_POSTS:START -->"
	DefaultEndMarker   = "<!-- BLOG_POSTS:END -->"

	// Extraction defaults
	DefaultExcerptMaxLength = 200

	// Ordering defaults
	DefaultLocale = "en"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"

	// EnvPrefix is the prefix for environment overrides (POSTSYNC_OUTPUT_DIRECTORY, ...)
	EnvPrefix = "POSTSYNC"
)

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Drafts: DraftsConfig{
			Directory: DefaultDraftsDir,
			Extension: DefaultExtension,
		},
		Output: OutputConfig{
			Directory: DefaultOutputDir,
		},
		Index: IndexConfig{
			Path:        DefaultIndexPath,
			StartMarker: DefaultStartMarker,
			EndMarker:   DefaultEndMarker,
		},
		Excerpt: ExcerptConfig{
			MaxLength: DefaultExcerptMaxLength,
		},
		Sort: SortConfig{
			Locale: DefaultLocale,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
