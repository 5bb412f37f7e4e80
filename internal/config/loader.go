package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load builds the configuration from defaults, an optional config file,
// POSTSYNC_* environment variables and any flags already bound to v.
// No file is searched for unless configFile is set.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	// Set defaults
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	// Environment variables (POSTSYNC_*)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate and apply defaults for invalid values
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults seeds viper from Default
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("drafts.directory", d.Drafts.Directory)
	v.SetDefault("drafts.extension", d.Drafts.Extension)

	v.SetDefault("output.directory", d.Output.Directory)
	v.SetDefault("output.manifest", d.Output.Manifest)
	v.SetDefault("output.href_prefix", d.Output.HrefPrefix)
	v.SetDefault("output.progress", d.Output.Progress)
	v.SetDefault("output.dry_run", d.Output.DryRun)

	v.SetDefault("index.path", d.Index.Path)
	v.SetDefault("index.start_marker", d.Index.StartMarker)
	v.SetDefault("index.end_marker", d.Index.EndMarker)

	v.SetDefault("excerpt.max_length", d.Excerpt.MaxLength)
	v.SetDefault("sort.locale", d.Sort.Locale)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}
