package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/quantmind-br/postsync/internal/app"
	"github.com/quantmind-br/postsync/internal/config"
	"github.com/quantmind-br/postsync/internal/domain"
	"github.com/quantmind-br/postsync/internal/utils"
	"github.com/quantmind-br/postsync/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// cliOptions holds flags that are not part of the configuration
type cliOptions struct {
	cfgFile string
	verbose bool
}

// flagBindings maps configuration keys to the flags that override them
var flagBindings = map[string]string{
	"drafts.directory":   "drafts",
	"drafts.extension":   "extension",
	"output.directory":   "output",
	"output.manifest":    "manifest",
	"output.href_prefix": "href-prefix",
	"output.progress":    "progress",
	"output.dry_run":     "dry-run",
	"index.path":         "index",
	"index.start_marker": "start-marker",
	"index.end_marker":   "end-marker",
	"excerpt.max_length": "excerpt-length",
	"sort.locale":        "locale",
	"logging.format":     "log-format",
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the CLI and returns the process exit code
func execute(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitCode(err)
	}
	return 0
}

// Exit codes
const (
	exitBuildFailed = 1
	exitUsage       = 2
)

// exitCode separates a build that failed on its inputs or outputs from a
// command that never got to build (bad flags, unreadable config).
func exitCode(err error) int {
	if domain.IsFatal(err) || errors.Is(err, context.Canceled) {
		return exitBuildFailed
	}
	return exitUsage
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:   "postsync",
		Short: "Publish HTML drafts and keep the blog listing in sync",
		Long: `postsync turns a folder of draft HTML documents into a published blog
section: every draft is copied under a URL-safe slug, a manifest of titles and
excerpts is written next to them, and the listing between two markers in the
site's index page is regenerated.

Running without a subcommand is the same as "postsync build".`,
		Version:       version.Short(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, v, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (YAML, JSON or TOML); none is read by default")
	flags.StringP("drafts", "d", config.DefaultDraftsDir, "Drafts directory")
	flags.String("extension", config.DefaultExtension, "Draft document extension")
	flags.StringP("output", "o", config.DefaultOutputDir, "Output directory for published posts")
	flags.StringP("manifest", "m", "", "Manifest path, .json or .yaml (default <output>/posts.json)")
	flags.StringP("index", "i", config.DefaultIndexPath, "Index document containing the listing markers")
	flags.String("href-prefix", "", "Prefix for post links (default: output path relative to the index)")
	flags.String("start-marker", config.DefaultStartMarker, "Marker opening the listing region")
	flags.String("end-marker", config.DefaultEndMarker, "Marker closing the listing region")
	flags.Int("excerpt-length", config.DefaultExcerptMaxLength, "Maximum excerpt length in characters")
	flags.String("locale", config.DefaultLocale, "Locale used to sort posts by title")
	flags.Bool("dry-run", false, "Run every step without writing files")
	flags.Bool("progress", false, "Show a progress bar while publishing")
	flags.String("log-format", config.DefaultLogFormat, "Log format (pretty or json)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	bindFlags(v, flags)

	rootCmd.AddCommand(newBuildCmd(v, opts))
	rootCmd.AddCommand(newIndexCmd(v, opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	for key, name := range flagBindings {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
}

func newBuildCmd(v *viper.Viper, opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Publish drafts, write the manifest and patch the index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, v, opts)
		},
	}
}

func newIndexCmd(v *viper.Viper, opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Regenerate the index listing from an existing manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := newBuilder(cmd, v, opts)
			if err != nil {
				return err
			}

			result, err := builder.Reindex(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d posts\n", len(result.Posts))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), version.Full())
				return nil
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(version.Get())
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version information as JSON")

	return cmd
}

func runBuild(cmd *cobra.Command, v *viper.Viper, opts *cliOptions) error {
	builder, err := newBuilder(cmd, v, opts)
	if err != nil {
		return err
	}

	result, err := builder.Run(cmd.Context())
	if err != nil {
		return err
	}

	if result.DryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "Would publish %d posts (dry run)\n", len(result.Posts))
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Published %d posts\n", len(result.Posts))
	return nil
}

// newBuilder loads the configuration and wires a builder logging to stderr
func newBuilder(cmd *cobra.Command, v *viper.Viper, opts *cliOptions) (*app.Builder, error) {
	cfg, err := config.Load(v, opts.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: opts.verbose,
	})

	builderOpts := app.BuilderOptions{
		Config:  cfg,
		Verbose: opts.verbose,
		Logger:  logger,
	}
	if cfg.Output.Progress {
		builderOpts.ProgressOutput = cmd.ErrOrStderr()
	}

	builder, err := app.NewBuilder(builderOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create builder: %w", err)
	}
	return builder, nil
}
