// Package cmd contains all CLI commands for factnetctl
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"factnet/client"
	"factnet/internal/output"
)

var (
	cfgFile   string
	serverURL string
	colorFlag string
	verbose   bool
	logger    *slog.Logger
	printer   *output.Printer
	version   = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "factnetctl",
	Short: "FactNet fact-checked news CLI",
	Long: `factnetctl is a terminal client for a FactNet server.

It browses fact-checked articles with filtering, search and pagination,
submits feedback votes, manages local bookmarks, and shows the admin
dashboard counters.

Example usage:
  factnetctl articles list                    # First page of articles
  factnetctl articles list --category Health  # Filter by category
  factnetctl articles get <article-id>        # Full article with fact checks
  factnetctl vote <article-id> upvote         # Submit feedback
  factnetctl bookmark add <article-id>        # Bookmark locally
  factnetctl dashboard                        # Admin counters`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .factnetctl.yaml)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "FactNet server URL (default http://localhost:5000)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".factnetctl")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("FACTNET")
	viper.AutomaticEnv()
	viper.SetDefault("server", "http://localhost:5000")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	logLevel := slog.LevelInfo
	if verbose || viper.GetBool("verbose") {
		logLevel = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	mode, err := output.ParseColorMode(colorFlag)
	if err != nil {
		return err
	}
	printer = output.NewPrinter(output.ResolveColors(mode))

	logger.Debug("configuration loaded", "server", viper.GetString("server"))

	return nil
}

// newAPIClient builds a client for the configured server.
func newAPIClient() *client.Client {
	return client.New(viper.GetString("server"))
}

// openBookmarks opens the local bookmark store, honoring the config override.
func openBookmarks() (*client.BookmarkStore, error) {
	path := viper.GetString("bookmarks_file")
	if path == "" {
		defaultPath, err := client.DefaultBookmarkPath()
		if err != nil {
			return nil, fmt.Errorf("resolving bookmark path: %w", err)
		}
		path = defaultPath
	}
	return client.OpenBookmarkStore(filepath.Clean(path))
}
