package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/bookmark-tag/internal"
	"github.com/spf13/cobra"
)

var (
	verbose   bool
	storePath string
	backend   string
	cfgFile   string
	profile   string
	version   string = "dev"
	commit    string = "unknown"
	date      string = "unknown"

	// cfg is loaded before every command runs
	cfg *appConfig
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bookmark-tag",
	Short: "Tag and browse browser bookmarks with @tags in their titles",
	Long: `A CLI tool to manage "@tag" metadata kept in browser bookmark titles.

Tags live in the bookmark title itself ("Go docs @lang @ref"), so they sync
with the browser and survive export. bookmark-tag reads and edits Chrome's
Bookmarks file directly, or a standalone SQLite bookmark database.

Features:
  • Show the bookmark tree or a flat list with paths and tags
  • Add, remove and suggest tags
  • Create, rename and delete bookmarks
  • Export in multiple formats (JSONL, Markdown, YAML, JSON)
  • Pick a random Pocket favorite, from the CLI or over HTTP
  • Check URLs against regex block rules

Quick Start:
  bookmark-tag tree                      # Show the bookmark tree
  bookmark-tag list --tag lang           # List bookmarks tagged @lang
  bookmark-tag tag add 42 @read-later    # Tag bookmark 42
  bookmark-tag export --format md        # Export as Markdown`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		internal.PrintError(fmt.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}

func init() {
	// Assigned here rather than in the rootCmd literal: loadConfig reads
	// rootCmd's flags, which would otherwise be an initialization cycle.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		internal.SetVerbose(verbose)

		loaded, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Path to the bookmark store (Chrome Bookmarks file or SQLite database)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", internal.BackendChrome, "Store backend (chrome, sqlite)")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", internal.DefaultProfile, "Chrome profile directory to read bookmarks from")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./.bookmark-tag.yaml, then ~/.bookmark-tag.yaml)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
