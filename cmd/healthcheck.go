package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/bookmark-tag/internal"
	"github.com/spf13/cobra"
)

var healthcheckDetails bool

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check that bookmark-tag can read the bookmark store",
	Long: `Check the health of bookmark-tag by verifying:
  • Store location
  • Store readability and bookmark count
  • Block rules
  • Pocket credentials

This command is useful for debugging configuration issues.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		style := func(s lipgloss.Style, text string) string {
			if internal.IsTerminal(out) {
				return s.Render(text)
			}
			return text
		}
		detail := func(format string, a ...any) {
			if healthcheckDetails {
				fmt.Fprintf(out, "   "+format+"\n", a...)
			}
		}

		fmt.Fprintln(out, style(sectionStyle, "Bookmark Tag Health Check"))
		fmt.Fprintln(out)

		// Step 1: Store location
		fmt.Fprintln(out, style(infoStyle, "Step 1: Locating store..."))
		fmt.Fprintln(out, style(successStyle, fmt.Sprintf("✅ Using %s backend", cfg.Backend)))
		detail("Store: %s", cfg.Store)
		detail("Cache: %s", cfg.CacheDir)
		fmt.Fprintln(out)

		// Step 2: Read the tree
		fmt.Fprintln(out, style(infoStyle, "Step 2: Reading bookmarks..."))
		store, err := openStore(cfg)
		if err != nil {
			fmt.Fprintln(out, style(errorStyle, "❌ Failed to open store"))
			return fmt.Errorf("health check failed: %w", err)
		}
		defer closeStore(store)

		tree, err := store.Tree(cmd.Context())
		if err != nil {
			fmt.Fprintln(out, style(errorStyle, "❌ Failed to read bookmark tree"))
			return fmt.Errorf("health check failed: %w", err)
		}
		entries := internal.Flatten(tree, nil, 0)
		leaves := internal.FlattenLeaves(tree)
		fmt.Fprintln(out, style(successStyle, fmt.Sprintf("✅ Found %d bookmark(s) in %d folder(s)", len(leaves), len(entries)-len(leaves))))
		fmt.Fprintln(out)

		// Step 3: Block rules
		fmt.Fprintln(out, style(infoStyle, "Step 3: Checking block rules..."))
		blocker, err := loadBlocker(cfg)
		if err != nil {
			fmt.Fprintln(out, style(errorStyle, "❌ Invalid block rules:"), err)
			return fmt.Errorf("health check failed: %w", err)
		}
		fmt.Fprintln(out, style(successStyle, fmt.Sprintf("✅ %d block rule(s) compiled", len(blocker.Rules()))))
		fmt.Fprintln(out)

		// Step 4: Pocket
		fmt.Fprintln(out, style(infoStyle, "Step 4: Checking Pocket credentials..."))
		if cfg.ConsumerKey != "" && cfg.AccessToken != "" {
			fmt.Fprintln(out, style(successStyle, "✅ Pocket credentials configured"))
		} else {
			fmt.Fprintln(out, style(warningStyle, "⚠️  Pocket credentials not configured"))
			detail("Set POCKET_CONSUMER_KEY and POCKET_ACCESS_TOKEN in .env to use 'pocket' and 'serve'")
		}
		fmt.Fprintln(out)

		printHealthSummary(out, style(successStyle, "✅ Health check passed!"), len(leaves))
		return nil
	},
}

func printHealthSummary(w io.Writer, headline string, bookmarks int) {
	fmt.Fprintln(w, headline)
	fmt.Fprintf(w, "   • Bookmarks: %d found\n", bookmarks)
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
	healthcheckCmd.Flags().BoolVarP(&healthcheckDetails, "details", "d", false, "Show detailed diagnostic information")
}
