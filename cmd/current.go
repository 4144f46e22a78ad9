package cmd

import (
	"fmt"
	"strings"

	"github.com/iksnae/bookmark-tag/internal"
	"github.com/spf13/cobra"
)

var (
	currentURL   string
	currentTitle string
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show whether a page is bookmarked and how it is tagged",
	Long: `Show the bookmark state of a page, as a browser popup would for the active tab.

The page is given with --url and --title.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tabs := internal.StaticTabProvider{URL: currentURL, Title: currentTitle}
		m, store, err := openManager(cfg, tabs)
		if err != nil {
			return err
		}
		defer closeStore(store)

		info := m.CurrentTabBookmark(cmd.Context())
		if info.Tab == nil {
			return fmt.Errorf("no page given (use --url and --title)")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "URL:        %s\n", info.URL)
		fmt.Fprintf(out, "Title:      %s\n", internal.CreateDisplayTitle(info.Title))
		if info.Bookmark == nil {
			fmt.Fprintln(out, "Bookmarked: no")
			return nil
		}
		fmt.Fprintf(out, "Bookmarked: yes [%s]\n", info.Bookmark.ID)
		fmt.Fprintf(out, "Tags:       %s\n", strings.Join(internal.ExtractTags(info.Title), " "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(currentCmd)
	currentCmd.Flags().StringVar(&currentURL, "url", "", "URL of the page")
	currentCmd.Flags().StringVar(&currentTitle, "title", "", "Title of the page")
}
