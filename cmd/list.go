package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/bookmark-tag/internal"
	"github.com/spf13/cobra"
)

var (
	listTag    string
	listUnique bool
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarks with their tags",
	Long: `List every bookmark (folders excluded) with its display title, tags and folder path.

Use --tag to keep only bookmarks carrying a tag and --unique to drop
bookmarks whose URL already appeared earlier in the list.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, store, err := openManager(cfg, nil)
		if err != nil {
			return err
		}
		defer closeStore(store)

		entries := m.Entries(cmd.Context())
		if entries == nil {
			return fmt.Errorf("failed to read bookmarks from %s", store.Path)
		}

		views := leafViews(entries, listUnique)
		if listTag != "" {
			views = internal.FilterByTag(views, listTag)
		}

		renderList(cmd.OutOrStdout(), views)
		return nil
	},
}

// leafViews normalizes the bookmarks among entries, optionally keeping only
// the first bookmark per URL
func leafViews(entries []internal.Entry, unique bool) []internal.TaggedBookmark {
	leaves := make([]internal.Entry, 0, len(entries))
	for _, e := range entries {
		if !e.IsFolder {
			leaves = append(leaves, e)
		}
	}

	if unique {
		nodes := make([]*internal.Node, 0, len(leaves))
		for _, e := range leaves {
			nodes = append(nodes, e.Node)
		}
		kept := make(map[*internal.Node]bool)
		for _, n := range internal.NewDeduplicator().Deduplicate(nodes) {
			kept[n] = true
		}
		filtered := leaves[:0]
		for _, e := range leaves {
			if kept[e.Node] {
				filtered = append(filtered, e)
			}
		}
		leaves = filtered
	}

	return internal.NewNormalizer().NormalizeAll(leaves)
}

func renderList(w io.Writer, views []internal.TaggedBookmark) {
	if len(views) == 0 {
		fmt.Fprintln(w, "No bookmarks found.")
		return
	}

	styled := internal.IsTerminal(w)
	if styled {
		fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Bookmarks (%d)", len(views))))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tTAGS\tPATH\tURL")
	for _, v := range views {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", v.ID, v.Title, strings.Join(v.Tags, " "), v.Path, v.URL)
	}
	_ = tw.Flush()

	summary := fmt.Sprintf("%d bookmark(s)", len(views))
	if styled {
		summary = countStyle.Render(summary)
	}
	fmt.Fprintln(w, summary)
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listTag, "tag", "t", "", "Only list bookmarks with this tag")
	listCmd.Flags().BoolVarP(&listUnique, "unique", "u", false, "Drop bookmarks whose URL was already listed")
}
