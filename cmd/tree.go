package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/bookmark-tag/internal"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show the bookmark tree",
	Long:  `Show every folder and bookmark, indented by folder, with tags split out of the titles.`,
	Args:  cobra.NoArgs,
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

		renderTree(cmd.OutOrStdout(), entries)
		return nil
	},
}

// renderTree prints entries indented by their path. Untitled folders (the
// tree root) are not printed.
func renderTree(w io.Writer, entries []internal.Entry) {
	normalizer := internal.NewNormalizer()
	for _, e := range entries {
		v, err := normalizer.NormalizeEntry(e)
		if err != nil {
			continue
		}
		indent := strings.Repeat("  ", len(e.Path))

		if v.IsFolder {
			if v.Title == "" {
				continue
			}
			fmt.Fprintf(w, "%s%s/ %s\n", indent, internal.RenderFolder(w, v.Title), internal.RenderMuted(w, "["+v.ID+"]"))
			continue
		}

		line := indent + v.Title
		if len(v.Tags) > 0 {
			line += "  " + internal.RenderTags(w, v.Tags)
		}
		line += "  " + internal.RenderMuted(w, v.URL+" ["+v.ID+"]")
		fmt.Fprintln(w, line)
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
