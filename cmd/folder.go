package cmd

import (
	"fmt"

	"github.com/iksnae/bookmark-tag/internal"
	"github.com/spf13/cobra"
)

var folderStructural bool

var folderCmd = &cobra.Command{
	Use:   "folder <id>",
	Short: "List the bookmarks inside a folder",
	Long: `List every bookmark below a folder, including nested subfolders.

By default the folder's contents are looked up among all flattened bookmarks
by parent id. With --structural the folder's own children are walked instead.`,
	Args: cobra.ExactArgs(1),
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

		folder, ok := findEntry(entries, args[0])
		if !ok {
			return fmt.Errorf("bookmark not found: %s (use 'bookmark-tag tree' to see ids)", args[0])
		}
		if !folder.IsFolder {
			return fmt.Errorf("%s is a bookmark, not a folder", args[0])
		}

		var pool []internal.Entry
		if !folderStructural {
			pool = entries
		}
		contents := internal.BookmarksInFolder(folder, pool)

		renderList(cmd.OutOrStdout(), leafViews(contents, false))
		return nil
	},
}

func findEntry(entries []internal.Entry, id string) (internal.Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return internal.Entry{}, false
}

func init() {
	rootCmd.AddCommand(folderCmd)
	folderCmd.Flags().BoolVar(&folderStructural, "structural", false, "Walk the folder's children instead of searching all bookmarks")
}
