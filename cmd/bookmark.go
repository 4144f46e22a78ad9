package cmd

import (
	"github.com/iksnae/bookmark-tag/internal"
	"github.com/spf13/cobra"
)

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark",
	Short: "Create, rename or delete bookmarks",
}

var bookmarkCreateCmd = &cobra.Command{
	Use:   "create <title> <url>",
	Short: "Bookmark a URL in \"Other bookmarks\"",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeWithManager(cmd, func(m *internal.Manager) internal.Result {
			return m.CreateBookmark(cmd.Context(), args[0], args[1])
		})
	},
}

var bookmarkUpdateCmd = &cobra.Command{
	Use:   "update <id> <title>",
	Short: "Replace a bookmark's title, tags included",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeWithManager(cmd, func(m *internal.Manager) internal.Result {
			return m.UpdateBookmark(cmd.Context(), args[0], args[1])
		})
	},
}

var bookmarkDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a bookmark or folder",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeWithManager(cmd, func(m *internal.Manager) internal.Result {
			return m.DeleteBookmark(cmd.Context(), args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(bookmarkCmd)
	bookmarkCmd.AddCommand(bookmarkCreateCmd)
	bookmarkCmd.AddCommand(bookmarkUpdateCmd)
	bookmarkCmd.AddCommand(bookmarkDeleteCmd)
}
