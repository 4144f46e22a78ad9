package cmd

import (
	"fmt"
	"io"

	"github.com/iksnae/bookmark-tag/internal"
	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Add or remove a tag on a bookmark",
}

var tagAddCmd = &cobra.Command{
	Use:   "add <id> <tag>",
	Short: "Append a tag to a bookmark's title",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeWithManager(cmd, func(m *internal.Manager) internal.Result {
			return m.AddTag(cmd.Context(), args[0], args[1])
		})
	},
}

var tagRemoveCmd = &cobra.Command{
	Use:     "remove <id> <tag>",
	Aliases: []string{"rm"},
	Short:   "Remove a tag from a bookmark's title",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeWithManager(cmd, func(m *internal.Manager) internal.Result {
			return m.RemoveTag(cmd.Context(), args[0], args[1])
		})
	},
}

// writeWithManager runs a write through the Manager and reports its Result
func writeWithManager(cmd *cobra.Command, write func(*internal.Manager) internal.Result) error {
	m, store, err := openManager(cfg, nil)
	if err != nil {
		return err
	}
	defer closeStore(store)

	if err := backupBeforeWrite(cfg, store); err != nil {
		return err
	}

	res := write(m)
	if !res.Success {
		return fmt.Errorf("%s (run with --verbose for details)", res.Message)
	}
	printResult(cmd.OutOrStdout(), res)
	return nil
}

func printResult(w io.Writer, res internal.Result) {
	if res.Bookmark == nil {
		fmt.Fprintln(w, res.Message)
		return
	}
	fmt.Fprintf(w, "%s: %s %s\n", res.Message, res.Bookmark.Title, internal.RenderMuted(w, "["+res.Bookmark.ID+"]"))
}

func init() {
	rootCmd.AddCommand(tagCmd)
	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagRemoveCmd)
}
