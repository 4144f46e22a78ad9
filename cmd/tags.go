package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/iksnae/bookmark-tag/internal"
	"github.com/spf13/cobra"
)

var tagsClearCache bool

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Show every tag with its bookmark count",
	Long: `Show every tag used in bookmark titles, most used first.

Counts are cached and rebuilt whenever the store changes on disk.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, store, err := openManager(cfg, nil)
		if err != nil {
			return err
		}
		defer closeStore(store)

		cacheManager := internal.NewCacheManager(cfg.CacheDir)
		if tagsClearCache {
			if err := cacheManager.ClearCache(); err != nil {
				internal.PrintWarning(fmt.Sprintf("Failed to clear cache: %v", err))
			} else {
				internal.LogInfo("Cache cleared")
			}
		}

		var readErr error
		index, err := cacheManager.TagIndexFor(store.Path, func() []*internal.Node {
			leaves := m.Leaves(cmd.Context())
			if leaves == nil {
				readErr = fmt.Errorf("failed to read bookmarks from %s", store.Path)
			}
			return leaves
		})
		if readErr != nil {
			return readErr
		}
		if err != nil {
			return fmt.Errorf("failed to build tag index: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(index.Tags) == 0 {
			fmt.Fprintln(out, "No tags found.")
			return nil
		}

		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "TAG\tCOUNT")
		for _, tc := range index.Tags {
			fmt.Fprintf(tw, "%s\t%d\n", tc.Tag, tc.Count)
		}
		_ = tw.Flush()
		fmt.Fprintf(out, "%d tag(s) across %d bookmark(s)\n", len(index.Tags), index.Bookmarks)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
	tagsCmd.Flags().BoolVar(&tagsClearCache, "clear-cache", false, "Rebuild the tag index from scratch")
}
