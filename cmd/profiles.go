package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/iksnae/bookmark-tag/internal"
	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List Chrome profiles that have bookmarks",
	Long: `List the profile directories under the Chrome user data directory that
contain a Bookmarks file. Pass a directory name to --profile to use it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := internal.DetectProfiles(cfg.ChromeDir)
		if err != nil {
			return fmt.Errorf("failed to detect profiles: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(profiles) == 0 {
			fmt.Fprintf(out, "No Chrome profiles found in %s\n", cfg.ChromeDir)
			return nil
		}

		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "PROFILE\tNAME\tBOOKMARKS")
		for _, p := range profiles {
			marker := ""
			if p.Dir == cfg.Profile {
				marker = " *"
			}
			fmt.Fprintf(tw, "%s%s\t%s\t%s\n", p.Dir, marker, p.Name, p.BookmarksPath)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}
