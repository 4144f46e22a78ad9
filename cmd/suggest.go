package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var suggestCurrent []string

var suggestCmd = &cobra.Command{
	Use:   "suggest <input>",
	Short: "Suggest existing tags matching input",
	Long: `Suggest tags already used in bookmark titles whose name contains input
(case-insensitive). Tags passed with --current are left out.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, store, err := openManager(cfg, nil)
		if err != nil {
			return err
		}
		defer closeStore(store)

		for _, tag := range m.GenerateTagSuggestions(cmd.Context(), args[0], suggestCurrent) {
			fmt.Fprintln(cmd.OutOrStdout(), tag)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().StringSliceVar(&suggestCurrent, "current", nil, "Tags already applied (comma separated)")
}
