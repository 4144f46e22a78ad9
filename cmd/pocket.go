package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/iksnae/bookmark-tag/internal"
	"github.com/iksnae/bookmark-tag/internal/pocket"
	"github.com/spf13/cobra"
)

// pocketBaseURL is swapped in tests
var pocketBaseURL = pocket.DefaultBaseURL

var pocketCmd = &cobra.Command{
	Use:   "pocket",
	Short: "Read-it-later helpers backed by Pocket",
	Long: `Pocket commands need POCKET_CONSUMER_KEY and POCKET_ACCESS_TOKEN, from the
environment, a .env file, or pocket.consumer_key / pocket.access_token in
.bookmark-tag.yaml.`,
}

var pocketRandomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print one random favorite as {\"title\", \"url\"} JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		picker := pocket.NewPicker(newPocketClient(cfg))

		var picked pocket.Picked
		err := internal.ShowProgress(cmd.Context(), "Fetching Pocket favorites", func() error {
			var err error
			picked, err = picker.Random(cmd.Context())
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to pick a favorite: %w", err)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		return enc.Encode(picked)
	},
}

func newPocketClient(c *appConfig) *pocket.Client {
	client := pocket.NewClient(c.ConsumerKey, c.AccessToken)
	client.BaseURL = pocketBaseURL
	return client
}

func init() {
	rootCmd.AddCommand(pocketCmd)
	pocketCmd.AddCommand(pocketRandomCmd)
}
