package cmd

import (
	"fmt"

	"github.com/iksnae/bookmark-tag/internal"
	"github.com/spf13/cobra"
)

var blockCmd = &cobra.Command{
	Use:   "block",
	Short: "Check URLs against regex block rules",
	Long: `Check URLs against the regular expressions configured under block.patterns
in .bookmark-tag.yaml, plus those in the YAML file named by block.rules_file.`,
}

var blockCheckCmd = &cobra.Command{
	Use:   "check <url>",
	Short: "Report the first rule that blocks a URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		blocker, err := loadBlocker(cfg)
		if err != nil {
			return err
		}

		rule, blocked := blocker.Match(args[0])
		if !blocked {
			fmt.Fprintf(cmd.OutOrStdout(), "allowed: %s\n", args[0])
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "blocked: %s (rule %s)\n", args[0], rule.Pattern)
		return nil
	},
}

var blockListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the block rules in match order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		blocker, err := loadBlocker(cfg)
		if err != nil {
			return err
		}

		rules := blocker.Rules()
		if len(rules) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No block rules configured.")
			return nil
		}
		for i, r := range rules {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, r.Pattern)
		}
		return nil
	},
}

// loadBlocker compiles the configured patterns followed by the rule file's
func loadBlocker(c *appConfig) (*internal.Blocker, error) {
	patterns := append([]string{}, c.BlockPatterns...)
	if c.BlockRulesFile != "" {
		fromFile, err := internal.LoadBlockerPatterns(c.BlockRulesFile)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, fromFile...)
	}
	return internal.NewBlocker(patterns)
}

func init() {
	rootCmd.AddCommand(blockCmd)
	blockCmd.AddCommand(blockCheckCmd)
	blockCmd.AddCommand(blockListCmd)
}
