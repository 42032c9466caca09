package cmd

import (
	"fmt"
	"strconv"

	"github.com/AravDharnikota/Civora.AI/internal/bias"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score <value>",
	Short: "Classify a bias score",
	Long: `Classify a numeric bias score into its badge level.

Scores below 0.10 are Low, 0.10 up to 0.20 are Medium, and 0.20 or above are
High. The same thresholds drive every badge in the TUI.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid score %q: %w", args[0], err)
		}

		level := bias.Classify(s)
		fmt.Printf("%.3f → %s\n", s, level.Label())
		return nil
	},
}
