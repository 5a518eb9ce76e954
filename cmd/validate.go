package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/bj21/internal/validator"
)

var validateRuns int

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the shuffler against the configured entropy source",
	Long: `Validate shuffles the full 52-card deck many times and checks that every
result is a permutation of the catalog: same cards, no duplicates, none lost.
It also reports positional skew as warnings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		shuffler, src, err := openShuffler()
		if err != nil {
			return err
		}
		defer src.Close()

		v := validator.NewValidator(shuffler, validateRuns)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()

		// Display validation results
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ %d shuffles produced valid permutations.\n", results.Stats.Runs)
		} else {
			fmt.Fprintf(out, "❌ %d of %d shuffles were not valid permutations:\n", len(results.Errors), results.Stats.Runs)
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		fmt.Fprintf(out, "\nCards left in place per deck: %.2f\n", results.Stats.MeanFixedPoints)
		fmt.Fprintf(out, "Neighbour pairs kept per deck: %.2f\n", results.Stats.MeanAdjacentKept)
		fmt.Fprintf(out, "Worst position chi-square:    %.1f\n", results.Stats.MaxPositionChiSquare)

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}

func init() {
	validateCmd.Flags().IntVarP(&validateRuns, "runs", "n", 1000, "Number of shuffles to check")
}
