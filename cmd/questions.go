package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/wellcheck/internal/questionnaire"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the questions and the score of each option",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for i, q := range questionnaire.Bank() {
			fmt.Fprintf(out, "%d. %s\n", i+1, q.Prompt)
			for j, opt := range q.Options {
				fmt.Fprintf(out, "   %d) %-20s %d pt\n", j+1, opt, q.Scale.Score(j))
			}
			fmt.Fprintln(out)
		}

		fmt.Fprintln(out, "Tiers:")
		lo := 0
		for _, tier := range questionnaire.AllTiers() {
			hi := lo
			for hi+1 <= questionnaire.MaxScore && questionnaire.TierFor(hi+1) == tier {
				hi++
			}
			fmt.Fprintf(out, "   %2d-%-2d  %-10s  %s\n", lo, hi, tier, tier.Description())
			lo = hi + 1
		}
	},
}
