package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/wellcheck/internal/hostmsg"
	"github.com/abhisek/wellcheck/internal/questionnaire"
)

// ErrInvalidOption is returned when a score argument does not name an
// option of its question.
var ErrInvalidOption = errors.New("invalid option")

// scoreOutput is the JSON form of a scored session.
type scoreOutput struct {
	SessionID   string    `json:"session_id"`
	Answers     []int     `json:"answers"`
	Score       int       `json:"score"`
	MaxScore    int       `json:"max_score"`
	Tier        string    `json:"tier"`
	Description string    `json:"description"`
	CompletedAt time.Time `json:"completed_at"`
}

const scoreLong = `Score a set of answers without the interactive UI.

Pass one 1-based option number per question, in order. Run
"wellcheck questions" to see the options.`

var scoreCmd = &cobra.Command{
	Use:     "score <option>...",
	Short:   "Score a set of answers without the interactive UI",
	Long:    scoreLong,
	Example: "  wellcheck score 5 1 1 1 1",
	Args:    cobra.ExactArgs(len(questionnaire.Bank())),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := questionnaire.NewSession()
		if err := replay(sess, args); err != nil {
			return err
		}
		res, _ := sess.Result()

		if redirect, _ := cmd.Flags().GetBool("redirect"); redirect {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return fmt.Errorf("resolve config: %w", err)
			}
			sink, closeSink, err := openSink(cfg)
			if err != nil {
				return err
			}
			hostmsg.Notify(cmd.Context(), sink, hostmsg.Redirect(cfg.RedirectTarget))
			closeSink()
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(scoreOutput{
				SessionID:   res.SessionID,
				Answers:     res.Answers,
				Score:       res.Score,
				MaxScore:    questionnaire.MaxScore,
				Tier:        res.Tier.String(),
				Description: res.Tier.Description(),
				CompletedAt: res.CompletedAt,
			})
		}

		fmt.Fprintf(out, "Score: %d/%d\n", res.Score, questionnaire.MaxScore)
		fmt.Fprintf(out, "Tier:  %s\n", res.Tier)
		fmt.Fprintln(out, res.Tier.Description())
		return nil
	},
}

func init() {
	scoreCmd.Flags().Bool("json", false, "Print the result as JSON")
	scoreCmd.Flags().Bool("redirect", false, "Also send the redirect message to the host output")
}

// replay selects and advances through the session with 1-based option numbers.
func replay(sess *questionnaire.Session, args []string) error {
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("question %d: %w %q", i+1, ErrInvalidOption, arg)
		}
		if !sess.SelectOption(n - 1) {
			q, _ := sess.Current()
			return fmt.Errorf("question %d: %w %d (choose 1-%d)", i+1, ErrInvalidOption, n, len(q.Options))
		}
		sess.Advance()
	}
	return nil
}
