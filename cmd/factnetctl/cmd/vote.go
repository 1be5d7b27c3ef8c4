package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"factnet/client"
	"factnet/domain"
)

var voteCmd = &cobra.Command{
	Use:   "vote <article-id> <upvote|downvote>",
	Short: "Submit feedback on an article",
	Long: `Submit an upvote or downvote on an article and print the updated
counters.

Examples:
  factnetctl vote 3f2a9c upvote
  factnetctl vote 3f2a9c downvote`,
	Args: cobra.ExactArgs(2),
	RunE: runVote,
}

func init() {
	rootCmd.AddCommand(voteCmd)
}

func runVote(cmd *cobra.Command, args []string) error {
	articleID := args[0]
	vote := domain.VoteType(args[1])
	if !vote.Valid() {
		return fmt.Errorf("invalid vote type %q: must be upvote or downvote", args[1])
	}

	result, err := newAPIClient().SubmitFeedback(cmd.Context(), articleID, vote)
	if err != nil {
		if client.IsNotFound(err) {
			return fmt.Errorf("article %s not found", articleID)
		}
		return err
	}

	printer.Success("%s (+%d/-%d)", result.Message, result.Upvotes, result.Downvotes)
	return nil
}
