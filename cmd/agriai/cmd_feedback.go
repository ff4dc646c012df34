package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"agriai/internal/feedback"
	"agriai/internal/locale"
)

var (
	feedbackRating  int
	feedbackComment string
)

// feedbackCmd records a rating for a feature.
var feedbackCmd = &cobra.Command{
	Use:   "feedback [feature]",
	Short: "Rate a feature (soilAnalyzer or chatbot)",
	Long: `Records a 1-5 rating with an optional comment. After rating, the
feature will not ask for feedback again for a week.

Example:
  agriai feedback soilAnalyzer --rating 5 --comment "Spot on"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var key feedback.FeatureKey
		switch feedback.FeatureKey(args[0]) {
		case feedback.FeatureSoilAnalyzer:
			key = feedback.FeatureSoilAnalyzer
		case feedback.FeatureChatbot:
			key = feedback.FeatureChatbot
		default:
			return fmt.Errorf("unknown feature %q (use soilAnalyzer or chatbot)", args[0])
		}

		if _, err := app.Feedback.Record(key, feedbackRating, feedbackComment); err != nil {
			return err
		}

		styles := appStyles()
		fmt.Println(styles.Success.Render(locale.Message(app.Lang, locale.MsgFeedbackThanks)))
		return nil
	},
}

func init() {
	feedbackCmd.Flags().IntVar(&feedbackRating, "rating", 0, "Rating from 1 to 5 (required)")
	feedbackCmd.Flags().StringVar(&feedbackComment, "comment", "", "Optional comment")
	feedbackCmd.MarkFlagRequired("rating")
}
