package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"agriai/internal/advisor"
	"agriai/internal/feedback"
)

// soilCmd analyzes a soil photo.
var soilCmd = &cobra.Command{
	Use:   "soil [image]",
	Short: "Analyze a soil photo",
	Long: `Sends a soil photo for analysis and prints a report on soil type,
texture, moisture, and crop suitability.

Example:
  agriai soil field.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		img, err := loadImage(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := requestContext()
		defer cancel()

		client, err := newAdvisorClient(ctx)
		if err != nil {
			return err
		}

		report, err := client.SoilAnalysis(ctx, img, app.Lang)
		if err != nil {
			logger.Error("soil analysis failed", zap.Error(err))
			return fmt.Errorf("%s", advisor.UserMessage(err, err.Error()))
		}

		fmt.Print(renderMarkdown(report))
		feedbackHint(feedback.FeatureSoilAnalyzer)
		return nil
	},
}
