package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"agriai/internal/advisor"
)

var fertilizerCrop string

// fertilizerCmd diagnoses a leaf photo.
var fertilizerCmd = &cobra.Command{
	Use:   "fertilizer [image]",
	Short: "Diagnose a leaf photo and recommend fertilizers",
	Long: `Sends a leaf photo and the crop name, and prints a diagnosis with
fertilizer and irrigation recommendations.

Example:
  agriai fertilizer leaf.jpg --crop Tomato`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		cropName := strings.TrimSpace(fertilizerCrop)
		if cropName == "" {
			return fmt.Errorf("crop name must not be blank")
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

		recs, err := client.FertilizerRecommendations(ctx, img, cropName, app.Lang)
		if err != nil {
			logger.Error("fertilizer recommendation failed", zap.Error(err))
			return fmt.Errorf("%s", advisor.UserMessage(err, err.Error()))
		}

		printFertilizerRecommendations(recs)
		return nil
	},
}

func init() {
	fertilizerCmd.Flags().StringVar(&fertilizerCrop, "crop", "", "Crop whose leaf is pictured (required)")
	fertilizerCmd.MarkFlagRequired("crop")
}
