package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"agriai/internal/advisor"
)

var cropsSeason string

// cropsCmd recommends crops for a soil photo and season.
var cropsCmd = &cobra.Command{
	Use:   "crops [image]",
	Short: "Recommend crops for a soil photo and planting season",
	Long: `Sends a soil photo and the planting season, and prints the top
recommended crops with suitability scores and market demand.

Example:
  agriai crops field.jpg --season Autumn`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		season, err := normalizeOption(cropsSeason, "season", seasons)
		if err != nil {
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

		recs, err := client.CropRecommendations(ctx, img, season, app.Lang)
		if err != nil {
			logger.Error("crop recommendation failed", zap.Error(err))
			return fmt.Errorf("%s", advisor.UserMessage(err, err.Error()))
		}

		printCropRecommendations(recs)
		return nil
	},
}

func init() {
	cropsCmd.Flags().StringVar(&cropsSeason, "season", "", "Planting season: Spring, Summer, Autumn, or Winter (required)")
	cropsCmd.MarkFlagRequired("season")
}
