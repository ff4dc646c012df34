package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"agriai/internal/advisor"
)

var (
	marketCrop   string
	marketSeason string
	marketMonth  string
)

// marketCmd fetches a search-grounded market price analysis.
var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Market price analysis for a crop",
	Long: `Fetches a price analysis for a crop, grounded on current market
data via search.

Example:
  agriai market --crop Corn --season Summer --month June`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		crop, err := normalizeOption(marketCrop, "crop", marketCrops)
		if err != nil {
			return err
		}
		season, err := normalizeOption(marketSeason, "season", seasons)
		if err != nil {
			return err
		}
		month, err := normalizeOption(marketMonth, "month", months)
		if err != nil {
			return err
		}

		ctx, cancel := requestContext()
		defer cancel()

		client, err := newAdvisorClient(ctx)
		if err != nil {
			return err
		}

		analysis, err := client.MarketAnalysis(ctx, crop, season, month, app.Lang)
		if err != nil {
			logger.Error("market analysis failed", zap.Error(err))
			return fmt.Errorf("%s", advisor.UserMessage(err, err.Error()))
		}

		printMarketAnalysis(analysis)
		return nil
	},
}

func init() {
	marketCmd.Flags().StringVar(&marketCrop, "crop", "", "Crop: Corn, Wheat, Soy, Cotton, or Rice (required)")
	marketCmd.Flags().StringVar(&marketSeason, "season", "", "Season: Spring, Summer, Autumn, or Winter (required)")
	marketCmd.Flags().StringVar(&marketMonth, "month", "", "Month, e.g. June (required)")
	marketCmd.MarkFlagRequired("crop")
	marketCmd.MarkFlagRequired("season")
	marketCmd.MarkFlagRequired("month")
}
