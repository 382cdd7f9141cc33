package main

import (
	"fmt"

	v1 "github.com/shenikar/food_insecurity_ews/internal/handler/http/v1"
	"github.com/shenikar/food_insecurity_ews/internal/models"
	"github.com/spf13/cobra"
)

func newPredictCmd(opts *options) *cobra.Command {
	var req models.PredictionRequest

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Score one county scenario and print the prediction as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.loadService(cmd)
			if err != nil {
				return err
			}
			result, err := svc.Prediction.Predict(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("predict: %w", err)
			}
			return writeJSON(cmd.OutOrStdout(), v1.ModelToPredictResponse(result))
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.County, "county", "", "County name (required)")
	f.StringVar(&req.PreviousCrisis, "previous-crisis", models.AnswerNo, "Crisis in the previous period: Yes or No")
	f.StringVar(&req.RainfallLastMonth, "rainfall-last-month", models.RainfallNormal, "Rainfall level last month")
	f.StringVar(&req.Rainfall3MonthsAgo, "rainfall-3months-ago", models.RainfallNormal, "Rainfall level three months ago")
	f.StringVar(&req.FoodBasketLevel, "food-basket", models.BasketModerate, "Food basket cost level")
	f.IntVar(&req.Month, "month", models.DefaultMonth, "Month 1-12")

	_ = cmd.MarkFlagRequired("county")
	return cmd
}
