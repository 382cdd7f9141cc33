package main

import (
	"errors"
	"fmt"

	"github.com/shenikar/food_insecurity_ews/internal/features"
	"github.com/spf13/cobra"
)

var errValidation = errors.New("validation failed")

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check model artifacts and reference data against the feature contract",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Load уже проверяет порядок признаков scaler и топ-признаки
			svc, err := opts.loadService(cmd)
			if err != nil {
				return fmt.Errorf("%w: %v", errValidation, err)
			}

			out := cmd.OutOrStdout()
			problems := 0
			for _, county := range svc.Catalog.Counties() {
				p, err := svc.Scorer.Score(features.Baseline(county))
				switch {
				case err != nil:
					problems++
					fmt.Fprintf(out, "FAIL %s: %v\n", county.Name, err)
				case p < 0 || p > 1:
					problems++
					fmt.Fprintf(out, "FAIL %s: probability %v out of [0, 1]\n", county.Name, p)
				}
			}
			if problems > 0 {
				return fmt.Errorf("%w: %d counties could not be scored", errValidation, problems)
			}

			meta := svc.Scorer.Metadata()
			fmt.Fprintf(out, "model:     %s\n", meta.Name())
			fmt.Fprintf(out, "threshold: %.2f\n", meta.DecisionThreshold())
			fmt.Fprintf(out, "features:  %d of %d\n", len(svc.Scorer.TopFeatures()), features.NumFeatures)
			fmt.Fprintf(out, "counties:  %d\n", svc.Catalog.Len())
			fmt.Fprintln(out, "OK")
			return nil
		},
	}
}
