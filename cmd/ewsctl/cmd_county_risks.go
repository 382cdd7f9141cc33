package main

import (
	"fmt"
	"text/tabwriter"

	v1 "github.com/shenikar/food_insecurity_ews/internal/handler/http/v1"
	"github.com/spf13/cobra"
)

func newCountyRisksCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "county-risks",
		Short: "Print the baseline risk of every county",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.loadService(cmd)
			if err != nil {
				return err
			}
			summary, err := svc.Prediction.CountyRisks(cmd.Context())
			if err != nil {
				return fmt.Errorf("county risks: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, v1.ModelToCountyRisksResponse(summary))
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "COUNTY\tRISK\tREGION\tASAL")
			for _, c := range summary.Counties {
				fmt.Fprintf(tw, "%s\t%.3f\t%s\t%t\n", c.County, c.RiskScore, c.Region, c.IsASAL)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "total=%d insecure=%d secure=%d threshold=%.2f\n",
				summary.Total, summary.Insecure, summary.Secure, summary.Threshold)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the API response body instead of a table")
	return cmd
}
