package main

import (
	"errors"
	"fmt"

	"github.com/shenikar/food_insecurity_ews/internal/reference"
	"github.com/shenikar/food_insecurity_ews/internal/repository"
	"github.com/shenikar/food_insecurity_ews/pkg/postgres"
	"github.com/spf13/cobra"
)

func newSeedCmd(opts *options) *cobra.Command {
	var migrations string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upsert the YAML county catalog into PostgreSQL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.databaseURL == "" {
				return errors.New("seed: --database-url or DATABASE_URL is required")
			}
			log := opts.newLogger(cmd)

			catalog, err := reference.Load(opts.referenceFile)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}

			if _, err := postgres.RunMigrations(migrations, opts.databaseURL); err != nil {
				return fmt.Errorf("seed: %w", err)
			}

			dbpool, err := postgres.NewPostgresDB(cmd.Context(), opts.databaseURL)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			defer dbpool.Close()

			repo := repository.NewCountyRepository(dbpool)
			for _, county := range catalog.Counties() {
				if err := repo.UpsertCounty(cmd.Context(), county); err != nil {
					return fmt.Errorf("seed: %w", err)
				}
				log.WithField("county", county.Name).Debug("County upserted")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d counties\n", catalog.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&migrations, "migrations", "file://migrations", "Migrations source URL")
	return cmd
}
