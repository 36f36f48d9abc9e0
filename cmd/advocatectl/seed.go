package main

import (
	"fmt"

	"advocate-directory/cmd/bootstrap"
	"advocate-directory/internal/converter"
	"advocate-directory/internal/delivery/dto"
	"advocate-directory/internal/repository"
	"advocate-directory/internal/repository/seed"
	"advocate-directory/internal/usecase"
	"advocate-directory/pkg/validator"

	"github.com/spf13/cobra"
)

func newSeedCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the built-in advocates into PostgreSQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := bootstrap.OpenDatabase(root.cfg.DB)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			advocates := seed.Advocates()
			reqs := make([]dto.SeedAdvocateRequest, len(advocates))
			for i := range advocates {
				reqs[i] = *converter.AdvocateToSeedRequest(&advocates[i])
			}

			advocateUsecase := usecase.NewAdvocateUsecase(root.log, repository.NewAdvocateRepository(db), validator.NewValidator())
			result, err := advocateUsecase.Seed(cmd.Context(), reqs)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded advocates: %d inserted, %d already present\n", result.Inserted, result.Skipped)
			return nil
		},
	}
}
