package main

import (
	"context"
	"fmt"

	"github.com/hairizuan-noorazman/showcase/catalog"
	"github.com/hairizuan-noorazman/showcase/logger"
	"github.com/spf13/cobra"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demonstration records into empty collections",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		cfg, err := LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if seedFile != "" {
			cfg.Seed.File = seedFile
		}

		log := logger.NewLogrusLogger(cfg.Log.Level)

		db, sqlDB, err := openDatabase(cfg.Database)
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		report, err := seedCatalog(ctx, catalog.NewSQLGateway(db, log), cfg.Seed.File, log)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d records\n", report.Total())
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML seed file (defaults to the built-in data)")
	rootCmd.AddCommand(seedCmd)
}

func seedCatalog(ctx context.Context, gw *catalog.Gateway, file string, log logger.Logger) (catalog.SeedReport, error) {
	data, err := catalog.LoadSeedData(file)
	if err != nil {
		return nil, err
	}
	return catalog.Seed(ctx, gw, data, log)
}
