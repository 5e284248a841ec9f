package main

import (
	"fmt"

	"github.com/arzan03/DrugHouse/internal/config"
	"github.com/arzan03/DrugHouse/internal/db"
	"github.com/spf13/cobra"
)

var indexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "Create the MongoDB indexes the API relies on",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		client, err := db.Connect(cmd.Context(), cfg.Mongo.URI)
		if err != nil {
			return err
		}
		defer client.Disconnect(cmd.Context()) //nolint:errcheck

		if err := db.EnsureIndexes(cmd.Context(), client.Database(cfg.Mongo.Database)); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "indexes ensured on %s\n", cfg.Mongo.Database)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexesCmd)
}
