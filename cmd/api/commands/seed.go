package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/port-russell/marina-api/service"
)

// NewSeedCommand creates the seed command. It wipes the catway and
// reservation collections and reimports them from JSON files.
func NewSeedCommand() *cobra.Command {
	var (
		configFile       string
		catwaysPath      string
		reservationsPath string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Reset the catway and reservation collections from JSON files",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, dataLayer, cleanup, err := bootstrap(configFile)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			return service.NewSeedService(dataLayer, log).Seed(ctx, catwaysPath, reservationsPath)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path")
	cmd.Flags().StringVar(&catwaysPath, "catways", "data/catways.json", "path to the catways JSON file")
	cmd.Flags().StringVar(&reservationsPath, "reservations", "data/reservations.json", "path to the reservations JSON file")
	return cmd
}
