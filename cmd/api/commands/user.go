package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/port-russell/marina-api/service"
)

// NewCreateUserCommand creates the create-user command.
func NewCreateUserCommand() *cobra.Command {
	var (
		configFile string
		username   string
		email      string
		password   string
	)

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, dataLayer, cleanup, err := bootstrap(configFile)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			svc := service.NewUserService(dataLayer, log)
			user, err := svc.CreateUser(ctx, username, email, password)
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			fmt.Printf("user %s (%s) created in database %s\n", user.Username, user.Email, cfg.Data.MongoDB.Database)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path")
	cmd.Flags().StringVar(&username, "username", "", "username of the new user")
	cmd.Flags().StringVar(&email, "email", "", "email of the new user")
	cmd.Flags().StringVar(&password, "password", "", "password of the new user")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
