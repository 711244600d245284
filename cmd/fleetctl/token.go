package main

import (
	"fmt"
	"time"

	"fleet-booking/internal/pkg/config"
	"fleet-booking/internal/pkg/jwt"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

// newTokenCmd signs a bearer token for local testing. Production tokens come
// from the auth service.
func newTokenCmd() *cobra.Command {
	var (
		subject  string
		name     string
		duration time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a development bearer token with JWT_SECRET",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var jwtCfg config.JWTConfig
			if err := envconfig.Process("", &jwtCfg); err != nil {
				return fmt.Errorf("failed to process env config: %w", err)
			}

			token, err := jwt.NewService(jwtCfg.Secret, duration).GenerateToken(subject, name)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "sub", "", "principal id placed in the sub claim")
	cmd.Flags().StringVar(&name, "name", "", "optional display name claim")
	cmd.Flags().DurationVar(&duration, "ttl", time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("sub")
	return cmd
}
