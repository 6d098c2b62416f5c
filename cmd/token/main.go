// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command token issues a session token for a user id. It stands in for the
// login flow of the application that embeds the filter editor.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-filter-keeper/internal/config"
	"github.com/MKhiriev/go-filter-keeper/internal/logger"
	"github.com/MKhiriev/go-filter-keeper/internal/service"
)

func main() {
	if err := newTokenCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newTokenCommand() *cobra.Command {
	var (
		userID     int64
		configPath string
		signKey    string
		issuer     string
		duration   time.Duration
	)

	cmd := &cobra.Command{
		Use:           "token --user-id <id>",
		Short:         "Issue a session token",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if userID <= 0 {
				return fmt.Errorf("--user-id must be positive, got %d", userID)
			}

			cfg, err := config.GetAuthConfig(&config.StructuredConfig{
				Auth: config.Auth{
					TokenSignKey:  signKey,
					TokenIssuer:   issuer,
					TokenDuration: duration,
				},
				FilePath: configPath,
			})
			if err != nil {
				return fmt.Errorf("error getting configs: %w", err)
			}

			auth := service.NewAuthService(config.Auth{
				TokenSignKey:  cfg.TokenSignKey,
				TokenIssuer:   cfg.TokenIssuer,
				TokenDuration: cfg.TokenDuration,
			}, logger.Nop())

			token, err := auth.CreateToken(cmd.Context(), userID)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token.SignedString)
			return err
		},
	}

	f := cmd.Flags()
	f.Int64VarP(&userID, "user-id", "u", 0, "user id written to the sub claim")
	f.StringVarP(&configPath, "config", "c", "", "config file path (json or yaml)")
	f.StringVar(&signKey, "sign-key", "", "HS256 signing key")
	f.StringVar(&issuer, "issuer", "", "issuer claim")
	f.DurationVar(&duration, "duration", 0, "token lifetime (e.g. 24h)")

	return cmd
}
