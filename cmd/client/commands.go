// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-filter-keeper/internal/client"
	"github.com/MKhiriev/go-filter-keeper/internal/config"
	"github.com/MKhiriev/go-filter-keeper/internal/logger"
	"github.com/MKhiriev/go-filter-keeper/models"
)

// rootFlags are mapped onto a config overlay; unset flags leave the
// environment and the config file in charge.
type rootFlags struct {
	configPath string
	address    string
	token      string
	hashKey    string
	logLevel   string
	logFile    string
	views      []string
	fastViews  []string
	debounce   time.Duration
	timeout    time.Duration
}

func (f *rootFlags) overlay() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			HashKey:      f.hashKey,
			LogLevel:     f.logLevel,
			LogFile:      f.logFile,
			SessionToken: f.token,
		},
		Adapter: config.Adapter{
			HTTPAddress:    f.address,
			RequestTimeout: f.timeout,
		},
		Sync: config.Sync{
			DebounceWindow: f.debounce,
			FastViews:      f.fastViews,
			Views:          f.views,
		},
		FilePath: f.configPath,
	}
}

// statusOutput is what the one-shot commands print.
type statusOutput struct {
	Criteria models.Criteria   `json:"criteria"`
	Status   models.SyncStatus `json:"status"`
}

func newRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	flags := &rootFlags{}

	// newApp is shared by every subcommand.
	newApp := func(cmd *cobra.Command) (*client.App, error) {
		cfg, err := config.GetClientConfig(flags.overlay())
		if err != nil {
			return nil, fmt.Errorf("error getting configs: %w", err)
		}

		log := logger.NewClientLogger("filter-keeper-client", cfg.App.LogFile)
		log.SetLevel(cfg.App.LogLevel)
		log.Info().Str("version", buildInfo.BuildVersion()).Msg("client starting")

		return client.NewApp(cmd.Context(), cfg, buildInfo, log)
	}

	root := &cobra.Command{
		Use:           "client",
		Short:         "Edit and sync per-view filter criteria",
		Version:       buildInfo.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			return app.Run(cmd.Context())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "config file path (json or yaml)")
	pf.StringVarP(&flags.address, "address", "a", "", "remote store base URL")
	pf.StringVarP(&flags.token, "token", "t", "", "session token")
	pf.StringVar(&flags.hashKey, "hash-key", "", "request integrity hash key")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&flags.logFile, "log-file", "", "log file path")
	pf.StringSliceVar(&flags.views, "views", nil, "views offered by the editor")
	pf.StringSliceVar(&flags.fastViews, "fast-views", nil, "views using the fast debounce window")
	pf.DurationVar(&flags.debounce, "debounce", 0, "quiet period before edits are written")
	pf.DurationVar(&flags.timeout, "request-timeout", 0, "timeout of each remote call")

	root.AddCommand(
		newGetCommand(newApp),
		newSetCommand(newApp),
		newClearCommand(newApp),
	)

	return root
}

type appFactory func(cmd *cobra.Command) (*client.App, error)

func newGetCommand(newApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "get <view>",
		Short: "Print the stored criteria of a view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer app.Shutdown()

			criteria, status, err := app.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printStatus(cmd.OutOrStdout(), criteria, status)
		},
	}
}

func newSetCommand(newApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "set <view> <field=v1,v2>...",
		Short: "Set filter fields of a view; an empty value list removes the field",
		Example: "  client set contacts name=Anna,Bob city=Kazan\n" +
			"  client set contacts city=",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer app.Shutdown()

			status, err := app.Set(cmd.Context(), args[0], args[1:]...)
			if err != nil {
				return err
			}
			return printStatus(cmd.OutOrStdout(), status.LastSyncedCriteria, status)
		},
	}
}

func newClearCommand(newApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <view>",
		Short: "Remove every filter of a view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer app.Shutdown()

			status, err := app.Clear(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printStatus(cmd.OutOrStdout(), nil, status)
		},
	}
}

func printStatus(w io.Writer, criteria models.Criteria, status models.SyncStatus) error {
	if criteria == nil {
		criteria = models.Criteria{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(statusOutput{Criteria: criteria, Status: status})
}
