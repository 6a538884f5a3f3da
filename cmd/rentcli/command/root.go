// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the rental
// console project. Commands are organized using the cobra library.
// The root command starts the interactive console itself while the
// "check" sub-command loads and validates the configuration file,
// printing the normalized settings out.
//
//	./rentcli [-c /path/of/main/config.yaml]   # start the console
//	./rentcli check [-c /path/of/main/config.yaml]
package command

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/momeni/rental-console/pkg/adapter/config"
	"github.com/momeni/rental-console/pkg/adapter/console"
	"github.com/momeni/rental-console/pkg/adapter/memory/catalogrp"
	"github.com/momeni/rental-console/pkg/adapter/memory/customersrp"
	"github.com/momeni/rental-console/pkg/adapter/memory/feedbackrp"
	"github.com/momeni/rental-console/pkg/core/usecase/rentaluc"
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "rentcli",
	Short: "An in-memory vehicle rental management console",
	Long: `An in-memory vehicle rental management console.
Customers register, log in, browse and rent/return vehicles, and view
their billing history, while an administrator logs in separately in
order to extend the vehicle catalog and review submitted feedback.
All state lives in the process memory and is discarded on exit; the
configuration file only provides the seed catalog, the administrator
credential pair, and the logging settings.`,
	RunE: startConsole,
}

func startConsole(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	slog.SetDefault(c.NewLogger(os.Stderr))
	seed, err := c.SeedVehicles()
	if err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}
	catalog, err := catalogrp.New(seed...)
	if err != nil {
		return fmt.Errorf("creating catalog: %w", err)
	}
	uc, err := rentaluc.New(
		catalog, customersrp.New(), feedbackrp.New(),
		rentaluc.WithAdminCredentials(c.AdminCredentials()),
	)
	if err != nil {
		return fmt.Errorf("creating rental use case: %w", err)
	}
	sh := console.New(uc, os.Stdin, os.Stdout)
	if err := sh.Run(ctx); err != nil {
		return fmt.Errorf("running console: %w", err)
	}
	return nil
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command. The exit code may
// be a boolean (zero for success and non-zero for failure) or may be
// chosen based on the error condition (if it is desired to report
// several error conditions in the CLI of this program).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
// By the way, default value is not necessarily a single path and may
// check several paths sequentially and take the highest priority one
// among the existing paths. For example, a user-specific path may take
// precedence over a file in /etc which is selected over a file in /usr.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		// the default path should usually be in the /etc directory
		cfgPath = "configs/sample-config.yaml"
	}
}
