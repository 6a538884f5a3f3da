// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"fmt"
	"os"

	"github.com/momeni/rental-console/pkg/adapter/config"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration file",
	Long: `Validate the configuration file and print the normalized
settings, including the defaults which were filled in for any missing
items. A missing configuration file reports the built-in defaults.`,
	RunE: checkConfig,
}

func checkConfig(_ *cobra.Command, _ []string) error {
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	data, err := config.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling settings: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
