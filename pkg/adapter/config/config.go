// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config is an adapter which accepts yaml formatted config
// files from its users and allows the rentcli to instantiate different
// components, from the adapter or use cases layers, using those loaded
// configuration settings.
// The parsed and validated configurations should be passed to their
// ultimate components as a series of individual params (for the
// mandatory items) and a series of functional options (for the
// optional items), so they may be accumulated and validated in the
// relevant end-component such as a UseCase instance. This design
// decision causes a bit of redundancy in favor of a defensive solution.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Load function loads, validates, and normalizes the configuration
// file and returns its settings as an instance of the Config struct.
// A missing file is not an error: the built-in defaults (matching the
// Default function) will be returned, so the console stays usable on
// a fresh checkout with no configuration at all.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		c := Default()
		if err := c.ValidateAndNormalize(); err != nil {
			return nil, fmt.Errorf("validating defaults: %w", err)
		}
		return c, nil
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating config file: %w", err)
	}
	return c, nil
}

// Marshal serializes the given configuration settings as yaml, so the
// check sub-command can print the normalized settings out.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}
