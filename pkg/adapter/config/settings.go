// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/momeni/rental-console/pkg/core/log"
	"github.com/momeni/rental-console/pkg/core/model"
	"github.com/momeni/rental-console/pkg/core/usecase/rentaluc"
)

// Config contains all settings which are required by different parts
// of the project, such as adapters or use cases. It is preferred to
// implement Config with primitive fields or other structs which are
// defined locally, not models or structs which are defined in lower
// layers, so the configuration file format can be kept intact while
// other layers can change freely.
type Config struct {
	Log     Log           `yaml:"log"`
	Admin   Admin         `yaml:"admin" validate:"required"`
	Catalog []SeedVehicle `yaml:"catalog" validate:"dive"`
}

// Log contains the logging settings.
type Log struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// Admin contains the administrator credential pair. The default pair
// preserves the literal admin/admin123 contract of this system; a
// deployment that needs real authentication replaces the credential
// checker, not this file format.
type Admin struct {
	Username string `yaml:"username" validate:"required"`
	Password string `yaml:"password" validate:"required"`
}

// SeedVehicle describes one vehicle of the initial catalog.
type SeedVehicle struct {
	Category    string  `yaml:"category" validate:"required,oneof=Sedan SUV Truck"`
	Brand       string  `yaml:"brand" validate:"required"`
	Model       string  `yaml:"model" validate:"required"`
	PricePerDay float64 `yaml:"price_per_day" validate:"required,gt=0"`
}

// Default returns the built-in configuration settings: a quiet text
// logger, the literal admin credentials, and the three vehicle seed
// catalog of the original deployment.
func Default() *Config {
	return &Config{
		Log:   Log{Level: "warn", Format: "text"},
		Admin: Admin{Username: "admin", Password: "admin123"},
		Catalog: []SeedVehicle{
			{Category: "Sedan", Brand: "Toyota", Model: "Camry", PricePerDay: 50},
			{Category: "SUV", Brand: "Honda", Model: "CR-V", PricePerDay: 65},
			{Category: "Truck", Brand: "Ford", Model: "F-150", PricePerDay: 80},
		},
	}
}

// ValidateAndNormalize validates the configuration settings and
// updates them with default values, where a value is missing and a
// default value is defined. A config file which omits the admin
// section entirely obtains the default literal pair.
func (c *Config) ValidateAndNormalize() error {
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Admin == (Admin{}) {
		c.Admin = Default().Admin
	}
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// NewLogger instantiates a slog logger writing to w as configured by
// the log settings.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(log.NewHandler(w, c.Log.Level, c.Log.Format))
}

// AdminCredentials builds the credential checker which guards the
// admin login use case.
func (c *Config) AdminCredentials() rentaluc.Credentials {
	return rentaluc.StaticCredentials(c.Admin.Username, c.Admin.Password)
}

// SeedVehicles converts the configured catalog section into vehicle
// models, parsing their category strings. Validation already limits
// the categories to the known enum values, so a parse failure here
// indicates a programming error and is reported as such.
func (c *Config) SeedVehicles() ([]model.Vehicle, error) {
	seed := make([]model.Vehicle, 0, len(c.Catalog))
	for i, sv := range c.Catalog {
		cat, err := model.ParseCategory(sv.Category)
		if err != nil {
			return nil, fmt.Errorf(
				"catalog[%d]: %w: %q", i, err, sv.Category,
			)
		}
		seed = append(seed, model.Vehicle{
			Category:    cat,
			Brand:       sv.Brand,
			Model:       sv.Model,
			PricePerDay: sv.PricePerDay,
		})
	}
	return seed, nil
}
