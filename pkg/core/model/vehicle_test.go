// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"testing"
)

func TestParseCategory(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Category
	}{
		{"Sedan", CategorySedan},
		{"SUV", CategorySUV},
		{"Truck", CategoryTruck},
	} {
		got, err := ParseCategory(tc.in)
		if err != nil {
			t.Fatalf("ParseCategory(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseCategory(%q) = %v, want %v", tc.in, got, tc.want)
		}
		if got.String() != tc.in {
			t.Fatalf("String() = %q, want %q", got.String(), tc.in)
		}
		if err := got.Validate(); err != nil {
			t.Fatalf("Validate(%v): %v", got, err)
		}
	}
}

func TestParseCategoryUnknown(t *testing.T) {
	for _, in := range []string{"", "sedan", "Van", "TRUCK"} {
		got, err := ParseCategory(in)
		if !errors.Is(err, ErrUnknownCategory) {
			t.Fatalf("ParseCategory(%q) err = %v, want ErrUnknownCategory", in, err)
		}
		if got != CategoryInvalid {
			t.Fatalf("ParseCategory(%q) = %v, want CategoryInvalid", in, got)
		}
	}
}

func TestCategoryValidateInvalid(t *testing.T) {
	var ce CategoryError
	err := Category(42).Validate()
	if !errors.As(err, &ce) {
		t.Fatalf("Validate(42) err = %v, want CategoryError", err)
	}
	if int(ce) != 42 {
		t.Fatalf("CategoryError = %d, want 42", int(ce))
	}
	if err := CategoryInvalid.Validate(); err == nil {
		t.Fatal("expected zero category to be invalid")
	}
}

func TestFormatPrice(t *testing.T) {
	for _, tc := range []struct {
		in   float64
		want string
	}{
		{50, "50"},
		{62.5, "62.5"},
		{80.0, "80"},
		{150, "150"},
		{0.99, "0.99"},
	} {
		if got := FormatPrice(tc.in); got != tc.want {
			t.Fatalf("FormatPrice(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
