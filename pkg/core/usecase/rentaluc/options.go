// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package rentaluc

import "errors"

// Option is a functional option for the rental use case.
type Option func(uc *UseCase) error

// WithAdminCredentials option configures a rental UseCase instance to
// check administrator logins against the given credential checker
// instead of the default static admin/admin123 pair. This option may
// be passed to the New() function.
func WithAdminCredentials(c Credentials) Option {
	return func(uc *UseCase) error {
		if c == nil {
			return errors.New("credentials checker is nil")
		}
		if uc.admin != nil {
			return errors.New("credentials are already configured")
		}
		uc.admin = c
		return nil
	}
}
