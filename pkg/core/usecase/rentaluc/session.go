// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package rentaluc

import (
	"github.com/google/uuid"
	"github.com/momeni/rental-console/pkg/core/model"
)

// Credentials checks an administrator credential pair. It stands
// between the use case and the credential source, so a real credential
// store can replace the static literals without touching the
// orchestrator contract.
type Credentials interface {
	Check(username, password string) bool
}

// StaticCredentials creates a Credentials instance which accepts
// exactly the given literal username and password pair.
func StaticCredentials(username, password string) Credentials {
	return staticCredentials{username: username, password: password}
}

type staticCredentials struct {
	username, password string
}

func (sc staticCredentials) Check(username, password string) bool {
	return username == sc.username && password == sc.password
}

// Session describes an active session as reported to callers. The
// Token is the opaque handle which must be passed back to session
// bound operations. Admin sessions have no backing customer, hence,
// an empty Name.
type Session struct {
	Token    uuid.UUID
	Username string
	Name     string
	Admin    bool
}

// session is the internal per-token state. Customer sessions alias the
// directory-owned customer record, admin sessions leave it nil.
type session struct {
	customer *model.Customer
	username string
	admin    bool
}

func (s *session) describe(token uuid.UUID) Session {
	out := Session{Token: token, Username: s.username, Admin: s.admin}
	if s.customer != nil {
		out.Name = s.customer.Name
	}
	return out
}
