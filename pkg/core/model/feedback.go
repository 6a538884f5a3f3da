// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// Feedback is an immutable (username, comment) pair which is appended
// to the feedback log when a logged-in customer submits a comment.
type Feedback struct {
	Username string `json:"username"`
	Comment  string `json:"comment"`
}
