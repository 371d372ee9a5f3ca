// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Mail is a plain-text message handed to a mail adapter.
type Mail struct {
	To      string
	Subject string
	Body    string
}
