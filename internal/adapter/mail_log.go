// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-profiles/internal/logger"
	"github.com/MKhiriev/go-profiles/models"
)

// logMailer writes messages to the log. Used in development when no SMTP
// relay is configured.
type logMailer struct {
	logger *logger.Logger
}

// NewLogMailer returns a [Mailer] that only logs.
func NewLogMailer(log *logger.Logger) Mailer {
	return &logMailer{logger: log}
}

// Send implements [Mailer].
func (l *logMailer) Send(ctx context.Context, mail models.Mail) error {
	if mail.To == "" {
		return fmt.Errorf("%w: empty recipient", ErrInvalidMail)
	}

	l.logger.Info().
		Str("func", "logMailer.Send").
		Str("to", mail.To).
		Str("subject", mail.Subject).
		Str("body", mail.Body).
		Msg("mail delivery disabled, message logged")

	return nil
}
