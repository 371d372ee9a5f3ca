// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-profiles/internal/config"
	"github.com/MKhiriev/go-profiles/models"
	gomail "github.com/wneessen/go-mail"
)

type smtpMailer struct {
	client *gomail.Client
	from   string
}

// NewSMTPMailer returns a [Mailer] that relays through mailCfg.Host.
// SMTP AUTH PLAIN is used when a username is configured; STARTTLS is
// opportunistic.
func NewSMTPMailer(mailCfg config.Mail) (Mailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(mailCfg.Port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}
	if mailCfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(mailCfg.Username),
			gomail.WithPassword(mailCfg.Password),
		)
	}

	client, err := gomail.NewClient(mailCfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating smtp client: %w", err)
	}

	return &smtpMailer{client: client, from: mailCfg.From}, nil
}

// Send implements [Mailer].
func (s *smtpMailer) Send(ctx context.Context, mail models.Mail) error {
	msg, err := buildMessage(s.from, mail)
	if err != nil {
		return err
	}

	if err = s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%w: %w", ErrSendingMail, err)
	}

	return nil
}

func buildMessage(from string, mail models.Mail) (*gomail.Msg, error) {
	if mail.To == "" {
		return nil, fmt.Errorf("%w: empty recipient", ErrInvalidMail)
	}

	msg := gomail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("%w: sender: %w", ErrInvalidMail, err)
	}
	if err := msg.To(mail.To); err != nil {
		return nil, fmt.Errorf("%w: recipient: %w", ErrInvalidMail, err)
	}
	msg.Subject(mail.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, mail.Body)

	return msg, nil
}
