// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"testing"

	"github.com/MKhiriev/go-profiles/internal/config"
	"github.com/MKhiriev/go-profiles/internal/logger"
	"github.com/MKhiriev/go-profiles/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	msg, err := buildMessage("no-reply@example.com", models.Mail{
		To:      "alice@example.com",
		Subject: "Activate your account",
		Body:    "http://localhost/activate/MQ/abc-def/",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "alice@example.com")
	assert.Contains(t, buf.String(), "Activate your account")
}

func TestBuildMessage_Invalid(t *testing.T) {
	tests := []struct {
		name string
		from string
		mail models.Mail
	}{
		{"empty recipient", "no-reply@example.com", models.Mail{}},
		{"bad recipient", "no-reply@example.com", models.Mail{To: "not an address"}},
		{"bad sender", "nope", models.Mail{To: "alice@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildMessage(tt.from, tt.mail)
			assert.ErrorIs(t, err, ErrInvalidMail)
		})
	}
}

func TestNewSMTPMailer(t *testing.T) {
	m, err := NewSMTPMailer(config.Mail{Host: "smtp.example.com", Port: 587, Username: "u", Password: "p", From: "no-reply@example.com"})
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestLogMailer_Send(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLogger("test", "info")
	log.Logger = log.Output(&buf)

	m := NewLogMailer(log)
	require.NoError(t, m.Send(context.Background(), models.Mail{To: "bob@example.com", Subject: "hi"}))
	assert.Contains(t, buf.String(), "bob@example.com")

	assert.ErrorIs(t, m.Send(context.Background(), models.Mail{}), ErrInvalidMail)
}
