// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeUID(t *testing.T) {
	assert.Equal(t, "MQ", EncodeUID(1))
	assert.Equal(t, "NDI", EncodeUID(42))
	assert.NotContains(t, EncodeUID(1234567890), "=")
}

func TestDecodeUID_RoundTrip(t *testing.T) {
	for _, id := range []int64{1, 9, 10, 42, 999, 1234567890} {
		got, err := DecodeUID(EncodeUID(id))
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestDecodeUID_ToleratesPadding(t *testing.T) {
	got, err := DecodeUID("MQ==")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestDecodeUID_Malformed(t *testing.T) {
	tests := []struct {
		name string
		uid  string
	}{
		{"empty", ""},
		{"not base64", "!!!"},
		{"letters inside", "YWJj"}, // "abc"
		{"negative", "LTE"},        // "-1"
		{"zero", "MA"},             // "0"
		{"overflow", "OTk5OTk5OTk5OTk5OTk5OTk5OTk5"},
		{"padding only", "=="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeUID(tt.uid)
			assert.ErrorIs(t, err, ErrInvalidUID)
		})
	}
}
