// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidUID is returned by DecodeUID for any malformed input.
var ErrInvalidUID = errors.New("invalid uid")

// EncodeUID encodes an account id as unpadded URL-safe base64 of its
// decimal representation, the form embedded in activation links.
func EncodeUID(accountID int64) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatInt(accountID, 10)))
}

// DecodeUID reverses EncodeUID. Trailing "=" padding is tolerated.
// Anything that is not a positive decimal id yields ErrInvalidUID.
func DecodeUID(uid string) (int64, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(uid, "="))
	if err != nil || len(raw) == 0 {
		return 0, ErrInvalidUID
	}

	for _, c := range raw {
		if c < '0' || c > '9' {
			return 0, ErrInvalidUID
		}
	}

	accountID, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil || accountID <= 0 {
		return 0, ErrInvalidUID
	}

	return accountID, nil
}
