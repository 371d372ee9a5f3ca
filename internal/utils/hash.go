// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HMAC computes an HMAC-SHA256 digest of data keyed with key.
// A new HMAC instance is created on each call, so it is safe for
// concurrent use with different keys.
func HMAC(data []byte, key []byte) []byte {
	hasher := hmac.New(sha256.New, key)
	hasher.Write(data)
	return hasher.Sum(nil)
}

// HashString returns the hex-encoded HMAC-SHA256 of data keyed with hashKey.
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(HMAC([]byte(data), []byte(hashKey)))
}

// EqualHashes compares two hash strings in constant time.
func EqualHashes(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
