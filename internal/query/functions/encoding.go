// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package functions

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/mia-platform/cols/internal/record"
)

var nowFn = time.Now

// ToJSON returns the JSON representation of value.
func ToJSON(value any) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Sha256Sum returns the hexadecimal SHA-256 digest of the printable form of value.
func Sha256Sum(value any) string {
	hash := sha256.Sum256([]byte(record.Format(value)))
	return hex.EncodeToString(hash[:])
}

// Sha512Sum returns the hexadecimal SHA-512 digest of the printable form of value.
func Sha512Sum(value any) string {
	hash := sha512.Sum512([]byte(record.Format(value)))
	return hex.EncodeToString(hash[:])
}

// Now returns the current UTC time in RFC3339 format.
func Now() string {
	return nowFn().UTC().Format(time.RFC3339)
}
