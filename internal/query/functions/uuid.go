// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package functions

import "github.com/google/uuid"

// UUIDV4 generates a random UUID.
func UUIDV4() (string, error) {
	return newUUID(uuid.NewRandom)
}

// UUIDV6 generates a time ordered UUID, version 6.
func UUIDV6() (string, error) {
	return newUUID(uuid.NewV6)
}

// UUIDV7 generates a time ordered UUID, version 7.
func UUIDV7() (string, error) {
	return newUUID(uuid.NewV7)
}

func newUUID(generate func() (uuid.UUID, error)) (string, error) {
	id, err := generate()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
