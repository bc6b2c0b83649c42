// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clicknload

import (
	"errors"
	"fmt"
)

var (
	// ErrDecryption is returned when the key or ciphertext cannot be decoded
	// or the ciphertext length is not a multiple of the AES block size.
	ErrDecryption = errors.New("clicknload decryption failed")

	// ErrInvalidKey is returned when the decoded key material is not exactly
	// 16 bytes long.
	ErrInvalidKey = errors.New("invalid clicknload key")

	// ErrKeyNotFound is returned by [ExtractKey] when the script snippet does
	// not contain a single-quoted key. It matches [ErrInvalidKey] as well.
	ErrKeyNotFound = fmt.Errorf("%w: no quoted key in jk", ErrInvalidKey)
)
