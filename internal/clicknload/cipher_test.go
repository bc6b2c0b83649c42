// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clicknload

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reference vector published with the CNL2 protocol description
const (
	referenceCrypted = "DRurBGEf2ntP7Z0WDkMP8e1ZeK7PswJGeBHCg4zEYXZSE3Qqxsbi5EF1KosgkKQ9SL8qOOUAI+eDPFypAtQS9A=="
	referenceJK      = "function f(){ return '31323334353637383930393837363534';}"
	referenceKey     = "31323334353637383930393837363534"
	referenceLink    = "http://rapidshare.com/files/285626259/jDownloader.dmg"
)

// encrypt is the inverse of Decrypt used to build fixtures.
func encrypt(t *testing.T, plaintext, keyHex string) string {
	t.Helper()
	key, err := hex.DecodeString(keyHex)
	require.NoError(t, err)
	require.Zero(t, len(plaintext)%aes.BlockSize, "fixture must be block aligned")

	block, err := aes.NewCipher(key)
	require.NoError(t, err)

	out := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(block, key).CryptBlocks(out, []byte(plaintext))
	return base64.StdEncoding.EncodeToString(out)
}

// ── Decrypt ──────────────────────────────────────────────────────────────────

func TestDecrypt_ReferenceVector(t *testing.T) {
	got, err := Decrypt(referenceCrypted, referenceKey)

	require.NoError(t, err)
	assert.Len(t, got, 64)
	assert.True(t, strings.HasPrefix(got, referenceLink))
	// zero padding of the last block is returned as is
	assert.Equal(t, strings.Repeat("\x00", 11), got[len(referenceLink):])
}

func TestDecrypt_ReferenceVector_KeyFromScript(t *testing.T) {
	key, err := ExtractKey(referenceJK)
	require.NoError(t, err)

	got, err := Decrypt(referenceCrypted, key)

	require.NoError(t, err)
	assert.Equal(t, referenceLink+strings.Repeat("\x00", 11), got)
}

func TestDecrypt_RoundTrip(t *testing.T) {
	plaintext := "https://a.example/1\r\nhttps://b.example/2\r\n\x00\x00\x00\x00"
	require.Zero(t, len(plaintext)%aes.BlockSize)

	got, err := Decrypt(encrypt(t, plaintext, referenceKey), referenceKey)

	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestDecrypt_IsDeterministic(t *testing.T) {
	first, err := Decrypt(referenceCrypted, referenceKey)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		next, err := Decrypt(referenceCrypted, referenceKey)
		require.NoError(t, err)
		assert.Equal(t, first, next)
	}
}

func TestDecrypt_EmptyCiphertext(t *testing.T) {
	got, err := Decrypt("", referenceKey)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecrypt_Errors(t *testing.T) {
	tests := []struct {
		name    string
		crypted string
		key     string
		wantErr error
	}{
		{
			name:    "malformed hex key",
			crypted: referenceCrypted,
			key:     "zz323334353637383930393837363534",
			wantErr: ErrDecryption,
		},
		{
			name:    "odd length hex key",
			crypted: referenceCrypted,
			key:     "3132333",
			wantErr: ErrDecryption,
		},
		{
			name:    "short key",
			crypted: referenceCrypted,
			key:     "3132333435363738",
			wantErr: ErrInvalidKey,
		},
		{
			name:    "long key",
			crypted: referenceCrypted,
			key:     referenceKey + "3132",
			wantErr: ErrInvalidKey,
		},
		{
			name:    "empty key",
			crypted: referenceCrypted,
			key:     "",
			wantErr: ErrInvalidKey,
		},
		{
			name:    "16 bytes that are not valid utf-8",
			crypted: referenceCrypted,
			key:     "ff323334353637383930393837363534",
			wantErr: ErrInvalidKey,
		},
		{
			name:    "malformed base64",
			crypted: "not*base64!",
			key:     referenceKey,
			wantErr: ErrDecryption,
		},
		{
			name:    "ciphertext not block aligned",
			crypted: base64.StdEncoding.EncodeToString([]byte("short")),
			key:     referenceKey,
			wantErr: ErrDecryption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decrypt(tt.crypted, tt.key)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, got)
		})
	}
}

func TestDecrypt_InvalidKeyIsNotDecryptionError(t *testing.T) {
	_, err := Decrypt(referenceCrypted, "3132333435363738")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDecryption)
}
