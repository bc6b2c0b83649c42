// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clicknload

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"unicode/utf8"
)

// KeySize is the AES-128 key length the protocol requires.
const KeySize = 16

// Decrypt decrypts a CNL2 link blob.
//
// keyHex is hex decoded and the resulting bytes are read as UTF-8 text; the
// encoded form of that text is the key material and also the IV. The
// ciphertext is decrypted with AES-128-CBC without padding, and the plaintext
// is returned as is, including any zero bytes the sender used to fill the
// last block.
//
// An empty ciphertext yields an empty string. Malformed hex or base64 and
// ciphertexts that are not block aligned return [ErrDecryption]; key material
// of any length other than [KeySize] returns [ErrInvalidKey].
func Decrypt(encryptedLinksBase64, keyHex string) (string, error) {
	key, err := keyMaterial(keyHex)
	if err != nil {
		return "", err
	}

	ciphertext, err := base64.StdEncoding.DecodeString(encryptedLinksBase64)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64 ciphertext: %v", ErrDecryption, err)
	}
	if len(ciphertext) == 0 {
		return "", nil
	}
	if len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext length %d is not a multiple of %d",
			ErrDecryption, len(ciphertext), aes.BlockSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	plaintext := make([]byte, len(ciphertext))
	// iv is the key itself
	cipher.NewCBCDecrypter(block, key).CryptBlocks(plaintext, ciphertext)

	return string(plaintext), nil
}

// keyMaterial hex decodes keyHex and re-encodes the bytes as UTF-8 text.
// Bytes that are not valid UTF-8 are replaced with U+FFFD, which changes the
// length and therefore fails the size check, as any receiver decoding the key
// as text would.
func keyMaterial(keyHex string) ([]byte, error) {
	raw, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: decode hex key: %v", ErrDecryption, err)
	}

	key := make([]byte, 0, len(raw))
	for len(raw) > 0 {
		r, size := utf8.DecodeRune(raw)
		key = utf8.AppendRune(key, r)
		raw = raw[size:]
	}

	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key is %d bytes, want %d", ErrInvalidKey, len(key), KeySize)
	}

	return key, nil
}
