// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package clicknload implements the payload side of the ClickNLoad (CNL2)
// browser protocol.
//
// A CNL2 page posts an AES-128-CBC encrypted, base64 encoded link list
// together with a snippet of JavaScript that carries the hex encoded key.
// The hex key, once decoded, is used verbatim as both the AES key and the IV,
// and the ciphertext is block aligned so no padding is removed. [Decrypt]
// reproduces that scheme byte for byte.
//
// The package also holds the small parsing helpers the inbound handlers need:
// [ExtractKey], [FirstPassword], [FixLegacyNewlines] and [CountLinks].
//
// Nothing in this package logs. Keys and plaintext links must not outlive
// the request that carried them.
package clicknload
