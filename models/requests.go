// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CryptedRequest is the payload of an encrypted ClickNLoad submission
// (POST /flash/addcrypted2).
//
// Browsers post it as an url-encoded form; the JSON tags allow the same
// structure to be sent by scripts and test tooling.
type CryptedRequest struct {
	// Crypted is the base64 encoded AES-128-CBC ciphertext holding the
	// newline separated link list.
	Crypted string `json:"crypted"`

	// JK is a snippet of JavaScript whose only relevant content is the
	// single-quoted hex key, e.g. "function f(){ return '3132...';}".
	JK string `json:"jk"`

	// Passwords is a CRLF separated list of archive passwords. Only the
	// first entry is forwarded.
	Passwords string `json:"passwords"`

	// Package is the explicit package name, if the page provides one.
	Package string `json:"package"`

	// Source is the URL of the page the links were taken from.
	Source string `json:"source"`

	// Submit is the label of the button the user pressed.
	Submit string `json:"submit"`
}

// PackageName returns the first non-empty name hint in the order
// Package, Source, Submit.
func (r CryptedRequest) PackageName() string {
	for _, name := range []string{r.Package, r.Source, r.Submit} {
		if name != "" {
			return name
		}
	}
	return ""
}

// PlainRequest is the payload of the legacy unencrypted submission
// (POST /flash/add).
type PlainRequest struct {
	// Submit is the label of the button the user pressed. Used as the
	// package name when present.
	Submit string `json:"submit"`

	// URLs holds the links as sent by the page, separated by real or
	// legacy "/r/n" newlines.
	URLs string `json:"urls"`
}
