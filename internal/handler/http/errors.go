// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned while decoding an inbound ClickNLoad request body.
// Callers can match against them with [errors.Is].
var (
	// ErrUnsupportedContentType is returned when the body is neither a form
	// nor JSON.
	ErrUnsupportedContentType = errors.New("unsupported content type")

	// ErrMalformedBody is returned when the body cannot be parsed according
	// to its declared content type.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrBodyTooLarge is returned when the body exceeds maxRequestBodySize.
	ErrBodyTooLarge = errors.New("request body too large")
)
