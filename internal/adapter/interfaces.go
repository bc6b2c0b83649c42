// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound side of the relay: the client that
// talks to the download manager's web API.
//
// The primary abstraction is [Destination], which decouples the service layer
// from the destination's wire protocol. The package ships a pyLoad
// implementation ([NewPyloadAdapter]) that logs in with a form post and
// submits packages as a hand-built multipart body ([BuildMultipart]).
//
// Failures are reported as [*LoginError] and [*SubmissionError], which match
// [ErrLoginFailed] and [ErrSubmissionFailed] with [errors.Is] and carry the
// HTTP status of the destination.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cnl-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/destination_mock.go -package=mock

// Destination defines communication with a download manager. Every call is
// attempted exactly once; implementations never retry.
type Destination interface {
	// Login authenticates with the configured credentials and returns the
	// session token to attach to the following AddPackage call. The token is
	// scoped to one relay attempt and must not be cached by the caller.
	Login(ctx context.Context) (string, error)

	// AddPackage submits pkg as a new package using the session token
	// returned by Login.
	AddPackage(ctx context.Context, session string, pkg models.Package) error
}
