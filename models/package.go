package models

// Package is a named group of links submitted to the destination API in a
// single add_package call.
type Package struct {
	// Name is the package name shown in the download manager.
	Name string

	// Links is the newline separated list of URLs.
	Links string

	// Password is the archive password, empty when none was given.
	Password string
}

// RelayResult describes what happened to one inbound submission.
type RelayResult struct {
	// LinkCount is the number of newline separated entries in the package.
	LinkCount int

	// Forwarded reports whether the package was handed to the destination.
	// It is false when no destination is configured.
	Forwarded bool

	// Destination is the base URL the package was forwarded to.
	Destination string
}
