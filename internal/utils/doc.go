// Package utils provides small helpers shared by the relay's packages:
// the outbound HTTP client and the keypress wait used before exiting on a
// fatal startup error.
package utils
