package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrLoginFailed          = errors.New("destination login failed")
	ErrSubmissionFailed     = errors.New("destination package submission failed")
	ErrMissingSessionCookie = errors.New("destination login response has no session cookie")
	ErrEmptyBaseURL         = errors.New("empty destination url")
)

// LoginError is returned when the destination answers the login request with
// a status other than 200 OK.
type LoginError struct {
	StatusCode int
}

func (e *LoginError) Error() string {
	return fmt.Sprintf("%s: http %d %s", ErrLoginFailed, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *LoginError) Unwrap() error {
	return ErrLoginFailed
}

// SubmissionError is returned when the destination rejects a package.
// Message holds the fragment scraped from the error page and may be empty.
type SubmissionError struct {
	StatusCode int
	Message    string
}

func (e *SubmissionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: http %d %s", ErrSubmissionFailed, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s: http %d: %s", ErrSubmissionFailed, e.StatusCode, e.Message)
}

func (e *SubmissionError) Unwrap() error {
	return ErrSubmissionFailed
}
