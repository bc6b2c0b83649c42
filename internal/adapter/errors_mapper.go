package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

const (
	errorMessageStart = "HTTP Response"
	errorMessageEnd   = "</div>"
)

func mapLoginError(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusOK {
		return nil
	}

	return &LoginError{StatusCode: resp.StatusCode()}
}

func mapSubmissionError(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusOK {
		return nil
	}

	return &SubmissionError{
		StatusCode: resp.StatusCode(),
		Message:    extractErrorMessage(string(resp.Body())),
	}
}

// extractErrorMessage returns the text between "HTTP Response" and the next
// "</div>" of a pyLoad error page. It returns "" if either marker is missing.
func extractErrorMessage(body string) string {
	_, rest, found := strings.Cut(body, errorMessageStart)
	if !found {
		return ""
	}

	message, _, found := strings.Cut(rest, errorMessageEnd)
	if !found {
		return ""
	}

	return strings.TrimSpace(message)
}

// sessionFromResponse returns the first Set-Cookie header up to its first ';'.
func sessionFromResponse(resp *resty.Response) (string, error) {
	cookies := resp.Header().Values("Set-Cookie")
	if len(cookies) == 0 {
		return "", ErrMissingSessionCookie
	}

	session, _, _ := strings.Cut(cookies[0], ";")
	session = strings.TrimSpace(session)
	if session == "" {
		return "", ErrMissingSessionCookie
	}

	return session, nil
}
