package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-cnl-relay/internal/config"
	"github.com/MKhiriev/go-cnl-relay/internal/logger"
	"github.com/MKhiriev/go-cnl-relay/internal/utils"
	"github.com/MKhiriev/go-cnl-relay/models"
)

const (
	loginPath      = "/api/login"
	addPackagePath = "/json/add_package"

	// addDestQueue is the pyLoad destination index of the download queue.
	addDestQueue = "1"
)

type pyloadAdapter struct {
	client *utils.HTTPClient

	username string
	password string

	logger *logger.Logger
}

// NewPyloadAdapter constructs a pyLoad implementation of [Destination].
// It normalises and validates dest.URL, disables the client's cookie jar so
// that no session outlives a single relay attempt, and applies the request
// timeout from adapterCfg.
//
// Returns an error if dest.URL is empty or cannot be parsed as a valid URL.
func NewPyloadAdapter(dest config.Destination, adapterCfg config.Adapter, logger *logger.Logger) (Destination, error) {
	baseURL, err := normalizeBaseURL(dest.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid destination url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetCookieJar(nil)

	return &pyloadAdapter{
		client:   client,
		username: dest.Username,
		password: dest.Password,
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyBaseURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [Destination]. It POSTs the credentials as a form to
// POST /api/login and returns the first Set-Cookie header up to its first ';'.
// A status other than 200 yields a [*LoginError]; a response without a cookie
// yields [ErrMissingSessionCookie].
func (p *pyloadAdapter) Login(ctx context.Context) (string, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetBody(loginBody(p.username, p.password)).
		Post(loginPath)
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapLoginError(resp); err != nil {
		return "", err
	}

	session, err := sessionFromResponse(resp)
	if err != nil {
		return "", err
	}

	p.logger.Debug().Int("status", resp.StatusCode()).Msg("logged into destination")
	return session, nil
}

// AddPackage implements [Destination]. It POSTs pkg as a multipart form to
// POST /json/add_package with the session cookie attached. A status other
// than 200 yields a [*SubmissionError] carrying the scraped error text.
func (p *pyloadAdapter) AddPackage(ctx context.Context, session string, pkg models.Package) error {
	body, err := BuildMultipart([]Field{
		{Name: "add_name", Value: pkg.Name},
		{Name: "add_links", Value: pkg.Links},
		{Name: "add_password", Value: pkg.Password},
		{Name: "add_file", Value: ""},
		{Name: "add_dest", Value: addDestQueue},
	})
	if err != nil {
		return err
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Cookie", session).
		SetHeader("Content-Type", body.ContentType()).
		SetBody(body.Body).
		Post(addPackagePath)
	if err != nil {
		return fmt.Errorf("add package request: %w", err)
	}

	return mapSubmissionError(resp)
}

// loginBody keeps the field order pyLoad's login form uses; url.Values would
// sort the keys.
func loginBody(username, password string) string {
	return "do=login&username=" + url.QueryEscape(username) +
		"&password=" + url.QueryEscape(password) +
		"&submit=Login"
}
