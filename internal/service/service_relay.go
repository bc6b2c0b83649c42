package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cnl-relay/internal/adapter"
	"github.com/MKhiriev/go-cnl-relay/internal/config"
	"github.com/MKhiriev/go-cnl-relay/internal/logger"
	"github.com/MKhiriev/go-cnl-relay/internal/metrics"
	"github.com/MKhiriev/go-cnl-relay/models"
)

type relayService struct {
	// destination is nil when no destination URL is configured.
	destination adapter.Destination
	baseURL     string

	logger *logger.Logger
}

// NewRelayService returns a [RelayService] for the given destination
// configuration. When cfg is not configured the adapter is ignored and Submit
// never touches the network.
func NewRelayService(cfg config.Destination, destination adapter.Destination, logger *logger.Logger) RelayService {
	if !cfg.Configured() {
		destination = nil
	}

	return &relayService{
		destination: destination,
		baseURL:     cfg.URL,
		logger:      logger,
	}
}

func (r *relayService) Configured() bool {
	return r.destination != nil
}

func (r *relayService) Destination() string {
	if !r.Configured() {
		return ""
	}
	return r.baseURL
}

// Submit performs the two steps of a relay attempt: login, then package
// submission with the returned session. Each step is tried once. The context
// is detached from cancellation so a closed browser connection does not abort
// a submission that is already in flight; the adapter timeout still applies.
func (r *relayService) Submit(ctx context.Context, pkg models.Package) error {
	log := logger.FromContext(ctx)

	if !r.Configured() {
		metrics.RelayAttempts.WithLabelValues(metrics.ResultSkipped).Inc()
		log.Info().Err(ErrDestinationNotConfigured).Str("package", pkg.Name).Msg("skipping relay")
		return nil
	}

	ctx = context.WithoutCancel(ctx)
	start := time.Now()
	defer func() {
		metrics.RelayDuration.Observe(time.Since(start).Seconds())
	}()

	session, err := r.destination.Login(ctx)
	if err != nil {
		metrics.RelayAttempts.WithLabelValues(relayResult(err)).Inc()
		log.Err(err).Str("destination", r.baseURL).Msg("destination login failed")
		return fmt.Errorf("relay login: %w", err)
	}
	log.Debug().Str("destination", r.baseURL).Msg("logged into destination")

	if err = r.destination.AddPackage(ctx, session, pkg); err != nil {
		metrics.RelayAttempts.WithLabelValues(relayResult(err)).Inc()
		log.Err(err).Str("destination", r.baseURL).Str("package", pkg.Name).Msg("adding package failed")
		return fmt.Errorf("relay add package: %w", err)
	}

	metrics.RelayAttempts.WithLabelValues(metrics.ResultForwarded).Inc()
	log.Info().Str("destination", r.baseURL).Str("package", pkg.Name).Msg("package added to destination")
	return nil
}

func relayResult(err error) string {
	switch {
	case errors.Is(err, adapter.ErrLoginFailed), errors.Is(err, adapter.ErrMissingSessionCookie):
		return metrics.ResultLoginFailed
	case errors.Is(err, adapter.ErrSubmissionFailed):
		return metrics.ResultSubmissionFailed
	default:
		return metrics.ResultError
	}
}
