package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cnl-relay/internal/clicknload"
	"github.com/MKhiriev/go-cnl-relay/internal/logger"
	"github.com/MKhiriev/go-cnl-relay/internal/metrics"
	"github.com/MKhiriev/go-cnl-relay/internal/notify"
	"github.com/MKhiriev/go-cnl-relay/models"
)

type clickNLoadService struct {
	relay    RelayService
	notifier notify.Notifier

	now func() time.Time

	logger *logger.Logger
}

func NewClickNLoadService(relay RelayService, notifier notify.Notifier, logger *logger.Logger) ClickNLoadService {
	return &clickNLoadService{
		relay:    relay,
		notifier: notifier,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *clickNLoadService) AddCrypted(ctx context.Context, req models.CryptedRequest) (models.RelayResult, error) {
	log := logger.FromContext(ctx)

	key, err := clicknload.ExtractKey(req.JK)
	if err != nil {
		metrics.DecryptFailures.Inc()
		log.Err(err).Msg("no key in encrypted request")
		return models.RelayResult{}, err
	}

	links, err := clicknload.Decrypt(req.Crypted, key)
	if err != nil {
		metrics.DecryptFailures.Inc()
		log.Err(err).Msg("decrypting links failed")
		return models.RelayResult{}, err
	}

	pkg := models.Package{
		Name:     req.PackageName(),
		Links:    links,
		Password: clicknload.FirstPassword(req.Passwords),
	}

	return s.relayPackage(ctx, metrics.KindEncrypted, pkg)
}

func (s *clickNLoadService) AddPlain(ctx context.Context, req models.PlainRequest) (models.RelayResult, error) {
	name := req.Submit
	if name == "" {
		name = fmt.Sprintf("Unknown%d", s.now().UnixMilli())
	}

	pkg := models.Package{
		Name:  name,
		Links: clicknload.FixLegacyNewlines(req.URLs),
	}

	return s.relayPackage(ctx, metrics.KindPlain, pkg)
}

func (s *clickNLoadService) relayPackage(ctx context.Context, kind string, pkg models.Package) (models.RelayResult, error) {
	result := models.RelayResult{
		LinkCount:   clicknload.CountLinks(pkg.Links),
		Destination: s.relay.Destination(),
	}

	metrics.PackagesReceived.WithLabelValues(kind).Inc()
	metrics.LinksReceived.Add(float64(result.LinkCount))
	logger.FromContext(ctx).Info().
		Str("kind", kind).
		Str("package", pkg.Name).
		Int("links", result.LinkCount).
		Bool("has_password", pkg.Password != "").
		Msg("click'n'load package received")

	err := s.relay.Submit(ctx, pkg)
	result.Forwarded = err == nil && s.relay.Configured()

	s.notifier.PackageReceived(ctx, pkg, result, err)

	return result, err
}
