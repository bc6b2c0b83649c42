package service

import (
	"github.com/MKhiriev/go-cnl-relay/internal/adapter"
	"github.com/MKhiriev/go-cnl-relay/internal/config"
	"github.com/MKhiriev/go-cnl-relay/internal/logger"
	"github.com/MKhiriev/go-cnl-relay/internal/notify"
	"github.com/MKhiriev/go-cnl-relay/models"
)

type Services struct {
	ClickNLoadService ClickNLoadService
	AppInfoService    AppInfoService
}

// NewServices wires the relay services. destination may be nil when
// cfg.Destination is not configured.
func NewServices(cfg config.StructuredConfig, destination adapter.Destination, notifier notify.Notifier, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	relay := NewRelayService(cfg.Destination, destination, logger)
	clickNLoad := NewClickNLoadValidationService().Wrap(NewClickNLoadService(relay, notifier, logger))

	return &Services{
		ClickNLoadService: clickNLoad,
		AppInfoService:    NewAppInfoService(buildInfo, logger),
	}
}
