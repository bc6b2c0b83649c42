package http

import (
	"github.com/MKhiriev/go-cnl-relay/internal/logger"
	"github.com/MKhiriev/go-cnl-relay/internal/service"
)

// Handler serves the ClickNLoad endpoints. It holds no per-request state,
// so one instance backs every connection of the server.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

// NewHandler returns a Handler delegating submissions to
// services.ClickNLoadService and build info to services.AppInfoService.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("click'n'load http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
