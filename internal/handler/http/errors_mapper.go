package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cnl-relay/internal/adapter"
	"github.com/MKhiriev/go-cnl-relay/internal/clicknload"
	"github.com/MKhiriev/go-cnl-relay/internal/service"
)

var errorStatusMap = map[error]int{
	ErrUnsupportedContentType: http.StatusUnsupportedMediaType,
	ErrMalformedBody:          http.StatusBadRequest,
	ErrBodyTooLarge:           http.StatusRequestEntityTooLarge,

	service.ErrInvalidRequest: http.StatusBadRequest,

	clicknload.ErrDecryption: http.StatusBadRequest,
	clicknload.ErrInvalidKey: http.StatusBadRequest,

	adapter.ErrLoginFailed:          http.StatusBadGateway,
	adapter.ErrSubmissionFailed:     http.StatusBadGateway,
	adapter.ErrMissingSessionCookie: http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
