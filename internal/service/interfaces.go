package service

import (
	"context"

	"github.com/MKhiriev/go-cnl-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ClickNLoadService turns inbound ClickNLoad requests into packages and
// relays them.
type ClickNLoadService interface {
	// AddCrypted decrypts an encrypted CNL2 payload and relays its links.
	AddCrypted(ctx context.Context, req models.CryptedRequest) (models.RelayResult, error)

	// AddPlain relays the links of a legacy plain-text request.
	AddPlain(ctx context.Context, req models.PlainRequest) (models.RelayResult, error)
}

// RelayService submits packages to the configured destination.
type RelayService interface {
	// Submit logs into the destination and adds pkg. Without a configured
	// destination it does nothing and returns nil.
	Submit(ctx context.Context, pkg models.Package) error

	// Configured reports whether a destination is set.
	Configured() bool

	// Destination returns the destination base URL, or "" when unset.
	Destination() string
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
