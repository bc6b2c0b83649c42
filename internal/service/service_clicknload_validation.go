package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cnl-relay/models"
)

// ClickNLoadServiceWrapper defines middleware composition for ClickNLoadService.
// Implementations wrap an existing ClickNLoadService to add behavior such as
// validating.
type ClickNLoadServiceWrapper interface {
	Wrap(ClickNLoadService) ClickNLoadService // returns a decorated ClickNLoadService applying additional behavior
}

type ClickNLoadValidationService struct {
	inner ClickNLoadService
}

func NewClickNLoadValidationService() ClickNLoadServiceWrapper {
	return &ClickNLoadValidationService{}
}

func (v *ClickNLoadValidationService) AddCrypted(ctx context.Context, req models.CryptedRequest) (models.RelayResult, error) {
	// encrypted request should consist of:
	//  - crypted
	//  - jk
	//  - (not always) passwords, package, source, submit
	if req.Crypted == "" {
		return models.RelayResult{}, fmt.Errorf("%w: crypted is empty", ErrInvalidRequest)
	}
	if req.JK == "" {
		return models.RelayResult{}, fmt.Errorf("%w: jk is empty", ErrInvalidRequest)
	}

	return v.inner.AddCrypted(ctx, req)
}

func (v *ClickNLoadValidationService) AddPlain(ctx context.Context, req models.PlainRequest) (models.RelayResult, error) {
	if req.URLs == "" {
		return models.RelayResult{}, fmt.Errorf("%w: urls is empty", ErrInvalidRequest)
	}

	return v.inner.AddPlain(ctx, req)
}

func (v *ClickNLoadValidationService) Wrap(wrapper ClickNLoadService) ClickNLoadService {
	v.inner = wrapper
	return v
}
