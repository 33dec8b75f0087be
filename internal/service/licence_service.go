package service

import (
	"context"

	"github.com/nurpe/wrls-charging/internal/model"
)

type LicenceService struct {
	licences LicenceStore
}

func NewLicenceService(licences LicenceStore) *LicenceService {
	return &LicenceService{licences: licences}
}

func (s *LicenceService) Get(ctx context.Context, licenceRef string) (*model.Licence, error) {
	licence, err := s.licences.GetByRef(ctx, licenceRef)
	if err != nil {
		return nil, translate(err)
	}
	return licence, nil
}
