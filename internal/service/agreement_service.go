package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nurpe/wrls-charging/internal/agreements"
	"github.com/nurpe/wrls-charging/internal/metrics"
	"github.com/nurpe/wrls-charging/internal/model"
)

type AgreementService struct {
	licences                LicenceStore
	agreements              AgreementStore
	tx                      Transactor
	metrics                 *metrics.Metrics
	log                     zerolog.Logger
	financialYearStartMonth int
	now                     func() time.Time
}

func NewAgreementService(
	licences LicenceStore,
	agreementStore AgreementStore,
	tx Transactor,
	financialYearStartMonth int,
	m *metrics.Metrics,
	log zerolog.Logger,
) *AgreementService {
	return &AgreementService{
		licences:                licences,
		agreements:              agreementStore,
		tx:                      tx,
		metrics:                 m,
		log:                     log,
		financialYearStartMonth: financialYearStartMonth,
		now:                     time.Now,
	}
}

type CreateAgreementInput struct {
	LicenceRef string
	Code       string
	DateRange  model.DateRange
	DateSigned *time.Time
	Principal  model.Principal
}

func (s *AgreementService) ListForLicence(ctx context.Context, licenceRef string) ([]model.LicenceAgreement, error) {
	if _, err := s.licences.GetByRef(ctx, licenceRef); err != nil {
		return nil, translate(err)
	}
	return s.agreements.ListByLicenceRef(ctx, licenceRef, false)
}

func (s *AgreementService) Create(ctx context.Context, input CreateAgreementInput) (*model.LicenceAgreement, error) {
	if !input.Principal.CanManageAgreements() {
		return nil, ErrPermissionDenied
	}
	if input.DateRange.IsZero() {
		return nil, fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}
	if input.DateSigned != nil && model.DateOnly(*input.DateSigned).After(model.DateOnly(s.now())) {
		return nil, fmt.Errorf("%w: date signed cannot be in the future", ErrInvalidInput)
	}

	licence, err := s.licences.GetByRef(ctx, input.LicenceRef)
	if err != nil {
		return nil, translate(err)
	}
	if input.DateRange.Start().Before(model.DateOnly(licence.StartDate)) {
		return nil, fmt.Errorf("%w: agreement cannot start before the licence start date %s", ErrInvalidInput, model.FormatDate(licence.StartDate))
	}

	agreementType, err := s.agreements.GetAgreementTypeByCode(ctx, strings.ToUpper(strings.TrimSpace(input.Code)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: unknown financial agreement code %q", ErrInvalidInput, input.Code)
		}
		return nil, err
	}

	var created *model.LicenceAgreement
	err = s.tx.WithLicenceLock(ctx, licence.LicenceRef, func(ctx context.Context) error {
		var err error
		created, err = s.agreements.Create(ctx, model.LicenceAgreement{
			LicenceRef: licence.LicenceRef,
			DateRange:  input.DateRange,
			Agreement:  *agreementType,
			DateSigned: input.DateSigned,
			Source:     string(model.ChargeVersionSourceWRLS),
		})
		if err != nil {
			return err
		}
		return s.licences.FlagForSupplementaryBilling(ctx, licence.ID)
	})
	if err != nil {
		return nil, translate(err)
	}

	s.log.Info().
		Str("licence_ref", licence.LicenceRef).
		Str("agreement_code", agreementType.Code).
		Str("date_range", input.DateRange.String()).
		Msg("licence agreement created")
	return created, nil
}

// Delete soft-deletes the agreement; deleted agreements drop out of every
// later history query.
func (s *AgreementService) Delete(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	if !principal.CanManageAgreements() {
		return ErrPermissionDenied
	}

	agreement, err := s.agreements.GetByID(ctx, id)
	if err != nil {
		return translate(err)
	}
	licence, err := s.licences.GetByRef(ctx, agreement.LicenceRef)
	if err != nil {
		return translate(err)
	}

	err = s.tx.WithLicenceLock(ctx, licence.LicenceRef, func(ctx context.Context) error {
		if err := s.agreements.SoftDelete(ctx, id, s.now()); err != nil {
			return err
		}
		return s.licences.FlagForSupplementaryBilling(ctx, licence.ID)
	})
	if err != nil {
		return translate(err)
	}

	s.log.Info().Str("licence_ref", licence.LicenceRef).Str("agreement_id", id.String()).Msg("licence agreement deleted")
	return nil
}

// History segments period by the agreements active on the licence. A nil
// period means the financial year containing today.
func (s *AgreementService) History(ctx context.Context, licenceRef string, period *model.DateRange) ([]model.AgreementHistorySegment, model.DateRange, error) {
	chargePeriod := resolvePeriod(period, s.now(), s.financialYearStartMonth)

	if _, err := s.licences.GetByRef(ctx, licenceRef); err != nil {
		return nil, chargePeriod, translate(err)
	}
	licenceAgreements, err := s.agreements.ListByLicenceRef(ctx, licenceRef, false)
	if err != nil {
		return nil, chargePeriod, err
	}

	segments, err := agreements.History(chargePeriod, licenceAgreements)
	if err != nil {
		return nil, chargePeriod, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	s.metrics.ObserveAgreementHistory(len(segments))
	return segments, chargePeriod, nil
}
