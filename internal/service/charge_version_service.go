package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/wrls-charging/internal/metrics"
	"github.com/nurpe/wrls-charging/internal/model"
	"github.com/nurpe/wrls-charging/internal/timeline"
	"github.com/nurpe/wrls-charging/internal/validation"
)

const (
	originWorkflow = "workflow"
	originManual   = "manual"
)

type ChargeVersionService struct {
	licences  LicenceStore
	versions  ChargeVersionStore
	workflows WorkflowStore
	tx        Transactor
	metrics   *metrics.Metrics
	log       zerolog.Logger
	newID     func() uuid.UUID
}

func NewChargeVersionService(
	licences LicenceStore,
	versions ChargeVersionStore,
	workflows WorkflowStore,
	tx Transactor,
	m *metrics.Metrics,
	log zerolog.Logger,
) *ChargeVersionService {
	return &ChargeVersionService{
		licences:  licences,
		versions:  versions,
		workflows: workflows,
		tx:        tx,
		metrics:   m,
		log:       log,
		newID:     uuid.New,
	}
}

type CreateChargeVersionInput struct {
	LicenceRef string
	Draft      model.ChargeVersionDraft
	Principal  model.Principal
}

func (s *ChargeVersionService) ListForLicence(ctx context.Context, licenceRef string) ([]model.ChargeVersion, error) {
	if _, err := s.licences.GetByRef(ctx, licenceRef); err != nil {
		return nil, translate(err)
	}
	versions, err := s.versions.ListByLicenceRef(ctx, licenceRef)
	if err != nil {
		return nil, err
	}
	return versions, nil
}

func (s *ChargeVersionService) Get(ctx context.Context, id uuid.UUID) (*model.ChargeVersion, error) {
	version, err := s.versions.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return version, nil
}

// Create promotes a manually entered charge version straight to current.
func (s *ChargeVersionService) Create(ctx context.Context, input CreateChargeVersionInput) (*model.ChargeVersion, error) {
	if !input.Principal.CanReview() {
		return nil, ErrPermissionDenied
	}
	licence, err := s.licences.GetByRef(ctx, input.LicenceRef)
	if err != nil {
		return nil, translate(err)
	}
	return s.promote(ctx, *licence, input.Principal, originManual, promotion{draft: input.Draft})
}

// CreateFromWorkflow turns an approved workflow draft into the licence's
// newest current charge version and removes the workflow.
func (s *ChargeVersionService) CreateFromWorkflow(ctx context.Context, workflowID uuid.UUID, principal model.Principal) (*model.ChargeVersion, error) {
	if !principal.CanReview() {
		return nil, ErrPermissionDenied
	}

	workflow, err := s.workflows.GetByID(ctx, workflowID)
	if err != nil {
		return nil, translate(err)
	}
	if err := requireReview(workflow); err != nil {
		return nil, err
	}

	licence, err := s.licences.GetByID(ctx, workflow.LicenceID)
	if err != nil {
		return nil, translate(err)
	}

	version, err := s.promote(ctx, *licence, principal, originWorkflow, promotion{
		draft: workflow.Draft,
		// The checks above ran without the lock; the locked row is what gets promoted.
		reload: func(ctx context.Context) (model.ChargeVersionDraft, error) {
			locked, err := s.workflows.GetForUpdate(ctx, workflow.ID)
			if err != nil {
				return model.ChargeVersionDraft{}, err
			}
			if err := requireReview(locked); err != nil {
				return model.ChargeVersionDraft{}, err
			}
			return locked.Draft, nil
		},
		finish: func(ctx context.Context) error {
			return s.workflows.SoftDelete(ctx, workflow.ID)
		},
	})
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveWorkflowDecision("approved")
	return version, nil
}

func requireReview(workflow *model.ChargeVersionWorkflow) error {
	if workflow.Status != model.WorkflowStatusReview {
		return fmt.Errorf("%w: workflow is %s, expected %s", ErrInvalidState, workflow.Status, model.WorkflowStatusReview)
	}
	return nil
}

// promotion is the draft being promoted. reload, when set, re-reads the draft
// under the licence lock; finish runs last in the same unit of work.
type promotion struct {
	draft  model.ChargeVersionDraft
	reload func(ctx context.Context) (model.ChargeVersionDraft, error)
	finish func(ctx context.Context) error
}

// promote validates the draft before any write, then recomputes and persists
// the licence timeline as one unit of work under the licence lock.
func (s *ChargeVersionService) promote(
	ctx context.Context,
	licence model.Licence,
	principal model.Principal,
	origin string,
	p promotion,
) (*model.ChargeVersion, error) {
	id := s.newID()
	version, err := draftVersion(id, licence, p.draft, principal)
	if err != nil {
		return nil, err
	}

	var result timeline.Result
	err = s.tx.WithLicenceLock(ctx, licence.LicenceRef, func(ctx context.Context) error {
		if p.reload != nil {
			draft, err := p.reload(ctx)
			if err != nil {
				return err
			}
			if version, err = draftVersion(id, licence, draft, principal); err != nil {
				return err
			}
		}

		existing, err := s.versions.ListByLicenceRef(ctx, licence.LicenceRef)
		if err != nil {
			return err
		}

		result, err = timeline.Plan(version, existing)
		if err != nil {
			if errors.Is(err, timeline.ErrDuplicateStart) {
				return fmt.Errorf("%w: %w", ErrConflict, err)
			}
			return err
		}

		// Demotions go first so the new row never collides with a current one.
		for _, update := range result.Updates {
			if err := s.versions.UpdateTimeline(ctx, update.ID, update.Status, update.EndDate); err != nil {
				return fmt.Errorf("update charge version %s: %w", update.ID, err)
			}
		}
		if err := s.versions.Create(ctx, result.Version); err != nil {
			return err
		}
		if err := s.licences.FlagForSupplementaryBilling(ctx, licence.ID); err != nil {
			return fmt.Errorf("flag licence for supplementary billing: %w", err)
		}
		if p.finish != nil {
			return p.finish(ctx)
		}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}

	superseded := 0
	for _, update := range result.Updates {
		if update.StatusChanged {
			superseded++
		}
	}
	s.metrics.ObserveChargeVersionCreated(origin, superseded)
	s.log.Info().
		Str("licence_ref", licence.LicenceRef).
		Str("charge_version_id", result.Version.ID.String()).
		Int("version_number", result.Version.VersionNumber).
		Int("superseded", superseded).
		Int("updated", len(result.Updates)).
		Str("origin", origin).
		Msg("charge version created")

	created, err := s.versions.GetByID(ctx, result.Version.ID)
	if err != nil {
		return nil, translate(err)
	}
	return created, nil
}

// draftVersion stamps draft as a current WRLS version of licence and validates it.
func draftVersion(id uuid.UUID, licence model.Licence, draft model.ChargeVersionDraft, principal model.Principal) (model.ChargeVersion, error) {
	createdBy := principal.UserID
	version := model.ChargeVersion{
		ID:             id,
		LicenceID:      licence.ID,
		LicenceRef:     licence.LicenceRef,
		DateRange:      draft.DateRange,
		Status:         model.ChargeVersionStatusCurrent,
		Source:         model.ChargeVersionSourceWRLS,
		Scheme:         draft.Scheme,
		ChangeReason:   draft.ChangeReason,
		CreatedBy:      &createdBy,
		ChargeElements: draft.ChargeElements,
	}
	if err := validateAgainstLicence(version, licence); err != nil {
		return model.ChargeVersion{}, err
	}
	return version, nil
}

func validateAgainstLicence(version model.ChargeVersion, licence model.Licence) error {
	if err := validation.ValidateStruct(version); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	start := version.DateRange.Start()
	if !licence.StartDate.IsZero() && start.Before(model.DateOnly(licence.StartDate)) {
		return fmt.Errorf("%w: charge version cannot start before the licence start date %s", ErrInvalidInput, model.FormatDate(licence.StartDate))
	}
	if end := licence.EndDate(); end != nil && start.After(model.DateOnly(*end)) {
		return fmt.Errorf("%w: charge version cannot start after the licence end date %s", ErrInvalidInput, model.FormatDate(*end))
	}
	return nil
}
