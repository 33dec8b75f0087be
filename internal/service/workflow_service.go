package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/wrls-charging/internal/metrics"
	"github.com/nurpe/wrls-charging/internal/model"
	"github.com/nurpe/wrls-charging/internal/validation"
)

// workflowTransitions lists the allowed status moves. Approval is not a
// status: an approved workflow becomes a charge version and is removed.
var workflowTransitions = map[model.WorkflowStatus][]model.WorkflowStatus{
	model.WorkflowStatusToSetup:          {model.WorkflowStatusReview},
	model.WorkflowStatusReview:           {model.WorkflowStatusChangesRequested},
	model.WorkflowStatusChangesRequested: {model.WorkflowStatusReview},
}

type WorkflowService struct {
	licences  LicenceStore
	workflows WorkflowStore
	metrics   *metrics.Metrics
	log       zerolog.Logger
}

func NewWorkflowService(licences LicenceStore, workflows WorkflowStore, m *metrics.Metrics, log zerolog.Logger) *WorkflowService {
	return &WorkflowService{
		licences:  licences,
		workflows: workflows,
		metrics:   m,
		log:       log,
	}
}

type CreateWorkflowInput struct {
	LicenceRef string
	Status     model.WorkflowStatus
	Draft      model.ChargeVersionDraft
	Principal  model.Principal
}

type UpdateWorkflowInput struct {
	ID               uuid.UUID
	Status           *model.WorkflowStatus
	ApproverComments *string
	Draft            *model.ChargeVersionDraft
	Principal        model.Principal
}

func (s *WorkflowService) List(ctx context.Context, status *model.WorkflowStatus) ([]model.ChargeVersionWorkflow, error) {
	if status != nil && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown workflow status %q", ErrInvalidInput, *status)
	}
	return s.workflows.List(ctx, status)
}

func (s *WorkflowService) Get(ctx context.Context, id uuid.UUID) (*model.ChargeVersionWorkflow, error) {
	workflow, err := s.workflows.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return workflow, nil
}

func (s *WorkflowService) Create(ctx context.Context, input CreateWorkflowInput) (*model.ChargeVersionWorkflow, error) {
	if !input.Principal.CanEditWorkflows() {
		return nil, ErrPermissionDenied
	}

	status := input.Status
	if status == "" {
		status = model.WorkflowStatusToSetup
	}
	if status == model.WorkflowStatusChangesRequested || !status.Valid() {
		return nil, fmt.Errorf("%w: a new workflow must be %s or %s", ErrInvalidInput, model.WorkflowStatusToSetup, model.WorkflowStatusReview)
	}
	if status == model.WorkflowStatusReview {
		if err := validation.ValidateStruct(input.Draft); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	licence, err := s.licences.GetByRef(ctx, input.LicenceRef)
	if err != nil {
		return nil, translate(err)
	}

	workflow, err := s.workflows.Create(ctx, model.ChargeVersionWorkflow{
		LicenceID:  licence.ID,
		LicenceRef: licence.LicenceRef,
		Status:     status,
		CreatedBy:  input.Principal.UserID,
		Draft:      input.Draft,
	})
	if err != nil {
		return nil, translate(err)
	}

	s.log.Info().
		Str("workflow_id", workflow.ID.String()).
		Str("licence_ref", licence.LicenceRef).
		Str("status", string(status)).
		Msg("charge version workflow created")
	return workflow, nil
}

func (s *WorkflowService) Update(ctx context.Context, input UpdateWorkflowInput) (*model.ChargeVersionWorkflow, error) {
	if !input.Principal.CanEditWorkflows() {
		return nil, ErrPermissionDenied
	}

	workflow, err := s.workflows.GetByID(ctx, input.ID)
	if err != nil {
		return nil, translate(err)
	}

	if input.Draft != nil {
		workflow.Draft = *input.Draft
	}
	if input.ApproverComments != nil {
		comments := strings.TrimSpace(*input.ApproverComments)
		workflow.ApproverComments = &comments
	}

	changesRequested := false
	if input.Status != nil && *input.Status != workflow.Status {
		next := *input.Status
		if !canTransition(workflow.Status, next) {
			return nil, fmt.Errorf("%w: cannot move workflow from %s to %s", ErrInvalidState, workflow.Status, next)
		}
		switch next {
		case model.WorkflowStatusChangesRequested:
			if !input.Principal.CanReview() {
				return nil, ErrPermissionDenied
			}
			if workflow.ApproverComments == nil || *workflow.ApproverComments == "" {
				return nil, fmt.Errorf("%w: approver comments are required when requesting changes", ErrInvalidInput)
			}
		case model.WorkflowStatusReview:
			if err := validation.ValidateStruct(workflow.Draft); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
		case model.WorkflowStatusToSetup:
		}
		workflow.Status = next
		changesRequested = next == model.WorkflowStatusChangesRequested
	}

	if err := s.workflows.Update(ctx, *workflow); err != nil {
		return nil, translate(err)
	}
	if changesRequested {
		s.metrics.ObserveWorkflowDecision("changes_requested")
	}
	return workflow, nil
}

func (s *WorkflowService) Delete(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	if !principal.CanEditWorkflows() {
		return ErrPermissionDenied
	}
	if err := s.workflows.SoftDelete(ctx, id); err != nil {
		return translate(err)
	}
	s.log.Info().Str("workflow_id", id.String()).Msg("charge version workflow deleted")
	return nil
}

func canTransition(from, to model.WorkflowStatus) bool {
	for _, allowed := range workflowTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
