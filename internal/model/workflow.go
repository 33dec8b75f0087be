package model

import (
	"time"

	"github.com/google/uuid"
)

type WorkflowStatus string

const (
	WorkflowStatusToSetup          WorkflowStatus = "to_setup"
	WorkflowStatusReview           WorkflowStatus = "review"
	WorkflowStatusChangesRequested WorkflowStatus = "changes_requested"
)

func (s WorkflowStatus) Valid() bool {
	switch s {
	case WorkflowStatusToSetup, WorkflowStatusReview, WorkflowStatusChangesRequested:
		return true
	}
	return false
}

// ChargeVersionDraft is the not-yet-promoted charge version held by a workflow.
type ChargeVersionDraft struct {
	DateRange      DateRange       `json:"dateRange"`
	Scheme         ChargeScheme    `json:"scheme" validate:"required,oneof=alcs sroc"`
	ChangeReason   *string         `json:"changeReason,omitempty" validate:"omitempty,max=255"`
	ChargeElements []ChargeElement `json:"chargeElements" validate:"dive"`
}

// ChargeVersionWorkflow tracks a draft charge version through review.
type ChargeVersionWorkflow struct {
	ID               uuid.UUID          `json:"id"`
	LicenceID        uuid.UUID          `json:"licenceId"`
	LicenceRef       string             `json:"licenceNumber"`
	Status           WorkflowStatus     `json:"status"`
	ApproverComments *string            `json:"approverComments"`
	CreatedBy        uuid.UUID          `json:"createdBy"`
	Draft            ChargeVersionDraft `json:"chargeVersion"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
	DateDeleted      *time.Time         `json:"dateDeleted"`
}
