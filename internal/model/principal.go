package model

import "github.com/google/uuid"

const (
	RoleWorkflowEditor   = "charge_version_workflow_editor"
	RoleWorkflowReviewer = "charge_version_workflow_reviewer"
	RoleManageAgreements = "manage_agreements"
	RoleBilling          = "billing"
)

type Principal struct {
	UserID uuid.UUID
	Email  string
	Roles  []string
}

func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (p Principal) CanEditWorkflows() bool {
	return p.HasRole(RoleWorkflowEditor) || p.HasRole(RoleWorkflowReviewer)
}

func (p Principal) CanReview() bool {
	return p.HasRole(RoleWorkflowReviewer)
}

func (p Principal) CanManageAgreements() bool {
	return p.HasRole(RoleManageAgreements)
}
