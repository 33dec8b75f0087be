package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/wrls-charging/internal/model"
	"github.com/nurpe/wrls-charging/internal/service"
)

type createWorkflowRequest struct {
	LicenceRef    string                   `json:"licenceNumber" binding:"required"`
	Status        string                   `json:"status"`
	ChargeVersion model.ChargeVersionDraft `json:"chargeVersion"`
}

type updateWorkflowRequest struct {
	Status           *string                   `json:"status"`
	ApproverComments *string                   `json:"approverComments"`
	ChargeVersion    *model.ChargeVersionDraft `json:"chargeVersion"`
}

func (h *Handler) listWorkflows(c *gin.Context) {
	var status *model.WorkflowStatus
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		s := model.WorkflowStatus(raw)
		status = &s
	}

	workflows, err := h.workflows.List(c.Request.Context(), status)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": workflows})
}

func (h *Handler) createWorkflow(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var req createWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workflow, err := h.workflows.Create(c.Request.Context(), service.CreateWorkflowInput{
		LicenceRef: strings.TrimSpace(req.LicenceRef),
		Status:     model.WorkflowStatus(strings.TrimSpace(req.Status)),
		Draft:      req.ChargeVersion,
		Principal:  principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": workflow})
}

func (h *Handler) getWorkflow(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	workflow, err := h.workflows.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": workflow})
}

func (h *Handler) updateWorkflow(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req updateWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.UpdateWorkflowInput{
		ID:               id,
		ApproverComments: req.ApproverComments,
		Draft:            req.ChargeVersion,
		Principal:        principal,
	}
	if req.Status != nil {
		status := model.WorkflowStatus(strings.TrimSpace(*req.Status))
		input.Status = &status
	}

	workflow, err := h.workflows.Update(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": workflow})
}

// approveWorkflow promotes the workflow's draft to a current charge version.
func (h *Handler) approveWorkflow(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	version, err := h.chargeVersions.CreateFromWorkflow(c.Request.Context(), id, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": version})
}

func (h *Handler) deleteWorkflow(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.workflows.Delete(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
