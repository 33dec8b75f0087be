package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/wrls-charging/internal/model"
	"github.com/nurpe/wrls-charging/internal/service"
)

type createAgreementRequest struct {
	Code       string  `json:"code" binding:"required"`
	StartDate  string  `json:"startDate" binding:"required"`
	EndDate    *string `json:"endDate"`
	DateSigned *string `json:"dateSigned"`
}

func (h *Handler) listAgreements(c *gin.Context) {
	agreements, err := h.agreements.ListForLicence(c.Request.Context(), licenceRef(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": agreements})
}

func (h *Handler) createAgreement(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var req createAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	end := ""
	if req.EndDate != nil {
		end = *req.EndDate
	}
	dateRange, err := model.ParseDateRange(req.StartDate, end)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var dateSigned *time.Time
	if req.DateSigned != nil && strings.TrimSpace(*req.DateSigned) != "" {
		signed, err := model.ParseDate(*req.DateSigned)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dateSigned"})
			return
		}
		dateSigned = &signed
	}

	agreement, err := h.agreements.Create(c.Request.Context(), service.CreateAgreementInput{
		LicenceRef: licenceRef(c),
		Code:       req.Code,
		DateRange:  dateRange,
		DateSigned: dateSigned,
		Principal:  principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": agreement})
}

func (h *Handler) deleteAgreement(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.agreements.Delete(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) agreementHistory(c *gin.Context) {
	period, err := periodQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	segments, resolved, err := h.agreements.History(c.Request.Context(), licenceRef(c), period)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"period":   resolved,
		"segments": segments,
	}})
}

func (h *Handler) exportAgreementHistory(c *gin.Context) {
	period, err := periodQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.reports.ExportHistory(c.Request.Context(), licenceRef(c), period)
	if err != nil {
		h.handleError(c, err)
		return
	}
	attachment(c, xlsxContentType, result)
}
