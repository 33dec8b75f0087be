package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/wrls-charging/internal/model"
	"github.com/nurpe/wrls-charging/internal/service"
)

func (h *Handler) listChargeVersions(c *gin.Context) {
	versions, err := h.chargeVersions.ListForLicence(c.Request.Context(), licenceRef(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": versions})
}

func (h *Handler) createChargeVersion(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var draft model.ChargeVersionDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	version, err := h.chargeVersions.Create(c.Request.Context(), service.CreateChargeVersionInput{
		LicenceRef: licenceRef(c),
		Draft:      draft,
		Principal:  principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": version})
}

func (h *Handler) getChargeVersion(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	version, err := h.chargeVersions.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": version})
}

func (h *Handler) chargeVersionStatement(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := h.reports.ChargeVersionStatement(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	attachment(c, pdfContentType, result)
}
