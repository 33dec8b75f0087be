package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/wrls-charging/internal/http/middleware"
	"github.com/nurpe/wrls-charging/internal/model"
	"github.com/nurpe/wrls-charging/internal/service"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType  = "application/pdf"
)

type LicenceService interface {
	Get(ctx context.Context, licenceRef string) (*model.Licence, error)
}

type ChargeVersionService interface {
	ListForLicence(ctx context.Context, licenceRef string) ([]model.ChargeVersion, error)
	Get(ctx context.Context, id uuid.UUID) (*model.ChargeVersion, error)
	Create(ctx context.Context, input service.CreateChargeVersionInput) (*model.ChargeVersion, error)
	CreateFromWorkflow(ctx context.Context, workflowID uuid.UUID, principal model.Principal) (*model.ChargeVersion, error)
}

type WorkflowService interface {
	List(ctx context.Context, status *model.WorkflowStatus) ([]model.ChargeVersionWorkflow, error)
	Get(ctx context.Context, id uuid.UUID) (*model.ChargeVersionWorkflow, error)
	Create(ctx context.Context, input service.CreateWorkflowInput) (*model.ChargeVersionWorkflow, error)
	Update(ctx context.Context, input service.UpdateWorkflowInput) (*model.ChargeVersionWorkflow, error)
	Delete(ctx context.Context, id uuid.UUID, principal model.Principal) error
}

type AgreementService interface {
	ListForLicence(ctx context.Context, licenceRef string) ([]model.LicenceAgreement, error)
	Create(ctx context.Context, input service.CreateAgreementInput) (*model.LicenceAgreement, error)
	Delete(ctx context.Context, id uuid.UUID, principal model.Principal) error
	History(ctx context.Context, licenceRef string, period *model.DateRange) ([]model.AgreementHistorySegment, model.DateRange, error)
}

type ReportService interface {
	ExportHistory(ctx context.Context, licenceRef string, period *model.DateRange) (*service.ExportResult, error)
	ChargeVersionStatement(ctx context.Context, id uuid.UUID) (*service.ExportResult, error)
}

type Services struct {
	Licences       LicenceService
	ChargeVersions ChargeVersionService
	Workflows      WorkflowService
	Agreements     AgreementService
	Reports        ReportService
}

type Handler struct {
	licences       LicenceService
	chargeVersions ChargeVersionService
	workflows      WorkflowService
	agreements     AgreementService
	reports        ReportService
	log            zerolog.Logger
}

func NewHandler(services Services, log zerolog.Logger) *Handler {
	return &Handler{
		licences:       services.Licences,
		chargeVersions: services.ChargeVersions,
		workflows:      services.Workflows,
		agreements:     services.Agreements,
		reports:        services.Reports,
		log:            log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := router.Group("/")
	protected.Use(authMiddleware)

	protected.GET("/licences/:ref", h.getLicence)
	protected.GET("/licences/:ref/charge-versions", h.listChargeVersions)
	protected.POST("/licences/:ref/charge-versions", h.createChargeVersion)
	protected.GET("/licences/:ref/agreements", h.listAgreements)
	protected.POST("/licences/:ref/agreements", h.createAgreement)
	protected.GET("/licences/:ref/agreement-history", h.agreementHistory)
	protected.GET("/licences/:ref/agreement-history/export", h.exportAgreementHistory)

	protected.GET("/charge-versions/:id", h.getChargeVersion)
	protected.GET("/charge-versions/:id/statement", h.chargeVersionStatement)

	protected.GET("/charge-version-workflows", h.listWorkflows)
	protected.POST("/charge-version-workflows", h.createWorkflow)
	protected.GET("/charge-version-workflows/:id", h.getWorkflow)
	protected.PATCH("/charge-version-workflows/:id", h.updateWorkflow)
	protected.POST("/charge-version-workflows/:id/approve", h.approveWorkflow)
	protected.DELETE("/charge-version-workflows/:id", h.deleteWorkflow)

	protected.DELETE("/agreements/:id", h.deleteAgreement)
}

func (h *Handler) getLicence(c *gin.Context) {
	licence, err := h.licences.Get(c.Request.Context(), licenceRef(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": licence})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict), errors.Is(err, service.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func principalOrAbort(c *gin.Context) (model.Principal, bool) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
	}
	return principal, ok
}

// licenceRef returns the licence number path parameter. Licence numbers
// contain slashes, so clients send them percent-encoded.
func licenceRef(c *gin.Context) string {
	return strings.TrimSpace(c.Param("ref"))
}

func idParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// periodQuery reads the optional start/end query parameters. A missing start
// means the caller wants the default period.
func periodQuery(c *gin.Context) (*model.DateRange, error) {
	start := strings.TrimSpace(c.Query("start"))
	end := strings.TrimSpace(c.Query("end"))
	if start == "" {
		if end != "" {
			return nil, errors.New("start is required when end is given")
		}
		return nil, nil
	}
	period, err := model.ParseDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return &period, nil
}

func attachment(c *gin.Context, contentType string, result *service.ExportResult) {
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, contentType, result.Content)
}
