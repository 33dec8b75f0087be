package service

//go:generate mockgen -source=stores.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/wrls-charging/internal/model"
)

type LicenceStore interface {
	GetByRef(ctx context.Context, licenceRef string) (*model.Licence, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Licence, error)
	FlagForSupplementaryBilling(ctx context.Context, licenceID uuid.UUID) error
}

type ChargeVersionStore interface {
	ListByLicenceRef(ctx context.Context, licenceRef string) ([]model.ChargeVersion, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.ChargeVersion, error)
	Create(ctx context.Context, version model.ChargeVersion) error
	UpdateTimeline(ctx context.Context, id uuid.UUID, status model.ChargeVersionStatus, endDate *time.Time) error
}

type WorkflowStore interface {
	List(ctx context.Context, status *model.WorkflowStatus) ([]model.ChargeVersionWorkflow, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.ChargeVersionWorkflow, error)
	// GetForUpdate reads a non-deleted workflow and row-locks it for the
	// surrounding transaction.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*model.ChargeVersionWorkflow, error)
	Create(ctx context.Context, workflow model.ChargeVersionWorkflow) (*model.ChargeVersionWorkflow, error)
	Update(ctx context.Context, workflow model.ChargeVersionWorkflow) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type AgreementStore interface {
	ListByLicenceRef(ctx context.Context, licenceRef string, includeDeleted bool) ([]model.LicenceAgreement, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.LicenceAgreement, error)
	GetAgreementTypeByCode(ctx context.Context, code string) (*model.Agreement, error)
	Create(ctx context.Context, agreement model.LicenceAgreement) (*model.LicenceAgreement, error)
	SoftDelete(ctx context.Context, id uuid.UUID, deletedAt time.Time) error
}

// Transactor serializes read-modify-write work on one licence.
type Transactor interface {
	WithLicenceLock(ctx context.Context, licenceRef string, fn func(ctx context.Context) error) error
}

type ExcelGenerator interface {
	Generate(report model.ChargeHistoryReport) ([]byte, error)
}

type PDFGenerator interface {
	Generate(statement model.ChargeVersionStatement) ([]byte, error)
}
