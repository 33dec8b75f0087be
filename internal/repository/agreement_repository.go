package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/wrls-charging/internal/model"
)

type AgreementRepository struct {
	db *gorm.DB
}

func NewAgreementRepository(db *gorm.DB) *AgreementRepository {
	return &AgreementRepository{db: db}
}

type licenceAgreementRow struct {
	ID                   uuid.UUID
	LicenceRef           string
	StartDate            time.Time
	EndDate              *time.Time
	DateSigned           *time.Time
	DateDeleted          *time.Time
	Source               string
	CreatedAt            time.Time
	AgreementID          uuid.UUID
	AgreementCode        string
	AgreementDescription string
}

func (row licenceAgreementRow) toModel() (model.LicenceAgreement, error) {
	dateRange, err := model.NewDateRange(row.StartDate, row.EndDate)
	if err != nil {
		return model.LicenceAgreement{}, fmt.Errorf("licence agreement %s: %w", row.ID, err)
	}
	return model.LicenceAgreement{
		ID:          row.ID,
		LicenceRef:  row.LicenceRef,
		DateRange:   dateRange,
		DateSigned:  row.DateSigned,
		DateDeleted: row.DateDeleted,
		Source:      row.Source,
		CreatedAt:   row.CreatedAt,
		Agreement: model.Agreement{
			ID:          row.AgreementID,
			Code:        row.AgreementCode,
			Description: row.AgreementDescription,
		},
	}, nil
}

const licenceAgreementSelect = `
	SELECT
		la.id,
		la.licence_ref,
		la.start_date,
		la.end_date,
		la.date_signed,
		la.date_deleted,
		la.source,
		la.created_at,
		fat.id AS agreement_id,
		fat.code AS agreement_code,
		fat.description AS agreement_description
	FROM licence_agreements la
	JOIN financial_agreement_types fat ON fat.id = la.financial_agreement_type_id
`

// ListByLicenceRef returns the licence's agreements ordered by start date.
// Soft-deleted agreements are left out unless includeDeleted is set.
func (r *AgreementRepository) ListByLicenceRef(ctx context.Context, licenceRef string, includeDeleted bool) ([]model.LicenceAgreement, error) {
	query := licenceAgreementSelect + ` WHERE la.licence_ref = ?`
	if !includeDeleted {
		query += ` AND la.date_deleted IS NULL`
	}
	query += ` ORDER BY la.start_date ASC, fat.code ASC`

	var rows []licenceAgreementRow
	if err := conn(ctx, r.db).Raw(query, licenceRef).Scan(&rows).Error; err != nil {
		return nil, err
	}

	agreements := make([]model.LicenceAgreement, 0, len(rows))
	for _, row := range rows {
		agreement, err := row.toModel()
		if err != nil {
			return nil, err
		}
		agreements = append(agreements, agreement)
	}
	return agreements, nil
}

// GetByID returns a non-deleted licence agreement.
func (r *AgreementRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.LicenceAgreement, error) {
	var row licenceAgreementRow
	err := conn(ctx, r.db).Raw(licenceAgreementSelect+`
		WHERE la.id = ? AND la.date_deleted IS NULL
		LIMIT 1
	`, id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	agreement, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &agreement, nil
}

func (r *AgreementRepository) GetAgreementTypeByCode(ctx context.Context, code string) (*model.Agreement, error) {
	var agreement model.Agreement
	err := conn(ctx, r.db).Raw(`
		SELECT id, code, description
		FROM financial_agreement_types
		WHERE code = ? AND disabled = FALSE
		LIMIT 1
	`, code).Scan(&agreement).Error
	if err != nil {
		return nil, err
	}
	if agreement.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &agreement, nil
}

// Create inserts the agreement. A live duplicate for the same licence, type
// and start date fails with gorm.ErrDuplicatedKey.
func (r *AgreementRepository) Create(ctx context.Context, agreement model.LicenceAgreement) (*model.LicenceAgreement, error) {
	var id uuid.UUID
	err := conn(ctx, r.db).Raw(`
		INSERT INTO licence_agreements (
			licence_ref,
			financial_agreement_type_id,
			start_date,
			end_date,
			date_signed,
			source
		) VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`,
		agreement.LicenceRef,
		agreement.Agreement.ID,
		agreement.DateRange.Start(),
		agreement.DateRange.End(),
		agreement.DateSigned,
		agreement.Source,
	).Scan(&id).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *AgreementRepository) SoftDelete(ctx context.Context, id uuid.UUID, deletedAt time.Time) error {
	result := conn(ctx, r.db).Exec(`
		UPDATE licence_agreements
		SET date_deleted = ?, updated_at = NOW()
		WHERE id = ? AND date_deleted IS NULL
	`, deletedAt, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
