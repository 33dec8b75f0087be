package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/wrls-charging/internal/model"
)

type ChargeVersionRepository struct {
	db *gorm.DB
}

func NewChargeVersionRepository(db *gorm.DB) *ChargeVersionRepository {
	return &ChargeVersionRepository{db: db}
}

type chargeVersionRow struct {
	ID            uuid.UUID
	LicenceID     uuid.UUID
	LicenceRef    string
	VersionNumber int
	StartDate     time.Time
	EndDate       *time.Time
	Status        string
	Source        string
	Scheme        string
	ChangeReason  *string
	CreatedBy     *uuid.UUID
	CreatedAt     time.Time
}

func (row chargeVersionRow) toModel() (model.ChargeVersion, error) {
	dateRange, err := model.NewDateRange(row.StartDate, row.EndDate)
	if err != nil {
		return model.ChargeVersion{}, fmt.Errorf("charge version %s: %w", row.ID, err)
	}
	return model.ChargeVersion{
		ID:            row.ID,
		LicenceID:     row.LicenceID,
		LicenceRef:    row.LicenceRef,
		VersionNumber: row.VersionNumber,
		DateRange:     dateRange,
		Status:        model.ChargeVersionStatus(row.Status),
		Source:        model.ChargeVersionSource(row.Source),
		Scheme:        model.ChargeScheme(row.Scheme),
		ChangeReason:  row.ChangeReason,
		CreatedBy:     row.CreatedBy,
		CreatedAt:     row.CreatedAt,
	}, nil
}

type chargeElementRow struct {
	ID                          uuid.UUID
	ChargeVersionID             uuid.UUID
	Description                 string
	Source                      string
	Season                      string
	Loss                        string
	PurposeCode                 string
	AbstractionPeriodStartDay   int
	AbstractionPeriodStartMonth int
	AbstractionPeriodEndDay     int
	AbstractionPeriodEndMonth   int
	AuthorisedAnnualQuantity    float64
	BillableAnnualQuantity      *float64
}

func (row chargeElementRow) toModel() model.ChargeElement {
	return model.ChargeElement{
		ID:              row.ID,
		ChargeVersionID: row.ChargeVersionID,
		Description:     row.Description,
		Source:          row.Source,
		Season:          row.Season,
		Loss:            row.Loss,
		PurposeCode:     row.PurposeCode,
		AbstractionPeriod: model.AbstractionPeriod{
			StartDay:   row.AbstractionPeriodStartDay,
			StartMonth: row.AbstractionPeriodStartMonth,
			EndDay:     row.AbstractionPeriodEndDay,
			EndMonth:   row.AbstractionPeriodEndMonth,
		},
		AuthorisedAnnualQuantity: row.AuthorisedAnnualQuantity,
		BillableAnnualQuantity:   row.BillableAnnualQuantity,
	}
}

const chargeVersionColumns = `
	id,
	licence_id,
	licence_ref,
	version_number,
	start_date,
	end_date,
	status,
	source,
	scheme,
	change_reason,
	created_by,
	created_at
`

// ListByLicenceRef returns every version of the licence, in any status,
// without charge elements.
func (r *ChargeVersionRepository) ListByLicenceRef(ctx context.Context, licenceRef string) ([]model.ChargeVersion, error) {
	var rows []chargeVersionRow
	err := conn(ctx, r.db).Raw(`
		SELECT `+chargeVersionColumns+`
		FROM charge_versions
		WHERE licence_ref = ?
		ORDER BY start_date ASC, version_number ASC
	`, licenceRef).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	versions := make([]model.ChargeVersion, 0, len(rows))
	for _, row := range rows {
		version, err := row.toModel()
		if err != nil {
			return nil, err
		}
		versions = append(versions, version)
	}
	return versions, nil
}

func (r *ChargeVersionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ChargeVersion, error) {
	var row chargeVersionRow
	err := conn(ctx, r.db).Raw(`
		SELECT `+chargeVersionColumns+`
		FROM charge_versions
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}

	version, err := row.toModel()
	if err != nil {
		return nil, err
	}

	var elements []chargeElementRow
	err = conn(ctx, r.db).Raw(`
		SELECT
			id,
			charge_version_id,
			description,
			source,
			season,
			loss,
			purpose_code,
			abstraction_period_start_day,
			abstraction_period_start_month,
			abstraction_period_end_day,
			abstraction_period_end_month,
			authorised_annual_quantity,
			billable_annual_quantity
		FROM charge_elements
		WHERE charge_version_id = ?
		ORDER BY purpose_code ASC, id ASC
	`, id).Scan(&elements).Error
	if err != nil {
		return nil, err
	}

	version.ChargeElements = make([]model.ChargeElement, 0, len(elements))
	for _, element := range elements {
		version.ChargeElements = append(version.ChargeElements, element.toModel())
	}
	return &version, nil
}

// Create inserts the version and its charge elements. The version id must be
// set by the caller so the timeline can refer to it before it is persisted.
func (r *ChargeVersionRepository) Create(ctx context.Context, version model.ChargeVersion) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		err := tx.Exec(`
			INSERT INTO charge_versions (
				id,
				licence_id,
				licence_ref,
				version_number,
				start_date,
				end_date,
				status,
				source,
				scheme,
				change_reason,
				created_by
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			version.ID,
			version.LicenceID,
			version.LicenceRef,
			version.VersionNumber,
			version.DateRange.Start(),
			version.DateRange.End(),
			string(version.Status),
			string(version.Source),
			string(version.Scheme),
			version.ChangeReason,
			version.CreatedBy,
		).Error
		if err != nil {
			return err
		}

		for _, element := range version.ChargeElements {
			elementID := element.ID
			if elementID == uuid.Nil {
				elementID = uuid.New()
			}
			if err := tx.Exec(`
				INSERT INTO charge_elements (
					id,
					charge_version_id,
					description,
					source,
					season,
					loss,
					purpose_code,
					abstraction_period_start_day,
					abstraction_period_start_month,
					abstraction_period_end_day,
					abstraction_period_end_month,
					authorised_annual_quantity,
					billable_annual_quantity
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`,
				elementID,
				version.ID,
				element.Description,
				element.Source,
				element.Season,
				element.Loss,
				element.PurposeCode,
				element.AbstractionPeriod.StartDay,
				element.AbstractionPeriod.StartMonth,
				element.AbstractionPeriod.EndDay,
				element.AbstractionPeriod.EndMonth,
				element.AuthorisedAnnualQuantity,
				element.BillableAnnualQuantity,
			).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateTimeline persists the status and end date computed by the timeline.
func (r *ChargeVersionRepository) UpdateTimeline(ctx context.Context, id uuid.UUID, status model.ChargeVersionStatus, endDate *time.Time) error {
	result := conn(ctx, r.db).Exec(`
		UPDATE charge_versions
		SET status = ?, end_date = ?, updated_at = NOW()
		WHERE id = ?
	`, string(status), endDate, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
