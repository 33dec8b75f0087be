package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/wrls-charging/internal/model"
)

type LicenceRepository struct {
	db *gorm.DB
}

func NewLicenceRepository(db *gorm.DB) *LicenceRepository {
	return &LicenceRepository{db: db}
}

const licenceColumns = `
	id,
	licence_ref,
	region_code,
	start_date,
	expired_date,
	lapsed_date,
	revoked_date,
	include_in_supplementary_billing
`

func (r *LicenceRepository) GetByRef(ctx context.Context, licenceRef string) (*model.Licence, error) {
	var licence model.Licence
	err := conn(ctx, r.db).Raw(`
		SELECT `+licenceColumns+`
		FROM licences
		WHERE licence_ref = ?
		LIMIT 1
	`, licenceRef).Scan(&licence).Error
	if err != nil {
		return nil, err
	}
	if licence.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &licence, nil
}

func (r *LicenceRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Licence, error) {
	var licence model.Licence
	err := conn(ctx, r.db).Raw(`
		SELECT `+licenceColumns+`
		FROM licences
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&licence).Error
	if err != nil {
		return nil, err
	}
	if licence.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &licence, nil
}

// FlagForSupplementaryBilling marks the licence so the next supplementary
// bill run picks it up.
func (r *LicenceRepository) FlagForSupplementaryBilling(ctx context.Context, licenceID uuid.UUID) error {
	result := conn(ctx, r.db).Exec(`
		UPDATE licences
		SET include_in_supplementary_billing = TRUE, updated_at = NOW()
		WHERE id = ?
	`, licenceID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
