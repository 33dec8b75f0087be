package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/nurpe/wrls-charging/internal/model"
)

type WorkflowRepository struct {
	db *gorm.DB
}

func NewWorkflowRepository(db *gorm.DB) *WorkflowRepository {
	return &WorkflowRepository{db: db}
}

type workflowRow struct {
	ID               uuid.UUID
	LicenceID        uuid.UUID
	LicenceRef       string
	Status           string
	ApproverComments *string
	CreatedBy        uuid.UUID
	Data             datatypes.JSON
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DateDeleted      *time.Time
}

func (row workflowRow) toModel() (model.ChargeVersionWorkflow, error) {
	workflow := model.ChargeVersionWorkflow{
		ID:               row.ID,
		LicenceID:        row.LicenceID,
		LicenceRef:       row.LicenceRef,
		Status:           model.WorkflowStatus(row.Status),
		ApproverComments: row.ApproverComments,
		CreatedBy:        row.CreatedBy,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
		DateDeleted:      row.DateDeleted,
	}
	if len(row.Data) > 0 && string(row.Data) != "{}" {
		if err := json.Unmarshal(row.Data, &workflow.Draft); err != nil {
			return model.ChargeVersionWorkflow{}, fmt.Errorf("workflow %s: decode draft: %w", row.ID, err)
		}
	}
	return workflow, nil
}

const workflowSelect = `
	SELECT
		w.id,
		w.licence_id,
		l.licence_ref,
		w.status,
		w.approver_comments,
		w.created_by,
		w.data,
		w.created_at,
		w.updated_at,
		w.date_deleted
	FROM charge_version_workflows w
	JOIN licences l ON l.id = w.licence_id
`

// List returns the non-deleted workflows, optionally filtered by status.
func (r *WorkflowRepository) List(ctx context.Context, status *model.WorkflowStatus) ([]model.ChargeVersionWorkflow, error) {
	query := workflowSelect + ` WHERE w.date_deleted IS NULL`
	args := []interface{}{}
	if status != nil {
		query += ` AND w.status = ?`
		args = append(args, string(*status))
	}
	query += ` ORDER BY w.created_at ASC`

	var rows []workflowRow
	if err := conn(ctx, r.db).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	workflows := make([]model.ChargeVersionWorkflow, 0, len(rows))
	for _, row := range rows {
		workflow, err := row.toModel()
		if err != nil {
			return nil, err
		}
		workflows = append(workflows, workflow)
	}
	return workflows, nil
}

// GetByID returns a non-deleted workflow.
func (r *WorkflowRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ChargeVersionWorkflow, error) {
	var row workflowRow
	err := conn(ctx, r.db).Raw(workflowSelect+`
		WHERE w.id = ? AND w.date_deleted IS NULL
		LIMIT 1
	`, id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	workflow, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &workflow, nil
}

// GetForUpdate is GetByID with the workflow row locked until the surrounding
// transaction ends. Concurrent edits wait for it, and it sees their committed result.
func (r *WorkflowRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*model.ChargeVersionWorkflow, error) {
	var row workflowRow
	err := conn(ctx, r.db).Raw(workflowSelect+`
		WHERE w.id = ? AND w.date_deleted IS NULL
		LIMIT 1
		FOR UPDATE OF w
	`, id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	workflow, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &workflow, nil
}

func (r *WorkflowRepository) Create(ctx context.Context, workflow model.ChargeVersionWorkflow) (*model.ChargeVersionWorkflow, error) {
	data, err := json.Marshal(workflow.Draft)
	if err != nil {
		return nil, fmt.Errorf("encode draft: %w", err)
	}

	var id uuid.UUID
	err = conn(ctx, r.db).Raw(`
		INSERT INTO charge_version_workflows (licence_id, status, approver_comments, created_by, data)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`,
		workflow.LicenceID,
		string(workflow.Status),
		workflow.ApproverComments,
		workflow.CreatedBy,
		datatypes.JSON(data),
	).Scan(&id).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *WorkflowRepository) Update(ctx context.Context, workflow model.ChargeVersionWorkflow) error {
	data, err := json.Marshal(workflow.Draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}

	result := conn(ctx, r.db).Exec(`
		UPDATE charge_version_workflows
		SET status = ?, approver_comments = ?, data = ?, updated_at = NOW()
		WHERE id = ? AND date_deleted IS NULL
	`, string(workflow.Status), workflow.ApproverComments, datatypes.JSON(data), workflow.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *WorkflowRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Exec(`
		UPDATE charge_version_workflows
		SET date_deleted = NOW(), updated_at = NOW()
		WHERE id = ? AND date_deleted IS NULL
	`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
