package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'charge_version_status') THEN
			CREATE TYPE charge_version_status AS ENUM ('draft', 'current', 'superseded');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'charge_version_workflow_status') THEN
			CREATE TYPE charge_version_workflow_status AS ENUM ('to_setup', 'review', 'changes_requested');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS licences (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		licence_ref VARCHAR(64) NOT NULL,
		region_code VARCHAR(8) NOT NULL DEFAULT '',
		start_date DATE NOT NULL,
		expired_date DATE,
		lapsed_date DATE,
		revoked_date DATE,
		include_in_supplementary_billing BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_licences_licence_ref ON licences (licence_ref);`,
	`CREATE TABLE IF NOT EXISTS charge_versions (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		licence_id UUID NOT NULL REFERENCES licences(id),
		licence_ref VARCHAR(64) NOT NULL,
		version_number INTEGER NOT NULL CHECK (version_number > 0),
		start_date DATE NOT NULL,
		end_date DATE,
		status charge_version_status NOT NULL,
		source VARCHAR(16) NOT NULL,
		scheme VARCHAR(8) NOT NULL DEFAULT 'alcs',
		change_reason TEXT,
		created_by UUID,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK (end_date IS NULL OR end_date >= start_date)
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_charge_versions_licence_version ON charge_versions (licence_ref, version_number);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_charge_versions_current_start ON charge_versions (licence_ref, start_date) WHERE status = 'current';`,
	`CREATE TABLE IF NOT EXISTS charge_elements (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		charge_version_id UUID NOT NULL REFERENCES charge_versions(id) ON DELETE CASCADE,
		description VARCHAR(255) NOT NULL DEFAULT '',
		source VARCHAR(16) NOT NULL,
		season VARCHAR(16) NOT NULL,
		loss VARCHAR(8) NOT NULL,
		purpose_code VARCHAR(16) NOT NULL,
		abstraction_period_start_day SMALLINT NOT NULL,
		abstraction_period_start_month SMALLINT NOT NULL,
		abstraction_period_end_day SMALLINT NOT NULL,
		abstraction_period_end_month SMALLINT NOT NULL,
		authorised_annual_quantity NUMERIC(18,3) NOT NULL,
		billable_annual_quantity NUMERIC(18,3)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_charge_elements_version ON charge_elements (charge_version_id);`,
	`CREATE TABLE IF NOT EXISTS charge_version_workflows (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		licence_id UUID NOT NULL REFERENCES licences(id),
		status charge_version_workflow_status NOT NULL DEFAULT 'to_setup',
		approver_comments TEXT,
		created_by UUID NOT NULL,
		data JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		date_deleted TIMESTAMPTZ
	);`,
	`CREATE INDEX IF NOT EXISTS idx_charge_version_workflows_status ON charge_version_workflows (status) WHERE date_deleted IS NULL;`,
	`CREATE TABLE IF NOT EXISTS financial_agreement_types (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		code VARCHAR(16) NOT NULL,
		description VARCHAR(255) NOT NULL,
		disabled BOOLEAN NOT NULL DEFAULT FALSE
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_financial_agreement_types_code ON financial_agreement_types (code);`,
	`INSERT INTO financial_agreement_types (code, description) VALUES
		('S126', 'Two-part tariff'),
		('S127', 'Two-part tariff'),
		('S130S', 'Canal and Rivers Trust, supported source'),
		('S130T', 'Canal and Rivers Trust, unsupported source'),
		('S130U', 'Canal and Rivers Trust, unsupported source'),
		('S130W', 'Canal and Rivers Trust, supported source')
	ON CONFLICT (code) DO NOTHING;`,
	`CREATE TABLE IF NOT EXISTS licence_agreements (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		licence_ref VARCHAR(64) NOT NULL,
		financial_agreement_type_id UUID NOT NULL REFERENCES financial_agreement_types(id),
		start_date DATE NOT NULL,
		end_date DATE,
		date_signed DATE,
		date_deleted TIMESTAMPTZ,
		source VARCHAR(16) NOT NULL DEFAULT 'wrls',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK (end_date IS NULL OR end_date >= start_date)
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_licence_agreements_active ON licence_agreements (licence_ref, financial_agreement_type_id, start_date) WHERE date_deleted IS NULL;`,
	`CREATE INDEX IF NOT EXISTS idx_licence_agreements_licence_ref ON licence_agreements (licence_ref);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
