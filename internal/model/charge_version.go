package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ChargeVersionStatus string

const (
	ChargeVersionStatusDraft      ChargeVersionStatus = "draft"
	ChargeVersionStatusCurrent    ChargeVersionStatus = "current"
	ChargeVersionStatusSuperseded ChargeVersionStatus = "superseded"
)

func (s ChargeVersionStatus) Valid() bool {
	switch s {
	case ChargeVersionStatusDraft, ChargeVersionStatusCurrent, ChargeVersionStatusSuperseded:
		return true
	}
	return false
}

func ParseChargeVersionStatus(raw string) (ChargeVersionStatus, error) {
	status := ChargeVersionStatus(raw)
	if !status.Valid() {
		return "", fmt.Errorf("unknown charge version status %q", raw)
	}
	return status, nil
}

type ChargeVersionSource string

const (
	ChargeVersionSourceWRLS ChargeVersionSource = "wrls"
	ChargeVersionSourceNALD ChargeVersionSource = "nald"
)

type ChargeScheme string

const (
	ChargeSchemeALCS ChargeScheme = "alcs"
	ChargeSchemeSROC ChargeScheme = "sroc"
)

type ChargeVersion struct {
	ID             uuid.UUID           `json:"id"`
	LicenceID      uuid.UUID           `json:"licenceId"`
	LicenceRef     string              `json:"licenceNumber" validate:"required,max=64"`
	VersionNumber  int                 `json:"versionNumber" validate:"gte=0"`
	DateRange      DateRange           `json:"dateRange"`
	Status         ChargeVersionStatus `json:"status" validate:"required,oneof=draft current superseded"`
	Source         ChargeVersionSource `json:"source" validate:"omitempty,oneof=wrls nald"`
	Scheme         ChargeScheme        `json:"scheme" validate:"required,oneof=alcs sroc"`
	ChangeReason   *string             `json:"changeReason" validate:"omitempty,max=255"`
	CreatedBy      *uuid.UUID          `json:"createdBy"`
	CreatedAt      time.Time           `json:"createdAt"`
	ChargeElements []ChargeElement     `json:"chargeElements" validate:"dive"`
}

// IsCurrent is used by the timeline to select the versions that tile time.
func (v ChargeVersion) IsCurrent() bool {
	return v.Status == ChargeVersionStatusCurrent
}

type AbstractionPeriod struct {
	StartDay   int `json:"startDay" validate:"min=1,max=31"`
	StartMonth int `json:"startMonth" validate:"min=1,max=12"`
	EndDay     int `json:"endDay" validate:"min=1,max=31"`
	EndMonth   int `json:"endMonth" validate:"min=1,max=12"`
}

type ChargeElement struct {
	ID                       uuid.UUID         `json:"id"`
	ChargeVersionID          uuid.UUID         `json:"chargeVersionId"`
	Description              string            `json:"description" validate:"max=255"`
	Source                   string            `json:"source" validate:"required,oneof=supported unsupported tidal kielder"`
	Season                   string            `json:"season" validate:"required,oneof=summer winter 'all year'"`
	Loss                     string            `json:"loss" validate:"required,oneof=high medium low"`
	PurposeCode              string            `json:"purposeCode" validate:"required,max=16"`
	AbstractionPeriod        AbstractionPeriod `json:"abstractionPeriod"`
	AuthorisedAnnualQuantity float64           `json:"authorisedAnnualQuantity" validate:"gte=0"`
	BillableAnnualQuantity   *float64          `json:"billableAnnualQuantity" validate:"omitempty,gte=0"`
}
