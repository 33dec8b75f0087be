package model

import (
	"time"

	"github.com/google/uuid"
)

type Licence struct {
	ID                            uuid.UUID  `json:"id"`
	LicenceRef                    string     `json:"licenceNumber"`
	RegionCode                    string     `json:"regionCode"`
	StartDate                     time.Time  `json:"startDate"`
	ExpiredDate                   *time.Time `json:"expiredDate"`
	LapsedDate                    *time.Time `json:"lapsedDate"`
	RevokedDate                   *time.Time `json:"revokedDate"`
	IncludeInSupplementaryBilling bool       `json:"includeInSupplementaryBilling"`
}

// EndDate is the earliest of the expiry, lapse and revocation dates, if any.
func (l Licence) EndDate() *time.Time {
	var end *time.Time
	for _, candidate := range []*time.Time{l.ExpiredDate, l.LapsedDate, l.RevokedDate} {
		if candidate == nil {
			continue
		}
		if end == nil || candidate.Before(*end) {
			c := *candidate
			end = &c
		}
	}
	return end
}

// ChargeHistoryReport is the data behind the agreement history export.
type ChargeHistoryReport struct {
	Licence        Licence
	Period         DateRange
	Segments       []AgreementHistorySegment
	ChargeVersions []ChargeVersion
	GeneratedAt    time.Time
}

// ChargeVersionStatement is the data behind the printable statement of one
// charge version and its place in the licence timeline.
type ChargeVersionStatement struct {
	Licence     Licence
	Version     ChargeVersion
	Timeline    []ChargeVersion
	GeneratedAt time.Time
}
