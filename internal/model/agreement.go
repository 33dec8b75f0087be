package model

import (
	"time"

	"github.com/google/uuid"
)

// Agreement is a financial agreement type. Agreements of the same kind share a code.
type Agreement struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
}

type LicenceAgreement struct {
	ID          uuid.UUID  `json:"id"`
	LicenceRef  string     `json:"licenceNumber"`
	DateRange   DateRange  `json:"dateRange"`
	Agreement   Agreement  `json:"agreement"`
	DateSigned  *time.Time `json:"dateSigned"`
	DateDeleted *time.Time `json:"dateDeleted"`
	Source      string     `json:"source"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// AgreementHistorySegment is a maximal sub-range of a queried period during
// which the set of active agreements does not change.
type AgreementHistorySegment struct {
	DateRange  DateRange   `json:"dateRange"`
	Agreements []Agreement `json:"agreements"`
}

// Codes lists the agreement codes of the segment in order.
func (s AgreementHistorySegment) Codes() []string {
	codes := make([]string, 0, len(s.Agreements))
	for _, agreement := range s.Agreements {
		codes = append(codes, agreement.Code)
	}
	return codes
}
