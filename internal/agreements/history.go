// Package agreements slices a charge period into sub-ranges annotated with the
// financial agreements active throughout each one.
package agreements

import (
	"errors"
	"sort"
	"time"

	"github.com/nurpe/wrls-charging/internal/model"
)

var ErrMissingPeriod = errors.New("charge period is required")

type clippedAgreement struct {
	agreement model.Agreement
	dateRange model.DateRange
}

// History partitions period into the minimal ordered list of segments whose
// union is exactly the period. Input order does not affect the result.
// Deleted agreements must already have been filtered out by the caller.
func History(period model.DateRange, licenceAgreements []model.LicenceAgreement) ([]model.AgreementHistorySegment, error) {
	if period.IsZero() {
		return nil, ErrMissingPeriod
	}

	clipped := clip(period, sortAgreements(licenceAgreements))
	boundaries := collectBoundaries(period, clipped)

	segments := make([]model.AgreementHistorySegment, 0, len(boundaries))
	for i, start := range boundaries {
		end := period.End()
		if i+1 < len(boundaries) {
			e := model.AddDays(boundaries[i+1], -1)
			end = &e
		}
		interval, err := model.NewDateRange(start, end)
		if err != nil {
			return nil, err
		}

		active := activeIn(interval, clipped)
		if n := len(segments); n > 0 && sameCodes(segments[n-1].Agreements, active) {
			merged, err := segments[n-1].DateRange.WithEnd(end)
			if err != nil {
				return nil, err
			}
			segments[n-1].DateRange = merged
			continue
		}
		segments = append(segments, model.AgreementHistorySegment{DateRange: interval, Agreements: active})
	}
	return segments, nil
}

// sortAgreements returns a copy in canonical order: start date, code, id.
func sortAgreements(in []model.LicenceAgreement) []model.LicenceAgreement {
	out := make([]model.LicenceAgreement, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.DateRange.Start().Equal(b.DateRange.Start()) {
			return a.DateRange.Start().Before(b.DateRange.Start())
		}
		if a.Agreement.Code != b.Agreement.Code {
			return a.Agreement.Code < b.Agreement.Code
		}
		return a.ID.String() < b.ID.String()
	})
	return out
}

func clip(period model.DateRange, licenceAgreements []model.LicenceAgreement) []clippedAgreement {
	out := make([]clippedAgreement, 0, len(licenceAgreements))
	for _, la := range licenceAgreements {
		overlap, ok := la.DateRange.Intersect(period)
		if !ok {
			continue
		}
		out = append(out, clippedAgreement{agreement: la.Agreement, dateRange: overlap})
	}
	return out
}

// collectBoundaries returns the sorted, distinct days on which the active set
// may change. An agreement ending on or after the period end adds no boundary.
func collectBoundaries(period model.DateRange, clipped []clippedAgreement) []time.Time {
	periodEnd := period.End()
	days := []time.Time{period.Start()}
	for _, c := range clipped {
		days = append(days, c.dateRange.Start())
		if end := c.dateRange.End(); end != nil && (periodEnd == nil || end.Before(*periodEnd)) {
			days = append(days, model.AddDays(*end, 1))
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	distinct := days[:0]
	for i, day := range days {
		if i > 0 && day.Equal(distinct[len(distinct)-1]) {
			continue
		}
		distinct = append(distinct, day)
	}
	return distinct
}

// activeIn lists, by first occurrence and distinct by code, the agreements
// whose range covers the whole interval.
func activeIn(interval model.DateRange, clipped []clippedAgreement) []model.Agreement {
	active := []model.Agreement{}
	seen := make(map[string]struct{})
	for _, c := range clipped {
		if !c.dateRange.ContainsRange(interval) {
			continue
		}
		if _, ok := seen[c.agreement.Code]; ok {
			continue
		}
		seen[c.agreement.Code] = struct{}{}
		active = append(active, c.agreement)
	}
	return active
}

func sameCodes(a, b []model.Agreement) bool {
	if len(a) != len(b) {
		return false
	}
	codes := make(map[string]struct{}, len(a))
	for _, agreement := range a {
		codes[agreement.Code] = struct{}{}
	}
	for _, agreement := range b {
		if _, ok := codes[agreement.Code]; !ok {
			return false
		}
	}
	return true
}
