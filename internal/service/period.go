package service

import (
	"time"

	"github.com/nurpe/wrls-charging/internal/model"
)

// financialYear returns the financial year containing day.
func financialYear(day time.Time, startMonth int) model.DateRange {
	day = model.DateOnly(day)
	year := day.Year()
	if int(day.Month()) < startMonth {
		year--
	}
	start := time.Date(year, time.Month(startMonth), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, -1)
	r, _ := model.NewDateRange(start, &end)
	return r
}

// resolvePeriod returns period, or the financial year containing now when no
// period was asked for.
func resolvePeriod(period *model.DateRange, now time.Time, startMonth int) model.DateRange {
	if period != nil && !period.IsZero() {
		return *period
	}
	return financialYear(now, startMonth)
}
