// Package timeline keeps the current charge versions of a licence as a
// gap-free, non-overlapping sequence of date ranges.
//
// Functions never modify their arguments; they return updated copies.
package timeline

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/wrls-charging/internal/model"
)

var (
	ErrMissingStartDate = errors.New("charge version start date is required")
	ErrMissingID        = errors.New("charge version id is required")
	ErrDuplicateStart   = errors.New("current charge versions share a start date")
)

// NextVersionNumber returns one past the highest version number in use.
// Numbers of superseded versions are never reused.
func NextVersionNumber(existing []model.ChargeVersion) int {
	highest := 0
	for _, version := range existing {
		if version.VersionNumber > highest {
			highest = version.VersionNumber
		}
	}
	return highest + 1
}

// RefreshStatus supersedes every current version that starts on exactly the
// same day as newVersion. Only the changed versions are returned.
func RefreshStatus(newVersion model.ChargeVersion, existing []model.ChargeVersion) ([]model.ChargeVersion, error) {
	if newVersion.DateRange.IsZero() {
		return nil, ErrMissingStartDate
	}
	start := newVersion.DateRange.Start()

	var changed []model.ChargeVersion
	for _, version := range existing {
		switch version.Status {
		case model.ChargeVersionStatusCurrent:
			if model.SameDay(version.DateRange.Start(), start) {
				version.Status = model.ChargeVersionStatusSuperseded
				changed = append(changed, version)
			}
		case model.ChargeVersionStatusDraft, model.ChargeVersionStatusSuperseded:
		default:
			return nil, fmt.Errorf("charge version %s: unknown status %q", version.ID, version.Status)
		}
	}
	return changed, nil
}

// RefreshEndDates recomputes end dates across the current versions: each one
// ends the day before its successor starts and the latest is left open-ended.
// Versions in any other status are dropped from the result.
func RefreshEndDates(versions []model.ChargeVersion) ([]model.ChargeVersion, error) {
	current := make([]model.ChargeVersion, 0, len(versions))
	for _, version := range versions {
		if version.IsCurrent() {
			current = append(current, version)
		}
	}
	sort.SliceStable(current, func(i, j int) bool {
		return current[i].DateRange.Start().Before(current[j].DateRange.Start())
	})

	for i := range current {
		var end *time.Time
		if i+1 < len(current) {
			e := model.AddDays(current[i+1].DateRange.Start(), -1)
			end = &e
		}
		updated, err := current[i].DateRange.WithEnd(end)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateStart, model.FormatDate(current[i].DateRange.Start()))
		}
		current[i].DateRange = updated
	}
	return current, nil
}

// Update is the persisted delta for an existing version touched by Plan.
type Update struct {
	ID             uuid.UUID
	Status         model.ChargeVersionStatus
	EndDate        *time.Time
	StatusChanged  bool
	EndDateChanged bool
}

type Result struct {
	Version model.ChargeVersion
	Updates []Update
}

// Plan stamps newVersion as the next current version and works out how the
// existing versions must change to keep the timeline tiled.
func Plan(newVersion model.ChargeVersion, existing []model.ChargeVersion) (Result, error) {
	if newVersion.ID == uuid.Nil {
		return Result{}, ErrMissingID
	}
	newVersion.VersionNumber = NextVersionNumber(existing)
	newVersion.Status = model.ChargeVersionStatusCurrent

	demoted, err := RefreshStatus(newVersion, existing)
	if err != nil {
		return Result{}, err
	}
	working := replaceByID(existing, demoted)

	all := make([]model.ChargeVersion, 0, len(working)+1)
	all = append(all, newVersion)
	all = append(all, working...)
	refreshed, err := RefreshEndDates(all)
	if err != nil {
		return Result{}, err
	}
	working = replaceByID(working, refreshed)

	result := Result{Version: newVersion}
	for _, version := range refreshed {
		if version.ID == newVersion.ID {
			result.Version = version
			break
		}
	}

	for i, before := range existing {
		after := working[i]
		update := Update{
			ID:             after.ID,
			Status:         after.Status,
			EndDate:        after.DateRange.End(),
			StatusChanged:  before.Status != after.Status,
			EndDateChanged: !sameEnd(before.DateRange.End(), after.DateRange.End()),
		}
		if update.StatusChanged || update.EndDateChanged {
			result.Updates = append(result.Updates, update)
		}
	}
	return result, nil
}

func replaceByID(versions, replacements []model.ChargeVersion) []model.ChargeVersion {
	byID := make(map[uuid.UUID]model.ChargeVersion, len(replacements))
	for _, r := range replacements {
		byID[r.ID] = r
	}
	out := make([]model.ChargeVersion, len(versions))
	for i, version := range versions {
		if r, ok := byID[version.ID]; ok {
			out[i] = r
			continue
		}
		out[i] = version
	}
	return out
}

func sameEnd(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
