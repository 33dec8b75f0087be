package timeline

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/wrls-charging/internal/model"
)

func version(t *testing.T, number int, status model.ChargeVersionStatus, start, end string) model.ChargeVersion {
	t.Helper()
	r, err := model.ParseDateRange(start, end)
	require.NoError(t, err)
	return model.ChargeVersion{
		ID:            uuid.New(),
		LicenceRef:    "01/123",
		VersionNumber: number,
		DateRange:     r,
		Status:        status,
		Scheme:        model.ChargeSchemeALCS,
	}
}

func TestNextVersionNumber(t *testing.T) {
	tests := []struct {
		name     string
		numbers  []int
		expected int
	}{
		{"empty history", nil, 1},
		{"single version", []int{1}, 2},
		{"unordered with gaps", []int{3, 1, 7, 2}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var existing []model.ChargeVersion
			for _, n := range tt.numbers {
				existing = append(existing, model.ChargeVersion{VersionNumber: n})
			}
			assert.Equal(t, tt.expected, NextVersionNumber(existing))
		})
	}

	t.Run("superseded versions still count", func(t *testing.T) {
		existing := []model.ChargeVersion{
			version(t, 4, model.ChargeVersionStatusSuperseded, "2019-04-01", "2019-12-31"),
			version(t, 2, model.ChargeVersionStatusCurrent, "2018-04-01", ""),
		}
		assert.Equal(t, 5, NextVersionNumber(existing))
	})
}

func TestRefreshStatus(t *testing.T) {
	t.Run("supersedes exact start date match", func(t *testing.T) {
		existing := []model.ChargeVersion{
			version(t, 1, model.ChargeVersionStatusCurrent, "2019-04-01", "2020-03-31"),
			version(t, 2, model.ChargeVersionStatusCurrent, "2020-04-01", ""),
		}
		newVersion := version(t, 0, model.ChargeVersionStatusCurrent, "2020-04-01", "")

		changed, err := RefreshStatus(newVersion, existing)
		require.NoError(t, err)
		require.Len(t, changed, 1)
		assert.Equal(t, existing[1].ID, changed[0].ID)
		assert.Equal(t, model.ChargeVersionStatusSuperseded, changed[0].Status)
		assert.Equal(t, model.ChargeVersionStatusCurrent, existing[1].Status, "input must not be modified")
	})

	t.Run("start inside an existing range is not a collision", func(t *testing.T) {
		existing := []model.ChargeVersion{
			version(t, 1, model.ChargeVersionStatusCurrent, "2019-04-01", ""),
		}
		newVersion := version(t, 0, model.ChargeVersionStatusCurrent, "2020-06-15", "")

		changed, err := RefreshStatus(newVersion, existing)
		require.NoError(t, err)
		assert.Empty(t, changed)
	})

	t.Run("ignores versions already superseded", func(t *testing.T) {
		existing := []model.ChargeVersion{
			version(t, 1, model.ChargeVersionStatusSuperseded, "2020-04-01", "2020-04-01"),
			version(t, 2, model.ChargeVersionStatusDraft, "2020-04-01", ""),
		}
		newVersion := version(t, 0, model.ChargeVersionStatusCurrent, "2020-04-01", "")

		changed, err := RefreshStatus(newVersion, existing)
		require.NoError(t, err)
		assert.Empty(t, changed)
	})

	t.Run("requires a start date", func(t *testing.T) {
		_, err := RefreshStatus(model.ChargeVersion{}, nil)
		assert.ErrorIs(t, err, ErrMissingStartDate)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		existing := []model.ChargeVersion{version(t, 1, model.ChargeVersionStatus("archived"), "2020-04-01", "")}
		_, err := RefreshStatus(version(t, 0, model.ChargeVersionStatusCurrent, "2020-04-01", ""), existing)
		assert.Error(t, err)
	})
}

func TestRefreshEndDates(t *testing.T) {
	t.Run("tiles current versions without gaps", func(t *testing.T) {
		versions := []model.ChargeVersion{
			version(t, 3, model.ChargeVersionStatusCurrent, "2021-01-01", ""),
			version(t, 1, model.ChargeVersionStatusCurrent, "2019-04-01", ""),
			version(t, 2, model.ChargeVersionStatusCurrent, "2020-04-01", ""),
		}

		refreshed, err := RefreshEndDates(versions)
		require.NoError(t, err)
		require.Len(t, refreshed, 3)

		assert.Equal(t, "2019-04-01..2020-03-31", refreshed[0].DateRange.String())
		assert.Equal(t, "2020-04-01..2020-12-31", refreshed[1].DateRange.String())
		assert.Equal(t, "2021-01-01..", refreshed[2].DateRange.String())

		for i := 0; i+1 < len(refreshed); i++ {
			next := refreshed[i+1].DateRange.Start()
			assert.Equal(t, model.AddDays(next, -1), *refreshed[i].DateRange.End())
		}
	})

	t.Run("reopens a previously closed latest version", func(t *testing.T) {
		versions := []model.ChargeVersion{
			version(t, 1, model.ChargeVersionStatusCurrent, "2019-04-01", "2019-12-31"),
		}
		refreshed, err := RefreshEndDates(versions)
		require.NoError(t, err)
		assert.True(t, refreshed[0].DateRange.IsOpenEnded())
		assert.False(t, versions[0].DateRange.IsOpenEnded(), "input must not be modified")
	})

	t.Run("excludes non current versions", func(t *testing.T) {
		superseded := version(t, 1, model.ChargeVersionStatusSuperseded, "2019-04-01", "2019-06-30")
		versions := []model.ChargeVersion{
			superseded,
			version(t, 2, model.ChargeVersionStatusCurrent, "2019-04-01", ""),
		}
		refreshed, err := RefreshEndDates(versions)
		require.NoError(t, err)
		require.Len(t, refreshed, 1)
		assert.Equal(t, 2, refreshed[0].VersionNumber)
		assert.Equal(t, "2019-04-01..2019-06-30", versions[0].DateRange.String())
	})

	t.Run("empty input", func(t *testing.T) {
		refreshed, err := RefreshEndDates(nil)
		require.NoError(t, err)
		assert.Empty(t, refreshed)
	})

	t.Run("duplicate current start dates are rejected", func(t *testing.T) {
		versions := []model.ChargeVersion{
			version(t, 1, model.ChargeVersionStatusCurrent, "2019-04-01", ""),
			version(t, 2, model.ChargeVersionStatusCurrent, "2019-04-01", ""),
		}
		_, err := RefreshEndDates(versions)
		assert.ErrorIs(t, err, ErrDuplicateStart)
	})
}

func TestPlan(t *testing.T) {
	t.Run("new version on an existing start date supersedes it", func(t *testing.T) {
		first := version(t, 1, model.ChargeVersionStatusCurrent, "2019-04-01", "2020-03-31")
		second := version(t, 2, model.ChargeVersionStatusCurrent, "2020-04-01", "")
		newVersion := version(t, 0, model.ChargeVersionStatusDraft, "2020-04-01", "")

		result, err := Plan(newVersion, []model.ChargeVersion{first, second})
		require.NoError(t, err)

		assert.Equal(t, 3, result.Version.VersionNumber)
		assert.Equal(t, model.ChargeVersionStatusCurrent, result.Version.Status)
		assert.True(t, result.Version.DateRange.IsOpenEnded())

		require.Len(t, result.Updates, 1)
		assert.Equal(t, second.ID, result.Updates[0].ID)
		assert.True(t, result.Updates[0].StatusChanged)
		assert.Equal(t, model.ChargeVersionStatusSuperseded, result.Updates[0].Status)
		assert.False(t, result.Updates[0].EndDateChanged, "superseded end date is kept")
	})

	t.Run("new version mid range closes the previous version", func(t *testing.T) {
		first := version(t, 1, model.ChargeVersionStatusCurrent, "2019-04-01", "")
		newVersion := version(t, 0, model.ChargeVersionStatusDraft, "2020-06-15", "")

		result, err := Plan(newVersion, []model.ChargeVersion{first})
		require.NoError(t, err)

		assert.Equal(t, 2, result.Version.VersionNumber)
		require.Len(t, result.Updates, 1)
		assert.False(t, result.Updates[0].StatusChanged)
		assert.True(t, result.Updates[0].EndDateChanged)
		require.NotNil(t, result.Updates[0].EndDate)
		assert.Equal(t, "2020-06-14", model.FormatDate(*result.Updates[0].EndDate))
	})

	t.Run("backdated version ends before the next one", func(t *testing.T) {
		later := version(t, 1, model.ChargeVersionStatusCurrent, "2020-04-01", "")
		newVersion := version(t, 0, model.ChargeVersionStatusDraft, "2018-04-01", "")

		result, err := Plan(newVersion, []model.ChargeVersion{later})
		require.NoError(t, err)

		assert.Equal(t, "2018-04-01..2020-03-31", result.Version.DateRange.String())
		assert.Empty(t, result.Updates)
	})

	t.Run("first version for a licence", func(t *testing.T) {
		result, err := Plan(version(t, 0, model.ChargeVersionStatusDraft, "2020-04-01", "2021-03-31"), nil)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Version.VersionNumber)
		assert.True(t, result.Version.DateRange.IsOpenEnded())
		assert.Empty(t, result.Updates)
	})

	t.Run("requires an id", func(t *testing.T) {
		v := version(t, 0, model.ChargeVersionStatusDraft, "2020-04-01", "")
		v.ID = uuid.Nil
		_, err := Plan(v, nil)
		assert.ErrorIs(t, err, ErrMissingID)
	})
}
