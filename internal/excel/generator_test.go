package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nurpe/wrls-charging/internal/model"
)

func mustRange(t *testing.T, start, end string) model.DateRange {
	t.Helper()
	r, err := model.ParseDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestGenerate(t *testing.T) {
	reason := "New licence"
	report := model.ChargeHistoryReport{
		Licence: model.Licence{ID: uuid.New(), LicenceRef: "01/123", RegionCode: "A"},
		Period:  mustRange(t, "2019-04-01", "2020-03-31"),
		Segments: []model.AgreementHistorySegment{
			{DateRange: mustRange(t, "2019-04-01", "2019-09-30"), Agreements: []model.Agreement{}},
			{DateRange: mustRange(t, "2019-10-01", "2020-03-31"), Agreements: []model.Agreement{
				{Code: "S127", Description: "Two-part tariff"},
				{Code: "S130U", Description: "Canal and River Trust, unsupported source"},
			}},
		},
		ChargeVersions: []model.ChargeVersion{{
			ID:            uuid.New(),
			VersionNumber: 1,
			DateRange:     mustRange(t, "2018-04-01", ""),
			Status:        model.ChargeVersionStatusCurrent,
			Source:        model.ChargeVersionSourceNALD,
			Scheme:        model.ChargeSchemeALCS,
			ChangeReason:  &reason,
		}},
		GeneratedAt: time.Date(2020, time.June, 1, 12, 0, 0, 0, time.UTC),
	}

	content, err := NewGenerator().Generate(report)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, []string{summarySheet, historySheet, versionsSheet}, file.GetSheetList())

	value, err := file.GetCellValue(summarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "01/123", value)

	history, err := file.GetRows(historySheet)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "2019-04-01", history[1][0])
	assert.Equal(t, "2019-09-30", history[1][1])
	assert.Equal(t, "S127, S130U", history[2][2])

	versions, err := file.GetRows(versionsSheet)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, []string{"1", "2018-04-01", "open", "current", "ALCS", "NALD", "New licence"}, versions[1])
}
