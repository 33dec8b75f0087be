package agreements

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/wrls-charging/internal/model"
)

func dateRange(t *testing.T, start, end string) model.DateRange {
	t.Helper()
	r, err := model.ParseDateRange(start, end)
	require.NoError(t, err)
	return r
}

func licenceAgreement(t *testing.T, code, start, end string) model.LicenceAgreement {
	t.Helper()
	return model.LicenceAgreement{
		ID:         uuid.New(),
		LicenceRef: "01/123",
		DateRange:  dateRange(t, start, end),
		Agreement:  model.Agreement{ID: uuid.New(), Code: code},
	}
}

type segmentView struct {
	Range string
	Codes []string
}

func view(segments []model.AgreementHistorySegment) []segmentView {
	out := make([]segmentView, 0, len(segments))
	for _, s := range segments {
		out = append(out, segmentView{Range: s.DateRange.String(), Codes: s.Codes()})
	}
	return out
}

func TestHistory(t *testing.T) {
	period := dateRange(t, "2020-04-01", "2021-03-31")

	tests := []struct {
		name       string
		agreements []model.LicenceAgreement
		expected   []segmentView
	}{
		{
			name:       "no agreements",
			agreements: nil,
			expected: []segmentView{
				{"2020-04-01..2021-03-31", []string{}},
			},
		},
		{
			name:       "agreement covering the whole period",
			agreements: []model.LicenceAgreement{licenceAgreement(t, "S127", "1996-10-30", "")},
			expected: []segmentView{
				{"2020-04-01..2021-03-31", []string{"S127"}},
			},
		},
		{
			name:       "agreement ending mid period",
			agreements: []model.LicenceAgreement{licenceAgreement(t, "S127", "1996-10-30", "2021-01-01")},
			expected: []segmentView{
				{"2020-04-01..2021-01-01", []string{"S127"}},
				{"2021-01-02..2021-03-31", []string{}},
			},
		},
		{
			name:       "agreement strictly inside the period",
			agreements: []model.LicenceAgreement{licenceAgreement(t, "S127", "2020-12-01", "2021-01-01")},
			expected: []segmentView{
				{"2020-04-01..2020-11-30", []string{}},
				{"2020-12-01..2021-01-01", []string{"S127"}},
				{"2021-01-02..2021-03-31", []string{}},
			},
		},
		{
			name: "two agreements ending together",
			agreements: []model.LicenceAgreement{
				licenceAgreement(t, "S127", "1996-10-30", "2021-01-01"),
				licenceAgreement(t, "S130T", "2005-04-01", "2021-01-01"),
			},
			expected: []segmentView{
				{"2020-04-01..2021-01-01", []string{"S127", "S130T"}},
				{"2021-01-02..2021-03-31", []string{}},
			},
		},
		{
			name: "overlapping distinct ranges",
			agreements: []model.LicenceAgreement{
				licenceAgreement(t, "S127", "2020-06-01", "2020-12-31"),
				licenceAgreement(t, "S130U", "2020-09-01", ""),
			},
			expected: []segmentView{
				{"2020-04-01..2020-05-31", []string{}},
				{"2020-06-01..2020-08-31", []string{"S127"}},
				{"2020-09-01..2020-12-31", []string{"S127", "S130U"}},
				{"2021-01-01..2021-03-31", []string{"S130U"}},
			},
		},
		{
			name: "adjacent agreements of the same kind merge",
			agreements: []model.LicenceAgreement{
				licenceAgreement(t, "S127", "2020-04-01", "2020-09-30"),
				licenceAgreement(t, "S127", "2020-10-01", ""),
			},
			expected: []segmentView{
				{"2020-04-01..2021-03-31", []string{"S127"}},
			},
		},
		{
			name: "duplicate codes appear once",
			agreements: []model.LicenceAgreement{
				licenceAgreement(t, "S127", "2019-01-01", ""),
				licenceAgreement(t, "S127", "2020-04-01", "2020-06-30"),
			},
			expected: []segmentView{
				{"2020-04-01..2021-03-31", []string{"S127"}},
			},
		},
		{
			name: "agreements outside the period are ignored",
			agreements: []model.LicenceAgreement{
				licenceAgreement(t, "S127", "2010-01-01", "2020-03-31"),
				licenceAgreement(t, "S130T", "2021-04-01", ""),
			},
			expected: []segmentView{
				{"2020-04-01..2021-03-31", []string{}},
			},
		},
		{
			name: "agreement ending on the last day of the period",
			agreements: []model.LicenceAgreement{
				licenceAgreement(t, "S126", "2020-10-01", "2021-03-31"),
			},
			expected: []segmentView{
				{"2020-04-01..2020-09-30", []string{}},
				{"2020-10-01..2021-03-31", []string{"S126"}},
			},
		},
		{
			name: "single day agreement",
			agreements: []model.LicenceAgreement{
				licenceAgreement(t, "S127", "2020-04-01", "2020-04-01"),
			},
			expected: []segmentView{
				{"2020-04-01..2020-04-01", []string{"S127"}},
				{"2020-04-02..2021-03-31", []string{}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments, err := History(period, tt.agreements)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, view(segments))
		})
	}
}

func TestHistoryOpenEndedPeriod(t *testing.T) {
	period := dateRange(t, "2020-04-01", "")
	segments, err := History(period, []model.LicenceAgreement{
		licenceAgreement(t, "S127", "2020-01-01", "2020-06-30"),
	})
	require.NoError(t, err)
	assert.Equal(t, []segmentView{
		{"2020-04-01..2020-06-30", []string{"S127"}},
		{"2020-07-01..", []string{}},
	}, view(segments))
}

func TestHistoryRequiresPeriod(t *testing.T) {
	_, err := History(model.DateRange{}, nil)
	assert.ErrorIs(t, err, ErrMissingPeriod)
}

func TestHistoryInvariants(t *testing.T) {
	period := dateRange(t, "2020-04-01", "2021-03-31")
	agreements := []model.LicenceAgreement{
		licenceAgreement(t, "S127", "2020-06-01", "2020-12-31"),
		licenceAgreement(t, "S130T", "2019-01-01", "2020-07-15"),
		licenceAgreement(t, "S130U", "2020-07-16", ""),
		licenceAgreement(t, "S126", "2021-02-01", "2021-02-28"),
		licenceAgreement(t, "S127", "2021-01-01", "2021-01-31"),
	}

	expected, err := History(period, agreements)
	require.NoError(t, err)

	random := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]model.LicenceAgreement, len(agreements))
		copy(shuffled, agreements)
		random.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		segments, err := History(period, shuffled)
		require.NoError(t, err)
		assert.Equal(t, view(expected), view(segments), "input order must not matter")
	}

	require.NotEmpty(t, expected)
	assert.True(t, expected[0].DateRange.Start().Equal(period.Start()))
	assert.Equal(t, *period.End(), *expected[len(expected)-1].DateRange.End())
	for i := 0; i+1 < len(expected); i++ {
		current, next := expected[i], expected[i+1]
		require.NotNil(t, current.DateRange.End())
		assert.Equal(t, model.AddDays(*current.DateRange.End(), 1), next.DateRange.Start(), "segments must be contiguous")
		assert.False(t, sameCodes(current.Agreements, next.Agreements), "adjacent segments must differ")
	}
}
