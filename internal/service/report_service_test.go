package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/nurpe/wrls-charging/internal/metrics"
	"github.com/nurpe/wrls-charging/internal/model"
	"github.com/nurpe/wrls-charging/internal/service/mocks"
)

type reportFixture struct {
	licences   *mocks.MockLicenceStore
	versions   *mocks.MockChargeVersionStore
	agreements *mocks.MockAgreementStore
	excel      *mocks.MockExcelGenerator
	pdf        *mocks.MockPDFGenerator
	metrics    *metrics.Metrics
	service    *ReportService
	licence    *model.Licence
	now        time.Time
}

func newReportFixture(t *testing.T) *reportFixture {
	ctrl := gomock.NewController(t)
	f := &reportFixture{
		licences:   mocks.NewMockLicenceStore(ctrl),
		versions:   mocks.NewMockChargeVersionStore(ctrl),
		agreements: mocks.NewMockAgreementStore(ctrl),
		excel:      mocks.NewMockExcelGenerator(ctrl),
		pdf:        mocks.NewMockPDFGenerator(ctrl),
		licence:    testLicence(t),
		now:        time.Date(2020, time.June, 1, 9, 0, 0, 0, time.UTC),
	}
	f.metrics = metrics.New(prometheus.NewRegistry())
	f.service = NewReportService(f.licences, f.versions, f.agreements, f.excel, f.pdf, 4, f.metrics)
	f.service.now = func() time.Time { return f.now }
	return f
}

func TestReportService_ExportHistory(t *testing.T) {
	f := newReportFixture(t)
	period := mustRange(t, "2019-04-01", "2020-03-31")

	inside := model.ChargeVersion{ID: uuid.New(), VersionNumber: 1, DateRange: mustRange(t, "2018-04-01", "2019-09-30"), Status: model.ChargeVersionStatusCurrent}
	later := model.ChargeVersion{ID: uuid.New(), VersionNumber: 2, DateRange: mustRange(t, "2020-04-01", ""), Status: model.ChargeVersionStatusCurrent}

	f.licences.EXPECT().GetByRef(gomock.Any(), f.licence.LicenceRef).Return(f.licence, nil)
	f.versions.EXPECT().ListByLicenceRef(gomock.Any(), f.licence.LicenceRef).Return([]model.ChargeVersion{inside, later}, nil)
	f.agreements.EXPECT().ListByLicenceRef(gomock.Any(), f.licence.LicenceRef, false).Return([]model.LicenceAgreement{{
		ID:        uuid.New(),
		DateRange: mustRange(t, "2019-10-01", ""),
		Agreement: model.Agreement{Code: "S126"},
	}}, nil)
	f.excel.EXPECT().Generate(gomock.Any()).DoAndReturn(func(report model.ChargeHistoryReport) ([]byte, error) {
		assert.True(t, report.Period.Equal(period))
		assert.Len(t, report.Segments, 2)
		require.Len(t, report.ChargeVersions, 1)
		assert.Equal(t, inside.ID, report.ChargeVersions[0].ID)
		assert.Equal(t, f.now, report.GeneratedAt)
		return []byte("xlsx"), nil
	})

	result, err := f.service.ExportHistory(context.Background(), f.licence.LicenceRef, &period)
	require.NoError(t, err)
	assert.Equal(t, "agreement-history-01-123-20190401-20200331.xlsx", result.FileName)
	assert.Equal(t, []byte("xlsx"), result.Content)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.AgreementHistoryQueries))
}

func TestReportService_HistoryReportDefaultPeriod(t *testing.T) {
	f := newReportFixture(t)

	f.licences.EXPECT().GetByRef(gomock.Any(), f.licence.LicenceRef).Return(f.licence, nil)
	f.versions.EXPECT().ListByLicenceRef(gomock.Any(), f.licence.LicenceRef).Return(nil, nil)
	f.agreements.EXPECT().ListByLicenceRef(gomock.Any(), f.licence.LicenceRef, false).Return(nil, nil)

	report, err := f.service.HistoryReport(context.Background(), f.licence.LicenceRef, nil)
	require.NoError(t, err)
	assert.Equal(t, "2020-04-01..2021-03-31", report.Period.String())
	require.Len(t, report.Segments, 1)
}

func TestReportService_HistoryReportLoadFailure(t *testing.T) {
	f := newReportFixture(t)
	boom := errors.New("db down")

	f.licences.EXPECT().GetByRef(gomock.Any(), f.licence.LicenceRef).Return(f.licence, nil)
	f.versions.EXPECT().ListByLicenceRef(gomock.Any(), f.licence.LicenceRef).Return(nil, boom)
	f.agreements.EXPECT().ListByLicenceRef(gomock.Any(), f.licence.LicenceRef, false).Return(nil, nil).AnyTimes()

	_, err := f.service.HistoryReport(context.Background(), f.licence.LicenceRef, nil)
	assert.ErrorIs(t, err, boom)
}

func TestReportService_ChargeVersionStatement(t *testing.T) {
	f := newReportFixture(t)
	version := &model.ChargeVersion{
		ID:            uuid.New(),
		LicenceRef:    f.licence.LicenceRef,
		VersionNumber: 3,
		DateRange:     mustRange(t, "2020-04-01", ""),
		Status:        model.ChargeVersionStatusCurrent,
	}

	f.versions.EXPECT().GetByID(gomock.Any(), version.ID).Return(version, nil)
	f.licences.EXPECT().GetByRef(gomock.Any(), f.licence.LicenceRef).Return(f.licence, nil)
	f.versions.EXPECT().ListByLicenceRef(gomock.Any(), f.licence.LicenceRef).Return([]model.ChargeVersion{*version}, nil)
	f.pdf.EXPECT().Generate(gomock.Any()).DoAndReturn(func(statement model.ChargeVersionStatement) ([]byte, error) {
		assert.Equal(t, version.ID, statement.Version.ID)
		assert.Len(t, statement.Timeline, 1)
		return []byte("%PDF-1.3"), nil
	})

	result, err := f.service.ChargeVersionStatement(context.Background(), version.ID)
	require.NoError(t, err)
	assert.Equal(t, "charge-version-01-123-v3.pdf", result.FileName)
}

func TestReportService_ChargeVersionStatementNotFound(t *testing.T) {
	f := newReportFixture(t)
	id := uuid.New()
	f.versions.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := f.service.ChargeVersionStatement(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "01-123", sanitizeFileName("01/123"))
	assert.Equal(t, "MD-054-0007-012", sanitizeFileName("MD/054/0007/012"))
	assert.Equal(t, "a_b", sanitizeFileName("/a_b/"))
}
