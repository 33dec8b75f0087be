package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/nurpe/wrls-charging/internal/agreements"
	"github.com/nurpe/wrls-charging/internal/metrics"
	"github.com/nurpe/wrls-charging/internal/model"
)

type ReportService struct {
	licences                LicenceStore
	versions                ChargeVersionStore
	agreements              AgreementStore
	excel                   ExcelGenerator
	pdf                     PDFGenerator
	metrics                 *metrics.Metrics
	financialYearStartMonth int
	now                     func() time.Time
}

type ExportResult struct {
	FileName string
	Content  []byte
}

func NewReportService(
	licences LicenceStore,
	versions ChargeVersionStore,
	agreementStore AgreementStore,
	excel ExcelGenerator,
	pdf PDFGenerator,
	financialYearStartMonth int,
	m *metrics.Metrics,
) *ReportService {
	return &ReportService{
		licences:                licences,
		versions:                versions,
		agreements:              agreementStore,
		excel:                   excel,
		pdf:                     pdf,
		metrics:                 m,
		financialYearStartMonth: financialYearStartMonth,
		now:                     time.Now,
	}
}

// HistoryReport gathers the licence's agreement history for period together
// with the charge versions that overlap it.
func (s *ReportService) HistoryReport(ctx context.Context, licenceRef string, period *model.DateRange) (*model.ChargeHistoryReport, error) {
	chargePeriod := resolvePeriod(period, s.now(), s.financialYearStartMonth)

	licence, err := s.licences.GetByRef(ctx, licenceRef)
	if err != nil {
		return nil, translate(err)
	}

	var (
		versions          []model.ChargeVersion
		licenceAgreements []model.LicenceAgreement
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		versions, err = s.versions.ListByLicenceRef(gctx, licenceRef)
		return err
	})
	g.Go(func() error {
		var err error
		licenceAgreements, err = s.agreements.ListByLicenceRef(gctx, licenceRef, false)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	segments, err := agreements.History(chargePeriod, licenceAgreements)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	s.metrics.ObserveAgreementHistory(len(segments))

	overlapping := make([]model.ChargeVersion, 0, len(versions))
	for _, version := range versions {
		if _, ok := version.DateRange.Intersect(chargePeriod); ok {
			overlapping = append(overlapping, version)
		}
	}

	return &model.ChargeHistoryReport{
		Licence:        *licence,
		Period:         chargePeriod,
		Segments:       segments,
		ChargeVersions: overlapping,
		GeneratedAt:    s.now(),
	}, nil
}

func (s *ReportService) ExportHistory(ctx context.Context, licenceRef string, period *model.DateRange) (*ExportResult, error) {
	report, err := s.HistoryReport(ctx, licenceRef, period)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(*report)
	if err != nil {
		return nil, err
	}

	end := "open"
	if e := report.Period.End(); e != nil {
		end = e.Format("20060102")
	}
	return &ExportResult{
		FileName: fmt.Sprintf("agreement-history-%s-%s-%s.xlsx",
			sanitizeFileName(report.Licence.LicenceRef),
			report.Period.Start().Format("20060102"),
			end,
		),
		Content: content,
	}, nil
}

func (s *ReportService) ChargeVersionStatement(ctx context.Context, id uuid.UUID) (*ExportResult, error) {
	version, err := s.versions.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	licence, err := s.licences.GetByRef(ctx, version.LicenceRef)
	if err != nil {
		return nil, translate(err)
	}
	timeline, err := s.versions.ListByLicenceRef(ctx, version.LicenceRef)
	if err != nil {
		return nil, err
	}

	content, err := s.pdf.Generate(model.ChargeVersionStatement{
		Licence:     *licence,
		Version:     *version,
		Timeline:    timeline,
		GeneratedAt: s.now(),
	})
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: fmt.Sprintf("charge-version-%s-v%d.pdf", sanitizeFileName(licence.LicenceRef), version.VersionNumber),
		Content:  content,
	}, nil
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
