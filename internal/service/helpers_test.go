package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nurpe/wrls-charging/internal/model"
	"github.com/nurpe/wrls-charging/internal/service/mocks"
)

func mustRange(t *testing.T, start, end string) model.DateRange {
	t.Helper()
	r, err := model.ParseDateRange(start, end)
	require.NoError(t, err)
	return r
}

func mustDate(t *testing.T, raw string) model.DateRange {
	t.Helper()
	return mustRange(t, raw, raw)
}

func testLicence(t *testing.T) *model.Licence {
	t.Helper()
	return &model.Licence{
		ID:         uuid.New(),
		LicenceRef: "01/123",
		RegionCode: "A",
		StartDate:  mustDate(t, "1996-10-30").Start(),
	}
}

func reviewer() model.Principal {
	return model.Principal{UserID: uuid.New(), Roles: []string{model.RoleWorkflowReviewer}}
}

func editor() model.Principal {
	return model.Principal{UserID: uuid.New(), Roles: []string{model.RoleWorkflowEditor}}
}

func agreementManager() model.Principal {
	return model.Principal{UserID: uuid.New(), Roles: []string{model.RoleManageAgreements}}
}

func validDraft(t *testing.T, start string) model.ChargeVersionDraft {
	t.Helper()
	return model.ChargeVersionDraft{
		DateRange: mustRange(t, start, ""),
		Scheme:    model.ChargeSchemeALCS,
		ChargeElements: []model.ChargeElement{{
			Description:              "Spray irrigation",
			Source:                   "unsupported",
			Season:                   "summer",
			Loss:                     "high",
			PurposeCode:              "400",
			AbstractionPeriod:        model.AbstractionPeriod{StartDay: 1, StartMonth: 4, EndDay: 31, EndMonth: 10},
			AuthorisedAnnualQuantity: 120,
		}},
	}
}

// passThroughTx makes the mocked transactor run the unit of work inline.
func passThroughTx(tx *mocks.MockTransactor, licenceRef string) *gomock.Call {
	return tx.EXPECT().
		WithLicenceLock(gomock.Any(), licenceRef, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}
