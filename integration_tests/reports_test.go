package integration_tests

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getnestegg/nestegg/controllers"
	"github.com/getnestegg/nestegg/db/models"
	"github.com/getnestegg/nestegg/lib/responses"
	"github.com/getnestegg/nestegg/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNetWorthReportCSV(t *testing.T) {
	svc, err := NesteggTestServiceInit(nil)
	assert.Nil(t, err)
	defer clearTable(svc, "users")
	defer clearTable(svc, "networth_snapshots")

	userIds, _, err := createUsers(svc, 1)
	assert.Nil(t, err)
	ctx := context.Background()

	_, err = svc.ReconcileSnapshot(ctx, userIds[0], "2024-01", service.Totals{
		TotalAssets:      decimal.NewFromInt(100),
		TotalLiabilities: decimal.NewFromInt(40),
		NetWorth:         decimal.NewFromInt(60),
	})
	assert.NoError(t, err)
	_, err = svc.ReconcileSnapshot(ctx, userIds[0], "2024-02", service.Totals{
		TotalAssets:      decimal.NewFromInt(110),
		TotalLiabilities: decimal.NewFromInt(40),
		NetWorth:         decimal.NewFromInt(70),
	})
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, svc.NetWorthReportCSV(ctx, userIds[0], &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, []string{"period", "total_assets", "total_liabilities", "net_worth"}, records[0])
	assert.Equal(t, []string{"2024-01", "100", "40", "60"}, records[1])
	assert.Equal(t, []string{"2024-02", "110", "40", "70"}, records[2])
}

func TestEntriesReportCSV(t *testing.T) {
	svc, err := NesteggTestServiceInit(nil)
	assert.Nil(t, err)
	defer clearTable(svc, "users")
	defer clearTable(svc, "assets")
	defer clearTable(svc, "liabilities")

	userIds, _, err := createUsers(svc, 1)
	assert.Nil(t, err)
	ctx := context.Background()

	assert.NoError(t, svc.CreateAsset(ctx, &models.Asset{UserID: userIds[0], Type: "cash", Value: decimal.NewFromInt(100), Description: "checking, main"}))
	assert.NoError(t, svc.CreateLiability(ctx, &models.Liability{UserID: userIds[0], Type: "loan", AmountDue: decimal.NewFromInt(50)}))

	var buf bytes.Buffer
	assert.NoError(t, svc.EntriesReportCSV(ctx, userIds[0], &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, "asset", records[1][0])
	assert.Equal(t, "checking, main", records[1][3])
	assert.Equal(t, "liability", records[2][0])
	assert.Equal(t, "50", records[2][2])
}

// A failing report query must surface as the generic 500 payload, not
// as a committed empty 200.
func TestReportErrorIsNotSilentlyDropped(t *testing.T) {
	svc, err := NesteggTestServiceInit(nil)
	assert.Nil(t, err)

	userIds, _, err := createUsers(svc, 1)
	assert.Nil(t, err)
	assert.NoError(t, clearTable(svc, "users"))

	// every query after this fails
	assert.NoError(t, svc.DB.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v2/reports/networth.csv", nil)
	rec := httptest.NewRecorder()
	ctxEcho := e.NewContext(req, rec)
	ctxEcho.Set("UserID", userIds[0])

	reportCtrl := controllers.NewReportController(svc)
	assert.NoError(t, reportCtrl.NetWorthCSV(ctxEcho))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	errorResponse := responses.ErrorResponse{}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&errorResponse))
	assert.True(t, errorResponse.Error)
	assert.Equal(t, responses.GeneralServerError.Code, errorResponse.Code)
}
