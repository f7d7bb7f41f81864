package integration_tests

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/getnestegg/nestegg/db/models"
	"github.com/getnestegg/nestegg/lib"
	"github.com/getnestegg/nestegg/lib/service"
	"github.com/getnestegg/nestegg/lib/tokens"
	"github.com/getnestegg/nestegg/lib/transport"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type NetWorthTestSuite struct {
	suite.Suite
	svc    *service.NesteggService
	userId int64
}

func (suite *NetWorthTestSuite) SetupSuite() {
	svc, err := NesteggTestServiceInit(nil)
	if err != nil {
		suite.T().Fatalf("Error initializing test service: %v", err)
	}
	userIds, _, err := createUsers(svc, 1)
	if err != nil {
		suite.T().Fatalf("Error creating test user: %v", err)
	}
	suite.svc = svc
	suite.userId = userIds[0]
}

func (suite *NetWorthTestSuite) TearDownTest() {
	clearTable(suite.svc, "networth_snapshots")
	clearTable(suite.svc, "assets")
	clearTable(suite.svc, "liabilities")
}

func (suite *NetWorthTestSuite) TearDownSuite() {
	clearTable(suite.svc, "users")
}

func (suite *NetWorthTestSuite) mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	assert.NoError(suite.T(), err)
	return d
}

func (suite *NetWorthTestSuite) TestOverviewAggregatesAndReconciles() {
	ctx := context.Background()
	assert.NoError(suite.T(), suite.svc.CreateAsset(ctx, &models.Asset{UserID: suite.userId, Type: "cash", Value: suite.mustDecimal("15000")}))
	assert.NoError(suite.T(), suite.svc.CreateAsset(ctx, &models.Asset{UserID: suite.userId, Type: "real_estate", Value: suite.mustDecimal("45000")}))
	assert.NoError(suite.T(), suite.svc.CreateLiability(ctx, &models.Liability{UserID: suite.userId, Type: "mortgage", AmountDue: suite.mustDecimal("30000")}))

	overview, err := suite.svc.NetWorthOverviewFor(ctx, suite.userId)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), overview.TotalAssets.Equal(suite.mustDecimal("60000")))
	assert.True(suite.T(), overview.TotalLiabilities.Equal(suite.mustDecimal("30000")))
	assert.True(suite.T(), overview.NetWorth.Equal(suite.mustDecimal("30000")))
	assert.Len(suite.T(), overview.AssetBreakdown, 2)

	// the dashboard read stored the current month's snapshot
	snapshots, err := suite.svc.SnapshotsFor(ctx, suite.userId)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), snapshots, 1)
	assert.True(suite.T(), snapshots[0].NetWorth.Equal(suite.mustDecimal("30000")))
}

func (suite *NetWorthTestSuite) TestReconcileUpdatesInPlace() {
	ctx := context.Background()

	first := service.Totals{TotalAssets: suite.mustDecimal("100"), TotalLiabilities: suite.mustDecimal("40"), NetWorth: suite.mustDecimal("60")}
	_, err := suite.svc.ReconcileSnapshot(ctx, suite.userId, "2024-02", first)
	assert.NoError(suite.T(), err)

	second := service.Totals{TotalAssets: suite.mustDecimal("110"), TotalLiabilities: suite.mustDecimal("40"), NetWorth: suite.mustDecimal("70")}
	_, err = suite.svc.ReconcileSnapshot(ctx, suite.userId, "2024-02", second)
	assert.NoError(suite.T(), err)

	snapshots, err := suite.svc.SnapshotsFor(ctx, suite.userId)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), snapshots, 1)
	assert.True(suite.T(), snapshots[0].TotalAssets.Equal(suite.mustDecimal("110")))
	assert.True(suite.T(), snapshots[0].NetWorth.Equal(suite.mustDecimal("70")))
}

func (suite *NetWorthTestSuite) TestConcurrentReconcileKeepsOneRow() {
	ctx := context.Background()
	totals := service.Totals{TotalAssets: suite.mustDecimal("500"), TotalLiabilities: suite.mustDecimal("200"), NetWorth: suite.mustDecimal("300")}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.svc.ReconcileSnapshot(ctx, suite.userId, "2024-03", totals)
			assert.NoError(suite.T(), err)
		}()
	}
	wg.Wait()

	snapshots, err := suite.svc.SnapshotsFor(ctx, suite.userId)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), snapshots, 1)
	assert.Equal(suite.T(), "2024-03", snapshots[0].Period)
}

func (suite *NetWorthTestSuite) TestSnapshotsPerUser() {
	ctx := context.Background()
	otherIds, _, err := createUsers(suite.svc, 1)
	assert.NoError(suite.T(), err)

	totals := service.Totals{TotalAssets: suite.mustDecimal("1"), TotalLiabilities: decimal.Zero, NetWorth: suite.mustDecimal("1")}
	_, err = suite.svc.ReconcileSnapshot(ctx, suite.userId, "2024-02", totals)
	assert.NoError(suite.T(), err)
	_, err = suite.svc.ReconcileSnapshot(ctx, otherIds[0], "2024-02", totals)
	assert.NoError(suite.T(), err)

	snapshots, err := suite.svc.SnapshotsFor(ctx, suite.userId)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), snapshots, 1)
}

// Drives the real route registration so middleware on the dashboard
// route is part of the test. Each user must always see their own
// totals, also on repeated alternating requests.
func (suite *NetWorthTestSuite) TestDashboardIsPerUser() {
	ctx := context.Background()
	otherIds, userTokens, err := createUsers(suite.svc, 2)
	assert.NoError(suite.T(), err)

	assert.NoError(suite.T(), suite.svc.CreateAsset(ctx, &models.Asset{UserID: otherIds[0], Type: "cash", Value: suite.mustDecimal("100")}))
	assert.NoError(suite.T(), suite.svc.CreateAsset(ctx, &models.Asset{UserID: otherIds[1], Type: "cash", Value: suite.mustDecimal("999")}))

	e := echo.New()
	e.Validator = &lib.CustomValidator{Validator: validator.New()}
	logMw := transport.CreateLoggingMiddleware(suite.svc.Logger)
	strictMw := transport.CreateRateLimitMiddleware(10, 1)
	secured := e.Group("", tokens.Middleware(suite.svc.Config.JWTSecret), logMw)
	securedStrict := e.Group("", tokens.Middleware(suite.svc.Config.JWTSecret), strictMw, logMw)
	transport.RegisterEndpoints(suite.svc, e, secured, securedStrict, strictMw, tokens.AdminTokenMiddleware(""), logMw)

	overviewFor := func(token string) service.NetWorthOverview {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v2/networth", nil)
		req.Header.Set(echo.HeaderAuthorization, fmt.Sprintf("Bearer %s", token))
		e.ServeHTTP(rec, req)
		assert.Equal(suite.T(), http.StatusOK, rec.Code)
		overview := service.NetWorthOverview{}
		assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&overview))
		return overview
	}

	for i := 0; i < 2; i++ {
		assert.True(suite.T(), overviewFor(userTokens[0]).TotalAssets.Equal(suite.mustDecimal("100")))
		assert.True(suite.T(), overviewFor(userTokens[1]).TotalAssets.Equal(suite.mustDecimal("999")))
	}
}

func TestNetWorthTestSuite(t *testing.T) {
	suite.Run(t, new(NetWorthTestSuite))
}
