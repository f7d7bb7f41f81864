package integration_tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getnestegg/nestegg/controllers"
	"github.com/getnestegg/nestegg/db/models"
	"github.com/getnestegg/nestegg/lib"
	"github.com/getnestegg/nestegg/lib/service"
	"github.com/getnestegg/nestegg/lib/tokens"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AssetTestSuite struct {
	suite.Suite
	svc       *service.NesteggService
	echo      *echo.Echo
	userToken string
	otherUser string
}

func (suite *AssetTestSuite) SetupSuite() {
	svc, err := NesteggTestServiceInit(nil)
	if err != nil {
		suite.T().Fatalf("Error initializing test service: %v", err)
	}
	_, userTokens, err := createUsers(svc, 2)
	if err != nil {
		suite.T().Fatalf("Error creating test users: %v", err)
	}
	suite.svc = svc
	suite.userToken = userTokens[0]
	suite.otherUser = userTokens[1]

	e := echo.New()
	e.Validator = &lib.CustomValidator{Validator: validator.New()}
	secured := e.Group("", tokens.Middleware(svc.Config.JWTSecret))
	assetCtrl := controllers.NewAssetController(svc)
	secured.GET("/v2/assets", assetCtrl.GetAssets)
	secured.POST("/v2/assets", assetCtrl.AddAsset)
	secured.PUT("/v2/assets/:id", assetCtrl.UpdateAsset)
	secured.DELETE("/v2/assets/:id", assetCtrl.DeleteAsset)
	suite.echo = e
}

func (suite *AssetTestSuite) TearDownSuite() {
	clearTable(suite.svc, "assets")
	clearTable(suite.svc, "users")
}

func (suite *AssetTestSuite) request(method, target, body, token string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, fmt.Sprintf("Bearer %s", token))
	}
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func (suite *AssetTestSuite) TestAssetCrud() {
	rec := suite.request(http.MethodPost, "/v2/assets", `{"type":"cash","value":"1500.50","description":"checking"}`, suite.userToken)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	asset := models.Asset{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&asset))
	assert.Equal(suite.T(), "cash", asset.Type)
	assert.True(suite.T(), asset.ID > 0)

	rec = suite.request(http.MethodGet, "/v2/assets", "", suite.userToken)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	listResponse := controllers.GetAssetsResponseBody{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&listResponse))
	assert.Len(suite.T(), listResponse.Assets, 1)

	rec = suite.request(http.MethodPut, fmt.Sprintf("/v2/assets/%d", asset.ID), `{"type":"cash","value":"2000","description":"checking"}`, suite.userToken)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	rec = suite.request(http.MethodDelete, fmt.Sprintf("/v2/assets/%d", asset.ID), "", suite.userToken)
	assert.Equal(suite.T(), http.StatusNoContent, rec.Code)

	rec = suite.request(http.MethodGet, "/v2/assets", "", suite.userToken)
	listResponse = controllers.GetAssetsResponseBody{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&listResponse))
	assert.Len(suite.T(), listResponse.Assets, 0)
}

func (suite *AssetTestSuite) TestAssetOwnership() {
	rec := suite.request(http.MethodPost, "/v2/assets", `{"type":"stocks","value":"300"}`, suite.userToken)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	asset := models.Asset{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&asset))

	// another user can neither see nor touch the row
	rec = suite.request(http.MethodGet, "/v2/assets", "", suite.otherUser)
	listResponse := controllers.GetAssetsResponseBody{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&listResponse))
	assert.Len(suite.T(), listResponse.Assets, 0)

	rec = suite.request(http.MethodPut, fmt.Sprintf("/v2/assets/%d", asset.ID), `{"type":"stocks","value":"1"}`, suite.otherUser)
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)

	rec = suite.request(http.MethodDelete, fmt.Sprintf("/v2/assets/%d", asset.ID), "", suite.otherUser)
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)

	rec = suite.request(http.MethodDelete, fmt.Sprintf("/v2/assets/%d", asset.ID), "", suite.userToken)
	assert.Equal(suite.T(), http.StatusNoContent, rec.Code)
}

func (suite *AssetTestSuite) TestRejectsNegativeValue() {
	rec := suite.request(http.MethodPost, "/v2/assets", `{"type":"cash","value":"-5"}`, suite.userToken)
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func (suite *AssetTestSuite) TestRejectsMissingToken() {
	rec := suite.request(http.MethodGet, "/v2/assets", "", "")
	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
}

func TestAssetTestSuite(t *testing.T) {
	suite.Run(t, new(AssetTestSuite))
}
