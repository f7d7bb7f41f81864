package tokens

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getnestegg/nestegg/db/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("SECRET")

func TestAccessTokenRoundTrip(t *testing.T) {
	user := &models.User{ID: 42}
	token, err := GenerateAccessToken(testSecret, 3600, user)
	require.NoError(t, err)

	id, err := ParseToken(testSecret, token, false)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	user := &models.User{ID: 42}
	refresh, err := GenerateRefreshToken(testSecret, 3600, user)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, refresh, false)
	assert.Error(t, err)

	id, err := ParseToken(testSecret, refresh, true)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestMiddlewareRejectsMissingToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v2/networth", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Middleware(testSecret)(func(c echo.Context) error {
		t.Fatal("handler should not be reached without a token")
		return nil
	})
	err := handler(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestMiddlewareSetsUserID(t *testing.T) {
	user := &models.User{ID: 7}
	token, err := GenerateAccessToken(testSecret, 3600, user)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v2/networth", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Middleware(testSecret)(func(c echo.Context) error {
		called = true
		assert.Equal(t, int64(7), c.Get("UserID").(int64))
		return nil
	})
	require.NoError(t, handler(c))
	assert.True(t, called)
}

func TestMiddlewareRejectsWrongSecret(t *testing.T) {
	user := &models.User{ID: 7}
	token, err := GenerateAccessToken([]byte("OTHERSECRET"), 3600, user)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v2/networth", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Middleware(testSecret)(func(c echo.Context) error {
		t.Fatal("handler should not be reached with a forged token")
		return nil
	})
	assert.Error(t, handler(c))
}
