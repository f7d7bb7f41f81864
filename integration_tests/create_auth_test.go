package integration_tests

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getnestegg/nestegg/controllers"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/getnestegg/nestegg/lib"
)

func TestCreateAndAuthUser(t *testing.T) {
	e := echo.New()
	e.Validator = &lib.CustomValidator{Validator: validator.New()}

	svc, err := NesteggTestServiceInit(nil)
	assert.Nil(t, err)
	defer clearTable(svc, "users")

	createUserCtrl := controllers.NewCreateUserController(svc)
	authCtrl := controllers.NewAuthController(svc)

	req := httptest.NewRequest(http.MethodPost, "/v2/users", nil)
	rec := httptest.NewRecorder()
	ctxEcho := e.NewContext(req, rec)

	t.Run("success create new user", func(t *testing.T) {
		err := createUserCtrl.CreateUser(ctxEcho)
		assert.Nil(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	req = httptest.NewRequest(http.MethodPost, "/auth", bytes.NewBufferString(rec.Body.String()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	ctxEcho = e.NewContext(req, rec)

	t.Run("success authenticate user", func(t *testing.T) {
		err := authCtrl.Auth(ctxEcho)
		assert.Nil(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	req = httptest.NewRequest(http.MethodPost, "/auth", bytes.NewBufferString(`{"login":"nosuchuser","password":"wrong"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	ctxEcho = e.NewContext(req, rec)

	t.Run("reject bad credentials", func(t *testing.T) {
		err := authCtrl.Auth(ctxEcho)
		assert.Nil(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
