package controllers

import (
	"errors"
	"net/http"

	"github.com/getnestegg/nestegg/lib/responses"
	"github.com/getnestegg/nestegg/lib/service"
	"github.com/labstack/echo/v4"
)

// AuthController : AuthController struct
type AuthController struct {
	svc *service.NesteggService
}

func NewAuthController(svc *service.NesteggService) *AuthController {
	return &AuthController{
		svc: svc,
	}
}

type AuthRequestBody struct {
	Login        string `json:"login"`
	Password     string `json:"password"`
	RefreshToken string `json:"refresh_token"`
}
type AuthResponseBody struct {
	RefreshToken string `json:"refresh_token"`
	AccessToken  string `json:"access_token"`
}

// Auth godoc
// @Summary      Authenticate
// @Description  Exchanges login/password or a refresh token for a token pair
// @Accept       json
// @Produce      json
// @Tags         Account
// @Param        credentials  body      AuthRequestBody  True  "Credentials"
// @Success      200  {object}  AuthResponseBody
// @Failure      401  {object}  responses.ErrorResponse
// @Router       /auth [post]
func (controller *AuthController) Auth(c echo.Context) error {

	var body AuthRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load auth user request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	accessToken, refreshToken, err := controller.svc.GenerateToken(c.Request().Context(), body.Login, body.Password, body.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrAccountDeactivated) {
			return c.JSON(http.StatusUnauthorized, responses.AccountDeactivatedError)
		}
		return c.JSON(http.StatusUnauthorized, responses.BadAuthError)
	}

	return c.JSON(http.StatusOK, &AuthResponseBody{
		RefreshToken: refreshToken,
		AccessToken:  accessToken,
	})
}
