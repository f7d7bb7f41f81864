package controllers

import (
	"errors"
	"net/http"

	"github.com/getnestegg/nestegg/lib/responses"
	"github.com/getnestegg/nestegg/lib/service"
	"github.com/labstack/echo/v4"
)

// UpdateUserController : Update user controller struct
type UpdateUserController struct {
	svc *service.NesteggService
}

func NewUpdateUserController(svc *service.NesteggService) *UpdateUserController {
	return &UpdateUserController{svc: svc}
}

type UpdateUserRequestBody struct {
	ID          int64 `json:"id" validate:"required"`
	Deactivated bool  `json:"deactivated"`
}
type UpdateUserResponseBody struct {
	ID          int64  `json:"id"`
	Login       string `json:"login"`
	Deactivated bool   `json:"deactivated"`
}

// UpdateUser godoc
// @Summary      Update an account
// @Description  Deactivate or reactivate an account. Admin token required.
// @Accept       json
// @Produce      json
// @Tags         Account
// @Param        account  body      UpdateUserRequestBody  True  "Update User"
// @Success      200      {object}  UpdateUserResponseBody
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /v2/admin/users [put]
func (controller *UpdateUserController) UpdateUser(c echo.Context) error {

	var body UpdateUserRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load update user request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	user, err := controller.svc.UpdateUser(c.Request().Context(), body.ID, body.Deactivated)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		c.Logger().Errorf("Failed to update user: user_id:%v error: %v", body.ID, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}

	return c.JSON(http.StatusOK, &UpdateUserResponseBody{
		ID:          user.ID,
		Login:       user.Login,
		Deactivated: user.Deactivated,
	})
}
