package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/getnestegg/nestegg/db/models"
	"github.com/getnestegg/nestegg/lib/responses"
	"github.com/getnestegg/nestegg/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// LiabilityController : Liability controller struct
type LiabilityController struct {
	svc *service.NesteggService
}

func NewLiabilityController(svc *service.NesteggService) *LiabilityController {
	return &LiabilityController{svc: svc}
}

type LiabilityRequestBody struct {
	Type         string           `json:"type" validate:"required"`
	AmountDue    decimal.Decimal  `json:"amount_due"`
	InterestRate *decimal.Decimal `json:"interest_rate"`
	DueDate      *time.Time       `json:"due_date"`
	Description  string           `json:"description"`
}

type GetLiabilitiesResponseBody struct {
	Liabilities []models.Liability `json:"liabilities"`
}

func (body *LiabilityRequestBody) toModel(userId int64) *models.Liability {
	liability := &models.Liability{
		UserID:      userId,
		Type:        body.Type,
		AmountDue:   body.AmountDue,
		Description: body.Description,
	}
	if body.InterestRate != nil {
		liability.InterestRate = decimal.NullDecimal{Decimal: *body.InterestRate, Valid: true}
	}
	if body.DueDate != nil {
		liability.DueDate = bun.NullTime{Time: *body.DueDate}
	}
	return liability
}

// GetLiabilities godoc
// @Summary      Retrieve liabilities
// @Description  Returns all liabilities of the current user, newest first
// @Accept       json
// @Produce      json
// @Tags         NetWorth
// @Success      200  {object}  GetLiabilitiesResponseBody
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/liabilities [get]
// @Security     OAuth2Password
func (controller *LiabilityController) GetLiabilities(c echo.Context) error {
	userId := c.Get("UserID").(int64)

	liabilities, err := controller.svc.LiabilitiesFor(c.Request().Context(), userId)
	if err != nil {
		c.Logger().Errorf("Error fetching liabilities for user_id:%v error: %v", userId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &GetLiabilitiesResponseBody{Liabilities: liabilities})
}

// AddLiability godoc
// @Summary      Add a liability
// @Accept       json
// @Produce      json
// @Tags         NetWorth
// @Param        liability  body      LiabilityRequestBody  True  "Add Liability"
// @Success      200  {object}  models.Liability
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /v2/liabilities [post]
// @Security     OAuth2Password
func (controller *LiabilityController) AddLiability(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	var body LiabilityRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load liability request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if body.AmountDue.IsNegative() {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	liability := body.toModel(userId)
	if err := controller.svc.CreateLiability(c.Request().Context(), liability); err != nil {
		c.Logger().Errorf("Error creating liability: user_id:%v error: %v", userId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, liability)
}

// UpdateLiability godoc
// @Summary      Update a liability
// @Accept       json
// @Produce      json
// @Tags         NetWorth
// @Param        id         path      int                   true  "Liability id"
// @Param        liability  body      LiabilityRequestBody  True  "Update Liability"
// @Success      200  {object}  models.Liability
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v2/liabilities/{id} [put]
// @Security     OAuth2Password
func (controller *LiabilityController) UpdateLiability(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	liabilityId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body LiabilityRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load liability request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if body.AmountDue.IsNegative() {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	liability := body.toModel(userId)
	liability.ID = liabilityId
	if err := controller.svc.UpdateLiability(c.Request().Context(), liability); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		c.Logger().Errorf("Error updating liability: user_id:%v liability_id:%v error: %v", userId, liabilityId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, liability)
}

// DeleteLiability godoc
// @Summary      Delete a liability
// @Tags         NetWorth
// @Param        id  path  int  true  "Liability id"
// @Success      204
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v2/liabilities/{id} [delete]
// @Security     OAuth2Password
func (controller *LiabilityController) DeleteLiability(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	liabilityId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := controller.svc.DeleteLiability(c.Request().Context(), userId, liabilityId); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		c.Logger().Errorf("Error deleting liability: user_id:%v liability_id:%v error: %v", userId, liabilityId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.NoContent(http.StatusNoContent)
}
