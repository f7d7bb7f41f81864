package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/getnestegg/nestegg/db/models"
	"github.com/getnestegg/nestegg/lib/responses"
	"github.com/getnestegg/nestegg/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// DebtController : Debt controller struct
type DebtController struct {
	svc *service.NesteggService
}

func NewDebtController(svc *service.NesteggService) *DebtController {
	return &DebtController{svc: svc}
}

type DebtRequestBody struct {
	Name           string           `json:"name" validate:"required"`
	Balance        decimal.Decimal  `json:"balance"`
	InterestRate   *decimal.Decimal `json:"interest_rate"`
	MinimumPayment *decimal.Decimal `json:"minimum_payment"`
	DueDay         int              `json:"due_day" validate:"gte=0,lte=31"`
}

type GetDebtsResponseBody struct {
	Debts []models.Debt `json:"debts"`
}

func (body *DebtRequestBody) toModel(userId int64) *models.Debt {
	debt := &models.Debt{
		UserID:  userId,
		Name:    body.Name,
		Balance: body.Balance,
		DueDay:  body.DueDay,
	}
	if body.InterestRate != nil {
		debt.InterestRate = decimal.NullDecimal{Decimal: *body.InterestRate, Valid: true}
	}
	if body.MinimumPayment != nil {
		debt.MinimumPayment = decimal.NullDecimal{Decimal: *body.MinimumPayment, Valid: true}
	}
	return debt
}

func (controller *DebtController) GetDebts(c echo.Context) error {
	userId := c.Get("UserID").(int64)

	debts, err := controller.svc.DebtsFor(c.Request().Context(), userId)
	if err != nil {
		c.Logger().Errorf("Error fetching debts for user_id:%v error: %v", userId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &GetDebtsResponseBody{Debts: debts})
}

func (controller *DebtController) AddDebt(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	var body DebtRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load debt request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if body.Balance.IsNegative() {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	debt := body.toModel(userId)
	if err := controller.svc.CreateDebt(c.Request().Context(), debt); err != nil {
		c.Logger().Errorf("Error creating debt: user_id:%v error: %v", userId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, debt)
}

func (controller *DebtController) UpdateDebt(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	debtId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body DebtRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load debt request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if body.Balance.IsNegative() {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	debt := body.toModel(userId)
	debt.ID = debtId
	if err := controller.svc.UpdateDebt(c.Request().Context(), debt); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		c.Logger().Errorf("Error updating debt: user_id:%v debt_id:%v error: %v", userId, debtId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, debt)
}

func (controller *DebtController) DeleteDebt(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	debtId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := controller.svc.DeleteDebt(c.Request().Context(), userId, debtId); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		c.Logger().Errorf("Error deleting debt: user_id:%v debt_id:%v error: %v", userId, debtId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.NoContent(http.StatusNoContent)
}
