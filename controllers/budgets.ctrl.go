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

// BudgetController : Budget controller struct
type BudgetController struct {
	svc *service.NesteggService
}

func NewBudgetController(svc *service.NesteggService) *BudgetController {
	return &BudgetController{svc: svc}
}

type BudgetRequestBody struct {
	Category     string          `json:"category" validate:"required"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit"`
	Spent        decimal.Decimal `json:"spent"`
}

type GetBudgetsResponseBody struct {
	Budgets []models.Budget `json:"budgets"`
}

func (controller *BudgetController) GetBudgets(c echo.Context) error {
	userId := c.Get("UserID").(int64)

	budgets, err := controller.svc.BudgetsFor(c.Request().Context(), userId)
	if err != nil {
		c.Logger().Errorf("Error fetching budgets for user_id:%v error: %v", userId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &GetBudgetsResponseBody{Budgets: budgets})
}

func (controller *BudgetController) AddBudget(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	var body BudgetRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load budget request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if body.MonthlyLimit.IsNegative() || body.Spent.IsNegative() {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	budget := &models.Budget{
		UserID:       userId,
		Category:     body.Category,
		MonthlyLimit: body.MonthlyLimit,
		Spent:        body.Spent,
	}
	if err := controller.svc.CreateBudget(c.Request().Context(), budget); err != nil {
		c.Logger().Errorf("Error creating budget: user_id:%v error: %v", userId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, budget)
}

func (controller *BudgetController) UpdateBudget(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	budgetId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body BudgetRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load budget request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if body.MonthlyLimit.IsNegative() || body.Spent.IsNegative() {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	budget := &models.Budget{
		ID:           budgetId,
		UserID:       userId,
		Category:     body.Category,
		MonthlyLimit: body.MonthlyLimit,
		Spent:        body.Spent,
	}
	if err := controller.svc.UpdateBudget(c.Request().Context(), budget); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		c.Logger().Errorf("Error updating budget: user_id:%v budget_id:%v error: %v", userId, budgetId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, budget)
}

func (controller *BudgetController) DeleteBudget(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	budgetId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := controller.svc.DeleteBudget(c.Request().Context(), userId, budgetId); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		c.Logger().Errorf("Error deleting budget: user_id:%v budget_id:%v error: %v", userId, budgetId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.NoContent(http.StatusNoContent)
}
