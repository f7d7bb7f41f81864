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

// SplitExpenseController : Split expense controller struct
type SplitExpenseController struct {
	svc *service.NesteggService
}

func NewSplitExpenseController(svc *service.NesteggService) *SplitExpenseController {
	return &SplitExpenseController{svc: svc}
}

type ExpenseSplitRequestBody struct {
	Participant string          `json:"participant" validate:"required"`
	Share       decimal.Decimal `json:"share"`
}

type SplitExpenseRequestBody struct {
	Description string                    `json:"description" validate:"required"`
	TotalAmount decimal.Decimal           `json:"total_amount"`
	Splits      []ExpenseSplitRequestBody `json:"splits" validate:"required,min=1,dive"`
}

type GetSplitExpensesResponseBody struct {
	SplitExpenses []models.SplitExpense `json:"split_expenses"`
}

func (controller *SplitExpenseController) GetSplitExpenses(c echo.Context) error {
	userId := c.Get("UserID").(int64)

	expenses, err := controller.svc.SplitExpensesFor(c.Request().Context(), userId)
	if err != nil {
		c.Logger().Errorf("Error fetching split expenses for user_id:%v error: %v", userId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &GetSplitExpensesResponseBody{SplitExpenses: expenses})
}

// AddSplitExpense godoc
// @Summary      Record a shared expense
// @Description  Stores the expense and one share per participant. The shares must add up to the total amount.
// @Accept       json
// @Produce      json
// @Tags         Expenses
// @Param        expense  body      SplitExpenseRequestBody  True  "Add Split Expense"
// @Success      200  {object}  models.SplitExpense
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /v2/splitexpenses [post]
// @Security     OAuth2Password
func (controller *SplitExpenseController) AddSplitExpense(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	var body SplitExpenseRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load split expense request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if body.TotalAmount.IsNegative() {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	shareSum := decimal.Zero
	splits := make([]*models.ExpenseSplit, 0, len(body.Splits))
	for _, split := range body.Splits {
		if split.Share.IsNegative() {
			return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
		}
		shareSum = shareSum.Add(split.Share)
		splits = append(splits, &models.ExpenseSplit{
			Participant: split.Participant,
			Share:       split.Share,
		})
	}
	if !shareSum.Equal(body.TotalAmount) {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	expense := &models.SplitExpense{
		UserID:      userId,
		Description: body.Description,
		TotalAmount: body.TotalAmount,
		Splits:      splits,
	}
	if err := controller.svc.CreateSplitExpense(c.Request().Context(), expense); err != nil {
		c.Logger().Errorf("Error creating split expense: user_id:%v error: %v", userId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, expense)
}

func (controller *SplitExpenseController) DeleteSplitExpense(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	expenseId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := controller.svc.DeleteSplitExpense(c.Request().Context(), userId, expenseId); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		c.Logger().Errorf("Error deleting split expense: user_id:%v expense_id:%v error: %v", userId, expenseId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.NoContent(http.StatusNoContent)
}
