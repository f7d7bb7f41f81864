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
)

// BillController : Bill controller struct
type BillController struct {
	svc *service.NesteggService
}

func NewBillController(svc *service.NesteggService) *BillController {
	return &BillController{svc: svc}
}

type BillRequestBody struct {
	Name    string          `json:"name" validate:"required"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate time.Time       `json:"due_date" validate:"required"`
	Autopay bool            `json:"autopay"`
	Paid    bool            `json:"paid"`
}

type GetBillsResponseBody struct {
	Bills []models.Bill `json:"bills"`
}

func (controller *BillController) GetBills(c echo.Context) error {
	userId := c.Get("UserID").(int64)

	bills, err := controller.svc.BillsFor(c.Request().Context(), userId)
	if err != nil {
		c.Logger().Errorf("Error fetching bills for user_id:%v error: %v", userId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &GetBillsResponseBody{Bills: bills})
}

func (controller *BillController) AddBill(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	var body BillRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load bill request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if body.Amount.IsNegative() {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	bill := &models.Bill{
		UserID:  userId,
		Name:    body.Name,
		Amount:  body.Amount,
		DueDate: body.DueDate,
		Autopay: body.Autopay,
		Paid:    body.Paid,
	}
	if err := controller.svc.CreateBill(c.Request().Context(), bill); err != nil {
		c.Logger().Errorf("Error creating bill: user_id:%v error: %v", userId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, bill)
}

func (controller *BillController) UpdateBill(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	billId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body BillRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load bill request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if body.Amount.IsNegative() {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	bill := &models.Bill{
		ID:      billId,
		UserID:  userId,
		Name:    body.Name,
		Amount:  body.Amount,
		DueDate: body.DueDate,
		Autopay: body.Autopay,
		Paid:    body.Paid,
	}
	if err := controller.svc.UpdateBill(c.Request().Context(), bill); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		c.Logger().Errorf("Error updating bill: user_id:%v bill_id:%v error: %v", userId, billId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, bill)
}

func (controller *BillController) DeleteBill(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	billId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := controller.svc.DeleteBill(c.Request().Context(), userId, billId); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		c.Logger().Errorf("Error deleting bill: user_id:%v bill_id:%v error: %v", userId, billId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.NoContent(http.StatusNoContent)
}
