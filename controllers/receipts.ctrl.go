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

// ReceiptController : Receipt controller struct
type ReceiptController struct {
	svc *service.NesteggService
}

func NewReceiptController(svc *service.NesteggService) *ReceiptController {
	return &ReceiptController{svc: svc}
}

type ReceiptRequestBody struct {
	Merchant    string          `json:"merchant" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	ReceiptDate time.Time       `json:"receipt_date" validate:"required"`
	Note        string          `json:"note"`
}

type GetReceiptsResponseBody struct {
	Receipts []models.Receipt `json:"receipts"`
}

func (body *ReceiptRequestBody) toModel(userId int64) *models.Receipt {
	return &models.Receipt{
		UserID:      userId,
		Merchant:    body.Merchant,
		Amount:      body.Amount,
		Category:    body.Category,
		ReceiptDate: body.ReceiptDate,
		Note:        body.Note,
	}
}

func (controller *ReceiptController) GetReceipts(c echo.Context) error {
	userId := c.Get("UserID").(int64)

	receipts, err := controller.svc.ReceiptsFor(c.Request().Context(), userId)
	if err != nil {
		c.Logger().Errorf("Error fetching receipts for user_id:%v error: %v", userId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &GetReceiptsResponseBody{Receipts: receipts})
}

func (controller *ReceiptController) AddReceipt(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	var body ReceiptRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load receipt request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if body.Amount.IsNegative() {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	receipt := body.toModel(userId)
	if err := controller.svc.CreateReceipt(c.Request().Context(), receipt); err != nil {
		c.Logger().Errorf("Error creating receipt: user_id:%v error: %v", userId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, receipt)
}

func (controller *ReceiptController) UpdateReceipt(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	receiptId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body ReceiptRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load receipt request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if body.Amount.IsNegative() {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	receipt := body.toModel(userId)
	receipt.ID = receiptId
	if err := controller.svc.UpdateReceipt(c.Request().Context(), receipt); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		c.Logger().Errorf("Error updating receipt: user_id:%v receipt_id:%v error: %v", userId, receiptId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, receipt)
}

func (controller *ReceiptController) DeleteReceipt(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	receiptId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := controller.svc.DeleteReceipt(c.Request().Context(), userId, receiptId); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		c.Logger().Errorf("Error deleting receipt: user_id:%v receipt_id:%v error: %v", userId, receiptId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.NoContent(http.StatusNoContent)
}
