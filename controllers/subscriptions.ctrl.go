package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/getnestegg/nestegg/common"
	"github.com/getnestegg/nestegg/db/models"
	"github.com/getnestegg/nestegg/lib/responses"
	"github.com/getnestegg/nestegg/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// SubscriptionController : Subscription controller struct
type SubscriptionController struct {
	svc *service.NesteggService
}

func NewSubscriptionController(svc *service.NesteggService) *SubscriptionController {
	return &SubscriptionController{svc: svc}
}

type SubscriptionRequestBody struct {
	Name        string          `json:"name" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Cadence     string          `json:"cadence" validate:"omitempty,oneof=weekly monthly quarterly yearly"`
	NextRenewal *time.Time      `json:"next_renewal"`
	Active      *bool           `json:"active"`
}

type GetSubscriptionsResponseBody struct {
	Subscriptions []models.Subscription `json:"subscriptions"`
}

func (body *SubscriptionRequestBody) toModel(userId int64) *models.Subscription {
	subscription := &models.Subscription{
		UserID:  userId,
		Name:    body.Name,
		Amount:  body.Amount,
		Cadence: body.Cadence,
		Active:  true,
	}
	if subscription.Cadence == "" {
		subscription.Cadence = common.CadenceMonthly
	}
	if body.NextRenewal != nil {
		subscription.NextRenewal = bun.NullTime{Time: *body.NextRenewal}
	}
	if body.Active != nil {
		subscription.Active = *body.Active
	}
	return subscription
}

func (controller *SubscriptionController) GetSubscriptions(c echo.Context) error {
	userId := c.Get("UserID").(int64)

	subscriptions, err := controller.svc.SubscriptionsFor(c.Request().Context(), userId)
	if err != nil {
		c.Logger().Errorf("Error fetching subscriptions for user_id:%v error: %v", userId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &GetSubscriptionsResponseBody{Subscriptions: subscriptions})
}

func (controller *SubscriptionController) AddSubscription(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	var body SubscriptionRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load subscription request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if body.Amount.IsNegative() {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	subscription := body.toModel(userId)
	if err := controller.svc.CreateSubscription(c.Request().Context(), subscription); err != nil {
		c.Logger().Errorf("Error creating subscription: user_id:%v error: %v", userId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, subscription)
}

func (controller *SubscriptionController) UpdateSubscription(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	subscriptionId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body SubscriptionRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load subscription request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if body.Amount.IsNegative() {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	subscription := body.toModel(userId)
	subscription.ID = subscriptionId
	if err := controller.svc.UpdateSubscription(c.Request().Context(), subscription); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		c.Logger().Errorf("Error updating subscription: user_id:%v subscription_id:%v error: %v", userId, subscriptionId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, subscription)
}

func (controller *SubscriptionController) DeleteSubscription(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	subscriptionId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := controller.svc.DeleteSubscription(c.Request().Context(), userId, subscriptionId); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		c.Logger().Errorf("Error deleting subscription: user_id:%v subscription_id:%v error: %v", userId, subscriptionId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.NoContent(http.StatusNoContent)
}
