package controllers

import (
	"net/http"

	"github.com/getnestegg/nestegg/db/models"
	"github.com/getnestegg/nestegg/lib/responses"
	"github.com/getnestegg/nestegg/lib/service"
	"github.com/labstack/echo/v4"
)

// NetWorthController : NetWorthController struct
type NetWorthController struct {
	svc *service.NesteggService
}

func NewNetWorthController(svc *service.NesteggService) *NetWorthController {
	return &NetWorthController{svc: svc}
}

type GetSnapshotsResponseBody struct {
	Snapshots []models.NetWorthSnapshot `json:"snapshots"`
}

// Overview godoc
// @Summary      Retrieve the net worth dashboard
// @Description  Aggregates assets and liabilities, reconciles the current month's snapshot and returns totals, breakdowns and history
// @Accept       json
// @Produce      json
// @Tags         NetWorth
// @Success      200  {object}  service.NetWorthOverview
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/networth [get]
// @Security     OAuth2Password
func (controller *NetWorthController) Overview(c echo.Context) error {
	userId := c.Get("UserID").(int64)

	overview, err := controller.svc.NetWorthOverviewFor(c.Request().Context(), userId)
	if err != nil {
		c.Logger().Errorf("Error building net worth overview for user_id:%v error: %v", userId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, overview)
}

// History godoc
// @Summary      Retrieve snapshot history
// @Description  Returns stored net worth snapshots, oldest period first
// @Accept       json
// @Produce      json
// @Tags         NetWorth
// @Success      200  {object}  GetSnapshotsResponseBody
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/networth/history [get]
// @Security     OAuth2Password
func (controller *NetWorthController) History(c echo.Context) error {
	userId := c.Get("UserID").(int64)

	snapshots, err := controller.svc.SnapshotsFor(c.Request().Context(), userId)
	if err != nil {
		c.Logger().Errorf("Error fetching snapshots for user_id:%v error: %v", userId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &GetSnapshotsResponseBody{Snapshots: snapshots})
}
