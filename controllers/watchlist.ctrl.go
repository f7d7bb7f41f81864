package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/getnestegg/nestegg/db/models"
	"github.com/getnestegg/nestegg/lib/responses"
	"github.com/getnestegg/nestegg/lib/service"
	"github.com/labstack/echo/v4"
)

// WatchlistController : Watchlist controller struct
type WatchlistController struct {
	svc *service.NesteggService
}

func NewWatchlistController(svc *service.NesteggService) *WatchlistController {
	return &WatchlistController{svc: svc}
}

type WatchlistItemRequestBody struct {
	Symbol string `json:"symbol" validate:"required,max=12"`
	Note   string `json:"note"`
}

type GetWatchlistResponseBody struct {
	Watchlist []service.WatchlistQuote `json:"watchlist"`
}

// GetWatchlist godoc
// @Summary      Retrieve the watchlist with live prices
// @Description  Returns all watched symbols. Prices come from the quote API, a row keeps a null price when no quote is available.
// @Accept       json
// @Produce      json
// @Tags         Watchlist
// @Success      200  {object}  GetWatchlistResponseBody
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/watchlist [get]
// @Security     OAuth2Password
func (controller *WatchlistController) GetWatchlist(c echo.Context) error {
	userId := c.Get("UserID").(int64)

	watchlist, err := controller.svc.WatchlistWithQuotes(c.Request().Context(), userId)
	if err != nil {
		c.Logger().Errorf("Error fetching watchlist for user_id:%v error: %v", userId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &GetWatchlistResponseBody{Watchlist: watchlist})
}

func (controller *WatchlistController) AddWatchlistItem(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	var body WatchlistItemRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load watchlist request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	item := &models.WatchlistItem{
		UserID: userId,
		Symbol: strings.ToUpper(strings.TrimSpace(body.Symbol)),
		Note:   body.Note,
	}
	if err := controller.svc.CreateWatchlistItem(c.Request().Context(), item); err != nil {
		c.Logger().Errorf("Error creating watchlist item: user_id:%v error: %v", userId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, item)
}

func (controller *WatchlistController) UpdateWatchlistItem(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	itemId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body WatchlistItemRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load watchlist request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	item := &models.WatchlistItem{
		ID:     itemId,
		UserID: userId,
		Symbol: strings.ToUpper(strings.TrimSpace(body.Symbol)),
		Note:   body.Note,
	}
	if err := controller.svc.UpdateWatchlistItem(c.Request().Context(), item); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		c.Logger().Errorf("Error updating watchlist item: user_id:%v item_id:%v error: %v", userId, itemId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, item)
}

func (controller *WatchlistController) DeleteWatchlistItem(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	itemId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := controller.svc.DeleteWatchlistItem(c.Request().Context(), userId, itemId); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		c.Logger().Errorf("Error deleting watchlist item: user_id:%v item_id:%v error: %v", userId, itemId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.NoContent(http.StatusNoContent)
}
