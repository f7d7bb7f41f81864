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

// AssetController : Asset controller struct
type AssetController struct {
	svc *service.NesteggService
}

func NewAssetController(svc *service.NesteggService) *AssetController {
	return &AssetController{svc: svc}
}

type AssetRequestBody struct {
	Type            string          `json:"type" validate:"required"`
	Value           decimal.Decimal `json:"value"`
	Description     string          `json:"description"`
	AcquisitionDate *time.Time      `json:"acquisition_date"`
}

type GetAssetsResponseBody struct {
	Assets []models.Asset `json:"assets"`
}

// GetAssets godoc
// @Summary      Retrieve assets
// @Description  Returns all assets of the current user, newest first
// @Accept       json
// @Produce      json
// @Tags         NetWorth
// @Success      200  {object}  GetAssetsResponseBody
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/assets [get]
// @Security     OAuth2Password
func (controller *AssetController) GetAssets(c echo.Context) error {
	userId := c.Get("UserID").(int64)

	assets, err := controller.svc.AssetsFor(c.Request().Context(), userId)
	if err != nil {
		c.Logger().Errorf("Error fetching assets for user_id:%v error: %v", userId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &GetAssetsResponseBody{Assets: assets})
}

// AddAsset godoc
// @Summary      Add an asset
// @Accept       json
// @Produce      json
// @Tags         NetWorth
// @Param        asset  body      AssetRequestBody  True  "Add Asset"
// @Success      200    {object}  models.Asset
// @Failure      400    {object}  responses.ErrorResponse
// @Router       /v2/assets [post]
// @Security     OAuth2Password
func (controller *AssetController) AddAsset(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	var body AssetRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load asset request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if body.Value.IsNegative() {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	asset := &models.Asset{
		UserID:      userId,
		Type:        body.Type,
		Value:       body.Value,
		Description: body.Description,
	}
	if body.AcquisitionDate != nil {
		asset.AcquisitionDate = bun.NullTime{Time: *body.AcquisitionDate}
	}
	if err := controller.svc.CreateAsset(c.Request().Context(), asset); err != nil {
		c.Logger().Errorf("Error creating asset: user_id:%v error: %v", userId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, asset)
}

// UpdateAsset godoc
// @Summary      Update an asset
// @Accept       json
// @Produce      json
// @Tags         NetWorth
// @Param        id     path      int               true  "Asset id"
// @Param        asset  body      AssetRequestBody  True  "Update Asset"
// @Success      200    {object}  models.Asset
// @Failure      400    {object}  responses.ErrorResponse
// @Failure      404    {object}  responses.ErrorResponse
// @Router       /v2/assets/{id} [put]
// @Security     OAuth2Password
func (controller *AssetController) UpdateAsset(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	assetId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body AssetRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load asset request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if body.Value.IsNegative() {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	asset := &models.Asset{
		ID:          assetId,
		UserID:      userId,
		Type:        body.Type,
		Value:       body.Value,
		Description: body.Description,
	}
	if body.AcquisitionDate != nil {
		asset.AcquisitionDate = bun.NullTime{Time: *body.AcquisitionDate}
	}
	if err := controller.svc.UpdateAsset(c.Request().Context(), asset); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		c.Logger().Errorf("Error updating asset: user_id:%v asset_id:%v error: %v", userId, assetId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, asset)
}

// DeleteAsset godoc
// @Summary      Delete an asset
// @Accept       json
// @Produce      json
// @Tags         NetWorth
// @Param        id  path  int  true  "Asset id"
// @Success      204
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v2/assets/{id} [delete]
// @Security     OAuth2Password
func (controller *AssetController) DeleteAsset(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	assetId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := controller.svc.DeleteAsset(c.Request().Context(), userId, assetId); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		c.Logger().Errorf("Error deleting asset: user_id:%v asset_id:%v error: %v", userId, assetId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.NoContent(http.StatusNoContent)
}
