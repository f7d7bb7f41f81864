package controllers

import (
	"bytes"
	"net/http"

	"github.com/getnestegg/nestegg/lib/responses"
	"github.com/getnestegg/nestegg/lib/service"
	"github.com/labstack/echo/v4"
)

// ReportController : Report controller struct
type ReportController struct {
	svc *service.NesteggService
}

func NewReportController(svc *service.NesteggService) *ReportController {
	return &ReportController{svc: svc}
}

// The CSV is rendered to a buffer first so a failing query still
// produces a proper error response instead of a committed 200.
func (controller *ReportController) sendCSV(c echo.Context, filename string, render func(*bytes.Buffer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		c.Logger().Errorf("Error writing %s report: user_id:%v error: %v", filename, c.Get("UserID"), err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

// NetWorthCSV godoc
// @Summary      Export snapshot history as CSV
// @Produce      text/csv
// @Tags         Reports
// @Success      200
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/reports/networth.csv [get]
// @Security     OAuth2Password
func (controller *ReportController) NetWorthCSV(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	return controller.sendCSV(c, "networth.csv", func(buf *bytes.Buffer) error {
		return controller.svc.NetWorthReportCSV(c.Request().Context(), userId, buf)
	})
}

// EntriesCSV godoc
// @Summary      Export assets and liabilities as CSV
// @Produce      text/csv
// @Tags         Reports
// @Success      200
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/reports/entries.csv [get]
// @Security     OAuth2Password
func (controller *ReportController) EntriesCSV(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	return controller.sendCSV(c, "entries.csv", func(buf *bytes.Buffer) error {
		return controller.svc.EntriesReportCSV(c.Request().Context(), userId, buf)
	})
}
