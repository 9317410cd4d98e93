package controller

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) ListReports(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.portal.Reports())
}

type generateReportRequest struct {
	Type string `json:"type" validate:"required"`
}

func (c *Controller) GenerateReport(ctx echo.Context) error {
	var req generateReportRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	res, err := c.portal.GenerateReport(ctx.Request().Context(), req.Type)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *Controller) DownloadReport(ctx echo.Context) error {
	filename := ctx.Param("filename")

	rc, err := c.artifacts.Open(ctx.Request().Context(), filename)
	if err != nil {
		return err
	}
	defer rc.Close()

	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.Stream(http.StatusOK, "text/csv; charset=utf-8", rc)
}
