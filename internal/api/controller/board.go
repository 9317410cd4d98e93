package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func (c *Controller) ListNotices(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.portal.Notices())
}

type sendNoticeRequest struct {
	Notice string `json:"notice" validate:"required"`
}

func (c *Controller) SendNotice(ctx echo.Context) error {
	var req sendNoticeRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	res, err := c.portal.SendNotice(ctx.Request().Context(), req.Notice)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *Controller) ListAuctions(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.portal.Auctions())
}

type startAuctionRequest struct {
	Name    string          `json:"name" validate:"required"`
	Reserve decimal.Decimal `json:"reserve"`
}

func (c *Controller) StartAuction(ctx echo.Context) error {
	var req startAuctionRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	res, err := c.portal.StartAuction(ctx.Request().Context(), req.Name, req.Reserve)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, res)
}
