package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/coalportal/internal/domain"
)

type dashboardView struct {
	Overview  domain.IndustryOverview
	Companies []domain.CompanyListItem
	Notices   []domain.Notice
	Auctions  []domain.Auction
	Reports   []domain.Report
}

func (c *Controller) Dashboard(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, "index.html", dashboardView{
		Overview:  c.portal.IndustryOverview(),
		Companies: c.portal.Companies(),
		Notices:   c.portal.Notices(),
		Auctions:  c.portal.Auctions(),
		Reports:   c.portal.Reports(),
	})
}

type healthResponse struct {
	Status    string `json:"status"`
	Companies int    `json:"companies"`
}

func (c *Controller) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, healthResponse{Status: "ok", Companies: c.portal.CompanyCount()})
}
