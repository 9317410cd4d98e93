package controller

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/coalportal/internal/service/portal"
)

func companyParam(ctx echo.Context) string {
	raw := ctx.Param("company")
	if unescaped, err := url.PathUnescape(raw); err == nil {
		return unescaped
	}
	return raw
}

func (c *Controller) GetProduction(ctx echo.Context) error {
	production, err := c.portal.Production(companyParam(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, production)
}

func (c *Controller) GetCompliance(ctx echo.Context) error {
	compliance, err := c.portal.Compliance(companyParam(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, compliance)
}

func (c *Controller) GetIndustryOverview(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.portal.IndustryOverview())
}

func (c *Controller) ListCompanies(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.portal.Companies())
}

func (c *Controller) GetCompanySummary(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.portal.CompanySummary())
}

func (c *Controller) PredictFuture(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.portal.PredictFuture())
}

func (c *Controller) ApproveCompany(ctx echo.Context) error {
	res, err := c.portal.Approve(ctx.Request().Context(), companyParam(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *Controller) RejectCompany(ctx echo.Context) error {
	res, err := c.portal.Reject(ctx.Request().Context(), companyParam(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, res)
}

type predictEmissionRequest struct {
	CoalProduction    float64 `form:"coal_production" validate:"finite"`
	CoalType          float64 `form:"coal_type" validate:"finite"`
	EnergyConsumption float64 `form:"energy_consumption" validate:"finite"`
	EmissionFactor    float64 `form:"emission_factor" validate:"finite"`
}

// PredictEmission estimates emissions from the calculator form. Missing fields count as zero
// and any finite value is accepted, negatives included.
func (c *Controller) PredictEmission(ctx echo.Context) error {
	var req predictEmissionRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, c.portal.EstimateEmission(portal.EmissionInput{
		Production: req.CoalProduction,
		CoalType:   req.CoalType,
		Energy:     req.EnergyConsumption,
		Factor:     req.EmissionFactor,
	}))
}
