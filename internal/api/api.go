package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/ougirez/coalportal/internal/api/controller"
	"github.com/ougirez/coalportal/internal/pkg/logger"
	"github.com/ougirez/coalportal/internal/service/portal"
)

type Config struct {
	// AdminSecret signs government tokens. Empty disables the admin guard.
	AdminSecret  string
	AllowOrigins []string
}

type APIService struct {
	router *echo.Echo
	portal *portal.Service
	secret string
}

func (svc *APIService) Serve(addr string) error {
	logger.Infof(context.Background(), "http server listening on %s", addr)
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func (svc *APIService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	svc.router.ServeHTTP(w, r)
}

func NewAPIService(portalSvc *portal.Service, artifacts controller.ArtifactOpener, cfg Config) (*APIService, error) {
	svc := &APIService{router: echo.New(), portal: portalSvc, secret: cfg.AdminSecret}

	renderer, err := newTemplateRenderer()
	if err != nil {
		return nil, err
	}

	svc.router.HideBanner = true
	svc.router.HidePort = true
	svc.router.Logger.SetLevel(log.ERROR)
	svc.router.JSONSerializer = sonicSerializer{}
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.Renderer = renderer
	svc.router.HTTPErrorHandler = httpErrorHandler

	svc.router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		RequestIDHandler: func(c echo.Context, id string) {
			c.SetRequest(c.Request().WithContext(logger.WithRequestID(c.Request().Context(), id)))
		},
	}))
	svc.router.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Infow(c.Request().Context(), "request",
				"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency.String())
			return nil
		},
	}))
	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{echo.GET, echo.POST},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	cntrl := controller.NewController(svc.portal, artifacts)

	svc.router.GET("/", cntrl.Dashboard)
	svc.router.GET("/healthz", cntrl.Health)
	svc.router.POST("/predict", cntrl.PredictEmission)
	svc.router.GET("/reports/:filename", cntrl.DownloadReport)

	api := svc.router.Group("/api")

	api.GET("/production/:company", cntrl.GetProduction)
	api.GET("/compliance/:company", cntrl.GetCompliance)

	api.GET("/industry-overview", cntrl.GetIndustryOverview)
	api.GET("/companies", cntrl.ListCompanies)
	api.GET("/company-summary", cntrl.GetCompanySummary)
	api.GET("/predict-future", cntrl.PredictFuture)

	api.POST("/approve/:company", cntrl.ApproveCompany, svc.AdminMiddleware)
	api.POST("/reject/:company", cntrl.RejectCompany, svc.AdminMiddleware)

	api.GET("/notices", cntrl.ListNotices)
	api.POST("/send-notice", cntrl.SendNotice, svc.AdminMiddleware)
	api.GET("/auctions", cntrl.ListAuctions)
	api.POST("/start-auction", cntrl.StartAuction, svc.AdminMiddleware)
	api.GET("/reports", cntrl.ListReports)
	api.POST("/generate-report", cntrl.GenerateReport, svc.AdminMiddleware)

	api.POST("/send-message", cntrl.SendMessage)
	api.GET("/messages/all", cntrl.ListAllMessages)
	api.GET("/messages/:company", cntrl.ListCompanyMessages)

	return svc, nil
}
