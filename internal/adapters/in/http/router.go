package http

import (
	"context"
	"log/slog"
	"strings"

	"logistics/internal/adapters/in/http/docs"
	"logistics/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig holds what NewRouter needs besides the handlers.
type RouterConfig struct {
	Doc       *openapi3.T
	JWTSecret []byte
	Logger    *slog.Logger
}

// NewRouter builds the echo instance serving the API, its health probe and
// the swagger UI.
//
// Middleware order: recover, request log, bearer authentication, contract
// validation. Health and swagger routes are public and unvalidated.
func NewRouter(server servers.ServerInterface, cfg RouterConfig) (*echo.Echo, error) {
	logger := cfg.Logger.With("component", "router")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.INFO)
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = ErrorHandler(logger)

	contract, err := NewOpenAPIValidator(cfg.Doc, isPublic)
	if err != nil {
		return nil, err
	}
	if err = docs.Register(cfg.Doc); err != nil {
		return nil, err
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(context.Background(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))
	e.Use(NewAuthenticator(cfg.JWTSecret, isPublic).Middleware)
	e.Use(contract.Middleware)

	servers.RegisterHandlers(e, server)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

func isPublic(c echo.Context) bool {
	path := c.Request().URL.Path
	return path == "/health" || strings.HasPrefix(path, "/swagger/")
}
