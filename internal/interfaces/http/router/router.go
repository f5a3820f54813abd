// Package router wires HTTP handlers into the gin engine.
package router

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/mktsync/backend/internal/infrastructure/config"
	"github.com/mktsync/backend/internal/infrastructure/logger"
	"github.com/mktsync/backend/internal/interfaces/http/handler"
	"github.com/mktsync/backend/internal/interfaces/http/middleware"
)

// RouteRegistrar defines the interface for registering routes on a
// versioned API group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Options holds the dependencies for building the HTTP engine.
type Options struct {
	Config     *config.Config
	Logger     *zap.Logger
	Webhook    *handler.WebhookHandler
	Health     *handler.HealthHandler
	Registrars []RouteRegistrar
}

// New builds the gin engine with middleware and all routes registered.
func New(opts Options) (*gin.Engine, error) {
	if opts.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(opts.Config.HTTP.TrustedProxies); err != nil {
		return nil, err
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinRecovery(opts.Logger))
	engine.Use(logger.GinMiddleware(opts.Logger))
	if opts.Config.HTTP.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(opts.Config.HTTP.MaxBodySize))
	}
	if opts.Config.Telemetry.Enabled {
		engine.Use(otelgin.Middleware(opts.Config.Telemetry.ServiceName))
	}

	engine.GET("/healthz", opts.Health.Health)

	api := engine.Group("/api/v1")
	opts.Webhook.RegisterRoutes(api)
	for _, registrar := range opts.Registrars {
		registrar.RegisterRoutes(api)
	}

	return engine, nil
}
