package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"activityfinder/cmd/fx/activity_fx"
	"activityfinder/cmd/fx/config_fx"
	"activityfinder/cmd/fx/controllers_fx"
	"activityfinder/cmd/fx/llm_fx"
	"activityfinder/cmd/fx/logger_fx"
	"activityfinder/internal/api"
	"activityfinder/internal/api/controllers"
	"activityfinder/internal/infra"
	"activityfinder/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		llm_fx.Module,
		activity_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg infra.Config, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("failed to serve", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg infra.Config,
	logger *zap.Logger,
	activityController *controllers.ActivityController,
	healthController *controllers.HealthController) *gin.Engine {

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	api.RegisterRoutes(r, activityController, healthController)

	return r
}
