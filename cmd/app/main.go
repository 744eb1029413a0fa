package main

import (
	"context"
	"errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"net"
	"net/http"
	"time"
	"trivia/cmd/fx/auth_fx"
	"trivia/cmd/fx/category_fx"
	"trivia/cmd/fx/clue_fx"
	"trivia/cmd/fx/config_fx"
	"trivia/cmd/fx/controllers_fx"
	"trivia/cmd/fx/db_fx"
	"trivia/cmd/fx/logger_fx"
	"trivia/internal/api"
	"trivia/internal/config"
	"trivia/internal/services"
)

// @title           Trivia API
// @version         1.0
// @description     Categories, clues and game boards for a trivia game
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		category_fx.Module,
		clue_fx.Module,
		auth_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
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
					logger.Fatal("HTTP server failed", zap.Error(err))
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
	cfg *config.Config,
	logger *zap.Logger,
	authService services.AuthServiceInterface,
	controllers api.Controllers) *gin.Engine {

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	return api.NewRouter(cfg, logger, authService, controllers)
}
