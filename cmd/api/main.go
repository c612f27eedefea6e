package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/flavorshare/backend/config"
	"github.com/flavorshare/backend/internal/api"
	"github.com/flavorshare/backend/internal/database"
	"github.com/flavorshare/backend/internal/router"
	"github.com/flavorshare/backend/internal/server"
	"github.com/flavorshare/backend/internal/service"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	db, err := database.New(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	// Redis is optional: without it the feed cache is skipped and every
	// list read hits the database.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logrus.WithError(err).Warn("redis unavailable, feed cache disabled")
		redisClient = nil
	}

	ctx := context.Background()
	s3cfg, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to configure object storage")
	}

	imageService := service.NewImageService(s3cfg)
	authService := service.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(db)
	recipeService := service.NewRecipeService(db, redisClient, imageService)

	r := router.SetupRouter(
		api.NewUserHandler(authService, userService),
		api.NewRecipeHandler(recipeService, userService, authService),
		api.NewImageHandler(imageService, authService),
		cfg.CORSOrigins,
	)

	srv := server.New(r, cfg.ServerHost+":"+cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logrus.WithError(err).Fatal("server error")
		}
	case sig := <-quit:
		logrus.WithField("signal", sig.String()).Info("shutting down")
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.WithError(err).Fatal("server shutdown error")
	}
	logrus.Info("server stopped")
}
