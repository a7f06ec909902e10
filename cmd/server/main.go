package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"zhejiang-tour/internal/config"
	apphttp "zhejiang-tour/internal/http"
	"zhejiang-tour/internal/repository/localstore"
	"zhejiang-tour/internal/repository/sqlite"
	"zhejiang-tour/internal/service"
	"zhejiang-tour/internal/storage"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	store := sqlite.NewLocalStore(db)
	if err := store.Init(ctx); err != nil {
		logger.Fatalf("init local storage: %v", err)
	}

	userRepo := localstore.NewUserRepository(store)
	sessionStore := localstore.NewSessionStore(store)
	favoritesRepo := localstore.NewFavoritesRepository(store)
	themeRepo := localstore.NewThemeRepository(store)

	authService := service.NewAuthService(userRepo, sessionStore, service.LockoutPolicy{
		MaxAttempts:       cfg.Auth.MaxLoginAttempts,
		LockDuration:      time.Duration(cfg.Auth.LockoutMinutes) * time.Minute,
		MinPasswordLength: cfg.Auth.MinPasswordLength,
	}, logger)
	if err := authService.Restore(ctx); err != nil {
		logger.Warnf("restore session: %v", err)
	}

	attractionsService := service.NewAttractionsService(favoritesRepo, time.Duration(cfg.Catalog.FetchDelayMS)*time.Millisecond)
	themeService := service.NewThemeService(themeRepo)

	mediaSvc, err := buildMediaStorage(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("setup media storage: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(
		authService,
		attractionsService,
		themeService,
		mediaSvc,
		cfg.Storage.Bucket,
		cfg.Storage.KeyPrefix,
		logger,
	)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

func buildMediaStorage(ctx context.Context, cfg config.Config, logger *logrus.Logger) (storage.Service, error) {
	if cfg.Storage.Bucket == "" {
		logger.Info("media storage disabled (no bucket configured)")
		return nil, nil
	}

	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Storage.Region),
	}
	if cfg.AWS.Profile != "" {
		loadOpts = append(loadOpts, awscfg.WithSharedConfigProfile(cfg.AWS.Profile))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Storage.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
			o.UsePathStyle = true
		}
	})
	logger.Infof("using s3 bucket %s (region %s)", cfg.Storage.Bucket, cfg.Storage.Region)
	return storage.NewS3Service(client), nil
}
