// Package main runs the Hope Harbor site backend with graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hopeharbor/backend/config"
	"github.com/hopeharbor/backend/internal/admin"
	"github.com/hopeharbor/backend/internal/applications"
	"github.com/hopeharbor/backend/internal/auth"
	"github.com/hopeharbor/backend/internal/i18n"
	"github.com/hopeharbor/backend/internal/middleware"
	"github.com/hopeharbor/backend/internal/positions"
	"github.com/hopeharbor/backend/internal/team"
	"github.com/hopeharbor/backend/pkg/database"
	"github.com/hopeharbor/backend/pkg/docstore"
	"github.com/hopeharbor/backend/pkg/queue"
	"github.com/hopeharbor/backend/pkg/redis"
	"github.com/hopeharbor/backend/pkg/response"
	"github.com/hopeharbor/backend/pkg/storage"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), logger)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	rdb, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
	if err != nil {
		logger.Fatal("redis", zap.Error(err))
	}
	defer rdb.Close()

	var s3Client *storage.S3
	if cfg.AWS.Region != "" {
		s3Client, err = storage.NewS3(ctx, storage.S3Config{
			Region:               cfg.AWS.Region,
			AccessKeyID:          cfg.AWS.AccessKeyID,
			SecretAccessKey:      cfg.AWS.SecretAccessKey,
			AssetsBucket:         cfg.AWS.AssetsBucket,
			PresignExpireMinutes: cfg.AWS.PresignExpireMinutes,
		}, logger)
		if err != nil {
			logger.Warn("s3 disabled", zap.Error(err))
		}
	}

	store := docstore.NewPostgres(pool)
	cleanupQueue := queue.NewQueue(rdb.Client, logger)

	// Localization
	bundle, err := i18n.NewBundle()
	if err != nil {
		logger.Fatal("load locales", zap.Error(err))
	}
	prefTTL := time.Duration(cfg.I18n.PreferenceTTLDays) * 24 * time.Hour
	prefStore := i18n.NewRedisPreferenceStore(rdb.Client, prefTTL)
	i18nHandler := i18n.NewHandler(bundle, prefStore, int(prefTTL.Seconds()), logger)

	// Auth
	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpireHours)
	authRepo := auth.NewRepository(pool)
	authHandler := auth.NewHandler(authRepo, jwtService, logger)

	// Collections
	applicationRepo := applications.NewRepository(store)
	positionRepo := positions.NewRepository(store)
	teamRepo := team.NewRepository(store)

	positionHandler := positions.NewHandler(positionRepo, logger)
	teamHandler := team.NewHandler(teamRepo, logger)
	applicationHandler := applications.NewHandler(applicationRepo, positionRepo, s3Client, logger)

	// Admin dashboard
	var assets admin.ObjectStorage
	var presigner admin.Presigner
	if s3Client != nil {
		assets = s3Client
		presigner = s3Client
	}
	dashboard := admin.NewDashboard(applicationRepo, positionRepo, teamRepo, assets, cleanupQueue, logger)
	adminHandler := admin.NewHandler(dashboard, presigner, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))

	// Health
	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })

	// Public site data
	router.GET("/positions", positionHandler.List)
	router.GET("/team", teamHandler.List)
	router.POST("/applications", applicationHandler.Submit)

	// Localization
	i18nGroup := router.Group("/i18n")
	{
		i18nGroup.GET("/languages", i18nHandler.Languages)
		i18nGroup.GET("/translations", i18nHandler.Translations)
		i18nGroup.PUT("/language", i18nHandler.ChangeLanguage)
	}

	// Auth (public)
	router.POST("/auth/login", authHandler.Login)

	// Admin dashboard (JWT, admin role)
	adminGroup := router.Group("/admin")
	adminGroup.Use(middleware.JWT(jwtService), middleware.RequireRole("admin"))
	{
		adminGroup.GET("/me", authHandler.Me)
		adminGroup.GET("/dashboard", adminHandler.Dashboard)
		adminGroup.POST("/refresh", adminHandler.Refresh)

		adminGroup.PATCH("/applications/:id/status", adminHandler.UpdateApplicationStatus)
		adminGroup.DELETE("/applications/:id", adminHandler.DeleteApplication)
		adminGroup.GET("/applications/:id/file-url", adminHandler.ApplicationFileURL)

		adminGroup.POST("/positions", adminHandler.SavePosition)
		adminGroup.PUT("/positions/:id", adminHandler.SavePosition)
		adminGroup.DELETE("/positions/:id", adminHandler.DeletePosition)

		adminGroup.POST("/team", adminHandler.SaveTeamMember)
		adminGroup.PUT("/team/:id", adminHandler.SaveTeamMember)
		adminGroup.DELETE("/team/:id", adminHandler.DeleteTeamMember)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
