package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-internmatch-backend/config"
	v1 "go-internmatch-backend/internal/delivery/http/v1"
	"go-internmatch-backend/internal/repository/postgres"
	"go-internmatch-backend/internal/repository/redisrepo"
	"go-internmatch-backend/internal/usecase"
	"go-internmatch-backend/pkg/database"
	"go-internmatch-backend/pkg/email"
	"go-internmatch-backend/pkg/logger"
	"go-internmatch-backend/pkg/redis"
	"go-internmatch-backend/pkg/storage"

	"github.com/go-playground/validator/v10"
)

// @title           InternMatch Backend API
// @version         1.0
// @description     Backend for the student/recruiter internship matchmaking platform.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting internmatch backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (sessions + OTP codes)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Error("Failed to connect to redis", "error", err)
		os.Exit(1)
	}

	// 5. Setup Repositories
	accountRepo := postgres.NewAccountRepository(dbPool)
	studentRepo := postgres.NewStudentRepository(dbPool)
	recruiterRepo := postgres.NewRecruiterRepository(dbPool)
	bookmarkRepo := postgres.NewBookmarkRepository(dbPool)
	sessionRepo := redisrepo.NewSessionRepository(redis.Client())
	otpRepo := redisrepo.NewOTPRepository(redis.Client())

	// 6. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - recruiter OTP delivery will be unavailable")
	}

	// 7. Setup Blob Storage
	assetStore, err := storage.NewS3Store(context.Background(), storage.Config{
		Provider:        storage.Provider(cfg.S3Provider),
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		WasabiEndpoint:  cfg.WasabiEndpoint,
		PublicBaseURL:   cfg.PublicAssetBaseURL,
	})
	if err != nil {
		logger.Log.Error("Failed to initialize blob storage", "error", err)
		os.Exit(1)
	}

	// 8. Setup UseCases
	validate := validator.New()
	otpUC := usecase.NewOTPUsecase(otpRepo, accountRepo, emailService, time.Duration(cfg.OTPTTLMinutes)*time.Minute)
	authUC := usecase.NewAuthUsecase(accountRepo, studentRepo, recruiterRepo, sessionRepo, otpUC, time.Duration(cfg.SessionTTLHours)*time.Hour)
	studentUC := usecase.NewStudentUsecase(studentRepo)
	recruiterUC := usecase.NewRecruiterUsecase(recruiterRepo, accountRepo, validate)
	bookmarkUC := usecase.NewBookmarkUsecase(bookmarkRepo, recruiterRepo, studentRepo)
	assetUC := usecase.NewAssetUsecase(assetStore)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		OTPUC:       otpUC,
		StudentUC:   studentUC,
		RecruiterUC: recruiterUC,
		BookmarkUC:  bookmarkUC,
		AssetUC:     assetUC,
		Sessions:    sessionRepo,
		Config:      cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
