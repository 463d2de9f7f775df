package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"futureplus/app/echo-server/router"
	adminService "futureplus/business/admin"
	giftService "futureplus/business/gift"
	planService "futureplus/business/plan"
	referralService "futureplus/business/referral"
	userService "futureplus/business/user"
	walletService "futureplus/business/wallet"
	"futureplus/internal/middleware"
	psqlRepo "futureplus/internal/repository/postgres"
	redisRepo "futureplus/internal/repository/redis"
	"futureplus/internal/rest"
	"futureplus/pkg/config"
	"futureplus/pkg/database"
	redisdb "futureplus/pkg/database/redis"
	"futureplus/pkg/logger"
	"futureplus/pkg/metrics"
	"futureplus/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting FuturePlus API", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer redisdb.CloseRedisClient(redisClient)

	logger.Info("Redis connected successfully")

	metrics.Init()

	// Init validate
	validate := validator.New()

	jwts := utils.NewJWTManager(cfg.JWT.SecretKey)

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	planRepo := psqlRepo.NewPlanRepository(db)
	transactionRepo := psqlRepo.NewTransactionRepository(db)
	giftRepo := psqlRepo.NewGiftRepository(db)
	referralRepo := psqlRepo.NewReferralRepository(db)
	adminRepo := psqlRepo.NewAdminRepository(db)
	tokenRepo := redisRepo.NewTokenRepository(redisClient)

	// Init service
	users := userService.NewUserService(userRepo, validate, tokenRepo, jwts)
	plans := planService.NewPlanService(planRepo)
	wallets := walletService.NewWalletService(transactionRepo)
	gifts := giftService.NewGiftService(giftRepo, userRepo)
	referrals := referralService.NewReferralService(referralRepo, cfg.App.AppURL)
	admins := adminService.NewAdminService(adminRepo, userRepo)

	// Init handler
	userHandler := rest.NewUserHandler(users)
	planHandler := rest.NewPlanHandler(plans)
	walletHandler := rest.NewWalletHandler(wallets)
	giftHandler := rest.NewGiftHandler(gifts)
	referralHandler := rest.NewReferralHandler(referrals)
	adminHandler := rest.NewAdminHandler(admins, plans, gifts)
	healthHandler := rest.NewHealthHandler(db)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.MetricsMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, middleware.AdminKeyHeader},
	}))

	authRequired := middleware.AuthMiddleware(users, jwts)
	adminOnly := middleware.AdminKeyMiddleware(admins)

	// Setup routes
	api := e.Group("/api")
	router.SetupAuthRoutes(api, userHandler, authRequired)
	router.SetupPlanRoutes(api, planHandler)
	router.SetupWalletRoutes(api, walletHandler)
	router.SetupGiftRoutes(api, giftHandler)
	router.SetupReferralRoutes(api, referralHandler)
	router.SetupAdminRoutes(api, adminHandler, adminOnly)
	router.SetupHealthRoutes(api, healthHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
