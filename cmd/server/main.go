package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mandi-bazaar.backend/internal/config"
	"mandi-bazaar.backend/internal/infrastructure/repositories"
	"mandi-bazaar.backend/internal/infrastructure/sms"
	"mandi-bazaar.backend/internal/infrastructure/storage"
	"mandi-bazaar.backend/internal/interfaces/http/handlers"
	"mandi-bazaar.backend/internal/interfaces/http/middleware"
	"mandi-bazaar.backend/internal/usecases"
	"mandi-bazaar.backend/pkg/jwt"
	"mandi-bazaar.backend/pkg/logger"
	"mandi-bazaar.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	accountRepo := repositories.NewAccountRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	retailerRepo := repositories.NewRetailerRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)

	// Initialize OTP store, SMS sender and document storage
	otpStore := redis.NewOTPStore(cfg.OTP.RecordTTL)
	smsSender := sms.NewLogSender()
	uploader := storage.NewLocalUploader(cfg.Storage.BaseDir, cfg.Storage.BaseURL)

	// Initialize usecases
	signupUsecase := usecases.NewSignupUsecase(accountRepo, profileRepo, otpStore, smsSender, jwtService)
	shopProfileUsecase := usecases.NewShopProfileUsecase(accountRepo, profileRepo, uploader)
	orderUsecase := usecases.NewOrderUsecase(orderRepo, retailerRepo)

	// Initialize handlers
	wholesalerHandler := handlers.NewWholesalerHandler(signupUsecase, shopProfileUsecase)
	orderHandler := handlers.NewOrderHandler(orderUsecase)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		wholesalerHandler: wholesalerHandler,
		orderHandler:      orderHandler,
		categoryHandler:   categoryHandler,
		authMiddleware:    middleware.AuthMiddleware(jwtService),
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
	}()

	// Start server
	log.Printf("🚀 Mandi Bazaar Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
