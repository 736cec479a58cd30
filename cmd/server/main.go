package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"luckycat.backend/internal/config"
	"luckycat.backend/internal/infrastructure/mailer"
	"luckycat.backend/internal/infrastructure/repositories"
	"luckycat.backend/internal/interfaces/http/handlers"
	"luckycat.backend/internal/interfaces/http/middleware"
	"luckycat.backend/internal/usecases"
	"luckycat.backend/pkg/jwt"
	"luckycat.backend/pkg/logger"
	"luckycat.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	newLogger  = logger.New
	newRedis   = redis.New
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

// sqlPinger adapts the raw database handle to the health check
type sqlPinger struct {
	db *sql.DB
}

func (p sqlPinger) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	zlog, err := newLogger(cfg.Server.Env)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer zlog.Sync() //nolint:errcheck
	zlog.Info("logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Redis is optional: without it the menu is served straight from the
	// database.
	cache, err := newRedis(cfg.Redis.URL, cfg.Redis.Password)
	if err != nil {
		zlog.Warn("redis not available, menu caching disabled", zap.Error(err))
		cache = nil
	}
	if cache != nil {
		defer cache.Close() //nolint:errcheck
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		zlog.Warn("database not available, endpoints will return errors", zap.Error(err))
	} else {
		zlog.Info("connected to PostgreSQL")
	}

	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Expiry)

	mailSender, err := mailer.New(&cfg.Mail, zlog)
	if err != nil {
		return fmt.Errorf("failed to initialize mailer: %w", err)
	}

	userRepo := repositories.NewUserRepository(db)
	verifRepo := repositories.NewEmailVerificationRepository(db)
	resetRepo := repositories.NewPasswordResetRepository(db)
	menuRepo := repositories.NewMenuRepository(db)
	uow := repositories.NewUnitOfWork(db)

	authUsecase := usecases.NewAuthUsecase(userRepo, verifRepo, resetRepo, mailSender, uow)
	userUsecase := usecases.NewUserUsecase(userRepo)
	menuUsecase := usecases.NewMenuUsecase(menuRepo, cache, cfg.Cache.MenuTTL, zlog)

	metricsReg := prometheus.NewRegistry()
	metricsReg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(metricsReg)

	var cachePinger handlers.Pinger
	if cache != nil {
		cachePinger = cache
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware(zlog))
	r.Use(metrics.Handler())

	registerRoutes(r, routeDeps{
		authHandler:    handlers.NewAuthHandler(authUsecase, jwtService, cfg.JWT.Expiry),
		userHandler:    handlers.NewUserHandler(userUsecase),
		menuHandler:    handlers.NewMenuHandler(menuUsecase),
		healthHandler:  handlers.NewHealthHandler(sqlPinger{db: sqlDB}, cachePinger),
		authMiddleware: middleware.AuthMiddleware(jwtService),
		metricsReg:     metricsReg,
	})

	zlog.Info("starting server", zap.String("port", cfg.Server.Port))
	return runServer(r, cfg.Server.Port)
}
