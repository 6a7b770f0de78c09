package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/jwilson717/Expenser-AccountsService/internal/config"
	"github.com/jwilson717/Expenser-AccountsService/internal/discovery"
	"github.com/jwilson717/Expenser-AccountsService/internal/events"
	"github.com/jwilson717/Expenser-AccountsService/internal/handler"
	"github.com/jwilson717/Expenser-AccountsService/internal/identity"
	"github.com/jwilson717/Expenser-AccountsService/internal/logging"
	"github.com/jwilson717/Expenser-AccountsService/internal/middleware"
	"github.com/jwilson717/Expenser-AccountsService/internal/repository"
	"github.com/jwilson717/Expenser-AccountsService/internal/service"
	"github.com/jwilson717/Expenser-AccountsService/migrations"
)

func main() {
	logging.Setup()
	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		slog.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	if cfg.MigrateOnStart {
		goose.SetBaseFS(migrations.FS)
		if err := goose.SetDialect("postgres"); err != nil {
			slog.Error("failed to configure migrations", "error", err)
			os.Exit(1)
		}
		if err := goose.Up(db, "."); err != nil {
			slog.Error("failed to apply migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("migrations applied")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer redisClient.Close()

	registry := discovery.NewRegistry()
	registry.Register(discovery.UserAuthService, cfg.AuthInstances)

	publisher := events.NewPublisher(redisClient)
	resolver := identity.NewResolver(registry, nil)

	typeRepo := repository.NewAccountTypeRepository(db)
	accountRepo := repository.NewAccountRepository(db)

	typeSvc := service.NewAccountTypeService(typeRepo, publisher)
	accountSvc := service.NewAccountService(accountRepo, typeRepo, publisher)

	typeHandler := handler.NewAccountTypeHandler(typeSvc)
	accountHandler := handler.NewAccountHandler(accountSvc, resolver)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	typeHandler.Register(router)
	accountHandler.Register(router)

	slog.Info("accounts service starting", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
