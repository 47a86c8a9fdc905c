package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NegritaW/Sistema-Comandas/cmd"
	httpadapter "github.com/NegritaW/Sistema-Comandas/internal/adapters/in/http"
	"github.com/NegritaW/Sistema-Comandas/internal/adapters/out/postgres/customerrepo"
	"github.com/NegritaW/Sistema-Comandas/internal/adapters/out/postgres/orderrepo"
	"github.com/NegritaW/Sistema-Comandas/internal/adapters/out/postgres/productrepo"
	"github.com/NegritaW/Sistema-Comandas/internal/adapters/out/postgres/staffrepo"
	"github.com/NegritaW/Sistema-Comandas/internal/generated/servers"
	"github.com/NegritaW/Sistema-Comandas/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultDraftTTL = 6 * time.Hour
	tokenTTL        = 12 * time.Hour
	shutdownTimeout = 10 * time.Second
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	configs := getConfigs(logger)

	gormDB, err := openDatabase(configs)
	if err != nil {
		fatal(logger, "Failed to connect to database", err)
	}

	if err = migrate(gormDB); err != nil {
		fatal(logger, "Failed to run schema migration", err)
	}

	root, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		fatal(logger, "Failed to build composition root", err)
	}

	tokens, err := httpadapter.NewTokenIssuer(configs.JWTSecret, tokenTTL)
	if err != nil {
		fatal(logger, "Failed to configure token issuer", err)
	}

	authenticateStaffHandler, err := root.CreateAuthenticateStaffQueryHandler()
	if err != nil {
		fatal(logger, "Failed to build login handler", err)
	}

	server := httpadapter.NewServer(
		root.CreateOpenDraftCommandHandler(),
		root.CreateReplaceLinesCommandHandler(),
		root.CreateSubmitOrderCommandHandler(),
		root.CreateMarkOrderReadyCommandHandler(),
		root.CreateVoidOrderCommandHandler(),
		root.CreateRegisterCustomerCommandHandler(),
		root.CreateRegisterStaffCommandHandler(),
		root.CreateCreateCategoryCommandHandler(),
		root.CreateCreateProductCommandHandler(),
		root.CreateChangeProductPriceCommandHandler(),
		authenticateStaffHandler,
		root.CreateGetOrderQueryHandler(),
		root.CreateGetKitchenOrdersQueryHandler(),
		root.CreateGetMenuQueryHandler(),
		root.CreateGetCustomersQueryHandler(),
		root.CreateGetPriceHistoryQueryHandler(),
		root.CreateGetSalesReportQueryHandler(),
		root.CreateGetTopProductsQueryHandler(),
		tokens,
		logger,
	)

	jobManager := jobs.NewJobManager(
		root.CreateCleanupStaleDraftsCommandHandler(), draftTTL(configs, logger), logger)
	if err = jobManager.StartAll(); err != nil {
		fatal(logger, "Failed to start background jobs", err)
	}
	defer jobManager.StopAll()

	startWebServer(server, tokens, configs, logger)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file found, relying on process environment")
	}

	return cmd.Config{
		HTTPPort:          os.Getenv("HTTP_PORT"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            os.Getenv("DB_PORT"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBSslMode:         os.Getenv("DB_SSLMODE"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		KitchenPushURL:    os.Getenv("KITCHEN_PUSH_URL"),
		KitchenRelayToken: os.Getenv("KITCHEN_RELAY_TOKEN"),
		DraftTTL:          os.Getenv("DRAFT_TTL"),
	}
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
}

func migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&productrepo.CategoryDTO{},
		&productrepo.ProductDTO{},
		&productrepo.PriceChangeDTO{},
		&customerrepo.CustomerDTO{},
		&staffrepo.StaffDTO{},
	)
}

func draftTTL(configs cmd.Config, logger *slog.Logger) time.Duration {
	if configs.DraftTTL == "" {
		return defaultDraftTTL
	}

	ttl, err := time.ParseDuration(configs.DraftTTL)
	if err != nil || ttl <= 0 {
		logger.Warn("Invalid DRAFT_TTL, using default", "value", configs.DraftTTL, "default", defaultDraftTTL)
		return defaultDraftTTL
	}

	return ttl
}

func startWebServer(server *httpadapter.Server, tokens *httpadapter.TokenIssuer, configs cmd.Config, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.OFF)
	e.Use(middleware.Recover())
	e.Use(httpadapter.NewAuthMiddleware(tokens, configs.KitchenRelayToken))

	servers.RegisterHandlers(e, server)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil {
			logger.Info("Web server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		fatal(logger, "Forced shutdown", err)
	}
}

func fatal(logger *slog.Logger, message string, err error) {
	logger.Error(message, "error", err)
	os.Exit(1)
}
