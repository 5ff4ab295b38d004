package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/xyzcommerce/supplier-discount-backend/api/middleware"
	"github.com/xyzcommerce/supplier-discount-backend/api/routes"
	"github.com/xyzcommerce/supplier-discount-backend/internal/auth"
	"github.com/xyzcommerce/supplier-discount-backend/internal/catalog"
	"github.com/xyzcommerce/supplier-discount-backend/internal/metadata"
	"github.com/xyzcommerce/supplier-discount-backend/internal/pricing"
	"github.com/xyzcommerce/supplier-discount-backend/internal/settings"
	"github.com/xyzcommerce/supplier-discount-backend/internal/users"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/config"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/currency"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/db"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/env"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/logger"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/metrics"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/migrate"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	pricingMetrics := metrics.NewPricingMetrics(registry)

	metaService, err := metadata.NewService(metadata.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create metadata service", err)
		os.Exit(1)
	}

	settingsService, err := settings.NewService(settings.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create settings service", err)
		os.Exit(1)
	}

	resolver, err := pricing.NewResolver(metaService, settingsService, pricingMetrics, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create discount resolver", err)
		os.Exit(1)
	}

	currencyFormatter := currency.NewFormatter(cfg.Pricing)
	priceFormatter, err := pricing.NewFormatter(currencyFormatter)
	if err != nil {
		logg.Error(context.Background(), "failed to create price formatter", err)
		os.Exit(1)
	}

	hooks, err := pricing.NewHooks(resolver, priceFormatter, middleware.SupplierPricingEligibility())
	if err != nil {
		logg.Error(context.Background(), "failed to create pricing hooks", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(catalog.NewRepository(dbClient.DB()), dbClient, metaService, hooks, currencyFormatter)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:  users.NewRepository(dbClient.DB()),
		JWTConfig: cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	registerService, err := auth.NewRegisterService(auth.RegisterServiceParams{
		DB:             dbClient,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create register service", err)
		os.Exit(1)
	}

	adminUserService, err := auth.NewAdminUserService(auth.AdminUserServiceParams{
		DB:             dbClient,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create admin user service", err)
		os.Exit(1)
	}

	addr := ":" + env.Get("PORT", cfg.App.Port)
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:           cfg,
			Logger:           logg,
			DB:               dbClient,
			Redis:            redisClient,
			Metrics:          registry,
			AuthService:      authService,
			RegisterService:  registerService,
			AdminUserService: adminUserService,
			CatalogService:   catalogService,
			SettingsService:  settingsService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
