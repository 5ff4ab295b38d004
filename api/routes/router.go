package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xyzcommerce/supplier-discount-backend/api/controllers"
	"github.com/xyzcommerce/supplier-discount-backend/api/middleware"
	"github.com/xyzcommerce/supplier-discount-backend/internal/auth"
	"github.com/xyzcommerce/supplier-discount-backend/internal/catalog"
	"github.com/xyzcommerce/supplier-discount-backend/internal/settings"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/config"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/db"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/enums"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/logger"
	pkgredis "github.com/xyzcommerce/supplier-discount-backend/pkg/redis"
)

// RouterParams carries everything the HTTP surface depends on.
type RouterParams struct {
	Config           *config.Config
	Logger           *logger.Logger
	DB               db.Pinger
	Redis            *pkgredis.Client
	Metrics          prometheus.Gatherer
	AuthService      auth.Service
	RegisterService  auth.RegisterService
	AdminUserService auth.AdminUserService
	CatalogService   catalog.Service
	SettingsService  settings.Service
}

func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	// A typed nil would defeat the middleware's own nil checks.
	var idempotencyStore pkgredis.IdempotencyStore
	var redisPinger pkgredis.Pinger
	if p.Redis != nil {
		idempotencyStore = p.Redis
		redisPinger = p.Redis
	}

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.DB, redisPinger))
	})

	if p.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Metrics, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, p.Redis, logg)).
			Post("/login", controllers.AuthLogin(p.AuthService, logg))
		r.With(
			middleware.AuthRateLimit(registerPolicy, p.Redis, logg),
			middleware.Idempotency(idempotencyStore, logg),
		).Post("/register", controllers.AuthRegister(p.RegisterService, p.AuthService, logg))
	})

	// Storefront: prices are resolved per request through the pricing
	// pipeline, so every route gets a fresh memo.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.PricingSession())

		r.Get("/ping", controllers.PrivatePing())
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(p.CatalogService, logg))
			r.Get("/{productId}", controllers.ProductDetail(p.CatalogService, logg))
		})
	})

	// Administrative surface: supplier pricing is suppressed here so admins
	// always work with stored prices.
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.AdminSurface())
		r.Use(middleware.RequireRole(enums.MemberRoleAdmin.String(), logg))
		r.Use(middleware.Idempotency(idempotencyStore, logg))
		r.Use(middleware.PricingSession())

		r.Get("/ping", controllers.AdminPing())

		r.Route("/v1/users", func(r chi.Router) {
			r.Post("/", controllers.AdminCreateUser(p.AdminUserService, logg))
		})

		r.Route("/v1/products", func(r chi.Router) {
			r.Post("/", controllers.AdminCreateProduct(p.CatalogService, logg))
			r.Route("/{productId}", func(r chi.Router) {
				r.Patch("/", controllers.AdminUpdateProduct(p.CatalogService, logg))
				r.Delete("/", controllers.AdminDeleteProduct(p.CatalogService, logg))
				r.Put("/discount", controllers.AdminSetProductDiscount(p.CatalogService, logg))
				r.Delete("/discount", controllers.AdminClearProductDiscount(p.CatalogService, logg))
			})
		})

		r.Route("/v1/variations/{variationId}", func(r chi.Router) {
			r.Put("/discount", controllers.AdminSetVariationDiscount(p.CatalogService, logg))
			r.Delete("/discount", controllers.AdminClearVariationDiscount(p.CatalogService, logg))
		})

		r.Route("/v1/settings", func(r chi.Router) {
			r.Get("/pricing", controllers.AdminGetPricingSettings(p.SettingsService, logg))
			r.Put("/pricing", controllers.AdminUpdatePricingSettings(p.SettingsService, logg))
		})
	})

	return r
}
