package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/xyzcommerce/supplier-discount-backend/internal/auth"
	"github.com/xyzcommerce/supplier-discount-backend/internal/catalog"
	"github.com/xyzcommerce/supplier-discount-backend/internal/pricing"
	"github.com/xyzcommerce/supplier-discount-backend/internal/settings"
	"github.com/xyzcommerce/supplier-discount-backend/internal/users"
	pkgauth "github.com/xyzcommerce/supplier-discount-backend/pkg/auth"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/config"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/enums"
	pkgerrors "github.com/xyzcommerce/supplier-discount-backend/pkg/errors"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/logger"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/pagination"
)

func newTestRouter(t *testing.T, catalogSvc catalog.Service, settingsSvc settings.Service) (http.Handler, config.JWTConfig) {
	t.Helper()
	jwtCfg := config.JWTConfig{Secret: "router-test-secret", Issuer: "supplier-discount", ExpirationMinutes: 30}
	cfg := &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: jwtCfg,
	}
	logg := logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})

	handler := NewRouter(RouterParams{
		Config:           cfg,
		Logger:           logg,
		AuthService:      &routerAuthStub{},
		RegisterService:  &routerRegisterStub{},
		AdminUserService: &routerAdminUserStub{},
		CatalogService:   catalogSvc,
		SettingsService:  settingsSvc,
	})
	return handler, jwtCfg
}

func mintToken(t *testing.T, cfg config.JWTConfig, role enums.MemberRole) string {
	t.Helper()
	token, err := pkgauth.MintAccessToken(cfg, time.Now(), pkgauth.AccessTokenPayload{
		UserID: uuid.New(),
		Role:   role,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestRouterPublicSurface(t *testing.T) {
	handler, _ := newTestRouter(t, &routerCatalogStub{}, &routerSettingsStub{})

	for _, path := range []string{"/health/live", "/api/public/ping"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, rec.Code)
		}
	}
}

func TestRouterStorefrontRequiresAuth(t *testing.T) {
	handler, _ := newTestRouter(t, &routerCatalogStub{}, &routerSettingsStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestRouterStorefrontSeedsPricingMemo(t *testing.T) {
	stub := &routerCatalogStub{}
	handler, jwtCfg := newTestRouter(t, stub, &routerSettingsStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, jwtCfg, enums.MemberRoleSupplier))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if !stub.sawMemo {
		t.Fatal("expected request context to carry a pricing memo")
	}
}

func TestRouterAdminSurfaceRequiresAdminRole(t *testing.T) {
	handler, jwtCfg := newTestRouter(t, &routerCatalogStub{}, &routerSettingsStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, jwtCfg, enums.MemberRoleSupplier))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, jwtCfg, enums.MemberRoleAdmin))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}

func TestRouterAdminDiscountRoute(t *testing.T) {
	stub := &routerCatalogStub{}
	handler, jwtCfg := newTestRouter(t, stub, &routerSettingsStub{})
	productID := uuid.New()

	req := httptest.NewRequest(http.MethodPut, "/api/admin/v1/products/"+productID.String()+"/discount",
		strings.NewReader(`{"percent":"20"}`))
	req.Header.Set("Authorization", "Bearer "+mintToken(t, jwtCfg, enums.MemberRoleAdmin))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if stub.discountProductID != productID || stub.discountPercent != "20" {
		t.Fatalf("service received %s / %q", stub.discountProductID, stub.discountPercent)
	}
}

func TestRouterAdminSettingsRoute(t *testing.T) {
	handler, jwtCfg := newTestRouter(t, &routerCatalogStub{}, &routerSettingsStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/settings/pricing", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, jwtCfg, enums.MemberRoleAdmin))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}

type routerAuthStub struct{}

func (s *routerAuthStub) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
}

type routerRegisterStub struct{}

func (s *routerRegisterStub) Register(ctx context.Context, req auth.RegisterRequest) (*users.UserDTO, error) {
	return nil, pkgerrors.New(pkgerrors.CodeInternal, "not wired in this test")
}

type routerAdminUserStub struct{}

func (s *routerAdminUserStub) CreateUser(ctx context.Context, req auth.AdminCreateUserRequest) (*users.UserDTO, error) {
	return nil, pkgerrors.New(pkgerrors.CodeInternal, "not wired in this test")
}

type routerCatalogStub struct {
	sawMemo           bool
	discountProductID uuid.UUID
	discountPercent   string
}

func (s *routerCatalogStub) ListProducts(ctx context.Context, params pagination.Params) (*catalog.ProductPage, error) {
	s.sawMemo = pricing.MemoFromContext(ctx) != nil
	return &catalog.ProductPage{}, nil
}

func (s *routerCatalogStub) GetProduct(ctx context.Context, productID uuid.UUID) (*catalog.ProductDTO, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func (s *routerCatalogStub) CreateProduct(ctx context.Context, input catalog.CreateProductInput) (*catalog.ProductDTO, error) {
	return &catalog.ProductDTO{ID: uuid.New(), SKU: input.SKU, Title: input.Title}, nil
}

func (s *routerCatalogStub) UpdateProduct(ctx context.Context, productID uuid.UUID, input catalog.UpdateProductInput) (*catalog.ProductDTO, error) {
	return &catalog.ProductDTO{ID: productID}, nil
}

func (s *routerCatalogStub) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	return nil
}

func (s *routerCatalogStub) SetProductDiscount(ctx context.Context, productID uuid.UUID, rawPercent string) error {
	s.discountProductID = productID
	s.discountPercent = rawPercent
	return nil
}

func (s *routerCatalogStub) ClearProductDiscount(ctx context.Context, productID uuid.UUID) error {
	return nil
}

func (s *routerCatalogStub) SetVariationDiscount(ctx context.Context, variationID uuid.UUID, rawPercent string) error {
	return nil
}

func (s *routerCatalogStub) ClearVariationDiscount(ctx context.Context, variationID uuid.UUID) error {
	return nil
}

type routerSettingsStub struct{}

func (s *routerSettingsStub) ApplyOnSale(ctx context.Context) (bool, error) { return false, nil }

func (s *routerSettingsStub) DisplayMode(ctx context.Context) (enums.DisplayMode, error) {
	return enums.DisplayModeStrikethrough, nil
}

func (s *routerSettingsStub) PricingSettings(ctx context.Context) (*settings.PricingSettings, error) {
	return &settings.PricingSettings{ApplyOnSale: settings.ValueNo, DisplayMode: enums.DisplayModeStrikethrough.String()}, nil
}

func (s *routerSettingsStub) UpdatePricingSettings(ctx context.Context, input settings.UpdatePricingSettingsInput) (*settings.PricingSettings, error) {
	return s.PricingSettings(ctx)
}
