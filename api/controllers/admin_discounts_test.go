package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/xyzcommerce/supplier-discount-backend/internal/catalog"
	pkgerrors "github.com/xyzcommerce/supplier-discount-backend/pkg/errors"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/logger"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/pagination"
)

func newControllerLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
}

func requestWithParam(method, url, param, value string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, url, body)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(param, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestAdminSetProductDiscount(t *testing.T) {
	logg := newControllerLogger()
	productID := uuid.New()

	t.Run("stores valid percent", func(t *testing.T) {
		stub := &stubCatalogService{}
		req := requestWithParam(http.MethodPut, "/api/admin/v1/products/"+productID.String()+"/discount",
			"productId", productID.String(), strings.NewReader(`{"percent":"20"}`))
		rec := httptest.NewRecorder()
		AdminSetProductDiscount(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d", rec.Code)
		}
		if stub.setProductID != productID || stub.setPercent != "20" {
			t.Fatalf("service received %s / %q", stub.setProductID, stub.setPercent)
		}
	})

	t.Run("empty percent forwards the clear", func(t *testing.T) {
		stub := &stubCatalogService{}
		req := requestWithParam(http.MethodPut, "/api/admin/v1/products/"+productID.String()+"/discount",
			"productId", productID.String(), strings.NewReader(`{"percent":""}`))
		rec := httptest.NewRecorder()
		AdminSetProductDiscount(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d", rec.Code)
		}
		if stub.setPercent != "" {
			t.Fatalf("expected empty percent forwarded, got %q", stub.setPercent)
		}
	})

	t.Run("service validation error maps to 400", func(t *testing.T) {
		stub := &stubCatalogService{
			setErr: pkgerrors.New(pkgerrors.CodeValidation, "discount percent must be a whole number between 1 and 100"),
		}
		req := requestWithParam(http.MethodPut, "/api/admin/v1/products/"+productID.String()+"/discount",
			"productId", productID.String(), strings.NewReader(`{"percent":"150"}`))
		rec := httptest.NewRecorder()
		AdminSetProductDiscount(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 got %d", rec.Code)
		}
		var payload struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
			t.Fatalf("decode error payload: %v", err)
		}
		if payload.Error.Code != string(pkgerrors.CodeValidation) {
			t.Fatalf("unexpected code %s", payload.Error.Code)
		}
	})

	t.Run("invalid product id", func(t *testing.T) {
		stub := &stubCatalogService{}
		req := requestWithParam(http.MethodPut, "/api/admin/v1/products/not-a-uuid/discount",
			"productId", "not-a-uuid", strings.NewReader(`{"percent":"20"}`))
		rec := httptest.NewRecorder()
		AdminSetProductDiscount(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 got %d", rec.Code)
		}
	})
}

func TestAdminClearProductDiscount(t *testing.T) {
	logg := newControllerLogger()
	productID := uuid.New()

	stub := &stubCatalogService{}
	req := requestWithParam(http.MethodDelete, "/api/admin/v1/products/"+productID.String()+"/discount",
		"productId", productID.String(), nil)
	rec := httptest.NewRecorder()
	AdminClearProductDiscount(stub, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", rec.Code)
	}
	if stub.clearedProductID != productID {
		t.Fatalf("expected clear on %s got %s", productID, stub.clearedProductID)
	}
}

func TestAdminSetVariationDiscount(t *testing.T) {
	logg := newControllerLogger()
	variationID := uuid.New()

	stub := &stubCatalogService{}
	req := requestWithParam(http.MethodPut, "/api/admin/v1/variations/"+variationID.String()+"/discount",
		"variationId", variationID.String(), strings.NewReader(`{"percent":"25"}`))
	rec := httptest.NewRecorder()
	AdminSetVariationDiscount(stub, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if stub.setVariationID != variationID || stub.setPercent != "25" {
		t.Fatalf("service received %s / %q", stub.setVariationID, stub.setPercent)
	}
}

func TestAdminClearVariationDiscountNotFound(t *testing.T) {
	logg := newControllerLogger()
	variationID := uuid.New()

	stub := &stubCatalogService{
		clearErr: pkgerrors.New(pkgerrors.CodeNotFound, "variation not found"),
	}
	req := requestWithParam(http.MethodDelete, "/api/admin/v1/variations/"+variationID.String()+"/discount",
		"variationId", variationID.String(), nil)
	rec := httptest.NewRecorder()
	AdminClearVariationDiscount(stub, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

type stubCatalogService struct {
	products []catalog.ProductDTO
	product  *catalog.ProductDTO
	listErr  error
	getErr   error
	setErr   error
	clearErr error

	setProductID     uuid.UUID
	setVariationID   uuid.UUID
	setPercent       string
	clearedProductID uuid.UUID
	deletedProductID uuid.UUID
	createInput      catalog.CreateProductInput
	updateInput      catalog.UpdateProductInput
}

func (s *stubCatalogService) ListProducts(ctx context.Context, params pagination.Params) (*catalog.ProductPage, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return &catalog.ProductPage{Products: s.products}, nil
}

func (s *stubCatalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*catalog.ProductDTO, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.product, nil
}

func (s *stubCatalogService) CreateProduct(ctx context.Context, input catalog.CreateProductInput) (*catalog.ProductDTO, error) {
	s.createInput = input
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.product, nil
}

func (s *stubCatalogService) UpdateProduct(ctx context.Context, productID uuid.UUID, input catalog.UpdateProductInput) (*catalog.ProductDTO, error) {
	s.updateInput = input
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.product, nil
}

func (s *stubCatalogService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	s.deletedProductID = productID
	return s.clearErr
}

func (s *stubCatalogService) SetProductDiscount(ctx context.Context, productID uuid.UUID, rawPercent string) error {
	s.setProductID = productID
	s.setPercent = rawPercent
	return s.setErr
}

func (s *stubCatalogService) ClearProductDiscount(ctx context.Context, productID uuid.UUID) error {
	s.clearedProductID = productID
	return s.clearErr
}

func (s *stubCatalogService) SetVariationDiscount(ctx context.Context, variationID uuid.UUID, rawPercent string) error {
	s.setVariationID = variationID
	s.setPercent = rawPercent
	return s.setErr
}

func (s *stubCatalogService) ClearVariationDiscount(ctx context.Context, variationID uuid.UUID) error {
	s.setVariationID = variationID
	return s.clearErr
}
