package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestAdminCreateProductSanitizesNames(t *testing.T) {
	logg := newControllerLogger()
	stub := &stubCatalogService{}

	longSKU := strings.Repeat("X", 70)
	body := `{
		"sku": "  ` + longSKU + `  ",
		"title": "  Garden Chair  ",
		"regular_price": "100.00",
		"variations": [
			{"sku": " CHAIR-GREEN ", "label": "  Green  ", "regular_price": "100.00"}
		]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/products", strings.NewReader(body))
	rec := httptest.NewRecorder()
	AdminCreateProduct(stub, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	if stub.createInput.SKU != strings.Repeat("X", 64) {
		t.Fatalf("expected sku trimmed and capped at 64, got %q", stub.createInput.SKU)
	}
	if stub.createInput.Title != "Garden Chair" {
		t.Fatalf("expected trimmed title, got %q", stub.createInput.Title)
	}
	if len(stub.createInput.Variations) != 1 {
		t.Fatalf("expected one variation, got %d", len(stub.createInput.Variations))
	}
	if v := stub.createInput.Variations[0]; v.SKU != "CHAIR-GREEN" || v.Label != "Green" {
		t.Fatalf("expected sanitized variation fields, got %q / %q", v.SKU, v.Label)
	}
}

func TestAdminUpdateProductSanitizesNames(t *testing.T) {
	logg := newControllerLogger()
	productID := uuid.New()

	t.Run("trims updated title", func(t *testing.T) {
		stub := &stubCatalogService{}
		req := requestWithParam(http.MethodPatch, "/api/admin/v1/products/"+productID.String(),
			"productId", productID.String(), strings.NewReader(`{"title":"  Garden Table  "}`))
		rec := httptest.NewRecorder()
		AdminUpdateProduct(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
		}
		if stub.updateInput.Title == nil || *stub.updateInput.Title != "Garden Table" {
			t.Fatalf("expected trimmed title, got %v", stub.updateInput.Title)
		}
	})

	t.Run("whitespace-only title rejected", func(t *testing.T) {
		stub := &stubCatalogService{}
		req := requestWithParam(http.MethodPatch, "/api/admin/v1/products/"+productID.String(),
			"productId", productID.String(), strings.NewReader(`{"title":"   "}`))
		rec := httptest.NewRecorder()
		AdminUpdateProduct(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 got %d", rec.Code)
		}
	})
}
