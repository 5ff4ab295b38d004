package middleware

import (
	"context"
	"net/http"

	"github.com/xyzcommerce/supplier-discount-backend/internal/pricing"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/enums"
)

// PricingSession seeds every request with a fresh price memo so each product
// resolves at most once for the lifetime of the request. Memos are never
// shared across requests.
func PricingSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := pricing.ContextWithMemo(r.Context(), pricing.NewMemo())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminSurface marks requests routed through the administrative API. The
// supplier price overlay is suppressed on these routes so admins always see
// stored prices.
func AdminSurface() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithAdminSurface(r.Context())))
		})
	}
}

// SupplierPricingEligibility is the canonical predicate for the pricing
// hooks: the actor holds the supplier role and the request is not on the
// administrative surface.
func SupplierPricingEligibility() pricing.EligibilityFunc {
	return func(ctx context.Context) bool {
		if IsAdminSurface(ctx) {
			return false
		}
		return RoleFromContext(ctx) == enums.MemberRoleSupplier.String()
	}
}
