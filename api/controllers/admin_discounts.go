package controllers

import (
	"net/http"
	"strings"

	"github.com/xyzcommerce/supplier-discount-backend/api/responses"
	"github.com/xyzcommerce/supplier-discount-backend/api/validators"
	"github.com/xyzcommerce/supplier-discount-backend/internal/catalog"
	pkgerrors "github.com/xyzcommerce/supplier-discount-backend/pkg/errors"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/logger"
)

type setDiscountRequest struct {
	Percent string `json:"percent"`
}

// AdminSetProductDiscount stores a product's supplier discount percent. An
// empty percent clears the discount, matching the admin form's blank state.
func AdminSetProductDiscount(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		productID, err := parseIDParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload setDiscountRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.SetProductDiscount(r.Context(), productID, payload.Percent); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{
			"product_id": productID.String(),
			"percent":    strings.TrimSpace(payload.Percent),
		})
	}
}

// AdminClearProductDiscount removes a product's supplier discount percent.
func AdminClearProductDiscount(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		productID, err := parseIDParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.ClearProductDiscount(r.Context(), productID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// AdminSetVariationDiscount stores a variation's supplier discount percent.
func AdminSetVariationDiscount(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		variationID, err := parseIDParam(r, "variationId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload setDiscountRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.SetVariationDiscount(r.Context(), variationID, payload.Percent); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{
			"variation_id": variationID.String(),
			"percent":      strings.TrimSpace(payload.Percent),
		})
	}
}

// AdminClearVariationDiscount removes a variation's supplier discount percent.
func AdminClearVariationDiscount(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		variationID, err := parseIDParam(r, "variationId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.ClearVariationDiscount(r.Context(), variationID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
