package controllers

import (
	"net/http"

	"github.com/xyzcommerce/supplier-discount-backend/api/responses"
	"github.com/xyzcommerce/supplier-discount-backend/api/validators"
	"github.com/xyzcommerce/supplier-discount-backend/internal/settings"
	pkgerrors "github.com/xyzcommerce/supplier-discount-backend/pkg/errors"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/logger"
)

type updatePricingSettingsRequest struct {
	ApplyOnSale *string `json:"apply_on_sale,omitempty"`
	DisplayMode *string `json:"display_mode,omitempty"`
}

// AdminGetPricingSettings returns the sanitized pricing options.
func AdminGetPricingSettings(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings service unavailable"))
			return
		}

		view, err := svc.PricingSettings(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}

// AdminUpdatePricingSettings writes the provided pricing options. Unknown
// values are sanitized to the documented defaults rather than rejected.
func AdminUpdatePricingSettings(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings service unavailable"))
			return
		}

		var payload updatePricingSettingsRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.UpdatePricingSettings(r.Context(), settings.UpdatePricingSettingsInput{
			ApplyOnSale: payload.ApplyOnSale,
			DisplayMode: payload.DisplayMode,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}
