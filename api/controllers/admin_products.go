package controllers

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/xyzcommerce/supplier-discount-backend/api/responses"
	"github.com/xyzcommerce/supplier-discount-backend/api/validators"
	"github.com/xyzcommerce/supplier-discount-backend/internal/catalog"
	pkgerrors "github.com/xyzcommerce/supplier-discount-backend/pkg/errors"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/logger"
)

// AdminCreateProduct handles catalog product creation.
func AdminCreateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.CreateProduct(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// AdminUpdateProduct applies a partial update to a product. A variations
// array, when present, replaces the existing set.
func AdminUpdateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
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

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toUpdateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.UpdateProduct(r.Context(), productID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// AdminDeleteProduct removes a product along with its variations and any
// discount metadata attached to them.
func AdminDeleteProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
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

		if err := svc.DeleteProduct(r.Context(), productID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

type variationRequest struct {
	SKU          string  `json:"sku" validate:"required"`
	Label        string  `json:"label" validate:"required"`
	RegularPrice string  `json:"regular_price" validate:"required"`
	SalePrice    *string `json:"sale_price,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

type createProductRequest struct {
	SKU          string             `json:"sku" validate:"required"`
	Title        string             `json:"title" validate:"required"`
	Description  *string            `json:"description,omitempty"`
	RegularPrice string             `json:"regular_price" validate:"required"`
	SalePrice    *string            `json:"sale_price,omitempty"`
	IsActive     *bool              `json:"is_active,omitempty"`
	Variations   []variationRequest `json:"variations,omitempty"`
}

type updateProductRequest struct {
	SKU          *string             `json:"sku,omitempty"`
	Title        *string             `json:"title,omitempty"`
	Description  *string             `json:"description,omitempty"`
	RegularPrice *string             `json:"regular_price,omitempty"`
	SalePrice    *string             `json:"sale_price,omitempty"`
	ClearSale    bool                `json:"clear_sale,omitempty"`
	IsActive     *bool               `json:"is_active,omitempty"`
	Variations   *[]variationRequest `json:"variations,omitempty"`
}

func (r createProductRequest) toCreateInput() (catalog.CreateProductInput, error) {
	regular, err := parsePrice("regular_price", r.RegularPrice)
	if err != nil {
		return catalog.CreateProductInput{}, err
	}
	sale, err := parsePricePtr("sale_price", r.SalePrice)
	if err != nil {
		return catalog.CreateProductInput{}, err
	}
	variations, err := toVariationInputs(r.Variations)
	if err != nil {
		return catalog.CreateProductInput{}, err
	}

	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	return catalog.CreateProductInput{
		SKU:          validators.SanitizeString(r.SKU, 64),
		Title:        validators.SanitizeString(r.Title, 255),
		Description:  r.Description,
		RegularPrice: regular,
		SalePrice:    sale,
		IsActive:     isActive,
		Variations:   variations,
	}, nil
}

func (r updateProductRequest) toUpdateInput() (catalog.UpdateProductInput, error) {
	input := catalog.UpdateProductInput{
		Description: r.Description,
		ClearSale:   r.ClearSale,
		IsActive:    r.IsActive,
	}

	if r.SKU != nil {
		sku := validators.SanitizeString(*r.SKU, 64)
		if sku == "" {
			return catalog.UpdateProductInput{}, pkgerrors.New(pkgerrors.CodeValidation, "sku cannot be empty")
		}
		input.SKU = &sku
	}
	if r.Title != nil {
		title := validators.SanitizeString(*r.Title, 255)
		if title == "" {
			return catalog.UpdateProductInput{}, pkgerrors.New(pkgerrors.CodeValidation, "title cannot be empty")
		}
		input.Title = &title
	}
	if r.RegularPrice != nil {
		regular, err := parsePrice("regular_price", *r.RegularPrice)
		if err != nil {
			return catalog.UpdateProductInput{}, err
		}
		input.RegularPrice = &regular
	}
	if r.SalePrice != nil {
		sale, err := parsePrice("sale_price", *r.SalePrice)
		if err != nil {
			return catalog.UpdateProductInput{}, err
		}
		input.SalePrice = &sale
	}
	if r.Variations != nil {
		variations, err := toVariationInputs(*r.Variations)
		if err != nil {
			return catalog.UpdateProductInput{}, err
		}
		input.Variations = &variations
	}

	return input, nil
}

func toVariationInputs(requests []variationRequest) ([]catalog.VariationInput, error) {
	inputs := make([]catalog.VariationInput, 0, len(requests))
	for _, req := range requests {
		regular, err := parsePrice("regular_price", req.RegularPrice)
		if err != nil {
			return nil, err
		}
		sale, err := parsePricePtr("sale_price", req.SalePrice)
		if err != nil {
			return nil, err
		}
		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}
		inputs = append(inputs, catalog.VariationInput{
			SKU:          validators.SanitizeString(req.SKU, 64),
			Label:        validators.SanitizeString(req.Label, 64),
			RegularPrice: regular,
			SalePrice:    sale,
			IsActive:     isActive,
		})
	}
	return inputs, nil
}

func parsePrice(field, raw string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid price").WithDetails(map[string]any{"field": field})
	}
	if value.IsNegative() {
		return decimal.Decimal{}, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative").WithDetails(map[string]any{"field": field})
	}
	return value, nil
}

func parsePricePtr(field string, raw *string) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	value, err := parsePrice(field, *raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
