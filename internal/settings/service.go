package settings

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/xyzcommerce/supplier-discount-backend/pkg/enums"
	pkgerrors "github.com/xyzcommerce/supplier-discount-backend/pkg/errors"
)

// Option names for the pricing settings.
const (
	OptionApplyOnSale = "apply_on_sale"
	OptionDisplayMode = "display_mode"
)

// Stored yes/no values.
const (
	ValueYes = "yes"
	ValueNo  = "no"
)

// PricingSettings is the admin-facing view of the pricing options.
type PricingSettings struct {
	ApplyOnSale string `json:"apply_on_sale"`
	DisplayMode string `json:"display_mode"`
}

// UpdatePricingSettingsInput carries optional new values for the pricing
// options.
type UpdatePricingSettingsInput struct {
	ApplyOnSale *string
	DisplayMode *string
}

// Service exposes the options store. Reads sanitize unknown stored values to
// the documented defaults instead of failing.
type Service interface {
	ApplyOnSale(ctx context.Context) (bool, error)
	DisplayMode(ctx context.Context) (enums.DisplayMode, error)
	PricingSettings(ctx context.Context) (*PricingSettings, error)
	UpdatePricingSettings(ctx context.Context, input UpdatePricingSettingsInput) (*PricingSettings, error)
}

type service struct {
	repo *Repository
}

// NewService constructs the settings service.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("settings repository required")
	}
	return &service{repo: repo}, nil
}

// ApplyOnSale reports whether discounts also apply to sale prices. Missing or
// unrecognized values read as disabled.
func (s *service) ApplyOnSale(ctx context.Context) (bool, error) {
	value, err := s.get(ctx, OptionApplyOnSale, ValueNo)
	if err != nil {
		return false, err
	}
	return sanitizeYesNo(value) == ValueYes, nil
}

// DisplayMode returns the configured display mode, defaulting to
// strikethrough for missing or unrecognized values.
func (s *service) DisplayMode(ctx context.Context) (enums.DisplayMode, error) {
	value, err := s.get(ctx, OptionDisplayMode, enums.DisplayModeStrikethrough.String())
	if err != nil {
		return "", err
	}
	return enums.SanitizeDisplayMode(value), nil
}

// PricingSettings returns the sanitized settings view.
func (s *service) PricingSettings(ctx context.Context) (*PricingSettings, error) {
	applyOnSale, err := s.ApplyOnSale(ctx)
	if err != nil {
		return nil, err
	}
	mode, err := s.DisplayMode(ctx)
	if err != nil {
		return nil, err
	}
	view := &PricingSettings{
		ApplyOnSale: ValueNo,
		DisplayMode: mode.String(),
	}
	if applyOnSale {
		view.ApplyOnSale = ValueYes
	}
	return view, nil
}

// UpdatePricingSettings writes the provided values, sanitizing each before it
// is stored, and returns the resulting view. Omitted fields keep their
// current value.
func (s *service) UpdatePricingSettings(ctx context.Context, input UpdatePricingSettingsInput) (*PricingSettings, error) {
	if input.ApplyOnSale != nil {
		if err := s.set(ctx, OptionApplyOnSale, sanitizeYesNo(*input.ApplyOnSale)); err != nil {
			return nil, err
		}
	}
	if input.DisplayMode != nil {
		if err := s.set(ctx, OptionDisplayMode, enums.SanitizeDisplayMode(*input.DisplayMode).String()); err != nil {
			return nil, err
		}
	}
	return s.PricingSettings(ctx)
}

func (s *service) get(ctx context.Context, name, fallback string) (string, error) {
	row, err := s.repo.Get(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fallback, nil
		}
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("load option %q", name))
	}
	return row.Value, nil
}

func (s *service) set(ctx context.Context, name, value string) error {
	if err := s.repo.Upsert(ctx, name, value); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("write option %q", name))
	}
	return nil
}

func sanitizeYesNo(value string) string {
	if value == ValueYes {
		return ValueYes
	}
	return ValueNo
}
