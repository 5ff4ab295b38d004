package metadata

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xyzcommerce/supplier-discount-backend/internal/pricing"
	pkgerrors "github.com/xyzcommerce/supplier-discount-backend/pkg/errors"
)

// Service exposes the product metadata store. The supplier discount helpers
// are thin wrappers over the generic key-value operations with validation on
// the write path.
type Service interface {
	GetMeta(ctx context.Context, ownerID uuid.UUID, key string) (string, bool, error)
	SetMeta(ctx context.Context, ownerID uuid.UUID, key, value string) error
	DeleteMeta(ctx context.Context, ownerID uuid.UUID, key string) error

	DiscountPercent(ctx context.Context, ownerID uuid.UUID) (string, bool, error)
	SetDiscountPercent(ctx context.Context, ownerID uuid.UUID, raw string) error
	ClearDiscountPercent(ctx context.Context, ownerID uuid.UUID) error
}

type service struct {
	repo *Repository
}

// NewService constructs the metadata service.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("metadata repository required")
	}
	return &service{repo: repo}, nil
}

// GetMeta returns the stored value for the owner and key. Missing rows report
// found=false without an error.
func (s *service) GetMeta(ctx context.Context, ownerID uuid.UUID, key string) (string, bool, error) {
	row, err := s.repo.Get(ctx, ownerID, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, pkgerrors.Wrap(pkgerrors.CodeDependency, err,
			fmt.Sprintf("load metadata (owner_id=%s key=%s)", ownerID, key),
		)
	}
	return row.MetaValue, true, nil
}

func (s *service) SetMeta(ctx context.Context, ownerID uuid.UUID, key, value string) error {
	if err := s.repo.Upsert(ctx, ownerID, key, value); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err,
			fmt.Sprintf("write metadata (owner_id=%s key=%s)", ownerID, key),
		)
	}
	return nil
}

func (s *service) DeleteMeta(ctx context.Context, ownerID uuid.UUID, key string) error {
	if err := s.repo.Delete(ctx, ownerID, key); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err,
			fmt.Sprintf("delete metadata (owner_id=%s key=%s)", ownerID, key),
		)
	}
	return nil
}

// DiscountPercent returns the raw stored percent. Validation happens at
// pricing time; stored garbage is returned as-is.
func (s *service) DiscountPercent(ctx context.Context, ownerID uuid.UUID) (string, bool, error) {
	return s.GetMeta(ctx, ownerID, pricing.MetaKeyDiscountPercent)
}

// SetDiscountPercent validates and stores the percent in canonical form. An
// empty submission clears the stored value.
func (s *service) SetDiscountPercent(ctx context.Context, ownerID uuid.UUID, raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return s.ClearDiscountPercent(ctx, ownerID)
	}
	percent, ok := pricing.ParsePercent(trimmed)
	if !ok {
		return pkgerrors.New(pkgerrors.CodeValidation, "discount percent must be a whole number between 1 and 100")
	}
	return s.SetMeta(ctx, ownerID, pricing.MetaKeyDiscountPercent, strconv.FormatInt(percent, 10))
}

// ClearDiscountPercent removes the stored percent. Clearing an unset percent
// succeeds.
func (s *service) ClearDiscountPercent(ctx context.Context, ownerID uuid.UUID) error {
	return s.DeleteMeta(ctx, ownerID, pricing.MetaKeyDiscountPercent)
}
