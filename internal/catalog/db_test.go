package catalog

import (
	"context"
	"io"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/xyzcommerce/supplier-discount-backend/internal/metadata"
	"github.com/xyzcommerce/supplier-discount-backend/internal/pricing"
	"github.com/xyzcommerce/supplier-discount-backend/internal/settings"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/config"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/currency"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/db"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/db/models"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/logger"
)

type eligibleCtxKey struct{}

// supplierCtx simulates a storefront request from a supplier: eligible for
// discounts, with a fresh request memo.
func supplierCtx() context.Context {
	ctx := context.WithValue(context.Background(), eligibleCtxKey{}, true)
	return pricing.ContextWithMemo(ctx, pricing.NewMemo())
}

// customerCtx simulates a request that is not eligible for supplier pricing.
func customerCtx() context.Context {
	return pricing.ContextWithMemo(context.Background(), pricing.NewMemo())
}

type testEnv struct {
	svc      Service
	meta     metadata.Service
	settings settings.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := conn.AutoMigrate(
		&models.Product{},
		&models.ProductVariation{},
		&models.ProductMeta{},
		&models.Option{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	for _, model := range []any{
		&models.ProductMeta{},
		&models.ProductVariation{},
		&models.Product{},
		&models.Option{},
	} {
		if err := conn.Where("1 = 1").Delete(model).Error; err != nil {
			t.Fatalf("failed to reset tables: %v", err)
		}
	}

	metaSvc, err := metadata.NewService(metadata.NewRepository(conn))
	if err != nil {
		t.Fatalf("metadata service: %v", err)
	}
	settingsSvc, err := settings.NewService(settings.NewRepository(conn))
	if err != nil {
		t.Fatalf("settings service: %v", err)
	}

	logg := logger.New(logger.Options{ServiceName: "catalog-test", Output: io.Discard})
	resolver, err := pricing.NewResolver(metaSvc, settingsSvc, nil, logg)
	if err != nil {
		t.Fatalf("resolver: %v", err)
	}
	currencyFormatter := currency.NewFormatter(config.PricingConfig{CurrencySymbol: "$", CurrencyDecimals: 2})
	formatter, err := pricing.NewFormatter(currencyFormatter)
	if err != nil {
		t.Fatalf("formatter: %v", err)
	}
	hooks, err := pricing.NewHooks(resolver, formatter, func(ctx context.Context) bool {
		eligible, _ := ctx.Value(eligibleCtxKey{}).(bool)
		return eligible
	})
	if err != nil {
		t.Fatalf("hooks: %v", err)
	}

	svc, err := NewService(NewRepository(conn), db.NewWithConn(conn), metaSvc, hooks, currencyFormatter)
	if err != nil {
		t.Fatalf("catalog service: %v", err)
	}

	return &testEnv{svc: svc, meta: metaSvc, settings: settingsSvc}
}
