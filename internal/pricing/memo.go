package pricing

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type memoCtxKey struct{}

// Memo caches resolved prices for the lifetime of a single request. Each
// product or variation id resolves at most once; later lookups return the
// memoized value even if the underlying prices changed mid-request. Memos are
// request-scoped and never shared, so no locking is needed.
type Memo struct {
	prices map[uuid.UUID]*decimal.Decimal
}

// NewMemo returns an empty memo.
func NewMemo() *Memo {
	return &Memo{prices: make(map[uuid.UUID]*decimal.Decimal)}
}

// Get returns the memoized price for id. The stored value may be nil when the
// original resolution passed a missing price through.
func (m *Memo) Get(id uuid.UUID) (*decimal.Decimal, bool) {
	if m == nil {
		return nil, false
	}
	price, ok := m.prices[id]
	return price, ok
}

// Set records the resolved price for id.
func (m *Memo) Set(id uuid.UUID, price *decimal.Decimal) {
	if m == nil {
		return
	}
	m.prices[id] = price
}

// Len reports how many resolutions the memo holds.
func (m *Memo) Len() int {
	if m == nil {
		return 0
	}
	return len(m.prices)
}

// ContextWithMemo attaches a memo to the request context.
func ContextWithMemo(ctx context.Context, memo *Memo) context.Context {
	return context.WithValue(ctx, memoCtxKey{}, memo)
}

// MemoFromContext returns the request memo, or nil when none was attached.
func MemoFromContext(ctx context.Context) *Memo {
	if ctx == nil {
		return nil
	}
	memo, _ := ctx.Value(memoCtxKey{}).(*Memo)
	return memo
}
