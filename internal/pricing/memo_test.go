package pricing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestMemoRoundTrip(t *testing.T) {
	memo := NewMemo()
	id := uuid.New()

	if _, ok := memo.Get(id); ok {
		t.Fatal("expected miss on empty memo")
	}

	price := decimal.NewFromInt(80)
	memo.Set(id, &price)

	got, ok := memo.Get(id)
	if !ok {
		t.Fatal("expected memo hit")
	}
	if got == nil || !got.Equal(price) {
		t.Fatalf("unexpected memoized value %v", got)
	}
	if memo.Len() != 1 {
		t.Fatalf("expected one entry, got %d", memo.Len())
	}
}

func TestMemoStoresNilPassthrough(t *testing.T) {
	memo := NewMemo()
	id := uuid.New()
	memo.Set(id, nil)

	got, ok := memo.Get(id)
	if !ok {
		t.Fatal("expected memo hit for nil passthrough")
	}
	if got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestMemoNilReceiverIsSafe(t *testing.T) {
	var memo *Memo
	if _, ok := memo.Get(uuid.New()); ok {
		t.Fatal("nil memo should always miss")
	}
	memo.Set(uuid.New(), nil)
	if memo.Len() != 0 {
		t.Fatal("nil memo should report empty")
	}
}

func TestMemoContextHelpers(t *testing.T) {
	if got := MemoFromContext(context.Background()); got != nil {
		t.Fatalf("expected nil memo on bare context, got %v", got)
	}

	memo := NewMemo()
	ctx := ContextWithMemo(context.Background(), memo)
	if got := MemoFromContext(ctx); got != memo {
		t.Fatal("expected the attached memo back")
	}
}
