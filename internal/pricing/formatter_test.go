package pricing

import (
	"testing"

	"github.com/xyzcommerce/supplier-discount-backend/pkg/enums"
)

func TestFormatterStrikethrough(t *testing.T) {
	formatter, err := NewFormatter(newTestCurrencyFormatter())
	if err != nil {
		t.Fatalf("new formatter: %v", err)
	}

	got := formatter.Format(dec("100"), dec("80"), enums.DisplayModeStrikethrough)
	want := "<del>$100.00</del> <ins>$80.00</ins>"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatterSimple(t *testing.T) {
	formatter, err := NewFormatter(newTestCurrencyFormatter())
	if err != nil {
		t.Fatalf("new formatter: %v", err)
	}

	if got := formatter.Format(dec("100"), dec("80"), enums.DisplayModeSimple); got != "$80.00" {
		t.Fatalf("expected discounted price only, got %q", got)
	}
}

func TestFormatterUnknownModeFallsBack(t *testing.T) {
	formatter, err := NewFormatter(newTestCurrencyFormatter())
	if err != nil {
		t.Fatalf("new formatter: %v", err)
	}

	got := formatter.Format(dec("100"), dec("80"), enums.DisplayMode("fancy"))
	want := "<del>$100.00</del> <ins>$80.00</ins>"
	if got != want {
		t.Fatalf("expected strikethrough fallback, got %q", got)
	}
}

func TestFormatterRequiresCurrency(t *testing.T) {
	if _, err := NewFormatter(nil); err == nil {
		t.Fatal("expected error without a currency formatter")
	}
}
