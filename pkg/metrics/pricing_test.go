package metrics

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestPricingMetricsExportsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPricingMetrics(reg)
	metrics.IncResolution("applied")
	metrics.IncResolution("passthrough")
	metrics.IncResolution("applied")
	metrics.IncMemoHit()

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "supplier_discount_resolutions_total", "outcome", "applied"); err != nil {
		t.Fatalf("fetch applied: %v", err)
	} else if got != 2 {
		t.Fatalf("expected applied=2, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "supplier_discount_resolutions_total", "outcome", "passthrough"); err != nil {
		t.Fatalf("fetch passthrough: %v", err)
	} else if got != 1 {
		t.Fatalf("expected passthrough=1, got %f", got)
	}

	mf := findMetricFamily(mfs, "supplier_discount_memo_hits_total")
	if mf == nil || len(mf.GetMetric()) == 0 {
		t.Fatal("memo hits metric not exported")
	}
	if got := mf.GetMetric()[0].GetCounter().GetValue(); got != 1 {
		t.Fatalf("expected memo hits=1, got %f", got)
	}
}

func TestPricingMetricsNilSafe(t *testing.T) {
	var metrics *PricingMetrics
	metrics.IncResolution("applied")
	metrics.IncMemoHit()

	empty := NewPricingMetrics(nil)
	empty.IncResolution("")
	empty.IncMemoHit()
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("label %s=%s not found on %q", label, value, name)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
