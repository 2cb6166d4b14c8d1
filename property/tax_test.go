package property

import (
	"math"
	"testing"
)

func TestCorporationTaxBands(t *testing.T) {
	tests := []struct {
		profit   float64
		wantTax  float64
		wantRate float64
	}{
		{-5000, 0, 0},
		{0, 0, 0},
		{10000, 1900, 19},
		{50000, 9500, 19},
		{150000, 33000, 22}, // 19 + 100k×6/200k = 22%
		{250000, 62500, 25},
		{1000000, 250000, 25},
	}
	for _, tc := range tests {
		tax, rate := CorporationTax(tc.profit)
		if math.Abs(tax-tc.wantTax) > 0.01 || math.Abs(rate-tc.wantRate) > 0.0001 {
			t.Errorf("CorporationTax(%.0f) = (%.2f, %.4f), want (%.2f, %.4f)",
				tc.profit, tax, rate, tc.wantTax, tc.wantRate)
		}
	}
}

func TestCorporationTaxContinuousAtBandEdges(t *testing.T) {
	// Marginal relief pins the effective rate to 19% at £50k and 25% at
	// £250k, so the tax function is continuous across both edges.
	const eps = 0.01
	for _, edge := range []float64{smallProfitsThreshold, mainRateThreshold} {
		below, _ := CorporationTax(edge - eps)
		at, _ := CorporationTax(edge)
		above, _ := CorporationTax(edge + eps)
		if math.Abs(at-below) > 0.01 || math.Abs(above-at) > 0.01 {
			t.Errorf("tax discontinuous around %.0f: %.4f / %.4f / %.4f", edge, below, at, above)
		}
	}
}

func TestCorporationTaxMonotone(t *testing.T) {
	// Tax never decreases as profit grows.
	var prev float64
	for profit := 0.0; profit <= 400000; profit += 500 {
		tax, _ := CorporationTax(profit)
		if tax < prev {
			t.Fatalf("tax decreased from %.2f to %.2f at profit %.0f", prev, tax, profit)
		}
		prev = tax
	}
}
