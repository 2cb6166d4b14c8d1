package property

import "math"

// Stamp duty tiers for a company purchase. Each rate applies to the slice
// of the price within its tier, additively.
const (
	dutyTier1 = 125_000.0 // 5% up to here
	dutyTier2 = 250_000.0 // 7% from tier1 to here
	dutyTier3 = 925_000.0 // 10% from tier2 to here
)

// StampDuty returns the UK tiered stamp duty for a purchase price.
func StampDuty(price float64) float64 {
	var duty float64
	if price > dutyTier2 {
		duty += (math.Min(price, dutyTier3) - dutyTier2) * 0.10
	}
	if price > dutyTier1 {
		duty += (math.Min(price, dutyTier2) - dutyTier1) * 0.07
	}
	if price > 0 {
		duty += math.Min(price, dutyTier1) * 0.05
	}
	return duty
}
