package property

// UK corporation tax bands (2023+).
const (
	smallProfitsRate      = 19.0
	mainRate              = 25.0
	smallProfitsThreshold = 50_000.0
	mainRateThreshold     = 250_000.0
)

// CorporationTax returns the UK corporation tax due on a profit, and the
// effective rate applied, in percent.
//
// Profits up to £50,000 pay the small profits rate (19%), profits of
// £250,000 and above pay the main rate (25%), and marginal relief scales
// the effective rate linearly in between, so the tax is continuous at both
// band edges and non-decreasing in profit.
func CorporationTax(profit float64) (tax, effectiveRatePercent float64) {
	switch {
	case profit <= 0:
		return 0, 0
	case profit <= smallProfitsThreshold:
		return profit * smallProfitsRate / 100, smallProfitsRate
	case profit >= mainRateThreshold:
		return profit * mainRate / 100, mainRate
	default:
		rate := smallProfitsRate + (profit-smallProfitsThreshold)*(mainRate-smallProfitsRate)/(mainRateThreshold-smallProfitsThreshold)
		return profit * rate / 100, rate
	}
}
