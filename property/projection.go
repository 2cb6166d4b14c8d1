package property

import "math"

// AmortizationYear is one year of a held investment: the property value
// under the assumed appreciation rate, the outstanding mortgage, the owner
// equity, and the cumulative income and cost position since purchase.
type AmortizationYear struct {
	Year             int
	PropertyValue    float64
	MortgageBalance  float64
	Equity           float64
	CumulativeRent   float64
	CumulativeCosts  float64 // operating costs + interest + corporation tax
	NetReturnPercent float64
}

// Project produces the year-by-year holding analysis for a fixed purchase
// price, from acquisition (year 0) to the end of the mortgage term. The
// property value compounds at AppreciationRatePercent, the mortgage balance
// follows the exact amortization schedule, and each year's interest and tax
// are the actuals for that year.
//
// Net return measures equity growth plus accumulated after-tax income
// against the total cash invested at acquisition.
func Project(price float64, a CostAssumptions) []AmortizationYear {
	term := a.MortgageTermYears
	loan := price * LTVPercent / 100
	deposit := price * DepositPercent / 100
	acquisition := Evaluate(price, a).TotalAcquisition
	annualRent := a.AnnualRent()

	years := make([]AmortizationYear, 0, term+1)
	var cumRent, cumCosts float64

	for year := 0; year <= term; year++ {
		value := price * math.Pow(1+a.AppreciationRatePercent/100, float64(year))
		balance := RemainingBalance(loan, a.MortgageRatePercent, term-year, term)
		equity := value - balance

		if year > 0 {
			interest, _ := YearlyInterestAndPrincipal(loan, a.MortgageRatePercent, term, year)

			var maintenance float64
			if a.Maintenance == PercentOfValue {
				maintenance = value * MaintenanceValuePercent / 100
			} else {
				maintenance = annualRent * MaintenanceRentPercent / 100
			}
			operating := a.ServiceCharge + a.GroundRent + a.CouncilTax + a.Insurance +
				annualRent*a.ManagementFeePercent/100 + maintenance + a.GasSafety +
				a.ElectricalInspection/electricalCycleYears + a.EPCCertificate/epcCycleYears +
				a.VoidDays/365*annualRent

			tax, _ := CorporationTax(math.Max(0, annualRent-(operating+interest)))

			cumRent += annualRent
			cumCosts += operating + interest + tax
		}

		years = append(years, AmortizationYear{
			Year:             year,
			PropertyValue:    value,
			MortgageBalance:  balance,
			Equity:           equity,
			CumulativeRent:   cumRent,
			CumulativeCosts:  cumCosts,
			NetReturnPercent: ratio(equity-deposit+cumRent-cumCosts, acquisition) * 100,
		})
	}
	return years
}
