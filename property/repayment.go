package property

// MonthlyRepayment computes the monthly mortgage repayment for a purchase at
// the given value with a percentage deposit, and the all-in monthly cost once
// recurring annual outgoings (insurance, service charge, ground rent) are
// spread across the year.
func MonthlyRepayment(propertyValue, depositPercent, annualRatePercent float64, years int, annualOutgoings float64) (mortgage, total float64) {
	loan := propertyValue * (1 - depositPercent/100)
	if loan < 0 {
		loan = 0
	}
	mortgage = MortgagePayment(loan, annualRatePercent, years) / 12
	total = mortgage + annualOutgoings/12
	return mortgage, total
}
