package property

import "math"

// MortgagePayment returns the total annual repayment for a loan using the
// standard annuity formula on a monthly compounding basis.
//
// A zero rate or zero term degrades to a linear division: principal/years,
// or 0 when years is 0 (degenerate input, callers guard upstream).
func MortgagePayment(principal, annualRatePercent float64, years int) float64 {
	if annualRatePercent == 0 || years == 0 {
		if years == 0 {
			return 0
		}
		return principal / float64(years)
	}
	r := annualRatePercent / 100 / 12
	n := float64(years * 12)
	monthly := principal * (r * math.Pow(1+r, n)) / (math.Pow(1+r, n) - 1)
	return monthly * 12
}

// RemainingBalance returns the outstanding balance of a loan after
// totalYears-yearsRemaining years of repayments, via the present value of
// the remaining annuity. It returns 0 when yearsRemaining <= 0.
func RemainingBalance(originalLoan, annualRatePercent float64, yearsRemaining, totalYears int) float64 {
	if yearsRemaining <= 0 {
		return 0
	}
	if yearsRemaining > totalYears {
		yearsRemaining = totalYears
	}
	if annualRatePercent == 0 || totalYears == 0 {
		if totalYears == 0 {
			return 0
		}
		return originalLoan * float64(yearsRemaining) / float64(totalYears)
	}
	r := annualRatePercent / 100 / 12
	monthly := MortgagePayment(originalLoan, annualRatePercent, totalYears) / 12
	n := float64(yearsRemaining * 12)
	return monthly * (1 - math.Pow(1+r, -n)) / r
}

// YearlyInterestAndPrincipal splits the annual repayment of a given 1-indexed
// year into its interest and principal components, using the exact
// amortization schedule: the balance at the start of the year comes from the
// present-value-of-annuity formula, then twelve monthly steps are simulated
// from that balance.
//
// Degenerate inputs (zero rate, zero term, or a year outside [1, years])
// fall back to a linear schedule: principal is paid down evenly and the
// interest is whatever remains of the annual payment.
func YearlyInterestAndPrincipal(loanAmount, annualRatePercent float64, years, yearNumber int) (interest, principal float64) {
	annual := MortgagePayment(loanAmount, annualRatePercent, years)
	if annualRatePercent == 0 || years == 0 || yearNumber < 1 || yearNumber > years {
		if years == 0 {
			return 0, 0
		}
		principal = loanAmount / float64(years)
		return annual - principal, principal
	}

	r := annualRatePercent / 100 / 12
	monthly := annual / 12
	balance := RemainingBalance(loanAmount, annualRatePercent, years-(yearNumber-1), years)

	for month := 0; month < 12; month++ {
		monthInterest := balance * r
		monthPrincipal := monthly - monthInterest
		interest += monthInterest
		principal += monthPrincipal
		balance -= monthPrincipal
	}
	return interest, principal
}
